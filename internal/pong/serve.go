package pong

import (
	"golang.org/x/exp/rand"
)

// sampleServe draws a ball velocity uniformly from [-250, 250]^2 restricted
// to |vx| > 100 and |vy| > 50. Picking a sign and then a magnitude uniformly
// from (min, 250] gives the same distribution as rejecting draws until both
// bounds hold, without the unbounded loop.
func sampleServe(rng *rand.Rand) Vector {
	return Vector{
		X: sampleComponent(rng, serveMinVelX),
		Y: sampleComponent(rng, serveMinVelY),
	}
}

func sampleComponent(rng *rand.Rand, lo float64) float64 {
	// Float64 is in [0, 1), so u is in (0, 1] and the magnitude never equals lo.
	u := 1 - rng.Float64()
	v := lo + u*(serveRange-lo)
	if rng.Intn(2) == 0 {
		return -v
	}
	return v
}
