package pong

// Field dimensions and gameplay constants. All distances are in field units,
// speeds in field units per second.
const (
	FieldWidth  = 640
	FieldHeight = 480

	BallDiameter = 32

	PaddleWidth      = 10
	PaddleHeight     = 75
	PaddleEdgeOffset = 10
	PaddleSpeed      = 250.0

	// The computer paddle stays put until the ball is at least this far from the left edge.
	ActivationThreshold = 250.0

	BallSpeedIncrement = 50.0

	// MinBallSpeedCap is the lowest cap that never slows a served ball on its first hit.
	MinBallSpeedCap = serveRange + BallSpeedIncrement

	serveRange   = 250.0
	serveMinVelX = 100.0
	serveMinVelY = 50.0
)

type Kind int

const (
	Ball Kind = iota
	PlayerPaddle
	ComputerPaddle
)

func (k Kind) String() string {
	switch k {
	case Ball:
		return "ball"
	case PlayerPaddle:
		return "player"
	case ComputerPaddle:
		return "computer"
	}
	return "unknown"
}

// Side identifies who owns the serve, and who is awarded a point.
type Side int

const (
	Human Side = iota
	Computer
)

func (s Side) String() string {
	if s == Computer {
		return "computer"
	}
	return "human"
}

type Vector struct {
	X float64
	Y float64
}

type Entity struct {
	Kind Kind
	Pos  Vector
	Vel  Vector
}

// Input is a snapshot of the held directional keys.
type Input struct {
	Up   bool
	Down bool
}

// Snapshot is what a renderer gets once per tick.
type Snapshot struct {
	Tick         uint64
	Entities     [3]Entity
	ScoreText    string
	ScoreChanged bool
	Serve        Side
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
