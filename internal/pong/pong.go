package pong

import "math"

// Outcome is the single collision result applied during a tick.
type Outcome int

const (
	NoEvent Outcome = iota
	ComputerGoal
	PlayerGoal
	WallBounce
	PlayerHit
	ComputerHit
)

func (o Outcome) String() string {
	switch o {
	case ComputerGoal:
		return "computer_goal"
	case PlayerGoal:
		return "player_goal"
	case WallBounce:
		return "wall_bounce"
	case PlayerHit:
		return "player_hit"
	case ComputerHit:
		return "computer_hit"
	}
	return "none"
}

// moveBall integrates the ball and resolves at most one collision.
//
// Tie-break order, first match wins and ends the tick:
//  1. left goal (computer scores)
//  2. right goal (player scores)
//  3. top or bottom wall
//  4. player paddle
//  5. computer paddle
//
// A ball touching a wall and a paddle in the same tick only bounces off the wall.
func (s *Session) moveBall(dt float64) Outcome {
	b := &s.Ball
	b.Pos.X += b.Vel.X * dt
	b.Pos.Y += b.Vel.Y * dt

	if b.Pos.X < 0 {
		s.Score.RecordPoint(Computer)
		s.reset()
		return ComputerGoal
	}
	if b.Pos.X >= FieldWidth-BallDiameter {
		s.Score.RecordPoint(Human)
		s.reset()
		return PlayerGoal
	}

	if b.Pos.Y < 0 {
		b.Pos.Y = 0
		b.Vel.Y = -b.Vel.Y
		return WallBounce
	}
	if b.Pos.Y > FieldHeight-BallDiameter {
		b.Pos.Y = FieldHeight - BallDiameter
		b.Vel.Y = -b.Vel.Y
		return WallBounce
	}

	p := &s.Player
	if b.Pos.X <= p.Pos.X+PaddleWidth && overlapsVertically(b, p) {
		b.Pos.X = p.Pos.X + PaddleWidth
		b.Vel.X = s.speedUp(b.Vel.X)
		s.Serve = Computer
		return PlayerHit
	}

	c := &s.Computer
	if b.Pos.X+BallDiameter >= c.Pos.X && overlapsVertically(b, c) {
		b.Pos.X = c.Pos.X - BallDiameter
		b.Vel.X = -s.speedUp(b.Vel.X)
		s.Serve = Human
		return ComputerHit
	}

	return NoEvent
}

func overlapsVertically(ball, paddle *Entity) bool {
	return ball.Pos.Y+BallDiameter >= paddle.Pos.Y && ball.Pos.Y <= paddle.Pos.Y+PaddleHeight
}

// speedUp returns the horizontal speed after a paddle hit, always positive.
// The cap limits growth but never slows the ball below its current speed.
func (s *Session) speedUp(vx float64) float64 {
	v := math.Abs(vx) + BallSpeedIncrement
	if s.rules.BallSpeedCap > 0 && v > s.rules.BallSpeedCap {
		v = max(s.rules.BallSpeedCap, math.Abs(vx))
	}
	return v
}
