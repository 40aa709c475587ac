package pong

import (
	"golang.org/x/exp/rand"
)

// Rules holds the tunables that may differ from the defaults.
type Rules struct {
	// BallSpeedCap bounds the horizontal ball speed after a paddle hit.
	// Zero leaves it uncapped, so every rally keeps getting faster.
	BallSpeedCap float64
}

// Session is the whole mutable game state. It is owned by a single goroutine
// and is not safe for concurrent use.
type Session struct {
	Ball     Entity
	Player   Entity
	Computer Entity

	Score Score
	Serve Side

	rules Rules
	rng   *rand.Rand
	ticks uint64
}

// NewSession creates a session at 0 - 0 with a freshly served ball.
func NewSession(seed uint64, rules Rules) *Session {
	s := &Session{
		Ball:     Entity{Kind: Ball},
		Player:   Entity{Kind: PlayerPaddle},
		Computer: Entity{Kind: ComputerPaddle},
		rules:    rules,
		rng:      rand.New(rand.NewSource(seed)),
	}
	s.reset()
	return s
}

// Entities returns the three entities in a fixed order: ball, player, computer.
func (s *Session) Entities() [3]Entity {
	return [3]Entity{s.Ball, s.Player, s.Computer}
}

// Tick advances the simulation by dt seconds. Player paddle, computer paddle
// and ball are updated in that order with the same dt. A zero dt changes nothing.
func (s *Session) Tick(in Input, dt float64) Outcome {
	if dt <= 0 {
		return NoEvent
	}
	s.ticks++
	s.movePlayer(in, dt)
	s.moveComputer(dt)
	return s.moveBall(dt)
}

// Snapshot captures the current state for a renderer and consumes the score
// changed flag.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Tick:         s.ticks,
		Entities:     s.Entities(),
		ScoreText:    s.Score.Text(),
		ScoreChanged: s.Score.Changed(),
		Serve:        s.Serve,
	}
}

// reset puts every entity back in its serve position and launches the ball.
func (s *Session) reset() {
	s.Ball.Pos = Vector{X: FieldWidth/2 - BallDiameter/2, Y: 0}
	s.Ball.Vel = sampleServe(s.rng)
	if s.Ball.Vel.X >= 0 {
		s.Serve = Computer
	} else {
		s.Serve = Human
	}

	s.Player.Pos = Vector{X: PaddleEdgeOffset, Y: FieldHeight/2 - PaddleHeight/2}
	s.Player.Vel = Vector{}
	s.Computer.Pos = Vector{X: FieldWidth - (PaddleWidth + PaddleEdgeOffset), Y: FieldHeight/2 - PaddleHeight/2}
	s.Computer.Vel = Vector{}
}
