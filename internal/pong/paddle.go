package pong

// movePlayer moves the player paddle by the held key. Both or neither held
// means no movement.
func (s *Session) movePlayer(in Input, dt float64) {
	p := &s.Player
	p.Vel.Y = 0
	switch {
	case in.Up && !in.Down:
		p.Vel.Y = -PaddleSpeed
	case in.Down && !in.Up:
		p.Vel.Y = PaddleSpeed
	}
	p.Pos.Y = clamp(p.Pos.Y+p.Vel.Y*dt, 0, FieldHeight-PaddleHeight)
}

// moveComputer chases the ball's y once the player has returned it and it is
// past the activation threshold. It steps a fixed amount per second and never
// predicts where the ball is going, so it can overshoot and jitter.
func (s *Session) moveComputer(dt float64) {
	c := &s.Computer
	c.Vel.Y = 0
	if s.Serve == Human || s.Ball.Pos.X < ActivationThreshold {
		return
	}

	switch {
	case c.Pos.Y < s.Ball.Pos.Y:
		c.Vel.Y = PaddleSpeed
	case c.Pos.Y > s.Ball.Pos.Y:
		c.Vel.Y = -PaddleSpeed
	}
	c.Pos.Y = clamp(c.Pos.Y+c.Vel.Y*dt, 0, FieldHeight-PaddleHeight)
}
