package pong

import "fmt"

type Score struct {
	Player   int
	Computer int

	dirty bool
}

// RecordPoint awards one point to side and marks the score text stale.
func (s *Score) RecordPoint(side Side) {
	switch side {
	case Human:
		s.Player++
	case Computer:
		s.Computer++
	}
	s.dirty = true
}

func (s *Score) Text() string {
	return fmt.Sprintf("YOU %d - %d CMP", s.Player, s.Computer)
}

// Changed reports whether a point was recorded since the last call.
func (s *Score) Changed() bool {
	c := s.dirty
	s.dirty = false
	return c
}
