package renderer

import (
	"fmt"
	"io"
	"strings"
	"time"

	"pongy/internal/ansii"
	"pongy/internal/frame"
	"pongy/internal/pong"
)

// SizeFunc reports the terminal size in cells.
type SizeFunc func() (width int, height int, err error)

// Terminal draws snapshots with ANSI escapes. The field is stretched over the
// whole terminal, so entity sizes are rounded to whole cells.
type Terminal struct {
	out       io.Writer
	size      SizeFunc
	showStats bool

	canvas    ansii.Canvas
	scoreLine string
	frameNum  int
	lastFrame time.Time
}

func NewTerminal(out io.Writer, size SizeFunc, showStats bool) *Terminal {
	return &Terminal{out: out, size: size, showStats: showStats}
}

// Render draws one frame. A terminal that changed size since the last
// Restore reports frame.ErrSurfaceLost.
func (t *Terminal) Render(snap pong.Snapshot) error {
	start := time.Now()

	// The changed flag is only set on one snapshot, so take the text even
	// when this frame cannot be drawn.
	if snap.ScoreChanged || t.scoreLine == "" {
		t.scoreLine = snap.ScoreText
	}

	w, h, err := t.size()
	if err != nil {
		return fmt.Errorf("%w: %v", frame.ErrSurfaceLost, err)
	}
	if w != t.canvas.Width || h != t.canvas.Height {
		return fmt.Errorf("%w: terminal resized to %dx%d", frame.ErrSurfaceLost, w, h)
	}

	var builder strings.Builder
	builder.WriteString(string(ansii.Screen.ClearScreen))
	t.drawScore(&builder)
	for _, e := range snap.Entities {
		t.drawEntity(&builder, e)
	}
	if t.showStats {
		t.frameNum++
		t.drawFrameStats(&builder, snap.Tick, time.Since(start))
	}

	_, err = io.WriteString(t.out, builder.String())
	return err
}

// Restore picks up the current terminal size and clears the screen. The next
// Render redraws everything.
func (t *Terminal) Restore() error {
	w, h, err := t.size()
	if err != nil {
		return err
	}
	if w <= 0 || h <= 0 {
		return fmt.Errorf("terminal has no cells (%dx%d)", w, h)
	}
	t.canvas = ansii.Canvas{Width: w, Height: h}
	_, err = io.WriteString(t.out, string(ansii.Screen.ClearScreen))
	return err
}

func (t *Terminal) drawScore(builder *strings.Builder) {
	x := (t.canvas.Width - len(t.scoreLine)) / 2
	t.canvas.DrawText(builder, x, 0, t.scoreLine, ansii.Colors.Yellow+ansii.Styles.Bold)
}

func (t *Terminal) drawEntity(builder *strings.Builder, e pong.Entity) {
	offset := ansii.Offset{X: e.Pos.X / pong.FieldWidth, Y: e.Pos.Y / pong.FieldHeight}

	switch e.Kind {
	case pong.Ball:
		cols, rows := t.canvas.Span(float64(pong.BallDiameter)/pong.FieldWidth, float64(pong.BallDiameter)/pong.FieldHeight)
		switch {
		case cols == 1 && rows == 1:
			t.canvas.DrawPixelStyle(builder, offset, ansii.Colors.Purple)
		case cols >= 3 && rows >= 3:
			t.canvas.DrawBox(builder, offset, rows, cols, ansii.Colors.Purple)
		default:
			t.canvas.FillBox(builder, offset, rows, cols, ansii.Colors.Purple)
		}
	default:
		cols, rows := t.canvas.Span(float64(pong.PaddleWidth)/pong.FieldWidth, float64(pong.PaddleHeight)/pong.FieldHeight)
		t.canvas.FillBox(builder, offset, rows, cols, ansii.Colors.Cyan)
	}
}

func (t *Terminal) drawFrameStats(builder *strings.Builder, tick uint64, frameTime time.Duration) {
	var fps float64
	now := time.Now()
	if !t.lastFrame.IsZero() {
		fps = 1 / now.Sub(t.lastFrame).Seconds()
	}
	t.lastFrame = now

	lines := []string{
		fmt.Sprintf("Frame #: %d", t.frameNum),
		fmt.Sprintf("Tick #: %d", tick),
		fmt.Sprintf("Frame Time: %.4fms", float64(frameTime.Microseconds())/1000),
		fmt.Sprintf("FPS: %.1f", fps),
	}
	for i, line := range lines {
		y := t.canvas.Height - len(lines) + i
		t.canvas.DrawText(builder, t.canvas.Width-len(line), y, line, ansii.Styles.Plain)
	}
}
