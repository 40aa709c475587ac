package frame

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"pongy/internal/pong"
)

// Driver owns a session and advances it once per Step. It is the only
// goroutine allowed to touch the session.
type Driver struct {
	session  *pong.Session
	input    InputProvider
	clock    Clock
	renderer Renderer
	activity Activity
	log      *slog.Logger

	last int64
}

func NewDriver(session *pong.Session, input InputProvider, clock Clock, renderer Renderer, activity Activity, log *slog.Logger) *Driver {
	if log == nil {
		log = slog.Default()
	}
	return &Driver{
		session:  session,
		input:    input,
		clock:    clock,
		renderer: renderer,
		activity: activity,
		log:      log,
		last:     clock.NowMillis(),
	}
}

// Step runs at most one tick. Nothing happens while inactive or when no time
// has passed since the previous tick; inactive time is dropped rather than
// simulated once activity resumes.
func (d *Driver) Step() error {
	now := d.clock.NowMillis()
	if !d.activity.Active() {
		d.last = now
		return nil
	}

	dt := now - d.last
	if dt <= 0 {
		return nil
	}
	d.last = now

	in, err := d.input.Poll()
	if err != nil {
		if !errors.Is(err, ErrInputLost) {
			return fmt.Errorf("poll input: %w", err)
		}
		d.log.Debug("no input this tick", slog.Any("error", err))
		in = pong.Input{}
	}

	switch out := d.session.Tick(in, float64(dt)/1000); out {
	case pong.PlayerGoal, pong.ComputerGoal:
		d.log.Info("point scored",
			slog.String("outcome", out.String()),
			slog.Int("player", d.session.Score.Player),
			slog.Int("computer", d.session.Score.Computer))
	case pong.PlayerHit, pong.ComputerHit:
		d.log.Debug("paddle hit", slog.String("outcome", out.String()), slog.Float64("vx", d.session.Ball.Vel.X))
	}

	return d.render()
}

func (d *Driver) render() error {
	err := d.renderer.Render(d.session.Snapshot())
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrSurfaceLost) {
		return fmt.Errorf("render frame: %w", err)
	}

	d.log.Info("render surface lost, restoring", slog.Any("error", err))
	if err := d.renderer.Restore(); err != nil {
		return fmt.Errorf("restore surface: %w", err)
	}
	return nil
}

// Run steps the driver every interval until ctx is done or a step fails.
// While inactive it sleeps on the activity signal instead of ticking.
func (d *Driver) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	d.last = d.clock.NowMillis()
	for {
		changed := d.activity.Changed()
		if !d.activity.Active() {
			d.log.Debug("simulation inactive, waiting")
			select {
			case <-ctx.Done():
				return nil
			case <-changed:
			}
			d.last = d.clock.NowMillis()
			continue
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := d.Step(); err != nil {
				return err
			}
		}
	}
}
