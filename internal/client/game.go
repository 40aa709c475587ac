package client

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"pongy/internal/ansii"
	"pongy/internal/config"
	"pongy/internal/frame"
	"pongy/internal/pong"
	"pongy/internal/renderer"
)

// Game plays one session in the current terminal until the player quits or
// something fatal happens. The terminal is put back the way it was before
// Game returns. The returned string is the final score.
func Game(ctx context.Context, cfg config.Configuration, log *slog.Logger) (string, error) {
	log = log.With(slog.String("session", uuid.NewString()))

	prev, err := ansii.MakeTermRaw()
	if err != nil {
		return "", fmt.Errorf("make terminal raw: %w", err)
	}
	defer ansii.RestoreTerm(prev)

	os.Stdout.WriteString(string(ansii.Screen.AltScreenOn + ansii.Screen.HideCursor + ansii.Screen.FocusOn))
	defer os.Stdout.WriteString(string(ansii.Screen.FocusOff + ansii.Screen.ShowCursor + ansii.Screen.AltScreenOff))

	screen := renderer.NewTerminal(os.Stdout, ansii.GetTermSize, cfg.ShowFrameStats)
	if err := screen.Restore(); err != nil {
		return "", fmt.Errorf("init screen: %w", err)
	}

	activity := frame.NewActivitySwitch(true)
	keyboard := NewKeyboard(cfg.KeyHold(), activity, log)

	// Input handler
	go keyboard.Listen(os.Stdin)

	seed := cfg.SessionSeed()
	session := pong.NewSession(seed, pong.Rules{BallSpeedCap: cfg.BallSpeedCap})
	driver := frame.NewDriver(session, keyboard, frame.NewSystemClock(), screen, activity, log)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case <-keyboard.Done():
			log.Debug("quit requested")
			cancel()
		case <-ctx.Done():
		}
	}()

	log.Info("session started", slog.Uint64("seed", seed), slog.Duration("frame_interval", cfg.FrameInterval()))
	err = driver.Run(ctx, cfg.FrameInterval())
	log.Info("session ended", slog.String("score", session.Score.Text()), slog.Any("error", err))

	return session.Score.Text(), err
}
