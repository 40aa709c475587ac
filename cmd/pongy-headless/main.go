package main

import (
	"bufio"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"pongy/internal/config"
	"pongy/internal/frame"
	"pongy/internal/pong"
	"pongy/internal/renderer"
)

// idleInput never presses anything; the computer plays against an empty court.
type idleInput struct{}

func (idleInput) Poll() (pong.Input, error) { return pong.Input{}, nil }

// Runs a session without a terminal and streams every frame to stdout as
// size-delimited protobuf messages.
func main() {
	configPath := flag.String("config", "", "path to a .json or .toml config file")
	frames := flag.Int("frames", 600, "number of frames to simulate")
	flag.Parse()

	cfg := config.LoadConfig(*configPath)
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.Level(cfg.LogLevel)})))

	if err := run(cfg, *frames); err != nil {
		slog.Error("headless session failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(cfg config.Configuration, frames int) error {
	id := uuid.NewString()
	log := slog.Default().With(slog.String("session", id))

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	seed := cfg.SessionSeed()
	session := pong.NewSession(seed, pong.Rules{BallSpeedCap: cfg.BallSpeedCap})
	stream := renderer.NewStream(out, id)
	clock := frame.NewStepClock(cfg.FrameInterval())
	driver := frame.NewDriver(session, idleInput{}, clock, stream, frame.NewActivitySwitch(true), log)

	start := time.Now()
	log.Info("headless session started", slog.Uint64("seed", seed), slog.Int("frames", frames))
	for i := 0; i < frames; i++ {
		if err := driver.Step(); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
	}
	log.Info("headless session finished",
		slog.String("score", session.Score.Text()),
		slog.Duration("elapsed", time.Since(start)))

	return out.Flush()
}
