package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"pongy/internal/client"
	"pongy/internal/config"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	var cfg config.Configuration
	if len(args) == 0 {
		cfg = config.LoadConfig("")
	} else {
		cfg = config.LoadConfig(args[0])
	}

	// Stdout is the playing field, so logs only go to a file when asked.
	var logOut io.Writer = io.Discard
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Failed to open log file:", err)
			return 1
		}
		defer f.Close()
		logOut = f
	}
	log := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: slog.Level(cfg.LogLevel)}))
	slog.SetDefault(log)

	fmt.Println("Welcome to pongy! W/S or arrows to move, P to pause, Q to quit.")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	score, err := client.Game(ctx, cfg, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Pongy will now exit:", err)
		return 1
	}
	fmt.Println("Final score:", score)
	return 0
}
