package config

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"pongy/internal/pong"
)

const defaultPath = "config.json"

type Configuration struct {
	LogLevel int    `json:"logLevel" toml:"log_level"`
	LogFile  string `json:"logFile" toml:"log_file"`

	// FrameRate is how many times per second the frame driver wakes up.
	FrameRate int `json:"frameRate" toml:"frame_rate"`
	// KeyHoldMs is how long a key counts as held after the terminal last
	// reported it. Terminals only send presses and auto-repeats.
	KeyHoldMs int `json:"keyHoldMs" toml:"key_hold_ms"`

	// BallSpeedCap limits the ball's horizontal speed; 0 means no limit.
	BallSpeedCap float64 `json:"ballSpeedCap" toml:"ball_speed_cap"`
	// Seed fixes the serve sequence; 0 picks one from the clock.
	Seed uint64 `json:"seed" toml:"seed"`

	ShowFrameStats bool `json:"showFrameStats" toml:"show_frame_stats"`
}

func Default() Configuration {
	return Configuration{
		LogLevel:  int(slog.LevelInfo),
		FrameRate: 60,
		KeyHoldMs: 200,
	}
}

// LoadConfig reads the configuration at path, or config.json when path is
// empty. Files ending in .toml are read as TOML, anything else as JSON. A
// missing or broken file leaves the defaults in place.
func LoadConfig(path string) Configuration {
	c := Default()

	if path == "" {
		path = defaultPath
	}
	cf, err := os.ReadFile(path)
	if err != nil {
		slog.Info("failed to open config at path provided, using default config instead", slog.String("path", path))
		return c
	}

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = toml.Unmarshal(cf, &c)
	} else {
		err = json.Unmarshal(cf, &c)
	}
	if err != nil {
		slog.Info("failed to read configuration, using default config instead", slog.Any("error", err))
		return Default()
	}

	if c.FrameRate <= 0 {
		c.FrameRate = Default().FrameRate
	}
	if c.KeyHoldMs <= 0 {
		c.KeyHoldMs = Default().KeyHoldMs
	}
	if c.BallSpeedCap < 0 {
		c.BallSpeedCap = 0
	}
	if c.BallSpeedCap > 0 && c.BallSpeedCap < pong.MinBallSpeedCap {
		slog.Info("ball speed cap too low, raising it", slog.Float64("cap", c.BallSpeedCap), slog.Float64("min", pong.MinBallSpeedCap))
		c.BallSpeedCap = pong.MinBallSpeedCap
	}
	return c
}

func (c Configuration) FrameInterval() time.Duration {
	if c.FrameRate <= 0 {
		c.FrameRate = Default().FrameRate
	}
	return time.Second / time.Duration(c.FrameRate)
}

func (c Configuration) KeyHold() time.Duration {
	return time.Duration(c.KeyHoldMs) * time.Millisecond
}

// SessionSeed returns the configured seed, or a clock derived one.
func (c Configuration) SessionSeed() uint64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return uint64(time.Now().UnixNano())
}
