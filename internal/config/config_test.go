package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "config.json", `{"logLevel": -4, "frameRate": 30, "ballSpeedCap": 900, "seed": 12, "showFrameStats": true}`)

	c := LoadConfig(path)
	if c.LogLevel != -4 || c.FrameRate != 30 || c.BallSpeedCap != 900 || c.Seed != 12 || !c.ShowFrameStats {
		t.Fatalf("unexpected config %+v", c)
	}
	if c.KeyHoldMs != 200 {
		t.Errorf("unset key hold = %d, want default 200", c.KeyHoldMs)
	}
	if c.FrameInterval() != time.Second/30 {
		t.Errorf("frame interval = %v", c.FrameInterval())
	}
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "pongy.toml", `
log_level = 4
log_file = "pongy.log"
frame_rate = 120
key_hold_ms = 300
`)

	c := LoadConfig(path)
	if c.LogLevel != 4 || c.LogFile != "pongy.log" || c.FrameRate != 120 {
		t.Fatalf("unexpected config %+v", c)
	}
	if c.KeyHold() != 300*time.Millisecond {
		t.Errorf("key hold = %v", c.KeyHold())
	}
}

func TestLoadFallsBackToDefaults(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"missing", filepath.Join(t.TempDir(), "nope.json")},
		{"broken json", writeFile(t, "bad.json", `{"frameRate": `)},
		{"broken toml", writeFile(t, "bad.toml", `frame_rate = = 3`)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if c := LoadConfig(tt.path); c != Default() {
				t.Errorf("got %+v, want defaults", c)
			}
		})
	}
}

func TestLoadRepairsNonsense(t *testing.T) {
	path := writeFile(t, "config.json", `{"frameRate": -1, "keyHoldMs": 0, "ballSpeedCap": -5}`)

	c := LoadConfig(path)
	if c.FrameRate != 60 || c.KeyHoldMs != 200 || c.BallSpeedCap != 0 {
		t.Errorf("got %+v", c)
	}
}

func TestLoadRaisesLowSpeedCap(t *testing.T) {
	tests := []struct {
		cap  string
		want float64
	}{
		{"120", 300},
		{"300", 300},
		{"301", 301},
		{"0", 0},
	}
	for _, tt := range tests {
		t.Run(tt.cap, func(t *testing.T) {
			path := writeFile(t, "config.json", `{"ballSpeedCap": `+tt.cap+`}`)
			if c := LoadConfig(path); c.BallSpeedCap != tt.want {
				t.Errorf("cap = %v, want %v", c.BallSpeedCap, tt.want)
			}
		})
	}
}

func TestSessionSeed(t *testing.T) {
	if got := (Configuration{Seed: 9}).SessionSeed(); got != 9 {
		t.Errorf("seed = %d, want 9", got)
	}
	if (Configuration{}).SessionSeed() == 0 {
		t.Error("clock seed should not be zero")
	}
}
