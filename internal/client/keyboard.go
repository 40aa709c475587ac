package client

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"pongy/internal/frame"
	"pongy/internal/pong"
)

const (
	maxReadFailures = 5
	readRetryDelay  = 50 * time.Millisecond
)

// Keyboard turns raw terminal reads into held-key snapshots. A terminal only
// reports presses and auto-repeats, so a key counts as held for a short
// window after it was last seen. Pressing one direction releases the other.
type Keyboard struct {
	mu     sync.Mutex
	hold   time.Duration
	now    func() time.Time
	upAt   time.Time
	downAt time.Time
	err    error

	activity *frame.ActivitySwitch
	log      *slog.Logger
	quit     chan struct{}
	quitOnce sync.Once
}

func NewKeyboard(hold time.Duration, activity *frame.ActivitySwitch, log *slog.Logger) *Keyboard {
	if log == nil {
		log = slog.Default()
	}
	return &Keyboard{
		hold:     hold,
		now:      time.Now,
		activity: activity,
		log:      log,
		quit:     make(chan struct{}),
	}
}

// Done is closed once the player asks to quit.
func (k *Keyboard) Done() <-chan struct{} {
	return k.quit
}

func (k *Keyboard) Feed(raw []byte) {
	for _, action := range ProcessInput(raw) {
		switch action {
		case Up, UpArrow:
			k.mu.Lock()
			k.upAt = k.now()
			k.downAt = time.Time{}
			k.mu.Unlock()
		case Down, DownArrow:
			k.mu.Lock()
			k.downAt = k.now()
			k.upAt = time.Time{}
			k.mu.Unlock()
		case Pause:
			k.activity.Toggle()
		case FocusGained:
			k.activity.Set(true)
		case FocusLost:
			k.activity.Set(false)
		case Quit, Interrupt:
			k.quitOnce.Do(func() { close(k.quit) })
		}
	}
}

// Poll reports the keys held right now. A transient read failure is reported
// once, wrapped in frame.ErrInputLost; a fatal one is reported on every call.
func (k *Keyboard) Poll() (pong.Input, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.err != nil {
		err := k.err
		if errors.Is(err, frame.ErrInputLost) {
			k.err = nil
		}
		return pong.Input{}, err
	}

	now := k.now()
	return pong.Input{
		Up:   k.held(k.upAt, now),
		Down: k.held(k.downAt, now),
	}, nil
}

func (k *Keyboard) held(at, now time.Time) bool {
	return !at.IsZero() && now.Sub(at) < k.hold
}

func (k *Keyboard) fail(err error) {
	k.mu.Lock()
	k.err = err
	k.mu.Unlock()
}

// Listen feeds reads from r until it fails for good. Read errors are retried
// a few times before they are escalated to a fatal input failure.
func (k *Keyboard) Listen(r io.Reader) {
	buf := make([]byte, 64)
	failures := 0
	for {
		n, err := r.Read(buf)
		if n > 0 {
			k.Feed(buf[:n])
		}
		if err == nil {
			failures = 0
			continue
		}

		if errors.Is(err, io.EOF) || errors.Is(err, os.ErrClosed) {
			k.fail(fmt.Errorf("read keyboard: %w", err))
			return
		}
		failures++
		if failures >= maxReadFailures {
			k.fail(fmt.Errorf("read keyboard: giving up after %d failures: %w", failures, err))
			return
		}
		k.log.Debug("keyboard read failed, retrying", slog.Any("error", err), slog.Int("failures", failures))
		k.fail(fmt.Errorf("read keyboard: %w: %v", frame.ErrInputLost, err))
		time.Sleep(readRetryDelay)
	}
}
