package client

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"reflect"
	"strings"
	"testing"
	"time"

	"pongy/internal/ansii"
	"pongy/internal/frame"
	"pongy/internal/pong"
)

func newTestKeyboard(t *testing.T) (*Keyboard, *time.Time, *frame.ActivitySwitch) {
	t.Helper()
	now := time.Unix(1000, 0)
	activity := frame.NewActivitySwitch(true)
	k := NewKeyboard(200*time.Millisecond, activity, slog.New(slog.NewTextHandler(io.Discard, nil)))
	k.now = func() time.Time { return now }
	return k, &now, activity
}

func poll(t *testing.T, k *Keyboard) pong.Input {
	t.Helper()
	in, err := k.Poll()
	if err != nil {
		t.Fatalf("Poll: %v", err)
	}
	return in
}

func TestProcessInput(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []UiAction
	}{
		{"letters", "wWsS", []UiAction{Up, Up, Down, Down}},
		{"arrows", "\033[A\033[B", []UiAction{UpArrow, DownArrow}},
		{"focus", "\033[O\033[I", []UiAction{FocusLost, FocusGained}},
		{"quit", "q", []UiAction{Quit}},
		{"ctrl-c", "\x03", []UiAction{Interrupt}},
		{"pause", "p", []UiAction{Pause}},
		{"ignored", "x\033[C1", nil},
		{"lone escape", "\033", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ProcessInput([]byte(tt.raw)); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ProcessInput(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestKeyHeldWithinWindow(t *testing.T) {
	k, now, _ := newTestKeyboard(t)

	if in := poll(t, k); in.Up || in.Down {
		t.Fatalf("fresh keyboard reports %+v", in)
	}

	k.Feed([]byte("w"))
	*now = now.Add(150 * time.Millisecond)
	if in := poll(t, k); !in.Up || in.Down {
		t.Fatalf("within hold window: %+v", in)
	}

	*now = now.Add(100 * time.Millisecond)
	if in := poll(t, k); in.Up {
		t.Fatal("key still held after the hold window")
	}
}

func TestOppositeKeyReleases(t *testing.T) {
	k, _, _ := newTestKeyboard(t)

	k.Feed([]byte("\033[A"))
	k.Feed([]byte("\033[B"))
	if in := poll(t, k); in.Up || !in.Down {
		t.Fatalf("got %+v, want only down", in)
	}
}

func TestFocusAndPauseDriveActivity(t *testing.T) {
	k, _, activity := newTestKeyboard(t)

	k.Feed([]byte(ansii.FocusOut))
	if activity.Active() {
		t.Fatal("still active after losing focus")
	}
	k.Feed([]byte(ansii.FocusIn))
	if !activity.Active() {
		t.Fatal("inactive after regaining focus")
	}
	k.Feed([]byte("p"))
	if activity.Active() {
		t.Fatal("pause did not deactivate")
	}
	k.Feed([]byte("P"))
	if !activity.Active() {
		t.Fatal("second pause did not resume")
	}
}

func TestQuitClosesDoneOnce(t *testing.T) {
	k, _, _ := newTestKeyboard(t)
	k.Feed([]byte("qq\x03"))

	select {
	case <-k.Done():
	default:
		t.Fatal("Done not closed after quit")
	}
}

type scriptedReader struct {
	reads []struct {
		data string
		err  error
	}
}

func (r *scriptedReader) Read(p []byte) (int, error) {
	if len(r.reads) == 0 {
		return 0, io.EOF
	}
	next := r.reads[0]
	r.reads = r.reads[1:]
	return copy(p, next.data), next.err
}

func (r *scriptedReader) add(data string, err error) {
	r.reads = append(r.reads, struct {
		data string
		err  error
	}{data, err})
}

func TestListenEndsOnEOF(t *testing.T) {
	k, _, _ := newTestKeyboard(t)
	r := &scriptedReader{}
	r.add("s", nil)

	k.Listen(r)

	_, err := k.Poll()
	if !errors.Is(err, io.EOF) {
		t.Fatalf("err = %v, want io.EOF", err)
	}
	if errors.Is(err, frame.ErrInputLost) {
		t.Fatal("EOF must not be treated as transient")
	}
	if _, err := k.Poll(); err == nil {
		t.Fatal("fatal error reported only once")
	}
}

func TestListenRetriesThenGivesUp(t *testing.T) {
	k, _, _ := newTestKeyboard(t)
	r := &scriptedReader{}
	flaky := errors.New("resource temporarily unavailable")
	for i := 0; i < maxReadFailures; i++ {
		r.add("", flaky)
	}

	k.Listen(r)

	_, err := k.Poll()
	if !errors.Is(err, flaky) || errors.Is(err, frame.ErrInputLost) {
		t.Fatalf("err = %v, want a fatal wrap of the read error", err)
	}
}

func TestListenLogsRetriesWithSessionLogger(t *testing.T) {
	var logs bytes.Buffer
	log := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug})).With(slog.String("session", "abc"))
	k := NewKeyboard(200*time.Millisecond, frame.NewActivitySwitch(true), log)
	r := &scriptedReader{}
	r.add("", errors.New("resource temporarily unavailable"))

	k.Listen(r)

	got := logs.String()
	if !strings.Contains(got, "keyboard read failed") || !strings.Contains(got, "session=abc") {
		t.Errorf("retry not logged with the session logger: %q", got)
	}
}

func TestTransientFailureReportedOnce(t *testing.T) {
	k, _, _ := newTestKeyboard(t)
	k.fail(errors.Join(frame.ErrInputLost, errors.New("hiccup")))

	if _, err := k.Poll(); !errors.Is(err, frame.ErrInputLost) {
		t.Fatalf("err = %v, want ErrInputLost", err)
	}
	if _, err := k.Poll(); err != nil {
		t.Fatalf("transient error repeated: %v", err)
	}
}
