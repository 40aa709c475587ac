package renderer

import (
	"fmt"
	"io"

	"google.golang.org/protobuf/encoding/protodelim"
	"google.golang.org/protobuf/types/known/structpb"

	"pongy/internal/pong"
)

// Stream writes every frame as a size-delimited protobuf Struct, for
// consumers that draw or analyse the game outside this process.
type Stream struct {
	w       io.Writer
	session string
}

func NewStream(w io.Writer, session string) *Stream {
	return &Stream{w: w, session: session}
}

func (s *Stream) Render(snap pong.Snapshot) error {
	entities := make([]any, 0, len(snap.Entities))
	for _, e := range snap.Entities {
		entities = append(entities, map[string]any{
			"kind": e.Kind.String(),
			"x":    e.Pos.X,
			"y":    e.Pos.Y,
			"vx":   e.Vel.X,
			"vy":   e.Vel.Y,
		})
	}

	msg, err := structpb.NewStruct(map[string]any{
		"session":       s.session,
		"tick":          snap.Tick,
		"score":         snap.ScoreText,
		"score_changed": snap.ScoreChanged,
		"serve":         snap.Serve.String(),
		"entities":      entities,
	})
	if err != nil {
		return fmt.Errorf("build frame message: %w", err)
	}

	if _, err := protodelim.MarshalTo(s.w, msg); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}

// Restore is a no-op; a stream has nothing to lose.
func (s *Stream) Restore() error {
	return nil
}

// ReadFrame reads the next frame written by a Stream.
func ReadFrame(r protodelim.Reader) (*structpb.Struct, error) {
	msg := &structpb.Struct{}
	if err := protodelim.UnmarshalFrom(r, msg); err != nil {
		return nil, err
	}
	return msg, nil
}
