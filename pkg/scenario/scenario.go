// Package scenario replays scripted board sessions without a terminal. A
// scenario is a YAML document naming board settings and a list of steps;
// each step goes through the same board.Interaction the TUI drives with the
// mouse, so a replay exercises exactly the snapping users see.
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"gitlab.com/foundationdata/widgetboard/pkg/board"
	"gitlab.com/foundationdata/widgetboard/pkg/geometry"
	"gitlab.com/foundationdata/widgetboard/pkg/registry"
	"gitlab.com/foundationdata/widgetboard/pkg/snap"
)

// ErrInvalid is wrapped by every Load validation failure.
var ErrInvalid = errors.New("invalid scenario")

// Op is a step operation.
type Op string

const (
	OpAdd    Op = "add"
	OpDrag   Op = "drag"
	OpResize Op = "resize"
	OpCancel Op = "cancel"
	OpRemove Op = "remove"
	OpFront  Op = "front"
	OpSnap   Op = "snap"
)

// Scenario is one scripted session.
type Scenario struct {
	Name  string    `yaml:"name"`
	Board BoardSpec `yaml:"board"`
	Steps []Step    `yaml:"steps"`
}

// BoardSpec configures the board a scenario runs on. Zero width or height
// leaves the board unbounded.
type BoardSpec struct {
	SnapDistance *float64 `yaml:"snap_distance"`
	Width        float64  `yaml:"width"`
	Height       float64  `yaml:"height"`
	ZSeed        int      `yaml:"z_seed"`
}

// Step is one operation on the widget of Kind.
//
// For drag and cancel, To is the target top-left position; for resize it is
// the target size; for snap it is the proposed position. Path lists
// intermediate points in the same terms, visited before To.
type Step struct {
	Op     Op          `yaml:"op"`
	Kind   string      `yaml:"kind"`
	To     []float64   `yaml:"to,omitempty"`
	Path   [][]float64 `yaml:"path,omitempty"`
	Handle string      `yaml:"handle,omitempty"`
}

// Load decodes and validates a scenario. Unknown fields are rejected.
func Load(r io.Reader) (*Scenario, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)

	var s Scenario
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalid)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadFile is Load on a file path.
func LoadFile(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	s, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Validate checks the board settings and every step's shape. Whether kinds
// exist is only known once a registry is at hand, so Run reports those.
func (s *Scenario) Validate() error {
	if d := s.Board.SnapDistance; d != nil && (*d < 0 || !geometry.IsFinite(*d)) {
		return fmt.Errorf("%w: snap_distance %v", ErrInvalid, *d)
	}
	if s.Board.Width < 0 || s.Board.Height < 0 {
		return fmt.Errorf("%w: negative board size", ErrInvalid)
	}
	for i, st := range s.Steps {
		if err := st.validate(); err != nil {
			return fmt.Errorf("%w: step %d: %v", ErrInvalid, i+1, err)
		}
	}
	return nil
}

func (st Step) validate() error {
	if st.Kind == "" {
		return errors.New("kind is required")
	}
	switch st.Op {
	case OpAdd, OpRemove, OpFront:
		if len(st.To) != 0 || len(st.Path) != 0 {
			return fmt.Errorf("%s takes no to or path", st.Op)
		}
		return nil
	case OpDrag, OpResize, OpCancel, OpSnap:
	default:
		return fmt.Errorf("unknown op %q", st.Op)
	}
	if err := point(st.To); err != nil {
		return fmt.Errorf("to: %w", err)
	}
	for j, p := range st.Path {
		if err := point(p); err != nil {
			return fmt.Errorf("path[%d]: %w", j, err)
		}
	}
	if st.Op != OpResize && st.Handle != "" {
		return errors.New("handle only applies to resize")
	}
	if _, err := parseHandle(st.Handle); err != nil {
		return err
	}
	return nil
}

func point(p []float64) error {
	if len(p) != 2 {
		return fmt.Errorf("want [x, y], got %d numbers", len(p))
	}
	if !geometry.IsFinite(p[0]) || !geometry.IsFinite(p[1]) {
		return errors.New("not finite")
	}
	return nil
}

func parseHandle(s string) (board.Handle, error) {
	switch s {
	case "", "corner":
		return board.HandleCorner, nil
	case "right":
		return board.HandleRight, nil
	case "bottom":
		return board.HandleBottom, nil
	default:
		return 0, fmt.Errorf("unknown handle %q", s)
	}
}

// NewBoard builds a board configured from s.Board.
func (s *Scenario) NewBoard(reg *registry.Registry, opts ...board.Option) *board.Board {
	var own []board.Option
	if d := s.Board.SnapDistance; d != nil {
		own = append(own, board.WithSnapDistance(*d))
	}
	if s.Board.Width > 0 && s.Board.Height > 0 {
		own = append(own, board.WithBounds(geometry.Rect{Width: s.Board.Width, Height: s.Board.Height}))
	}
	if s.Board.ZSeed != 0 {
		own = append(own, board.WithZSeed(s.Board.ZSeed))
	}
	return board.New(reg, append(own, opts...)...)
}

// StepResult is what one step did.
type StepResult struct {
	Step   int          `yaml:"step"`
	Op     Op           `yaml:"op"`
	Kind   string       `yaml:"kind"`
	ID     string       `yaml:"id,omitempty"`
	Guides []snap.Guide `yaml:"guides,omitempty"`
	// After is the widget geometry once the step finished; nil when the
	// widget is gone.
	After *geometry.Rect `yaml:"after,omitempty"`
	// Snap holds the pure snap query result of a snap step.
	Snap *snap.Result `yaml:"snap,omitempty"`
}

// Report is the outcome of Run.
type Report struct {
	Name  string           `yaml:"name,omitempty"`
	Steps []StepResult     `yaml:"steps"`
	Final []board.Instance `yaml:"final"`
}
