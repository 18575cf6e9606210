package scenario

import (
	"context"
	"errors"
	"fmt"

	"gitlab.com/foundationdata/widgetboard/pkg/board"
	"gitlab.com/foundationdata/widgetboard/pkg/snap"
)

// ErrNotPlaced is returned for a step on a kind that is not on the board.
var ErrNotPlaced = errors.New("widget kind not on board")

// Run applies the steps to b in order and reports what each did. It stops
// at the first failing step or when ctx is done.
func (s *Scenario) Run(ctx context.Context, b *board.Board) (Report, error) {
	rep := Report{Name: s.Name}
	it := board.NewInteraction(b)
	for i, st := range s.Steps {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		res, err := runStep(b, it, st)
		if err != nil {
			return rep, fmt.Errorf("step %d (%s %s): %w", i+1, st.Op, st.Kind, err)
		}
		res.Step = i + 1
		rep.Steps = append(rep.Steps, res)
	}
	rep.Final = b.List()
	return rep, nil
}

func runStep(b *board.Board, it *board.Interaction, st Step) (StepResult, error) {
	res := StepResult{Op: st.Op, Kind: st.Kind}

	if st.Op == OpAdd {
		in, err := b.AddByKind(st.Kind)
		if err != nil {
			return res, err
		}
		res.ID = in.ID
		res.After = rectOf(b, in.ID)
		return res, nil
	}

	in, ok := b.ByKind(st.Kind)
	if !ok {
		return res, ErrNotPlaced
	}
	res.ID = in.ID

	switch st.Op {
	case OpRemove:
		b.Remove(in.ID)
	case OpFront:
		b.BringToFront(in.ID)
	case OpSnap:
		r := b.Snap(in.ID, st.To[0], st.To[1])
		res.Snap = &r
	case OpDrag, OpCancel:
		if err := it.BeginDrag(in.ID, in.X, in.Y); err != nil {
			return res, err
		}
		guides, err := walk(it, st, func(p []float64) (float64, float64) { return p[0], p[1] })
		if err != nil {
			it.Cancel()
			return res, err
		}
		res.Guides = guides
		if st.Op == OpCancel {
			it.Cancel()
		} else {
			it.End()
		}
	case OpResize:
		h, _ := parseHandle(st.Handle)
		if err := it.BeginResize(in.ID, h, in.X+in.Width, in.Y+in.Height); err != nil {
			return res, err
		}
		guides, err := walk(it, st, func(p []float64) (float64, float64) { return in.X + p[0], in.Y + p[1] })
		if err != nil {
			it.Cancel()
			return res, err
		}
		res.Guides = guides
		it.End()
	}
	res.After = rectOf(b, in.ID)
	return res, nil
}

// walk moves the pointer through the path and on to the target, returning
// the guides shown at the target.
func walk(it *board.Interaction, st Step, pointer func([]float64) (float64, float64)) ([]snap.Guide, error) {
	for _, p := range append(append([][]float64(nil), st.Path...), st.To) {
		if err := it.Move(pointer(p)); err != nil {
			return nil, err
		}
	}
	return it.Guides(), nil
}
