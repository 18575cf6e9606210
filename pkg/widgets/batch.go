package widgets

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"gitlab.com/foundationdata/widgetboard/pkg/data"
	"gitlab.com/foundationdata/widgetboard/pkg/registry"
)

// Task is one widget content render for RenderBatch.
type Task struct {
	Def    registry.Definition
	Width  int
	Height int
}

// RenderBatch renders tasks on up to workers goroutines and returns the
// contents in task order. A render that panics yields a short error line
// in its slot instead of taking the whole frame down. workers <= 0 uses
// GOMAXPROCS; 1 renders serially.
func RenderBatch(tasks []Task, store *data.Store, view ViewState, workers int) []string {
	out := make([]string, len(tasks))
	if len(tasks) == 0 {
		return out
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers == 1 || len(tasks) == 1 {
		for i, t := range tasks {
			out[i] = safeRender(t, store, view)
		}
		return out
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for i, t := range tasks {
		g.Go(func() error {
			out[i] = safeRender(t, store, view)
			return nil
		})
	}
	_ = g.Wait()
	return out
}

func safeRender(t Task, store *data.Store, view ViewState) (s string) {
	defer func() {
		if r := recover(); r != nil {
			s = fmt.Sprintf("[render panic: %v]", r)
		}
	}()
	return Render(t.Def, store, view, t.Width, t.Height)
}
