package charrom

import (
	"context"
	"errors"
	"sync"
)

// Background rasterization with progress and cancellation. Long rune
// ranges are processed in bounded batches so a cancellation request
// takes effect promptly and progress callbacks arrive at a steady
// cadence.

// ErrCancelled is returned by RasterizeTask.Result when the task was
// cancelled. Cancellation is a terminal outcome distinct from
// failure: a cancelled task never delivers characters.
var ErrCancelled = errors.New("rasterization cancelled")

// rasterBatchSize is how many glyphs are rendered between
// cancellation checks and progress notifications.
const rasterBatchSize = 8

// ProgressFunc receives (processed, total) after each batch.
type ProgressFunc func(processed, total int)

// RasterizeTask is a handle to an in-flight background
// rasterization.
type RasterizeTask struct {
	cancel context.CancelFunc
	done   chan struct{}

	mu     sync.Mutex
	result []Character
	err    error
}

// Start renders the rune range on a background goroutine, invoking
// onProgress (if non-nil) after every batch. Cancel the returned task
// at any point; once cancelled, no further progress callbacks fire
// and Result returns ErrCancelled.
func (r *Rasterizer) Start(runes []rune, onProgress ProgressFunc) *RasterizeTask {
	return startRasterTask(runes, r.RasterizeRune, onProgress)
}

// startRasterTask runs the batch loop over an arbitrary glyph render
// function.
func startRasterTask(runes []rune, render func(rune) Character, onProgress ProgressFunc) *RasterizeTask {
	ctx, cancel := context.WithCancel(context.Background())
	t := &RasterizeTask{
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go func() {
		defer close(t.done)
		total := len(runes)
		out := make([]Character, 0, total)
		for start := 0; start < total; start += rasterBatchSize {
			select {
			case <-ctx.Done():
				t.finish(nil, ErrCancelled)
				return
			default:
			}

			end := start + rasterBatchSize
			if end > total {
				end = total
			}
			for _, ch := range runes[start:end] {
				out = append(out, render(ch))
			}
			if onProgress != nil && ctx.Err() == nil {
				onProgress(end, total)
			}
		}
		if ctx.Err() != nil {
			t.finish(nil, ErrCancelled)
			return
		}
		t.finish(out, nil)
	}()

	return t
}

func (t *RasterizeTask) finish(result []Character, err error) {
	t.mu.Lock()
	t.result = result
	t.err = err
	t.mu.Unlock()
}

// Cancel requests termination. Safe to call multiple times and after
// completion, where it has no effect.
func (t *RasterizeTask) Cancel() {
	t.cancel()
}

// Result blocks until the task finishes and returns the rendered
// characters, or ErrCancelled if the task was cancelled first.
func (t *RasterizeTask) Result() ([]Character, error) {
	<-t.done
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.result, t.err
}

// Cancelled reports whether the task ended due to cancellation.
// Blocks until the task finishes.
func (t *RasterizeTask) Cancelled() bool {
	_, err := t.Result()
	return errors.Is(err, ErrCancelled)
}
