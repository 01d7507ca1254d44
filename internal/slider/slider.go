// Package slider holds the seat-slider thumb positioning. The widget never
// owns the numeric value; it renders whatever value it is handed and reports
// where the custom thumb sits for the current container width.
package slider

import (
	"sync"
	"time"
)

// DefaultThumbWidth is the custom thumb's width in pixels.
const DefaultThumbWidth = 40

// remeasureDelay gives the layout pass time to settle before retrying a
// measurement that wasn't available yet.
const remeasureDelay = 50 * time.Millisecond

// Position maps a value within [min,max] to the pixel offset of the thumb's
// center, keeping the thumb fully inside the container at both extremes.
func Position(value, min, max int, containerWidth, thumbWidth float64) float64 {
	percent := float64(value-min) / float64(max-min)
	return percent*(containerWidth-thumbWidth) + thumbWidth/2
}

// Measure reports the container's current width in pixels. ok is false while
// the container has not been laid out yet.
type Measure func() (widthPx float64, ok bool)

// Widget recomputes the thumb position whenever the value changes or the
// container resizes. When the width is not yet known it defers: a single
// pending retry fires after a short delay, and any resize event also
// recomputes. Close cancels the pending retry.
type Widget struct {
	min        int
	max        int
	thumbWidth float64
	measure    Measure

	mu            sync.Mutex
	value         int
	position      float64
	positionKnown bool
	retry         *time.Timer
	closed        bool
}

func NewWidget(min, max int, measure Measure) *Widget {
	if max <= min {
		panic("slider: max must be above min")
	}
	w := &Widget{
		min:        min,
		max:        max,
		thumbWidth: DefaultThumbWidth,
		measure:    measure,
		value:      min,
	}
	w.mu.Lock()
	w.recomputeLocked()
	w.mu.Unlock()
	return w
}

// SetValue stores the value pushed down by the controller and recomputes.
func (w *Widget) SetValue(v int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.value = v
	w.recomputeLocked()
}

// Resize recomputes after a container-size change.
func (w *Widget) Resize() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.recomputeLocked()
}

// Position returns the thumb-center offset. ok is false while the container
// width is still unknown; no nonsensical offset is ever reported.
func (w *Widget) Position() (pos float64, ok bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.position, w.positionKnown
}

// Value returns the last value pushed into the widget.
func (w *Widget) Value() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.value
}

// Close releases the pending deferred recomputation, if any.
func (w *Widget) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
	if w.retry != nil {
		w.retry.Stop()
		w.retry = nil
	}
}

func (w *Widget) recomputeLocked() {
	if w.closed {
		return
	}
	width, ok := w.measure()
	if !ok {
		w.positionKnown = false
		w.scheduleRetryLocked()
		return
	}
	w.position = Position(w.value, w.min, w.max, width, w.thumbWidth)
	w.positionKnown = true
}

// scheduleRetryLocked arms at most one deferred re-measure.
func (w *Widget) scheduleRetryLocked() {
	if w.retry != nil {
		return
	}
	w.retry = time.AfterFunc(remeasureDelay, func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		w.retry = nil
		w.recomputeLocked()
	})
}
