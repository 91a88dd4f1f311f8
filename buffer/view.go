// SPDX-License-Identifier: EPL-2.0

package buffer

import "github.com/google/uuid"

// View is a lightweight, independently movable window (start + length) into
// a mediator's backend: the unit handed to a consumer. Views hold only
// metadata, never sample data.
//
// A view belongs to a single consumer; its methods are not meant to be called
// from multiple goroutines at once. Distinct views of the same mediator are
// fully independent.
type View struct {
	med    *mediator
	id     uuid.UUID
	start  int
	length int
	closed bool
}

// ID identifies this view within its mediator.
func (v *View) ID() uuid.UUID { return v.id }

// Start is the window offset into the backend's logical window.
func (v *View) Start() int { return v.start }

// Length is the requested window size in samples. Reads may return fewer
// when the backend currently holds less.
func (v *View) Length() int { return v.length }

// SetRange moves the view's window and reruns the mediator's resize pass.
func (v *View) SetRange(start, length int) error {
	if v.closed {
		return ErrViewClosed
	}

	v.med.mu.Lock()
	defer v.med.mu.Unlock()

	v.start = start
	v.length = length
	return v.med.resizeLocked()
}

// Close deregisters the view from its mediator and reruns the resize pass.
// Closing twice returns ErrUnknownView.
func (v *View) Close() error {
	return v.med.Close(v)
}

// Data runs fn on the view's current window under the backend's blocking
// lock. The window is [start, start+length) clamped to the data actually
// available, so fn may see fewer samples than Length, possibly none. Returns
// false when the backend storage is unallocated (fn is not called).
//
// The samples slice aliases live storage; it must not escape fn.
func (v *View) Data(fn func(samples []float32)) bool {
	if v.closed {
		return false
	}

	b := v.med.backend
	b.Lock()
	defer b.Unlock()

	data, ok := b.snapshot()
	if !ok {
		return false
	}
	fn(v.clamp(data))
	return true
}

// TryData is like Data but never blocks. When the producer is mid-write it
// returns false and the consumer skips this frame's read instead of
// stuttering.
func (v *View) TryData(fn func(samples []float32)) bool {
	if v.closed {
		return false
	}

	b := v.med.backend
	if !b.TryLock() {
		return false
	}
	defer b.Unlock()

	data, ok := b.snapshot()
	if !ok {
		return false
	}
	fn(v.clamp(data))
	return true
}

// CopyData returns an owned copy of the view's current window, or nil when
// the backend storage is unallocated. It blocks on the backend lock.
func (v *View) CopyData() []float32 {
	var out []float32
	if !v.Data(func(samples []float32) {
		out = make([]float32, len(samples))
		copy(out, samples)
	}) {
		return nil
	}
	return out
}

// clamp restricts [start, start+length) to the available data. Out-of-range
// windows yield shorter or empty slices, never a panic.
func (v *View) clamp(data []float32) []float32 {
	start := min(max(v.start, 0), len(data))
	end := min(v.start+v.length, len(data))
	if end < start {
		end = start
	}
	return data[start:end]
}
