// SPDX-License-Identifier: EPL-2.0

// Package buffer provides shared-memory streaming buffers for single-channel
// sample data.
//
// One producer feeds a backend buffer while any number of independent
// consumers read overlapping, differently-sized windows of the same stream
// without per-consumer copies and without the producer ever blocking on a
// slow consumer.
//
// # Backends
//
// A Backend owns the raw storage for one channel. Two implementations exist:
//
//   - RingBuffer: a dynamic, continuously written buffer. Storage is twice
//     the logical size so the most recent N samples are always one contiguous
//     slice, never split across a wrap boundary.
//   - FileBuffer: a static buffer, fully materialized once (typically from a
//     decoded audio file) and immutable afterwards.
//
// Backends allocate lazily: a RingBuffer holds no storage until the first
// view is opened, and frees it again when the last view closes (unless
// frozen).
//
// # Mediators and views
//
// A mediator wraps exactly one backend and arbitrates demand from any number
// of views:
//
//	ring := buffer.NewRingBuffer(48000, 0, 1024)
//	med := buffer.NewDynamicMediator(ring)
//
//	view, err := med.Open(0, 4096)
//	if err != nil {
//	    // backend could not be activated
//	}
//	defer view.Close()
//
// Whenever the view set changes, a dynamic mediator recomputes the backend
// size from the union of view demands: the backend always retains enough
// history for the most demanding open consumer and shrinks back when that
// consumer disconnects.
//
// # Reading
//
// Sample data is only valid while the backend lock is held, so reads happen
// inside a callback scoped to the lock:
//
//	ok := view.TryData(func(samples []float32) {
//	    plot(samples)
//	})
//	if !ok {
//	    // producer was mid-write; skip this frame
//	}
//
// TryData never blocks, which keeps a render loop from stuttering at the cost
// of occasionally showing one stale frame. Producers use the blocking
// RingBuffer.Write so no samples are dropped. The samples slice aliases live
// storage and must not be retained after the callback returns; use CopyData
// for an owned copy.
//
// Reads clamp to whatever data is available. A window larger than the
// current content yields a shorter slice, never an error and never a panic.
package buffer
