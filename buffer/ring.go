// SPDX-License-Identifier: EPL-2.0

package buffer

import (
	"sync"

	"github.com/zokrezyl/ymery/utils"
)

// DefaultPeriodSize is the write-chunk granularity used when none is given.
const DefaultPeriodSize = 1024

// RingBuffer is the dynamic backend: a double-depth ring holding the most
// recent N samples of a continuously written stream.
//
// Physical storage is 2N so the logical window is always one contiguous
// slice. The write pointer runs over [0, 2N]; whenever it would pass 2N the
// upper half [N, 2N) is mirrored down to [0, N), which pre-seeds the region
// the next reads start from. This trades double the memory for O(1)
// contiguous reads with no per-read copy and no modular-arithmetic slicing.
type RingBuffer struct {
	mu sync.Mutex

	sampleRate int
	periodSize int

	logicalSize  int // N, always a multiple of periodSize
	physicalSize int // 2N

	storage    []float32 // nil until activated
	writePtr   int
	hasWrapped bool

	active   bool
	frozen   bool
	disposed bool
}

// NewRingBuffer creates a ring buffer for one channel. initialSize is the
// initial logical size in samples (0 for minimal); periodSize is the write
// chunk granularity (0 for DefaultPeriodSize). Storage is not allocated until
// Activate.
func NewRingBuffer(sampleRate, initialSize, periodSize int) *RingBuffer {
	if periodSize <= 0 {
		periodSize = DefaultPeriodSize
	}
	if initialSize <= 0 {
		initialSize = periodSize
	}

	logical := utils.RoundUpToMultiple(initialSize, periodSize)

	return &RingBuffer{
		sampleRate:   sampleRate,
		periodSize:   periodSize,
		logicalSize:  logical,
		physicalSize: logical * 2,
	}
}

func (rb *RingBuffer) SampleRate() int { return rb.sampleRate }
func (rb *RingBuffer) Writable() bool  { return true }

// PeriodSize is the write chunk granularity in samples.
func (rb *RingBuffer) PeriodSize() int { return rb.periodSize }

// Len is the logical size: the window length exposed to consumers.
func (rb *RingBuffer) Len() int {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	return rb.logicalSize
}

// Activate allocates storage lazily and marks the buffer live. It is called
// by the mediator when the first view opens.
func (rb *RingBuffer) Activate() error {
	rb.mu.Lock()
	defer rb.mu.Unlock()

	if rb.disposed {
		return ErrBufferDisposed
	}
	if !rb.active {
		if rb.storage == nil {
			rb.storage = make([]float32, rb.physicalSize)
		}
		rb.active = true
	}
	return nil
}

// Deactivate releases storage unless frozen. It is called by the mediator
// when the last view closes.
func (rb *RingBuffer) Deactivate() {
	rb.mu.Lock()
	defer rb.mu.Unlock()

	if rb.active {
		if !rb.frozen {
			rb.storage = nil
			rb.writePtr = 0
			rb.hasWrapped = false
		}
		rb.active = false
	}
}

// Freeze keeps allocated storage but stops updates: Write becomes a no-op and
// Deactivate will not free the history.
func (rb *RingBuffer) Freeze() {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	rb.frozen = true
}

// Unfreeze resumes updates.
func (rb *RingBuffer) Unfreeze() {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	rb.frozen = false
}

// Dispose releases storage and marks the buffer dead. No background work
// survives it; a later Activate fails with ErrBufferDisposed.
func (rb *RingBuffer) Dispose() {
	rb.mu.Lock()
	defer rb.mu.Unlock()

	rb.storage = nil
	rb.active = false
	rb.disposed = true
}

func (rb *RingBuffer) Lock()         { rb.mu.Lock() }
func (rb *RingBuffer) Unlock()       { rb.mu.Unlock() }
func (rb *RingBuffer) TryLock() bool { return rb.mu.TryLock() }

// Write appends chunk to the stream. chunk is normally one period long but
// any length is tolerated. A no-op unless the buffer is active and not
// frozen. Write blocks on the buffer lock so the producer never drops
// samples.
func (rb *RingBuffer) Write(chunk []float32) {
	rb.mu.Lock()
	defer rb.mu.Unlock()

	if !rb.active || rb.frozen {
		return
	}
	if rb.storage == nil {
		rb.storage = make([]float32, rb.physicalSize)
	}

	for len(chunk) > 0 {
		// Reached the end of physical storage: mirror the upper half down
		// and continue writing from the middle.
		if rb.writePtr >= rb.physicalSize {
			copy(rb.storage[:rb.logicalSize], rb.storage[rb.logicalSize:rb.physicalSize])
			rb.writePtr = rb.logicalSize
		}

		// First crossing of the logical boundary: the window is full from
		// here on. No copy is needed; [0, N) still holds the samples a read
		// ending in (N, 2N) starts from.
		if rb.writePtr >= rb.logicalSize && !rb.hasWrapped {
			rb.hasWrapped = true
		}

		n := min(len(chunk), rb.physicalSize-rb.writePtr)
		copy(rb.storage[rb.writePtr:rb.writePtr+n], chunk[:n])
		rb.writePtr += n
		chunk = chunk[n:]
	}
}

// SetRange resizes the logical window to length samples, rounded up to the
// period size. start must be 0: dynamic buffers do not support a sliding
// window start. As much trailing data as fits is preserved across the
// resize; the write pointer is reset to the amount preserved and the wrap
// flag cleared.
func (rb *RingBuffer) SetRange(start, length int) error {
	if start != 0 {
		return ErrNonZeroStart
	}

	newLen := utils.RoundUpToMultiple(length, rb.periodSize)
	if newLen <= 0 {
		newLen = rb.periodSize
	}

	rb.mu.Lock()
	defer rb.mu.Unlock()

	if newLen == rb.logicalSize {
		return nil
	}

	kept, _ := rb.snapshot()

	rb.logicalSize = newLen
	rb.physicalSize = newLen * 2

	if rb.storage == nil {
		rb.writePtr = 0
	} else {
		replacement := make([]float32, rb.physicalSize)
		n := min(len(kept), newLen)
		copy(replacement[:n], kept[len(kept)-n:])
		rb.storage = replacement
		rb.writePtr = n
	}

	rb.hasWrapped = false
	return nil
}

// snapshot returns the most recent logicalSize samples (or fewer, before the
// first fill) ending at the write position. Caller must hold mu.
func (rb *RingBuffer) snapshot() ([]float32, bool) {
	if rb.storage == nil {
		return nil, false
	}

	// Before the first fill only writePtr samples exist.
	if rb.writePtr < rb.logicalSize {
		return rb.storage[:rb.writePtr], true
	}

	// Contiguous by the double-depth invariant.
	return rb.storage[rb.writePtr-rb.logicalSize : rb.writePtr], true
}
