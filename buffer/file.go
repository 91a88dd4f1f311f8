// SPDX-License-Identifier: EPL-2.0

package buffer

// FileBuffer is the static backend: one channel of samples materialized once
// at construction, typically from a decoded audio file, and immutable
// afterwards. No writer exists after construction, so the lock operations
// are no-ops and TryLock always succeeds. That makes static and dynamic
// backends interchangeable from a consumer's point of view.
type FileBuffer struct {
	sampleRate int
	storage    []float32
	active     bool
}

// NewFileBuffer creates a static buffer holding a copy of samples.
func NewFileBuffer(sampleRate int, samples []float32) *FileBuffer {
	storage := make([]float32, len(samples))
	copy(storage, samples)

	return &FileBuffer{
		sampleRate: sampleRate,
		storage:    storage,
		active:     true,
	}
}

func (fb *FileBuffer) SampleRate() int { return fb.sampleRate }
func (fb *FileBuffer) Writable() bool  { return false }
func (fb *FileBuffer) Len() int        { return len(fb.storage) }

// Activate marks the buffer live again after a Deactivate. The data itself
// was loaded at construction.
func (fb *FileBuffer) Activate() error {
	fb.active = true
	return nil
}

// Deactivate hides the data; snapshots report unallocated until Activate.
func (fb *FileBuffer) Deactivate() {
	fb.active = false
}

// Dispose releases the samples for good.
func (fb *FileBuffer) Dispose() {
	fb.storage = nil
	fb.active = false
}

// SetRange is a no-op: the size is fixed by the source file.
func (fb *FileBuffer) SetRange(start, length int) error { return nil }

func (fb *FileBuffer) Lock()         {}
func (fb *FileBuffer) Unlock()       {}
func (fb *FileBuffer) TryLock() bool { return true }

func (fb *FileBuffer) snapshot() ([]float32, bool) {
	if !fb.active || fb.storage == nil {
		return nil, false
	}
	return fb.storage, true
}
