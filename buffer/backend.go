// SPDX-License-Identifier: EPL-2.0

package buffer

// Backend is one channel's sample storage. It is a sealed interface: the two
// implementations are RingBuffer (dynamic) and FileBuffer (static). Sealing
// keeps the raw storage slice unreachable outside this package, so a snapshot
// can only ever be observed with the backend lock held.
type Backend interface {
	// SampleRate of the stored stream in Hz.
	SampleRate() int
	// Writable reports whether the backend accepts writes after construction.
	Writable() bool
	// Len is the logical size: the consumer-visible window length in samples.
	Len() int

	// Activate allocates storage if needed and marks the backend live.
	// Called by a mediator when the first view opens.
	Activate() error
	// Deactivate releases storage (unless frozen) and marks the backend idle.
	// Called by a mediator when the last view closes.
	Deactivate()
	// Dispose tears the backend down for good; no writes or reads survive it.
	Dispose()

	// SetRange resizes the logical window to length samples. start must be 0
	// for dynamic backends; static backends ignore the call entirely.
	SetRange(start, length int) error

	// Lock blocks until the backend is exclusively held. Producers use this
	// around writes so no samples are dropped.
	Lock()
	// Unlock releases the backend.
	Unlock()
	// TryLock acquires the lock without blocking. Consumers use this and skip
	// a read cycle when it reports false.
	TryLock() bool

	// snapshot returns the currently visible samples, or ok=false when
	// storage is unallocated. Must only be called with the lock held: the
	// slice aliases live storage.
	snapshot() (samples []float32, ok bool)
}
