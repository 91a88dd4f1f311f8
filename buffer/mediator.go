// SPDX-License-Identifier: EPL-2.0

package buffer

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Mediator wraps exactly one backend and arbitrates demand from any number
// of views. It is the only component permitted to resize its backend.
type Mediator interface {
	// Open creates and registers a view over the window [start, start+length).
	Open(start, length int) (*View, error)
	// Close deregisters the view. Closing a view that is not registered is an
	// error (ErrUnknownView), which catches double-close bugs.
	Close(v *View) error
	// NumViews is the number of currently open views.
	NumViews() int
	// Backend this mediator owns.
	Backend() Backend

	// Snapshot runs fn on the backend's visible samples under the blocking
	// lock. Returns false when storage is unallocated.
	Snapshot(fn func(samples []float32)) bool
	// TrySnapshot is like Snapshot but never blocks; returns false when the
	// lock is busy or storage is unallocated.
	TrySnapshot(fn func(samples []float32)) bool

	// Lock, Unlock and TryLock pass through to the backend's lock.
	Lock()
	Unlock()
	TryLock() bool
}

// mediator carries the view registry shared by both variants. The resizes
// flag makes the dynamic variant drive backend lifecycle and sizing; views
// over a static backend never trigger either.
type mediator struct {
	// mu guards the view set, not the sample data; the backend has its own
	// lock. Ordering: mu before the backend lock, never the reverse.
	mu      sync.Mutex
	backend Backend
	views   map[uuid.UUID]*View
	resizes bool
}

// DynamicMediator mediates a RingBuffer. It activates the backend when the
// first view opens, deactivates it when the last one closes, and resizes it
// on every change to the view set.
type DynamicMediator struct {
	mediator
}

// NewDynamicMediator creates a mediator over a ring buffer.
func NewDynamicMediator(backend *RingBuffer) *DynamicMediator {
	return &DynamicMediator{mediator{
		backend: backend,
		views:   make(map[uuid.UUID]*View),
		resizes: true,
	}}
}

// StaticMediator mediates a FileBuffer. Views never trigger resizing; the
// backend size is fixed by the source file.
type StaticMediator struct {
	mediator
}

// NewStaticMediator creates a mediator over a file buffer.
func NewStaticMediator(backend *FileBuffer) *StaticMediator {
	return &StaticMediator{mediator{
		backend: backend,
		views:   make(map[uuid.UUID]*View),
	}}
}

func (m *mediator) Backend() Backend { return m.backend }

func (m *mediator) NumViews() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.views)
}

func (m *mediator) Open(start, length int) (*View, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.resizes && len(m.views) == 0 {
		if err := m.backend.Activate(); err != nil {
			return nil, fmt.Errorf("activating backend: %w", err)
		}
	}

	v := &View{
		med:    m,
		id:     uuid.New(),
		start:  start,
		length: length,
	}
	m.views[v.id] = v

	if err := m.resizeLocked(); err != nil {
		delete(m.views, v.id)
		return nil, err
	}
	return v, nil
}

func (m *mediator) Close(v *View) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.views[v.id]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownView, v.id)
	}
	delete(m.views, v.id)
	v.closed = true

	if m.resizes && len(m.views) == 0 {
		m.backend.Deactivate()
	}

	// The resize pass reruns even when the closed view was not the
	// demand-maximizing one.
	return m.resizeLocked()
}

// resizeLocked recomputes the backend size from the union of view demands:
// the maximum start+length over all open views. An empty view set is a
// no-op. Caller must hold mu.
func (m *mediator) resizeLocked() error {
	if !m.resizes || len(m.views) == 0 {
		return nil
	}

	maxEnd := 0
	for _, v := range m.views {
		if end := v.start + v.length; end > maxEnd {
			maxEnd = end
		}
	}

	if err := m.backend.SetRange(0, maxEnd); err != nil {
		return fmt.Errorf("resizing backend to %d: %w", maxEnd, err)
	}
	return nil
}

func (m *mediator) Lock()         { m.backend.Lock() }
func (m *mediator) Unlock()       { m.backend.Unlock() }
func (m *mediator) TryLock() bool { return m.backend.TryLock() }

func (m *mediator) Snapshot(fn func(samples []float32)) bool {
	m.backend.Lock()
	defer m.backend.Unlock()

	data, ok := m.backend.snapshot()
	if !ok {
		return false
	}
	fn(data)
	return true
}

func (m *mediator) TrySnapshot(fn func(samples []float32)) bool {
	if !m.backend.TryLock() {
		return false
	}
	defer m.backend.Unlock()

	data, ok := m.backend.snapshot()
	if !ok {
		return false
	}
	fn(data)
	return true
}
