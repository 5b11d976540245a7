// Package storage provides named persistent slots: one key holding one
// serialized value that is read whole and overwritten whole.
package storage

import "sync"

// Slot is a single named value. Load returns (nil, nil) when nothing has been
// stored yet.
type Slot interface {
	Load() ([]byte, error)
	Save(data []byte) error
}

// SlotFuncs adapts a pair of plain functions to Slot. A nil LoadFunc reads as
// empty and a nil SaveFunc discards writes.
type SlotFuncs struct {
	LoadFunc func() ([]byte, error)
	SaveFunc func(data []byte) error
}

func (f SlotFuncs) Load() ([]byte, error) {
	if f.LoadFunc == nil {
		return nil, nil
	}
	return f.LoadFunc()
}

func (f SlotFuncs) Save(data []byte) error {
	if f.SaveFunc == nil {
		return nil
	}
	return f.SaveFunc(data)
}

// MemorySlot keeps the value in process memory. Used by the CLI and tests.
type MemorySlot struct {
	mu    sync.Mutex
	data  []byte
	saves int
}

// NewMemorySlot returns a slot pre-filled with initial (may be nil).
func NewMemorySlot(initial []byte) *MemorySlot {
	return &MemorySlot{data: cloneBytes(initial)}
}

func (m *MemorySlot) Load() ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return cloneBytes(m.data), nil
}

func (m *MemorySlot) Save(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = cloneBytes(data)
	m.saves++
	return nil
}

// Saves reports how many writes the slot has received.
func (m *MemorySlot) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
