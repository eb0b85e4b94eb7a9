package store

import (
	"context"
	"sync"

	"github.com/shandysiswandi/otpgate/internal/shared/identity"
)

// Memory keeps the record in process.
type Memory struct {
	mu  sync.RWMutex
	raw []byte
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Save(_ context.Context, rec identity.Record) error {
	b, err := encode(rec)
	if err != nil {
		return err
	}

	m.Put(b)
	return nil
}

// Put stores raw as is, bypassing encoding.
func (m *Memory) Put(raw []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.raw = append([]byte(nil), raw...)
}

func (m *Memory) Load(_ context.Context) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.raw == nil {
		return nil, ErrNotFound
	}
	return append([]byte(nil), m.raw...), nil
}

func (m *Memory) Delete(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.raw = nil
	return nil
}
