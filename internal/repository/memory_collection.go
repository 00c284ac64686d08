package repository

import (
	"context"
	"strconv"
	"sync"

	"github.com/brokerdesk/brokerage-service/internal/domain"
)

// MemoryCollection keeps documents in a process-local slice addressed by index.
// Contents are lost on restart.
type MemoryCollection struct {
	mu   sync.RWMutex
	docs []domain.Document
}

// NewMemoryCollection returns an empty collection.
func NewMemoryCollection() *MemoryCollection {
	return &MemoryCollection{}
}

func (m *MemoryCollection) List(_ context.Context) ([]domain.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return positionalRecords(m.docs), nil
}

func (m *MemoryCollection) Insert(_ context.Context, doc domain.Document) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs = append(m.docs, doc.Clone())
	return strconv.Itoa(len(m.docs) - 1), nil
}

// Replace returns ErrInvalidIndex for identifiers outside the slice.
func (m *MemoryCollection) Replace(_ context.Context, id string, doc domain.Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	idx, err := parseIndex(id, len(m.docs))
	if err != nil {
		return err
	}
	m.docs[idx] = doc.Clone()
	return nil
}

// Remove returns ErrInvalidIndex for identifiers outside the slice. Later indices shift down.
func (m *MemoryCollection) Remove(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	idx, err := parseIndex(id, len(m.docs))
	if err != nil {
		return err
	}
	m.docs = append(m.docs[:idx], m.docs[idx+1:]...)
	return nil
}

func (m *MemoryCollection) Ping(_ context.Context) error {
	return nil
}
