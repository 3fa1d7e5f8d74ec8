// Package memory is an in-process PreferenceRepository used when no database
// is configured (local development) and in handler tests.
package memory

import (
	"context"
	"sync"

	"karirkit/internal/model"
	"karirkit/internal/repository"
)

type key struct{ client, resource string }

// PreferenceMemory keeps preferences in a map. Safe for concurrent use.
type PreferenceMemory struct {
	mu   sync.RWMutex
	rows map[key]model.ColumnPreference
}

// NewPreferenceMemory returns an empty store.
func NewPreferenceMemory() *PreferenceMemory {
	return &PreferenceMemory{rows: make(map[key]model.ColumnPreference)}
}

var _ repository.PreferenceRepository = (*PreferenceMemory)(nil)

func (m *PreferenceMemory) Find(_ context.Context, clientID, resource string) (*model.ColumnPreference, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.rows[key{clientID, resource}]
	if !ok {
		return nil, repository.ErrNotFound
	}
	p.Hidden = append([]string{}, p.Hidden...)
	return &p, nil
}

func (m *PreferenceMemory) Save(_ context.Context, pref *model.ColumnPreference) (*model.ColumnPreference, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := *pref
	p.Hidden = append([]string{}, pref.Hidden...)
	m.rows[key{p.ClientID, p.Resource}] = p
	out := p
	out.Hidden = append([]string{}, p.Hidden...)
	return &out, nil
}

func (m *PreferenceMemory) Delete(_ context.Context, clientID, resource string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.rows, key{clientID, resource})
	return nil
}
