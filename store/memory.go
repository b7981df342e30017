package store

import (
	"encoding/json"
	"sync"

	"izesquad-api/models"
)

// Memory keeps the snapshot in process memory. Used in tests and as a
// fallback when no durable backend is configured.
type Memory struct {
	mu  sync.Mutex
	raw []byte
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Load() (*models.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.raw == nil {
		return nil, nil
	}
	var snap models.Snapshot
	if err := json.Unmarshal(m.raw, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

func (m *Memory) Save(snap *models.Snapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.raw = raw
	m.mu.Unlock()
	return nil
}
