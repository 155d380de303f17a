package mirror

import (
	"encoding/json"
	"sync"

	"eduplatform/backend/models"
)

// MemoryMirror keeps snapshots in process memory. Used in demo mode and in
// tests; round-trips through JSON so it exercises the same serialization as
// the redis mirror.
type MemoryMirror struct {
	mu        sync.Mutex
	snapshots map[string][]byte
	favorites map[string][]byte
}

func NewMemoryMirror() *MemoryMirror {
	return &MemoryMirror{
		snapshots: map[string][]byte{},
		favorites: map[string][]byte{},
	}
}

func (m *MemoryMirror) SaveSnapshot(key string, snap models.Snapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snapshots[key] = raw
	return nil
}

func (m *MemoryMirror) LoadSnapshot(key string) (*models.Snapshot, error) {
	m.mu.Lock()
	raw, found := m.snapshots[key]
	m.mu.Unlock()
	if !found {
		return nil, nil
	}
	var snap models.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, nil
	}
	return &snap, nil
}

func (m *MemoryMirror) SaveFavorites(key string, courseIDs []int) error {
	raw, err := json.Marshal(courseIDs)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.favorites[key] = raw
	return nil
}

func (m *MemoryMirror) LoadFavorites(key string) ([]int, error) {
	m.mu.Lock()
	raw, found := m.favorites[key]
	m.mu.Unlock()
	if !found {
		return nil, nil
	}
	var ids []int
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil, nil
	}
	return ids, nil
}

// Corrupt overwrites a stored snapshot with garbage, for tests of the
// silent-fallback path.
func (m *MemoryMirror) Corrupt(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snapshots[key] = []byte("{not json")
}
