package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/loofsan/SF-Hacks2025/internal/category"
	"github.com/loofsan/SF-Hacks2025/internal/resource"
)

var (
	ErrNotConfigured    = errors.New("object storage not configured")
	ErrSnapshotNotFound = errors.New("snapshot not found")
	ErrInvalidKey       = errors.New("invalid snapshot key")
)

const snapshotPrefix = "snapshots/"

// ObjectStore is the byte-level store snapshots are written to.
type ObjectStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Get(ctx context.Context, key string) ([]byte, error)
}

// Snapshot is a point-in-time copy of the directory.
type Snapshot struct {
	CreatedAt  time.Time            `json:"createdAt"`
	Categories []category.Category  `json:"categories"`
	Resources  []*resource.Resource `json:"resources"`
}

// SnapshotKey maps a user supplied name to an object key.
func SnapshotKey(name string) (string, error) {
	name = strings.TrimSpace(name)
	name = strings.TrimPrefix(name, snapshotPrefix)
	name = strings.TrimSuffix(name, ".json")
	if name == "" || strings.Contains(name, "..") || strings.ContainsAny(name, `\/`) {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, name)
	}
	return snapshotPrefix + name + ".json", nil
}

type SnapshotStore struct {
	objects ObjectStore
}

func NewSnapshotStore(objects ObjectStore) *SnapshotStore {
	return &SnapshotStore{objects: objects}
}

// Save writes snap under name and returns the object key used.
func (s *SnapshotStore) Save(ctx context.Context, name string, snap *Snapshot) (string, error) {
	key, err := SnapshotKey(name)
	if err != nil {
		return "", err
	}
	if snap.CreatedAt.IsZero() {
		snap.CreatedAt = time.Now().UTC()
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode snapshot: %w", err)
	}
	if err := s.objects.Put(ctx, key, data, "application/json"); err != nil {
		return "", fmt.Errorf("put %s: %w", key, err)
	}
	return key, nil
}

func (s *SnapshotStore) Load(ctx context.Context, name string) (*Snapshot, error) {
	key, err := SnapshotKey(name)
	if err != nil {
		return nil, err
	}
	data, err := s.objects.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}
	return &snap, nil
}

// MemoryObjects is an in-process ObjectStore for tests and offline runs.
type MemoryObjects struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryObjects() *MemoryObjects {
	return &MemoryObjects{data: map[string][]byte{}}
}

func (m *MemoryObjects) Put(_ context.Context, key string, data []byte, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), data...)
	return nil
}

func (m *MemoryObjects) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	d, ok := m.data[key]
	if !ok {
		return nil, ErrSnapshotNotFound
	}
	return append([]byte(nil), d...), nil
}
