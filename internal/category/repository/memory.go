package repository

import (
	"context"
	"sync"

	"github.com/loofsan/SF-Hacks2025/internal/category"
)

type MemoryRepo struct {
	mu   sync.RWMutex
	cats []category.Category
}

func NewMemoryRepo(cats ...category.Category) *MemoryRepo {
	return &MemoryRepo{cats: append([]category.Category(nil), cats...)}
}

func (m *MemoryRepo) List(_ context.Context) ([]category.Category, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]category.Category{}, m.cats...), nil
}

func (m *MemoryRepo) Get(_ context.Context, name string) (*category.Category, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, c := range m.cats {
		if c.Name == name {
			cp := c
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryRepo) ReplaceAll(_ context.Context, cats []category.Category) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cats = append([]category.Category(nil), cats...)
	return nil
}

func (m *MemoryRepo) Count(_ context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.cats)), nil
}
