package repository

import (
	"context"
	"sync"
	"time"

	"github.com/loofsan/SF-Hacks2025/internal/searchlog"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MemoryRepo struct {
	mu   sync.RWMutex
	logs []*searchlog.SearchLog
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

func (m *MemoryRepo) Create(_ context.Context, l *searchlog.SearchLog) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if l.ID == "" {
		l.ID = primitive.NewObjectID().Hex()
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now()
	}
	cp := *l
	m.logs = append(m.logs, &cp)
	return l.ID, nil
}

func (m *MemoryRepo) Recent(_ context.Context, limit int) ([]*searchlog.SearchLog, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []*searchlog.SearchLog{}
	for i := len(m.logs) - 1; i >= 0; i-- {
		if limit > 0 && len(out) >= limit {
			break
		}
		cp := *m.logs[i]
		out = append(out, &cp)
	}
	return out, nil
}

func (m *MemoryRepo) Count(_ context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.logs)), nil
}
