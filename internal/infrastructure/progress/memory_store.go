package progress

import (
	"context"
	"sync"
	"time"

	"github.com/rafikey/rafikey-admin/internal/domain/entity"
	"github.com/rafikey/rafikey-admin/internal/domain/repository"
)

// MemoryStore is the single-process fallback when Redis is not configured.
// Entries older than TTL are dropped on access.
type MemoryStore struct {
	TTL time.Duration
	now func() time.Time

	mu      sync.Mutex
	entries map[string]entity.UploadProgress
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{TTL: ttl, now: time.Now, entries: map[string]entity.UploadProgress{}}
}

func (s *MemoryStore) Save(_ context.Context, p entity.UploadProgress) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = s.now()
	}
	s.entries[p.ID] = p
	s.sweepLocked()
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (*entity.UploadProgress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked()
	p, ok := s.entries[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

func (s *MemoryStore) sweepLocked() {
	if s.TTL <= 0 {
		return
	}
	cutoff := s.now().Add(-s.TTL)
	for id, p := range s.entries {
		if p.UpdatedAt.Before(cutoff) {
			delete(s.entries, id)
		}
	}
}

var _ repository.ProgressRepository = (*MemoryStore)(nil)
