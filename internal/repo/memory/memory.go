package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/hamed0406/netreport/internal/domain"
)

// Store is an in-memory host list.
type Store struct {
	mu    sync.RWMutex
	hosts []domain.Host
}

func New(hosts ...string) *Store {
	s := &Store{}
	for _, h := range hosts {
		s.Add(h)
	}
	return s
}

// Add appends h unless it is blank.
func (m *Store) Add(h string) {
	h = strings.TrimSpace(h)
	if h == "" {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hosts = append(m.hosts, domain.Host(h))
}

func (m *Store) List(ctx context.Context) ([]domain.Host, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Host, len(m.hosts))
	copy(out, m.hosts)
	return out, nil
}
