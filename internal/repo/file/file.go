package file

import (
	"context"
	"fmt"
	"os"

	"github.com/hamed0406/netreport/internal/domain"
	"github.com/hamed0406/netreport/internal/repo"
)

// Store reads hosts from a line-oriented text file on every List call.
type Store struct {
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string { return s.path }

func (s *Store) List(ctx context.Context) ([]domain.Host, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open host list: %w", err)
	}
	defer f.Close()

	hosts, err := repo.ParseHosts(f)
	if err != nil {
		return nil, fmt.Errorf("read host list %s: %w", s.path, err)
	}
	return hosts, nil
}
