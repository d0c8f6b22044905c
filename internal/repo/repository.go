package repo

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/hamed0406/netreport/internal/domain"
)

// HostSource yields the hosts to probe, in the order they should be reported.
type HostSource interface {
	List(ctx context.Context) ([]domain.Host, error)
}

// ParseHosts reads one host per line, trimming whitespace and dropping blank
// lines. Order and duplicates are kept.
func ParseHosts(r io.Reader) ([]domain.Host, error) {
	var out []domain.Host
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		out = append(out, domain.Host(line))
	}
	return out, sc.Err()
}
