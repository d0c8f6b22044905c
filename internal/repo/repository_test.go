package repo_test

import (
	"strings"
	"testing"

	"github.com/hamed0406/netreport/internal/repo"
	"github.com/hamed0406/netreport/internal/repo/file"
	"github.com/hamed0406/netreport/internal/repo/memory"
)

// Compile-time interface satisfaction checks.
// Using external test package avoids import cycle.
func TestInterfaceSatisfaction(t *testing.T) {
	var _ repo.HostSource = memory.New()
	var _ repo.HostSource = file.New("hosts.txt")
}

func TestParseHosts_TrimsAndSkipsBlankLines(t *testing.T) {
	in := "  google.com \n\n\t\n10.0.0.1\r\ngoogle.com\n   \n1.1.1.1"
	hosts, err := repo.ParseHosts(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ParseHosts: %v", err)
	}
	want := []string{"google.com", "10.0.0.1", "google.com", "1.1.1.1"}
	if len(hosts) != len(want) {
		t.Fatalf("got %v, want %v", hosts, want)
	}
	for i := range want {
		if string(hosts[i]) != want[i] {
			t.Fatalf("host %d = %q, want %q", i, hosts[i], want[i])
		}
	}
}
