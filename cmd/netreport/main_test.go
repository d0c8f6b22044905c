package main

import (
	"context"
	"encoding/csv"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/hamed0406/netreport/internal/config"
)

func loopbackListener(t *testing.T) int {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Skipf("cannot listen on loopback: %v", err)
	}
	t.Cleanup(func() { ln.Close() })
	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			_ = conn.Close()
		}
	}()
	return ln.Addr().(*net.TCPAddr).Port
}

func testConfig(t *testing.T, hosts string) config.Config {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Default()
	cfg.HostsFile = filepath.Join(dir, "hosts.txt")
	cfg.ReportDir = filepath.Join(dir, "reports")
	cfg.LogDir = filepath.Join(dir, "logs")
	cfg.Timezone = "UTC"
	cfg.ICMP.Timeout = time.Second
	cfg.TCP.Ports = []int{loopbackListener(t)}
	cfg.TCP.Timeout = time.Second
	if err := os.WriteFile(cfg.HostsFile, []byte(hosts), 0o644); err != nil {
		t.Fatal(err)
	}
	return cfg
}

func TestRun_WritesReportsAndMetrics(t *testing.T) {
	cfg := testConfig(t, "127.0.0.1\n\n  127.0.0.1  \n")

	htmlPath, err := run(context.Background(), cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	f, err := os.Open(filepath.Join(cfg.ReportDir, "report.csv"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 3 {
		t.Fatalf("want header + 2 rows, got %v", records)
	}
	for _, rec := range records[1:] {
		// loopback answers either the echo or the TCP fallback
		if rec[0] != "127.0.0.1" || rec[1] != "UP" {
			t.Fatalf("unexpected row %v", rec)
		}
		if rec[3] != records[1][3] {
			t.Fatalf("rows must share one timestamp: %v", records)
		}
	}

	html, err := os.ReadFile(htmlPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(html), "Total Hosts: 2 | UP: 2 | DOWN: 0") {
		t.Fatalf("summary missing from html")
	}

	prom, err := os.ReadFile(cfg.MetricsPath())
	if err != nil {
		t.Fatalf("metrics textfile: %v", err)
	}
	if !strings.Contains(string(prom), `netreport_hosts{status="UP"} `+strconv.Itoa(2)) {
		t.Fatalf("metrics missing host counts:\n%s", prom)
	}
}

func TestRun_MissingHostFileIsFatal(t *testing.T) {
	cfg := testConfig(t, "")
	cfg.HostsFile = filepath.Join(t.TempDir(), "absent.txt")
	if _, err := run(context.Background(), cfg, zap.NewNop()); err == nil {
		t.Fatalf("want error for missing host list")
	}
	if _, err := os.Stat(filepath.Join(cfg.ReportDir, "report.csv")); err == nil {
		t.Fatalf("no report should be written without a host list")
	}
}

func TestRun_UnknownModeIsFatal(t *testing.T) {
	cfg := testConfig(t, "127.0.0.1\n")
	cfg.ICMP.Mode = "semaphore"
	if _, err := run(context.Background(), cfg, zap.NewNop()); err == nil {
		t.Fatalf("want error for unknown icmp mode")
	}
}

func TestRun_CancelledWritesNoReport(t *testing.T) {
	cfg := testConfig(t, "127.0.0.1\n127.0.0.1\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := run(ctx, cfg, zap.NewNop()); err == nil {
		t.Fatalf("want error for a cancelled run")
	}
	for _, name := range []string{"report.csv", "report.html"} {
		if _, err := os.Stat(filepath.Join(cfg.ReportDir, name)); err == nil {
			t.Fatalf("%s must not be written by a cancelled run", name)
		}
	}
}
