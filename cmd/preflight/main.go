// cmd/preflight/main.go
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/hamed0406/netreport/internal/config"
	"github.com/hamed0406/netreport/internal/repo/file"
	"github.com/hamed0406/netreport/internal/report"
)

func main() {
	if !preflight(config.DefaultPath, os.Stdout, os.Stderr) {
		os.Exit(1)
	}
}

// preflight checks what a scheduled run needs and reports true when nothing
// fatal was found.
func preflight(cfgPath string, stdout, stderr io.Writer) bool {
	passed := true
	fail := func(msg string) {
		fmt.Fprintln(stderr, "✖", msg)
		passed = false
	}
	warn := func(msg string) { fmt.Fprintln(stderr, "⚠", msg) }
	ok := func(msg string) { fmt.Fprintln(stdout, "✔", msg) }

	if _, err := os.Stat(cfgPath); err != nil {
		warn(cfgPath + " not found; built-in defaults will be used.")
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fail(err.Error())
		return false
	}
	ok("config loaded")

	hosts, err := file.New(cfg.HostsFile).List(context.Background())
	switch {
	case err != nil:
		fail(err.Error())
	case len(hosts) == 0:
		fail(cfg.HostsFile + " lists no hosts.")
	default:
		ok(fmt.Sprintf("%s: %d host(s)", cfg.HostsFile, len(hosts)))
	}

	if cfg.ICMP.Mode != "native" {
		if path, err := exec.LookPath("ping"); err != nil {
			warn("ping not on PATH; every host will fall back to TCP probing.")
		} else {
			ok("ping=" + path)
		}
	}

	if _, found := report.Location(cfg.Timezone); !found {
		warn("timezone " + cfg.Timezone + " unavailable; timestamps will be UTC.")
	}

	if err := checkWritable(cfg.ReportDir); err != nil {
		fail("report_dir " + cfg.ReportDir + " is not writable: " + err.Error())
	} else {
		ok("report_dir=" + cfg.ReportDir)
	}

	if passed {
		ok("preflight passed")
	}
	return passed
}

func checkWritable(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, ".preflight-*")
	if err != nil {
		return err
	}
	name := f.Name()
	_ = f.Close()
	return os.Remove(filepath.Clean(name))
}
