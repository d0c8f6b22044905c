package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/hamed0406/netreport/internal/config"
	"github.com/hamed0406/netreport/internal/logging"
	"github.com/hamed0406/netreport/internal/metrics"
	"github.com/hamed0406/netreport/internal/probe"
	"github.com/hamed0406/netreport/internal/repo/file"
	"github.com/hamed0406/netreport/internal/report"
	"github.com/hamed0406/netreport/internal/runner"
)

func main() {
	cfg, err := config.Load(config.DefaultPath)
	if err != nil {
		log.Fatal(err)
	}
	logger, err := logging.NewLogger(cfg.LogDir, cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	htmlPath, err := run(ctx, cfg, logger)
	if err != nil {
		logger.Error("run_failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
	fmt.Println("✔ Report generated in", htmlPath)
}

// run probes every host once and writes the reports. It returns the HTML
// report path.
func run(ctx context.Context, cfg config.Config, logger *zap.Logger) (string, error) {
	checker, err := probe.NewReachability(logger, probe.Options{
		Mode:        probe.Mode(cfg.ICMP.Mode),
		EchoTimeout: cfg.ICMP.Timeout,
		Privileged:  cfg.ICMP.Privileged,
		Ports:       cfg.TCP.Ports,
		TCPTimeout:  cfg.TCP.Timeout,
	})
	if err != nil {
		return "", err
	}

	var rec *metrics.Recorder
	if cfg.MetricsPath() != "" {
		rec = metrics.NewRecorder()
		checker.Observe = rec.ObserveAttempt
	}

	if _, ok := report.Location(cfg.Timezone); !ok {
		logger.Warn("timezone_unavailable", zap.String("timezone", cfg.Timezone))
	}

	started := time.Now()
	r := runner.NewRunner(logger, file.New(cfg.HostsFile), checker, cfg.Concurrency)
	r.Now = func() time.Time { return started }
	results, err := r.Run(ctx)
	if err != nil {
		return "", err
	}
	took := time.Since(started)

	rep := report.Build(results, report.FormatTimestamp(started, cfg.Timezone))
	csvPath, htmlPath, err := report.WriteFiles(cfg.ReportDir, rep)
	if err != nil {
		return "", fmt.Errorf("write reports: %w", err)
	}
	logger.Info("report_written",
		zap.String("csv", csvPath),
		zap.String("html", htmlPath),
		zap.Int("total", rep.Summary.Total),
		zap.Int("up", rep.Summary.Up),
		zap.Int("down", rep.Summary.Down),
		zap.Duration("took", took),
	)

	if rec != nil {
		rec.ObserveRun(results, started, took)
		if err := rec.WriteTextfile(cfg.MetricsPath()); err != nil {
			logger.Warn("metrics_write_failed", zap.Error(err))
		}
	}
	return htmlPath, nil
}
