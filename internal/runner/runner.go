package runner

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/hamed0406/netreport/internal/domain"
	"github.com/hamed0406/netreport/internal/probe"
	"github.com/hamed0406/netreport/internal/repo"
)

// Runner probes every host from a HostSource once.
type Runner struct {
	Logger      *zap.Logger
	Hosts       repo.HostSource
	Checker     probe.Checker
	Concurrency int
	Now         func() time.Time
}

func NewRunner(
	logger *zap.Logger,
	hosts repo.HostSource,
	checker probe.Checker,
	concurrency int,
) *Runner {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Runner{
		Logger:      logger,
		Hosts:       hosts,
		Checker:     checker,
		Concurrency: concurrency,
		Now:         time.Now,
	}
}

// Run returns one result per host, in host-list order. All results share the
// timestamp taken when the run starts. Only a failure to read the host list
// or a cancelled ctx is returned as an error; unreachable hosts are DOWN
// results. A cancelled run returns no results, since hosts it never reached
// are not known to be down.
func (r *Runner) Run(ctx context.Context) ([]domain.ProbeResult, error) {
	hosts, err := r.Hosts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list hosts: %w", err)
	}

	at := r.Now()
	results := make([]domain.ProbeResult, len(hosts))
	r.Logger.Info("run_started",
		zap.Int("hosts", len(hosts)),
		zap.Int("concurrency", r.Concurrency),
	)

	if r.Concurrency <= 1 {
		for i, h := range hosts {
			if ctx.Err() != nil {
				break
			}
			results[i] = r.probeOne(ctx, h, at)
		}
		return r.finish(ctx, results)
	}

	sem := make(chan struct{}, r.Concurrency)
	var wg sync.WaitGroup
	for i, h := range hosts {
		if ctx.Err() != nil {
			break
		}
		sem <- struct{}{}
		wg.Add(1)
		i, h := i, h
		go func() {
			defer func() { <-sem }()
			defer wg.Done()
			// each goroutine owns its slot, so no lock is needed
			results[i] = r.probeOne(ctx, h, at)
		}()
	}
	wg.Wait()
	return r.finish(ctx, results)
}

func (r *Runner) finish(ctx context.Context, results []domain.ProbeResult) ([]domain.ProbeResult, error) {
	if err := ctx.Err(); err != nil {
		r.Logger.Warn("run_cancelled", zap.Error(err))
		return nil, fmt.Errorf("run cancelled: %w", err)
	}
	return results, nil
}

func (r *Runner) probeOne(ctx context.Context, h domain.Host, at time.Time) domain.ProbeResult {
	if h.IsPrivate() {
		r.Logger.Info("private_address", zap.String("host", string(h)))
	}

	out := r.Checker.Check(ctx, string(h))
	if !out.Success {
		r.Logger.Warn("host_down",
			zap.String("host", string(h)),
			zap.Error(out.Err),
		)
		return domain.Down(h, at)
	}

	lat := domain.Unavailable()
	if out.LatencyMS != "" {
		lat = domain.Millis(out.LatencyMS)
	}
	r.Logger.Info("host_up",
		zap.String("host", string(h)),
		zap.String("method", out.Name),
		zap.String("latency", lat.String()),
	)
	return domain.Up(h, lat, at)
}
