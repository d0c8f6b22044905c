package metrics

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hamed0406/netreport/internal/domain"
	"github.com/hamed0406/netreport/internal/probe"
)

// Recorder collects one run's metrics on a private registry so they can be
// written as a node_exporter textfile.
type Recorder struct {
	reg *prometheus.Registry

	hostUp      *prometheus.GaugeVec
	hostLatency *prometheus.GaugeVec
	attempts    *prometheus.CounterVec
	hosts       *prometheus.GaugeVec
	lastRun     prometheus.Gauge
	runDuration prometheus.Gauge
}

func NewRecorder() *Recorder {
	r := &Recorder{
		reg: prometheus.NewRegistry(),
		hostUp: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "netreport_host_up",
				Help: "Host reachability: 1 = up, 0 = down",
			},
			[]string{"host"},
		),
		hostLatency: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "netreport_host_latency_milliseconds",
				Help: "Latency of the probe that found the host up",
			},
			[]string{"host"},
		),
		attempts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "netreport_probe_attempts_total",
				Help: "Probe attempts by method and outcome",
			},
			[]string{"method", "result"},
		),
		hosts: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "netreport_hosts",
				Help: "Hosts in the last run by status",
			},
			[]string{"status"},
		),
		lastRun: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "netreport_last_run_timestamp_seconds",
			Help: "Unix time the last run started",
		}),
		runDuration: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "netreport_run_duration_seconds",
			Help: "Wall-clock duration of the last run",
		}),
	}
	r.reg.MustRegister(
		r.hostUp,
		r.hostLatency,
		r.attempts,
		r.hosts,
		r.lastRun,
		r.runDuration,
	)
	return r
}

// ObserveAttempt counts a single probe attempt. It matches the signature of
// probe.Layered.Observe.
func (r *Recorder) ObserveAttempt(target string, res probe.CheckResult) {
	outcome := "failure"
	if res.Success {
		outcome = "success"
	}
	r.attempts.WithLabelValues(res.Name, outcome).Inc()
}

// ObserveRun records per-host state and run totals.
func (r *Recorder) ObserveRun(results []domain.ProbeResult, started time.Time, took time.Duration) {
	up := 0
	for _, res := range results {
		host := string(res.Host)
		if res.Status != domain.StatusUp {
			r.hostUp.WithLabelValues(host).Set(0)
			continue
		}
		up++
		r.hostUp.WithLabelValues(host).Set(1)
		if v, ok := res.Latency.Float(); ok {
			r.hostLatency.WithLabelValues(host).Set(v)
		}
	}
	r.hosts.WithLabelValues(string(domain.StatusUp)).Set(float64(up))
	r.hosts.WithLabelValues(string(domain.StatusDown)).Set(float64(len(results) - up))
	r.lastRun.Set(float64(started.Unix()))
	r.runDuration.Set(took.Seconds())
}

// WriteTextfile atomically writes the registry in text exposition format.
func (r *Recorder) WriteTextfile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create metrics dir: %w", err)
	}
	if err := prometheus.WriteToTextfile(path, r.reg); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
