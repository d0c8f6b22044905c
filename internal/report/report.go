package report

import (
	"github.com/hamed0406/netreport/internal/domain"
)

// Latency buckets, used as CSS classes.
const (
	BucketFast   = "fast"
	BucketMedium = "medium"
	BucketSlow   = "slow"
)

type Summary struct {
	Total int `json:"total_hosts"`
	Up    int `json:"up_hosts"`
	Down  int `json:"down_hosts"`
}

// Row is the rendered form of one ProbeResult.
type Row struct {
	Host         string
	Status       string
	Latency      string
	Timestamp    string
	StatusClass  string
	LatencyClass string
}

type Report struct {
	Title     string
	Timestamp string
	Summary   Summary
	Rows      []Row
}

// Build shapes results for the writers. ts is the already formatted capture
// time shared by every row.
func Build(results []domain.ProbeResult, ts string) Report {
	rep := Report{
		Title:     "Network Health Report - " + ts,
		Timestamp: ts,
		Rows:      make([]Row, 0, len(results)),
	}
	for _, r := range results {
		if r.Status == domain.StatusUp {
			rep.Summary.Up++
		}
		rep.Rows = append(rep.Rows, Row{
			Host:         string(r.Host),
			Status:       string(r.Status),
			Latency:      r.Latency.String(),
			Timestamp:    ts,
			StatusClass:  statusClass(r.Status),
			LatencyClass: Bucket(r.Latency),
		})
	}
	rep.Summary.Total = len(results)
	rep.Summary.Down = rep.Summary.Total - rep.Summary.Up
	return rep
}

// Bucket classifies a latency: fast under 50ms, medium up to and including
// 150ms, slow above that or when there is no number.
func Bucket(l *domain.Latency) string {
	v, ok := l.Float()
	switch {
	case !ok:
		return BucketSlow
	case v < 50:
		return BucketFast
	case v <= 150:
		return BucketMedium
	default:
		return BucketSlow
	}
}

func statusClass(s domain.Status) string {
	if s == domain.StatusUp {
		return "up"
	}
	return "down"
}
