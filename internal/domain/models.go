package domain

import (
	"net/netip"
	"strconv"
	"strings"
	"time"
)

// Host is a hostname or IP address taken verbatim from the host list.
type Host string

// IsPrivate reports whether the host is a literal private address
// (RFC 1918 / RFC 4193).
// Hostnames are never flagged.
func (h Host) IsPrivate() bool {
	addr, err := netip.ParseAddr(strings.TrimSpace(string(h)))
	if err != nil {
		return false
	}
	return addr.IsPrivate()
}

type Status string

const (
	StatusUp   Status = "UP"
	StatusDown Status = "DOWN"
)

// NotAvailable is how a missing latency is rendered.
const NotAvailable = "N/A"

// Latency is a unit-free decimal millisecond value. A zero Latency means the
// host answered but no timing could be extracted.
type Latency struct {
	Value string `json:"value,omitempty"`
	Valid bool   `json:"valid"`
}

func Millis(v string) *Latency { return &Latency{Value: v, Valid: true} }

func Unavailable() *Latency { return &Latency{} }

// Float returns the numeric value, or false when it is not available.
func (l *Latency) Float() (float64, bool) {
	if l == nil || !l.Valid {
		return 0, false
	}
	f, err := strconv.ParseFloat(l.Value, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func (l *Latency) String() string {
	if l == nil || !l.Valid {
		return NotAvailable
	}
	return l.Value + " ms"
}

// ProbeResult is the outcome for one host in one run. Latency is nil when the
// host is DOWN and non-nil when it is UP.
type ProbeResult struct {
	Host      Host      `json:"host"`
	Status    Status    `json:"status"`
	Latency   *Latency  `json:"latency"`
	CheckedAt time.Time `json:"checked_at"`
}

// Up builds an UP result; a nil latency becomes the not-available sentinel.
func Up(h Host, lat *Latency, at time.Time) ProbeResult {
	if lat == nil {
		lat = Unavailable()
	}
	return ProbeResult{Host: h, Status: StatusUp, Latency: lat, CheckedAt: at}
}

func Down(h Host, at time.Time) ProbeResult {
	return ProbeResult{Host: h, Status: StatusDown, CheckedAt: at}
}
