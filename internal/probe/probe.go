package probe

import (
	"context"
	"math"
	"strconv"
	"time"
)

// Method names reported in CheckResult.Name.
const (
	MethodICMP       = "ICMP"
	MethodICMPNative = "ICMP-native"
	MethodTCP        = "TCP"
	MethodLayered    = "layered"
)

// CheckResult is the unified result of a single probe.
//
// Fields:
//   - LatencyMS: unit-free decimal milliseconds; empty when the probe succeeded
//     without a usable timing.
//   - Err: why the probe failed. Never set when Success is true.
type CheckResult struct {
	Name      string
	Success   bool
	LatencyMS string
	Message   string
	Err       error
}

// Checker performs a single check for a given host.
type Checker interface {
	Check(ctx context.Context, target string) CheckResult
}

// FormatMillis renders d as decimal milliseconds rounded to two places,
// without trailing zeros.
func FormatMillis(d time.Duration) string {
	ms := float64(d) / float64(time.Millisecond)
	return strconv.FormatFloat(math.Round(ms*100)/100, 'f', -1, 64)
}
