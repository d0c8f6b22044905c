package probe

import (
	"context"
	"errors"
	"fmt"
	"time"

	probing "github.com/prometheus-community/pro-bing"
	"go.uber.org/zap"
)

// Pinger is the part of *probing.Pinger the native checker drives.
type Pinger interface {
	RunWithContext(ctx context.Context) error
	Statistics() *probing.Statistics
}

// PingerFactory returns a pinger set up for a single echo to target.
type PingerFactory func(target string, timeout time.Duration, privileged bool) (Pinger, error)

func newProbingPinger(target string, timeout time.Duration, privileged bool) (Pinger, error) {
	pinger, err := probing.NewPinger(target)
	if err != nil {
		return nil, err
	}
	pinger.Count = 1
	pinger.Timeout = timeout
	pinger.SetPrivileged(privileged)
	return pinger, nil
}

// NativeEchoChecker sends one ICMP echo through a socket instead of the ping
// utility. Unprivileged mode needs net.ipv4.ping_group_range on Linux;
// privileged mode needs CAP_NET_RAW.
type NativeEchoChecker struct {
	Logger     *zap.Logger
	Timeout    time.Duration
	Privileged bool
	NewPinger  PingerFactory
}

func NewNativeEchoChecker(logger *zap.Logger, timeout time.Duration, privileged bool) *NativeEchoChecker {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &NativeEchoChecker{
		Logger:     logger,
		Timeout:    timeout,
		Privileged: privileged,
		NewPinger:  newProbingPinger,
	}
}

func (n *NativeEchoChecker) Check(ctx context.Context, target string) CheckResult {
	res := CheckResult{Name: MethodICMPNative}

	pinger, err := n.NewPinger(target, n.Timeout, n.Privileged)
	if err != nil {
		return n.fail(res, target, fmt.Errorf("resolve: %w", err))
	}
	if err := pinger.RunWithContext(ctx); err != nil {
		return n.fail(res, target, fmt.Errorf("icmp: %w", err))
	}

	stats := pinger.Statistics()
	if stats == nil || stats.PacketsRecv == 0 {
		return n.fail(res, target, errors.New("icmp: no echo reply"))
	}

	res.Success = true
	res.Message = "echo reply"
	res.LatencyMS = FormatMillis(stats.AvgRtt)
	return res
}

func (n *NativeEchoChecker) fail(res CheckResult, target string, err error) CheckResult {
	res.Err = err
	res.Message = err.Error()
	n.Logger.Info("icmp_native_attempt_failed", zap.String("host", target), zap.Error(err))
	return res
}
