package probe

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"go.uber.org/zap"
)

// CommandRunner runs name with args and returns combined stdout/stderr.
// A non-zero exit status must be reported as an error.
type CommandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

func execRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	// reap the child even if it leaves pipes open after being killed
	cmd.WaitDelay = time.Second
	return cmd.CombinedOutput()
}

// EchoChecker sends a single echo request through the platform ping utility.
type EchoChecker struct {
	Logger  *zap.Logger
	Timeout time.Duration
	Binary  string
	GOOS    string
	Run     CommandRunner
}

func NewEchoChecker(logger *zap.Logger, timeout time.Duration) *EchoChecker {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &EchoChecker{
		Logger:  logger,
		Timeout: timeout,
		Binary:  "ping",
		GOOS:    runtime.GOOS,
		Run:     execRunner,
	}
}

// Args returns the ping arguments for a single echo to target.
func (e *EchoChecker) Args(target string) []string {
	count := "-c"
	if e.GOOS == "windows" {
		count = "-n"
	}
	return []string{count, "1", target}
}

func (e *EchoChecker) Check(ctx context.Context, target string) CheckResult {
	res := CheckResult{Name: MethodICMP}
	if strings.HasPrefix(target, "-") {
		return e.fail(res, target, fmt.Errorf("refusing host %q that looks like a flag", target))
	}

	cctx, cancel := context.WithTimeout(ctx, e.Timeout)
	defer cancel()

	start := time.Now()
	out, err := e.Run(cctx, e.Binary, e.Args(target)...)
	if errors.Is(cctx.Err(), context.DeadlineExceeded) {
		return e.fail(res, target, fmt.Errorf("ping timed out after %s", e.Timeout))
	}
	if err != nil {
		return e.fail(res, target, fmt.Errorf("ping: %w", err))
	}

	text := strings.ToLower(string(out))
	if !strings.Contains(text, "ttl") && !strings.Contains(text, "time=") {
		return e.fail(res, target, errors.New("ping: no reply marker in output"))
	}

	res.Success = true
	res.Message = "echo reply"
	if v, ok := ParseLatency(text); ok {
		res.LatencyMS = v
	}
	e.Logger.Debug("icmp_reply",
		zap.String("host", target),
		zap.String("latency_ms", res.LatencyMS),
		zap.Duration("took", time.Since(start)),
	)
	return res
}

func (e *EchoChecker) fail(res CheckResult, target string, err error) CheckResult {
	res.Err = err
	res.Message = err.Error()
	e.Logger.Info("icmp_attempt_failed", zap.String("host", target), zap.Error(err))
	return res
}
