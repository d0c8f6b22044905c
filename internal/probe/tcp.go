package probe

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// DefaultPorts is the fallback order: HTTP, HTTPS, DNS.
var DefaultPorts = []int{80, 443, 53}

// Dialer is satisfied by *net.Dialer.
type Dialer interface {
	DialContext(ctx context.Context, network, address string) (net.Conn, error)
}

// TCPChecker tries a TCP handshake on each port in order and stops at the
// first one that accepts.
type TCPChecker struct {
	Logger  *zap.Logger
	Ports   []int
	Timeout time.Duration
	Dialer  Dialer
	Now     func() time.Time
}

func NewTCPChecker(logger *zap.Logger, ports []int, timeout time.Duration) *TCPChecker {
	if len(ports) == 0 {
		ports = DefaultPorts
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &TCPChecker{
		Logger:  logger,
		Ports:   ports,
		Timeout: timeout,
		Dialer:  &net.Dialer{},
		Now:     time.Now,
	}
}

func (c *TCPChecker) Check(ctx context.Context, target string) CheckResult {
	if len(c.Ports) == 0 {
		err := errors.New("tcp: no ports configured")
		return CheckResult{Name: MethodTCP, Err: err, Message: err.Error()}
	}

	var errs error
	for _, port := range c.Ports {
		addr := net.JoinHostPort(target, strconv.Itoa(port))

		dctx, cancel := context.WithTimeout(ctx, c.Timeout)
		start := c.Now()
		conn, err := c.Dialer.DialContext(dctx, "tcp", addr)
		elapsed := c.Now().Sub(start)
		cancel()

		if err != nil {
			c.Logger.Info("tcp_port_failed",
				zap.String("host", target),
				zap.Int("port", port),
				zap.Error(err),
			)
			errs = multierr.Append(errs, fmt.Errorf("tcp %s: %w", addr, err))
			if ctx.Err() != nil {
				break
			}
			continue
		}
		_ = conn.Close()

		c.Logger.Debug("tcp_connected",
			zap.String("host", target),
			zap.Int("port", port),
			zap.Duration("latency", elapsed),
		)
		return CheckResult{
			Name:      MethodTCP,
			Success:   true,
			LatencyMS: FormatMillis(elapsed),
			Message:   "connected to port " + strconv.Itoa(port),
		}
	}

	return CheckResult{Name: MethodTCP, Err: errs, Message: "no tcp ports reachable"}
}
