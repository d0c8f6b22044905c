package probe

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Mode selects how the echo stage is performed.
type Mode string

const (
	ModeExec   Mode = "exec"   // platform ping utility
	ModeNative Mode = "native" // ICMP socket
	ModeAuto   Mode = "auto"   // socket first, then the ping utility
)

// Options configures the layered reachability probe.
type Options struct {
	Mode        Mode
	EchoTimeout time.Duration
	Privileged  bool
	Ports       []int
	TCPTimeout  time.Duration
}

// NewReachability builds the echo stage(s) followed by the TCP fallback.
func NewReachability(logger *zap.Logger, opts Options) (*Layered, error) {
	var echo []Checker
	switch opts.Mode {
	case ModeExec, "":
		echo = []Checker{NewEchoChecker(logger, opts.EchoTimeout)}
	case ModeNative:
		echo = []Checker{NewNativeEchoChecker(logger, opts.EchoTimeout, opts.Privileged)}
	case ModeAuto:
		echo = []Checker{
			NewNativeEchoChecker(logger, opts.EchoTimeout, opts.Privileged),
			NewEchoChecker(logger, opts.EchoTimeout),
		}
	default:
		return nil, fmt.Errorf("unknown icmp mode %q", opts.Mode)
	}
	return NewLayered(append(echo, NewTCPChecker(logger, opts.Ports, opts.TCPTimeout))...), nil
}
