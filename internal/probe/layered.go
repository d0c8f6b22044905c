package probe

import (
	"context"
	"errors"

	"go.uber.org/multierr"
)

// Layered runs its checkers in order and returns the first success. When all
// of them fail the result carries every checker's error.
type Layered struct {
	Checkers []Checker
	// Observe, when set, sees every individual attempt.
	Observe func(target string, r CheckResult)
}

func NewLayered(checkers ...Checker) *Layered {
	return &Layered{Checkers: checkers}
}

func (l *Layered) Check(ctx context.Context, target string) CheckResult {
	var errs error
	for _, c := range l.Checkers {
		r := c.Check(ctx, target)
		if l.Observe != nil {
			l.Observe(target, r)
		}
		if r.Success {
			return r
		}
		errs = multierr.Append(errs, r.Err)
		if ctx.Err() != nil {
			errs = multierr.Append(errs, ctx.Err())
			break
		}
	}
	if errs == nil {
		errs = errors.New("no probes configured")
	}
	return CheckResult{Name: MethodLayered, Err: errs, Message: "all probes failed"}
}
