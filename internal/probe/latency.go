package probe

import (
	"regexp"
	"strings"
)

var decimalRe = regexp.MustCompile(`^(\d+(\.\d+)?|\.\d+)$`)

// ParseLatency pulls a millisecond value out of echo-utility output.
// It is a heuristic over whitespace-separated tokens:
//
//  1. a token containing "time=" yields what follows the last "=", minus a
//     trailing "ms" (Linux "time=24.5 ms", Windows "time=17ms");
//  2. failing that, the first token ending in "ms" whose prefix is a number
//     ("24.5ms").
//
// The returned value is unit-free. ok is false when nothing numeric was
// found; the function never fails otherwise.
func ParseLatency(output string) (value string, ok bool) {
	tokens := strings.Fields(strings.ToLower(output))

	for _, tok := range tokens {
		if !strings.Contains(tok, "time=") {
			continue
		}
		v := tok[strings.LastIndex(tok, "=")+1:]
		v = strings.TrimSpace(strings.TrimSuffix(v, "ms"))
		if decimalRe.MatchString(v) {
			return v, true
		}
	}

	for _, tok := range tokens {
		if !strings.HasSuffix(tok, "ms") {
			continue
		}
		v := strings.TrimSpace(strings.TrimSuffix(tok, "ms"))
		if decimalRe.MatchString(v) {
			return v, true
		}
	}

	return "", false
}
