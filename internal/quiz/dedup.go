package quiz

import (
	"fmt"
	"strings"
)

// KeySet tracks dedupe keys used in the current session. It only grows
// during a run; keys are never removed except by a full pool reset.
type KeySet map[string]struct{}

// NewKeySet returns an empty KeySet.
func NewKeySet() KeySet {
	return make(KeySet)
}

// Has reports whether key was already used.
func (s KeySet) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// Add records key and returns the same set for chaining.
func (s KeySet) Add(key string) KeySet {
	s[key] = struct{}{}
	return s
}

// dedupeKey builds a canonical key from a question's defining
// parameters, e.g. dedupeKey("arith", 4, 7) == "arith:4:7".
func dedupeKey(parts ...any) string {
	ss := make([]string, len(parts))
	for i, p := range parts {
		ss[i] = fmt.Sprint(p)
	}
	return strings.Join(ss, ":")
}
