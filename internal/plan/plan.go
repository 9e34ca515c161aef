// Package plan is the deterministic plan-generation engine.
//
// Both pipelines (goal and picnic) follow the same shape: a validated input
// record is mapped through independent pure generator functions (packing
// list, food suggestions, schedule, phases, budget, narrative) and assembled
// into one immutable plan record. Identity and creation timestamp are the
// only non-deterministic outputs; everything else is a pure function of the
// input, so regenerating from identical input yields identical collections.
package plan

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Generator assembles plan records. Identity and timestamps come from the
// injected sources so tests can pin them; New wires the real clock.
type Generator struct {
	now    func() time.Time
	suffix func() string
}

// New returns a Generator using the system clock and random identity suffixes.
func New() *Generator {
	return &Generator{
		now:    time.Now,
		suffix: randomSuffix,
	}
}

// NewFixed returns a Generator with a pinned clock and identity suffix.
// Intended for tests that assert full output records.
func NewFixed(now time.Time, suffix string) *Generator {
	return &Generator{
		now:    func() time.Time { return now },
		suffix: func() string { return suffix },
	}
}

// planID builds a process-unique plan identity: generation time in unix
// millis plus a random suffix. Collisions are negligible and the id is never
// used for ordering.
func (g *Generator) planID(prefix string) string {
	return fmt.Sprintf("%s_%d_%s", prefix, g.now().UnixMilli(), g.suffix())
}

func randomSuffix() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:9]
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// containsFold reports whether s contains substr, case-insensitively.
// Keyword matching is deliberately plain substring with no word boundaries.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), substr)
}
