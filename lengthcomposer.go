package anacrack

import (
	"strconv"
	"strings"

	"github.com/blackvault-sec/anacrack/internal/dedupe"
)

// lengthGenerator is one fixed-width odometer over word lengths (§4.2
// step 2), ported verbatim from the reference Generator::increment: the
// carry resets a position to 1 (not MinWordLen) - a correctness-preserving
// inefficiency the range filter in isValid screens out (§9, open question 2).
type lengthGenerator struct {
	cfg   Config
	width int
	state []int
}

func newLengthGenerator(cfg Config, width int) *lengthGenerator {
	state := make([]int, width)
	for i := range state {
		state[i] = cfg.MinWordLen
	}
	return &lengthGenerator{cfg: cfg, width: width, state: state}
}

// increment advances the odometer by one step. It returns false once a full
// wraparound has occurred (every position was at MaxWordLen and got reset),
// which is this generator's terminal state.
func (g *lengthGenerator) increment() bool {
	for i := range g.state {
		if g.state[i] < g.cfg.MaxWordLen {
			g.state[i]++
			return true
		}
		g.state[i] = 1
	}
	g.state = nil
	return false
}

func (g *lengthGenerator) sum() int {
	s := 0
	for _, v := range g.state {
		s += v
	}
	return s
}

func (g *lengthGenerator) isValid() bool {
	if g.sum() != g.cfg.TargetLen {
		return false
	}
	for _, v := range g.state {
		if v < g.cfg.MinWordLen || v > g.cfg.MaxWordLen {
			return false
		}
	}
	return true
}

// next returns the next state that sums to TargetLen and stays in bounds,
// or (nil, false) once the odometer is exhausted.
func (g *lengthGenerator) next() ([]int, bool) {
	for g.increment() {
		if g.isValid() {
			out := make([]int, len(g.state))
			copy(out, g.state)
			return out, true
		}
	}
	return nil, false
}

// LengthComposer produces a lazy, finite, deduplicated sequence of
// LengthTuples (§4.2). It round-robins across one odometer per width so
// phrase shapes of different word counts are interleaved rather than
// exhausted one width at a time.
type LengthComposer struct {
	generators []*lengthGenerator
	seen       *dedupe.SeenSet
}

// NewLengthComposer builds one sub-generator per width in [1, MaxWords]
// that can possibly reach TargetLen, per §4.2 step 1.
func NewLengthComposer(cfg Config) *LengthComposer {
	c := &LengthComposer{seen: dedupe.NewSeenSet()}
	for width := 1; width <= cfg.MaxWords; width++ {
		if width*cfg.MaxWordLen >= cfg.TargetLen {
			c.generators = append(c.generators, newLengthGenerator(cfg, width))
		}
	}
	return c
}

// Next pops the head generator, advances it once, and pushes it to the
// tail if it still has yields left - the FIFO round-robin of §4.2 step 3.
// Canonical (sorted) duplicates are silently skipped (§4.2 step 4).
func (c *LengthComposer) Next() ([]int, bool) {
	for len(c.generators) > 0 {
		g := c.generators[0]
		c.generators = c.generators[1:]

		tuple, ok := g.next()
		if !ok {
			continue // exhausted, drop it
		}
		c.generators = append(c.generators, g)

		if c.seen.AddIfNew(canonicalKey(tuple)) {
			return tuple, true
		}
		// duplicate canonical form: keep going through the round-robin
	}
	return nil, false
}

// canonicalKey returns the sorted-tuple string key used for dedup.
func canonicalKey(tuple []int) string {
	sorted := make([]int, len(tuple))
	copy(sorted, tuple)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j-1] > sorted[j]; j-- {
			sorted[j-1], sorted[j] = sorted[j], sorted[j-1]
		}
	}
	parts := make([]string, len(sorted))
	for i, v := range sorted {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}
