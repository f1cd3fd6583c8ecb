package anacrack

import (
	"crypto/md5"
	"encoding/hex"
	"strings"

	"github.com/blackvault-sec/anacrack/internal/dedupe"
)

// PhraseMatcher checks one WordTuple against the comparator and, if it
// survives the multiset prune, tests every unique word ordering against the
// PasswordTable (§4.4).
type PhraseMatcher struct {
	comparator Comparator
	table      *PasswordTable
}

func NewPhraseMatcher(comparator Comparator, table *PasswordTable) *PhraseMatcher {
	return &PhraseMatcher{comparator: comparator, table: table}
}

// Match runs the full §4.4 algorithm for one WordTuple, returning every
// phrase it recovered (a single tuple may resolve more than one target,
// since the matcher never early-exits within a tuple on the first hit).
func (m *PhraseMatcher) Match(tuple WordTuple) []string {
	if !m.survivesPrune(tuple) {
		return nil
	}

	var recovered []string
	for _, perm := range uniquePermutations(tuple) {
		phrase := strings.Join(perm, " ")
		digest := md5Hex(phrase)

		for _, target := range m.table.Unfound() {
			if target.Digest == digest {
				m.table.MarkFound(digest, phrase)
				recovered = append(recovered, phrase)
				break
			}
		}
	}
	return recovered
}

// survivesPrune implements §4.4 step 1: concatenate, sort, compare to the
// comparator multiset.
func (m *PhraseMatcher) survivesPrune(tuple WordTuple) bool {
	var concat strings.Builder
	for _, w := range tuple {
		concat.WriteString(w)
	}
	return equalLetters(sortedLetters(concat.String()), m.comparator)
}

func md5Hex(phrase string) string {
	sum := md5.Sum([]byte(phrase))
	return hex.EncodeToString(sum[:])
}

// uniquePermutations enumerates every distinct ordering of tuple as a
// sequence of strings (§4.4 step 2, "Permutation uniqueness" in §8). Generate
// all k! orderings via Heap's algorithm, then dedup by the resulting string
// tuple's identity - the approach the reference's
// `itertools::Itertools::permutations(...).unique()` takes.
func uniquePermutations(tuple WordTuple) []WordTuple {
	n := len(tuple)
	if n == 0 {
		return nil
	}

	work := make(WordTuple, n)
	copy(work, tuple)

	seen := dedupe.NewSeenSet()
	var out []WordTuple

	emit := func(perm WordTuple) {
		key := strings.Join(perm, "\x00")
		if seen.AddIfNew(key) {
			cp := make(WordTuple, n)
			copy(cp, perm)
			out = append(out, cp)
		}
	}

	// Heap's algorithm
	c := make([]int, n)
	emit(work)
	for i := 0; i < n; {
		if c[i] < i {
			if i%2 == 0 {
				work[0], work[i] = work[i], work[0]
			} else {
				work[c[i]], work[i] = work[i], work[c[i]]
			}
			emit(work)
			c[i]++
			i = 0
		} else {
			c[i] = 0
			i++
		}
	}
	return out
}
