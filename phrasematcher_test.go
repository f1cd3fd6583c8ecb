package anacrack

import (
	"crypto/md5"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func digestOf(phrase string) string {
	sum := md5.Sum([]byte(phrase))
	return hex.EncodeToString(sum[:])
}

// TestPhraseMatcherSurvivesPruneS5 reproduces S5's multiset-prune step: the
// two named WordTuples survive the comparator check (their concatenated
// letters equal the comparator), and two other tuples drawn from the same
// S5 buckets are rejected.
func TestPhraseMatcherSurvivesPruneS5(t *testing.T) {
	comparator := NewComparator("ehioppsttwyz")
	matcher := NewPhraseMatcher(comparator, mustTable(t))

	survivors := []WordTuple{
		{"who", "test", "zippy"},
		{"who", "pies", "tyztp"},
	}
	for _, tuple := range survivors {
		require.True(t, matcher.survivesPrune(tuple), "expected %v to survive the prune", tuple)
	}

	rejected := []WordTuple{
		{"who", "best", "dizzy"},
		{"bet", "test", "junky"},
	}
	for _, tuple := range rejected {
		require.False(t, matcher.survivesPrune(tuple), "expected %v to fail the prune", tuple)
	}
}

func mustTable(t *testing.T) *PasswordTable {
	t.Helper()
	table, err := NewPasswordTable([]string{"e4820b45d2277f3844eac66c903e84be"})
	require.NoError(t, err)
	return table
}

func TestPhraseMatcherRecoversExactPhrase(t *testing.T) {
	phrase := "this is test"
	digest := digestOf(phrase)
	comparator := NewComparator(phrase)

	table, err := NewPasswordTable([]string{digest})
	require.NoError(t, err)

	matcher := NewPhraseMatcher(comparator, table)
	recovered := matcher.Match(WordTuple{"this", "is", "test"})

	require.Equal(t, []string{phrase}, recovered)
	require.True(t, table.AllFound())
}

func TestPhraseMatcherTriesEveryPermutation(t *testing.T) {
	phrase := "sit the sits"
	digest := digestOf(phrase)
	comparator := NewComparator(phrase)

	table, err := NewPasswordTable([]string{digest})
	require.NoError(t, err)

	matcher := NewPhraseMatcher(comparator, table)
	// feed words in an order that is NOT the target phrase - the matcher
	// must still find the matching ordering among all permutations.
	recovered := matcher.Match(WordTuple{"the", "sits", "sit"})

	require.Equal(t, []string{phrase}, recovered)
}

func TestPhraseMatcherNoMatchLeavesTargetUnfound(t *testing.T) {
	comparator := NewComparator("completely unrelated letters")
	table, err := NewPasswordTable([]string{"e4820b45d2277f3844eac66c903e84be"})
	require.NoError(t, err)

	matcher := NewPhraseMatcher(comparator, table)
	recovered := matcher.Match(WordTuple{"this", "is", "test"})

	require.Empty(t, recovered)
	require.False(t, table.AllFound())
}

func TestUniquePermutationsDedupesRepeatedWords(t *testing.T) {
	perms := uniquePermutations(WordTuple{"a", "a", "b"})
	// 3! = 6 orderings but only 3 are distinct since "a" repeats
	require.Len(t, perms, 3)
}
