package anacrack

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestTupleEnumeratorOrderS4 reproduces S4: two buckets of 3 and 4 words
// yield all 12 pairs with the last position advancing fastest.
func TestTupleEnumeratorOrderS4(t *testing.T) {
	buckets := [][]string{
		{"a", "b", "c"},
		{"w", "x", "y", "z"},
	}
	e := NewTupleEnumerator(buckets)

	var got []WordTuple
	for {
		tuple, ok := e.Next()
		if !ok {
			break
		}
		got = append(got, tuple)
	}
	require.Len(t, got, 12)

	want := []WordTuple{
		{"a", "w"}, {"a", "x"}, {"a", "y"}, {"a", "z"},
		{"b", "w"}, {"b", "x"}, {"b", "y"}, {"b", "z"},
		{"c", "w"}, {"c", "x"}, {"c", "y"}, {"c", "z"},
	}
	require.Equal(t, want, got)
}

func TestTupleEnumeratorSingleBucket(t *testing.T) {
	e := NewTupleEnumerator([][]string{{"a", "b"}})
	var got []WordTuple
	for {
		tuple, ok := e.Next()
		if !ok {
			break
		}
		got = append(got, tuple)
	}
	require.Equal(t, []WordTuple{{"a"}, {"b"}}, got)
}
