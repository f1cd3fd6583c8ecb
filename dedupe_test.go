package anacrack

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDedupeDrainsAndDeduplicates(t *testing.T) {
	ch := make(chan string, 10)
	ch <- "cat"
	ch <- "dog"
	ch <- "cat"
	close(ch)

	d := NewDedupe(ch, 10)
	d.Drain()

	var got []string
	for v := range d.GetResults() {
		got = append(got, v)
	}
	require.ElementsMatch(t, []string{"cat", "dog"}, got)
}

func TestNewWordBucketBackendSmall(t *testing.T) {
	small := newWordBucketBackend(false)
	small.Upsert("cat")
	var got []string
	small.IterCallback(func(elem string) { got = append(got, elem) })
	require.Equal(t, []string{"cat"}, got)
	small.Cleanup()
}
