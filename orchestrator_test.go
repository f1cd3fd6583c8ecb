package anacrack

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func md5Of(phrase string) string {
	sum := md5.Sum([]byte(phrase))
	return hex.EncodeToString(sum[:])
}

// s6Wordlist is just wide enough to let the length composer and tuple
// enumerator reach both target phrases for Config(2, 10, 10, 4).
const s6Wordlist = "this\nis\ntest\nsit\nthe\nsits\nsitting\nhit\nhis\n"

func runS6(t *testing.T, workers int) *PasswordTable {
	t.Helper()

	comparator := NewComparator("sitt" + "thesis")
	targets := []string{
		md5Of("this is test"),
		md5Of("sit the sits"),
	}

	dict, err := NewDictionaryFromReader(strings.NewReader(s6Wordlist), 2, 10, comparator, 0)
	require.NoError(t, err)

	table, err := NewPasswordTable(targets)
	require.NoError(t, err)

	cfg := Config{MinWordLen: 2, MaxWordLen: 10, TargetLen: 10, MaxWords: 4}
	composer := NewLengthComposer(cfg)
	orchestrator := NewOrchestrator(dict, composer, table, comparator, workers)

	stats := orchestrator.Run(context.Background(), nil)
	require.Greater(t, stats.TuplesComposed, int64(0))
	return table
}

// TestOrchestratorEndToEndRecoveryS6 reproduces S6: both targets are found
// with their matching phrases by the time Run returns.
func TestOrchestratorEndToEndRecoveryS6(t *testing.T) {
	table := runS6(t, 2)

	require.True(t, table.AllFound())
	phrases := table.SnapshotPhrases()
	require.ElementsMatch(t, []string{"this is test", "sit the sits"}, phrases)
}

// TestOrchestratorConcurrencySafetyS7 reproduces S7: running S6 at worker
// counts 1, 2, 4 and 8 always yields the same final PasswordTable contents.
func TestOrchestratorConcurrencySafetyS7(t *testing.T) {
	var want []string
	for _, workers := range []int{1, 2, 4, 8} {
		table := runS6(t, workers)
		require.True(t, table.AllFound(), "workers=%d", workers)

		got := table.SnapshotPhrases()
		if want == nil {
			want = got
			continue
		}
		require.ElementsMatch(t, want, got, "workers=%d produced different phrases", workers)
	}
}

// TestOrchestratorStopsWhenAllFound ensures Run terminates promptly once
// every target resolves, without needing to exhaust the whole search space.
func TestOrchestratorStopsWhenAllFound(t *testing.T) {
	comparator := NewComparator("cat")
	dict, err := NewDictionaryFromReader(strings.NewReader("cat\n"), 2, 10, comparator, 0)
	require.NoError(t, err)

	table, err := NewPasswordTable([]string{md5Of("cat")})
	require.NoError(t, err)

	cfg := Config{MinWordLen: 2, MaxWordLen: 10, TargetLen: 3, MaxWords: 1}
	composer := NewLengthComposer(cfg)
	orchestrator := NewOrchestrator(dict, composer, table, comparator, 4)

	stats := orchestrator.Run(context.Background(), nil)
	require.True(t, table.AllFound())
	require.Equal(t, int64(1), stats.PhrasesRecovered)
}

func TestOrchestratorPhraseChReceivesRecoveredPhrases(t *testing.T) {
	comparator := NewComparator("cat")
	dict, err := NewDictionaryFromReader(strings.NewReader("cat\n"), 2, 10, comparator, 0)
	require.NoError(t, err)

	table, err := NewPasswordTable([]string{md5Of("cat")})
	require.NoError(t, err)

	cfg := Config{MinWordLen: 2, MaxWordLen: 10, TargetLen: 3, MaxWords: 1}
	composer := NewLengthComposer(cfg)
	orchestrator := NewOrchestrator(dict, composer, table, comparator, 2)

	phraseCh := make(chan string, 10)
	done := make(chan struct{})
	var received []string
	go func() {
		defer close(done)
		for p := range phraseCh {
			received = append(received, p)
		}
	}()

	orchestrator.Run(context.Background(), phraseCh)
	close(phraseCh)
	<-done

	require.Equal(t, []string{"cat"}, received)
}
