package anacrack

import (
	"io"
	"sync"

	"github.com/blackvault-sec/anacrack/internal/dedupe"
)

// PhraseWriter drains a recovered-phrase channel and writes each distinct
// phrase as a line to an underlying io.Writer (the --output sink, §10.3 /
// §11). A single WordTuple can occasionally be matched by more than one
// in-flight worker permutation ordering before PasswordTable.MarkFound's
// idempotency kicks in, so the writer still dedupes defensively on its way
// out.
type PhraseWriter struct {
	writer io.Writer
	seen   *dedupe.SeenSet
	mu     sync.Mutex
	count  int
}

func NewPhraseWriter(w io.Writer) *PhraseWriter {
	return &PhraseWriter{writer: w, seen: dedupe.NewSeenSet()}
}

// Run consumes ch until it is closed, writing each new phrase followed by a
// newline. Intended to run in its own goroutine alongside Orchestrator.Run.
func (pw *PhraseWriter) Run(ch <-chan string) error {
	for phrase := range ch {
		if err := pw.writeOne(phrase); err != nil {
			return err
		}
	}
	return nil
}

func (pw *PhraseWriter) writeOne(phrase string) error {
	pw.mu.Lock()
	defer pw.mu.Unlock()

	if !pw.seen.AddIfNew(phrase) {
		return nil
	}
	if _, err := pw.writer.Write([]byte(phrase + "\n")); err != nil {
		return err
	}
	pw.count++
	return nil
}

// Count returns the number of distinct phrases written so far.
func (pw *PhraseWriter) Count() int {
	pw.mu.Lock()
	defer pw.mu.Unlock()
	return pw.count
}
