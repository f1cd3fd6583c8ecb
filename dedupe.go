package anacrack

import "github.com/blackvault-sec/anacrack/internal/dedupe"

// MaxInMemoryWords is the largest expected element count for which NewDedupe
// keeps its values in a plain Go map; above it NewDedupe uses the disk-backed
// backend. Dictionary word-length buckets do not consult it: they switch
// backends on wordlist size (largeWordlistThreshold).
var MaxInMemoryWords = 500_000

// DedupeBackend is a pluggable, write-once/read-many string set. Dictionary
// uses one instance per word length while scanning the wordlist.
type DedupeBackend interface {
	// Upsert add/update key to backend/database
	Upsert(elem string)
	// Execute given callback on each element while iterating
	IterCallback(callback func(elem string))
	// Cleanup cleans any residuals after deduping
	Cleanup()
}

// Dedupe drains a channel of strings into a backend and re-streams the
// deduplicated result, used by NewDictionaryFromReader to collapse repeated
// lines in piped wordlist input before the per-word admission check runs.
type Dedupe struct {
	receive <-chan string
	backend DedupeBackend
}

// Drain consumes the receive channel until closed, upserting every value.
func (d *Dedupe) Drain() {
	for {
		val, ok := <-d.receive
		if !ok {
			break
		}
		d.backend.Upsert(val)
	}
}

// GetResults iterates over dedupe storage and returns results on a channel.
func (d *Dedupe) GetResults() <-chan string {
	send := make(chan string, 100)
	go func() {
		defer close(send)
		d.backend.IterCallback(func(elem string) {
			send <- elem
		})
		d.backend.Cleanup()
	}()
	return send
}

// NewDedupe picks an in-memory or disk-backed backend based on the expected
// element count compared against MaxInMemoryWords.
func NewDedupe(ch <-chan string, expectedCount int) *Dedupe {
	d := &Dedupe{receive: ch}
	if expectedCount <= MaxInMemoryWords {
		d.backend = dedupe.NewMapBackend()
	} else {
		d.backend = dedupe.NewLevelDBBackend()
	}
	return d
}

// newWordBucketBackend picks the accumulation backend for one Dictionary
// word-length bucket while scanning the wordlist.
func newWordBucketBackend(large bool) DedupeBackend {
	if large {
		return dedupe.NewLevelDBBackend()
	}
	return dedupe.NewMapBackend()
}
