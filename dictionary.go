package anacrack

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/projectdiscovery/gologger"
)

// largeWordlistThreshold is the wordlist file size (bytes) above which the
// Dictionary switches every bucket to the disk-backed DedupeBackend
// (§10.4) instead of guessing per-bucket counts up front.
var largeWordlistThreshold int64 = 64 * 1024 * 1024

// Dictionary is a read-only, length-indexed index of admitted words, built
// once at startup and safely shared across every worker goroutine (§3, §4.1).
type Dictionary struct {
	buckets map[int][]string
}

// NewDictionary loads path, keeping only words that satisfy every admission
// rule in §4.1: length in [minLen, maxLen], no digits, no apostrophes, and
// every letter present in comparator with sufficient multiplicity. The
// multiplicity/digit/apostrophe checks run on the *untrimmed* line; trailing
// non-alphabetic bytes are trimmed only afterward (§9, open question 1).
func NewDictionary(path string, minLen, maxLen int, comparator Comparator) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ErrUnreadable(path, err)
	}
	defer f.Close()

	large := false
	if info, statErr := f.Stat(); statErr == nil && info.Size() > largeWordlistThreshold {
		large = true
		gologger.Info().Msgf("wordlist %q is %d bytes, using disk-backed dictionary buckets", path, info.Size())
	}

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	buckets, err := bucketAdmittedWords(scanner, minLen, maxLen, comparator, large)
	if err != nil {
		return nil, ErrUnreadable(path, err)
	}
	return &Dictionary{buckets: buckets}, nil
}

// NewDictionaryFromReader builds a Dictionary from an arbitrary stream (the
// stdin wordlist fallback of §11, used when no positional wordlist path is
// given). Piped input commonly concatenates multiple sources and can carry
// duplicate lines, so raw lines are deduplicated with Dedupe before the more
// expensive per-word admission check runs, rather than repeating that check
// once per repeat of a common word.
func NewDictionaryFromReader(r io.Reader, minLen, maxLen int, comparator Comparator, expectedLines int) (*Dictionary, error) {
	rawLines := make(chan string, 1000)
	go func() {
		defer close(rawLines)
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			rawLines <- scanner.Text()
		}
	}()

	d := NewDedupe(rawLines, expectedLines)
	d.Drain()

	large := expectedLines > int(largeWordlistThreshold/16)
	buckets := map[int][]string{}
	backends := map[int]DedupeBackend{}
	for raw := range d.GetResults() {
		admitWord(raw, minLen, maxLen, comparator, large, backends)
	}
	for n, b := range backends {
		var words []string
		b.IterCallback(func(elem string) { words = append(words, elem) })
		b.Cleanup()
		buckets[n] = words
	}
	return &Dictionary{buckets: buckets}, nil
}

// bucketAdmittedWords scans every line from scanner, applies the §4.1
// admission rule, and buckets survivors by final word length.
func bucketAdmittedWords(scanner *bufio.Scanner, minLen, maxLen int, comparator Comparator, large bool) (map[int][]string, error) {
	backends := map[int]DedupeBackend{}
	for scanner.Scan() {
		admitWord(scanner.Text(), minLen, maxLen, comparator, large, backends)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	buckets := make(map[int][]string, len(backends))
	for n, b := range backends {
		var words []string
		b.IterCallback(func(elem string) { words = append(words, elem) })
		b.Cleanup()
		buckets[n] = words
	}
	return buckets, nil
}

// admitWord applies the §4.1 admission rule to one raw line and, if it
// survives, upserts it into the bucket backend for its trimmed length.
func admitWord(raw string, minLen, maxLen int, comparator Comparator, large bool, backends map[int]DedupeBackend) {
	if !isAdmissible(raw, minLen, maxLen, comparator) {
		return
	}
	word := trimTrailingNonAlpha(raw)
	if word == "" {
		gologger.Warning().Msgf("dictionary: skipping malformed entry %q", raw)
		return
	}
	n := len(word)
	b, ok := backends[n]
	if !ok {
		b = newWordBucketBackend(large)
		backends[n] = b
	}
	b.Upsert(word)
}

// Get returns the admitted words of the given length, or false if none.
func (d *Dictionary) Get(length int) ([]string, bool) {
	words, ok := d.buckets[length]
	return words, ok
}

// isAdmissible applies §4.1 conditions (i)-(iv) to the raw (untrimmed) line.
func isAdmissible(word string, minLen, maxLen int, comparator Comparator) bool {
	if len(word) < minLen || len(word) > maxLen {
		return false
	}
	if strings.ContainsAny(word, "0123456789") {
		return false
	}
	if strings.Contains(word, "'") {
		return false
	}
	return comparator.containsWithMultiplicity(strings.ToLower(word))
}

// trimTrailingNonAlpha strips trailing non-alphabetic bytes and lowercases
// the remainder, per Dictionary::clean in the reference implementation.
func trimTrailingNonAlpha(word string) string {
	word = strings.ToLower(word)
	end := len(word)
	for end > 0 {
		c := word[end-1]
		if c >= 'a' && c <= 'z' {
			break
		}
		end--
	}
	return word[:end]
}
