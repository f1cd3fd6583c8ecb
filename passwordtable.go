package anacrack

import "sync"

// Target is one MD5 digest the search aims to resolve (§3). Digest is
// immutable once constructed; Phrase/Found transition exactly once, from
// empty/false to non-empty/true, guarded by the owning PasswordTable's lock.
type Target struct {
	Digest string
	Phrase string
	Found  bool
}

// NewTarget validates digest as a 32-character lowercase hex MD5 string.
func NewTarget(digest string) (*Target, error) {
	if len(digest) != 32 {
		return nil, errInvalidDigest(digest)
	}
	for i := 0; i < len(digest); i++ {
		c := digest[i]
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')) {
			return nil, errInvalidDigest(digest)
		}
	}
	return &Target{Digest: digest}, nil
}

func errInvalidDigest(digest string) error {
	return &invalidDigestError{digest: digest}
}

type invalidDigestError struct{ digest string }

func (e *invalidDigestError) Error() string {
	return "not a 32-character lowercase hex md5 digest: " + e.digest
}

// PasswordTable is the shared, ordered sequence of Targets protected by a
// single exclusive lock (§4.6). Every worker goroutine holds a reference to
// the same table for the lifetime of the run.
type PasswordTable struct {
	mu      sync.RWMutex
	targets []*Target
	byHash  map[string]*Target
}

// NewPasswordTable builds a table from a list of MD5 hex digests.
func NewPasswordTable(digests []string) (*PasswordTable, error) {
	t := &PasswordTable{
		byHash: make(map[string]*Target, len(digests)),
	}
	for _, digest := range digests {
		target, err := NewTarget(digest)
		if err != nil {
			return nil, err
		}
		t.targets = append(t.targets, target)
		t.byHash[target.Digest] = target
	}
	return t, nil
}

// Unfound returns a snapshot of the digests not yet found, for use by
// PhraseMatcher's per-permutation comparison (§4.4).
func (t *PasswordTable) Unfound() []*Target {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]*Target, 0, len(t.targets))
	for _, target := range t.targets {
		if !target.Found {
			out = append(out, target)
		}
	}
	return out
}

// MarkFound sets the matching target's phrase and found flag. Idempotent:
// calling it twice for the same digest leaves the table unchanged after the
// first call (§4.6 invariant, §9 open question 3 - a match against an
// already-found target is simply a no-op, never an error).
func (t *PasswordTable) MarkFound(digest, phrase string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	target, ok := t.byHash[digest]
	if !ok || target.Found {
		return
	}
	target.Phrase = phrase
	target.Found = true
}

// AllFound reports whether every target has been recovered.
func (t *PasswordTable) AllFound() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, target := range t.targets {
		if !target.Found {
			return false
		}
	}
	return true
}

// SnapshotPhrases returns a copy of the current phrase strings, in target
// order (empty string for any target still unresolved).
func (t *PasswordTable) SnapshotPhrases() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]string, len(t.targets))
	for i, target := range t.targets {
		out[i] = target.Phrase
	}
	return out
}

// Len returns the number of targets in the table.
func (t *PasswordTable) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.targets)
}
