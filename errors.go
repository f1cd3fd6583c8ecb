package anacrack

import (
	errorutil "github.com/projectdiscovery/utils/errors"
)

// DictionaryError is the tagged error type returned by dictionary loading.
// Only ErrUnreadable ever propagates to the process exit code (§7); a
// malformed line is logged and skipped, never returned as an error.
type DictionaryError struct {
	*errorutil.Error
}

// ErrUnreadable wraps the underlying I/O error when the wordlist path
// cannot be opened for reading.
func ErrUnreadable(path string, cause error) *DictionaryError {
	return &DictionaryError{
		Error: errorutil.NewWithTag("anacrack", "wordlist %q is unreadable: %v", path, cause),
	}
}
