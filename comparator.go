package anacrack

import "sort"

// Comparator is the exact multiset of lowercase letters a recovered phrase
// must contain once spaces are removed. It is built once per run and shared
// read-only across the Dictionary, the Orchestrator and its PhraseMatcher.
type Comparator []byte

// NewComparator builds a Comparator from one or more source phrases/words,
// concatenating and sorting their letters. Non-alphabetic bytes are dropped.
func NewComparator(parts ...string) Comparator {
	var letters []byte
	for _, part := range parts {
		for i := 0; i < len(part); i++ {
			c := part[i]
			if c >= 'a' && c <= 'z' {
				letters = append(letters, c)
			} else if c >= 'A' && c <= 'Z' {
				letters = append(letters, c-'A'+'a')
			}
		}
	}
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })
	return Comparator(letters)
}

// Len returns the total number of letters the comparator requires.
func (c Comparator) Len() int {
	return len(c)
}

// counts returns a 26-slot letter-frequency table for c.
func (c Comparator) counts() [26]int {
	var tbl [26]int
	for _, b := range c {
		tbl[b-'a']++
	}
	return tbl
}

// containsWithMultiplicity reports whether word's letters are all present in
// c with multiplicity no greater than c provides - the per-word admission
// rule used by Dictionary (§4.1, condition iv). Non-alphabetic bytes are
// ignored rather than rejecting the word outright: condition (iv) runs on
// the untrimmed line (§9, open question), and a trailing punctuation byte
// carries no letter-multiset information either way.
func (c Comparator) containsWithMultiplicity(word string) bool {
	avail := c.counts()
	var need [26]int
	for i := 0; i < len(word); i++ {
		ch := word[i]
		if ch < 'a' || ch > 'z' {
			continue
		}
		need[ch-'a']++
		if need[ch-'a'] > avail[ch-'a'] {
			return false
		}
	}
	return true
}

// sortedLetters returns the sorted multiset of letters in s (spaces and any
// other non-letter bytes ignored), used to compare a concatenated WordTuple
// against the comparator (§4.4 step 1).
func sortedLetters(s string) []byte {
	letters := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'a' && c <= 'z' {
			letters = append(letters, c)
		}
	}
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })
	return letters
}

// equalLetters compares two already-sorted letter slices for equality.
func equalLetters(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
