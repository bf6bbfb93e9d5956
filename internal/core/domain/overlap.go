package domain

import "strings"

// OverlapThreshold is the minimum overlap length, in characters, for a
// boundary overlap to be recorded in chunk metadata. The detector itself
// returns shorter overlaps; callers apply the threshold so that short
// coincidental matches ("the", "and so") are not recorded.
const OverlapThreshold = 20

// TrailingOverlap computes the longest word-sequence overlap between the
// end of prev and the start of next. Both texts are tokenised on
// whitespace; the result is the longest k >= 1 words such that the last k
// words of prev, joined by single spaces, exactly equal the first k words
// of next. Returns "" when no such k exists.
//
// Equality is word-level: differing internal whitespace does not defeat a
// match, but partial-word matches are never returned.
func TrailingOverlap(prev, next string) string {
	prevWords := strings.Fields(prev)
	nextWords := strings.Fields(next)

	maxK := len(prevWords)
	if len(nextWords) < maxK {
		maxK = len(nextWords)
	}

	// Largest window first: the longest match wins, not the first found.
	for k := maxK; k >= 1; k-- {
		if wordsEqual(prevWords[len(prevWords)-k:], nextWords[:k]) {
			return strings.Join(nextWords[:k], " ")
		}
	}
	return ""
}

// SignificantOverlap reports whether an overlap string is long enough to
// be recorded in chunk metadata.
func SignificantOverlap(overlap string) bool {
	return len(overlap) > OverlapThreshold
}

func wordsEqual(a, b []string) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
