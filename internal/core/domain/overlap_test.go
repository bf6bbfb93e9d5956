package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestTrailingOverlap_BasicMatch tests the documented example case.
func TestTrailingOverlap_BasicMatch(t *testing.T) {
	got := TrailingOverlap("the quick brown fox", "brown fox jumps")
	assert.Equal(t, "brown fox", got)
}

func TestTrailingOverlap(t *testing.T) {
	tests := []struct {
		name string
		prev string
		next string
		want string
	}{
		{
			name: "no overlap",
			prev: "completely different text",
			next: "nothing shared here",
			want: "",
		},
		{
			name: "single word",
			prev: "ends with token",
			next: "token starts the next",
			want: "token",
		},
		{
			name: "entire shorter text",
			prev: "alpha beta gamma",
			next: "alpha beta gamma delta",
			want: "alpha beta gamma",
		},
		{
			name: "longest window wins over shorter match",
			prev: "a b a b",
			next: "a b a b c",
			want: "a b a b",
		},
		{
			name: "whitespace normalised to single spaces",
			prev: "the  quick\tbrown   fox",
			next: "brown \n fox jumps",
			want: "brown fox",
		},
		{
			name: "partial word is not a match",
			prev: "ends with foobar",
			next: "bar starts here",
			want: "",
		},
		{
			name: "empty prev",
			prev: "",
			next: "some text",
			want: "",
		},
		{
			name: "empty next",
			prev: "some text",
			next: "",
			want: "",
		},
		{
			name: "both empty",
			prev: "",
			next: "",
			want: "",
		},
		{
			name: "identical texts",
			prev: "one two three",
			next: "one two three",
			want: "one two three",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TrailingOverlap(tt.prev, tt.next))
		})
	}
}

// TestTrailingOverlap_LongestNotFirst verifies the detector scans all
// candidate window sizes instead of stopping at the first match.
func TestTrailingOverlap_LongestNotFirst(t *testing.T) {
	// "x" alone also matches, but the three-word window is longer.
	got := TrailingOverlap("lead in x y x", "x y x trailing words")
	assert.Equal(t, "x y x", got)
}

func TestSignificantOverlap(t *testing.T) {
	// Exactly at the threshold is not significant; it must exceed it.
	exact := strings.Repeat("a", OverlapThreshold)
	assert.False(t, SignificantOverlap(exact))
	assert.True(t, SignificantOverlap(exact+"b"))
	assert.False(t, SignificantOverlap(""))
	assert.False(t, SignificantOverlap("brown fox"))
}
