package domain

import (
	"path/filepath"
	"strings"
)

// CollectionRecord is one entry in the collection registry: a vector
// collection holding the chunks of exactly one ingested file, together
// with the coarse provenance label derived from that file's name.
//
// The registry is the sole source of truth for which collections are
// searchable. A collection present in the vector store but absent from
// the registry is unreachable (soft-deleted).
type CollectionRecord struct {
	// ID is the globally unique collection identifier, generated at
	// ingestion time from the sanitised filename stem, a millisecond
	// timestamp and a short random suffix. Uniqueness is probabilistic,
	// not guaranteed; callers tolerate a theoretical duplicate.
	ID string `json:"id"`

	// Source is the provenance label derived from the filename.
	Source string `json:"source"`
}

// SourceLabel derives the provenance label for a file path: the token
// before the first underscore of the filename stem, else the whole stem,
// lower-cased.
//
// This is a documented heuristic, not a validated identifier. Labels
// containing '|' are rejected at registry-append time because the line
// format performs no escaping.
func SourceLabel(path string) string {
	stem := fileStem(path)
	if i := strings.Index(stem, "_"); i >= 0 {
		stem = stem[:i]
	}
	return strings.ToLower(stem)
}

// CollectionPrefix derives the name prefix for a new collection from the
// filename stem. Anything outside [a-z0-9-] is collapsed to '-' so the
// result is safe as a vector-store collection name component.
func CollectionPrefix(path string) string {
	stem := strings.ToLower(fileStem(path))
	var b strings.Builder
	b.Grow(len(stem))
	lastDash := true // trim leading dashes
	for _, r := range stem {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	prefix := strings.TrimSuffix(b.String(), "-")
	if prefix == "" {
		prefix = "doc"
	}
	return prefix
}

// fileStem returns the base filename without its extension.
func fileStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
