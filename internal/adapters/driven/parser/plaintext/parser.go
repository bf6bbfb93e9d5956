// Package plaintext provides a local document parser for UTF-8 text
// files. It splits on word windows, repeating the tail of each chunk at
// the head of the next so that adjacent chunks share boundary context.
package plaintext

import (
	"context"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/askdocs/askdocs-cli/internal/core/ports/driven"
)

// Ensure Parser implements the interface.
var _ driven.DocumentParser = (*Parser)(nil)

// Default configuration values.
const (
	DefaultChunkWords   = 200
	DefaultOverlapWords = 20
)

// Config holds configuration for the plaintext parser.
type Config struct {
	// ChunkWords is the window size in words (default: 200).
	ChunkWords int

	// OverlapWords is how many trailing words repeat at the start of
	// the next chunk (default: 20). Must be smaller than ChunkWords.
	OverlapWords int
}

// Parser splits UTF-8 text files into overlapping word windows.
type Parser struct {
	chunkWords   int
	overlapWords int
}

// NewParser creates a new plaintext parser.
func NewParser(cfg Config) (*Parser, error) {
	if cfg.ChunkWords == 0 {
		cfg.ChunkWords = DefaultChunkWords
	}
	if cfg.OverlapWords == 0 {
		cfg.OverlapWords = DefaultOverlapWords
	}
	if cfg.ChunkWords <= 0 || cfg.OverlapWords < 0 {
		return nil, fmt.Errorf("plaintext: chunk words must be positive and overlap non-negative")
	}
	if cfg.OverlapWords >= cfg.ChunkWords {
		return nil, fmt.Errorf("plaintext: overlap (%d) must be smaller than chunk size (%d)", cfg.OverlapWords, cfg.ChunkWords)
	}
	return &Parser{
		chunkWords:   cfg.ChunkWords,
		overlapWords: cfg.OverlapWords,
	}, nil
}

// Parse reads the file and returns overlapping word-window chunks.
func (p *Parser) Parse(ctx context.Context, path string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("plaintext: %s is not valid UTF-8", path)
	}

	words := strings.Fields(string(data))
	if len(words) == 0 {
		return nil, nil
	}

	stride := p.chunkWords - p.overlapWords
	var chunks []string
	for start := 0; start < len(words); start += stride {
		end := start + p.chunkWords
		if end > len(words) {
			end = len(words)
		}
		chunks = append(chunks, strings.Join(words[start:end], " "))
		if end == len(words) {
			break
		}
	}
	return chunks, nil
}

// Name returns the parser backend identifier.
func (p *Parser) Name() string {
	return "plaintext"
}
