// Package file provides a line-oriented file backing for the collection
// registry. One record per line, `<collectionId>|<sourceLabel>`,
// newline-terminated. No escaping is performed, so ids and labels must
// not contain '|'.
package file

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/askdocs/askdocs-cli/internal/core/domain"
	"github.com/askdocs/askdocs-cli/internal/core/ports/driven"
	"github.com/askdocs/askdocs-cli/internal/logger"
)

// Ensure Registry implements the interface.
var _ driven.CollectionRegistry = (*Registry)(nil)

// registryFileName is the file holding the registry inside the data dir.
const registryFileName = "collections.txt"

// Registry is an append-only, line-oriented file registry. Each Append
// issues a single O_APPEND write, so concurrent appends for different
// files cannot interleave-corrupt prior records.
type Registry struct {
	mu   sync.Mutex
	path string
}

// NewRegistry creates a file registry under dataDir.
// If dataDir is empty, defaults to ~/.askdocs/data.
func NewRegistry(dataDir string) (*Registry, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".askdocs", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	return &Registry{path: filepath.Join(dataDir, registryFileName)}, nil
}

// Append durably persists one record as a single newline-terminated
// write.
func (r *Registry) Append(_ context.Context, record domain.CollectionRecord) error {
	if strings.Contains(record.ID, "|") || strings.Contains(record.Source, "|") {
		return fmt.Errorf("%w: %q|%q", domain.ErrInvalidSourceLabel, record.ID, record.Source)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("opening registry: %w", err)
	}
	defer f.Close()

	line := record.ID + "|" + record.Source + "\n"
	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("appending record: %w", err)
	}
	return f.Sync()
}

// LoadAll returns all records in append order. A registry that has never
// been written yields an empty sequence, not an error. Malformed lines
// are skipped with a warning rather than poisoning the whole registry.
func (r *Registry) LoadAll(_ context.Context) ([]domain.CollectionRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := os.Open(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []domain.CollectionRecord{}, nil
		}
		return nil, fmt.Errorf("opening registry: %w", err)
	}
	defer f.Close()

	records := []domain.CollectionRecord{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		id, source, ok := strings.Cut(line, "|")
		if !ok || id == "" {
			logger.Warn("registry: skipping malformed line %q", line)
			continue
		}
		records = append(records, domain.CollectionRecord{ID: id, Source: source})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading registry: %w", err)
	}
	return records, nil
}

// Reset irreversibly deletes all records.
func (r *Registry) Reset(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := os.Remove(r.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing registry: %w", err)
	}
	return nil
}

// Close releases resources. The file is opened per operation, so there
// is nothing to release.
func (r *Registry) Close() error {
	return nil
}

// Path returns the registry file path.
func (r *Registry) Path() string {
	return r.path
}
