// Package unstructured provides a document parser backed by an
// Unstructured-compatible partition API. The server handles format
// detection, layout analysis and chunking; this adapter uploads the
// file and collects the element texts in order.
package unstructured

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/askdocs/askdocs-cli/internal/core/ports/driven"
)

// Ensure Parser implements the interface.
var _ driven.DocumentParser = (*Parser)(nil)

// Default configuration values.
const (
	DefaultBaseURL = "http://localhost:8001"
	DefaultTimeout = 5 * time.Minute

	// DefaultMaxCharacters bounds chunk size when the server chunks
	// by title sections.
	DefaultMaxCharacters = 1200
)

// Config holds configuration for the partition API parser.
type Config struct {
	// BaseURL is the partition server URL (default: http://localhost:8001).
	BaseURL string

	// APIKey authenticates against hosted deployments (optional).
	APIKey string

	// Timeout is the request timeout (default: 5m). Partitioning large
	// PDFs with OCR is slow.
	Timeout time.Duration

	// MaxCharacters bounds chunk size (default: 1200).
	MaxCharacters int
}

// Parser extracts text chunks via the partition API.
type Parser struct {
	client        *http.Client
	baseURL       string
	apiKey        string
	maxCharacters int
}

// element is one partitioned element in the API response.
type element struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// NewParser creates a new partition API parser.
func NewParser(cfg Config) *Parser {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.MaxCharacters == 0 {
		cfg.MaxCharacters = DefaultMaxCharacters
	}
	return &Parser{
		client:        &http.Client{Timeout: cfg.Timeout},
		baseURL:       cfg.BaseURL,
		apiKey:        cfg.APIKey,
		maxCharacters: cfg.MaxCharacters,
	}
}

// Parse uploads the file and returns the partitioned chunk texts in
// extraction order.
func (p *Parser) Parse(ctx context.Context, path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("files", filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, fmt.Errorf("copy file: %w", err)
	}

	fields := map[string]string{
		"strategy":          "auto",
		"chunking_strategy": "by_title",
		"max_characters":    strconv.Itoa(p.maxCharacters),
	}
	for k, v := range fields {
		if err := writer.WriteField(k, v); err != nil {
			return nil, fmt.Errorf("write field %s: %w", k, err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		p.baseURL+"/general/v0/general",
		&buf,
	)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Accept", "application/json")
	if p.apiKey != "" {
		req.Header.Set("unstructured-api-key", p.apiKey)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("partition error (status %d): %s", resp.StatusCode, string(body))
	}

	var elements []element
	if err := json.Unmarshal(body, &elements); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	chunks := make([]string, 0, len(elements))
	for _, el := range elements {
		chunks = append(chunks, el.Text)
	}
	return chunks, nil
}

// Name returns the parser backend identifier.
func (p *Parser) Name() string {
	return "unstructured"
}
