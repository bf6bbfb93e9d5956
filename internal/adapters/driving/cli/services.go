package cli

import (
	"fmt"
	"os"

	configfile "github.com/askdocs/askdocs-cli/internal/adapters/driven/config/file"
	embeddingollama "github.com/askdocs/askdocs-cli/internal/adapters/driven/embedding/ollama"
	embeddingopenai "github.com/askdocs/askdocs-cli/internal/adapters/driven/embedding/openai"
	llmanthropic "github.com/askdocs/askdocs-cli/internal/adapters/driven/llm/anthropic"
	llmollama "github.com/askdocs/askdocs-cli/internal/adapters/driven/llm/ollama"
	llmopenai "github.com/askdocs/askdocs-cli/internal/adapters/driven/llm/openai"
	parserplaintext "github.com/askdocs/askdocs-cli/internal/adapters/driven/parser/plaintext"
	parserunstructured "github.com/askdocs/askdocs-cli/internal/adapters/driven/parser/unstructured"
	registryfile "github.com/askdocs/askdocs-cli/internal/adapters/driven/registry/file"
	registrysqlite "github.com/askdocs/askdocs-cli/internal/adapters/driven/registry/sqlite"
	"github.com/askdocs/askdocs-cli/internal/adapters/driven/vectorstore/chroma"
	vectormemory "github.com/askdocs/askdocs-cli/internal/adapters/driven/vectorstore/memory"
	"github.com/askdocs/askdocs-cli/internal/core/ports/driven"
	"github.com/askdocs/askdocs-cli/internal/core/ports/driving"
	"github.com/askdocs/askdocs-cli/internal/core/services"
	"github.com/askdocs/askdocs-cli/internal/logger"
)

// Package-level services. Tests replace these with mocks; production
// wiring fills them in InitServices.
var (
	ingestService   driving.IngestService
	searchService   driving.SearchService
	registryService driving.RegistryService
	askService      driving.AskService
	configStore     driven.ConfigStore
)

// InitServices wires the adapters and core services from configuration.
// The generation provider is optional: without one, ask/chat commands
// report that question answering is not configured while ingestion and
// search keep working.
func InitServices() error {
	cfg, err := configfile.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	configStore = cfg

	registry, err := buildRegistry(cfg)
	if err != nil {
		return err
	}

	embedder, err := buildEmbedder(cfg)
	if err != nil {
		return err
	}

	vectors, err := buildVectorStore(cfg)
	if err != nil {
		return err
	}

	parser, err := buildParser(cfg)
	if err != nil {
		return err
	}

	search := services.NewSearchService(registry, embedder, vectors)
	ingestService = services.NewIngestService(parser, embedder, vectors, registry)
	searchService = search
	registryService = search

	llm, err := buildGeneration(cfg)
	if err != nil {
		return err
	}
	if llm != nil {
		askService = services.NewAskService(search, llm, cfg.GetInt("search.top_k"))
	} else {
		logger.Info("no generation provider configured; ask and chat are disabled")
	}

	return nil
}

// buildRegistry selects the registry backing. The line file is the
// default; SQLite is opt-in via registry.backend = "sqlite".
func buildRegistry(cfg driven.ConfigStore) (driven.CollectionRegistry, error) {
	dataDir := cfg.GetString("registry.data_dir")

	switch backend := cfg.GetString("registry.backend"); backend {
	case "", "file":
		r, err := registryfile.NewRegistry(dataDir)
		if err != nil {
			return nil, fmt.Errorf("opening registry: %w", err)
		}
		return r, nil
	case "sqlite":
		r, err := registrysqlite.NewRegistry(dataDir)
		if err != nil {
			return nil, fmt.Errorf("opening registry: %w", err)
		}
		return r, nil
	default:
		return nil, fmt.Errorf("unknown registry backend %q", backend)
	}
}

// buildVectorStore selects the vector store backend. Chroma is the
// default; the in-memory store serves single-process experiments where
// no server is running (the corpus does not survive the process).
func buildVectorStore(cfg driven.ConfigStore) (driven.VectorStore, error) {
	switch backend := cfg.GetString("vectorstore.backend"); backend {
	case "", "chroma":
		return chroma.NewVectorStore(chroma.Config{
			BaseURL: cfg.GetString("vectorstore.url"),
		}), nil
	case "memory":
		return vectormemory.NewVectorStore(), nil
	default:
		return nil, fmt.Errorf("unknown vectorstore backend %q", backend)
	}
}

// buildEmbedder selects the embedding provider. Environment variables
// override stored API keys so keys can stay out of the config file.
func buildEmbedder(cfg driven.ConfigStore) (driven.EmbeddingService, error) {
	switch provider := cfg.GetString("embedding.provider"); provider {
	case "", "openai":
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			apiKey = cfg.GetString("embedding.api_key")
		}
		svc, err := embeddingopenai.NewEmbeddingService(embeddingopenai.Config{
			APIKey:  apiKey,
			BaseURL: cfg.GetString("embedding.base_url"),
			Model:   cfg.GetString("embedding.model"),
		})
		if err != nil {
			return nil, fmt.Errorf("configuring embedding provider: %w", err)
		}
		return svc, nil
	case "ollama":
		return embeddingollama.NewEmbeddingService(embeddingollama.Config{
			BaseURL:    cfg.GetString("embedding.base_url"),
			Model:      cfg.GetString("embedding.model"),
			Dimensions: cfg.GetInt("embedding.dimensions"),
		}), nil
	default:
		return nil, fmt.Errorf("unknown embedding provider %q", provider)
	}
}

// buildGeneration selects the generation provider, or returns nil when
// none is configured.
func buildGeneration(cfg driven.ConfigStore) (driven.GenerationService, error) {
	switch provider := cfg.GetString("llm.provider"); provider {
	case "":
		// Fall back to OpenAI when a key is available; otherwise
		// question answering stays disabled.
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			return nil, nil
		}
		svc, err := llmopenai.NewGenerationService(llmopenai.Config{APIKey: apiKey})
		if err != nil {
			return nil, fmt.Errorf("configuring generation provider: %w", err)
		}
		return svc, nil
	case "openai":
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			apiKey = cfg.GetString("llm.api_key")
		}
		svc, err := llmopenai.NewGenerationService(llmopenai.Config{
			APIKey:  apiKey,
			BaseURL: cfg.GetString("llm.base_url"),
			Model:   cfg.GetString("llm.model"),
		})
		if err != nil {
			return nil, fmt.Errorf("configuring generation provider: %w", err)
		}
		return svc, nil
	case "anthropic":
		apiKey := os.Getenv("ANTHROPIC_API_KEY")
		if apiKey == "" {
			apiKey = cfg.GetString("llm.api_key")
		}
		svc, err := llmanthropic.NewGenerationService(llmanthropic.Config{
			APIKey:  apiKey,
			BaseURL: cfg.GetString("llm.base_url"),
			Model:   cfg.GetString("llm.model"),
		})
		if err != nil {
			return nil, fmt.Errorf("configuring generation provider: %w", err)
		}
		return svc, nil
	case "ollama":
		return llmollama.NewGenerationService(llmollama.Config{
			BaseURL: cfg.GetString("llm.base_url"),
			Model:   cfg.GetString("llm.model"),
		}), nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", provider)
	}
}

// buildParser selects the document parser. The partition API is the
// default; the plaintext splitter serves offline setups.
func buildParser(cfg driven.ConfigStore) (driven.DocumentParser, error) {
	switch backend := cfg.GetString("parser.backend"); backend {
	case "", "unstructured":
		return parserunstructured.NewParser(parserunstructured.Config{
			BaseURL: cfg.GetString("parser.url"),
			APIKey:  os.Getenv("UNSTRUCTURED_API_KEY"),
		}), nil
	case "plaintext":
		p, err := parserplaintext.NewParser(parserplaintext.Config{
			ChunkWords:   cfg.GetInt("parser.chunk_words"),
			OverlapWords: cfg.GetInt("parser.overlap_words"),
		})
		if err != nil {
			return nil, fmt.Errorf("configuring parser: %w", err)
		}
		return p, nil
	default:
		return nil, fmt.Errorf("unknown parser backend %q", backend)
	}
}
