package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/askdocs/askdocs-cli/internal/core/domain"
	"github.com/askdocs/askdocs-cli/internal/core/ports/driving"
	"github.com/askdocs/askdocs-cli/internal/core/services"
)

// Handler holds the driving ports for the HTTP handlers.
type Handler struct {
	search   driving.SearchService
	ask      driving.AskService
	registry driving.RegistryService
}

// NewHandler creates a new Handler. The ask service may be nil when no
// generation provider is configured; POST /ask then returns 503.
func NewHandler(search driving.SearchService, ask driving.AskService, registry driving.RegistryService) *Handler {
	return &Handler{
		search:   search,
		ask:      ask,
		registry: registry,
	}
}

// askRequest is the POST /ask request body.
type askRequest struct {
	Question string `json:"question"`
}

// askResponse is the POST /ask response body.
type askResponse struct {
	Response string `json:"response"`
}

// searchRequest is the POST /search request body.
type searchRequest struct {
	Query string `json:"query"`
	TopK  int    `json:"top_k,omitempty"`
}

// searchResponse is the POST /search response body.
type searchResponse struct {
	Results []domain.SearchResult `json:"results"`
	Count   int                   `json:"count"`
}

// errorResponse is the body of all error replies.
type errorResponse struct {
	Error string `json:"error"`
}

// HandleAsk handles POST /ask requests.
func (h *Handler) HandleAsk(w http.ResponseWriter, r *http.Request) {
	if h.ask == nil {
		sendJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "question answering is not configured"})
		return
	}

	var req askRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON: " + err.Error()})
		return
	}

	answer, err := h.ask.Ask(r.Context(), req.Question)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyQuestion):
			sendJSON(w, http.StatusBadRequest, errorResponse{Error: "question must not be empty"})
		case errors.Is(err, domain.ErrGeneration):
			// Generation failures surface as the fixed message, not as a
			// transport error: retrieval succeeded, only synthesis failed.
			sendJSON(w, http.StatusOK, askResponse{Response: services.GenerationFailedMessage})
		default:
			sendJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		}
		return
	}

	sendJSON(w, http.StatusOK, askResponse{Response: answer})
}

// HandleSearch handles POST /search requests.
func (h *Handler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON: " + err.Error()})
		return
	}

	results, err := h.search.Search(r.Context(), req.Query, domain.SearchOptions{TopK: req.TopK})
	if err != nil {
		sendJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	if results == nil {
		results = []domain.SearchResult{}
	}
	sendJSON(w, http.StatusOK, searchResponse{Results: results, Count: len(results)})
}

// HandleCollections handles GET /collections requests.
func (h *Handler) HandleCollections(w http.ResponseWriter, r *http.Request) {
	records, err := h.registry.Collections(r.Context())
	if err != nil {
		sendJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	if records == nil {
		records = []domain.CollectionRecord{}
	}
	sendJSON(w, http.StatusOK, records)
}

// HandleHealth handles GET /health requests.
func (h *Handler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	sendJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// sendJSON writes a JSON response with the given status code.
func sendJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body) //nolint:errcheck
}
