package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/davidbz/tariff/internal/domain"
	"github.com/davidbz/tariff/internal/observability"
	"github.com/davidbz/tariff/internal/pricing"
	"go.uber.org/zap"
)

// Handler handles HTTP requests.
type Handler struct {
	cache *pricing.Cache
}

// NewHandler creates a new HTTP handler (DI constructor).
func NewHandler(cache *pricing.Cache) *Handler {
	return &Handler{
		cache: cache,
	}
}

// modelsResponse is the payload for catalog listings.
type modelsResponse struct {
	LastUpdated time.Time                     `json:"last_updated"`
	Default     bool                          `json:"default"`
	Models      map[string]domain.PriceRecord `json:"models"`
}

// pricingResponse is the payload for a single model lookup.
type pricingResponse struct {
	Provider string  `json:"provider"`
	Model    string  `json:"model"`
	Input    float64 `json:"input"`
	Output   float64 `json:"output"`
	Currency string  `json:"currency"`
	Notes    string  `json:"notes,omitempty"`
}

// costRequest is the payload for cost calculations.
type costRequest struct {
	Provider     string `json:"provider"`
	Model        string `json:"model"`
	InputTokens  int    `json:"input_tokens"`
	OutputTokens int    `json:"output_tokens"`
}

// costResponse echoes the request with the computed cost.
type costResponse struct {
	costRequest
	Cost     float64 `json:"cost"`
	Currency string  `json:"currency"`
}

// HandleListModels returns the loaded catalog, optionally filtered by the
// provider query parameter.
func (h *Handler) HandleListModels(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	provider := r.URL.Query().Get("provider")
	if provider != "" {
		ctx = observability.WithProvider(ctx, provider)
	}

	models, err := h.cache.ListModels(ctx, provider)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	catalog, err := h.cache.Snapshot(ctx)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, modelsResponse{
		LastUpdated: catalog.LastUpdated,
		Default:     catalog.Default,
		Models:      models,
	})
}

// HandleGetPricing returns the price record for one provider/model pair.
func (h *Handler) HandleGetPricing(w http.ResponseWriter, r *http.Request) {
	provider := r.PathValue("provider")
	model := r.PathValue("model")

	ctx := observability.WithProvider(r.Context(), provider)
	ctx = observability.WithModel(ctx, model)

	rec, err := h.cache.GetModelPricing(ctx, provider, model)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, pricingResponse{
		Provider: provider,
		Model:    model,
		Input:    rec.InputPrice,
		Output:   rec.OutputPrice,
		Currency: rec.Currency,
		Notes:    rec.Notes,
	})
}

// HandleCost computes the cost of a call from token counts.
func (h *Handler) HandleCost(w http.ResponseWriter, r *http.Request) {
	var req costRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if req.Provider == "" || req.Model == "" {
		http.Error(w, "provider and model are required", http.StatusBadRequest)
		return
	}

	ctx := observability.WithProvider(r.Context(), req.Provider)
	ctx = observability.WithModel(ctx, req.Model)

	rec, err := h.cache.GetModelPricing(ctx, req.Provider, req.Model)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	cost := domain.Cost(rec, req.InputTokens, req.OutputTokens)

	observability.FromContext(ctx).Info("cost calculated",
		observability.Int("input_tokens", req.InputTokens),
		observability.Int("output_tokens", req.OutputTokens),
		observability.Float64("cost", cost),
	)

	h.writeJSON(w, r, http.StatusOK, costResponse{
		costRequest: req,
		Cost:        cost,
		Currency:    rec.Currency,
	})
}

// HandleRefresh forces a reload through the source chain.
func (h *Handler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	catalog, err := h.cache.Load(ctx, true)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, map[string]interface{}{
		"last_updated": catalog.LastUpdated,
		"models":       catalog.Len(),
		"default":      catalog.Default,
		"generation":   h.cache.Generation(),
	})
}

// HandleHealth handles health check requests.
func (h *Handler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"status": "healthy",
	}); err != nil {
		// Already written status, can't change it, just log.
		return
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		observability.FromContext(r.Context()).Error("failed to encode response", zap.Error(err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	logger := observability.FromContext(r.Context())

	if domain.IsNotFound(err) {
		logger.Info("pricing lookup missed", zap.Error(err))
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	logger.Error("request failed", zap.Error(err))
	http.Error(w, err.Error(), http.StatusInternalServerError)
}
