package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/tradex-app/tradex/internal/domain"
	"github.com/tradex-app/tradex/internal/search"
)

// MarketCatalog defines what the market handler needs from the catalog.
type MarketCatalog interface {
	Markets() []domain.MarketItem
	Detail(id string) (domain.MarketDetail, error)
	Categories() []string
}

// MarketHandler serves the market listing and detail endpoints.
type MarketHandler struct {
	catalog MarketCatalog
	logger  *slog.Logger
}

// NewMarketHandler creates a MarketHandler.
func NewMarketHandler(catalog MarketCatalog, logger *slog.Logger) *MarketHandler {
	return &MarketHandler{catalog: catalog, logger: logger}
}

// listMarketsResponse wraps the list endpoint output with metadata.
type listMarketsResponse struct {
	Markets    []domain.MarketItem `json:"markets"`
	Total      int                 `json:"total"`
	Categories []string            `json:"categories"`
}

// ListMarkets runs the search pipeline over the catalog.
// GET /api/markets?category=&q=&sort=
func (h *MarketHandler) ListMarkets(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	params := search.Params{
		Category: q.Get("category"),
		Query:    q.Get("q"),
		Sort:     search.SortKey(q.Get("sort")),
	}
	if params.Category == "" {
		params.Category = search.CategoryAll
	}

	markets := search.Apply(h.catalog.Markets(), params)

	writeJSON(w, http.StatusOK, listMarketsResponse{
		Markets:    markets,
		Total:      len(markets),
		Categories: h.catalog.Categories(),
	})
}

// GetMarket returns the detail shape for one market.
// GET /api/markets/{id}
func (h *MarketHandler) GetMarket(w http.ResponseWriter, r *http.Request) {
	id := pathParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing market id")
		return
	}

	detail, err := h.catalog.Detail(id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "market not found")
			return
		}
		h.logger.ErrorContext(r.Context(), "handler: get market failed",
			slog.String("market_id", id),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, "failed to get market")
		return
	}

	writeJSON(w, http.StatusOK, detail)
}
