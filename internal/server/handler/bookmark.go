package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/tradex-app/tradex/internal/domain"
)

// BookmarkService defines what the bookmark handler needs from the store.
type BookmarkService interface {
	Items() []domain.MarketItem
	IsBookmarked(id string) bool
	ToggleDetail(detail domain.MarketDetail) bool
	Loading() bool
}

// BookmarkHandler serves the watchlist endpoints.
type BookmarkHandler struct {
	bookmarks BookmarkService
	catalog   MarketCatalog
	logger    *slog.Logger
}

// NewBookmarkHandler creates a BookmarkHandler.
func NewBookmarkHandler(bookmarks BookmarkService, catalog MarketCatalog, logger *slog.Logger) *BookmarkHandler {
	return &BookmarkHandler{bookmarks: bookmarks, catalog: catalog, logger: logger}
}

// ListBookmarks returns the persisted watchlist snapshots in insertion
// order. Snapshots can lag the catalog; they are returned verbatim.
// GET /api/bookmarks
func (h *BookmarkHandler) ListBookmarks(w http.ResponseWriter, r *http.Request) {
	items := h.bookmarks.Items()
	writeJSON(w, http.StatusOK, map[string]any{
		"bookmarks": items,
		"total":     len(items),
		"loading":   h.bookmarks.Loading(),
	})
}

// ToggleBookmark flips watchlist membership for a market.
// POST /api/bookmarks/{id}/toggle
func (h *BookmarkHandler) ToggleBookmark(w http.ResponseWriter, r *http.Request) {
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
		h.logger.ErrorContext(r.Context(), "handler: toggle bookmark failed",
			slog.String("market_id", id),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, "failed to toggle bookmark")
		return
	}

	bookmarked := h.bookmarks.ToggleDetail(detail)
	writeJSON(w, http.StatusOK, map[string]any{
		"marketId":   id,
		"bookmarked": bookmarked,
	})
}
