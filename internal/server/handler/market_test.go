package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tradex-app/tradex/internal/catalog"
	"github.com/tradex-app/tradex/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func marketMux(t *testing.T) *http.ServeMux {
	t.Helper()
	h := NewMarketHandler(catalog.New(), testLogger())
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/markets", h.ListMarkets)
	mux.HandleFunc("GET /api/markets/{id}", h.GetMarket)
	return mux
}

func TestListMarkets(t *testing.T) {
	mux := marketMux(t)

	cases := []struct {
		url       string
		wantTotal int
	}{
		{"/api/markets", 6},
		{"/api/markets?category=all", 6},
		{"/api/markets?category=crypto", 2},
		{"/api/markets?category=sports", 2},
		{"/api/markets?category=unknown", 0},
		{"/api/markets?q=bitcoin", 2},
		{"/api/markets?q=AGI", 1},
		{"/api/markets?category=crypto&q=ethereum", 1},
	}

	for _, c := range cases {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, c.url, nil))

		if rec.Code != http.StatusOK {
			t.Errorf("%s: status = %d", c.url, rec.Code)
			continue
		}
		var resp listMarketsResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Errorf("%s: bad body: %v", c.url, err)
			continue
		}
		if resp.Total != c.wantTotal || len(resp.Markets) != c.wantTotal {
			t.Errorf("%s: total = %d, want %d", c.url, resp.Total, c.wantTotal)
		}
		if len(resp.Categories) == 0 || resp.Categories[0] != "all" {
			t.Errorf("%s: categories = %v", c.url, resp.Categories)
		}
	}
}

func TestListMarketsVolumeSort(t *testing.T) {
	mux := marketMux(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/markets?sort=volume", nil))

	var resp listMarketsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if len(resp.Markets) < 2 {
		t.Fatalf("got %d markets", len(resp.Markets))
	}
	if resp.Markets[0].TotalVolume != "$2b" {
		t.Errorf("top market by volume = %s (%s)", resp.Markets[0].ID, resp.Markets[0].TotalVolume)
	}
}

func TestGetMarket(t *testing.T) {
	mux := marketMux(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/markets/mkt-btc-150k", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var detail domain.MarketDetail
	if err := json.Unmarshal(rec.Body.Bytes(), &detail); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if detail.ID != "mkt-btc-150k" || len(detail.Outcomes) == 0 {
		t.Errorf("detail = %+v", detail)
	}
}

func TestGetMarketNotFound(t *testing.T) {
	mux := marketMux(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/markets/nope", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
