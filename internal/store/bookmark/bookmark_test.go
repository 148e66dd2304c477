package bookmark

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/tradex-app/tradex/internal/domain"
	"github.com/tradex-app/tradex/internal/kv/memory"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testItem(id string) domain.MarketItem {
	return domain.MarketItem{
		ID:          id,
		Type:        domain.MarketTypeBinary,
		Title:       "Market " + id,
		Category:    "crypto",
		Status:      domain.MarketStatusActive,
		TotalVolume: "$10k",
		YesOption:   &domain.Option{ID: id + "-yes", Label: "Yes", Price: 0.5},
		NoOption:    &domain.Option{ID: id + "-no", Label: "No", Price: 0.5},
	}
}

func TestToggleAddRemove(t *testing.T) {
	ctx := context.Background()
	s := New(memory.New(), nil, testLogger())
	defer s.Close()
	s.Hydrate(ctx)

	if s.IsBookmarked("m1") {
		t.Error("fresh store has m1 bookmarked")
	}

	if added := s.Toggle(testItem("m1")); !added {
		t.Error("first toggle did not add")
	}
	if !s.IsBookmarked("m1") || s.Count() != 1 {
		t.Error("m1 missing after add")
	}

	if added := s.Toggle(testItem("m1")); added {
		t.Error("second toggle did not remove")
	}
	if s.IsBookmarked("m1") || s.Count() != 0 {
		t.Error("m1 still present after remove")
	}
}

func TestItemsKeepInsertionOrder(t *testing.T) {
	ctx := context.Background()
	s := New(memory.New(), nil, testLogger())
	defer s.Close()
	s.Hydrate(ctx)

	s.Toggle(testItem("m1"))
	s.Toggle(testItem("m2"))
	s.Toggle(testItem("m3"))
	s.Toggle(testItem("m2")) // remove the middle one

	items := s.Items()
	if len(items) != 2 || items[0].ID != "m1" || items[1].ID != "m3" {
		t.Errorf("items = %v", ids(items))
	}
}

func TestPersistAndHydrate(t *testing.T) {
	ctx := context.Background()
	kvs := memory.New()

	s := New(kvs, nil, testLogger())
	s.Hydrate(ctx)
	s.Toggle(testItem("m1"))
	s.Toggle(testItem("m2"))
	s.Close()

	raw, err := kvs.Get(ctx, StorageKey)
	if err != nil {
		t.Fatalf("watchlist not persisted: %v", err)
	}
	var persisted []domain.MarketItem
	if err := json.Unmarshal([]byte(raw), &persisted); err != nil {
		t.Fatalf("bad persisted array: %v", err)
	}
	if len(persisted) != 2 {
		t.Fatalf("persisted %d items, want 2", len(persisted))
	}

	// A second store over the same backend restores the list.
	s2 := New(kvs, nil, testLogger())
	defer s2.Close()
	if s2.Loading() != true {
		t.Error("store not loading before Hydrate")
	}
	s2.Hydrate(ctx)
	if s2.Loading() {
		t.Error("store still loading after Hydrate")
	}
	if !s2.IsBookmarked("m1") || !s2.IsBookmarked("m2") || s2.Count() != 2 {
		t.Errorf("restored items = %v", ids(s2.Items()))
	}
}

func TestHydrateCorruptArrayStartsEmpty(t *testing.T) {
	ctx := context.Background()
	kvs := memory.New()
	if err := kvs.Set(ctx, StorageKey, "[broken"); err != nil {
		t.Fatal(err)
	}

	s := New(kvs, nil, testLogger())
	defer s.Close()
	s.Hydrate(ctx)

	if s.Count() != 0 {
		t.Error("corrupt array produced bookmarks")
	}
}

// capturingPublisher records published events in order.
type capturingPublisher struct {
	events []string
}

func (p *capturingPublisher) Publish(event string, _ []byte) {
	p.events = append(p.events, event)
}

func TestTogglePublishesEvents(t *testing.T) {
	ctx := context.Background()
	pub := &capturingPublisher{}
	s := New(memory.New(), pub, testLogger())
	defer s.Close()
	s.Hydrate(ctx)

	s.Toggle(testItem("m1"))
	s.Toggle(testItem("m1"))

	if len(pub.events) != 2 || pub.events[0] != EventAdded || pub.events[1] != EventRemoved {
		t.Errorf("events = %v", pub.events)
	}
}

func TestFromDetailBinary(t *testing.T) {
	d := domain.MarketDetail{
		ID:          "m1",
		Title:       "Binary market",
		Category:    "crypto",
		Status:      domain.MarketStatusActive,
		EndDate:     time.Date(2026, time.December, 31, 0, 0, 0, 0, time.UTC),
		TotalVolume: "$1.2m",
		Outcomes: []domain.DetailOutcome{
			{ID: "o1", Label: "Binary market", PriceYes: 38, PriceNo: 62, PriceChange24h: 4, Liquidity: "$410k"},
		},
	}

	item := FromDetail(d)
	if item.Type != domain.MarketTypeBinary {
		t.Fatalf("type = %q, want binary", item.Type)
	}
	if item.YesOption == nil || item.NoOption == nil || item.Options != nil {
		t.Fatal("binary item shape is wrong")
	}
	if item.YesOption.Price != 0.38 || item.NoOption.Price != 0.62 {
		t.Errorf("prices = %v / %v", item.YesOption.Price, item.NoOption.Price)
	}
	if item.YesOption.PriceDisplay != "38¢" || item.NoOption.PriceDisplay != "62¢" {
		t.Errorf("displays = %q / %q", item.YesOption.PriceDisplay, item.NoOption.PriceDisplay)
	}
	if item.YesOption.PriceChange24h != 4 || item.NoOption.PriceChange24h != -4 {
		t.Errorf("changes = %v / %v", item.YesOption.PriceChange24h, item.NoOption.PriceChange24h)
	}
	if err := item.Validate(); err != nil {
		t.Errorf("converted item invalid: %v", err)
	}
}

func TestFromDetailMulti(t *testing.T) {
	d := domain.MarketDetail{
		ID:     "m2",
		Title:  "Multi market",
		Status: domain.MarketStatusActive,
		Outcomes: []domain.DetailOutcome{
			{ID: "a", Label: "A", PriceYes: 40, PriceNo: 60, PriceChange24h: 2},
			{ID: "b", Label: "B", PriceYes: 35, PriceNo: 65, PriceChange24h: -1},
			{ID: "c", Label: "C", PriceYes: 25, PriceNo: 75, PriceChange24h: 0},
		},
	}

	item := FromDetail(d)
	if item.Type != domain.MarketTypeMulti {
		t.Fatalf("type = %q, want multi", item.Type)
	}
	if len(item.Options) != 3 || item.YesOption != nil || item.NoOption != nil {
		t.Fatal("multi item shape is wrong")
	}
	if item.Options[1].Label != "B" || item.Options[1].Price != 0.35 {
		t.Errorf("option[1] = %+v", item.Options[1])
	}
	if item.Options[0].Liquidity != "$0" {
		t.Errorf("empty liquidity not defaulted: %q", item.Options[0].Liquidity)
	}
	if err := item.Validate(); err != nil {
		t.Errorf("converted item invalid: %v", err)
	}
}

func ids(items []domain.MarketItem) []string {
	out := make([]string, len(items))
	for i, m := range items {
		out[i] = m.ID
	}
	return out
}
