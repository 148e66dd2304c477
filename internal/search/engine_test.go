package search

import (
	"testing"
	"time"

	"github.com/tradex-app/tradex/internal/domain"
)

func fixtureMarkets() []domain.MarketItem {
	day := func(d int) time.Time {
		return time.Date(2026, time.June, d, 0, 0, 0, 0, time.UTC)
	}
	return []domain.MarketItem{
		{
			ID: "m1", Type: domain.MarketTypeBinary, Title: "Bitcoin above $150k?",
			Category: "crypto", Creator: "Alpha", TotalVolume: "$1.2m",
			Tags:        []string{"bitcoin"},
			CreatedDate: day(1), EndDate: day(20),
			YesOption: &domain.Option{Label: "Yes", PriceChange24h: 4.5},
			NoOption:  &domain.Option{Label: "No", PriceChange24h: -4.5},
		},
		{
			ID: "m2", Type: domain.MarketTypeBinary, Title: "Ethereum flips?",
			Category: "crypto", Creator: "Alpha", TotalVolume: "$500k",
			Tags:        []string{"ethereum"},
			CreatedDate: day(3), EndDate: day(10),
			YesOption: &domain.Option{Label: "Yes", PriceChange24h: -1.2},
			NoOption:  &domain.Option{Label: "No", PriceChange24h: 1.2},
		},
		{
			ID: "m3", Type: domain.MarketTypeMulti, Title: "World Cup winner",
			Category: "sports", Creator: "Beta", TotalVolume: "$2b",
			Tags:        []string{"football"},
			CreatedDate: day(2), EndDate: day(30),
			Options: []domain.Option{
				{Label: "Brazil", PriceChange24h: 2.1},
				{Label: "France", PriceChange24h: -0.8},
			},
		},
		{
			ID: "m4", Type: domain.MarketTypeBinary, Title: "Election outcome",
			Category: "politics", Creator: "Gamma", TotalVolume: "$340k",
			Tags:        []string{"election"},
			CreatedDate: day(5), EndDate: day(15),
			YesOption: &domain.Option{Label: "Yes", PriceChange24h: 9.0},
			NoOption:  &domain.Option{Label: "No", PriceChange24h: -9.0},
		},
	}
}

func ids(items []domain.MarketItem) []string {
	out := make([]string, len(items))
	for i, m := range items {
		out[i] = m.ID
	}
	return out
}

func equalIDs(a []string, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestApplyCategoryFilter(t *testing.T) {
	src := fixtureMarkets()

	cases := []struct {
		category string
		want     int
	}{
		{"all", 4},
		{"", 4},
		{"crypto", 2},
		{"sports", 1},
		{"politics", 1},
		{"Crypto", 0}, // exact match, no case folding
		{"cry", 0},    // no partial match
		{"unknown", 0},
	}

	for _, c := range cases {
		got := Apply(src, Params{Category: c.category})
		if len(got) != c.want {
			t.Errorf("category %q: got %d items, want %d", c.category, len(got), c.want)
		}
	}
}

func TestApplyQueryFilter(t *testing.T) {
	src := fixtureMarkets()

	cases := []struct {
		query string
		want  []string
	}{
		{"bitcoin", []string{"m1"}},       // title + tag
		{"BITCOIN", []string{"m1"}},       // case-insensitive
		{"  bitcoin  ", []string{"m1"}},   // trimmed
		{"alpha", []string{"m1", "m2"}},   // creator
		{"brazil", []string{"m3"}},        // option label
		{"football", []string{"m3"}},      // tag
		{"", []string{"m1", "m2", "m3", "m4"}},
		{"zzz", nil},
	}

	for _, c := range cases {
		got := Apply(src, Params{Query: c.query})
		if !equalIDs(ids(got), c.want) {
			t.Errorf("query %q: got %v, want %v", c.query, ids(got), c.want)
		}
	}
}

func TestApplySort(t *testing.T) {
	src := fixtureMarkets()

	cases := []struct {
		sort SortKey
		want []string
	}{
		{SortVolume, []string{"m3", "m1", "m2", "m4"}},
		{SortNewest, []string{"m4", "m2", "m3", "m1"}},
		{SortEndingSoon, []string{"m2", "m4", "m1", "m3"}},
		{SortPriceChange, []string{"m4", "m1", "m3", "m2"}},
		{SortKey("bogus"), []string{"m1", "m2", "m3", "m4"}}, // unknown key keeps order
	}

	for _, c := range cases {
		got := Apply(src, Params{Sort: c.sort})
		if !equalIDs(ids(got), c.want) {
			t.Errorf("sort %q: got %v, want %v", c.sort, ids(got), c.want)
		}
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	src := fixtureMarkets()
	before := ids(src)

	Apply(src, Params{Category: "crypto", Query: "bitcoin", Sort: SortVolume})

	if !equalIDs(ids(src), before) {
		t.Errorf("input order changed: got %v, want %v", ids(src), before)
	}
}

func TestApplyPipelineCombined(t *testing.T) {
	src := fixtureMarkets()

	got := Apply(src, Params{Category: "crypto", Query: "alpha", Sort: SortVolume})
	want := []string{"m1", "m2"}
	if !equalIDs(ids(got), want) {
		t.Errorf("combined pipeline: got %v, want %v", ids(got), want)
	}
}
