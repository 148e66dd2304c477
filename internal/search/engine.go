// Package search implements the pure market search/filter/sort pipeline.
// It owns no state and performs no I/O; callers pass the source slice and
// get a new filtered, sorted slice back.
package search

import (
	"sort"
	"strings"

	"github.com/tradex-app/tradex/internal/domain"
)

// CategoryAll is the sentinel that disables category filtering.
const CategoryAll = "all"

// SortKey selects the sort criterion.
type SortKey string

const (
	SortVolume      SortKey = "volume"
	SortNewest      SortKey = "newest"
	SortEndingSoon  SortKey = "ending_soon"
	SortPriceChange SortKey = "price_change"
)

// Params are the pipeline inputs. Zero values mean: all categories, no text
// filter, volume sort.
type Params struct {
	Category string
	Query    string
	Sort     SortKey
}

// Apply runs the fixed pipeline — category filter, then text filter, then
// stable sort — and returns a new slice. The input is never mutated.
func Apply(items []domain.MarketItem, p Params) []domain.MarketItem {
	out := filterCategory(items, p.Category)
	out = filterQuery(out, p.Query)
	sortItems(out, p.Sort)
	return out
}

// filterCategory keeps records whose category exactly equals the selection.
// "all" (or empty) passes everything through. Matching is case-sensitive
// with no partial match; unknown categories simply never match.
func filterCategory(items []domain.MarketItem, category string) []domain.MarketItem {
	out := make([]domain.MarketItem, 0, len(items))
	if category == "" || category == CategoryAll {
		return append(out, items...)
	}
	for _, m := range items {
		if m.Category == category {
			out = append(out, m)
		}
	}
	return out
}

// filterQuery keeps records where the trimmed, lower-cased query is a
// substring of the title, description, any tag, the creator name, or any
// option label. Matching is OR across fields, first match wins.
func filterQuery(items []domain.MarketItem, query string) []domain.MarketItem {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return items
	}

	out := items[:0]
	for _, m := range items {
		if matches(m, q) {
			out = append(out, m)
		}
	}
	return out
}

func matches(m domain.MarketItem, q string) bool {
	if strings.Contains(strings.ToLower(m.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(m.Description), q) {
		return true
	}
	for _, tag := range m.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	if strings.Contains(strings.ToLower(m.Creator), q) {
		return true
	}
	for _, opt := range m.AllOptions() {
		if strings.Contains(strings.ToLower(opt.Label), q) {
			return true
		}
	}
	return false
}

// sortItems stably sorts in place by the selected key. An unknown key leaves
// the order untouched.
func sortItems(items []domain.MarketItem, key SortKey) {
	switch key {
	case SortVolume:
		sort.SliceStable(items, func(i, j int) bool {
			return ParseVolume(items[i].TotalVolume) > ParseVolume(items[j].TotalVolume)
		})
	case SortNewest:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].CreatedDate.After(items[j].CreatedDate)
		})
	case SortEndingSoon:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].EndDate.Before(items[j].EndDate)
		})
	case SortPriceChange:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].MaxAbsPriceChange() > items[j].MaxAbsPriceChange()
		})
	}
}
