package domain

import (
	"fmt"
	"time"
)

// MarketType discriminates the two market shapes.
type MarketType string

const (
	MarketTypeBinary MarketType = "binary"
	MarketTypeMulti  MarketType = "multi-outcome"
)

// MarketStatus represents the lifecycle state of a market.
type MarketStatus string

const (
	MarketStatusActive   MarketStatus = "active"
	MarketStatusClosed   MarketStatus = "closed"
	MarketStatusResolved MarketStatus = "resolved"
)

// Option is one tradable side of a market with an implied-probability price.
type Option struct {
	ID             string  `json:"id"`
	Label          string  `json:"label"`
	Price          float64 `json:"price"` // 0..1
	PriceDisplay   string  `json:"priceDisplay"`
	Shares         int64   `json:"shares"`
	Volume24h      string  `json:"volume24h"`
	PriceChange24h float64 `json:"priceChange24h"` // percentage points over 24h
	Liquidity      string  `json:"liquidity"`
}

// MarketItem is a prediction-market record as listed in the catalog and
// persisted into the watchlist. It is a tagged union on Type: binary markets
// carry YesOption/NoOption, multi-outcome markets carry Options. Yes and no
// prices are not constrained to sum to 1.
type MarketItem struct {
	ID           string       `json:"id"`
	Type         MarketType   `json:"type"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Category     string       `json:"category"`
	Status       MarketStatus `json:"status"`
	Creator      string       `json:"creator"`
	EndDate      time.Time    `json:"endDate"`
	CreatedDate  time.Time    `json:"createdDate"`
	TotalVolume  string       `json:"totalVolume"` // display string, e.g. "$1.2m"
	Tags         []string     `json:"tags"`
	Participants int          `json:"participants"`

	YesOption *Option  `json:"yesOption,omitempty"`
	NoOption  *Option  `json:"noOption,omitempty"`
	Options   []Option `json:"options,omitempty"`
}

// Validate checks that the item's payload matches its discriminator.
func (m MarketItem) Validate() error {
	switch m.Type {
	case MarketTypeBinary:
		if m.YesOption == nil || m.NoOption == nil {
			return fmt.Errorf("market %s: binary market requires yes and no options", m.ID)
		}
		return nil
	case MarketTypeMulti:
		if len(m.Options) == 0 {
			return fmt.Errorf("market %s: multi-outcome market requires options", m.ID)
		}
		return nil
	default:
		return fmt.Errorf("market %s: unknown market type %q", m.ID, m.Type)
	}
}

// AllOptions returns the market's options regardless of shape: the yes/no
// pair for binary markets, the outcome list for multi-outcome markets, and
// nil for anything malformed.
func (m MarketItem) AllOptions() []Option {
	switch m.Type {
	case MarketTypeBinary:
		opts := make([]Option, 0, 2)
		if m.YesOption != nil {
			opts = append(opts, *m.YesOption)
		}
		if m.NoOption != nil {
			opts = append(opts, *m.NoOption)
		}
		return opts
	case MarketTypeMulti:
		return m.Options
	default:
		return nil
	}
}

// MaxAbsPriceChange returns the largest absolute 24h price change across the
// market's options. Used by the price_change sort.
func (m MarketItem) MaxAbsPriceChange() float64 {
	var max float64
	for _, opt := range m.AllOptions() {
		change := opt.PriceChange24h
		if change < 0 {
			change = -change
		}
		if change > max {
			max = change
		}
	}
	return max
}

// DetailOutcome is one outcome row on the market detail screen. Prices are
// integer percentages (62 means 62%), unlike Option's 0..1 floats.
type DetailOutcome struct {
	ID             string `json:"id"`
	Label          string `json:"label"`
	PriceYes       int    `json:"priceYes"` // 0..100
	PriceNo        int    `json:"priceNo"`  // 0..100
	PriceChange24h int    `json:"priceChange24h"`
	Liquidity      string `json:"liquidity"`
}

// MarketDetail is the richer shape served by the market detail endpoint. It
// is converted into a MarketItem when the user bookmarks it.
type MarketDetail struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Category     string          `json:"category"`
	Status       MarketStatus    `json:"status"`
	Creator      string          `json:"creator"`
	EndDate      time.Time       `json:"endDate"`
	CreatedDate  time.Time       `json:"createdDate"`
	TotalVolume  string          `json:"totalVolume"`
	Tags         []string        `json:"tags"`
	Participants int             `json:"participants"`
	Rules        string          `json:"rules"`
	Outcomes     []DetailOutcome `json:"outcomes"`
}
