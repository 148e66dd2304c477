// Package catalog holds the static market dataset the app ships with. The
// catalog is read-only at runtime; markets are never created, mutated or
// deleted by the service.
package catalog

import (
	"time"

	"github.com/tradex-app/tradex/internal/domain"
)

// Categories is the fixed category list, "all" first as the filter sentinel.
var Categories = []string{"all", "crypto", "sports", "politics", "tech", "entertainment"}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func opt(id, label string, price float64, display string, change float64, vol, liq string) *domain.Option {
	return &domain.Option{
		ID:             id,
		Label:          label,
		Price:          price,
		PriceDisplay:   display,
		Shares:         0,
		Volume24h:      vol,
		PriceChange24h: change,
		Liquidity:      liq,
	}
}

var markets = []domain.MarketItem{
	{
		ID:          "mkt-btc-150k",
		Type:        domain.MarketTypeBinary,
		Title:       "Bitcoin above $150k by year end?",
		Description: "Resolves YES if BTC/USD trades above $150,000 on any major exchange before Jan 1.",
		Category:    "crypto",
		Status:      domain.MarketStatusActive,
		Creator:     "TradeX Markets",
		EndDate:     date(2026, time.December, 31),
		CreatedDate: date(2026, time.June, 2),
		TotalVolume: "$1.2m",
		Tags:        []string{"bitcoin", "price"},
		Participants: 4312,
		YesOption:   opt("mkt-btc-150k-yes", "Yes", 0.38, "38¢", 4.5, "$86k", "$410k"),
		NoOption:    opt("mkt-btc-150k-no", "No", 0.62, "62¢", -4.5, "$71k", "$390k"),
	},
	{
		ID:          "mkt-eth-flip",
		Type:        domain.MarketTypeBinary,
		Title:       "Ethereum flips Bitcoin market cap this cycle?",
		Description: "Resolves YES if ETH market cap exceeds BTC market cap before the market closes.",
		Category:    "crypto",
		Status:      domain.MarketStatusActive,
		Creator:     "TradeX Markets",
		EndDate:     date(2027, time.March, 31),
		CreatedDate: date(2026, time.April, 18),
		TotalVolume: "$500k",
		Tags:        []string{"ethereum", "bitcoin", "flippening"},
		Participants: 1877,
		YesOption:   opt("mkt-eth-flip-yes", "Yes", 0.07, "7¢", -1.2, "$12k", "$95k"),
		NoOption:    opt("mkt-eth-flip-no", "No", 0.93, "93¢", 1.2, "$9k", "$102k"),
	},
	{
		ID:          "mkt-wc-winner",
		Type:        domain.MarketTypeMulti,
		Title:       "Who wins the 2026 World Cup?",
		Description: "Resolves to the national team lifting the trophy.",
		Category:    "sports",
		Status:      domain.MarketStatusActive,
		Creator:     "TradeX Sports",
		EndDate:     date(2026, time.July, 19),
		CreatedDate: date(2026, time.January, 10),
		TotalVolume: "$2b",
		Tags:        []string{"football", "world cup"},
		Participants: 98231,
		Options: []domain.Option{
			*opt("mkt-wc-winner-bra", "Brazil", 0.22, "22¢", 2.1, "$1.4m", "$8m"),
			*opt("mkt-wc-winner-fra", "France", 0.19, "19¢", -0.8, "$1.1m", "$7m"),
			*opt("mkt-wc-winner-arg", "Argentina", 0.17, "17¢", 0.4, "$900k", "$6m"),
			*opt("mkt-wc-winner-eng", "England", 0.12, "12¢", -1.5, "$700k", "$4m"),
		},
	},
	{
		ID:          "mkt-ipl-final",
		Type:        domain.MarketTypeBinary,
		Title:       "Mumbai to reach the IPL final?",
		Description: "Resolves YES if Mumbai qualifies for the IPL final.",
		Category:    "sports",
		Status:      domain.MarketStatusActive,
		Creator:     "TradeX Sports",
		EndDate:     date(2026, time.May, 28),
		CreatedDate: date(2026, time.March, 22),
		TotalVolume: "$340k",
		Tags:        []string{"cricket", "ipl", "mumbai"},
		Participants: 12044,
		YesOption:   opt("mkt-ipl-final-yes", "Yes", 0.44, "44¢", 6.0, "$52k", "$130k"),
		NoOption:    opt("mkt-ipl-final-no", "No", 0.56, "56¢", -6.0, "$48k", "$125k"),
	},
	{
		ID:          "mkt-next-pm",
		Type:        domain.MarketTypeMulti,
		Title:       "Next UK prime minister?",
		Description: "Resolves to whoever is appointed PM after the sitting one leaves office.",
		Category:    "politics",
		Status:      domain.MarketStatusActive,
		Creator:     "TradeX Politics",
		EndDate:     date(2027, time.January, 31),
		CreatedDate: date(2026, time.February, 5),
		TotalVolume: "$780k",
		Tags:        []string{"uk", "election"},
		Participants: 7652,
		Options: []domain.Option{
			*opt("mkt-next-pm-a", "Opposition leader", 0.41, "41¢", 3.2, "$60k", "$220k"),
			*opt("mkt-next-pm-b", "Chancellor", 0.28, "28¢", -2.0, "$41k", "$180k"),
			*opt("mkt-next-pm-c", "Someone else", 0.31, "31¢", -1.1, "$35k", "$150k"),
		},
	},
	{
		ID:          "mkt-agi-2030",
		Type:        domain.MarketTypeBinary,
		Title:       "AGI declared by a major lab before 2030?",
		Description: "Resolves YES if one of the five largest AI labs publicly claims AGI before 2030.",
		Category:    "tech",
		Status:      domain.MarketStatusActive,
		Creator:     "TradeX Tech",
		EndDate:     date(2029, time.December, 31),
		CreatedDate: date(2026, time.August, 1),
		TotalVolume: "$95k",
		Tags:        []string{"ai", "agi"},
		Participants: 2210,
		YesOption:   opt("mkt-agi-2030-yes", "Yes", 0.29, "29¢", 8.3, "$18k", "$44k"),
		NoOption:    opt("mkt-agi-2030-no", "No", 0.71, "71¢", -8.3, "$15k", "$47k"),
	},
}

var details = map[string]domain.MarketDetail{}

func init() {
	for _, m := range markets {
		details[m.ID] = detailFromItem(m)
	}
}

// detailFromItem expands a catalog item into the richer detail shape, with
// integer percentage prices as the detail screen renders them.
func detailFromItem(m domain.MarketItem) domain.MarketDetail {
	d := domain.MarketDetail{
		ID:           m.ID,
		Title:        m.Title,
		Description:  m.Description,
		Category:     m.Category,
		Status:       m.Status,
		Creator:      m.Creator,
		EndDate:      m.EndDate,
		CreatedDate:  m.CreatedDate,
		TotalVolume:  m.TotalVolume,
		Tags:         m.Tags,
		Participants: m.Participants,
		Rules:        "Resolution per the market description. Disputes settled by the market committee.",
	}

	switch m.Type {
	case domain.MarketTypeBinary:
		d.Outcomes = []domain.DetailOutcome{{
			ID:             m.ID + "-outcome",
			Label:          m.Title,
			PriceYes:       int(m.YesOption.Price*100 + 0.5),
			PriceNo:        int(m.NoOption.Price*100 + 0.5),
			PriceChange24h: int(m.YesOption.PriceChange24h),
			Liquidity:      m.YesOption.Liquidity,
		}}
	case domain.MarketTypeMulti:
		for _, o := range m.Options {
			d.Outcomes = append(d.Outcomes, domain.DetailOutcome{
				ID:             o.ID,
				Label:          o.Label,
				PriceYes:       int(o.Price*100 + 0.5),
				PriceNo:        100 - int(o.Price*100+0.5),
				PriceChange24h: int(o.PriceChange24h),
				Liquidity:      o.Liquidity,
			})
		}
	}
	return d
}

// Catalog is the read-only market dataset service handed to handlers.
type Catalog struct{}

// New returns the catalog service.
func New() *Catalog {
	return &Catalog{}
}

// Markets returns a copy of the catalog.
func (c *Catalog) Markets() []domain.MarketItem {
	out := make([]domain.MarketItem, len(markets))
	copy(out, markets)
	return out
}

// Detail returns the detail shape for a market id, or domain.ErrNotFound.
func (c *Catalog) Detail(id string) (domain.MarketDetail, error) {
	d, ok := details[id]
	if !ok {
		return domain.MarketDetail{}, domain.ErrNotFound
	}
	return d, nil
}

// Categories returns the fixed category list, "all" first.
func (c *Catalog) Categories() []string {
	out := make([]string, len(Categories))
	copy(out, Categories)
	return out
}
