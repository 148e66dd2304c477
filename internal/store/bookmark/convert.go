package bookmark

import (
	"fmt"

	"github.com/tradex-app/tradex/internal/domain"
)

// FromDetail converts the detail-screen shape into a watchlist MarketItem.
// A detail with exactly one outcome becomes a binary item; anything else
// becomes multi-outcome. The detail's integer percentage prices divide by
// 100; fields the detail does not carry get placeholder zero values.
func FromDetail(d domain.MarketDetail) domain.MarketItem {
	item := domain.MarketItem{
		ID:           d.ID,
		Title:        d.Title,
		Description:  d.Description,
		Category:     d.Category,
		Status:       d.Status,
		Creator:      d.Creator,
		EndDate:      d.EndDate,
		CreatedDate:  d.CreatedDate,
		TotalVolume:  d.TotalVolume,
		Tags:         d.Tags,
		Participants: d.Participants,
	}

	if len(d.Outcomes) == 1 {
		o := d.Outcomes[0]
		item.Type = domain.MarketTypeBinary
		yes := optionFromOutcome(o.ID+"-yes", "Yes", o.PriceYes, o.PriceChange24h, o.Liquidity)
		no := optionFromOutcome(o.ID+"-no", "No", o.PriceNo, -o.PriceChange24h, o.Liquidity)
		item.YesOption = &yes
		item.NoOption = &no
		return item
	}

	item.Type = domain.MarketTypeMulti
	item.Options = make([]domain.Option, 0, len(d.Outcomes))
	for _, o := range d.Outcomes {
		item.Options = append(item.Options,
			optionFromOutcome(o.ID, o.Label, o.PriceYes, o.PriceChange24h, o.Liquidity))
	}
	return item
}

func optionFromOutcome(id, label string, pricePct, changePct int, liquidity string) domain.Option {
	if liquidity == "" {
		liquidity = "$0"
	}
	return domain.Option{
		ID:             id,
		Label:          label,
		Price:          float64(pricePct) / 100,
		PriceDisplay:   fmt.Sprintf("%d¢", pricePct),
		Shares:         0,
		Volume24h:      "$0",
		PriceChange24h: float64(changePct),
		Liquidity:      liquidity,
	}
}
