package catalog

import (
	"errors"
	"testing"

	"github.com/tradex-app/tradex/internal/domain"
)

func TestEveryMarketIsWellFormed(t *testing.T) {
	c := New()

	items := c.Markets()
	if len(items) == 0 {
		t.Fatal("catalog is empty")
	}

	for _, m := range items {
		if err := m.Validate(); err != nil {
			t.Errorf("market %s: %v", m.ID, err)
		}
		if m.Category == "all" {
			t.Errorf("market %s uses the filter sentinel as its category", m.ID)
		}

		d, err := c.Detail(m.ID)
		if err != nil {
			t.Errorf("no detail for %s: %v", m.ID, err)
			continue
		}
		if d.ID != m.ID || len(d.Outcomes) == 0 {
			t.Errorf("detail for %s is malformed: %+v", m.ID, d)
		}
	}
}

func TestDetailUnknownID(t *testing.T) {
	c := New()
	if _, err := c.Detail("nope"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestBinaryDetailPricesSumToHundred(t *testing.T) {
	c := New()
	for _, m := range c.Markets() {
		if m.Type != domain.MarketTypeBinary {
			continue
		}
		d, err := c.Detail(m.ID)
		if err != nil {
			t.Fatalf("detail for %s: %v", m.ID, err)
		}
		o := d.Outcomes[0]
		if o.PriceYes+o.PriceNo != 100 {
			t.Errorf("market %s: yes %d + no %d != 100", m.ID, o.PriceYes, o.PriceNo)
		}
	}
}

func TestCategoriesStartWithAll(t *testing.T) {
	c := New()
	cats := c.Categories()
	if len(cats) == 0 || cats[0] != "all" {
		t.Errorf("categories = %v", cats)
	}
}
