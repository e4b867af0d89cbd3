package model

import (
	"slices"

	"github.com/shopspring/decimal"
)

// Stand is an exhibition stand publishers can buy.
// PublisherNITs keeps purchase order and does not de-duplicate by itself;
// callers check HasPublisher first.
type Stand struct {
	ID            int64           `json:"id"`
	Price         decimal.Decimal `json:"price"`
	PublisherNITs []string        `json:"publisher_nits"`
}

func NewStand(id int64, price decimal.Decimal) Stand {
	return Stand{ID: id, Price: price}
}

func (s Stand) Key() int64 { return s.ID }

func (s Stand) Clone() Stand {
	return Stand{
		ID:            s.ID,
		Price:         s.Price,
		PublisherNITs: slices.Clone(s.PublisherNITs),
	}
}

func (s Stand) HasPublisher(nit string) bool {
	return slices.Contains(s.PublisherNITs, nit)
}

func (s *Stand) AddPublisher(nit string) {
	s.PublisherNITs = append(s.PublisherNITs, nit)
}
