//go:build unit || e2e

package builder

import (
	"jersey-storefront/internal/domain/catalog"

	"github.com/shopspring/decimal"
)

type ProductBuilder struct {
	ID        int64
	Name      string
	BasePrice decimal.Decimal
	PlayerID  int64
	TeamID    int64
	League    string
	OnSale    bool
	SalePrice *decimal.Decimal
}

func NewProductBuilder() *ProductBuilder {
	return &ProductBuilder{
		ID:        7,
		Name:      "Home Jersey 24/25",
		BasePrice: decimal.NewFromInt(800),
		PlayerID:  42,
		TeamID:    3,
		League:    "Premier League",
	}
}

func (b *ProductBuilder) With(mutate func(*ProductBuilder)) *ProductBuilder {
	mutate(b)
	return b
}

func (b *ProductBuilder) WithID(id int64) *ProductBuilder {
	b.ID = id
	return b
}

func (b *ProductBuilder) WithBasePrice(price int64) *ProductBuilder {
	b.BasePrice = decimal.NewFromInt(price)
	return b
}

func (b *ProductBuilder) WithSalePrice(price int64) *ProductBuilder {
	sale := decimal.NewFromInt(price)
	b.OnSale = true
	b.SalePrice = &sale
	return b
}

func (b *ProductBuilder) BuildDomain() (catalog.Product, error) {
	return catalog.NewProduct(b.ID, b.Name, b.BasePrice, b.PlayerID, b.TeamID, b.League, b.OnSale, b.SalePrice)
}

// MustBuild panics on invalid builder state; only for fixtures known to be valid.
func (b *ProductBuilder) MustBuild() catalog.Product {
	p, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return p
}
