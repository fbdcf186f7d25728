package catalog

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidProductID = errors.New("product id must be positive")
	ErrNegativePrice    = errors.New("price cannot be negative")
)

// Product is the catalog descriptor of a stock jersey. It is immutable once built.
type Product struct {
	id        int64
	name      string
	basePrice decimal.Decimal
	playerID  int64
	teamID    int64
	league    string
	onSale    bool
	salePrice *decimal.Decimal
}

func NewProduct(
	id int64,
	name string,
	basePrice decimal.Decimal,
	playerID, teamID int64,
	league string,
	onSale bool,
	salePrice *decimal.Decimal,
) (Product, error) {
	if id <= 0 {
		return Product{}, ErrInvalidProductID
	}
	if basePrice.IsNegative() {
		return Product{}, ErrNegativePrice
	}
	if salePrice != nil && salePrice.IsNegative() {
		return Product{}, ErrNegativePrice
	}
	return Product{
		id:        id,
		name:      name,
		basePrice: basePrice,
		playerID:  playerID,
		teamID:    teamID,
		league:    league,
		onSale:    onSale,
		salePrice: salePrice,
	}, nil
}

func (p Product) ID() int64                   { return p.id }
func (p Product) Name() string                { return p.name }
func (p Product) BasePrice() decimal.Decimal  { return p.basePrice }
func (p Product) PlayerID() int64             { return p.playerID }
func (p Product) TeamID() int64               { return p.teamID }
func (p Product) League() string              { return p.league }
func (p Product) OnSale() bool                { return p.onSale }
func (p Product) SalePrice() *decimal.Decimal { return p.salePrice }

// DisplayPrice is the server-precomputed price. It is advisory only and used
// when no live promotion data is available.
func (p Product) DisplayPrice() decimal.Decimal {
	if !p.onSale || p.salePrice == nil {
		return p.basePrice
	}
	if p.salePrice.GreaterThan(p.basePrice) {
		return p.basePrice
	}
	return *p.salePrice
}

// Lookup resolves catalog products by id. Missing products are reported with ok == false.
type Lookup interface {
	Product(id int64) (Product, bool)
}

// Index is an in-memory Lookup over a fixed set of products.
type Index map[int64]Product

func NewIndex(products ...Product) Index {
	idx := make(Index, len(products))
	for _, p := range products {
		idx[p.id] = p
	}
	return idx
}

func (i Index) Product(id int64) (Product, bool) {
	p, ok := i[id]
	return p, ok
}
