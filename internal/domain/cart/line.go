package cart

import (
	"github.com/shopspring/decimal"
)

type Kind string

const (
	KindStock  Kind = "stock"
	KindCustom Kind = "custom"
)

func (k Kind) IsValid() bool {
	return k == KindStock || k == KindCustom
}

// Line is one row of the cart.
// Stock lines reference a catalog product; their UnitPrice is the last known price and is
// recomputed on every total. Custom lines carry their descriptor and a UnitPrice snapshot.
type Line struct {
	ID        string
	Kind      Kind
	ProductID int64
	Custom    *CustomDescriptor
	Size      Size
	UnitPrice decimal.Decimal
	Quantity  int
}

type identity struct {
	kind      Kind
	productID int64
	custom    CustomDescriptor
	size      Size
}

func (l Line) identity() identity {
	id := identity{kind: l.Kind, size: l.Size}
	switch l.Kind {
	case KindStock:
		id.productID = l.ProductID
	case KindCustom:
		if l.Custom != nil {
			id.custom = *l.Custom
		}
	}
	return id
}

// SameItem reports whether two lines describe the same purchasable item and would merge.
func (l Line) SameItem(other Line) bool {
	return l.identity() == other.identity()
}

func (l Line) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

func (l Line) clone() Line {
	if l.Custom != nil {
		d := *l.Custom
		l.Custom = &d
	}
	return l
}
