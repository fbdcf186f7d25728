package promotion

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Record is a promotion in its stored admin form. The rules stay as text, so a record
// whose target or discount no longer parses can still be read and rewritten.
type Record struct {
	ID            uuid.UUID
	SaleType      string
	TargetValue   string
	DiscountType  string
	DiscountValue decimal.Decimal
	ActiveFrom    time.Time
	ActiveUntil   time.Time
	Enabled       bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (p Promotion) Record() Record {
	return Record{
		ID:            p.id,
		SaleType:      p.scope.Kind().String(),
		TargetValue:   p.scope.TargetValue(),
		DiscountType:  p.discount.Kind().String(),
		DiscountValue: p.discount.Value(),
		ActiveFrom:    p.activeFrom,
		ActiveUntil:   p.activeUntil,
		Enabled:       p.enabled,
		CreatedAt:     p.createdAt,
		UpdatedAt:     p.updatedAt,
	}
}
