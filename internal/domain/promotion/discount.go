package promotion

import (
	"errors"
	"fmt"
	"strings"

	"jersey-storefront/internal/pkg/money"

	"github.com/shopspring/decimal"
)

var (
	ErrUnknownDiscountKind = errors.New("unknown discount type")
	ErrInvalidFlatAmount   = errors.New("flat discount cannot be negative")
	ErrInvalidPercentage   = errors.New("percentage discount must be greater than 0 and at most 100")
)

type DiscountKind string

const (
	DiscountFlat       DiscountKind = "FLAT"
	DiscountPercentage DiscountKind = "PERCENTAGE"
)

func (k DiscountKind) String() string {
	return string(k)
}

var hundred = decimal.NewFromInt(100)

type Discount struct {
	kind  DiscountKind
	value decimal.Decimal
}

func FlatDiscount(amount decimal.Decimal) Discount {
	return Discount{kind: DiscountFlat, value: amount}
}

func PercentageDiscount(percent decimal.Decimal) Discount {
	return Discount{kind: DiscountPercentage, value: percent}
}

// ParseDiscount builds a discount from the admin wire pair (discount_type, discount_value).
func ParseDiscount(discountType string, value decimal.Decimal) (Discount, error) {
	var d Discount
	switch DiscountKind(strings.ToUpper(strings.TrimSpace(discountType))) {
	case DiscountFlat:
		d = FlatDiscount(value)
	case DiscountPercentage:
		d = PercentageDiscount(value)
	default:
		return Discount{}, fmt.Errorf("%w: %q", ErrUnknownDiscountKind, discountType)
	}
	if err := d.Validate(); err != nil {
		return Discount{}, err
	}
	return d, nil
}

func (d Discount) Kind() DiscountKind     { return d.kind }
func (d Discount) Value() decimal.Decimal { return d.value }
func (d Discount) IsPercentage() bool     { return d.kind == DiscountPercentage }

func (d Discount) Validate() error {
	switch d.kind {
	case DiscountFlat:
		if d.value.IsNegative() {
			return ErrInvalidFlatAmount
		}
		return nil
	case DiscountPercentage:
		if !d.value.IsPositive() || d.value.GreaterThan(hundred) {
			return ErrInvalidPercentage
		}
		return nil
	default:
		return ErrUnknownDiscountKind
	}
}

// Apply returns the discounted unit price rounded to the given minor-unit precision.
// The result is never negative.
func (d Discount) Apply(basePrice decimal.Decimal, places int32) decimal.Decimal {
	var price decimal.Decimal
	switch d.kind {
	case DiscountFlat:
		price = basePrice.Sub(d.value)
	case DiscountPercentage:
		price = money.Percent(basePrice, d.value)
	default:
		price = basePrice
	}
	return money.NonNegative(money.Round(price, places))
}
