package promotion

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidActiveWindow = errors.New("promotion must start before it ends")

// Promotion is a time-bounded, scoped discount rule authored by the admin console.
type Promotion struct {
	id          uuid.UUID
	scope       Scope
	discount    Discount
	activeFrom  time.Time
	activeUntil time.Time
	enabled     bool
	createdAt   time.Time
	updatedAt   time.Time
}

// NewPromotion builds a validated promotion. A zero id is replaced by a fresh one.
func NewPromotion(
	id uuid.UUID,
	scope Scope,
	discount Discount,
	activeFrom, activeUntil time.Time,
	enabled bool,
	now time.Time,
) (*Promotion, error) {
	if id == uuid.Nil {
		id = uuid.New()
	}
	p := &Promotion{
		id:          id,
		scope:       scope,
		discount:    discount,
		activeFrom:  activeFrom,
		activeUntil: activeUntil,
		enabled:     enabled,
		createdAt:   now,
		updatedAt:   now,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// ReconstructPromotion rebuilds a stored promotion without validation.
// Malformed records are kept so the resolver can skip them.
func ReconstructPromotion(
	id uuid.UUID,
	scope Scope,
	discount Discount,
	activeFrom, activeUntil time.Time,
	enabled bool,
	createdAt, updatedAt time.Time,
) Promotion {
	return Promotion{
		id:          id,
		scope:       scope,
		discount:    discount,
		activeFrom:  activeFrom,
		activeUntil: activeUntil,
		enabled:     enabled,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (p Promotion) Validate() error {
	if err := p.scope.Validate(); err != nil {
		return err
	}
	if err := p.discount.Validate(); err != nil {
		return err
	}
	if !p.activeFrom.Before(p.activeUntil) {
		return ErrInvalidActiveWindow
	}
	return nil
}

// IsActiveAt reports enabled && activeFrom <= now < activeUntil.
func (p Promotion) IsActiveAt(now time.Time) bool {
	return p.enabled && !now.Before(p.activeFrom) && now.Before(p.activeUntil)
}

func (p *Promotion) SetEnabled(enabled bool, now time.Time) {
	p.enabled = enabled
	p.updatedAt = now
}

func (p Promotion) ID() uuid.UUID          { return p.id }
func (p Promotion) Scope() Scope           { return p.scope }
func (p Promotion) Discount() Discount     { return p.discount }
func (p Promotion) ActiveFrom() time.Time  { return p.activeFrom }
func (p Promotion) ActiveUntil() time.Time { return p.activeUntil }
func (p Promotion) Enabled() bool          { return p.enabled }
func (p Promotion) CreatedAt() time.Time   { return p.createdAt }
func (p Promotion) UpdatedAt() time.Time   { return p.updatedAt }
