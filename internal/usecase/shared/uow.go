package shared

import (
	"context"
)

type UnitOfWork interface {
	// Within: Full transaction for read-modify-write operations with retry logic.
	// fn may run more than once, so it must not keep side effects outside tx.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx exposes repositories bound to one open transaction.
type Tx interface {
	Promotions() PromotionRepository
}
