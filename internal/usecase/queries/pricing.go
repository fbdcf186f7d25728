package queries

import (
	"context"
	"log/slog"
	"time"

	"jersey-storefront/internal/domain/promotion"
	"jersey-storefront/internal/usecase/shared"
)

// activeSnapshot loads the live promotion set. When the store cannot be read the
// snapshot is marked unavailable and prices fall back to the catalog display hints.
func activeSnapshot(ctx context.Context, repo shared.PromotionRepository, now time.Time, logger *slog.Logger) promotion.Snapshot {
	promotions, err := repo.ListActive(ctx, now)
	if err != nil {
		logger.WarnContext(ctx, "promotions unavailable, pricing from display hints",
			slog.String("error", err.Error()))
		return promotion.UnavailableSnapshot()
	}
	return promotion.LiveSnapshot(promotions)
}
