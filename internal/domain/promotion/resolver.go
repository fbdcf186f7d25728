package promotion

import (
	"log/slog"
	"time"

	"jersey-storefront/internal/domain/catalog"
	"jersey-storefront/internal/pkg/money"

	"github.com/shopspring/decimal"
)

// Snapshot is the promotion collection evaluated for one pricing pass.
// Live is false when promotion data could not be obtained; prices then fall
// back to the catalog's precomputed display hints.
type Snapshot struct {
	Promotions []Promotion
	Live       bool
}

func LiveSnapshot(promotions []Promotion) Snapshot {
	return Snapshot{Promotions: promotions, Live: true}
}

func UnavailableSnapshot() Snapshot {
	return Snapshot{}
}

// Resolution is the effective unit price of a product and the promotion that produced it.
type Resolution struct {
	UnitPrice decimal.Decimal
	Applied   *Promotion
}

func (r Resolution) Discounted() bool {
	return r.Applied != nil
}

type Resolver struct {
	logger *slog.Logger
	places int32
}

func NewResolver(logger *slog.Logger, minorUnits int32) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{logger: logger, places: minorUnits}
}

// Resolve prices a product with the default resolver.
func Resolve(product catalog.Product, promotions []Promotion, now time.Time) Resolution {
	return NewResolver(slog.Default(), money.DefaultMinorUnits).Resolve(product, promotions, now)
}

func (r *Resolver) MinorUnits() int32 {
	return r.places
}

// Resolve picks at most one promotion for the product:
// the most specific matching scope wins (Player > Team > League > All), and among
// equally specific matches the lowest resulting price wins, then the smallest id.
// Malformed promotions are logged and skipped.
func (r *Resolver) Resolve(product catalog.Product, promotions []Promotion, now time.Time) Resolution {
	base := money.NonNegative(product.BasePrice())

	var (
		best            *Promotion
		bestPrice       decimal.Decimal
		bestSpecificity = -1
	)
	for i := range promotions {
		p := &promotions[i]
		if err := p.Validate(); err != nil {
			r.logger.Warn("skipping malformed promotion",
				slog.String("promotion_id", p.ID().String()),
				slog.String("error", err.Error()))
			continue
		}
		if !p.IsActiveAt(now) || !p.scope.Matches(product) {
			continue
		}

		price := p.discount.Apply(base, r.places)
		specificity := p.scope.kind.Specificity()
		if best == nil || beats(specificity, price, p, bestSpecificity, bestPrice, best) {
			best, bestPrice, bestSpecificity = p, price, specificity
		}
	}

	if best == nil {
		return Resolution{UnitPrice: base}
	}
	applied := *best
	return Resolution{UnitPrice: bestPrice, Applied: &applied}
}

// ResolveWithHints resolves against live promotions, or against the product's
// display hints when the snapshot is not live.
func (r *Resolver) ResolveWithHints(product catalog.Product, snapshot Snapshot, now time.Time) Resolution {
	if snapshot.Live {
		return r.Resolve(product, snapshot.Promotions, now)
	}
	return Resolution{UnitPrice: money.NonNegative(money.Round(product.DisplayPrice(), r.places))}
}

func beats(rank int, price decimal.Decimal, p *Promotion, bestRank int, bestPrice decimal.Decimal, best *Promotion) bool {
	if rank != bestRank {
		return rank > bestRank
	}
	if !price.Equal(bestPrice) {
		return price.LessThan(bestPrice)
	}
	return p.id.String() < best.id.String()
}
