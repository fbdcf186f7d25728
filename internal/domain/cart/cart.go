package cart

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"jersey-storefront/internal/domain/catalog"
	"jersey-storefront/internal/domain/promotion"
	"jersey-storefront/internal/pkg/errs"
	"jersey-storefront/internal/pkg/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrLineNotFound  = errors.New("cart line not found")
	ErrPersistFailed = errors.New("failed to persist cart")
)

// PriceSource tells where the unit price of a priced line came from.
type PriceSource string

const (
	PriceFromCatalog  PriceSource = "catalog"
	PriceFromCache    PriceSource = "cached"
	PriceFromSnapshot PriceSource = "snapshot"
)

type PricedLine struct {
	Line        Line
	UnitPrice   decimal.Decimal
	PromotionID *uuid.UUID
	Source      PriceSource
	Subtotal    decimal.Decimal
}

type Totals struct {
	Lines    []PricedLine
	Quantity int
	Amount   decimal.Decimal
}

type Option func(*Cart)

func WithLogger(logger *slog.Logger) Option {
	return func(c *Cart) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithSuffixGenerator replaces the random line id suffix source.
func WithSuffixGenerator(fn func() string) Option {
	return func(c *Cart) {
		if fn != nil {
			c.suffix = fn
		}
	}
}

// Cart owns the line set of one shopping session. It is not safe for concurrent use.
type Cart struct {
	store  Store
	logger *slog.Logger
	suffix func() string

	lines  []Line
	loaded bool

	// unsaved is set while the store has not accepted the current lines.
	unsaved  bool
	repriced bool
}

func New(store Store, opts ...Option) *Cart {
	c := &Cart{
		store:  store,
		logger: slog.Default(),
		suffix: randomSuffix,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Lines returns a copy of the current lines in insertion order.
func (c *Cart) Lines(ctx context.Context) []Line {
	c.ensureLoaded(ctx)
	out := make([]Line, len(c.lines))
	for i, l := range c.lines {
		out[i] = l.clone()
	}
	return out
}

// Count is the total quantity over all lines.
func (c *Cart) Count(ctx context.Context) int {
	c.ensureLoaded(ctx)
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

// AddStock adds qty of a catalog product in the given size, merging with an existing line.
func (c *Cart) AddStock(ctx context.Context, product catalog.Product, size Size, qty int) (Line, error) {
	return c.add(ctx, Line{
		Kind:      KindStock,
		ProductID: product.ID(),
		Size:      size,
		UnitPrice: product.BasePrice(),
		Quantity:  qty,
	})
}

// AddCustom adds qty of a customized jersey. unitPrice is snapshotted on the line.
func (c *Cart) AddCustom(ctx context.Context, descriptor CustomDescriptor, size Size, qty int, unitPrice decimal.Decimal) (Line, error) {
	d := descriptor
	return c.add(ctx, Line{
		Kind:      KindCustom,
		Custom:    &d,
		Size:      size,
		UnitPrice: unitPrice,
		Quantity:  qty,
	})
}

func (c *Cart) add(ctx context.Context, candidate Line) (Line, error) {
	c.ensureLoaded(ctx)
	if candidate.Quantity <= 0 {
		return Line{}, nil
	}

	if i := c.indexOfItem(candidate); i >= 0 {
		c.lines[i].Quantity += candidate.Quantity
		return c.lines[i].clone(), c.persist(ctx)
	}

	candidate.ID = c.newLineID(candidate)
	c.lines = append(c.lines, candidate)
	return candidate.clone(), c.persist(ctx)
}

// Remove deletes the line. Unknown ids are ignored.
func (c *Cart) Remove(ctx context.Context, lineID string) error {
	c.ensureLoaded(ctx)
	i := c.indexOfID(lineID)
	if i < 0 {
		return nil
	}
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
	return c.persist(ctx)
}

// SetQuantity overwrites the quantity of a line; qty <= 0 removes it.
func (c *Cart) SetQuantity(ctx context.Context, lineID string, qty int) error {
	c.ensureLoaded(ctx)
	i := c.indexOfID(lineID)
	if i < 0 {
		return ErrLineNotFound
	}
	if qty <= 0 {
		c.lines = append(c.lines[:i], c.lines[i+1:]...)
		return c.persist(ctx)
	}
	c.lines[i].Quantity = qty
	return c.persist(ctx)
}

func (c *Cart) Clear(ctx context.Context) error {
	c.lines = nil
	c.loaded = true
	return c.persist(ctx)
}

// Total prices every line and sums them, rounding once at the end.
// Stock lines go through the resolver and their cached unit price is refreshed in memory
// (see Flush); a product missing from the catalog falls back to that cached price.
// Custom lines always use their snapshot price.
func (c *Cart) Total(
	ctx context.Context,
	products catalog.Lookup,
	resolver *promotion.Resolver,
	snapshot promotion.Snapshot,
	now time.Time,
) Totals {
	c.ensureLoaded(ctx)

	totals := Totals{Lines: make([]PricedLine, 0, len(c.lines))}
	sum := decimal.Zero
	for i := range c.lines {
		line := &c.lines[i]
		priced := PricedLine{UnitPrice: line.UnitPrice, Source: PriceFromSnapshot}

		if line.Kind == KindStock {
			product, ok := products.Product(line.ProductID)
			if ok {
				res := resolver.ResolveWithHints(product, snapshot, now)
				priced.UnitPrice = res.UnitPrice
				priced.Source = PriceFromCatalog
				if res.Applied != nil {
					id := res.Applied.ID()
					priced.PromotionID = &id
				}
				if !line.UnitPrice.Equal(res.UnitPrice) {
					line.UnitPrice = res.UnitPrice
					c.repriced = true
				}
			} else {
				c.logger.Warn("cart product missing from catalog, using cached price",
					slog.Int64("product_id", line.ProductID),
					slog.String("line_id", line.ID))
				priced.Source = PriceFromCache
			}
		}

		priced.Subtotal = priced.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity)))
		priced.Line = line.clone()
		sum = sum.Add(priced.Subtotal)
		totals.Quantity += line.Quantity
		totals.Lines = append(totals.Lines, priced)
	}
	totals.Amount = money.Round(sum, resolver.MinorUnits())
	return totals
}

// ensureLoaded rehydrates from the store once. A failed read starts an empty cart.
func (c *Cart) ensureLoaded(ctx context.Context) {
	if c.loaded {
		return
	}
	c.loaded = true

	lines, err := c.store.Load(ctx)
	if err != nil {
		c.logger.Warn("failed to load cart, starting empty", slog.String("error", err.Error()))
		c.lines = nil
		return
	}
	c.lines = normalize(lines)
}

// Unsaved reports whether the last save failed, so the lines exist only in memory.
func (c *Cart) Unsaved() bool {
	return c.unsaved
}

// Flush saves the cart when it holds unsaved lines or unit prices refreshed by Total.
func (c *Cart) Flush(ctx context.Context) error {
	if !c.unsaved && !c.repriced {
		return nil
	}
	return c.persist(ctx)
}

func (c *Cart) persist(ctx context.Context) error {
	snapshot := make([]Line, len(c.lines))
	for i, l := range c.lines {
		snapshot[i] = l.clone()
	}
	if err := c.store.Save(ctx, snapshot); err != nil {
		c.unsaved = true
		c.logger.Error("failed to persist cart", slog.String("error", err.Error()))
		return errs.Mark(errs.Wrap(err, "save cart"), ErrPersistFailed)
	}
	c.unsaved = false
	c.repriced = false
	return nil
}

func (c *Cart) indexOfItem(candidate Line) int {
	for i, l := range c.lines {
		if l.SameItem(candidate) {
			return i
		}
	}
	return -1
}

func (c *Cart) indexOfID(lineID string) int {
	for i, l := range c.lines {
		if l.ID == lineID {
			return i
		}
	}
	return -1
}

func (c *Cart) newLineID(l Line) string {
	var prefix string
	switch l.Kind {
	case KindCustom:
		prefix = fmt.Sprintf("%s-%s", l.Custom.slug(), strings.ToLower(l.Size.String()))
	default:
		prefix = fmt.Sprintf("stock-%d-%s", l.ProductID, strings.ToLower(l.Size.String()))
	}
	for {
		id := prefix + "-" + c.suffix()
		if c.indexOfID(id) < 0 {
			return id
		}
	}
}

// normalize drops unusable stored lines and merges duplicates so the loaded
// state satisfies the one-line-per-item rule.
func normalize(stored []Line) []Line {
	out := make([]Line, 0, len(stored))
	for _, l := range stored {
		if l.ID == "" || !l.Kind.IsValid() || l.Quantity <= 0 {
			continue
		}
		if l.Kind == KindCustom && l.Custom == nil {
			continue
		}
		merged := false
		for i := range out {
			if out[i].SameItem(l) {
				out[i].Quantity += l.Quantity
				merged = true
				break
			}
		}
		if !merged {
			out = append(out, l.clone())
		}
	}
	return out
}

func randomSuffix() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}
