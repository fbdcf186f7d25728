package commands

import (
	"context"
	"log/slog"

	"jersey-storefront/internal/domain/cart"
	"jersey-storefront/internal/pkg/errs"
	"jersey-storefront/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

type CartCommands interface {
	AddStockItem(ctx context.Context, sessionID string, req AddStockItemRequest) (*CartLineResult, error)
	AddCustomItem(ctx context.Context, sessionID string, req AddCustomItemRequest) (*CartLineResult, error)
	SetQuantity(ctx context.Context, sessionID, lineID string, quantity int) (*CartCountResult, error)
	RemoveLine(ctx context.Context, sessionID, lineID string) (*CartCountResult, error)
	Clear(ctx context.Context, sessionID string) error
}

type AddStockItemRequest struct {
	ProductID int64
	Size      string
	Quantity  int
}

type AddCustomItemRequest struct {
	Descriptor cart.CustomDescriptor
	Size       string
	Quantity   int
}

// CartLineResult is the state of the touched line after an add. Line is nil when nothing was added.
type CartLineResult struct {
	Line      *cart.Line
	ItemCount int
}

type CartCountResult struct {
	ItemCount int
}

type CartConfig struct {
	CustomUnitPrice decimal.Decimal
}

type cartUseCaseImpl struct {
	products shared.ProductRepository
	sessions *shared.CartSessions
	cfg      CartConfig
	logger   *slog.Logger
}

func NewCartUseCase(
	products shared.ProductRepository,
	sessions *shared.CartSessions,
	cfg CartConfig,
	logger *slog.Logger,
) CartCommands {
	return &cartUseCaseImpl{
		products: products,
		sessions: sessions,
		cfg:      cfg,
		logger:   logger,
	}
}

func (uc *cartUseCaseImpl) AddStockItem(ctx context.Context, sessionID string, req AddStockItemRequest) (*CartLineResult, error) {
	size, err := cart.ParseSize(req.Size)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidCartItem)
	}
	product, err := uc.products.FindByID(ctx, req.ProductID)
	if err != nil {
		return nil, shared.TranslateProductErr(err)
	}

	c, release := uc.sessions.Acquire(sessionID)
	defer release()

	line, err := c.AddStock(ctx, product, size, req.Quantity)
	if err != nil {
		return nil, uc.persistErr(ctx, sessionID, err)
	}
	return newLineResult(ctx, c, line), nil
}

func (uc *cartUseCaseImpl) AddCustomItem(ctx context.Context, sessionID string, req AddCustomItemRequest) (*CartLineResult, error) {
	size, err := cart.ParseSize(req.Size)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidCartItem)
	}
	if err := req.Descriptor.Validate(); err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidCartItem)
	}

	c, release := uc.sessions.Acquire(sessionID)
	defer release()

	line, err := c.AddCustom(ctx, req.Descriptor, size, req.Quantity, uc.cfg.CustomUnitPrice)
	if err != nil {
		return nil, uc.persistErr(ctx, sessionID, err)
	}
	return newLineResult(ctx, c, line), nil
}

func (uc *cartUseCaseImpl) SetQuantity(ctx context.Context, sessionID, lineID string, quantity int) (*CartCountResult, error) {
	c, release := uc.sessions.Acquire(sessionID)
	defer release()

	if err := c.SetQuantity(ctx, lineID, quantity); err != nil {
		if errs.Is(err, cart.ErrLineNotFound) {
			return nil, errs.Mark(err, errs.ErrCartLineNotFound)
		}
		return nil, uc.persistErr(ctx, sessionID, err)
	}
	return &CartCountResult{ItemCount: c.Count(ctx)}, nil
}

func (uc *cartUseCaseImpl) RemoveLine(ctx context.Context, sessionID, lineID string) (*CartCountResult, error) {
	c, release := uc.sessions.Acquire(sessionID)
	defer release()

	if err := c.Remove(ctx, lineID); err != nil {
		return nil, uc.persistErr(ctx, sessionID, err)
	}
	return &CartCountResult{ItemCount: c.Count(ctx)}, nil
}

func (uc *cartUseCaseImpl) Clear(ctx context.Context, sessionID string) error {
	c, release := uc.sessions.Acquire(sessionID)
	defer release()

	if err := c.Clear(ctx); err != nil {
		return uc.persistErr(ctx, sessionID, err)
	}
	return nil
}

// persistErr marks a failed save. The mutation stays in the session cart and is
// saved again by the next request of the session.
func (uc *cartUseCaseImpl) persistErr(ctx context.Context, sessionID string, err error) error {
	uc.logger.WarnContext(ctx, "cart change kept in memory until the store accepts it",
		slog.String("session_id", sessionID))
	return errs.Mark(err, errs.ErrCartPersist)
}

func newLineResult(ctx context.Context, c *cart.Cart, line cart.Line) *CartLineResult {
	res := &CartLineResult{ItemCount: c.Count(ctx)}
	if line.ID != "" {
		res.Line = &line
	}
	return res
}
