package commands

import (
	"context"
	"log/slog"
	"time"

	"jersey-storefront/internal/domain/promotion"
	"jersey-storefront/internal/pkg/clock"
	"jersey-storefront/internal/pkg/errs"
	"jersey-storefront/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PromotionCommands interface {
	CreatePromotion(ctx context.Context, req PromotionInput) (*CreatePromotionResult, error)
	ReplacePromotion(ctx context.Context, id uuid.UUID, req PromotionInput) error
	PatchPromotion(ctx context.Context, id uuid.UUID, req PatchPromotionRequest) error
	DeletePromotion(ctx context.Context, id uuid.UUID) error
}

// PromotionInput is the admin wire form of a promotion.
type PromotionInput struct {
	SaleType      string
	TargetValue   string
	DiscountType  string
	DiscountValue decimal.Decimal
	StartDate     time.Time
	EndDate       time.Time
	IsActive      bool
}

// PatchPromotionRequest carries only the fields to change.
type PatchPromotionRequest struct {
	SaleType      *string
	TargetValue   *string
	DiscountType  *string
	DiscountValue *decimal.Decimal
	StartDate     *time.Time
	EndDate       *time.Time
	IsActive      *bool
}

type CreatePromotionResult struct {
	PromotionID uuid.UUID
}

type promotionUseCaseImpl struct {
	repo   shared.PromotionRepository
	uow    shared.UnitOfWork
	clock  clock.Clock
	logger *slog.Logger
}

func NewPromotionUseCase(repo shared.PromotionRepository, uow shared.UnitOfWork, clk clock.Clock, logger *slog.Logger) PromotionCommands {
	return &promotionUseCaseImpl{repo: repo, uow: uow, clock: clk, logger: logger}
}

func (uc *promotionUseCaseImpl) CreatePromotion(ctx context.Context, req PromotionInput) (*CreatePromotionResult, error) {
	scope, discount, err := parseRules(req.SaleType, req.TargetValue, req.DiscountType, req.DiscountValue)
	if err != nil {
		return nil, err
	}

	p, err := promotion.NewPromotion(uuid.Nil, scope, discount, req.StartDate, req.EndDate, req.IsActive, uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidPromotion)
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, shared.TranslatePromotionErr(err)
	}

	uc.logger.InfoContext(ctx, "promotion created",
		slog.String("promotion_id", p.ID().String()),
		slog.String("scope", scope.Kind().String()))
	return &CreatePromotionResult{PromotionID: p.ID()}, nil
}

// ReplacePromotion rewrites every rule of the stored record, including one that no longer parses.
func (uc *promotionUseCaseImpl) ReplacePromotion(ctx context.Context, id uuid.UUID, req PromotionInput) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		existing, err := tx.Promotions().LockByID(ctx, id)
		if err != nil {
			return shared.TranslatePromotionErr(err)
		}
		return uc.save(ctx, tx.Promotions(), existing, req)
	})
}

// PatchPromotion merges the given fields over the stored record and validates the result.
func (uc *promotionUseCaseImpl) PatchPromotion(ctx context.Context, id uuid.UUID, req PatchPromotionRequest) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		existing, err := tx.Promotions().LockByID(ctx, id)
		if err != nil {
			return shared.TranslatePromotionErr(err)
		}

		merged := PromotionInput{
			SaleType:      orExisting(req.SaleType, existing.SaleType),
			TargetValue:   orExisting(req.TargetValue, existing.TargetValue),
			DiscountType:  orExisting(req.DiscountType, existing.DiscountType),
			DiscountValue: orExisting(req.DiscountValue, existing.DiscountValue),
			StartDate:     orExisting(req.StartDate, existing.ActiveFrom),
			EndDate:       orExisting(req.EndDate, existing.ActiveUntil),
			IsActive:      orExisting(req.IsActive, existing.Enabled),
		}
		if err := uc.save(ctx, tx.Promotions(), existing, merged); err != nil {
			if errs.Is(err, errs.ErrInvalidPromotion) && !storedValid(existing) {
				return errs.Mark(err, errs.ErrStoredPromotionMalformed)
			}
			return err
		}
		return nil
	})
}

func (uc *promotionUseCaseImpl) DeletePromotion(ctx context.Context, id uuid.UUID) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return shared.TranslatePromotionErr(err)
	}
	uc.logger.InfoContext(ctx, "promotion deleted", slog.String("promotion_id", id.String()))
	return nil
}

func (uc *promotionUseCaseImpl) save(ctx context.Context, repo shared.PromotionRepository, existing *promotion.Record, req PromotionInput) error {
	scope, discount, err := parseRules(req.SaleType, req.TargetValue, req.DiscountType, req.DiscountValue)
	if err != nil {
		return err
	}

	updated := promotion.ReconstructPromotion(
		existing.ID,
		scope,
		discount,
		req.StartDate,
		req.EndDate,
		req.IsActive,
		existing.CreatedAt,
		uc.clock.Now(),
	)
	if err := updated.Validate(); err != nil {
		return errs.Mark(err, errs.ErrInvalidPromotion)
	}
	if err := repo.Update(ctx, &updated); err != nil {
		return shared.TranslatePromotionErr(err)
	}
	return nil
}

func parseRules(saleType, targetValue, discountType string, discountValue decimal.Decimal) (promotion.Scope, promotion.Discount, error) {
	scope, err := promotion.ParseTarget(saleType, targetValue)
	if err != nil {
		return promotion.Scope{}, promotion.Discount{}, errs.Mark(err, errs.ErrInvalidPromotion)
	}
	discount, err := promotion.ParseDiscount(discountType, discountValue)
	if err != nil {
		return promotion.Scope{}, promotion.Discount{}, errs.Mark(err, errs.ErrInvalidPromotion)
	}
	return scope, discount, nil
}

// storedValid reports whether the stored record still describes a usable promotion.
func storedValid(rec *promotion.Record) bool {
	scope, discount, err := parseRules(rec.SaleType, rec.TargetValue, rec.DiscountType, rec.DiscountValue)
	if err != nil {
		return false
	}
	p := promotion.ReconstructPromotion(rec.ID, scope, discount, rec.ActiveFrom, rec.ActiveUntil, rec.Enabled, rec.CreatedAt, rec.UpdatedAt)
	return p.Validate() == nil
}

// orExisting keeps the stored field when the patch leaves it out.
func orExisting[T any](patched *T, existing T) T {
	if patched != nil {
		return *patched
	}
	return existing
}
