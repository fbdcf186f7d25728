package shared

import (
	"jersey-storefront/internal/domain/catalog"
	"jersey-storefront/internal/domain/promotion"
	"jersey-storefront/internal/infra"
	"jersey-storefront/internal/pkg/errs"
)

// TranslateProductErr maps repository failures onto the sentinels the handlers understand.
func TranslateProductErr(err error) error {
	if err == nil {
		return nil
	}
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, errs.ErrProductNotFound)
	}
	return errs.Mark(err, errs.ErrDatabaseOperationFailed)
}

func TranslatePromotionErr(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, errs.ErrPromotionNotFound)
	case infra.IsKind(err, infra.KindDuplicateKey):
		return errs.Mark(err, errs.ErrInvalidPromotion)
	case infra.IsKind(err, infra.KindDecodeFailure):
		return errs.Mark(err, errs.ErrStoredPromotionMalformed)
	case isPromotionValidation(err):
		return errs.Mark(err, errs.ErrInvalidPromotion)
	default:
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
}

func isPromotionValidation(err error) bool {
	for _, target := range []error{
		promotion.ErrUnknownScope,
		promotion.ErrEmptyTarget,
		promotion.ErrInvalidTarget,
		promotion.ErrUnknownDiscountKind,
		promotion.ErrInvalidFlatAmount,
		promotion.ErrInvalidPercentage,
		promotion.ErrInvalidActiveWindow,
		catalog.ErrNegativePrice,
	} {
		if errs.Is(err, target) {
			return true
		}
	}
	return false
}
