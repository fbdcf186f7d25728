package errs

import "errors"

// Sentinel errors shared by the usecase and handler layers
var (
	// Cart errors
	ErrCartLineNotFound = errors.New("cart line not found")
	ErrCartPersist      = errors.New("cart could not be persisted")
	ErrInvalidCartItem  = errors.New("invalid cart item")

	// Catalog errors
	ErrProductNotFound = errors.New("product not found")

	// Promotion errors
	ErrPromotionNotFound = errors.New("promotion not found")
	ErrInvalidPromotion  = errors.New("invalid promotion")
	// A stored promotion whose rules no longer parse; PUT rewrites it.
	ErrStoredPromotionMalformed = errors.New("stored promotion is malformed")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
