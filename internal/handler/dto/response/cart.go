package response

import (
	"jersey-storefront/internal/domain/cart"
	"jersey-storefront/internal/usecase/commands"
	"jersey-storefront/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

type CartResponse struct {
	Lines      []queries.CartLineView `json:"lines"`
	ItemCount  int                    `json:"item_count"`
	Total      decimal.Decimal        `json:"total"`
	PricesLive bool                   `json:"prices_live"`
}

func FromCartView(v *queries.CartView) *CartResponse {
	return &CartResponse{
		Lines:      v.Lines,
		ItemCount:  v.ItemCount,
		Total:      v.Total,
		PricesLive: v.PricesLive,
	}
}

type CartLineResponse struct {
	ID        string                 `json:"id"`
	Kind      string                 `json:"kind"`
	ProductID *int64                 `json:"product_id,omitempty"`
	Custom    *cart.CustomDescriptor `json:"custom,omitempty"`
	Size      string                 `json:"size"`
	Quantity  int                    `json:"quantity"`
	UnitPrice decimal.Decimal        `json:"unit_price"`
}

type CartMutationResponse struct {
	Line      *CartLineResponse `json:"line,omitempty"`
	ItemCount int               `json:"item_count"`
}

func FromCartLineResult(r *commands.CartLineResult) *CartMutationResponse {
	resp := &CartMutationResponse{ItemCount: r.ItemCount}
	if r.Line == nil {
		return resp
	}
	line := &CartLineResponse{
		ID:        r.Line.ID,
		Kind:      string(r.Line.Kind),
		Custom:    r.Line.Custom,
		Size:      r.Line.Size.String(),
		Quantity:  r.Line.Quantity,
		UnitPrice: r.Line.UnitPrice,
	}
	if r.Line.Kind == cart.KindStock {
		id := r.Line.ProductID
		line.ProductID = &id
	}
	resp.Line = line
	return resp
}

func FromCartCountResult(r *commands.CartCountResult) *CartMutationResponse {
	return &CartMutationResponse{ItemCount: r.ItemCount}
}
