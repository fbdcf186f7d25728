package response

import (
	"jersey-storefront/internal/usecase/queries"
)

type PromotionListResponse struct {
	Sales []queries.PromotionView `json:"sales"`
}

func FromPromotionViews(views []queries.PromotionView) *PromotionListResponse {
	if views == nil {
		views = []queries.PromotionView{}
	}
	return &PromotionListResponse{Sales: views}
}
