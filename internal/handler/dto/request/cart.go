package request

import (
	"strings"

	"jersey-storefront/internal/domain/cart"
	"jersey-storefront/internal/usecase/commands"
)

const defaultQuantity = 1

type AddCartItemRequest struct {
	ProductID int64  `json:"product_id" binding:"required,gt=0"`
	Size      string `json:"size" binding:"required"`
	// Defaults to 1 when omitted. Zero adds nothing.
	Quantity *int `json:"quantity,omitempty" binding:"omitempty,min=0"`
}

func (r AddCartItemRequest) ToCommand() commands.AddStockItemRequest {
	return commands.AddStockItemRequest{
		ProductID: r.ProductID,
		Size:      r.Size,
		Quantity:  quantityOrDefault(r.Quantity),
	}
}

type AddCustomCartItemRequest struct {
	Design         string `json:"design" binding:"required,max=50"`
	PlayerName     string `json:"player_name" binding:"required,max=30"`
	PlayerNumber   string `json:"player_number" binding:"required,max=2,numeric"`
	PrimaryColor   string `json:"primary_color" binding:"required,max=20"`
	SecondaryColor string `json:"secondary_color" binding:"omitempty,max=20"`
	NameColor      string `json:"name_color" binding:"omitempty,max=20"`
	NumberColor    string `json:"number_color" binding:"omitempty,max=20"`
	FrontText      string `json:"front_text" binding:"omitempty,max=30"`
	FrontTextType  string `json:"front_text_type" binding:"omitempty,max=20"`
	Size           string `json:"size" binding:"required"`
	Quantity       *int   `json:"quantity,omitempty" binding:"omitempty,min=0"`
}

func (r AddCustomCartItemRequest) ToCommand() commands.AddCustomItemRequest {
	return commands.AddCustomItemRequest{
		Descriptor: cart.CustomDescriptor{
			Design:         strings.TrimSpace(r.Design),
			PlayerName:     strings.TrimSpace(r.PlayerName),
			PlayerNumber:   strings.TrimSpace(r.PlayerNumber),
			PrimaryColor:   strings.TrimSpace(r.PrimaryColor),
			SecondaryColor: strings.TrimSpace(r.SecondaryColor),
			NameColor:      strings.TrimSpace(r.NameColor),
			NumberColor:    strings.TrimSpace(r.NumberColor),
			FrontText:      strings.TrimSpace(r.FrontText),
			FrontTextType:  strings.TrimSpace(r.FrontTextType),
		},
		Size:     r.Size,
		Quantity: quantityOrDefault(r.Quantity),
	}
}

type UpdateCartItemRequest struct {
	// Zero or less removes the line.
	Quantity *int `json:"quantity" binding:"required"`
}

func quantityOrDefault(q *int) int {
	if q == nil {
		return defaultQuantity
	}
	return *q
}
