package pgquery

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// JerseyRow is a jersey joined with its player, team and league.
type JerseyRow struct {
	ID        int64
	Name      string
	Price     pgtype.Numeric
	OnSale    bool
	SalePrice pgtype.Numeric
	PlayerID  pgtype.Int8
	TeamID    pgtype.Int8
	League    pgtype.Text
}

type Sale struct {
	ID            uuid.UUID
	SaleType      string
	TargetValue   string
	DiscountType  string
	DiscountValue pgtype.Numeric
	StartDate     pgtype.Timestamptz
	EndDate       pgtype.Timestamptz
	IsActive      bool
	CreatedAt     pgtype.Timestamptz
	UpdatedAt     pgtype.Timestamptz
}
