package converter

import (
	"jersey-storefront/internal/domain/catalog"
	"jersey-storefront/internal/infra/pgquery"
	"jersey-storefront/internal/pkg/errs"
	"jersey-storefront/internal/pkg/pgconv"
)

func ProductFromJerseyRow(row pgquery.JerseyRow) (catalog.Product, error) {
	price, err := pgconv.DecimalFromNumeric(row.Price)
	if err != nil {
		return catalog.Product{}, errs.Wrapf(err, "jersey %d price", row.ID)
	}
	salePrice, err := pgconv.DecimalPtrFromNumeric(row.SalePrice)
	if err != nil {
		return catalog.Product{}, errs.Wrapf(err, "jersey %d sale price", row.ID)
	}

	var league string
	if row.League.Valid {
		league = row.League.String
	}

	return catalog.NewProduct(
		row.ID,
		row.Name,
		price,
		row.PlayerID.Int64,
		row.TeamID.Int64,
		league,
		row.OnSale,
		salePrice,
	)
}
