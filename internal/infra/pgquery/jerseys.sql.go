package pgquery

import (
	"context"
)

const jerseyColumns = `
SELECT j.id, j.name, j.price, j.on_sale, j.sale_price,
       j.player_id, COALESCE(j.team_id, p.team_id) AS team_id, t.league
FROM jerseys j
LEFT JOIN players p ON p.id = j.player_id
LEFT JOIN teams t ON t.id = COALESCE(j.team_id, p.team_id)
`

const getJerseyByID = jerseyColumns + `WHERE j.id = $1`

func (q *Queries) GetJerseyByID(ctx context.Context, db DBTX, id int64) (JerseyRow, error) {
	row := db.QueryRow(ctx, getJerseyByID, id)
	var i JerseyRow
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Price,
		&i.OnSale,
		&i.SalePrice,
		&i.PlayerID,
		&i.TeamID,
		&i.League,
	)
	return i, err
}

const listJerseysByIDs = jerseyColumns + `WHERE j.id = ANY($1::bigint[]) ORDER BY j.id`

func (q *Queries) ListJerseysByIDs(ctx context.Context, db DBTX, ids []int64) ([]JerseyRow, error) {
	rows, err := db.Query(ctx, listJerseysByIDs, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []JerseyRow{}
	for rows.Next() {
		var i JerseyRow
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.Price,
			&i.OnSale,
			&i.SalePrice,
			&i.PlayerID,
			&i.TeamID,
			&i.League,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
