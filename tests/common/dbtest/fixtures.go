//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// Reference catalog seeded before every sub test.
const (
	TeamArsenal    int64 = 1
	TeamRealMadrid int64 = 2

	PlayerSaka       int64 = 1
	PlayerBellingham int64 = 2

	// 1000.00, Saka / Arsenal / Premier League
	JerseySakaHome int64 = 1
	// 1200.00 with a 999.00 sale hint, Bellingham / Real Madrid / La Liga
	JerseyBellinghamAway int64 = 2
	// 500.00, no player, Arsenal
	JerseyArsenalTraining int64 = 3
)

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO teams (id, name, league) VALUES
		    (1, 'Arsenal', 'Premier League'),
		    (2, 'Real Madrid', 'La Liga')
		ON CONFLICT (id) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO players (id, name, team_id) VALUES
		    (1, 'Bukayo Saka', 1),
		    (2, 'Jude Bellingham', 2)
		ON CONFLICT (id) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO jerseys (id, name, player_id, team_id, price, on_sale, sale_price) VALUES
		    (1, 'Saka Home 24/25', 1, NULL, 1000.00, FALSE, NULL),
		    (2, 'Bellingham Away 24/25', 2, NULL, 1200.00, TRUE, 999.00),
		    (3, 'Arsenal Training Top', NULL, 1, 500.00, FALSE, NULL)
		ON CONFLICT (id) DO NOTHING;
	`)
	return err
}

// DBLike is a pool or an open transaction.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// CreateTestSale stores a sale row as-is, without application validation.
func CreateTestSale(t *testing.T, db DBLike, saleType, targetValue, discountType, discountValue string, start, end time.Time, active bool) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO sales (id, sale_type, target_value, discount_type, discount_value, start_date, end_date, is_active)
		VALUES ($1, $2, $3, $4, $5::numeric, $6, $7, $8)`,
		id, saleType, targetValue, discountType, discountValue, start, end, active)
	require.NoError(t, err)
	return id
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
