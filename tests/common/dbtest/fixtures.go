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
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// TestPassword is the plain password behind TestPasswordHash.
const TestPassword = "password123"

// TestPasswordHash is the bcrypt hash of TestPassword.
const TestPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO users (id, email, password_hash, role, is_active) VALUES ($1, $2, $3, $4, true) ON CONFLICT (email) DO NOTHING",
		userID, email, TestPasswordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func CreateTestProduct(t *testing.T, db DBLike, code, title, price string, sortOrder int) uuid.UUID {
	t.Helper()

	id := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO products (id, code, title, price, sort_order) VALUES ($1, $2, $3, $4, $5) ON CONFLICT (code) DO NOTHING",
		id, code, title, price, sortOrder)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM products WHERE code = $1", code).Scan(&id)
	}

	return id
}

// StartFlashOffer activates the singleton offer at now with the given capacity.
func StartFlashOffer(t *testing.T, db DBLike, maxClaims, durationSeconds int, now time.Time) {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		UPDATE flash_offers
		SET is_active = true, max_claims = $1, claimed_count = 0, duration_seconds = $2,
		    started_at = $3, ends_at = $3 + make_interval(secs => $2), updated_at = now()
		WHERE id = 1`, maxClaims, durationSeconds, now)
	require.NoError(t, err)
}

// SeedReferenceData restores the promotion singletons and the catalog used by the suites.
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO flash_offers (id) VALUES (1) ON CONFLICT (id) DO NOTHING;
		INSERT INTO checkout_discounts (id) VALUES (1) ON CONFLICT (id) DO NOTHING;
		INSERT INTO time_challenge_settings (id) VALUES (1) ON CONFLICT (id) DO NOTHING;
		INSERT INTO products (code, title, label, price, sort_order) VALUES
		    ('box-s', 'Mystery box S', 'S', '₴250', 1),
		    ('box-m', 'Mystery box M', 'M', '₴500', 2),
		    ('box-l', 'Mystery box L', 'L', '₴900', 3)
		ON CONFLICT (code) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	return nil
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
		    AND tablename NOT IN ('atlas_schema_revisions')`)
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
