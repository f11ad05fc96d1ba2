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
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// bcrypt hash of TestPassword
const passwordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

const TestPassword = "password123"

// SystemUsername matches the notification sender created at startup; ResetDB keeps it.
const SystemUsername = "system"

const DefaultCategory = "Beach"

// DBLike is satisfied by *pgxpool.Pool and pgx.Tx.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func CreateTestUser(t *testing.T, db DBLike, username, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()
	email := username + "@example.com"

	tag, err := db.Exec(ctx, `INSERT INTO users (id, username, email, password_hash, role, phone, is_active)
		VALUES ($1, $2, $3, $4, $5, '+33 6 12 34 56 78', true) ON CONFLICT (email) DO NOTHING`,
		userID, username, email, passwordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func CategoryID(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(), "SELECT id FROM categories WHERE name = $1", name).Scan(&id)
	require.NoError(t, err)
	return id
}

type OfferFixture struct {
	AdvertiserID uuid.UUID
	CategoryID   uuid.UUID
	Title        string
	Status       string
	Spots        int32
	PriceCents   int64
	StartsIn     time.Duration
}

// CreateTestOffer inserts an offer directly, bypassing moderation.
func CreateTestOffer(t *testing.T, db DBLike, f OfferFixture) uuid.UUID {
	t.Helper()

	if f.Title == "" {
		f.Title = "Summer in Lisbon"
	}
	if f.Status == "" {
		f.Status = "approved"
	}
	if f.StartsIn == 0 {
		f.StartsIn = 30 * 24 * time.Hour
	}
	start := time.Now().UTC().Add(f.StartsIn)
	start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)

	id := uuid.New()
	_, err := db.Exec(context.Background(), `INSERT INTO offers
		(id, advertiser_id, category_id, title, description, destination, price_cents, available_spots, start_date, end_date, status)
		VALUES ($1, $2, $3, $4, 'A week of surfing and sightseeing.', 'Lisbon, Portugal', $5, $6, $7, $8, $9)`,
		id, f.AdvertiserID, f.CategoryID, f.Title, f.PriceCents, f.Spots, start, start.AddDate(0, 0, 7), f.Status)
	require.NoError(t, err)
	return id
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO categories (name, description) VALUES
		    ('Beach', 'Sun and sea'),
		    ('City Break', 'Short urban trips')
		ON CONFLICT (name) DO NOTHING;
	`)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates every table except users, drops all users but the notification
// sender, then reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations', 'users')`)
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
	if _, err := pool.Exec(ctx, "DELETE FROM users WHERE username <> $1", SystemUsername); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
