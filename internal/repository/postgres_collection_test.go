package repository

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brokerdesk/brokerage-service/internal/domain"
)

const testDocumentsDDL = `
CREATE TABLE IF NOT EXISTS documents (
    collection TEXT        NOT NULL,
    id         UUID        NOT NULL,
    seq        BIGSERIAL   NOT NULL,
    body       JSONB       NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    PRIMARY KEY (collection, id)
)`

func newTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN not set")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, testDocumentsDDL)
	require.NoError(t, err)
	return pool
}

func TestPostgresCollection_Contract(t *testing.T) {
	pool := newTestPool(t)
	runCollectionContract(t, func(t *testing.T) Collection {
		return NewPostgresCollection(pool, "test_"+uuid.NewString())
	})
}

func TestPostgresCollection_UnknownIDIsSilent(t *testing.T) {
	pool := newTestPool(t)
	ctx := context.Background()
	c := NewPostgresCollection(pool, "test_"+uuid.NewString())

	id, err := c.Insert(ctx, domain.Document{"code": "E01", domain.IDField: "ignored"})
	require.NoError(t, err)

	assert.NoError(t, c.Replace(ctx, uuid.NewString(), domain.Document{"code": "X"}))
	assert.NoError(t, c.Replace(ctx, "0", domain.Document{"code": "X"}))
	assert.NoError(t, c.Remove(ctx, uuid.NewString()))

	records, err := c.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, id, records[0].ID)
	assert.Equal(t, id, records[0].Document[domain.IDField])
	assert.Equal(t, "E01", records[0].Document.String("code"))
}
