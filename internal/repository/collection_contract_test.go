package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brokerdesk/brokerage-service/internal/domain"
)

// runCollectionContract exercises behaviour every backend shares.
func runCollectionContract(t *testing.T, newCollection func(t *testing.T) Collection) {
	t.Helper()

	t.Run("empty list", func(t *testing.T) {
		c := newCollection(t)
		records, err := c.List(context.Background())
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("insert replace remove", func(t *testing.T) {
		ctx := context.Background()
		c := newCollection(t)

		firstID, err := c.Insert(ctx, domain.Document{"name": "Asha", "code": "E01"})
		require.NoError(t, err)
		secondID, err := c.Insert(ctx, domain.Document{"name": "Ravi", "code": "E02"})
		require.NoError(t, err)
		assert.NotEqual(t, firstID, secondID)

		records, err := c.List(ctx)
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, firstID, records[0].ID)
		assert.Equal(t, "Asha", records[0].Document.String("name"))
		assert.Equal(t, "Ravi", records[1].Document.String("name"))

		require.NoError(t, c.Replace(ctx, secondID, domain.Document{"name": "Ravi K", "code": "E02"}))
		records, err = c.List(ctx)
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "Ravi K", records[1].Document.String("name"))

		require.NoError(t, c.Remove(ctx, firstID))
		records, err = c.List(ctx)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "Ravi K", records[0].Document.String("name"))
	})

	t.Run("stores payload as supplied", func(t *testing.T) {
		ctx := context.Background()
		c := newCollection(t)

		payload, err := domain.DecodeDocument([]byte(`{"basePrice":"not a number","employee":"missing-code","extra":{"nested":[1,2]}}`))
		require.NoError(t, err)
		_, err = c.Insert(ctx, payload)
		require.NoError(t, err)

		records, err := c.List(ctx)
		require.NoError(t, err)
		require.Len(t, records, 1)
		stored := records[0].Document.WithoutID()
		assert.Equal(t, "not a number", stored["basePrice"])
		assert.Equal(t, "missing-code", stored["employee"])
		assert.Contains(t, stored, "extra")
	})

	t.Run("ping", func(t *testing.T) {
		assert.NoError(t, newCollection(t).Ping(context.Background()))
	})
}
