package repository

import (
	"context"
	"testing"
	"time"

	"quotely/internal/domain/entities"
	"quotely/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDraft() entities.Quotation {
	return entities.Quotation{
		Lines: []entities.QuotationLine{{
			Product:           entities.Product{ID: "p1", Name: "Tee", MOQ: 100, Increment: 50},
			SelectedVariation: entities.ProductVariation{ID: "v1", Size: "L", BasePrice: decimal.RequireFromString("49.995")},
			Quantity:          150,
			Fees:              []entities.Fee{},
		}},
		Details: entities.QuotationDetails{ClientName: "Globex"},
	}
}

func exerciseDraftStore(t *testing.T, store interfaces.IDraftStore) {
	t.Helper()
	ctx := context.Background()

	empty, err := store.Load(ctx, "sid")
	require.NoError(t, err)
	assert.Empty(t, empty.Lines)

	require.NoError(t, store.Save(ctx, "sid", sampleDraft()))
	got, err := store.Load(ctx, "sid")
	require.NoError(t, err)
	require.Len(t, got.Lines, 1)
	assert.Equal(t, 150, got.Lines[0].Quantity)
	assert.True(t, got.Lines[0].SelectedVariation.BasePrice.Equal(decimal.RequireFromString("49.995")))
	assert.NotNil(t, got.Lines[0].Fees)
	assert.Equal(t, "Globex", got.Details.ClientName)

	require.NoError(t, store.Clear(ctx, "sid"))
	cleared, err := store.Load(ctx, "sid")
	require.NoError(t, err)
	assert.Empty(t, cleared.Lines)
}

func TestMemoryDraftStore(t *testing.T) {
	exerciseDraftStore(t, NewMemoryDraftStore(time.Hour))
}

func TestMemoryDraftStore_NoAliasing(t *testing.T) {
	store := NewMemoryDraftStore(0)
	ctx := context.Background()
	q := sampleDraft()
	require.NoError(t, store.Save(ctx, "sid", q))

	q.Lines[0].Quantity = 999
	got, err := store.Load(ctx, "sid")
	require.NoError(t, err)
	assert.Equal(t, 150, got.Lines[0].Quantity)
}

func TestRedisDraftStore(t *testing.T) {
	mr, client := newMiniredisClient(t)
	exerciseDraftStore(t, NewRedisDraftStore(client, time.Hour))

	require.NoError(t, mr.Set(draftKeyPrefix+"broken", "{not json"))
	_, err := NewRedisDraftStore(client, time.Hour).Load(context.Background(), "broken")
	assert.Error(t, err)
}
