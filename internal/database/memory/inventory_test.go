package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GildedRose_Go/internal/domain"
)

func TestInventoryRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("insert assigns sequential IDs", func(t *testing.T) {
		repo := NewInventoryRepository()

		item := domain.NewItem("foo", 5, 20)
		id1, err := repo.InsertItem(ctx, &item)
		require.NoError(t, err)
		id2, err := repo.InsertItem(ctx, &item)
		require.NoError(t, err)

		assert.Equal(t, 1, id1)
		assert.Equal(t, 2, id2)

		count, err := repo.CountItems(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("batch insert continues the ID sequence", func(t *testing.T) {
		repo := NewInventoryRepository()
		first := domain.NewItem("foo", 1, 1)
		_, err := repo.InsertItem(ctx, &first)
		require.NoError(t, err)

		ids, err := repo.InsertItems(ctx, []domain.Item{
			domain.NewItem("bar", 2, 2),
			domain.NewItem("baz", 3, 3),
		})
		require.NoError(t, err)
		assert.Equal(t, []int{2, 3}, ids)

		got, err := repo.GetItemByID(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, "baz", got.Name)
	})

	t.Run("returned items do not alias storage", func(t *testing.T) {
		repo := NewInventoryRepository()
		item := domain.NewItem("foo", 5, 20)
		_, err := repo.InsertItem(ctx, &item)
		require.NoError(t, err)

		items, err := repo.GetAllItems(ctx)
		require.NoError(t, err)
		items[0].Quality = 0

		stored, err := repo.GetItemByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 20, stored.Quality)
	})

	t.Run("missing item", func(t *testing.T) {
		repo := NewInventoryRepository()

		_, err := repo.GetItemByID(ctx, 99)
		assert.ErrorIs(t, err, domain.ErrItemNotFound)
	})

	t.Run("save day stores items and counter", func(t *testing.T) {
		repo := NewInventoryRepository()
		item := domain.NewItem("Aged Brie", 2, 0)
		_, err := repo.InsertItem(ctx, &item)
		require.NoError(t, err)

		items, err := repo.GetAllItems(ctx)
		require.NoError(t, err)
		items[0].SellIn = 1
		items[0].Quality = 1

		require.NoError(t, repo.SaveDay(ctx, 1, items))

		day, err := repo.GetCurrentDay(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, day)

		stored, err := repo.GetItemByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 1, stored.SellIn)
		assert.Equal(t, 1, stored.Quality)
	})

	t.Run("save day with unknown ID changes nothing", func(t *testing.T) {
		repo := NewInventoryRepository()
		item := domain.NewItem("foo", 5, 20)
		_, err := repo.InsertItem(ctx, &item)
		require.NoError(t, err)

		err = repo.SaveDay(ctx, 4, []domain.Item{
			{ID: 1, Name: "foo", SellIn: 4, Quality: 19},
			{ID: 7, Name: "ghost"},
		})
		assert.ErrorIs(t, err, domain.ErrItemNotFound)

		day, _ := repo.GetCurrentDay(ctx)
		assert.Equal(t, 0, day)
		stored, _ := repo.GetItemByID(ctx, 1)
		assert.Equal(t, 20, stored.Quality)
	})
}
