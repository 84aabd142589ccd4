package catalog_test

import (
	"context"
	"testing"

	"go-storefront/internal/catalog"
	mock "go-storefront/internal/mock/shopapi"
	"go-storefront/internal/shopapi"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func fixtureProducts() []shopapi.Product {
	return []shopapi.Product{
		{ID: "p1", Name: "Denim Jacket", Category: "men", Price: 59.99},
		{ID: "p2", Name: "Summer Dress", Category: "women", Price: 39.99, Rating: 4.2},
		{ID: "p3", Name: "Headphones", Category: "electronics", Price: 120, Rating: 4.5},
	}
}

func TestCatalog_Refresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mock.NewMockClient(ctrl)
	svc := catalog.NewService(api, nil)
	ctx := context.Background()

	t.Run("success_replaces_collection", func(t *testing.T) {
		api.EXPECT().ListProducts(ctx).Return(fixtureProducts(), nil)

		err := svc.Refresh(ctx)
		assert.NoError(t, err)
		assert.Len(t, svc.All(), 3)
	})

	t.Run("failure_keeps_stale_collection", func(t *testing.T) {
		api.EXPECT().ListProducts(ctx).Return(nil, assert.AnError)

		err := svc.Refresh(ctx)
		assert.ErrorIs(t, err, catalog.ErrRefreshFailed)
		assert.Len(t, svc.All(), 3)
	})
}

func TestCatalog_FindByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mock.NewMockClient(ctrl)
	svc := catalog.NewService(api, nil)
	ctx := context.Background()

	api.EXPECT().ListProducts(ctx).Return(fixtureProducts(), nil)
	assert.NoError(t, svc.Refresh(ctx))

	t.Run("cache_hit", func(t *testing.T) {
		p, err := svc.FindByID(ctx, "p2")
		assert.NoError(t, err)
		assert.Equal(t, "Summer Dress", p.Name)
	})

	t.Run("cache_miss_falls_back_to_api", func(t *testing.T) {
		api.EXPECT().
			GetProduct(ctx, "p9").
			Return(shopapi.Product{ID: "p9", Name: "Sneakers"}, nil)

		p, err := svc.FindByID(ctx, "p9")
		assert.NoError(t, err)
		assert.Equal(t, "Sneakers", p.Name)

		// fallback result is not inserted into the cache
		assert.Len(t, svc.All(), 3)
	})

	t.Run("miss_everywhere_is_not_found", func(t *testing.T) {
		api.EXPECT().GetProduct(ctx, "nope").Return(shopapi.Product{}, shopapi.ErrNotFound)

		_, err := svc.FindByID(ctx, "nope")
		assert.ErrorIs(t, err, catalog.ErrProductNotFound)
	})

	t.Run("fallback_upstream_failure_is_not_a_miss", func(t *testing.T) {
		api.EXPECT().GetProduct(ctx, "p9").Return(shopapi.Product{}, assert.AnError)

		_, err := svc.FindByID(ctx, "p9")
		assert.ErrorIs(t, err, catalog.ErrLookupFailed)
	})
}

func TestCatalog_ListByCategory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mock.NewMockClient(ctrl)
	svc := catalog.NewService(api, nil)
	ctx := context.Background()

	api.EXPECT().ListProducts(ctx).Return(fixtureProducts(), nil)
	assert.NoError(t, svc.Refresh(ctx))

	t.Run("category_match", func(t *testing.T) {
		got := svc.ListByCategory("men")
		assert.Len(t, got, 1)
		assert.Equal(t, "p1", got[0].ID)
	})

	t.Run("all_sentinel_returns_everything", func(t *testing.T) {
		assert.Len(t, svc.ListByCategory("all"), 3)
		assert.Len(t, svc.ListByCategory(""), 3)
	})

	t.Run("unknown_category_is_empty", func(t *testing.T) {
		assert.Empty(t, svc.ListByCategory("furniture"))
	})
}
