package wishlist_test

import (
	"context"
	"testing"

	"go-storefront/internal/catalog"
	"go-storefront/internal/events"
	mock "go-storefront/internal/mock/shopapi"
	"go-storefront/internal/session"
	"go-storefront/internal/shopapi"
	"go-storefront/internal/store"
	"go-storefront/internal/wishlist"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newWishlistService(t *testing.T) (wishlist.Service, *session.Manager) {
	t.Helper()
	ctrl := gomock.NewController(t)

	api := mock.NewMockClient(ctrl)
	api.EXPECT().ListProducts(gomock.Any()).Return([]shopapi.Product{
		{ID: "p1", Name: "Denim Jacket", Category: "men", Price: 60},
	}, nil)

	cat := catalog.NewService(api, nil)
	require.NoError(t, cat.Refresh(context.Background()))

	sessions := session.NewManager(store.NewMemStore(), nil)
	svc := wishlist.NewService(wishlist.Deps{
		Sessions: sessions,
		Catalog:  cat,
		Events:   events.NewPublisher(events.NewMemOutbox(), nil),
	})
	return svc, sessions
}

func TestWishlistService_Toggle(t *testing.T) {
	ctx := context.Background()
	svc, _ := newWishlistService(t)

	t.Run("adds_then_removes", func(t *testing.T) {
		res, err := svc.Toggle(ctx, "sess-1", wishlist.ToggleRequest{ProductID: "p1"})
		assert.NoError(t, err)
		assert.True(t, res.InWishlist)

		res, err = svc.Toggle(ctx, "sess-1", wishlist.ToggleRequest{ProductID: "p1"})
		assert.NoError(t, err)
		assert.False(t, res.InWishlist)
		assert.Empty(t, svc.List(ctx, "sess-1").Items)
	})

	t.Run("missing_product_id_rejected", func(t *testing.T) {
		_, err := svc.Toggle(ctx, "sess-1", wishlist.ToggleRequest{})
		assert.ErrorIs(t, err, wishlist.ErrInvalidInput)
	})
}

func TestWishlistService_List(t *testing.T) {
	ctx := context.Background()
	svc, sessions := newWishlistService(t)

	_, err := svc.Toggle(ctx, "sess-1", wishlist.ToggleRequest{ProductID: "p1"})
	require.NoError(t, err)
	_, err = svc.Toggle(ctx, "sess-1", wishlist.ToggleRequest{ProductID: "ghost"})
	require.NoError(t, err)

	t.Run("unresolved_ids_excluded_from_view", func(t *testing.T) {
		res := svc.List(ctx, "sess-1")
		require.Len(t, res.Items, 1)
		assert.Equal(t, 1, res.ItemCount)
		assert.Equal(t, "p1", res.Items[0].ProductID)
		assert.Equal(t, "Denim Jacket", res.Items[0].Name)
	})

	t.Run("unresolved_ids_stay_in_wishlist", func(t *testing.T) {
		state := sessions.Get(ctx, "sess-1")
		assert.Equal(t, []string{"p1", "ghost"}, state.Wishlist())
	})
}

func TestWishlistService_MoveToCart(t *testing.T) {
	ctx := context.Background()
	svc, sessions := newWishlistService(t)

	t.Run("moves_and_persists_both", func(t *testing.T) {
		_, err := svc.Toggle(ctx, "sess-1", wishlist.ToggleRequest{ProductID: "p1"})
		require.NoError(t, err)

		item, err := svc.MoveToCart(ctx, "sess-1", "p1", "")
		assert.NoError(t, err)
		assert.Equal(t, "p1-nosize", item.ID)

		state := sessions.Get(ctx, "sess-1")
		assert.Empty(t, state.Wishlist())
		assert.Equal(t, 1, state.TotalCartItems())
	})

	t.Run("absent_id_is_rejected", func(t *testing.T) {
		_, err := svc.MoveToCart(ctx, "sess-1", "p1", "")
		assert.ErrorIs(t, err, wishlist.ErrNotInWishlist)
	})
}
