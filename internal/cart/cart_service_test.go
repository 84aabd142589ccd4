package cart_test

import (
	"context"
	"testing"

	"go-storefront/internal/cart"
	"go-storefront/internal/catalog"
	"go-storefront/internal/events"
	mock "go-storefront/internal/mock/shopapi"
	"go-storefront/internal/session"
	"go-storefront/internal/shopapi"
	"go-storefront/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type cartFixture struct {
	svc    cart.Service
	outbox *events.MemOutbox
	store  *store.MemStore
}

func newCartFixture(t *testing.T, products []shopapi.Product) cartFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	api := mock.NewMockClient(ctrl)
	api.EXPECT().ListProducts(gomock.Any()).Return(products, nil)

	cat := catalog.NewService(api, nil)
	require.NoError(t, cat.Refresh(context.Background()))

	st := store.NewMemStore()
	outbox := events.NewMemOutbox()
	svc := cart.NewService(cart.Deps{
		Sessions: session.NewManager(st, nil),
		Catalog:  cat,
		Events:   events.NewPublisher(outbox, nil),
	})
	return cartFixture{svc: svc, outbox: outbox, store: st}
}

func TestCartService_AddItem(t *testing.T) {
	ctx := context.Background()
	f := newCartFixture(t, []shopapi.Product{
		{ID: "p1", Name: "Denim Jacket", Category: "men", Price: 60},
	})

	t.Run("success", func(t *testing.T) {
		item, err := f.svc.AddItem(ctx, "sess-1", cart.AddItemRequest{ProductID: "p1", Size: "M"})
		assert.NoError(t, err)
		assert.Equal(t, "p1-M", item.ID)
		assert.Equal(t, 1, item.Quantity)
	})

	t.Run("repeat_increments", func(t *testing.T) {
		item, err := f.svc.AddItem(ctx, "sess-1", cart.AddItemRequest{ProductID: "p1", Size: "M"})
		assert.NoError(t, err)
		assert.Equal(t, 2, item.Quantity)
		assert.Equal(t, 2, f.svc.Count(ctx, "sess-1"))
	})

	t.Run("missing_product_id_rejected", func(t *testing.T) {
		_, err := f.svc.AddItem(ctx, "sess-1", cart.AddItemRequest{})
		assert.ErrorIs(t, err, cart.ErrInvalidInput)
	})

	t.Run("publishes_activity_event", func(t *testing.T) {
		pending := f.outbox.Pending()
		require.NotEmpty(t, pending)
		assert.Equal(t, events.TypeCartUpdated, pending[0].Type)
	})
}

func TestCartService_Detail(t *testing.T) {
	ctx := context.Background()
	f := newCartFixture(t, []shopapi.Product{
		{ID: "p1", Name: "Denim Jacket", Category: "men", Price: 100},
		{ID: "p2", Name: "Headphones", Category: "electronics", Price: 50},
	})

	_, err := f.svc.AddItem(ctx, "sess-1", cart.AddItemRequest{ProductID: "p1", Size: "M"})
	require.NoError(t, err)
	f.svc.UpdateQty(ctx, "sess-1", "p1-M", 2)
	_, err = f.svc.AddItem(ctx, "sess-1", cart.AddItemRequest{ProductID: "p2"})
	require.NoError(t, err)
	// a line item referencing a product outside the catalog snapshot
	_, err = f.svc.AddItem(ctx, "sess-1", cart.AddItemRequest{ProductID: "ghost"})
	require.NoError(t, err)

	detail := f.svc.Detail(ctx, "sess-1")

	// ghost is excluded from the view but still in the cart
	require.Len(t, detail.Items, 2)
	assert.Equal(t, 3, detail.ItemCount)
	assert.Equal(t, 4, f.svc.Count(ctx, "sess-1"))

	// subtotal 250 -> discount 20, free delivery, total 230
	assert.Equal(t, 250.0, detail.Quote.Subtotal)
	assert.Equal(t, 20.0, detail.Quote.Discount)
	assert.Equal(t, 0.0, detail.Quote.DeliveryCharge)
	assert.Equal(t, 230.0, detail.Quote.Total)
}

func TestCartService_Detail_SmallCart(t *testing.T) {
	ctx := context.Background()
	f := newCartFixture(t, []shopapi.Product{
		{ID: "p1", Name: "Tee", Category: "men", Price: 80},
	})

	_, err := f.svc.AddItem(ctx, "sess-1", cart.AddItemRequest{ProductID: "p1", Size: "L"})
	require.NoError(t, err)

	detail := f.svc.Detail(ctx, "sess-1")
	// subtotal 80 -> no discount, 10 delivery, total 90
	assert.Equal(t, 80.0, detail.Quote.Subtotal)
	assert.Equal(t, 0.0, detail.Quote.Discount)
	assert.Equal(t, 10.0, detail.Quote.DeliveryCharge)
	assert.Equal(t, 90.0, detail.Quote.Total)
}

func TestCartService_Detail_EmptyCart(t *testing.T) {
	f := newCartFixture(t, nil)
	detail := f.svc.Detail(context.Background(), "sess-1")
	assert.Empty(t, detail.Items)
	assert.Equal(t, 0.0, detail.Quote.Total)
}

func TestCartService_Clear(t *testing.T) {
	ctx := context.Background()
	f := newCartFixture(t, []shopapi.Product{
		{ID: "p1", Name: "Tee", Category: "men", Price: 10},
	})

	_, err := f.svc.AddItem(ctx, "sess-1", cart.AddItemRequest{ProductID: "p1", Size: "S"})
	require.NoError(t, err)
	f.svc.Clear(ctx, "sess-1")

	assert.Equal(t, 0, f.svc.Count(ctx, "sess-1"))

	// persisted snapshot is the empty collection, not an absent key
	raw, ok := f.store.Raw("sess-1", store.KeyCart)
	require.True(t, ok)
	assert.JSONEq(t, `[]`, string(raw))
}
