package shopapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-storefront/internal/shopapi"

	"github.com/stretchr/testify/assert"
)

func TestClient_ListProducts(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/products", r.URL.Path)
			_ = json.NewEncoder(w).Encode([]shopapi.Product{
				{ID: "p1", Name: "Denim Jacket", Category: "men", Price: 59.99},
				{ID: "p2", Name: "Headphones", Category: "electronics", Price: 120, Rating: 4.5},
			})
		}))
		defer srv.Close()

		c := shopapi.NewClient(srv.URL, srv.Client(), nil)
		products, err := c.ListProducts(context.Background())
		assert.NoError(t, err)
		assert.Len(t, products, 2)
		assert.Equal(t, "p1", products[0].ID)
		assert.Equal(t, 4.5, products[1].Rating)
	})

	t.Run("non_200_is_error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		c := shopapi.NewClient(srv.URL, srv.Client(), nil)
		_, err := c.ListProducts(context.Background())
		assert.Error(t, err)
	})
}

func TestClient_GetProduct(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/product/p1", r.URL.Path)
			_ = json.NewEncoder(w).Encode(shopapi.Product{ID: "p1", Name: "Denim Jacket", Price: 59.99})
		}))
		defer srv.Close()

		c := shopapi.NewClient(srv.URL, srv.Client(), nil)
		product, err := c.GetProduct(context.Background(), "p1")
		assert.NoError(t, err)
		assert.Equal(t, "Denim Jacket", product.Name)
	})

	t.Run("missing_product_is_not_found", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		c := shopapi.NewClient(srv.URL, srv.Client(), nil)
		_, err := c.GetProduct(context.Background(), "nope")
		assert.ErrorIs(t, err, shopapi.ErrNotFound)
	})
}

func TestClient_CreateOrder(t *testing.T) {
	t.Run("success_posts_payload", func(t *testing.T) {
		var got shopapi.CreateOrderRequest
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/orders", r.URL.Path)
			_ = json.NewDecoder(r.Body).Decode(&got)
			w.WriteHeader(http.StatusCreated)
		}))
		defer srv.Close()

		c := shopapi.NewClient(srv.URL, srv.Client(), nil)
		err := c.CreateOrder(context.Background(), shopapi.CreateOrderRequest{
			UserEmail:       "jo@example.com",
			Items:           []shopapi.OrderItem{{ProductID: "p1", Quantity: 2, Size: "M", Price: 59.99}},
			TotalAmount:     129.98,
			DeliveryAddress: "Jo, 555-0100, 1 Main St, Springfield, IL, 62701",
		})
		assert.NoError(t, err)
		assert.Equal(t, "jo@example.com", got.UserEmail)
		assert.Len(t, got.Items, 1)
	})

	t.Run("server_error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		c := shopapi.NewClient(srv.URL, srv.Client(), nil)
		err := c.CreateOrder(context.Background(), shopapi.CreateOrderRequest{})
		assert.Error(t, err)
	})
}

func TestClient_ListOrders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/orders/jo@example.com", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"orders": []shopapi.Order{{ID: "o1", Status: "Placed", TotalAmount: 230}},
		})
	}))
	defer srv.Close()

	c := shopapi.NewClient(srv.URL, srv.Client(), nil)
	orders, err := c.ListOrders(context.Background(), "jo@example.com")
	assert.NoError(t, err)
	assert.Len(t, orders, 1)
	assert.Equal(t, "Placed", orders[0].Status)
}
