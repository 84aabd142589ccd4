package shopapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"go.uber.org/zap"
)

// ErrNotFound marks a 404 from the shop API; any other failure is
// transient as far as callers are concerned.
var ErrNotFound = errors.New("shop api: not found")

//go:generate mockgen -source=shopapi_client.go -destination=../mock/shopapi/shopapi_client_mock.go -package=mock

// Client consumes the remote shop API as a black-box JSON service. Every
// failure is terminal for that attempt; callers re-initiate, never retry.
type Client interface {
	ListProducts(ctx context.Context) ([]Product, error)
	GetProduct(ctx context.Context, id string) (Product, error)
	CreateOrder(ctx context.Context, req CreateOrderRequest) error
	ListOrders(ctx context.Context, email string) ([]Order, error)
}

type client struct {
	base   string
	http   *http.Client
	logger *zap.Logger
}

func NewClient(base string, httpClient *http.Client, logger *zap.Logger) Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &client{
		base:   base,
		http:   httpClient,
		logger: logger.Named("shopapi"),
	}
}

func (c *client) ListProducts(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := c.getJSON(ctx, c.base+"/products", &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *client) GetProduct(ctx context.Context, id string) (Product, error) {
	var product Product
	if err := c.getJSON(ctx, c.base+"/product/"+url.PathEscape(id), &product); err != nil {
		return Product{}, err
	}
	return product, nil
}

func (c *client) CreateOrder(ctx context.Context, req CreateOrderRequest) error {
	body, err := json.Marshal(req)
	if err != nil {
		return err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/orders", bytes.NewReader(body))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return fmt.Errorf("create order: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("create order: unexpected status %d", resp.StatusCode)
	}
	return nil
}

func (c *client) ListOrders(ctx context.Context, email string) ([]Order, error) {
	var envelope ordersEnvelope
	if err := c.getJSON(ctx, c.base+"/orders/"+url.PathEscape(email), &envelope); err != nil {
		return nil, err
	}
	return envelope.Orders, nil
}

func (c *client) getJSON(ctx context.Context, rawURL string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("shop api request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("shop api request: unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("shop api decode: %w", err)
	}
	return nil
}
