package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/require"

	"storefront/internal/db"
	"storefront/internal/models"
)

// envelope is the decoded standard response.
type envelope struct {
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`
	Error  string          `json:"error"`
}

func doRequest(t *testing.T, app *fiber.App, method, path, body string) (*http.Response, envelope) {
	t.Helper()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env envelope
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &env), "body: %s", raw)
	}
	return resp, env
}

// memStore is an in-memory implementation of every store interface.
type memStore struct {
	mu       sync.Mutex
	products []models.Product
	orders   []models.Order
	cart     []models.CartItem
	nextID   int64
	err      error
}

func newMemStore() *memStore {
	return &memStore{
		products: []models.Product{
			{ID: 1, Name: "Cotton T-Shirt", Price: 499, Stock: 50, Category: "clothing"},
			{ID: 2, Name: "Denim Pants", Price: 1299, Stock: 30, Category: "clothing"},
			{ID: 4, Name: "Smart Watch", Price: 3999, Stock: 15, Category: "electronics"},
		},
		nextID: 100,
	}
}

func (s *memStore) ListProducts(_ context.Context, category string) ([]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	out := []models.Product{}
	for _, p := range s.products {
		if category == "" || strings.EqualFold(p.Category, category) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *memStore) GetProductByID(_ context.Context, id int64) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	for _, p := range s.products {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, db.ErrProductNotFound
}

func (s *memStore) CreateOrder(_ context.Context, o *models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.nextID++
	o.ID = s.nextID
	o.CreatedAt = time.Now()
	s.orders = append(s.orders, *o)
	return nil
}

func (s *memStore) GetOrderByID(_ context.Context, id int64) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	for _, o := range s.orders {
		if o.ID == id {
			return &o, nil
		}
	}
	return nil, db.ErrOrderNotFound
}

func (s *memStore) AddCartItem(_ context.Context, item *models.CartItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	found := false
	for _, p := range s.products {
		if p.ID == item.ProductID {
			found = true
		}
	}
	if !found {
		return db.ErrProductNotFound
	}
	s.nextID++
	item.ID = s.nextID
	item.AddedAt = time.Now()
	s.cart = append(s.cart, *item)
	return nil
}

func (s *memStore) ListCartItems(_ context.Context, sessionID string) ([]models.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	out := []models.CartItem{}
	for _, item := range s.cart {
		if item.SessionID == sessionID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (s *memStore) RemoveCartItem(_ context.Context, sessionID string, itemID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	for i, item := range s.cart {
		if item.ID == itemID && item.SessionID == sessionID {
			s.cart = append(s.cart[:i], s.cart[i+1:]...)
			return nil
		}
	}
	return db.ErrCartItemNotFound
}

func (s *memStore) ClearCart(_ context.Context, sessionID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return 0, s.err
	}
	kept := s.cart[:0]
	var n int64
	for _, item := range s.cart {
		if item.SessionID == sessionID {
			n++
			continue
		}
		kept = append(kept, item)
	}
	s.cart = kept
	return n, nil
}
