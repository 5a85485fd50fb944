package repository

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/hansik/baedal/internal/domain/model"
)

// Default catalog seed size.
const defaultCatalogSize = 100

// Catalog implements Products over a fixed in-memory product list. The
// catalog is generated once at construction and never mutated, but reads
// still take the lock so the store stays safe if writes are ever added.
type Catalog struct {
	mu       sync.RWMutex
	products []model.Product
}

// CatalogOption applies a configuration option to the Catalog.
type CatalogOption func(*Catalog)

// WithCatalogSize generates n sequential products named product-<i> with
// price i*1000.
func WithCatalogSize(n int) CatalogOption {
	return func(c *Catalog) {
		if n <= 0 {
			return
		}
		c.products = make([]model.Product, 0, n)
		for i := 1; i <= n; i++ {
			c.products = append(c.products, model.Product{
				ID:    i,
				Name:  fmt.Sprintf("product-%d", i),
				Price: i * 1000,
			})
		}
	}
}

// WithProducts seeds the catalog with an explicit product list.
func WithProducts(seed []model.Product) CatalogOption {
	return func(c *Catalog) {
		c.products = append([]model.Product(nil), seed...)
	}
}

// NewCatalog creates a product catalog. Without options it holds the
// default generated catalog.
func NewCatalog(opts ...CatalogOption) *Catalog {
	c := &Catalog{}
	for _, opt := range opts {
		opt(c)
	}
	if c.products == nil {
		WithCatalogSize(defaultCatalogSize)(c)
	}
	return c
}

// List returns the full catalog in id order.
func (c *Catalog) List(_ context.Context) []model.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]model.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Search returns products whose name contains keyword, in catalog order.
// Matching is case-sensitive substring containment.
func (c *Catalog) Search(_ context.Context, keyword string) []model.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]model.Product, 0)
	for _, p := range c.products {
		if strings.Contains(p.Name, keyword) {
			out = append(out, p)
		}
	}
	return out
}

// Len returns the catalog size.
func (c *Catalog) Len(_ context.Context) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.products)
}
