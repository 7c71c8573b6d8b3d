// ABOUTME: In-memory catalog store backing the mock backend's product CRUD
// ABOUTME: Also serves the seeded orders, customers, mint and analytics data

package services

import (
	"errors"
	"sort"
	"sync"

	"github.com/markalston/mocha-admin/internal/models"
)

// ErrProductNotFound is returned for unknown product ids.
var ErrProductNotFound = errors.New("product not found")

// Catalog holds the shop's products and read-only reference data
type Catalog struct {
	mu       sync.RWMutex
	products map[int]models.Product
	nextID   int

	data SeedData
}

// NewCatalog creates a catalog from seed data. The seed's products are copied.
func NewCatalog(seed SeedData) *Catalog {
	c := &Catalog{
		products: make(map[int]models.Product, len(seed.Products)),
		nextID:   1,
		data:     seed,
	}
	for _, p := range seed.Products {
		c.products[p.ID] = cloneProduct(p)
		if p.ID >= c.nextID {
			c.nextID = p.ID + 1
		}
	}
	return c
}

// Products returns all products ordered by id.
func (c *Catalog) Products() []models.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]models.Product, 0, len(c.products))
	for _, p := range c.products {
		out = append(out, cloneProduct(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Product returns one product.
func (c *Catalog) Product(id int) (models.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	p, ok := c.products[id]
	if !ok {
		return models.Product{}, ErrProductNotFound
	}
	return cloneProduct(p), nil
}

// CreateProduct validates input and stores it under a new id. New products
// start with the default stock level.
func (c *Catalog) CreateProduct(in models.ProductInput) (models.Product, error) {
	if err := in.Validate(); err != nil {
		return models.Product{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	p := fromInput(c.nextID, in)
	p.Stock = DefaultStock
	c.products[p.ID] = p
	c.nextID++
	return cloneProduct(p), nil
}

// UpdateProduct replaces the editable fields of a product, keeping its stock.
func (c *Catalog) UpdateProduct(id int, in models.ProductInput) (models.Product, error) {
	if err := in.Validate(); err != nil {
		return models.Product{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	old, ok := c.products[id]
	if !ok {
		return models.Product{}, ErrProductNotFound
	}
	p := fromInput(id, in)
	p.Stock = old.Stock
	c.products[id] = p
	return cloneProduct(p), nil
}

// DeleteProduct removes a product.
func (c *Catalog) DeleteProduct(id int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.products[id]; !ok {
		return ErrProductNotFound
	}
	delete(c.products, id)
	return nil
}

// Orders returns the seeded orders.
func (c *Catalog) Orders() []models.Order {
	return append([]models.Order(nil), c.data.Orders...)
}

// Customers returns the seeded customers.
func (c *Catalog) Customers() []models.Customer {
	return append([]models.Customer(nil), c.data.Customers...)
}

// Overview returns the dashboard headline stats. Products sold tracks the
// live catalog size against the seeded baseline.
func (c *Catalog) Overview() models.Overview {
	o := c.data.Overview
	c.mu.RLock()
	o.ProductsSold.Value += float64(len(c.products) - len(c.data.Products))
	c.mu.RUnlock()
	return o
}

// MonthlySales returns the sales series.
func (c *Catalog) MonthlySales() []models.MonthlySales {
	return append([]models.MonthlySales(nil), c.data.Sales...)
}

// TopProducts returns the best sellers.
func (c *Catalog) TopProducts() []models.TopProduct {
	return append([]models.TopProduct(nil), c.data.TopProducts...)
}

// Blockchain returns the on-chain stats.
func (c *Catalog) Blockchain() models.BlockchainStats {
	return c.data.Blockchain
}

// MintOverview returns the mint headline stats.
func (c *Catalog) MintOverview() []models.HighlightStat {
	return append([]models.HighlightStat(nil), c.data.MintOverview...)
}

// Collections returns the NFT collections.
func (c *Catalog) Collections() []models.Collection {
	return append([]models.Collection(nil), c.data.Collections...)
}

// RecentMints returns the recent mint feed.
func (c *Catalog) RecentMints() []models.RecentMint {
	return append([]models.RecentMint(nil), c.data.RecentMints...)
}

// KeyMetrics returns the analytics headline metrics.
func (c *Catalog) KeyMetrics() []models.HighlightStat {
	return append([]models.HighlightStat(nil), c.data.KeyMetrics...)
}

// TrafficSources returns the traffic breakdown.
func (c *Catalog) TrafficSources() []models.TrafficSource {
	return append([]models.TrafficSource(nil), c.data.Traffic...)
}

// Demographics returns the audience breakdown.
func (c *Catalog) Demographics() models.Demographics {
	return models.Demographics{
		AgeGroups:   append([]models.Share(nil), c.data.Demographics.AgeGroups...),
		DeviceTypes: append([]models.Share(nil), c.data.Demographics.DeviceTypes...),
	}
}

// Performance returns the site performance metrics.
func (c *Catalog) Performance() []models.PerformanceMetric {
	return append([]models.PerformanceMetric(nil), c.data.Performance...)
}

func fromInput(id int, in models.ProductInput) models.Product {
	return models.Product{
		ID:            id,
		Name:          in.Name,
		Type:          in.Type,
		Description:   in.Description,
		Price:         in.Price,
		OriginalPrice: in.OriginalPrice,
		Image:         in.Image,
		Features:      append([]string(nil), in.Features...),
		MaxClaims:     copyInt(in.MaxClaims),
	}
}

func cloneProduct(p models.Product) models.Product {
	p.Features = append([]string(nil), p.Features...)
	p.MaxClaims = copyInt(p.MaxClaims)
	return p
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	n := *v
	return &n
}
