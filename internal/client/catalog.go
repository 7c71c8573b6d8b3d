// ABOUTME: Catalog endpoints: products CRUD, orders and customers
// ABOUTME: All calls require a bearer token set with WithToken

package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/markalston/mocha-admin/internal/models"
)

// Products calls GET /products
func (c *Client) Products(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.do(ctx, http.MethodGet, "/products", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Product calls GET /products/{id}
func (c *Client) Product(ctx context.Context, id int) (*models.Product, error) {
	var p models.Product
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/products/%d", id), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// CreateProduct calls POST /products
func (c *Client) CreateProduct(ctx context.Context, input models.ProductInput) (*models.Product, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	var p models.Product
	if err := c.do(ctx, http.MethodPost, "/products", input, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateProduct calls PUT /products/{id}
func (c *Client) UpdateProduct(ctx context.Context, id int, input models.ProductInput) (*models.Product, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	var p models.Product
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/products/%d", id), input, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// DeleteProduct calls DELETE /products/{id}
func (c *Client) DeleteProduct(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/products/%d", id), nil, nil)
}

// Orders calls GET /orders
func (c *Client) Orders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := c.do(ctx, http.MethodGet, "/orders", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Customers calls GET /customers
func (c *Client) Customers(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	if err := c.do(ctx, http.MethodGet, "/customers", nil, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}
