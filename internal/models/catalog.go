// ABOUTME: Product, order and customer models for the shop catalog
// ABOUTME: Includes the display mapping for product category, price and stock status

package models

import (
	"fmt"
	"strings"
)

// Product types accepted by the backend
const (
	ProductTypeCoffeeBag  = "coffee_bag"
	ProductTypeCoffeeCup  = "coffee_cup"
	ProductTypeFreeCoffee = "free_coffee"
)

// ProductTypes lists the product types in form order.
var ProductTypes = []string{ProductTypeCoffeeBag, ProductTypeCoffeeCup, ProductTypeFreeCoffee}

// Stock status labels
const (
	StatusInStock    = "In Stock"
	StatusLowStock   = "Low Stock"
	StatusOutOfStock = "Out of Stock"
)

// LowStockThreshold is the largest stock count still reported as low.
const LowStockThreshold = 50

// Product is a catalog entry as stored by the backend
type Product struct {
	ID            int      `json:"_id"`
	Name          string   `json:"name"`
	Type          string   `json:"type"`
	Description   string   `json:"description,omitempty"`
	Price         float64  `json:"price"`
	OriginalPrice float64  `json:"originalPrice,omitempty"`
	Image         string   `json:"image"`
	Features      []string `json:"features,omitempty"`
	MaxClaims     *int     `json:"max_claims,omitempty"`
	Stock         int      `json:"stock"`
}

// ProductInput is the body of POST /products and PUT /products/{id}
type ProductInput struct {
	Name          string   `json:"name"`
	Type          string   `json:"type"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	OriginalPrice float64  `json:"originalPrice"`
	Image         string   `json:"image"`
	Features      []string `json:"features"`
	MaxClaims     *int     `json:"max_claims"`
}

// Validate enforces the required product fields.
func (p ProductInput) Validate() error {
	if strings.TrimSpace(p.Name) == "" || strings.TrimSpace(p.Type) == "" ||
		strings.TrimSpace(p.Description) == "" || strings.TrimSpace(p.Image) == "" {
		return fmt.Errorf("please fill in all required fields, including an image")
	}
	if p.Price < 0 || p.OriginalPrice < 0 {
		return fmt.Errorf("prices must not be negative")
	}
	if p.MaxClaims != nil && *p.MaxClaims < 0 {
		return fmt.Errorf("max claims must not be negative")
	}
	return nil
}

// ProductRow is a product mapped for display
type ProductRow struct {
	ID       int
	Name     string
	Category string
	Price    string
	Stock    int
	Status   string
	Image    string
}

// Row maps the product to its display form.
func (p Product) Row() ProductRow {
	return ProductRow{
		ID:       p.ID,
		Name:     p.Name,
		Category: Category(p.Type),
		Price:    fmt.Sprintf("$%.2f", p.Price),
		Stock:    p.Stock,
		Status:   StockStatus(p.Stock),
		Image:    p.Image,
	}
}

// Input converts a stored product back into an editable input.
func (p Product) Input() ProductInput {
	return ProductInput{
		Name:          p.Name,
		Type:          p.Type,
		Description:   p.Description,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		Image:         p.Image,
		Features:      append([]string(nil), p.Features...),
		MaxClaims:     p.MaxClaims,
	}
}

// Category formats a product type as a title-cased category ("coffee_bag" -> "Coffee Bag").
func Category(productType string) string {
	words := strings.Fields(strings.ReplaceAll(productType, "_", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// StockStatus maps a stock count to its status label.
func StockStatus(stock int) string {
	switch {
	case stock <= 0:
		return StatusOutOfStock
	case stock <= LowStockThreshold:
		return StatusLowStock
	default:
		return StatusInStock
	}
}

// Order statuses
const (
	OrderProcessing = "Processing"
	OrderShipped    = "Shipped"
	OrderDelivered  = "Delivered"
	OrderCancelled  = "Cancelled"
)

// Order is a customer order
type Order struct {
	ID       string   `json:"id"`
	Customer string   `json:"customer"`
	Email    string   `json:"email"`
	Products []string `json:"products"`
	Total    string   `json:"total"`
	Status   string   `json:"status"`
	Date     string   `json:"date"`
	Wallet   string   `json:"wallet"`
}

// Customer is a shop customer
type Customer struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Wallet     string `json:"wallet"`
	Orders     int    `json:"orders"`
	TotalSpent string `json:"totalSpent"`
	LastOrder  string `json:"lastOrder"`
	Rating     int    `json:"rating"`
	Location   string `json:"location"`
	JoinDate   string `json:"joinDate"`
}

// SignRequest is the body of POST /uploads/sign
type SignRequest struct {
	ParamsToSign map[string]string `json:"paramsToSign"`
}

// SignResponse carries the upload signature
type SignResponse struct {
	Signature string `json:"signature"`
}
