// ABOUTME: Declarative route table for API endpoints
// ABOUTME: Defines all routes with their HTTP methods, handlers and per-route policies

package handlers

import "net/http"

// Route defines an API endpoint with its HTTP method and handler.
type Route struct {
	Method  string           // HTTP method (GET, POST, etc.)
	Path    string           // chi pattern (e.g., "/products/{id}")
	Handler http.HandlerFunc // Handler function

	Public    bool   // served without a bearer token
	RateLimit bool   // subject to the per-IP login limit
	Failure   string // non-empty: simulated latency/failures with this message
}

// Routes returns all API routes for registration.
func (h *Handler) Routes() []Route {
	return []Route{
		// Health & Auth
		{Method: http.MethodGet, Path: "/health", Handler: h.Health, Public: true},
		{Method: http.MethodPost, Path: "/auth/login", Handler: h.Login, Public: true, RateLimit: true},

		// Products
		{Method: http.MethodGet, Path: "/products", Handler: h.ListProducts},
		{Method: http.MethodPost, Path: "/products", Handler: h.CreateProduct},
		{Method: http.MethodGet, Path: "/products/{id}", Handler: h.GetProduct},
		{Method: http.MethodPut, Path: "/products/{id}", Handler: h.UpdateProduct},
		{Method: http.MethodDelete, Path: "/products/{id}", Handler: h.DeleteProduct},

		// Orders & Customers
		{Method: http.MethodGet, Path: "/orders", Handler: h.Orders},
		{Method: http.MethodGet, Path: "/customers", Handler: h.Customers},

		// Dashboard stats
		{Method: http.MethodGet, Path: "/stats/overview", Handler: h.StatsOverview},
		{Method: http.MethodGet, Path: "/stats/sales", Handler: h.StatsSales},
		{Method: http.MethodGet, Path: "/stats/top-products", Handler: h.StatsTopProducts},
		{Method: http.MethodGet, Path: "/stats/blockchain", Handler: h.StatsBlockchain},

		// NFT mints
		{Method: http.MethodGet, Path: "/mints/overview", Handler: h.MintOverview, Failure: "Failed to load mint overview stats."},
		{Method: http.MethodGet, Path: "/mints/collections", Handler: h.Collections, Failure: "Failed to load NFT collections."},
		{Method: http.MethodGet, Path: "/mints/recent", Handler: h.RecentMints, Failure: "Failed to load recent mints."},

		// Analytics
		{Method: http.MethodGet, Path: "/analytics/metrics", Handler: h.KeyMetrics, Failure: "Failed to load key metrics."},
		{Method: http.MethodGet, Path: "/analytics/traffic", Handler: h.TrafficSources, Failure: "Failed to load traffic sources."},
		{Method: http.MethodGet, Path: "/analytics/demographics", Handler: h.Demographics, Failure: "Failed to load user demographics."},
		{Method: http.MethodGet, Path: "/analytics/performance", Handler: h.Performance, Failure: "Failed to load performance metrics."},

		// Media uploads
		{Method: http.MethodPost, Path: "/uploads/sign", Handler: h.SignUpload},
	}
}
