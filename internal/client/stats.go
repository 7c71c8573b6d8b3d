// ABOUTME: Statistics endpoints for the dashboard, NFT mints and analytics screens
// ABOUTME: Dashboard fetches the four overview endpoints concurrently

package client

import (
	"context"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/markalston/mocha-admin/internal/models"
)

// Overview calls GET /stats/overview
func (c *Client) Overview(ctx context.Context) (*models.Overview, error) {
	var o models.Overview
	if err := c.do(ctx, http.MethodGet, "/stats/overview", nil, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

// MonthlySales calls GET /stats/sales
func (c *Client) MonthlySales(ctx context.Context) ([]models.MonthlySales, error) {
	var sales []models.MonthlySales
	if err := c.do(ctx, http.MethodGet, "/stats/sales", nil, &sales); err != nil {
		return nil, err
	}
	return sales, nil
}

// TopProducts calls GET /stats/top-products
func (c *Client) TopProducts(ctx context.Context) ([]models.TopProduct, error) {
	var top []models.TopProduct
	if err := c.do(ctx, http.MethodGet, "/stats/top-products", nil, &top); err != nil {
		return nil, err
	}
	return top, nil
}

// Blockchain calls GET /stats/blockchain
func (c *Client) Blockchain(ctx context.Context) (*models.BlockchainStats, error) {
	var b models.BlockchainStats
	if err := c.do(ctx, http.MethodGet, "/stats/blockchain", nil, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

// DashboardData bundles the four dashboard sections.
type DashboardData struct {
	Overview    *models.Overview        `json:"overview"`
	Sales       []models.MonthlySales   `json:"sales"`
	SalesGrowth string                  `json:"salesGrowth"`
	TopProducts []models.TopProduct     `json:"topProducts"`
	Blockchain  *models.BlockchainStats `json:"blockchain"`
}

// Dashboard fetches every dashboard section concurrently. The first failure
// cancels the remaining requests.
func (c *Client) Dashboard(ctx context.Context) (*DashboardData, error) {
	var data DashboardData
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		o, err := c.Overview(ctx)
		data.Overview = o
		return err
	})
	g.Go(func() error {
		s, err := c.MonthlySales(ctx)
		data.Sales = s
		return err
	})
	g.Go(func() error {
		t, err := c.TopProducts(ctx)
		data.TopProducts = t
		return err
	})
	g.Go(func() error {
		b, err := c.Blockchain(ctx)
		data.Blockchain = b
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	data.SalesGrowth = models.SalesGrowth(data.Sales)
	return &data, nil
}

// MintOverview calls GET /mints/overview
func (c *Client) MintOverview(ctx context.Context) ([]models.HighlightStat, error) {
	var stats []models.HighlightStat
	if err := c.do(ctx, http.MethodGet, "/mints/overview", nil, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}

// Collections calls GET /mints/collections
func (c *Client) Collections(ctx context.Context) ([]models.Collection, error) {
	var cols []models.Collection
	if err := c.do(ctx, http.MethodGet, "/mints/collections", nil, &cols); err != nil {
		return nil, err
	}
	return cols, nil
}

// RecentMints calls GET /mints/recent
func (c *Client) RecentMints(ctx context.Context) ([]models.RecentMint, error) {
	var mints []models.RecentMint
	if err := c.do(ctx, http.MethodGet, "/mints/recent", nil, &mints); err != nil {
		return nil, err
	}
	return mints, nil
}

// KeyMetrics calls GET /analytics/metrics
func (c *Client) KeyMetrics(ctx context.Context) ([]models.HighlightStat, error) {
	var metrics []models.HighlightStat
	if err := c.do(ctx, http.MethodGet, "/analytics/metrics", nil, &metrics); err != nil {
		return nil, err
	}
	return metrics, nil
}

// TrafficSources calls GET /analytics/traffic
func (c *Client) TrafficSources(ctx context.Context) ([]models.TrafficSource, error) {
	var sources []models.TrafficSource
	if err := c.do(ctx, http.MethodGet, "/analytics/traffic", nil, &sources); err != nil {
		return nil, err
	}
	return sources, nil
}

// Demographics calls GET /analytics/demographics
func (c *Client) Demographics(ctx context.Context) (*models.Demographics, error) {
	var d models.Demographics
	if err := c.do(ctx, http.MethodGet, "/analytics/demographics", nil, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// Performance calls GET /analytics/performance
func (c *Client) Performance(ctx context.Context) ([]models.PerformanceMetric, error) {
	var perf []models.PerformanceMetric
	if err := c.do(ctx, http.MethodGet, "/analytics/performance", nil, &perf); err != nil {
		return nil, err
	}
	return perf, nil
}
