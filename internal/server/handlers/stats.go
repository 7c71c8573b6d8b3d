// ABOUTME: HTTP handlers for dashboard stats, NFT mints, analytics, orders and customers
// ABOUTME: Dashboard stats are computed once per TTL through the stats cache

package handlers

import (
	"net/http"
)

const statsOverviewKey = "stats:overview"

// cachedStat serves key from the stats cache, computing it with load on a miss.
func (h *Handler) cachedStat(w http.ResponseWriter, key string, load func() any) {
	if h.stats == nil {
		h.writeJSON(w, http.StatusOK, load())
		return
	}
	v, err := h.stats.GetOrLoad(key, func() (any, error) {
		return load(), nil
	})
	if err != nil {
		h.writeError(w, "Failed to compute stats", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, http.StatusOK, v)
}

func (h *Handler) invalidateStats() {
	if h.stats != nil {
		h.stats.Clear(statsOverviewKey)
	}
}

// StatsOverview returns the dashboard headline stats.
func (h *Handler) StatsOverview(w http.ResponseWriter, r *http.Request) {
	h.cachedStat(w, statsOverviewKey, func() any { return h.catalog.Overview() })
}

// StatsSales returns the monthly sales series.
func (h *Handler) StatsSales(w http.ResponseWriter, r *http.Request) {
	h.cachedStat(w, "stats:sales", func() any { return h.catalog.MonthlySales() })
}

// StatsTopProducts returns the best sellers.
func (h *Handler) StatsTopProducts(w http.ResponseWriter, r *http.Request) {
	h.cachedStat(w, "stats:top-products", func() any { return h.catalog.TopProducts() })
}

// StatsBlockchain returns on-chain stats.
func (h *Handler) StatsBlockchain(w http.ResponseWriter, r *http.Request) {
	h.cachedStat(w, "stats:blockchain", func() any { return h.catalog.Blockchain() })
}

func (h *Handler) Orders(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.catalog.Orders())
}

func (h *Handler) Customers(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.catalog.Customers())
}

func (h *Handler) MintOverview(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.catalog.MintOverview())
}

func (h *Handler) Collections(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.catalog.Collections())
}

func (h *Handler) RecentMints(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.catalog.RecentMints())
}

func (h *Handler) KeyMetrics(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.catalog.KeyMetrics())
}

func (h *Handler) TrafficSources(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.catalog.TrafficSources())
}

func (h *Handler) Demographics(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.catalog.Demographics())
}

func (h *Handler) Performance(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.catalog.Performance())
}
