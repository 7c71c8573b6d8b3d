// ABOUTME: Dashboard, mint and analytics statistics models
// ABOUTME: Also holds the formatting helpers shared by the CLI and the TUI

package models

import (
	"fmt"
	"strconv"
	"strings"
)

// StatValue is a value with its period-over-period change in percent
type StatValue struct {
	Value  float64 `json:"value"`
	Change float64 `json:"change"`
}

// ChangeLabel formats the change with an explicit sign ("+12.5%").
func (s StatValue) ChangeLabel() string {
	return SignedPercent(s.Change)
}

// Overview is the /stats/overview body
type Overview struct {
	TotalRevenue StatValue `json:"totalRevenue"`
	NFTsMinted   StatValue `json:"nftsMinted"`
	ActiveUsers  StatValue `json:"activeUsers"`
	ProductsSold StatValue `json:"productsSold"`
}

// MonthlySales is one point of the /stats/sales series
type MonthlySales struct {
	Month string  `json:"month"`
	Sales float64 `json:"sales"`
}

// TopProduct is one entry of /stats/top-products
type TopProduct struct {
	Name    string `json:"name"`
	Sales   int    `json:"sales"`
	Revenue string `json:"revenue"`
}

// BlockchainStats is the /stats/blockchain body
type BlockchainStats struct {
	Transactions   int `json:"transactions"`
	SmartContracts int `json:"smartContracts"`
}

// SalesGrowth compares the last two months of a series. It returns "N/A"
// when there are fewer than two points or the previous month is zero.
func SalesGrowth(series []MonthlySales) string {
	if len(series) < 2 {
		return "N/A"
	}
	last := series[len(series)-1].Sales
	prev := series[len(series)-2].Sales
	if prev == 0 {
		return "N/A"
	}
	return SignedPercent((last - prev) / prev * 100)
}

// SignedPercent formats v with one decimal and a leading sign for non-negative values.
func SignedPercent(v float64) string {
	sign := ""
	if v >= 0 {
		sign = "+"
	}
	return fmt.Sprintf("%s%.1f%%", sign, v)
}

// Thousands formats an integer with comma separators.
func Thousands(n int64) string {
	neg := n < 0
	if neg {
		n = -n
	}
	s := strconv.FormatInt(n, 10)
	var b strings.Builder
	pre := len(s) % 3
	if pre > 0 {
		b.WriteString(s[:pre])
	}
	for i := pre; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// HighlightStat is a labelled card value with an optional change or description
type HighlightStat struct {
	Title       string `json:"title"`
	Value       string `json:"value"`
	Change      string `json:"change,omitempty"`
	Description string `json:"description,omitempty"`
}

// Collection is an NFT collection
type Collection struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	TotalSupply int    `json:"totalSupply"`
	Minted      int    `json:"minted"`
	Price       string `json:"price"`
	Image       string `json:"image"`
	Rarity      string `json:"rarity"`
}

// MintedFraction is the share of the supply already minted, in [0,1].
func (c Collection) MintedFraction() float64 {
	if c.TotalSupply <= 0 {
		return 0
	}
	f := float64(c.Minted) / float64(c.TotalSupply)
	if f > 1 {
		return 1
	}
	return f
}

// RecentMint is one entry of the recent mint activity feed
type RecentMint struct {
	ID         string `json:"id"`
	Collection string `json:"collection"`
	Buyer      string `json:"buyer"`
	Price      string `json:"price"`
	Time       string `json:"time"`
}

// TrafficSource is a share of site traffic
type TrafficSource struct {
	Source     string  `json:"source"`
	Percentage float64 `json:"percentage"`
	Visits     int     `json:"visits"`
}

// Share is a labelled percentage
type Share struct {
	Label      string  `json:"label"`
	Percentage float64 `json:"percentage"`
}

// Demographics is the /analytics/demographics body
type Demographics struct {
	AgeGroups   []Share `json:"ageGroups"`
	DeviceTypes []Share `json:"deviceTypes"`
}

// PerformanceMetric is a single labelled performance value
type PerformanceMetric struct {
	Label string `json:"label"`
	Value string `json:"value"`
}
