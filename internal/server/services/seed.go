// ABOUTME: Seed data for the mock backend's catalog, stats, mints and analytics
// ABOUTME: DefaultSeed returns a fresh copy so tests can mutate it freely

package services

import (
	"github.com/google/uuid"

	"github.com/markalston/mocha-admin/internal/models"
)

// DefaultStock is the stock level assigned to newly created products.
const DefaultStock = 100

// SeedData is everything the catalog serves
type SeedData struct {
	Products     []models.Product
	Orders       []models.Order
	Customers    []models.Customer
	Overview     models.Overview
	Sales        []models.MonthlySales
	TopProducts  []models.TopProduct
	Blockchain   models.BlockchainStats
	MintOverview []models.HighlightStat
	Collections  []models.Collection
	RecentMints  []models.RecentMint
	KeyMetrics   []models.HighlightStat
	Traffic      []models.TrafficSource
	Demographics models.Demographics
	Performance  []models.PerformanceMetric
}

func intPtr(n int) *int { return &n }

// DefaultSeed returns the shop's demo data. Mint ids are fresh uuids.
func DefaultSeed() SeedData {
	return SeedData{
		Products: []models.Product{
			{
				ID: 1, Name: "Ethiopian Highlands Premium", Type: models.ProductTypeCoffeeBag,
				Description: "Single-origin beans with floral and citrus notes",
				Price:       24.99, OriginalPrice: 29.99, Image: "mocha/ethiopian-highlands",
				Features: []string{"Single origin", "Light roast", "Fair trade"}, Stock: 150,
			},
			{
				ID: 2, Name: "Colombian Supreme Blend", Type: models.ProductTypeCoffeeBag,
				Description: "Exquisite Colombian coffee with rich aroma",
				Price:       28.99, Image: "mocha/colombian-supreme",
				Features: []string{"Medium roast", "Chocolate notes"}, Stock: 42,
			},
			{
				ID: 3, Name: "Brazilian Santos Classic", Type: models.ProductTypeCoffeeBag,
				Description: "Classic Brazilian coffee with smooth finish",
				Price:       22.99, Image: "mocha/brazilian-santos",
				Features: []string{"Dark roast", "Low acidity"}, Stock: 0,
			},
			{
				ID: 4, Name: "Kenyan AA Premium", Type: models.ProductTypeCoffeeBag,
				Description: "Bright, wine-like acidity with blackcurrant finish",
				Price:       32.99, OriginalPrice: 36.99, Image: "mocha/kenyan-aa",
				Features: []string{"AA grade", "Light roast"}, Stock: 87,
			},
			{
				ID: 5, Name: "Mocha Signature Latte", Type: models.ProductTypeCoffeeCup,
				Description: "Double shot espresso with steamed oat milk",
				Price:       5.50, Image: "mocha/signature-latte",
				Features: []string{"Oat milk", "Hot or iced"}, Stock: 240,
			},
			{
				ID: 6, Name: "Holder Free Coffee", Type: models.ProductTypeFreeCoffee,
				Description: "One free drip coffee per day for NFT holders",
				Price:       0, Image: "mocha/free-coffee",
				Features: []string{"NFT holders only"}, MaxClaims: intPtr(500), Stock: 35,
			},
		},
		Orders: []models.Order{
			{ID: "#ORD-001", Customer: "John Doe", Email: "john@example.com", Products: []string{"Ethiopian Highlands Premium", "Colombian Supreme Blend"}, Total: "$53.98", Status: models.OrderDelivered, Date: "2024-01-15", Wallet: "0x1234...5678"},
			{ID: "#ORD-002", Customer: "Jane Smith", Email: "jane@example.com", Products: []string{"Brazilian Santos Classic"}, Total: "$22.99", Status: models.OrderProcessing, Date: "2024-01-14", Wallet: "0x9876...5432"},
			{ID: "#ORD-003", Customer: "Mike Johnson", Email: "mike@example.com", Products: []string{"Kenyan AA Premium", "Ethiopian Highlands Premium"}, Total: "$57.98", Status: models.OrderShipped, Date: "2024-01-13", Wallet: "0x1111...2222"},
			{ID: "#ORD-004", Customer: "Sarah Wilson", Email: "sarah@example.com", Products: []string{"Colombian Supreme Blend"}, Total: "$28.99", Status: models.OrderCancelled, Date: "2024-01-12", Wallet: "0x3333...4444"},
		},
		Customers: []models.Customer{
			{ID: 1, Name: "John Doe", Email: "john@example.com", Wallet: "0x1234...5678", Orders: 12, TotalSpent: "$342.89", LastOrder: "2024-01-15", Rating: 5, Location: "New York, US", JoinDate: "2023-08-15"},
			{ID: 2, Name: "Jane Smith", Email: "jane@example.com", Wallet: "0x9876...5432", Orders: 8, TotalSpent: "$189.45", LastOrder: "2024-01-14", Rating: 4, Location: "London, UK", JoinDate: "2023-09-22"},
			{ID: 3, Name: "Mike Johnson", Email: "mike@example.com", Wallet: "0x1111...2222", Orders: 15, TotalSpent: "$456.78", LastOrder: "2024-01-13", Rating: 5, Location: "Toronto, CA", JoinDate: "2023-07-10"},
			{ID: 4, Name: "Sarah Wilson", Email: "sarah@example.com", Wallet: "0x3333...4444", Orders: 5, TotalSpent: "$127.50", LastOrder: "2024-01-12", Rating: 4, Location: "Sydney, AU", JoinDate: "2023-10-05"},
		},
		Overview: models.Overview{
			TotalRevenue: models.StatValue{Value: 45231, Change: 20.1},
			NFTsMinted:   models.StatValue{Value: 2288, Change: 15.3},
			ActiveUsers:  models.StatValue{Value: 1429, Change: 8.2},
			ProductsSold: models.StatValue{Value: 3456, Change: -2.4},
		},
		Sales: []models.MonthlySales{
			{Month: "Jan", Sales: 4200}, {Month: "Feb", Sales: 3800}, {Month: "Mar", Sales: 5100},
			{Month: "Apr", Sales: 4700}, {Month: "May", Sales: 6200}, {Month: "Jun", Sales: 7100},
		},
		TopProducts: []models.TopProduct{
			{Name: "Ethiopian Highlands Premium", Sales: 342, Revenue: "$8,547"},
			{Name: "Colombian Supreme Blend", Sales: 289, Revenue: "$8,378"},
			{Name: "Kenyan AA Premium", Sales: 198, Revenue: "$6,532"},
			{Name: "Mocha Signature Latte", Sales: 876, Revenue: "$4,818"},
		},
		Blockchain: models.BlockchainStats{Transactions: 12847, SmartContracts: 3},
		MintOverview: []models.HighlightStat{
			{Title: "Total Collections", Value: "12", Description: "Active collections"},
			{Title: "Total Minted", Value: "2,288", Change: "+156 this week"},
			{Title: "Mint Revenue", Value: "142.5 ETH", Change: "+12.3% this month"},
			{Title: "Avg. Price", Value: "0.062 ETH", Description: "Current average"},
		},
		Collections: []models.Collection{
			{Name: "Ethiopian Highlands", Description: "Premium Ethiopian coffee beans with floral notes", TotalSupply: 1000, Minted: 743, Price: "0.05 ETH", Image: "mocha/nft-ethiopian", Rarity: "Rare"},
			{Name: "Colombian Supreme", Description: "Exquisite Colombian coffee with rich aroma", TotalSupply: 800, Minted: 456, Price: "0.08 ETH", Image: "mocha/nft-colombian", Rarity: "Epic"},
			{Name: "Brazilian Santos", Description: "Classic Brazilian coffee with smooth finish", TotalSupply: 1200, Minted: 1089, Price: "0.03 ETH", Image: "mocha/nft-brazilian", Rarity: "Common"},
		},
		RecentMints: []models.RecentMint{
			{ID: uuid.NewString(), Collection: "Ethiopian Highlands", Buyer: "0x1234...5678", Price: "0.05 ETH", Time: "2 min ago"},
			{ID: uuid.NewString(), Collection: "Colombian Supreme", Buyer: "0x9876...5432", Price: "0.08 ETH", Time: "5 min ago"},
			{ID: uuid.NewString(), Collection: "Brazilian Santos", Buyer: "0x1111...2222", Price: "0.03 ETH", Time: "8 min ago"},
			{ID: uuid.NewString(), Collection: "Ethiopian Highlands", Buyer: "0x3333...4444", Price: "0.05 ETH", Time: "12 min ago"},
		},
		KeyMetrics: []models.HighlightStat{
			{Title: "Page Views", Value: "45,892", Change: "+18.2% from last month"},
			{Title: "Conversion Rate", Value: "3.4%", Change: "+0.8% from last month"},
			{Title: "Global Reach", Value: "34", Description: "Countries served"},
		},
		Traffic: []models.TrafficSource{
			{Source: "Organic Search", Percentage: 45, Visits: 12456},
			{Source: "Direct", Percentage: 28, Visits: 7834},
			{Source: "Social Media", Percentage: 15, Visits: 4123},
			{Source: "Email", Percentage: 8, Visits: 2234},
			{Source: "Referral", Percentage: 4, Visits: 1123},
		},
		Demographics: models.Demographics{
			AgeGroups: []models.Share{
				{Label: "18-24", Percentage: 22}, {Label: "25-34", Percentage: 35},
				{Label: "35-44", Percentage: 28}, {Label: "45+", Percentage: 15},
			},
			DeviceTypes: []models.Share{
				{Label: "Desktop", Percentage: 62}, {Label: "Mobile", Percentage: 31}, {Label: "Tablet", Percentage: 7},
			},
		},
		Performance: []models.PerformanceMetric{
			{Label: "Avg Load Time", Value: "2.4s"},
			{Label: "Uptime", Value: "98.5%"},
			{Label: "User Rating", Value: "4.2/5"},
			{Label: "API Calls/min", Value: "156"},
		},
	}
}
