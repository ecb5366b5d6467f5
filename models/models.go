package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderLineRecord is one row of raw transactional input, attributing a
// quantity and value of one product to one retailer on one date.
type OrderLineRecord struct {
	RetailerName    string          `json:"retailer_name"`
	Location        string          `json:"location"`
	Tags            []string        `json:"tags"`
	OrderDate       string          `json:"order_date"` // ISO date, no time component
	ProductName     string          `json:"product_name"`
	Quantity        int             `json:"quantity"`
	Value           decimal.Decimal `json:"value"`
	RecoveredAmount decimal.Decimal `json:"recovered_amount"`
	Frequency       int             `json:"frequency"`
}

// Order frequency tiers, by distinct order count.
const (
	FrequencyHigh   = "High"   // more than 10 orders
	FrequencyMedium = "Medium" // more than 5 orders
	FrequencyLow    = "Low"
)

// OrderProduct is one line item within a merged order.
type OrderProduct struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Value    decimal.Decimal `json:"value"`
}

// Order is all line records for one retailer sharing one order date.
type Order struct {
	Date            string          `json:"date"`
	Products        []OrderProduct  `json:"products"`
	TotalValue      decimal.Decimal `json:"total_value"`
	RecoveredAmount decimal.Decimal `json:"recovered_amount"`
}

// MonthlySales is one calendar month of a retailer's order activity.
type MonthlySales struct {
	Month  string          `json:"month"`
	Total  decimal.Decimal `json:"total"`
	Orders int             `json:"orders"`
}

// RetailerProfile is the derived per-retailer analytical view.
type RetailerProfile struct {
	Name           string          `json:"name"`
	Location       string          `json:"location"`
	Tags           []string        `json:"tags"`
	Orders         []Order         `json:"orders"`
	TotalOrdered   decimal.Decimal `json:"total_ordered"`
	TotalRecovered decimal.Decimal `json:"total_recovered"`
	RecoveryRatio  float64         `json:"recovery_ratio"`
	OrderFrequency string          `json:"order_frequency"`
	Rating         float64         `json:"rating"`
	MonthlySales   []MonthlySales  `json:"monthly_sales"`
}

// MovementEntry is one source record projected into a product's timeline.
type MovementEntry struct {
	Date     string          `json:"date"`
	Quantity int             `json:"quantity"`
	Retailer string          `json:"retailer"`
	Value    decimal.Decimal `json:"value"`
}

// MonthlyMovement is one calendar month of a product's movement.
type MonthlyMovement struct {
	Month    string          `json:"month"`
	Quantity int             `json:"quantity"`
	Value    decimal.Decimal `json:"value"`
}

// TopBuyer ranks a retailer by total purchase value for one product.
type TopBuyer struct {
	Retailer      string          `json:"retailer"`
	TotalQuantity int             `json:"total_quantity"`
	TotalValue    decimal.Decimal `json:"total_value"`
	Frequency     int             `json:"frequency"` // distinct order lines
}

// ClubbedProduct is a product co-occurring with another in the same
// retailer's orders within one month.
type ClubbedProduct struct {
	Name      string `json:"name"`
	Frequency int    `json:"frequency"`
}

// ClubbingMonth holds the co-occurrence ranking for one month.
type ClubbingMonth struct {
	Month    string           `json:"month"`
	Products []ClubbedProduct `json:"products"`
}

// ProductAnalytics is the derived per-product analytical view.
type ProductAnalytics struct {
	Name             string            `json:"name"`
	MovementTimeline []MovementEntry   `json:"movement_timeline"`
	Clubbing         []ClubbingMonth   `json:"clubbing"`
	TopBuyers        []TopBuyer        `json:"top_buyers"`
	MonthlyMovement  []MonthlyMovement `json:"monthly_movement"`
}

// FilterOptions holds the distinct value sets driving selection controls.
type FilterOptions struct {
	Retailers []string `json:"retailers"`
	Locations []string `json:"locations"`
	Products  []string `json:"products"`
	Tags      []string `json:"tags"`
	Months    []string `json:"months"`
}

// RetailersResponse is the response for the retailer profiles endpoint.
type RetailersResponse struct {
	Count     int               `json:"count"`
	Retailers []RetailerProfile `json:"retailers"`
}

// ProductsResponse is the response for the product analytics endpoints.
type ProductsResponse struct {
	Count    int                `json:"count"`
	Partial  bool               `json:"partial"`
	Products []ProductAnalytics `json:"products"`
}

// ExportResponse carries the raw record set for out-of-scope serializers.
type ExportResponse struct {
	Format  string            `json:"format"`
	Count   int               `json:"count"`
	Records []OrderLineRecord `json:"records"`
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status           string `json:"status"`
	Service          string `json:"service,omitempty"`
	Timestamp        string `json:"timestamp,omitempty"`
	Records          int    `json:"records"`
	AnalyticsCached  bool   `json:"analytics_cached"`
	Computations     int64  `json:"computations"`
	ConnectedClients int    `json:"connected_clients"`
}

// BroadcastMessage represents a message sent to WebSocket clients.
type BroadcastMessage struct {
	Type      string      `json:"type"`
	Data      interface{} `json:"data"`
	Timestamp time.Time   `json:"timestamp"`
}

// AnalyticsReady is the payload broadcast when the full product
// aggregation has finished and is cached.
type AnalyticsReady struct {
	Products int `json:"products"`
}
