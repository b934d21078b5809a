package model

// CountSummary holds the all-time totals shown at the top of the
// dashboard. Revenue is the sum of order totals across every order.
type CountSummary struct {
	Order   int     `json:"order"`
	Product int64   `json:"product"`
	User    int64   `json:"user"`
	Revenue float64 `json:"revenue"`
}

// ChangePercent is the month-over-month growth of each headline metric.
type ChangePercent struct {
	Order   float64 `json:"order"`
	Product float64 `json:"product"`
	User    float64 `json:"user"`
	Revenue float64 `json:"revenue"`
}

type UserRatio struct {
	Male   int64 `json:"male"`
	Female int64 `json:"female"`
}

// DashboardChart carries the trailing six-month histograms: order is a
// per-month order count, revenue a per-month sum of order totals.
type DashboardChart struct {
	Order   []int     `json:"order"`
	Revenue []float64 `json:"revenue"`
}

// DashboardStats is the summary bundle cached under the admin-stats key.
type DashboardStats struct {
	Count              CountSummary   `json:"count"`
	ChangePercent      ChangePercent  `json:"change_percent"`
	CategoryCount      map[string]int `json:"category_count"`
	UserRatio          UserRatio      `json:"user_ratio"`
	LatestTransactions []Transaction  `json:"latest_transactions"`
	Chart              DashboardChart `json:"chart"`
}

type OrderFulfillment struct {
	Processing int64 `json:"processing"`
	Shipped    int64 `json:"shipped"`
	Delivered  int64 `json:"delivered"`
}

type StockAvailability struct {
	InStock    int64 `json:"in_stock"`
	OutOfStock int64 `json:"out_of_stock"`
}

type RevenueDistribution struct {
	NetMargin      float64 `json:"net_margin"`
	Discount       float64 `json:"discount"`
	ProductionCost float64 `json:"production_cost"`
	Burn           float64 `json:"burn"`
	MarketingCost  float64 `json:"marketing_cost"`
}

type AdminCustomer struct {
	Admin    int64 `json:"admin"`
	Customer int64 `json:"customer"`
}

type AgeGroups struct {
	Teen  int `json:"teen"`
	Adult int `json:"adult"`
	Old   int `json:"old"`
}

// PieCharts is the categorical-breakdown bundle cached under the
// admin-pie-charts key.
type PieCharts struct {
	OrderFulfillment    OrderFulfillment    `json:"order_fulfillment"`
	ProductCategories   map[string]int      `json:"product_categories"`
	StockAvailability   StockAvailability   `json:"stock_availability"`
	RevenueDistribution RevenueDistribution `json:"revenue_distribution"`
	AdminCustomer       AdminCustomer       `json:"admin_customer"`
	UserAgeGroup        AgeGroups           `json:"user_age_group"`
}

// BarCharts: six months of product/user creation, twelve of orders.
type BarCharts struct {
	Products []int `json:"products"`
	Users    []int `json:"users"`
	Orders   []int `json:"orders"`
}

// LineCharts: twelve-month series for the trend view.
type LineCharts struct {
	Products []int     `json:"products"`
	Users    []int     `json:"users"`
	Discount []float64 `json:"discount"`
	Revenue  []float64 `json:"revenue"`
}
