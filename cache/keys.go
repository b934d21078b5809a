package cache

// The four admin aggregate bundles. Every order, product or user
// mutation invalidates all of them.
const (
	KeyAdminStats      = "admin-stats"
	KeyAdminPieCharts  = "admin-pie-charts"
	KeyAdminBarCharts  = "admin-bar-charts"
	KeyAdminLineCharts = "admin-line-charts"

	KeyAllOrders      = "all-orders"
	KeyLatestProducts = "latest-products"
	KeyCategories     = "categories"
)

var adminKeys = []string{
	KeyAdminStats,
	KeyAdminPieCharts,
	KeyAdminBarCharts,
	KeyAdminLineCharts,
}

func OrderKey(orderID string) string {
	return "order-" + orderID
}

func MyOrdersKey(userID string) string {
	return "my-orders-" + userID
}

func ProductKey(productID string) string {
	return "product-" + productID
}
