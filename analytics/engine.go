package analytics

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/shopora/api/cache"
	"github.com/shopora/api/model"
)

// The engine reads through these narrow interfaces so the mongo DAOs
// stay swappable for fakes in tests. Between bounds are inclusive.
type OrderQuerier interface {
	OrdersCreatedBetween(ctx context.Context, from, to time.Time) ([]model.Order, error)
	AllOrders(ctx context.Context) ([]model.Order, error)
	LatestOrders(ctx context.Context, limit int) ([]model.Order, error)
	CountOrdersByStatus(ctx context.Context, status string) (int64, error)
}

type ProductQuerier interface {
	ProductsCreatedBetween(ctx context.Context, from, to time.Time) ([]model.Product, error)
	CountProducts(ctx context.Context) (int64, error)
	CountProductsOutOfStock(ctx context.Context) (int64, error)
	CountProductsByCategory(ctx context.Context) (map[string]int64, error)
}

type UserQuerier interface {
	UsersCreatedBetween(ctx context.Context, from, to time.Time) ([]model.User, error)
	AllUsers(ctx context.Context) ([]model.User, error)
	CountUsers(ctx context.Context) (int64, error)
	CountUsersByGender(ctx context.Context, gender string) (int64, error)
	CountUsersByRole(ctx context.Context, role string) (int64, error)
}

// Engine memoizes the four dashboard aggregate bundles. Every bundle
// follows the same shape: cache check, concurrent fan-out of the
// constituent queries, reduce, cache fill. Nothing is cached unless
// every query and reduction succeeded.
type Engine struct {
	store    *cache.Store
	orders   OrderQuerier
	products ProductQuerier
	users    UserQuerier
	now      func() time.Time
}

func NewEngine(store *cache.Store, orders OrderQuerier, products ProductQuerier, users UserQuerier) *Engine {
	return &Engine{
		store:    store,
		orders:   orders,
		products: products,
		users:    users,
		now:      time.Now,
	}
}

func orderCreatedAt(o model.Order) time.Time     { return o.CreatedAt }
func productCreatedAt(p model.Product) time.Time { return p.CreatedAt }
func userCreatedAt(u model.User) time.Time       { return u.CreatedAt }
func orderTotal(o model.Order) float64           { return o.Total }
func orderDiscount(o model.Order) float64        { return o.Discount }

// DashboardStats returns the summary bundle: all-time counts,
// month-over-month change, category shares, gender ratio, the four
// latest transactions and the trailing six-month order/revenue charts.
func (e *Engine) DashboardStats(ctx context.Context) (*model.DashboardStats, error) {
	if stats, ok := cache.Lookup[*model.DashboardStats](e.store, cache.KeyAdminStats); ok {
		return stats, nil
	}

	now := e.now()
	thisMonthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	lastMonthStart := thisMonthStart.AddDate(0, -1, 0)
	lastMonthEnd := thisMonthStart.AddDate(0, 0, -1)
	sixMonthsAgo := now.AddDate(0, -6, 0)

	var (
		thisMonthOrders, lastMonthOrders, sixMonthOrders, allOrders, latest []model.Order
		thisMonthProducts, lastMonthProducts                               []model.Product
		thisMonthUsers, lastMonthUsers                                     []model.User
		productCount, userCount, femaleCount                               int64
		categoryCounts                                                     map[string]int64
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		thisMonthOrders, err = e.orders.OrdersCreatedBetween(ctx, thisMonthStart, now)
		return err
	})
	g.Go(func() (err error) {
		lastMonthOrders, err = e.orders.OrdersCreatedBetween(ctx, lastMonthStart, lastMonthEnd)
		return err
	})
	g.Go(func() (err error) {
		thisMonthProducts, err = e.products.ProductsCreatedBetween(ctx, thisMonthStart, now)
		return err
	})
	g.Go(func() (err error) {
		lastMonthProducts, err = e.products.ProductsCreatedBetween(ctx, lastMonthStart, lastMonthEnd)
		return err
	})
	g.Go(func() (err error) {
		thisMonthUsers, err = e.users.UsersCreatedBetween(ctx, thisMonthStart, now)
		return err
	})
	g.Go(func() (err error) {
		lastMonthUsers, err = e.users.UsersCreatedBetween(ctx, lastMonthStart, lastMonthEnd)
		return err
	})
	g.Go(func() (err error) {
		sixMonthOrders, err = e.orders.OrdersCreatedBetween(ctx, sixMonthsAgo, now)
		return err
	})
	g.Go(func() (err error) {
		allOrders, err = e.orders.AllOrders(ctx)
		return err
	})
	g.Go(func() (err error) {
		latest, err = e.orders.LatestOrders(ctx, 4)
		return err
	})
	g.Go(func() (err error) {
		productCount, err = e.products.CountProducts(ctx)
		return err
	})
	g.Go(func() (err error) {
		userCount, err = e.users.CountUsers(ctx)
		return err
	})
	g.Go(func() (err error) {
		femaleCount, err = e.users.CountUsersByGender(ctx, model.GenderFemale)
		return err
	})
	g.Go(func() (err error) {
		categoryCounts, err = e.products.CountProductsByCategory(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	transactions := make([]model.Transaction, 0, len(latest))
	for _, o := range latest {
		transactions = append(transactions, model.Transaction{
			ID:       o.ID,
			Discount: o.Discount,
			Amount:   o.Total,
			Quantity: len(o.Items),
			Status:   o.Status,
		})
	}

	stats := &model.DashboardStats{
		Count: model.CountSummary{
			Order:   len(allOrders),
			Product: productCount,
			User:    userCount,
			Revenue: SumTotals(allOrders),
		},
		ChangePercent: model.ChangePercent{
			Order:   PercentageChange(float64(len(thisMonthOrders)), float64(len(lastMonthOrders))),
			Product: PercentageChange(float64(len(thisMonthProducts)), float64(len(lastMonthProducts))),
			User:    PercentageChange(float64(len(thisMonthUsers)), float64(len(lastMonthUsers))),
			Revenue: PercentageChange(SumTotals(thisMonthOrders), SumTotals(lastMonthOrders)),
		},
		CategoryCount:      CategoryShare(categoryCounts, productCount),
		UserRatio:          GenderRatio(userCount, femaleCount),
		LatestTransactions: transactions,
		Chart: model.DashboardChart{
			Order:   CountByMonth(sixMonthOrders, orderCreatedAt, now, 6),
			Revenue: SumByMonth(sixMonthOrders, orderCreatedAt, orderTotal, now, 6),
		},
	}

	e.store.Set(cache.KeyAdminStats, stats)
	return stats, nil
}

// PieCharts returns the categorical breakdowns: fulfillment funnel,
// category shares, stock availability, revenue distribution, role and
// age partitions.
func (e *Engine) PieCharts(ctx context.Context) (*model.PieCharts, error) {
	if charts, ok := cache.Lookup[*model.PieCharts](e.store, cache.KeyAdminPieCharts); ok {
		return charts, nil
	}

	var (
		processing, shipped, delivered int64
		productCount, outOfStock       int64
		adminCount, customerCount      int64
		categoryCounts                 map[string]int64
		allOrders                      []model.Order
		allUsers                       []model.User
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		processing, err = e.orders.CountOrdersByStatus(ctx, model.OrderStatusProcessing)
		return err
	})
	g.Go(func() (err error) {
		shipped, err = e.orders.CountOrdersByStatus(ctx, model.OrderStatusShipped)
		return err
	})
	g.Go(func() (err error) {
		delivered, err = e.orders.CountOrdersByStatus(ctx, model.OrderStatusDelivered)
		return err
	})
	g.Go(func() (err error) {
		categoryCounts, err = e.products.CountProductsByCategory(ctx)
		return err
	})
	g.Go(func() (err error) {
		productCount, err = e.products.CountProducts(ctx)
		return err
	})
	g.Go(func() (err error) {
		outOfStock, err = e.products.CountProductsOutOfStock(ctx)
		return err
	})
	g.Go(func() (err error) {
		allOrders, err = e.orders.AllOrders(ctx)
		return err
	})
	g.Go(func() (err error) {
		allUsers, err = e.users.AllUsers(ctx)
		return err
	})
	g.Go(func() (err error) {
		adminCount, err = e.users.CountUsersByRole(ctx, model.RoleAdmin)
		return err
	})
	g.Go(func() (err error) {
		customerCount, err = e.users.CountUsersByRole(ctx, model.RoleUser)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	charts := &model.PieCharts{
		OrderFulfillment: model.OrderFulfillment{
			Processing: processing,
			Shipped:    shipped,
			Delivered:  delivered,
		},
		ProductCategories: CategoryShare(categoryCounts, productCount),
		StockAvailability: model.StockAvailability{
			InStock:    productCount - outOfStock,
			OutOfStock: outOfStock,
		},
		RevenueDistribution: DecomposeRevenue(allOrders),
		AdminCustomer: model.AdminCustomer{
			Admin:    adminCount,
			Customer: customerCount,
		},
		UserAgeGroup: PartitionByAge(allUsers, e.now()),
	}

	e.store.Set(cache.KeyAdminPieCharts, charts)
	return charts, nil
}

// BarCharts returns six months of product and user creation counts and
// twelve months of order counts.
func (e *Engine) BarCharts(ctx context.Context) (*model.BarCharts, error) {
	if charts, ok := cache.Lookup[*model.BarCharts](e.store, cache.KeyAdminBarCharts); ok {
		return charts, nil
	}

	now := e.now()
	sixMonthsAgo := now.AddDate(0, -6, 0)
	twelveMonthsAgo := now.AddDate(0, -12, 0)

	var (
		products []model.Product
		users    []model.User
		orders   []model.Order
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		products, err = e.products.ProductsCreatedBetween(ctx, sixMonthsAgo, now)
		return err
	})
	g.Go(func() (err error) {
		users, err = e.users.UsersCreatedBetween(ctx, sixMonthsAgo, now)
		return err
	})
	g.Go(func() (err error) {
		orders, err = e.orders.OrdersCreatedBetween(ctx, twelveMonthsAgo, now)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	charts := &model.BarCharts{
		Products: CountByMonth(products, productCreatedAt, now, 6),
		Users:    CountByMonth(users, userCreatedAt, now, 6),
		Orders:   CountByMonth(orders, orderCreatedAt, now, 12),
	}

	e.store.Set(cache.KeyAdminBarCharts, charts)
	return charts, nil
}

// LineCharts returns the twelve-month trend series: product and user
// creation counts plus monthly discount and revenue sums.
func (e *Engine) LineCharts(ctx context.Context) (*model.LineCharts, error) {
	if charts, ok := cache.Lookup[*model.LineCharts](e.store, cache.KeyAdminLineCharts); ok {
		return charts, nil
	}

	now := e.now()
	twelveMonthsAgo := now.AddDate(0, -12, 0)

	var (
		products []model.Product
		users    []model.User
		orders   []model.Order
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		products, err = e.products.ProductsCreatedBetween(ctx, twelveMonthsAgo, now)
		return err
	})
	g.Go(func() (err error) {
		users, err = e.users.UsersCreatedBetween(ctx, twelveMonthsAgo, now)
		return err
	})
	g.Go(func() (err error) {
		orders, err = e.orders.OrdersCreatedBetween(ctx, twelveMonthsAgo, now)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	charts := &model.LineCharts{
		Products: CountByMonth(products, productCreatedAt, now, 12),
		Users:    CountByMonth(users, userCreatedAt, now, 12),
		Discount: SumByMonth(orders, orderCreatedAt, orderDiscount, now, 12),
		Revenue:  SumByMonth(orders, orderCreatedAt, orderTotal, now, 12),
	}

	e.store.Set(cache.KeyAdminLineCharts, charts)
	return charts, nil
}
