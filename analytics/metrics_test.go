// api/analytics/metrics_test.go
package analytics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/shopora/api/analytics"
	"github.com/shopora/api/model"
)

func TestPercentageChange(t *testing.T) {
	assert.Equal(t, 0.0, analytics.PercentageChange(0, 0))
	assert.Equal(t, 4000.0, analytics.PercentageChange(40, 0))
	assert.Equal(t, 100.0, analytics.PercentageChange(200, 100))
	assert.Equal(t, -50.0, analytics.PercentageChange(50, 100))
	assert.Equal(t, -100.0, analytics.PercentageChange(0, 80))
}

func TestCategoryShare(t *testing.T) {
	t.Run("RoundsToNearestPercent", func(t *testing.T) {
		counts := map[string]int64{"shoes": 1, "shirts": 2}

		got := analytics.CategoryShare(counts, 3)

		assert.Equal(t, 33, got["shoes"])
		assert.Equal(t, 67, got["shirts"])
	})

	t.Run("ZeroTotal", func(t *testing.T) {
		got := analytics.CategoryShare(map[string]int64{"shoes": 5}, 0)
		assert.Equal(t, 0, got["shoes"])
	})

	t.Run("EmptyCounts", func(t *testing.T) {
		got := analytics.CategoryShare(nil, 10)
		assert.Empty(t, got)
	})
}

func TestPartitionByAge(t *testing.T) {
	ref := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	dobForAge := func(age int) time.Time {
		return time.Date(ref.Year()-age, time.January, 1, 0, 0, 0, 0, time.UTC)
	}

	users := []model.User{
		{DOB: dobForAge(12)},
		{DOB: dobForAge(18)}, // boundary: still teen
		{DOB: dobForAge(19)},
		{DOB: dobForAge(50)}, // boundary: still adult
		{DOB: dobForAge(51)},
		{DOB: dobForAge(70)},
	}

	got := analytics.PartitionByAge(users, ref)

	assert.Equal(t, model.AgeGroups{Teen: 2, Adult: 2, Old: 2}, got)
}

func TestPartitionByAgeBirthdayNotYetReached(t *testing.T) {
	ref := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)

	// Turns 19 in July, so still 18 at the reference date.
	users := []model.User{
		{DOB: time.Date(2005, time.July, 1, 0, 0, 0, 0, time.UTC)},
	}

	got := analytics.PartitionByAge(users, ref)

	assert.Equal(t, 1, got.Teen)
	assert.Zero(t, got.Adult)
}

func TestGenderRatio(t *testing.T) {
	got := analytics.GenderRatio(10, 4)
	assert.Equal(t, model.UserRatio{Male: 6, Female: 4}, got)

	got = analytics.GenderRatio(0, 0)
	assert.Equal(t, model.UserRatio{}, got)
}

func TestSumTotals(t *testing.T) {
	orders := []model.Order{{Total: 100}, {Total: 49.5}, {}}
	assert.Equal(t, 149.5, analytics.SumTotals(orders))
	assert.Zero(t, analytics.SumTotals(nil))
}

func TestDecomposeRevenue(t *testing.T) {
	orders := []model.Order{
		{Total: 600, Discount: 60, ShippingCharges: 30, Tax: 20},
		{Total: 400, Discount: 40, ShippingCharges: 20, Tax: 10},
	}

	got := analytics.DecomposeRevenue(orders)

	// Gross 1000: marketing is the fixed 30% cut, net margin what remains
	// after discount, shipping, tax and marketing.
	assert.Equal(t, 300.0, got.MarketingCost)
	assert.Equal(t, 520.0, got.NetMargin)
	assert.Equal(t, 100.0, got.Discount)
	assert.Equal(t, 50.0, got.ProductionCost)
	assert.Equal(t, 30.0, got.Burn)
}

func TestDecomposeRevenueEmpty(t *testing.T) {
	got := analytics.DecomposeRevenue(nil)
	assert.Equal(t, model.RevenueDistribution{}, got)
}
