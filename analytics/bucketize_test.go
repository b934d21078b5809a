// api/analytics/bucketize_test.go
package analytics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/shopora/api/analytics"
	"github.com/shopora/api/model"
)

func orderAt(t time.Time, total float64) model.Order {
	return model.Order{Total: total, CreatedAt: t}
}

func createdAt(o model.Order) time.Time { return o.CreatedAt }
func total(o model.Order) float64       { return o.Total }

func TestCountByMonth(t *testing.T) {
	ref := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

	t.Run("BucketsByCalendarMonth", func(t *testing.T) {
		orders := []model.Order{
			orderAt(time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC), 10),
			orderAt(time.Date(2024, time.June, 30, 23, 0, 0, 0, time.UTC), 10),
			orderAt(time.Date(2024, time.May, 20, 0, 0, 0, 0, time.UTC), 10),
			orderAt(time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC), 10),
		}

		got := analytics.CountByMonth(orders, createdAt, ref, 6)

		// Index 0 is January, index 5 the current month.
		assert.Equal(t, []int{1, 0, 0, 0, 1, 2}, got)
	})

	t.Run("ExcludesRecordsOutsideWindow", func(t *testing.T) {
		orders := []model.Order{
			orderAt(time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC), 10),
			orderAt(time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC), 10),
		}

		got := analytics.CountByMonth(orders, createdAt, ref, 6)

		assert.Equal(t, []int{0, 0, 0, 0, 0, 0}, got)
	})

	t.Run("YearBoundary", func(t *testing.T) {
		ref := time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC)
		orders := []model.Order{
			orderAt(time.Date(2023, time.December, 25, 0, 0, 0, 0, time.UTC), 10),
		}

		got := analytics.CountByMonth(orders, createdAt, ref, 6)

		// December 2023 is two months before February 2024.
		assert.Equal(t, []int{0, 0, 0, 1, 0, 0}, got)
	})

	t.Run("EmptyInput", func(t *testing.T) {
		got := analytics.CountByMonth(nil, createdAt, ref, 12)
		assert.Len(t, got, 12)
		for _, n := range got {
			assert.Zero(t, n)
		}
	})
}

func TestSumByMonth(t *testing.T) {
	ref := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)

	orders := []model.Order{
		orderAt(time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC), 100),
		orderAt(time.Date(2024, time.June, 2, 0, 0, 0, 0, time.UTC), 50),
		orderAt(time.Date(2024, time.April, 9, 0, 0, 0, 0, time.UTC), 25),
	}

	got := analytics.SumByMonth(orders, createdAt, total, ref, 6)

	assert.Equal(t, []float64{0, 0, 0, 25, 0, 150}, got)

	// Buckets must account for exactly the in-window records.
	var sum float64
	for _, v := range got {
		sum += v
	}
	assert.Equal(t, 175.0, sum)
}
