package analytics

import (
	"math"
	"time"

	"github.com/shopora/api/model"
)

// PercentageChange is the month-over-month delta of a metric. Growth
// from a zero baseline has no defined percentage, so it is reported as
// current*100 to still signal unbounded growth, and 0 when both sides
// are zero.
func PercentageChange(current, previous float64) float64 {
	if previous == 0 {
		if current == 0 {
			return 0
		}
		return current * 100
	}
	return (current - previous) / previous * 100
}

// CategoryShare expresses each category's product count as a rounded
// percentage of the total. With no products every share is 0.
func CategoryShare(counts map[string]int64, total int64) map[string]int {
	shares := make(map[string]int, len(counts))
	for category, n := range counts {
		if total == 0 {
			shares[category] = 0
			continue
		}
		shares[category] = int(math.Round(float64(n) / float64(total) * 100))
	}
	return shares
}

// PartitionByAge classifies users by age as of the reference day:
// teen up to 18, adult 19 through 50, old beyond.
func PartitionByAge(users []model.User, ref time.Time) model.AgeGroups {
	var groups model.AgeGroups
	for _, u := range users {
		switch age := u.AgeAt(ref); {
		case age <= 18:
			groups.Teen++
		case age <= 50:
			groups.Adult++
		default:
			groups.Old++
		}
	}
	return groups
}

// GenderRatio infers the male count from the total rather than
// counting it independently; the model has exactly two genders.
func GenderRatio(totalUsers, femaleUsers int64) model.UserRatio {
	return model.UserRatio{
		Male:   totalUsers - femaleUsers,
		Female: femaleUsers,
	}
}

// SumTotals adds up order totals; a zero-valued Total on a partially
// populated record simply contributes nothing.
func SumTotals(orders []model.Order) float64 {
	var revenue float64
	for _, o := range orders {
		revenue += o.Total
	}
	return revenue
}

// DecomposeRevenue splits gross income into the distribution shown on
// the pie chart. Marketing cost is a fixed 30% heuristic of gross, not
// derived from order data.
func DecomposeRevenue(orders []model.Order) model.RevenueDistribution {
	var gross, discount, shipping, tax float64
	for _, o := range orders {
		gross += o.Total
		discount += o.Discount
		shipping += o.ShippingCharges
		tax += o.Tax
	}
	marketing := math.Round(gross * 0.30)
	return model.RevenueDistribution{
		NetMargin:      gross - discount - shipping - tax - marketing,
		Discount:       discount,
		ProductionCost: shipping,
		Burn:           tax,
		MarketingCost:  marketing,
	}
}
