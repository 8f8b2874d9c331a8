package dashboard

import (
	"sort"

	"github.com/budget-planner/backend/internal/domain/entity"
)

// CategoryTotals maps every taxonomy member to its expense total.
type CategoryTotals map[entity.Category]float64

// CategoryAmount is one category's spend and its share of total spend, in [0,1].
type CategoryAmount struct {
	Category   entity.Category
	Amount     float64
	Percentage float64
}

// TotalByCategory sums expenses per category. Every taxonomy member is present,
// at 0 when unmatched, and keys outside the taxonomy count toward the fallback.
func TotalByCategory(tax *entity.Taxonomy, transactions []*entity.Transaction) CategoryTotals {
	totals := make(CategoryTotals, tax.Len())
	for _, c := range tax.Categories() {
		totals[c] = 0
	}

	for _, t := range transactions {
		if t == nil || !t.IsExpense {
			continue
		}
		c := tax.Resolve(t.Category)
		totals[c] = finiteOrZero(totals[c] + sanitizeAmount(t.Amount))
	}

	return totals
}

// SortedDescending drops zero totals and orders the rest by amount, largest first.
// Equal amounts keep taxonomy declaration order.
func SortedDescending(tax *entity.Taxonomy, totals CategoryTotals) []CategoryAmount {
	var sum float64
	items := make([]CategoryAmount, 0, len(totals))
	for _, c := range tax.Categories() {
		amount := sanitizeAmount(totals[c])
		if amount <= 0 {
			continue
		}
		items = append(items, CategoryAmount{Category: c, Amount: amount})
		sum += amount
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Amount > items[j].Amount
	})

	for i := range items {
		items[i].Percentage = PercentageOfTotal(items[i].Amount, sum)
	}

	return items
}

// PercentageOfTotal returns amount/total clamped to [0,1], or 0 when total <= 0.
func PercentageOfTotal(amount, total float64) float64 {
	share := safeDivide(amount, total)
	switch {
	case share < 0:
		return 0
	case share > 1:
		return 1
	default:
		return share
	}
}

// TopN returns at most the first n items.
func TopN(items []CategoryAmount, n int) []CategoryAmount {
	if n <= 0 {
		return []CategoryAmount{}
	}
	if n > len(items) {
		n = len(items)
	}
	top := make([]CategoryAmount, n)
	copy(top, items[:n])
	return top
}
