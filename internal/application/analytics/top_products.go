package analytics

import (
	"sort"

	"github.com/google/uuid"
	"github.com/kibetdev/salespulse-api/internal/domain/entity"
)

// DefaultTopProductsLimit caps the product ranking when the caller passes
// no explicit limit
const DefaultTopProductsLimit = 10

// ProductRank is one row of the top-selling products ranking
type ProductRank struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

// TopProducts aggregates quantity and revenue per product across the given
// sales and returns the best sellers by quantity, at most limit entries.
//
// Accumulation preserves first-encounter order so that quantity ties rank
// deterministically. The displayed name is the one seen on the product's
// first occurrence; a product renamed mid-period is not reconciled.
func TopProducts(sales []entity.Sale, limit int) []ProductRank {
	if limit <= 0 {
		limit = DefaultTopProductsLimit
	}

	index := make(map[uuid.UUID]int)
	ranks := make([]ProductRank, 0)

	for _, s := range sales {
		for _, item := range s.Items {
			i, ok := index[item.ProductID]
			if !ok {
				i = len(ranks)
				index[item.ProductID] = i
				ranks = append(ranks, ProductRank{Name: item.ProductName})
			}
			ranks[i].Quantity += item.Quantity
			ranks[i].Revenue += item.LineRevenue()
		}
	}

	sort.SliceStable(ranks, func(i, j int) bool {
		return ranks[i].Quantity > ranks[j].Quantity
	})

	if len(ranks) > limit {
		ranks = ranks[:limit]
	}
	return ranks
}
