package filter

import (
	"cmp"
	"slices"

	"boldstore-be/internal/catalog"
)

// Apply filters products by spec and orders the survivors by spec.SortBy.
// The input slice is never modified; ties keep their input order.
func Apply(products []catalog.Product, spec Spec) []catalog.Product {
	var brands map[string]struct{}
	if len(spec.Brands) > 0 {
		brands = make(map[string]struct{}, len(spec.Brands))
		for _, b := range spec.Brands {
			brands[b] = struct{}{}
		}
	}

	out := make([]catalog.Product, 0, len(products))
	for _, p := range products {
		if p.Price < spec.MinPrice || p.Price > spec.MaxPrice {
			continue
		}
		if spec.InStock && !p.Available() {
			continue
		}
		if spec.OnSale && !p.OnSale() {
			continue
		}
		if brands != nil {
			if p.Brand == nil {
				continue
			}
			if _, ok := brands[*p.Brand]; !ok {
				continue
			}
		}
		out = append(out, p)
	}

	sortProducts(out, spec.SortBy)
	return out
}

func sortProducts(products []catalog.Product, by SortBy) {
	switch by {
	case SortPriceLow:
		slices.SortStableFunc(products, func(a, b catalog.Product) int {
			return cmp.Compare(a.Price, b.Price)
		})
	case SortPriceHigh:
		slices.SortStableFunc(products, func(a, b catalog.Product) int {
			return cmp.Compare(b.Price, a.Price)
		})
	case SortNewest:
		slices.SortStableFunc(products, func(a, b catalog.Product) int {
			return cmp.Compare(b.AddedAt(), a.AddedAt())
		})
	case SortBestRated:
		slices.SortStableFunc(products, func(a, b catalog.Product) int {
			return cmp.Compare(b.Rating, a.Rating)
		})
	}
}
