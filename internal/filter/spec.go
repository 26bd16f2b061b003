package filter

import "strings"

type SortBy string

const (
	SortFeatured  SortBy = "featured"
	SortPriceLow  SortBy = "price-low"
	SortPriceHigh SortBy = "price-high"
	SortNewest    SortBy = "newest"
	SortBestRated SortBy = "best-rated"
)

// Price slider bounds of the filter drawer.
const (
	DefaultMinPrice = 0
	DefaultMaxPrice = 1000
)

// Brands offered by the filter drawer.
var Brands = []string{"Arduino", "Raspberry Pi", "Adafruit", "SparkFun", "Seeed Studio", "Elegoo", "DFRobot"}

// SortOptions lists every sort mode in drawer order.
var SortOptions = []SortBy{SortFeatured, SortPriceLow, SortPriceHigh, SortNewest, SortBestRated}

// Spec is the shopper's filter selection. It is treated as a value: applying
// new filters replaces the whole Spec.
type Spec struct {
	MinPrice float64  `json:"minPrice"`
	MaxPrice float64  `json:"maxPrice"`
	InStock  bool     `json:"inStock"`
	OnSale   bool     `json:"onSale"`
	Brands   []string `json:"brands"`
	SortBy   SortBy   `json:"sortBy"`
}

func Default() Spec {
	return Spec{
		MinPrice: DefaultMinPrice,
		MaxPrice: DefaultMaxPrice,
		Brands:   []string{},
		SortBy:   SortFeatured,
	}
}

// ParseSortBy maps a query value to a sort mode; anything unknown is featured.
func ParseSortBy(s string) SortBy {
	v := SortBy(strings.ToLower(strings.TrimSpace(s)))
	for _, opt := range SortOptions {
		if v == opt {
			return v
		}
	}
	return SortFeatured
}

// Normalize returns a copy with empty and duplicate brands dropped and an
// unknown sort mode reset to featured. Price bounds are kept as given: an
// inverted range matches nothing.
func (s Spec) Normalize() Spec {
	seen := make(map[string]struct{}, len(s.Brands))
	brands := make([]string, 0, len(s.Brands))
	for _, b := range s.Brands {
		b = strings.TrimSpace(b)
		if b == "" {
			continue
		}
		if _, dup := seen[b]; dup {
			continue
		}
		seen[b] = struct{}{}
		brands = append(brands, b)
	}
	s.Brands = brands
	s.SortBy = ParseSortBy(string(s.SortBy))

	return s
}

// ActiveCount is the number shown on the filter badge. Each condition counts
// at most once, so the result is between 0 and 6.
func ActiveCount(s Spec) int {
	n := 0
	if s.MinPrice > DefaultMinPrice {
		n++
	}
	if s.MaxPrice < DefaultMaxPrice {
		n++
	}
	if s.InStock {
		n++
	}
	if s.OnSale {
		n++
	}
	if len(s.Brands) > 0 {
		n++
	}
	if s.SortBy != SortFeatured {
		n++
	}
	return n
}
