package filter

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
)

// FromQuery builds a Spec from URL query parameters, starting from Default.
// brands may be repeated or comma separated.
func FromQuery(q url.Values) (Spec, error) {
	spec := Default()

	if v := q.Get("minPrice"); v != "" {
		f, err := parsePrice(v)
		if err != nil {
			return Spec{}, fmt.Errorf("%w: minPrice %q", ErrInvalidQuery, v)
		}
		spec.MinPrice = f
	}
	if v := q.Get("maxPrice"); v != "" {
		f, err := parsePrice(v)
		if err != nil {
			return Spec{}, fmt.Errorf("%w: maxPrice %q", ErrInvalidQuery, v)
		}
		spec.MaxPrice = f
	}
	if v := q.Get("inStock"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Spec{}, fmt.Errorf("%w: inStock %q", ErrInvalidQuery, v)
		}
		spec.InStock = b
	}
	if v := q.Get("onSale"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Spec{}, fmt.Errorf("%w: onSale %q", ErrInvalidQuery, v)
		}
		spec.OnSale = b
	}
	for _, v := range q["brands"] {
		spec.Brands = append(spec.Brands, strings.Split(v, ",")...)
	}
	if v := q.Get("sortBy"); v != "" {
		spec.SortBy = SortBy(v)
	}

	if spec.MinPrice > spec.MaxPrice {
		return Spec{}, fmt.Errorf("%w: minPrice %v is above maxPrice %v", ErrInvalidQuery, spec.MinPrice, spec.MaxPrice)
	}

	return spec.Normalize(), nil
}

// parsePrice accepts finite, non-negative numbers only.
func parsePrice(v string) (float64, error) {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0, fmt.Errorf("price out of range")
	}
	return f, nil
}
