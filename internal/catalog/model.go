package catalog

// Product is immutable reference data. Optional attributes are pointers so
// "absent" and "zero" stay distinguishable: a nil SalePrice means the product
// is not on sale, while a SalePrice of 0 still means it is.
type Product struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Price       float64    `json:"price"`
	Image       string     `json:"image"`
	CategoryID  string     `json:"categoryId"`
	Rating      float64    `json:"rating"`
	Stock       int        `json:"stock"`
	InStock     *bool      `json:"inStock,omitempty"`
	SalePrice   *float64   `json:"salePrice,omitempty"`
	Brand       *string    `json:"brand,omitempty"`
	DateAdded   *Timestamp `json:"dateAdded,omitempty"`
	Specs       Specs      `json:"specs"`
}

// Available reports whether the product counts as in stock: a positive stock
// count, or an explicit inStock override. The override widens, it never
// hides stocked products.
func (p Product) Available() bool {
	return p.Stock > 0 || (p.InStock != nil && *p.InStock)
}

func (p Product) OnSale() bool {
	return p.SalePrice != nil
}

// AddedAt is DateAdded in epoch milliseconds, 0 when unknown.
func (p Product) AddedAt() int64 {
	if p.DateAdded == nil {
		return 0
	}
	return p.DateAdded.UnixMilli()
}

type Category struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Icon *string `json:"icon,omitempty"`
}

type Banner struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Image string `json:"image"`
	URL   string `json:"url"`
}

func BoolPtr(b bool) *bool        { return &b }
func FloatPtr(f float64) *float64 { return &f }
func StrPtr(s string) *string     { return &s }
