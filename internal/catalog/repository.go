package catalog

import "context"

// Repository is the read-only source of catalog reference data.
type Repository interface {
	Products(ctx context.Context) ([]Product, error)
	Categories(ctx context.Context) ([]Category, error)
	Banners(ctx context.Context) ([]Banner, error)
}

type memoryRepository struct {
	products   []Product
	categories []Category
	banners    []Banner
}

func NewMemoryRepository(products []Product, categories []Category, banners []Banner) Repository {
	return &memoryRepository{
		products:   products,
		categories: categories,
		banners:    banners,
	}
}

// NewSeededRepository serves the built-in storefront data.
func NewSeededRepository() Repository {
	return NewMemoryRepository(SeedProducts(), SeedCategories(), SeedBanners())
}

func (r *memoryRepository) Products(_ context.Context) ([]Product, error) {
	return append([]Product(nil), r.products...), nil
}

func (r *memoryRepository) Categories(_ context.Context) ([]Category, error) {
	return append([]Category(nil), r.categories...), nil
}

func (r *memoryRepository) Banners(_ context.Context) ([]Banner, error) {
	return append([]Banner(nil), r.banners...), nil
}
