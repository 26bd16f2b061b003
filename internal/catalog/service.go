package catalog

import (
	"context"
	"strings"

	"boldstore-be/internal/logger"

	"go.uber.org/zap"
)

// FeaturedLimit is how many products the home screen features.
const FeaturedLimit = 6

type Service interface {
	ListProducts(ctx context.Context) ([]Product, error)
	ListCategories(ctx context.Context) ([]Category, error)
	ListBanners(ctx context.Context) ([]Banner, error)
	GetCategory(ctx context.Context, id string) (*Category, error)
	GetProduct(ctx context.Context, id string) (*Product, error)
	ProductsByCategory(ctx context.Context, categoryID string) (*Category, []Product, error)
	Featured(ctx context.Context) ([]Product, error)
	Search(ctx context.Context, query string) ([]Product, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListProducts(ctx context.Context) ([]Product, error) {
	return s.repo.Products(ctx)
}

func (s *service) ListCategories(ctx context.Context) ([]Category, error) {
	return s.repo.Categories(ctx)
}

func (s *service) ListBanners(ctx context.Context) ([]Banner, error) {
	return s.repo.Banners(ctx)
}

func (s *service) GetCategory(ctx context.Context, id string) (*Category, error) {
	categories, err := s.repo.Categories(ctx)
	if err != nil {
		return nil, err
	}

	for i := range categories {
		if categories[i].ID == id {
			return &categories[i], nil
		}
	}

	logger.FromCtx(ctx).Debug("category not found",
		zap.String("layer", "service"),
		zap.String("category_id", id),
	)
	return nil, ErrCategoryNotFound
}

func (s *service) GetProduct(ctx context.Context, id string) (*Product, error) {
	products, err := s.repo.Products(ctx)
	if err != nil {
		return nil, err
	}

	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}

	logger.FromCtx(ctx).Debug("product not found",
		zap.String("layer", "service"),
		zap.String("product_id", id),
	)
	return nil, ErrProductNotFound
}

// ProductsByCategory returns the category and its products in catalog order.
// An unknown category is an error; a known category without products is not.
func (s *service) ProductsByCategory(ctx context.Context, categoryID string) (*Category, []Product, error) {
	category, err := s.GetCategory(ctx, categoryID)
	if err != nil {
		return nil, nil, err
	}

	products, err := s.repo.Products(ctx)
	if err != nil {
		return nil, nil, err
	}

	out := make([]Product, 0, len(products))
	for _, p := range products {
		if p.CategoryID == categoryID {
			out = append(out, p)
		}
	}

	return category, out, nil
}

func (s *service) Featured(ctx context.Context) ([]Product, error) {
	products, err := s.repo.Products(ctx)
	if err != nil {
		return nil, err
	}
	if len(products) > FeaturedLimit {
		products = products[:FeaturedLimit]
	}
	return products, nil
}

// Search matches the trimmed query case-insensitively against name,
// description and category id. A blank query matches nothing.
func (s *service) Search(ctx context.Context, query string) ([]Product, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []Product{}, nil
	}

	products, err := s.repo.Products(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]Product, 0)
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) ||
			strings.Contains(strings.ToLower(p.CategoryID), q) {
			out = append(out, p)
		}
	}

	logger.FromCtx(ctx).Debug("catalog search",
		zap.String("layer", "service"),
		zap.String("query", q),
		zap.Int("matches", len(out)),
	)
	return out, nil
}
