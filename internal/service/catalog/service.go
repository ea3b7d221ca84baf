package catalog

import (
	"context"
	"strings"

	"tienda/internal/domain"
	productrepo "tienda/internal/repository/product"
)

// Service covers the catalog surface: listing, lookup and seller edits.
type Service struct {
	repo productrepo.Repository
}

func New(repo productrepo.Repository) *Service {
	return &Service{repo: repo}
}

// CreateInput carries a seller's new product.
type CreateInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	PriceCents  int64  `json:"priceCents"`
	Stock       int    `json:"stock"`
	SellerID    *int64 `json:"sellerId,omitempty"`
}

// UpdateInput carries a seller's edit of an existing product.
type UpdateInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	PriceCents  int64  `json:"priceCents"`
	Stock       int    `json:"stock"`
}

func (s *Service) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Product, error) {
	if id <= 0 {
		return nil, domain.ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Product, error) {
	if err := validate(in.Name, in.PriceCents, in.Stock); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, domain.Product{
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		PriceCents:  in.PriceCents,
		Stock:       in.Stock,
		SellerID:    in.SellerID,
	})
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (*domain.Product, error) {
	if id <= 0 {
		return nil, domain.ErrNotFound
	}
	if err := validate(in.Name, in.PriceCents, in.Stock); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, domain.Product{
		ID:          id,
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		PriceCents:  in.PriceCents,
		Stock:       in.Stock,
	})
}

func validate(name string, priceCents int64, stock int) error {
	if strings.TrimSpace(name) == "" {
		return domain.ValidationError("name required")
	}
	if priceCents < 0 {
		return domain.ValidationError("price must not be negative")
	}
	if stock < 0 {
		return domain.ValidationError("stock must not be negative")
	}
	return nil
}
