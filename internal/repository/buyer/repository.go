package buyer

import (
	"context"

	"tienda/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, b domain.Buyer) (*domain.Buyer, error)
	GetByID(ctx context.Context, id int64) (*domain.Buyer, error)
	GetByEmail(ctx context.Context, email string) (*domain.Buyer, error)
}
