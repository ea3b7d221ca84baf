package recommend

import (
	"context"
	"io"
	"log"

	"tienda/internal/domain"
)

// Service ranks products by historical units sold. Ranking is best-effort:
// repository failures are logged and collapse to an empty list at this
// boundary, so callers never render an error for a missing shelf.
type Service struct {
	sales  salesRepo
	logger *log.Logger
}

type salesRepo interface {
	TopSelling(ctx context.Context, limit int) ([]domain.ProductSales, error)
	TopByBuyer(ctx context.Context, buyerID int64, limit int) ([]domain.ProductSales, error)
}

func New(sales salesRepo, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{sales: sales, logger: logger}
}

// TopSelling returns at most limit products ordered by units sold descending,
// ties broken by ascending product name. A non-positive limit yields an empty
// list, not an unlimited query.
func (s *Service) TopSelling(ctx context.Context, limit int) []domain.ProductSales {
	if limit <= 0 {
		return []domain.ProductSales{}
	}
	sales, err := s.sales.TopSelling(ctx, limit)
	if err != nil {
		s.logger.Printf("recommend: top selling degraded to empty: %v", err)
		return []domain.ProductSales{}
	}
	if sales == nil {
		return []domain.ProductSales{}
	}
	return sales
}

// TopForBuyer is TopSelling restricted to one buyer's order history.
func (s *Service) TopForBuyer(ctx context.Context, buyerID int64, limit int) []domain.ProductSales {
	if buyerID <= 0 || limit <= 0 {
		return []domain.ProductSales{}
	}
	sales, err := s.sales.TopByBuyer(ctx, buyerID, limit)
	if err != nil {
		s.logger.Printf("recommend: top for buyer %d degraded to empty: %v", buyerID, err)
		return []domain.ProductSales{}
	}
	if sales == nil {
		return []domain.ProductSales{}
	}
	return sales
}
