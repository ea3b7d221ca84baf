package product

import (
	"context"
	"errors"
	"io"
	"log"

	"tienda/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Product, error) {
	const q = `
SELECT id, name, COALESCE(description, ''), price_cents, stock, seller_id, created_at
FROM products
ORDER BY created_at DESC, id DESC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Printf("product repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.PriceCents, &p.Stock, &p.SellerID, &p.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("product repo: list rows error=%v", err)
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	const q = `
SELECT id, name, COALESCE(description, ''), price_cents, stock, seller_id, created_at
FROM products
WHERE id = $1
`
	var p domain.Product
	err := r.pool.QueryRow(ctx, q, id).Scan(&p.ID, &p.Name, &p.Description, &p.PriceCents, &p.Stock, &p.SellerID, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: get id=%d error=%v", id, err)
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepo) Create(ctx context.Context, p domain.Product) (*domain.Product, error) {
	const q = `
INSERT INTO products (name, description, price_cents, stock, seller_id)
VALUES ($1, NULLIF($2, ''), $3, $4, $5)
RETURNING id, created_at
`
	res := p
	err := r.pool.QueryRow(ctx, q, p.Name, p.Description, p.PriceCents, p.Stock, p.SellerID).Scan(&res.ID, &res.CreatedAt)
	if err != nil {
		r.logger.Printf("product repo: create name=%q error=%v", p.Name, err)
		return nil, err
	}
	r.logger.Printf("product repo: created id=%d name=%q", res.ID, res.Name)
	return &res, nil
}

func (r *postgresRepo) Update(ctx context.Context, p domain.Product) (*domain.Product, error) {
	const q = `
UPDATE products
SET name = $1, description = NULLIF($2, ''), price_cents = $3, stock = $4
WHERE id = $5
RETURNING id, name, COALESCE(description, ''), price_cents, stock, seller_id, created_at
`
	var res domain.Product
	err := r.pool.QueryRow(ctx, q, p.Name, p.Description, p.PriceCents, p.Stock, p.ID).Scan(
		&res.ID, &res.Name, &res.Description, &res.PriceCents, &res.Stock, &res.SellerID, &res.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: update id=%d error=%v", p.ID, err)
		return nil, err
	}
	return &res, nil
}
