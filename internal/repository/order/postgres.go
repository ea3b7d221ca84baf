package order

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

// Create inserts the order header, one order_items row per line, and
// decrements stock for every line, all inside one transaction. The stock
// decrement is unconditional subtraction: sufficiency was checked when the
// line entered the cart, and concurrent depletion between cart-add and
// checkout is not re-guarded here.
func (r *postgresRepo) Create(ctx context.Context, in CreateInput) (*domain.Order, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var order domain.Order
	order.BuyerID = in.BuyerID
	order.TotalCents = in.TotalCents
	err = tx.QueryRow(ctx, `
INSERT INTO orders (user_id, total_cents)
VALUES ($1, $2)
RETURNING id, created_at
`, in.BuyerID, in.TotalCents).Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		r.logger.Printf("order repo: insert header buyer=%d error=%v", in.BuyerID, err)
		return nil, err
	}

	for _, line := range in.Lines {
		var itemID int64
		err = tx.QueryRow(ctx, `
INSERT INTO order_items (order_id, product_id, quantity)
VALUES ($1, $2, $3)
RETURNING id
`, order.ID, line.ProductID, line.Quantity).Scan(&itemID)
		if err != nil {
			r.logger.Printf("order repo: insert item order=%d product=%d error=%v", order.ID, line.ProductID, err)
			return nil, err
		}
		if _, err := tx.Exec(ctx, `
UPDATE products
SET stock = stock - $1
WHERE id = $2
`, line.Quantity, line.ProductID); err != nil {
			r.logger.Printf("order repo: decrement stock product=%d error=%v", line.ProductID, err)
			return nil, err
		}
		order.Items = append(order.Items, domain.OrderItem{
			ID:        itemID,
			OrderID:   order.ID,
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		})
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	r.logger.Printf("order repo: created id=%d buyer=%d total_cents=%d lines=%d", order.ID, in.BuyerID, in.TotalCents, len(in.Lines))
	return &order, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	const q = `
SELECT id, user_id, total_cents, created_at
FROM orders
WHERE id = $1
`
	var o domain.Order
	err := r.pool.QueryRow(ctx, q, id).Scan(&o.ID, &o.BuyerID, &o.TotalCents, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("order repo: get id=%d error=%v", id, err)
		return nil, err
	}
	return &o, nil
}

// ItemsByOrder returns the order lines with the product name and current
// unit price joined in for invoice rendering. Lines whose product has
// vanished keep their quantity with empty name and zero price.
func (r *postgresRepo) ItemsByOrder(ctx context.Context, orderID int64) ([]domain.OrderItem, error) {
	const q = `
SELECT oi.id, oi.order_id, oi.product_id, oi.quantity, COALESCE(p.name, ''), COALESCE(p.price_cents, 0)
FROM order_items oi
LEFT JOIN products p ON p.id = oi.product_id
WHERE oi.order_id = $1
ORDER BY oi.id ASC
`
	rows, err := r.pool.Query(ctx, q, orderID)
	if err != nil {
		r.logger.Printf("order repo: items order=%d error=%v", orderID, err)
		return nil, err
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var it domain.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.Quantity, &it.ProductName, &it.UnitCents); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *postgresRepo) ListByBuyer(ctx context.Context, buyerID int64) ([]domain.Order, error) {
	const q = `
SELECT id, user_id, total_cents, created_at
FROM orders
WHERE user_id = $1
ORDER BY created_at DESC, id DESC
`
	rows, err := r.pool.Query(ctx, q, buyerID)
	if err != nil {
		r.logger.Printf("order repo: list buyer=%d error=%v", buyerID, err)
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.ID, &o.BuyerID, &o.TotalCents, &o.CreatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *postgresRepo) TopSelling(ctx context.Context, limit int) ([]domain.ProductSales, error) {
	const q = `
SELECT p.id, p.name, SUM(oi.quantity)::bigint AS units
FROM order_items oi
JOIN products p ON p.id = oi.product_id
GROUP BY p.id, p.name
ORDER BY units DESC, p.name ASC
LIMIT $1
`
	return r.querySales(ctx, q, limit)
}

func (r *postgresRepo) TopByBuyer(ctx context.Context, buyerID int64, limit int) ([]domain.ProductSales, error) {
	const q = `
SELECT p.id, p.name, SUM(oi.quantity)::bigint AS units
FROM order_items oi
JOIN orders o ON o.id = oi.order_id
JOIN products p ON p.id = oi.product_id
WHERE o.user_id = $1
GROUP BY p.id, p.name
ORDER BY units DESC, p.name ASC
LIMIT $2
`
	return r.querySales(ctx, q, buyerID, limit)
}

func (r *postgresRepo) querySales(ctx context.Context, q string, args ...interface{}) ([]domain.ProductSales, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		r.logger.Printf("order repo: sales query error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var sales []domain.ProductSales
	for rows.Next() {
		var s domain.ProductSales
		if err := rows.Scan(&s.ProductID, &s.Name, &s.UnitsSold); err != nil {
			return nil, err
		}
		sales = append(sales, s)
	}
	return sales, rows.Err()
}
