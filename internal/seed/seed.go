package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

type productSeed struct {
	Name        string
	Description string
	PriceCents  int64
	Stock       int64
}

type buyerSeed struct {
	Email          string
	Password       string
	FirstName      string
	LastName       string
	IdentityNumber string
	Company        bool
}

// Apply inserts basic demo data for manual testing. It is idempotent:
// buyers upsert on email and products insert only when the name is absent.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	buyers := []buyerSeed{
		{
			Email:          "ana@example.com",
			Password:       "Contrasena1",
			FirstName:      "Ana",
			LastName:       "García",
			IdentityNumber: "12345678Z",
		},
		{
			Email:          "acme@example.com",
			Password:       "Contrasena1",
			FirstName:      "Acme",
			LastName:       "SL",
			IdentityNumber: "B12345674",
			Company:        true,
		},
	}

	for _, b := range buyers {
		if err := upsertBuyer(ctx, pool, b); err != nil {
			return fmt.Errorf("upsert buyer %s: %w", b.Email, err)
		}
	}

	products := []productSeed{
		{Name: "Camiseta básica", Description: "Camiseta de algodón", PriceCents: 1999, Stock: 40},
		{Name: "Taza de cerámica", Description: "Taza con asa grande", PriceCents: 1299, Stock: 25},
		{Name: "Libreta A5", Description: "Libreta de tapa dura", PriceCents: 899, Stock: 60},
		{Name: "Auriculares", Description: "Auriculares con cable", PriceCents: 4295, Stock: 12},
	}

	for _, p := range products {
		if err := ensureProduct(ctx, pool, p); err != nil {
			return fmt.Errorf("ensure product %s: %w", p.Name, err)
		}
	}

	return nil
}

func upsertBuyer(ctx context.Context, pool *pgxpool.Pool, b buyerSeed) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(b.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	const q = `
INSERT INTO users (email, password_hash, first_name, last_name, identity_number, is_company)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (email) DO UPDATE
SET first_name = EXCLUDED.first_name,
    last_name = EXCLUDED.last_name,
    identity_number = EXCLUDED.identity_number,
    is_company = EXCLUDED.is_company
`
	_, err = pool.Exec(ctx, q, b.Email, string(hash), b.FirstName, b.LastName, b.IdentityNumber, b.Company)
	return err
}

func ensureProduct(ctx context.Context, pool *pgxpool.Pool, p productSeed) error {
	const q = `
INSERT INTO products (name, description, price_cents, stock)
SELECT $1, $2, $3, $4
WHERE NOT EXISTS (SELECT 1 FROM products WHERE name = $1)
`
	_, err := pool.Exec(ctx, q, p.Name, p.Description, p.PriceCents, p.Stock)
	return err
}
