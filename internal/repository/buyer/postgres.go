package buyer

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

const selectColumns = `id, email, password_hash, first_name, last_name, identity_number, is_company, created_at`

func (r *postgresRepo) Create(ctx context.Context, b domain.Buyer) (*domain.Buyer, error) {
	const q = `
INSERT INTO users (email, password_hash, first_name, last_name, identity_number, is_company)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, created_at
`
	res := b
	err := r.pool.QueryRow(ctx, q, b.Email, b.PasswordHash, b.FirstName, b.LastName, b.IdentityNumber, b.Company).Scan(&res.ID, &res.CreatedAt)
	if err != nil {
		r.logger.Printf("buyer repo: create email=%s error=%v", b.Email, err)
		return nil, err
	}
	r.logger.Printf("buyer repo: created id=%d email=%s company=%t", res.ID, res.Email, res.Company)
	return &res, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.Buyer, error) {
	q := `SELECT ` + selectColumns + ` FROM users WHERE id = $1`
	return r.fetch(ctx, q, id)
}

func (r *postgresRepo) GetByEmail(ctx context.Context, email string) (*domain.Buyer, error) {
	q := `SELECT ` + selectColumns + ` FROM users WHERE email = $1`
	return r.fetch(ctx, q, email)
}

func (r *postgresRepo) fetch(ctx context.Context, q string, arg interface{}) (*domain.Buyer, error) {
	var b domain.Buyer
	err := r.pool.QueryRow(ctx, q, arg).Scan(
		&b.ID, &b.Email, &b.PasswordHash, &b.FirstName, &b.LastName, &b.IdentityNumber, &b.Company, &b.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("buyer repo: fetch error=%v", err)
		return nil, err
	}
	return &b, nil
}
