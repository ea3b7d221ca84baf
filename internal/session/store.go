// Package session persists the per-session cart. Sessions are identified by
// an opaque id carried in a cookie; the cart never outlives its session.
package session

import (
	"context"

	"tienda/internal/domain"
)

// Store loads and saves a session's cart. Load of an unknown session yields
// an empty cart, not an error.
type Store interface {
	Load(ctx context.Context, sessionID string) (*domain.Cart, error)
	Save(ctx context.Context, sessionID string, c *domain.Cart) error
	Clear(ctx context.Context, sessionID string) error
}
