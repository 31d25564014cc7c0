package repository

import (
	"context"

	"github.com/webcraft-academy/elearn-api/internal/domain/entity"
)

// CartRepository defines the interface for cart mutations and reads.
type CartRepository interface {
	// AddItem inserts a cart row for (userID, courseID). It must be atomic:
	// when the course is already in the cart it returns ErrDuplicate without
	// a separate read-check-write sequence.
	AddItem(ctx context.Context, userID, courseID string) (*entity.CartItem, error)
	// RemoveItem deletes the matching row; ErrNotFound when absent.
	RemoveItem(ctx context.Context, userID, courseID string) error
	// Clear empties the user's cart. Clearing an empty cart is not an error.
	Clear(ctx context.Context, userID string) error
	// Items returns the user's cart with course data expanded where the
	// course still exists.
	Items(ctx context.Context, userID string) ([]*entity.CartItem, error)
	// Aggregate scans every cart and sums item counts and course prices.
	// Dangling course references count as zero earnings.
	Aggregate(ctx context.Context) (*entity.CartAggregate, error)
}
