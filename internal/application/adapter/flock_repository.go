// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/cluck-and-track/backend/internal/domain/entity"
)

// CoopRepository defines the interface for coop persistence operations.
type CoopRepository interface {
	// Create creates a new coop in the database.
	Create(ctx context.Context, coop *entity.Coop) error

	// FindByID retrieves a coop by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Coop, error)

	// FindAll retrieves all coops ordered by name.
	FindAll(ctx context.Context) ([]*entity.Coop, error)

	// Update updates an existing coop in the database.
	Update(ctx context.Context, coop *entity.Coop) error

	// Delete removes a coop from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}

// CageRepository defines the interface for cage persistence operations.
type CageRepository interface {
	// Create creates a new cage in the database.
	Create(ctx context.Context, cage *entity.Cage) error

	// FindByID retrieves a cage by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Cage, error)

	// FindAll retrieves all cages ordered by name.
	FindAll(ctx context.Context) ([]*entity.Cage, error)

	// FindByCoop retrieves all cages assigned to a coop.
	FindByCoop(ctx context.Context, coopID uuid.UUID) ([]*entity.Cage, error)

	// ExistsByName checks if a cage with the given name exists.
	ExistsByName(ctx context.Context, name string) (bool, error)

	// Update updates an existing cage in the database.
	Update(ctx context.Context, cage *entity.Cage) error

	// Delete removes a cage from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}

// FeedItemRepository defines the interface for feed inventory persistence operations.
type FeedItemRepository interface {
	// Create creates a new feed item in the database.
	Create(ctx context.Context, item *entity.FeedItem) error

	// FindByID retrieves a feed item by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.FeedItem, error)

	// FindAll retrieves all feed items ordered by name.
	FindAll(ctx context.Context) ([]*entity.FeedItem, error)

	// FindBelowReorderLevel retrieves feed items whose stock has fallen to
	// or below their reorder level.
	FindBelowReorderLevel(ctx context.Context) ([]*entity.FeedItem, error)

	// Update updates an existing feed item in the database.
	Update(ctx context.Context, item *entity.FeedItem) error

	// Delete removes a feed item from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
