package repository

import (
	"context"

	"github.com/gov-comms/activity-tracker/internal/domain"
)

// ActivityStore defines the interface for activity row operations
type ActivityStore interface {
	// Create inserts a new activity and fills its id and created timestamp
	Create(ctx context.Context, activity *domain.Activity) error

	// GetByID retrieves one activity, or nil when no row matches
	GetByID(ctx context.Context, id int64) (*domain.Activity, error)

	// List retrieves activities matching the filter
	List(ctx context.Context, filter *domain.ActivityFilter) ([]*domain.Activity, error)

	// Update applies a partial update and refreshes the update timestamp.
	// Returns false when no row matches.
	Update(ctx context.Context, id int64, req *domain.UpdateActivityRequest) (bool, error)

	// Delete hard-deletes an activity. Returns false when no row matches.
	Delete(ctx context.Context, id int64) (bool, error)

	// SoftDelete flips is_active off and refreshes the update timestamp.
	// Returns false when no row matches.
	SoftDelete(ctx context.Context, id int64) (bool, error)
}

// LookupResolver batch-resolves human-readable values for activity
// foreign keys. Missing or inactive data is a map miss, never an error.
type LookupResolver interface {
	ResolveCategories(ctx context.Context, ids []int64) (map[int64][]string, error)
	ResolveTags(ctx context.Context, ids []int64) (map[int64][]domain.TagRef, error)
	ResolvePitchStatuses(ctx context.Context, ids []int64) (map[int64]string, error)
	ResolveSchedulingStatuses(ctx context.Context, ids []int64) (map[int64]string, error)
}
