package service

import (
	"context"

	"github.com/gov-comms/activity-tracker/internal/domain"
)

// ActivitiesService defines the interface for activity operations
type ActivitiesService interface {
	// Create inserts an activity and returns its mapped response
	Create(ctx context.Context, req *domain.CreateActivityRequest) (*domain.ActivityResponse, error)

	// FindAll returns mapped responses for every activity matching the filter
	FindAll(ctx context.Context, filter *domain.ActivityFilter) ([]*domain.ActivityResponse, error)

	// FindOne returns one mapped response, or a not-found error
	FindOne(ctx context.Context, id int64) (*domain.ActivityResponse, error)

	// Update applies a partial update and returns the refreshed response
	Update(ctx context.Context, id int64, req *domain.UpdateActivityRequest) (*domain.ActivityResponse, error)

	// Delete hard-deletes an activity
	Delete(ctx context.Context, id int64) error

	// SoftDelete deactivates an activity, refreshing its update timestamp
	SoftDelete(ctx context.Context, id int64) error
}
