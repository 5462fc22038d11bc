package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/gov-comms/activity-tracker/internal/domain"
	"github.com/gov-comms/activity-tracker/internal/mapper"
	"github.com/gov-comms/activity-tracker/internal/repository"
	apperrors "github.com/gov-comms/activity-tracker/pkg/errors"
	"github.com/gov-comms/activity-tracker/pkg/logger"
)

// ActivityService loads activity rows, resolves their related lookup
// data, and maps them into validated responses
type ActivityService struct {
	activities repository.ActivityStore
	lookups    repository.LookupResolver
	cache      *ResponseCache
	mapper     *mapper.Mapper
	log        *logger.Logger
}

func NewActivityService(
	activities repository.ActivityStore,
	lookups repository.LookupResolver,
	cache *ResponseCache,
	m *mapper.Mapper,
	log *logger.Logger,
) *ActivityService {
	return &ActivityService{
		activities: activities,
		lookups:    lookups,
		cache:      cache,
		mapper:     m,
		log:        log,
	}
}

// Create inserts an activity and returns its mapped response
func (s *ActivityService) Create(ctx context.Context, req *domain.CreateActivityRequest) (*domain.ActivityResponse, error) {
	a, err := activityFromCreateRequest(req)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error(), nil)
	}

	if err := s.activities.Create(ctx, a); err != nil {
		return nil, err
	}

	s.log.WithFields(map[string]interface{}{
		"activity_id":  a.ID,
		"display_code": a.DisplayCode,
	}).Info("Activity created")

	return s.respond(ctx, a)
}

// FindAll returns mapped responses for every activity matching the filter
func (s *ActivityService) FindAll(ctx context.Context, filter *domain.ActivityFilter) ([]*domain.ActivityResponse, error) {
	rows, err := s.activities.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(rows))
	for _, a := range rows {
		ids = append(ids, a.ID)
	}

	related, err := s.resolveRelated(ctx, ids)
	if err != nil {
		return nil, err
	}

	responses := make([]*domain.ActivityResponse, 0, len(rows))
	for _, a := range rows {
		resp, err := s.mapper.MapToResponse(a, related[a.ID])
		if err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

// FindOne returns one mapped response. A missing id is a not-found
// error; a partially-populated response is never returned.
func (s *ActivityService) FindOne(ctx context.Context, id int64) (*domain.ActivityResponse, error) {
	if resp, ok := s.cache.GetActivity(ctx, id); ok {
		return resp, nil
	}

	a, err := s.activities.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("Activity #%d not found", id))
	}

	resp, err := s.respond(ctx, a)
	if err != nil {
		return nil, err
	}
	s.cache.SetActivity(ctx, resp)
	return resp, nil
}

// Update applies a partial update, then refetches and remaps the row.
// The update and the refetch are separate statements; no transaction
// wraps them.
func (s *ActivityService) Update(ctx context.Context, id int64, req *domain.UpdateActivityRequest) (*domain.ActivityResponse, error) {
	found, err := s.activities.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("Activity #%d not found", id))
	}

	s.cache.Invalidate(ctx, id)

	a, err := s.activities.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("Activity #%d not found", id))
	}
	return s.respond(ctx, a)
}

// Delete hard-deletes an activity
func (s *ActivityService) Delete(ctx context.Context, id int64) error {
	found, err := s.activities.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return apperrors.NewNotFoundError(fmt.Sprintf("Activity #%d not found", id))
	}
	s.cache.Invalidate(ctx, id)
	s.log.WithField("activity_id", id).Info("Activity deleted")
	return nil
}

// SoftDelete deactivates an activity and refreshes its update timestamp
func (s *ActivityService) SoftDelete(ctx context.Context, id int64) error {
	found, err := s.activities.SoftDelete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return apperrors.NewNotFoundError(fmt.Sprintf("Activity #%d not found", id))
	}
	s.cache.Invalidate(ctx, id)
	s.log.WithField("activity_id", id).Info("Activity deactivated")
	return nil
}

// respond resolves related data for a single row and maps it
func (s *ActivityService) respond(ctx context.Context, a *domain.Activity) (*domain.ActivityResponse, error) {
	related, err := s.resolveRelated(ctx, []int64{a.ID})
	if err != nil {
		return nil, err
	}
	return s.mapper.MapToResponse(a, related[a.ID])
}

// resolveRelated issues the four lookup resolutions concurrently; they
// are independent reads and none mutates shared state
func (s *ActivityService) resolveRelated(ctx context.Context, ids []int64) (map[int64]*mapper.RelatedData, error) {
	var (
		categories map[int64][]string
		tags       map[int64][]domain.TagRef
		pitch      map[int64]string
		scheduling map[int64]string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		categories, err = s.lookups.ResolveCategories(gctx, ids)
		return err
	})
	g.Go(func() (err error) {
		tags, err = s.lookups.ResolveTags(gctx, ids)
		return err
	})
	g.Go(func() (err error) {
		pitch, err = s.lookups.ResolvePitchStatuses(gctx, ids)
		return err
	})
	g.Go(func() (err error) {
		scheduling, err = s.lookups.ResolveSchedulingStatuses(gctx, ids)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	related := make(map[int64]*mapper.RelatedData, len(ids))
	for _, id := range ids {
		related[id] = &mapper.RelatedData{
			Categories:       categories[id],
			Tags:             tags[id],
			PitchStatus:      pitch[id],
			SchedulingStatus: scheduling[id],
		}
	}
	return related, nil
}

// activityFromCreateRequest converts the validated creation schema into
// a storage row, parsing date strings into native dates
func activityFromCreateRequest(req *domain.CreateActivityRequest) (*domain.Activity, error) {
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("invalid startDate: %w", err)
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("invalid endDate: %w", err)
	}

	venue := req.VenueAddress
	if venue.Empty() {
		venue = nil
	}

	return &domain.Activity{
		DisplayCode: req.DisplayCode,
		Title:       &req.Title,
		Summary:     req.Summary,

		Significance:             req.Significance,
		SchedulingConsiderations: req.SchedulingConsiderations,
		PitchComments:            req.PitchComments,

		IsIssue:                 req.IsIssue,
		OicRelated:              req.OicRelated,
		IsConfidential:          req.IsConfidential,
		IsAllDay:                req.IsAllDay,
		NotForLookAhead:         req.NotForLookAhead,
		PlanningReport:          req.PlanningReport,
		ThirtySixtyNinetyReport: req.ThirtySixtyNinetyReport,
		IsActive:                boolPtr(true),

		StartDate: startDate,
		StartTime: req.StartTime,
		EndDate:   endDate,
		EndTime:   req.EndTime,

		VenueAddress: venue,

		ActivityStatusID:   req.ActivityStatusID,
		PitchStatusID:      req.PitchStatusID,
		SchedulingStatusID: req.SchedulingStatusID,
		ContactMinistryID:  req.ContactMinistryID,
		CityID:             req.CityID,

		LookAheadStatus:    req.LookAheadStatus,
		LookAheadSection:   req.LookAheadSection,
		CalendarVisibility: req.CalendarVisibility,

		OwnerID:        req.OwnerID,
		CommsLeadID:    req.CommsLeadID,
		EventLeadID:    req.EventLeadID,
		EventLeadName:  req.EventLeadName,
		VideographerID: req.VideographerID,
		GraphicsID:     req.GraphicsID,

		CreatedByID: req.CreatedByID,
	}, nil
}

func parseDate(v *string) (*time.Time, error) {
	if v == nil {
		return nil, nil
	}
	d, err := time.Parse("2006-01-02", *v)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func boolPtr(v bool) *bool {
	return &v
}
