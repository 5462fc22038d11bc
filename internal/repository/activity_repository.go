package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/gov-comms/activity-tracker/internal/domain"
	"github.com/gov-comms/activity-tracker/pkg/database"
)

// activityColumns is the full column list scanned into domain.Activity,
// in scanActivity order
const activityColumns = `
	id, display_code, title, summary,
	significance, scheduling_considerations, pitch_comments,
	is_issue, oic_related, is_confidential, is_all_day,
	not_for_look_ahead, planning_report, thirty_sixty_ninety_report, is_active,
	start_date, start_time, end_date, end_time,
	venue_address,
	activity_status_id, pitch_status_id, scheduling_status_id,
	contact_ministry_id, city_id,
	look_ahead_status, look_ahead_section, calendar_visibility,
	owner_id, comms_lead_id, event_lead_id, event_lead_name,
	videographer_id, graphics_id,
	created_by_id, last_updated_by_id,
	created_datetime, last_updated_datetime`

type ActivityRepository struct {
	db *database.PostgresDB
}

func NewActivityRepository(db *database.PostgresDB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// Create inserts a new activity row, stamping created_datetime
func (r *ActivityRepository) Create(ctx context.Context, a *domain.Activity) error {
	query := `
		INSERT INTO activities (
			display_code, title, summary,
			significance, scheduling_considerations, pitch_comments,
			is_issue, oic_related, is_confidential, is_all_day,
			not_for_look_ahead, planning_report, thirty_sixty_ninety_report, is_active,
			start_date, start_time, end_date, end_time,
			venue_address,
			activity_status_id, pitch_status_id, scheduling_status_id,
			contact_ministry_id, city_id,
			look_ahead_status, look_ahead_section, calendar_visibility,
			owner_id, comms_lead_id, event_lead_id, event_lead_name,
			videographer_id, graphics_id,
			created_by_id, created_datetime
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
		        $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26,
		        $27, $28, $29, $30, $31, $32, $33, $34, now())
		RETURNING id, created_datetime
	`

	err := r.db.Pool.QueryRow(ctx, query,
		a.DisplayCode,
		a.Title,
		a.Summary,
		a.Significance,
		a.SchedulingConsiderations,
		a.PitchComments,
		a.IsIssue,
		a.OicRelated,
		a.IsConfidential,
		a.IsAllDay,
		a.NotForLookAhead,
		a.PlanningReport,
		a.ThirtySixtyNinetyReport,
		a.IsActive,
		a.StartDate,
		a.StartTime,
		a.EndDate,
		a.EndTime,
		a.VenueAddress,
		a.ActivityStatusID,
		a.PitchStatusID,
		a.SchedulingStatusID,
		a.ContactMinistryID,
		a.CityID,
		a.LookAheadStatus,
		a.LookAheadSection,
		a.CalendarVisibility,
		a.OwnerID,
		a.CommsLeadID,
		a.EventLeadID,
		a.EventLeadName,
		a.VideographerID,
		a.GraphicsID,
		a.CreatedByID,
	).Scan(&a.ID, &a.CreatedDateTime)

	if err != nil {
		return fmt.Errorf("failed to create activity: %w", err)
	}
	return nil
}

// GetByID retrieves one activity row, or nil when absent
func (r *ActivityRepository) GetByID(ctx context.Context, id int64) (*domain.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities WHERE id = $1`

	a, err := scanActivity(r.db.Pool.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get activity: %w", err)
	}
	return a, nil
}

// List retrieves activity rows matching the filter, ordered by id
func (r *ActivityRepository) List(ctx context.Context, filter *domain.ActivityFilter) ([]*domain.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities`
	where, args := buildFilterClauses(filter)
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY id"

	rows, err := r.db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	defer rows.Close()

	var activities []*domain.Activity
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read activities: %w", err)
	}
	return activities, nil
}

// Update applies the non-nil fields of req and refreshes
// last_updated_datetime. Returns false when no row matched.
func (r *ActivityRepository) Update(ctx context.Context, id int64, req *domain.UpdateActivityRequest) (bool, error) {
	set, args, err := buildUpdateClauses(req)
	if err != nil {
		return false, err
	}

	// Timestamp refresh happens even when the body carried no fields
	set = append(set, "last_updated_datetime = now()")

	args = append(args, id)
	query := fmt.Sprintf("UPDATE activities SET %s WHERE id = $%d",
		strings.Join(set, ", "), len(args))

	tag, err := r.db.Pool.Exec(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to update activity: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Delete hard-deletes an activity row
func (r *ActivityRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Pool.Exec(ctx, `DELETE FROM activities WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete activity: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// SoftDelete flips is_active off and refreshes the update timestamp
func (r *ActivityRepository) SoftDelete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Pool.Exec(ctx,
		`UPDATE activities SET is_active = false, last_updated_datetime = now() WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to soft-delete activity: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// scanActivity scans one row in activityColumns order
func scanActivity(row pgx.Row) (*domain.Activity, error) {
	var a domain.Activity
	err := row.Scan(
		&a.ID,
		&a.DisplayCode,
		&a.Title,
		&a.Summary,
		&a.Significance,
		&a.SchedulingConsiderations,
		&a.PitchComments,
		&a.IsIssue,
		&a.OicRelated,
		&a.IsConfidential,
		&a.IsAllDay,
		&a.NotForLookAhead,
		&a.PlanningReport,
		&a.ThirtySixtyNinetyReport,
		&a.IsActive,
		&a.StartDate,
		&a.StartTime,
		&a.EndDate,
		&a.EndTime,
		&a.VenueAddress,
		&a.ActivityStatusID,
		&a.PitchStatusID,
		&a.SchedulingStatusID,
		&a.ContactMinistryID,
		&a.CityID,
		&a.LookAheadStatus,
		&a.LookAheadSection,
		&a.CalendarVisibility,
		&a.OwnerID,
		&a.CommsLeadID,
		&a.EventLeadID,
		&a.EventLeadName,
		&a.VideographerID,
		&a.GraphicsID,
		&a.CreatedByID,
		&a.LastUpdatedByID,
		&a.CreatedDateTime,
		&a.LastUpdatedDateTime,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// buildFilterClauses converts the list filter into WHERE fragments
func buildFilterClauses(filter *domain.ActivityFilter) ([]string, []interface{}) {
	var where []string
	var args []interface{}

	if filter == nil {
		return where, args
	}

	add := func(clause string, arg interface{}) {
		args = append(args, arg)
		where = append(where, fmt.Sprintf(clause, len(args)))
	}

	if filter.Title != nil {
		add("title ILIKE '%%' || $%d || '%%'", *filter.Title)
	}
	if filter.ActivityStatusID != nil {
		add("activity_status_id = $%d", *filter.ActivityStatusID)
	}
	if filter.IsActive != nil {
		add("is_active = $%d", *filter.IsActive)
	}
	if filter.IsConfidential != nil {
		add("is_confidential = $%d", *filter.IsConfidential)
	}
	if filter.IsIssue != nil {
		add("is_issue = $%d", *filter.IsIssue)
	}
	if filter.ContactMinistryID != nil {
		add("contact_ministry_id = $%d", *filter.ContactMinistryID)
	}
	if filter.CityID != nil {
		add("city_id = $%d", *filter.CityID)
	}
	if filter.StartDateFrom != nil {
		add("start_date >= $%d", *filter.StartDateFrom)
	}
	if filter.StartDateTo != nil {
		add("start_date <= $%d", *filter.StartDateTo)
	}
	if filter.EndDateFrom != nil {
		add("end_date >= $%d", *filter.EndDateFrom)
	}
	if filter.EndDateTo != nil {
		add("end_date <= $%d", *filter.EndDateTo)
	}

	return where, args
}

// buildUpdateClauses converts the non-nil request fields into SET
// fragments, parsing date strings into native dates
func buildUpdateClauses(req *domain.UpdateActivityRequest) ([]string, []interface{}, error) {
	var set []string
	var args []interface{}

	add := func(column string, arg interface{}) {
		args = append(args, arg)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	addDate := func(column string, v *string) error {
		d, err := time.Parse("2006-01-02", *v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", column, *v, err)
		}
		add(column, d)
		return nil
	}

	if req.DisplayCode != nil {
		add("display_code", *req.DisplayCode)
	}
	if req.Title != nil {
		add("title", *req.Title)
	}
	if req.Summary != nil {
		add("summary", *req.Summary)
	}
	if req.Significance != nil {
		add("significance", *req.Significance)
	}
	if req.SchedulingConsiderations != nil {
		add("scheduling_considerations", *req.SchedulingConsiderations)
	}
	if req.PitchComments != nil {
		add("pitch_comments", *req.PitchComments)
	}
	if req.IsIssue != nil {
		add("is_issue", *req.IsIssue)
	}
	if req.OicRelated != nil {
		add("oic_related", *req.OicRelated)
	}
	if req.IsConfidential != nil {
		add("is_confidential", *req.IsConfidential)
	}
	if req.IsAllDay != nil {
		add("is_all_day", *req.IsAllDay)
	}
	if req.NotForLookAhead != nil {
		add("not_for_look_ahead", *req.NotForLookAhead)
	}
	if req.PlanningReport != nil {
		add("planning_report", *req.PlanningReport)
	}
	if req.ThirtySixtyNinetyReport != nil {
		add("thirty_sixty_ninety_report", *req.ThirtySixtyNinetyReport)
	}
	if req.IsActive != nil {
		add("is_active", *req.IsActive)
	}
	if req.StartDate != nil {
		if err := addDate("start_date", req.StartDate); err != nil {
			return nil, nil, err
		}
	}
	if req.StartTime != nil {
		add("start_time", *req.StartTime)
	}
	if req.EndDate != nil {
		if err := addDate("end_date", req.EndDate); err != nil {
			return nil, nil, err
		}
	}
	if req.EndTime != nil {
		add("end_time", *req.EndTime)
	}
	if req.VenueAddress != nil {
		add("venue_address", req.VenueAddress)
	}
	if req.ActivityStatusID != nil {
		add("activity_status_id", *req.ActivityStatusID)
	}
	if req.PitchStatusID != nil {
		add("pitch_status_id", *req.PitchStatusID)
	}
	if req.SchedulingStatusID != nil {
		add("scheduling_status_id", *req.SchedulingStatusID)
	}
	if req.ContactMinistryID != nil {
		add("contact_ministry_id", *req.ContactMinistryID)
	}
	if req.CityID != nil {
		add("city_id", *req.CityID)
	}
	if req.LookAheadStatus != nil {
		add("look_ahead_status", *req.LookAheadStatus)
	}
	if req.LookAheadSection != nil {
		add("look_ahead_section", *req.LookAheadSection)
	}
	if req.CalendarVisibility != nil {
		add("calendar_visibility", *req.CalendarVisibility)
	}
	if req.OwnerID != nil {
		add("owner_id", *req.OwnerID)
	}
	if req.CommsLeadID != nil {
		add("comms_lead_id", *req.CommsLeadID)
	}
	if req.EventLeadID != nil {
		add("event_lead_id", *req.EventLeadID)
	}
	if req.EventLeadName != nil {
		add("event_lead_name", *req.EventLeadName)
	}
	if req.VideographerID != nil {
		add("videographer_id", *req.VideographerID)
	}
	if req.GraphicsID != nil {
		add("graphics_id", *req.GraphicsID)
	}
	if req.LastUpdatedByID != nil {
		add("last_updated_by_id", *req.LastUpdatedByID)
	}

	return set, args, nil
}
