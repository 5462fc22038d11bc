package domain

import (
	"time"
)

// Look-ahead and calendar enumerations. These are closed sets; the
// response contract rejects anything else.
const (
	LookAheadStatusNone    = "none"
	LookAheadStatusNew     = "new"
	LookAheadStatusChanged = "changed"

	LookAheadSectionEvents    = "events"
	LookAheadSectionIssues    = "issues"
	LookAheadSectionNews      = "news"
	LookAheadSectionAwareness = "awareness"

	CalendarVisibilityVisible = "visible"
	CalendarVisibilityPartial = "partial"
	CalendarVisibilityHidden  = "hidden"
)

// VenueAddress is the JSON-structured venue location stored on an
// activity row. It is all-or-nothing: persisted only when at least one
// sub-field is set.
type VenueAddress struct {
	Street   string `json:"street"`
	City     string `json:"city"`
	Province string `json:"province"`
	Country  string `json:"country"`
}

// Empty reports whether no sub-field carries a value
func (v *VenueAddress) Empty() bool {
	return v == nil || (v.Street == "" && v.City == "" && v.Province == "" && v.Country == "")
}

// Activity is the normalized storage row for a tracked event, news
// release, or issue. Nullable columns are pointers; booleans are
// pointers too so the mapper can tell "stored false" from "never set".
type Activity struct {
	ID          int64   `json:"id"`
	DisplayCode string  `json:"display_code"`
	Title       *string `json:"title"`
	Summary     *string `json:"summary"`

	Significance             *string `json:"significance"`
	SchedulingConsiderations *string `json:"scheduling_considerations"`
	PitchComments            *string `json:"pitch_comments"`

	IsIssue                 *bool `json:"is_issue"`
	OicRelated              *bool `json:"oic_related"`
	IsConfidential          *bool `json:"is_confidential"`
	IsAllDay                *bool `json:"is_all_day"`
	NotForLookAhead         *bool `json:"not_for_look_ahead"`
	PlanningReport          *bool `json:"planning_report"`
	ThirtySixtyNinetyReport *bool `json:"thirty_sixty_ninety_report"`
	IsActive                *bool `json:"is_active"`

	StartDate *time.Time `json:"start_date"`
	StartTime *string    `json:"start_time"` // HH:mm or HH:mm:ss
	EndDate   *time.Time `json:"end_date"`
	EndTime   *string    `json:"end_time"`

	VenueAddress *VenueAddress `json:"venue_address"`

	ActivityStatusID   *int64 `json:"activity_status_id"`
	PitchStatusID      *int64 `json:"pitch_status_id"`
	SchedulingStatusID *int64 `json:"scheduling_status_id"`
	ContactMinistryID  *int64 `json:"contact_ministry_id"`
	CityID             *int64 `json:"city_id"`

	LookAheadStatus    *string `json:"look_ahead_status"`
	LookAheadSection   *string `json:"look_ahead_section"`
	CalendarVisibility *string `json:"calendar_visibility"`

	OwnerID        *int64  `json:"owner_id"`
	CommsLeadID    *int64  `json:"comms_lead_id"`
	EventLeadID    *int64  `json:"event_lead_id"`
	EventLeadName  *string `json:"event_lead_name"` // free-text fallback when no event lead user exists
	VideographerID *int64  `json:"videographer_id"`
	GraphicsID     *int64  `json:"graphics_id"`

	CreatedByID     *int64 `json:"created_by_id"`
	LastUpdatedByID *int64 `json:"last_updated_by_id"`

	CreatedDateTime     *time.Time `json:"created_datetime"`
	LastUpdatedDateTime *time.Time `json:"last_updated_datetime"`
}
