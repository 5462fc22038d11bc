package domain

// CreateActivityRequest is the validated creation schema for POST /activities
type CreateActivityRequest struct {
	DisplayCode string  `json:"displayCode" validate:"required,max=50"`
	Title       string  `json:"title" validate:"required,max=500"`
	Summary     *string `json:"summary" validate:"omitempty,max=4000"`

	Significance             *string `json:"significance"`
	SchedulingConsiderations *string `json:"schedulingConsiderations"`
	PitchComments            *string `json:"pitchComments"`

	IsIssue                 *bool `json:"isIssue"`
	OicRelated              *bool `json:"oicRelated"`
	IsConfidential          *bool `json:"isConfidential"`
	IsAllDay                *bool `json:"isAllDay"`
	NotForLookAhead         *bool `json:"notForLookAhead"`
	PlanningReport          *bool `json:"planningReport"`
	ThirtySixtyNinetyReport *bool `json:"thirtySixtyNinetyReport"`

	StartDate *string `json:"startDate" validate:"omitempty,datetime=2006-01-02"`
	StartTime *string `json:"startTime" validate:"omitempty,min=5,max=8"`
	EndDate   *string `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
	EndTime   *string `json:"endTime" validate:"omitempty,min=5,max=8"`

	VenueAddress *VenueAddress `json:"venueAddress"`

	ActivityStatusID   *int64 `json:"activityStatusId"`
	PitchStatusID      *int64 `json:"pitchStatusId"`
	SchedulingStatusID *int64 `json:"schedulingStatusId"`
	ContactMinistryID  *int64 `json:"contactMinistryId"`
	CityID             *int64 `json:"cityId"`

	LookAheadStatus    *string `json:"lookAheadStatus" validate:"omitempty,oneof=none new changed"`
	LookAheadSection   *string `json:"lookAheadSection" validate:"omitempty,oneof=events issues news awareness"`
	CalendarVisibility *string `json:"calendarVisibility" validate:"omitempty,oneof=visible partial hidden"`

	OwnerID        *int64  `json:"ownerId"`
	CommsLeadID    *int64  `json:"commsLeadId"`
	EventLeadID    *int64  `json:"eventLeadId"`
	EventLeadName  *string `json:"eventLeadName" validate:"omitempty,max=255"`
	VideographerID *int64  `json:"videographerId"`
	GraphicsID     *int64  `json:"graphicsId"`

	CreatedByID *int64 `json:"createdById"`
}

// UpdateActivityRequest is the partial-update schema for PATCH
// /activities/{id}. Every field is optional; absent fields are left
// untouched in storage.
type UpdateActivityRequest struct {
	DisplayCode *string `json:"displayCode" validate:"omitempty,max=50"`
	Title       *string `json:"title" validate:"omitempty,max=500"`
	Summary     *string `json:"summary" validate:"omitempty,max=4000"`

	Significance             *string `json:"significance"`
	SchedulingConsiderations *string `json:"schedulingConsiderations"`
	PitchComments            *string `json:"pitchComments"`

	IsIssue                 *bool `json:"isIssue"`
	OicRelated              *bool `json:"oicRelated"`
	IsConfidential          *bool `json:"isConfidential"`
	IsAllDay                *bool `json:"isAllDay"`
	NotForLookAhead         *bool `json:"notForLookAhead"`
	PlanningReport          *bool `json:"planningReport"`
	ThirtySixtyNinetyReport *bool `json:"thirtySixtyNinetyReport"`
	IsActive                *bool `json:"isActive"`

	StartDate *string `json:"startDate" validate:"omitempty,datetime=2006-01-02"`
	StartTime *string `json:"startTime" validate:"omitempty,min=5,max=8"`
	EndDate   *string `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
	EndTime   *string `json:"endTime" validate:"omitempty,min=5,max=8"`

	VenueAddress *VenueAddress `json:"venueAddress"`

	ActivityStatusID   *int64 `json:"activityStatusId"`
	PitchStatusID      *int64 `json:"pitchStatusId"`
	SchedulingStatusID *int64 `json:"schedulingStatusId"`
	ContactMinistryID  *int64 `json:"contactMinistryId"`
	CityID             *int64 `json:"cityId"`

	LookAheadStatus    *string `json:"lookAheadStatus" validate:"omitempty,oneof=none new changed"`
	LookAheadSection   *string `json:"lookAheadSection" validate:"omitempty,oneof=events issues news awareness"`
	CalendarVisibility *string `json:"calendarVisibility" validate:"omitempty,oneof=visible partial hidden"`

	OwnerID        *int64  `json:"ownerId"`
	CommsLeadID    *int64  `json:"commsLeadId"`
	EventLeadID    *int64  `json:"eventLeadId"`
	EventLeadName  *string `json:"eventLeadName" validate:"omitempty,max=255"`
	VideographerID *int64  `json:"videographerId"`
	GraphicsID     *int64  `json:"graphicsId"`

	LastUpdatedByID *int64 `json:"lastUpdatedById"`
}

// ActivityFilter holds the optional query filters for GET /activities
type ActivityFilter struct {
	Title             *string
	ActivityStatusID  *int64
	IsActive          *bool
	IsConfidential    *bool
	IsIssue           *bool
	ContactMinistryID *int64
	CityID            *int64
	StartDateFrom     *string // YYYY-MM-DD, inclusive
	StartDateTo       *string
	EndDateFrom       *string
	EndDateTo         *string
}
