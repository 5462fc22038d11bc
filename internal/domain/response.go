package domain

// ActivityResponse is the denormalized API contract produced by the
// response mapper. Field set and types are fixed; the schema validator
// enforces them on every mapped object. JSON names are the wire names
// the administrative UI consumes.
type ActivityResponse struct {
	ID          int64  `json:"id" validate:"required"`
	DisplayCode string `json:"displayCode"`
	Title       string `json:"title"`
	Summary     string `json:"summary"`

	Significance             string `json:"significance"`
	SchedulingConsiderations string `json:"schedulingConsiderations"`
	PitchComments            string `json:"pitchComments"`

	IsIssue                 bool `json:"isIssue"`
	OicRelated              bool `json:"oicRelated"`
	IsConfidential          bool `json:"isConfidential"`
	IsAllDay                bool `json:"isAllDay"`
	NotForLookAhead         bool `json:"notForLookAhead"`
	PlanningReport          bool `json:"planningReport"`
	ThirtySixtyNinetyReport bool `json:"thirtySixtyNinetyReport"`
	IsActive                bool `json:"isActive"`

	StartDate *string `json:"startDate" validate:"omitempty,datetime=2006-01-02"`
	StartTime *string `json:"startTime" validate:"omitempty,len=5"`
	EndDate   *string `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
	EndTime   *string `json:"endTime" validate:"omitempty,len=5"`

	VenueAddress *VenueAddress `json:"venueAddress"`

	ActivityStatusID  string `json:"activityStatusId" validate:"required"`
	ContactMinistryID *int64 `json:"contactMinistryId"`
	CityID            *int64 `json:"cityId"`

	LookAheadStatus    string `json:"lookAheadStatus" validate:"oneof=none new changed"`
	LookAheadSection   string `json:"lookAheadSection" validate:"oneof=events issues news awareness"`
	CalendarVisibility string `json:"calendarVisibility" validate:"oneof=visible partial hidden"`

	PitchStatus      string `json:"pitchStatus" validate:"required"`
	SchedulingStatus string `json:"schedulingStatus" validate:"required"`

	Category []string `json:"category" validate:"required"`
	Tags     []TagRef `json:"tags" validate:"required"`

	Owner         *string `json:"owner"`
	CommsLead     *string `json:"commsLead"`
	EventLead     *string `json:"eventLead"`
	EventLeadName *string `json:"eventLeadName"`
	Videographer  *string `json:"videographer"`
	Graphics      *string `json:"graphics"`

	CreatedBy     string `json:"createdBy" validate:"required"`
	LastUpdatedBy string `json:"lastUpdatedBy" validate:"required"`

	CreatedDateTime     string `json:"createdDateTime" validate:"required"`
	LastUpdatedDateTime string `json:"lastUpdatedDateTime" validate:"required"`

	// Backed by junction tables that do not exist yet; always emitted
	// as empty arrays; the mapper's applyEmptyRelated is the extension
	// point when a junction lands.
	JointOrg                 []string `json:"jointOrg" validate:"required"`
	RelatedEntries           []int64  `json:"relatedEntries" validate:"required"`
	CommsMaterials           []string `json:"commsMaterials" validate:"required"`
	TranslationsRequired     []string `json:"translationsRequired" validate:"required"`
	JointEventOrg            []string `json:"jointEventOrg" validate:"required"`
	RepresentativesAttending []string `json:"representativesAttending" validate:"required"`
	SharedWith               []string `json:"sharedWith" validate:"required"`
	CanEdit                  []string `json:"canEdit" validate:"required"`
	CanView                  []string `json:"canView" validate:"required"`
}
