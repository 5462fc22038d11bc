package mapper

// responseDefaults is the per-field fallback table applied by
// MapToResponse: one entry for every response field that substitutes a
// default when the stored value is null. Kept in a single literal so
// the mapping stays auditable field by field.
var responseDefaults = struct {
	Title                    string
	Summary                  string
	Significance             string
	SchedulingConsiderations string
	PitchComments            string

	IsIssue                 bool
	OicRelated              bool
	IsConfidential          bool
	IsAllDay                bool
	NotForLookAhead         bool
	PlanningReport          bool
	ThirtySixtyNinetyReport bool
	IsActive                bool

	ActivityStatusID string
	PitchStatus      string
	SchedulingStatus string

	LookAheadStatus    string
	LookAheadSection   string
	CalendarVisibility string

	CreatedBy     string
	LastUpdatedBy string
}{
	Title:                    "",
	Summary:                  "",
	Significance:             "",
	SchedulingConsiderations: "",
	PitchComments:            "",

	IsIssue:                 false,
	OicRelated:              false,
	IsConfidential:          false,
	IsAllDay:                false,
	NotForLookAhead:         false,
	PlanningReport:          false,
	ThirtySixtyNinetyReport: false,
	IsActive:                true,

	ActivityStatusID: "unknown",
	PitchStatus:      "unknown",
	SchedulingStatus: "unknown",

	LookAheadStatus:    "none",
	LookAheadSection:   "events",
	CalendarVisibility: "visible",

	CreatedBy:     "unknown",
	LastUpdatedBy: "unknown",
}
