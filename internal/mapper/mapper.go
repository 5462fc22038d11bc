package mapper

import (
	"strconv"
	"time"

	"github.com/gov-comms/activity-tracker/internal/domain"
	"github.com/gov-comms/activity-tracker/internal/schema"
	"github.com/gov-comms/activity-tracker/pkg/logger"
)

// RelatedData carries the resolved lookup values for one activity.
// Zero values mean "not resolved"; the mapper substitutes defaults.
type RelatedData struct {
	Categories       []string
	Tags             []domain.TagRef
	PitchStatus      string
	SchedulingStatus string
}

// Mapper converts a normalized activity row plus resolved related data
// into the denormalized response contract
type Mapper struct {
	validator *schema.Validator
	log       *logger.Logger
	now       func() time.Time
}

// New creates a mapper that validates every mapped response under the
// validator's policy
func New(v *schema.Validator, log *logger.Logger) *Mapper {
	return &Mapper{validator: v, log: log, now: time.Now}
}

// MapToResponse builds the response object for one activity row. The
// transform itself is pure; the trailing schema validation is the only
// side effect. Under the advisory policy an invalid response is still
// returned after being logged.
func (m *Mapper) MapToResponse(a *domain.Activity, related *RelatedData) (*domain.ActivityResponse, error) {
	if related == nil {
		related = &RelatedData{}
	}

	resp := &domain.ActivityResponse{
		ID:          a.ID,
		DisplayCode: a.DisplayCode,
		Title:       strOr(a.Title, responseDefaults.Title),
		Summary:     strOr(a.Summary, responseDefaults.Summary),

		Significance:             strOr(a.Significance, responseDefaults.Significance),
		SchedulingConsiderations: strOr(a.SchedulingConsiderations, responseDefaults.SchedulingConsiderations),
		PitchComments:            strOr(a.PitchComments, responseDefaults.PitchComments),

		IsIssue:                 boolOr(a.IsIssue, responseDefaults.IsIssue),
		OicRelated:              boolOr(a.OicRelated, responseDefaults.OicRelated),
		IsConfidential:          boolOr(a.IsConfidential, responseDefaults.IsConfidential),
		IsAllDay:                boolOr(a.IsAllDay, responseDefaults.IsAllDay),
		NotForLookAhead:         boolOr(a.NotForLookAhead, responseDefaults.NotForLookAhead),
		PlanningReport:          boolOr(a.PlanningReport, responseDefaults.PlanningReport),
		ThirtySixtyNinetyReport: boolOr(a.ThirtySixtyNinetyReport, responseDefaults.ThirtySixtyNinetyReport),
		IsActive:                boolOr(a.IsActive, responseDefaults.IsActive),

		StartDate: FormatDate(a.StartDate),
		StartTime: FormatTime(a.StartTime),
		EndDate:   FormatDate(a.EndDate),
		EndTime:   FormatTime(a.EndTime),

		VenueAddress: mapVenueAddress(a.VenueAddress),

		ActivityStatusID:  idOrUnknown(a.ActivityStatusID, responseDefaults.ActivityStatusID),
		ContactMinistryID: a.ContactMinistryID,
		CityID:            a.CityID,

		LookAheadStatus:    strOr(a.LookAheadStatus, responseDefaults.LookAheadStatus),
		LookAheadSection:   strOr(a.LookAheadSection, responseDefaults.LookAheadSection),
		CalendarVisibility: strOr(a.CalendarVisibility, responseDefaults.CalendarVisibility),

		PitchStatus:      orUnknown(related.PitchStatus, responseDefaults.PitchStatus),
		SchedulingStatus: orUnknown(related.SchedulingStatus, responseDefaults.SchedulingStatus),

		Category: nonNilStrings(related.Categories),
		Tags:     nonNilTags(related.Tags),

		Owner:         idString(a.OwnerID),
		CommsLead:     idString(a.CommsLeadID),
		EventLead:     resolveEventLead(a.EventLeadID, a.EventLeadName),
		EventLeadName: a.EventLeadName,
		Videographer:  idString(a.VideographerID),
		Graphics:      idString(a.GraphicsID),

		CreatedBy:     idOrUnknown(a.CreatedByID, responseDefaults.CreatedBy),
		LastUpdatedBy: idOrUnknown(a.LastUpdatedByID, responseDefaults.LastUpdatedBy),
	}

	resp.CreatedDateTime, resp.LastUpdatedDateTime = m.mapTimestamps(a)

	applyEmptyRelated(resp)

	if err := m.validator.Validate(resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// mapTimestamps formats the audit timestamps. lastUpdated falls back to
// created, then to "now"; the latter should not occur for a persisted
// row, so it is logged.
func (m *Mapper) mapTimestamps(a *domain.Activity) (created string, lastUpdated string) {
	switch {
	case a.CreatedDateTime != nil:
		created = a.CreatedDateTime.UTC().Format(time.RFC3339)
	default:
		m.log.WithField("activity_id", a.ID).Warn("Activity row has no created timestamp")
		created = m.now().UTC().Format(time.RFC3339)
	}

	if a.LastUpdatedDateTime != nil {
		lastUpdated = a.LastUpdatedDateTime.UTC().Format(time.RFC3339)
	} else {
		lastUpdated = created
	}
	return created, lastUpdated
}

// applyEmptyRelated fills the response fields whose backing junction
// tables are not implemented yet. Extension point: when a junction
// lands, resolve it in the lookup repository and replace the stub here.
func applyEmptyRelated(resp *domain.ActivityResponse) {
	resp.JointOrg = []string{}
	resp.RelatedEntries = []int64{}
	resp.CommsMaterials = []string{}
	resp.TranslationsRequired = []string{}
	resp.JointEventOrg = []string{}
	resp.RepresentativesAttending = []string{}
	resp.SharedWith = []string{}
	resp.CanEdit = []string{}
	resp.CanView = []string{}
}

// FormatDate renders a stored date as its YYYY-MM-DD slice, or nil.
// Storage may hand back a native time or an ISO string; both forms
// produce identical output.
func FormatDate(v interface{}) *string {
	switch d := v.(type) {
	case nil:
		return nil
	case time.Time:
		s := d.UTC().Format("2006-01-02")
		return &s
	case *time.Time:
		if d == nil {
			return nil
		}
		s := d.UTC().Format("2006-01-02")
		return &s
	case string:
		return formatDateString(d)
	case *string:
		if d == nil {
			return nil
		}
		return formatDateString(*d)
	}
	return nil
}

func formatDateString(s string) *string {
	if s == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		out := t.UTC().Format("2006-01-02")
		return &out
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		out := t.Format("2006-01-02")
		return &out
	}
	if len(s) >= 10 {
		out := s[:10]
		return &out
	}
	return nil
}

// FormatTime normalizes a stored time-of-day to HH:mm. A value that is
// already exactly 5 characters passes through unchanged; longer values
// are truncated to their first 5 characters (HH:mm:ss inputs). No
// timezone or 12/24-hour conversion is performed.
func FormatTime(t *string) *string {
	if t == nil {
		return nil
	}
	if len(*t) == 5 {
		return t
	}
	if len(*t) > 5 {
		out := (*t)[:5]
		return &out
	}
	return t
}

// mapVenueAddress returns nil for an absent or fully-empty address and
// a complete 4-field object otherwise; missing sub-fields are already
// empty strings on the storage struct.
func mapVenueAddress(v *domain.VenueAddress) *domain.VenueAddress {
	if v.Empty() {
		return nil
	}
	return &domain.VenueAddress{
		Street:   v.Street,
		City:     v.City,
		Province: v.Province,
		Country:  v.Country,
	}
}

// resolveEventLead prefers the user reference, then the free-text name
func resolveEventLead(id *int64, name *string) *string {
	if id != nil {
		s := strconv.FormatInt(*id, 10)
		return &s
	}
	if name != nil && *name != "" {
		return name
	}
	return nil
}

func strOr(v *string, fallback string) string {
	if v == nil {
		return fallback
	}
	return *v
}

func boolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}

func idString(v *int64) *string {
	if v == nil {
		return nil
	}
	s := strconv.FormatInt(*v, 10)
	return &s
}

func idOrUnknown(v *int64, fallback string) string {
	if v == nil {
		return fallback
	}
	return strconv.FormatInt(*v, 10)
}

func orUnknown(v string, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func nonNilStrings(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}

func nonNilTags(v []domain.TagRef) []domain.TagRef {
	if v == nil {
		return []domain.TagRef{}
	}
	return v
}
