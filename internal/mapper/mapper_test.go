package mapper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gov-comms/activity-tracker/internal/domain"
	"github.com/gov-comms/activity-tracker/internal/schema"
	"github.com/gov-comms/activity-tracker/pkg/logger"
)

func newTestMapper(t *testing.T, policy schema.Policy) *Mapper {
	t.Helper()
	log := logger.NewNop()
	return New(schema.New(policy, log), log)
}

func baseActivity() *domain.Activity {
	created := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	return &domain.Activity{
		ID:              1,
		DisplayCode:     "ACT-2024-0001",
		CreatedDateTime: &created,
	}
}

func strPtr(s string) *string { return &s }
func i64Ptr(v int64) *int64   { return &v }

func TestMapToResponse_NoRelatedDataDefaults(t *testing.T) {
	m := newTestMapper(t, schema.PolicyStrict)

	resp, err := m.MapToResponse(baseActivity(), nil)
	require.NoError(t, err)

	assert.Equal(t, []string{}, resp.Category)
	assert.Equal(t, []domain.TagRef{}, resp.Tags)
	assert.Equal(t, "unknown", resp.PitchStatus)
	assert.Equal(t, "unknown", resp.SchedulingStatus)
	assert.Equal(t, "unknown", resp.ActivityStatusID)
	assert.Equal(t, "unknown", resp.CreatedBy)
	assert.Equal(t, "unknown", resp.LastUpdatedBy)
}

func TestMapToResponse_NullableFieldDefaults(t *testing.T) {
	m := newTestMapper(t, schema.PolicyStrict)

	resp, err := m.MapToResponse(baseActivity(), nil)
	require.NoError(t, err)

	assert.Equal(t, "", resp.Title)
	assert.Equal(t, "", resp.Summary)
	assert.True(t, resp.IsActive, "isActive defaults to true")
	assert.False(t, resp.IsIssue)
	assert.False(t, resp.IsConfidential)
	assert.False(t, resp.IsAllDay)
	assert.Equal(t, "none", resp.LookAheadStatus)
	assert.Equal(t, "events", resp.LookAheadSection)
	assert.Equal(t, "visible", resp.CalendarVisibility)
	assert.Nil(t, resp.Owner)
	assert.Nil(t, resp.CommsLead)
	assert.Nil(t, resp.EventLead)
	assert.Nil(t, resp.Videographer)
	assert.Nil(t, resp.Graphics)
	assert.Nil(t, resp.StartDate)
	assert.Nil(t, resp.VenueAddress)
}

// A fully-populated row with resolved lookups must validate under the
// strict policy: map, then validate, with no error.
func TestMapToResponse_RoundTripValidates(t *testing.T) {
	m := newTestMapper(t, schema.PolicyStrict)

	start := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	updated := time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)

	a := baseActivity()
	a.Title = strPtr("Minister visits hospital expansion")
	a.Summary = strPtr("Tour and media availability")
	a.StartDate = &start
	a.StartTime = strPtr("10:30:00")
	a.ActivityStatusID = i64Ptr(3)
	a.OwnerID = i64Ptr(12)
	a.CreatedByID = i64Ptr(5)
	a.LastUpdatedByID = i64Ptr(5)
	a.LastUpdatedDateTime = &updated
	a.LookAheadStatus = strPtr("new")
	a.LookAheadSection = strPtr("news")
	a.CalendarVisibility = strPtr("partial")
	a.VenueAddress = &domain.VenueAddress{City: "Victoria"}

	related := &RelatedData{
		Categories:       []string{"event"},
		Tags:             []domain.TagRef{{ID: 2, Text: "Minister"}},
		PitchStatus:      "Approved",
		SchedulingStatus: "Confirmed",
	}

	resp, err := m.MapToResponse(a, related)
	require.NoError(t, err)

	assert.Equal(t, "3", resp.ActivityStatusID)
	assert.Equal(t, "5", resp.CreatedBy)
	assert.Equal(t, "Approved", resp.PitchStatus)
	assert.Equal(t, "Confirmed", resp.SchedulingStatus)
	assert.Equal(t, []string{"event"}, resp.Category)

	require.NotNil(t, resp.StartDate)
	assert.Equal(t, "2024-03-15", *resp.StartDate)
	require.NotNil(t, resp.StartTime)
	assert.Equal(t, "10:30", *resp.StartTime)

	require.NotNil(t, resp.VenueAddress)
	assert.Equal(t, "Victoria", resp.VenueAddress.City)
	assert.Equal(t, "", resp.VenueAddress.Street)
	assert.Equal(t, "", resp.VenueAddress.Province)
	assert.Equal(t, "", resp.VenueAddress.Country)

	assert.Equal(t, "2024-03-01T09:00:00Z", resp.CreatedDateTime)
	assert.Equal(t, "2024-03-02T10:00:00Z", resp.LastUpdatedDateTime)
}

func TestFormatTime(t *testing.T) {
	tests := []struct {
		name  string
		input *string
		want  *string
	}{
		{name: "nil stays nil", input: nil, want: nil},
		{name: "HH:mm passes through unchanged", input: strPtr("10:30"), want: strPtr("10:30")},
		{name: "HH:mm:ss is truncated", input: strPtr("10:30:00"), want: strPtr("10:30")},
		{name: "idempotent on already formatted output", input: FormatTime(strPtr("23:59:59")), want: strPtr("23:59")},
		{name: "short values pass through", input: strPtr("9:30"), want: strPtr("9:30")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatTime(tt.input)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestFormatDate(t *testing.T) {
	native := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input interface{}
		want  *string
	}{
		{name: "nil stays nil", input: nil, want: nil},
		{name: "nil time pointer stays nil", input: (*time.Time)(nil), want: nil},
		{name: "native time", input: native, want: strPtr("2024-03-15")},
		{name: "time pointer", input: &native, want: strPtr("2024-03-15")},
		{name: "ISO datetime string", input: "2024-03-15T10:30:00Z", want: strPtr("2024-03-15")},
		{name: "date-only string", input: "2024-03-15", want: strPtr("2024-03-15")},
		{name: "empty string stays nil", input: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatDate(tt.input)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestMapToResponse_EventLeadResolution(t *testing.T) {
	tests := []struct {
		name          string
		eventLeadID   *int64
		eventLeadName *string
		wantLead      *string
		wantName      *string
	}{
		{
			name:     "both absent",
			wantLead: nil,
			wantName: nil,
		},
		{
			name:          "free-text fallback",
			eventLeadName: strPtr("External Event Lead"),
			wantLead:      strPtr("External Event Lead"),
			wantName:      strPtr("External Event Lead"),
		},
		{
			name:          "user reference wins over name",
			eventLeadID:   i64Ptr(7),
			eventLeadName: strPtr("External Event Lead"),
			wantLead:      strPtr("7"),
			wantName:      strPtr("External Event Lead"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestMapper(t, schema.PolicyStrict)

			a := baseActivity()
			a.EventLeadID = tt.eventLeadID
			a.EventLeadName = tt.eventLeadName

			resp, err := m.MapToResponse(a, nil)
			require.NoError(t, err)

			if tt.wantLead == nil {
				assert.Nil(t, resp.EventLead)
			} else {
				require.NotNil(t, resp.EventLead)
				assert.Equal(t, *tt.wantLead, *resp.EventLead)
			}
			if tt.wantName == nil {
				assert.Nil(t, resp.EventLeadName)
			} else {
				require.NotNil(t, resp.EventLeadName)
				assert.Equal(t, *tt.wantName, *resp.EventLeadName)
			}
		})
	}
}

func TestMapToResponse_VenueAddressAllOrNothing(t *testing.T) {
	m := newTestMapper(t, schema.PolicyStrict)

	a := baseActivity()
	a.VenueAddress = &domain.VenueAddress{}

	resp, err := m.MapToResponse(a, nil)
	require.NoError(t, err)
	assert.Nil(t, resp.VenueAddress, "fully-empty address maps to null")
}

func TestMapToResponse_TimestampFallbacks(t *testing.T) {
	t.Run("lastUpdated falls back to created", func(t *testing.T) {
		m := newTestMapper(t, schema.PolicyStrict)

		resp, err := m.MapToResponse(baseActivity(), nil)
		require.NoError(t, err)
		assert.Equal(t, resp.CreatedDateTime, resp.LastUpdatedDateTime)
	})

	t.Run("both missing fall back to now", func(t *testing.T) {
		m := newTestMapper(t, schema.PolicyStrict)
		fixed := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
		m.now = func() time.Time { return fixed }

		a := baseActivity()
		a.CreatedDateTime = nil

		resp, err := m.MapToResponse(a, nil)
		require.NoError(t, err)
		assert.Equal(t, "2025-01-02T03:04:05Z", resp.CreatedDateTime)
		assert.Equal(t, resp.CreatedDateTime, resp.LastUpdatedDateTime)
	})
}

func TestMapToResponse_UnimplementedJoinsAreEmptyArrays(t *testing.T) {
	m := newTestMapper(t, schema.PolicyStrict)

	resp, err := m.MapToResponse(baseActivity(), nil)
	require.NoError(t, err)

	assert.Equal(t, []string{}, resp.JointOrg)
	assert.Equal(t, []int64{}, resp.RelatedEntries)
	assert.Equal(t, []string{}, resp.CommsMaterials)
	assert.Equal(t, []string{}, resp.TranslationsRequired)
	assert.Equal(t, []string{}, resp.JointEventOrg)
	assert.Equal(t, []string{}, resp.RepresentativesAttending)
	assert.Equal(t, []string{}, resp.SharedWith)
	assert.Equal(t, []string{}, resp.CanEdit)
	assert.Equal(t, []string{}, resp.CanView)
}
