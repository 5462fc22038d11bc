package schema

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gov-comms/activity-tracker/internal/domain"
	apperrors "github.com/gov-comms/activity-tracker/pkg/errors"
	"github.com/gov-comms/activity-tracker/pkg/logger"
)

func validResponse() *domain.ActivityResponse {
	return &domain.ActivityResponse{
		ID:                  1,
		ActivityStatusID:    "unknown",
		LookAheadStatus:     "none",
		LookAheadSection:    "events",
		CalendarVisibility:  "visible",
		PitchStatus:         "unknown",
		SchedulingStatus:    "unknown",
		Category:            []string{},
		Tags:                []domain.TagRef{},
		CreatedBy:           "unknown",
		LastUpdatedBy:       "unknown",
		CreatedDateTime:     "2024-03-01T09:00:00Z",
		LastUpdatedDateTime: "2024-03-01T09:00:00Z",

		JointOrg:                 []string{},
		RelatedEntries:           []int64{},
		CommsMaterials:           []string{},
		TranslationsRequired:     []string{},
		JointEventOrg:            []string{},
		RepresentativesAttending: []string{},
		SharedWith:               []string{},
		CanEdit:                  []string{},
		CanView:                  []string{},
	}
}

func TestValidate_ValidResponsePasses(t *testing.T) {
	for _, policy := range []Policy{PolicyStrict, PolicyAdvisory} {
		t.Run(string(policy), func(t *testing.T) {
			v := New(policy, logger.NewNop())
			assert.NoError(t, v.Validate(validResponse()))
		})
	}
}

func TestValidate_StrictPolicyFailsWithFieldPaths(t *testing.T) {
	v := New(PolicyStrict, logger.NewNop())

	resp := validResponse()
	resp.LookAheadStatus = "sometimes"
	resp.CalendarVisibility = "invisible"
	resp.Category = nil

	err := v.Validate(resp)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorTypeTransformation, appErr.Type)

	// Every offending field path is enumerated, by wire name
	assert.True(t, strings.Contains(appErr.Message, "lookAheadStatus"), appErr.Message)
	assert.True(t, strings.Contains(appErr.Message, "calendarVisibility"), appErr.Message)
	assert.True(t, strings.Contains(appErr.Message, "category"), appErr.Message)
	assert.True(t, strings.Contains(appErr.Message, "#1"), appErr.Message)
}

func TestValidate_AdvisoryPolicyLogsAndContinues(t *testing.T) {
	v := New(PolicyAdvisory, logger.NewNop())

	resp := validResponse()
	resp.LookAheadSection = "everything"

	assert.NoError(t, v.Validate(resp), "advisory policy fails open")
}

func TestValidate_BadDateAndTimeFormats(t *testing.T) {
	v := New(PolicyStrict, logger.NewNop())

	badDate := "15/03/2024"
	badTime := "10:30:00"

	resp := validResponse()
	resp.StartDate = &badDate
	resp.StartTime = &badTime

	err := v.Validate(resp)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "startDate")
	assert.Contains(t, err.Error(), "startTime")
}

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		name        string
		value       string
		environment string
		want        Policy
	}{
		{name: "explicit strict", value: "strict", environment: "development", want: PolicyStrict},
		{name: "explicit advisory", value: "advisory", environment: "production", want: PolicyAdvisory},
		{name: "empty derives from production", value: "", environment: "production", want: PolicyStrict},
		{name: "empty derives from development", value: "", environment: "development", want: PolicyAdvisory},
		{name: "unrecognized derives from environment", value: "lenient", environment: "staging", want: PolicyAdvisory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParsePolicy(tt.value, tt.environment))
		})
	}
}
