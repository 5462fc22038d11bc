package handler

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFilter(t *testing.T) {
	t.Run("empty query yields empty filter", func(t *testing.T) {
		filter, err := parseFilter(url.Values{})
		require.NoError(t, err)

		assert.Nil(t, filter.Title)
		assert.Nil(t, filter.ActivityStatusID)
		assert.Nil(t, filter.IsActive)
		assert.Nil(t, filter.StartDateFrom)
	})

	t.Run("all filters parse", func(t *testing.T) {
		q := url.Values{}
		q.Set("title", "hospital")
		q.Set("activityStatusId", "3")
		q.Set("contactMinistryId", "11")
		q.Set("cityId", "4")
		q.Set("isActive", "true")
		q.Set("isConfidential", "false")
		q.Set("isIssue", "true")
		q.Set("startDateFrom", "2024-03-01")
		q.Set("startDateTo", "2024-03-31")
		q.Set("endDateFrom", "2024-03-01")
		q.Set("endDateTo", "2024-04-30")

		filter, err := parseFilter(q)
		require.NoError(t, err)

		require.NotNil(t, filter.Title)
		assert.Equal(t, "hospital", *filter.Title)
		require.NotNil(t, filter.ActivityStatusID)
		assert.Equal(t, int64(3), *filter.ActivityStatusID)
		require.NotNil(t, filter.ContactMinistryID)
		assert.Equal(t, int64(11), *filter.ContactMinistryID)
		require.NotNil(t, filter.CityID)
		assert.Equal(t, int64(4), *filter.CityID)
		require.NotNil(t, filter.IsActive)
		assert.True(t, *filter.IsActive)
		require.NotNil(t, filter.IsConfidential)
		assert.False(t, *filter.IsConfidential)
		require.NotNil(t, filter.IsIssue)
		assert.True(t, *filter.IsIssue)
		require.NotNil(t, filter.StartDateFrom)
		assert.Equal(t, "2024-03-01", *filter.StartDateFrom)
		require.NotNil(t, filter.EndDateTo)
		assert.Equal(t, "2024-04-30", *filter.EndDateTo)
	})

	t.Run("invalid numeric filter is rejected", func(t *testing.T) {
		q := url.Values{}
		q.Set("activityStatusId", "three")

		_, err := parseFilter(q)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "activityStatusId")
	})

	t.Run("invalid boolean filter is rejected", func(t *testing.T) {
		q := url.Values{}
		q.Set("isIssue", "maybe")

		_, err := parseFilter(q)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "isIssue")
	})

	t.Run("invalid date filter is rejected", func(t *testing.T) {
		q := url.Values{}
		q.Set("startDateFrom", "01/03/2024")

		_, err := parseFilter(q)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "startDateFrom")
	})
}

func TestValidDate(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{input: "2024-03-15", want: true},
		{input: "2024-3-15", want: false},
		{input: "15/03/2024", want: false},
		{input: "2024-03-15T10:00:00Z", want: false},
		{input: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, validDate(tt.input))
		})
	}
}
