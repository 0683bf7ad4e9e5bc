package domain

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVideoURL(t *testing.T) {
	for _, id := range []string{"dQw4w9WgXcQ", "a-b_c", ""} {
		v := Video{ID: id}
		assert.Equal(t, "https://www.youtube.com/watch?v="+id, v.URL())
	}
}

func TestParseAndFormatPublished(t *testing.T) {
	published, err := ParsePublished("2024-01-15T10:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-15 10:30:00", FormatPublished(published))
	assert.Equal(t, "2024-01-15 10:30:00", Video{PublishedAt: published}.PublishedDisplay())
}

func TestFormatPublished_ConvertsToUTC(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	ts := time.Date(2024, 1, 15, 16, 0, 0, 0, ist)
	assert.Equal(t, "2024-01-15 10:30:00", FormatPublished(ts))
}

func TestParsePublished_Invalid(t *testing.T) {
	_, err := ParsePublished("yesterday")
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestDurationDisplay(t *testing.T) {
	assert.Equal(t, "", Video{}.DurationDisplay())
	assert.Equal(t, "4:05", Video{Duration: 4*time.Minute + 5*time.Second}.DurationDisplay())
	assert.Equal(t, "1:02:03", Video{Duration: time.Hour + 2*time.Minute + 3*time.Second}.DurationDisplay())
}

func TestAPIError(t *testing.T) {
	cause := errors.New("quota exceeded")
	err := fmt.Errorf("wrapped: %w", &APIError{Operation: "search channel", StatusCode: 403, Err: cause})

	assert.True(t, IsAPIError(err))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "search channel: status 403: quota exceeded")
	assert.False(t, IsAPIError(ErrChannelNotFound))
}
