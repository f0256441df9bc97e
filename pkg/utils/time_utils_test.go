package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInclusiveDays(t *testing.T) {
	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 1, InclusiveDays(start, start))
	assert.Equal(t, 3, InclusiveDays(start, start.AddDate(0, 0, 2)))
	assert.Equal(t, 31, InclusiveDays(start, time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)))
}

func TestInclusiveDaysIgnoresTimeOfDay(t *testing.T) {
	start := time.Date(2026, 6, 1, 23, 30, 0, 0, time.UTC)
	end := time.Date(2026, 6, 2, 0, 15, 0, 0, time.UTC)

	assert.Equal(t, 2, InclusiveDays(start, end))
}

func TestDateSpan(t *testing.T) {
	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	span := DateSpan(start, start.AddDate(0, 0, 2))

	require.Len(t, span, 3)
	assert.Equal(t, "2026-06-01", FormatDate(span[0]))
	assert.Equal(t, "2026-06-03", FormatDate(span[2]))
}

func TestParseDateRejectsOtherLayouts(t *testing.T) {
	_, err := ParseDate("06/01/2026")
	assert.Error(t, err)

	parsed, err := ParseDate("2026-06-01")
	require.NoError(t, err)
	assert.Equal(t, 2026, parsed.Year())
}
