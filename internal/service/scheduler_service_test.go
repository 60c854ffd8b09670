package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	hour, minute, err := parseClock("08:30")
	require.NoError(t, err)
	assert.Equal(t, 8, hour)
	assert.Equal(t, 30, minute)

	hour, minute, err = parseClock("23:59")
	require.NoError(t, err)
	assert.Equal(t, 23, hour)
	assert.Equal(t, 59, minute)

	for _, bad := range []string{"", "8", "8:30:00", "24:00", "12:60", "ab:cd"} {
		_, _, err := parseClock(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestScheduleInterval_RejectsNonPositive(t *testing.T) {
	s := NewScheduler(time.UTC)
	_, err := s.ScheduleInterval(0, func() {})
	assert.Error(t, err)
	_, err = s.ScheduleInterval(-time.Hour, func() {})
	assert.Error(t, err)
}
