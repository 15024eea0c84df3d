package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var tokyo = mustLoadLocation("Asia/Tokyo")

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, tokyo)
}

func TestExhibition_OngoingStatusAt(t *testing.T) {
	start := date(2026, time.March, 10)
	end := date(2026, time.March, 20)

	exhibition := &Exhibition{StartDate: start, EndDate: &end}

	testCases := []struct {
		name     string
		now      time.Time
		expected OngoingStatus
	}{
		{"before start", date(2026, time.March, 9), OngoingStatusUpcoming},
		{"on start date", start, OngoingStatusOngoing},
		{"mid run", date(2026, time.March, 15), OngoingStatusOngoing},
		{"on end date", end, OngoingStatusOngoing},
		{"late on end date", time.Date(2026, time.March, 20, 23, 59, 0, 0, tokyo), OngoingStatusOngoing},
		{"day after end", date(2026, time.March, 21), OngoingStatusEnd},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, exhibition.OngoingStatusAt(tc.now, tokyo))
		})
	}
}

func TestExhibition_OngoingStatusAt_OpenEnded(t *testing.T) {
	exhibition := &Exhibition{StartDate: date(2026, time.March, 10)}

	assert.Equal(t, OngoingStatusUpcoming, exhibition.OngoingStatusAt(date(2026, time.March, 9), tokyo))
	assert.Equal(t, OngoingStatusOngoing, exhibition.OngoingStatusAt(date(2026, time.March, 10), tokyo))
	assert.Equal(t, OngoingStatusOngoing, exhibition.OngoingStatusAt(date(2027, time.March, 10), tokyo))
}

func TestExhibition_OngoingStatusAt_NoStartDate(t *testing.T) {
	exhibition := &Exhibition{}

	assert.Equal(t, OngoingStatusEnd, exhibition.OngoingStatusAt(time.Now(), tokyo))
}

func TestExhibition_OngoingStatusAt_TimezoneBoundary(t *testing.T) {
	start := date(2026, time.March, 10)
	exhibition := &Exhibition{StartDate: start}

	// 2026-03-09 16:00 UTC is already 2026-03-10 01:00 in Tokyo.
	now := time.Date(2026, time.March, 9, 16, 0, 0, 0, time.UTC)

	assert.Equal(t, OngoingStatusOngoing, exhibition.OngoingStatusAt(now, tokyo))
}

func TestExhibition_Period(t *testing.T) {
	start := date(2026, time.March, 10)
	end := date(2026, time.March, 20)

	exhibition := &Exhibition{StartDate: start, EndDate: &end}
	assert.Equal(t, "2026年03月10日〜2026年03月20日", exhibition.Period())

	openEnded := &Exhibition{StartDate: start}
	assert.Equal(t, "2026年03月10日〜", openEnded.Period())

	empty := &Exhibition{}
	assert.Equal(t, "", empty.Period())
}
