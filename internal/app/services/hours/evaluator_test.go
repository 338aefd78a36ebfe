package hours

import (
	"testing"
	"time"

	"openstatus-service/internal/pkg/calcom_dto"
	"openstatus-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, clock *Clock, dateStr string) time.Time {
	t.Helper()
	target, err := clock.ResolveTargetDate(dateStr, 0)
	require.NoError(t, err)
	return target
}

func TestEvaluateSchedule_OverridePrecedence(t *testing.T) {
	clock := NewClock()
	// 2024-06-10 is a Monday.
	monday := mustDate(t, clock, "2024-06-10")

	t.Run("blank override closes the day even with a matching block", func(t *testing.T) {
		schedule := &calcom_dto.ScheduleData{
			TimeZone: "Asia/Hong_Kong",
			Overrides: []calcom_dto.ScheduleOverride{
				{Date: "2024-06-10", StartTime: "", EndTime: ""},
			},
			Availability: []calcom_dto.AvailabilityBlock{
				{Days: []string{"Monday"}, StartTime: "09:00", EndTime: "18:00"},
			},
		}

		evaluation := EvaluateSchedule(schedule, monday)
		assert.False(t, evaluation.IsOpen)
		assert.Empty(t, evaluation.StartTime)
		assert.Empty(t, evaluation.EndTime)
	})

	t.Run("override with hours replaces the weekly block", func(t *testing.T) {
		schedule := &calcom_dto.ScheduleData{
			Overrides: []calcom_dto.ScheduleOverride{
				{Date: "2024-06-10", StartTime: "12:00", EndTime: "15:00"},
			},
			Availability: []calcom_dto.AvailabilityBlock{
				{Days: []string{"Monday"}, StartTime: "09:00", EndTime: "18:00"},
			},
		}

		evaluation := EvaluateSchedule(schedule, monday)
		assert.True(t, evaluation.IsOpen)
		assert.Equal(t, "12:00", evaluation.StartTime)
		assert.Equal(t, "15:00", evaluation.EndTime)
	})

	t.Run("first matching override wins in source order", func(t *testing.T) {
		schedule := &calcom_dto.ScheduleData{
			Overrides: []calcom_dto.ScheduleOverride{
				{Date: "2024-06-10", StartTime: "10:00", EndTime: "14:00"},
				{Date: "2024-06-10", StartTime: "08:00", EndTime: "20:00"},
			},
		}

		evaluation := EvaluateSchedule(schedule, monday)
		assert.Equal(t, "10:00", evaluation.StartTime)
		assert.Equal(t, "14:00", evaluation.EndTime)
	})

	t.Run("override for another date is ignored", func(t *testing.T) {
		schedule := &calcom_dto.ScheduleData{
			Overrides: []calcom_dto.ScheduleOverride{
				{Date: "2024-06-11", StartTime: "", EndTime: ""},
			},
			Availability: []calcom_dto.AvailabilityBlock{
				{Days: []string{"Monday"}, StartTime: "09:00", EndTime: "18:00"},
			},
		}

		evaluation := EvaluateSchedule(schedule, monday)
		assert.True(t, evaluation.IsOpen)
		assert.Equal(t, "09:00", evaluation.StartTime)
	})
}

func TestEvaluateSchedule_WeeklyBlocks(t *testing.T) {
	clock := NewClock()
	// 2024-06-11 is a Tuesday.
	tuesday := mustDate(t, clock, "2024-06-11")

	t.Run("matching weekday block opens the day", func(t *testing.T) {
		schedule := &calcom_dto.ScheduleData{
			Availability: []calcom_dto.AvailabilityBlock{
				{Days: []string{"Tuesday"}, StartTime: "10:00", EndTime: "20:00"},
			},
		}

		evaluation := EvaluateSchedule(schedule, tuesday)
		assert.True(t, evaluation.IsOpen)
		assert.Equal(t, "10:00", evaluation.StartTime)
		assert.Equal(t, "20:00", evaluation.EndTime)
	})

	t.Run("first matching block wins in source order", func(t *testing.T) {
		schedule := &calcom_dto.ScheduleData{
			Availability: []calcom_dto.AvailabilityBlock{
				{Days: []string{"Monday", "Tuesday"}, StartTime: "10:00", EndTime: "20:00"},
				{Days: []string{"Tuesday"}, StartTime: "08:00", EndTime: "12:00"},
			},
		}

		evaluation := EvaluateSchedule(schedule, tuesday)
		assert.Equal(t, "10:00", evaluation.StartTime)
	})

	t.Run("block with blank times stays closed", func(t *testing.T) {
		schedule := &calcom_dto.ScheduleData{
			Availability: []calcom_dto.AvailabilityBlock{
				{Days: []string{"Tuesday"}, StartTime: "", EndTime: ""},
			},
		}

		evaluation := EvaluateSchedule(schedule, tuesday)
		assert.False(t, evaluation.IsOpen)
	})

	t.Run("no override and no block means closed", func(t *testing.T) {
		evaluation := EvaluateSchedule(&calcom_dto.ScheduleData{}, tuesday)
		assert.False(t, evaluation.IsOpen)
		assert.Empty(t, evaluation.StartTime)
		assert.Empty(t, evaluation.EndTime)
	})
}

func TestEvaluateSchedule_TimezoneLabel(t *testing.T) {
	clock := NewClock()
	monday := mustDate(t, clock, "2024-06-10")

	t.Run("payload label is passed through", func(t *testing.T) {
		schedule := &calcom_dto.ScheduleData{TimeZone: "Asia/Singapore"}
		assert.Equal(t, "Asia/Singapore", EvaluateSchedule(schedule, monday).Timezone)
	})

	t.Run("absent label defaults to the fixed zone", func(t *testing.T) {
		assert.Equal(t, constvars.TimezoneHongKong, EvaluateSchedule(&calcom_dto.ScheduleData{}, monday).Timezone)
	})
}

func TestResolveStatusPhase(t *testing.T) {
	clock := NewClock()
	monday := mustDate(t, clock, "2024-06-10")
	open := Evaluation{IsOpen: true, StartTime: "09:00", EndTime: "18:00"}

	momentAt := func(t *testing.T, moment string) time.Time {
		t.Helper()
		parsed, err := time.ParseInLocation("2006-01-02 15:04", moment, clock.Location())
		require.NoError(t, err)
		return parsed
	}

	t.Run("past target date is not_today with null openNow", func(t *testing.T) {
		openNow, phase := ResolveStatusPhase(monday, momentAt(t, "2024-06-11 10:00"), open, clock.Location())
		assert.Nil(t, openNow)
		assert.Equal(t, constvars.StatusPhaseNotToday, phase)
	})

	t.Run("closed day", func(t *testing.T) {
		openNow, phase := ResolveStatusPhase(monday, momentAt(t, "2024-06-10 10:00"), Evaluation{}, clock.Location())
		require.NotNil(t, openNow)
		assert.False(t, *openNow)
		assert.Equal(t, constvars.StatusPhaseClosed, phase)
	})

	testCases := []struct {
		name      string
		moment    string
		wantOpen  bool
		wantPhase string
	}{
		{"before opening", "2024-06-10 08:00", false, constvars.StatusPhaseBeforeOpen},
		{"opening boundary is inclusive", "2024-06-10 09:00", true, constvars.StatusPhaseOpen},
		{"one minute before close", "2024-06-10 17:59", true, constvars.StatusPhaseOpen},
		{"closing boundary is exclusive", "2024-06-10 18:00", false, constvars.StatusPhaseAfterClose},
		{"after close", "2024-06-10 21:30", false, constvars.StatusPhaseAfterClose},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			openNow, phase := ResolveStatusPhase(monday, momentAt(t, tc.moment), open, clock.Location())
			require.NotNil(t, openNow)
			assert.Equal(t, tc.wantOpen, *openNow)
			assert.Equal(t, tc.wantPhase, phase)
		})
	}
}
