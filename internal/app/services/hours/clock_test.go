package hours

import (
	"testing"
	"time"

	"openstatus-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t *testing.T, moment string) *Clock {
	t.Helper()
	clock := NewClock()
	fixed, err := time.ParseInLocation("2006-01-02 15:04", moment, clock.Location())
	require.NoError(t, err)
	clock.now = func() time.Time { return fixed }
	return clock
}

func TestResolveTargetDate_ExplicitDate(t *testing.T) {
	clock := fixedClock(t, "2024-06-10 14:30")

	t.Run("explicit date wins over offset", func(t *testing.T) {
		for _, offsetDays := range []int{-3, 0, 5} {
			target, err := clock.ResolveTargetDate("2024-06-12", offsetDays)
			require.NoError(t, err)
			assert.Equal(t, "2024-06-12", target.Format("2006-01-02"))
			assert.Equal(t, 0, target.Hour(), "target date should be midnight")
			assert.Equal(t, 0, target.Minute())
		}
	})

	t.Run("invalid date format", func(t *testing.T) {
		_, err := clock.ResolveTargetDate("12/06/2024", 0)
		require.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok, "should be a CustomError")
		assert.Equal(t, 400, customErr.StatusCode)
	})
}

func TestResolveTargetDate_Offsets(t *testing.T) {
	clock := fixedClock(t, "2024-06-10 14:30")

	t.Run("no specifier is today at midnight", func(t *testing.T) {
		target, err := clock.ResolveTargetDate("", 0)
		require.NoError(t, err)
		assert.Equal(t, "2024-06-10", target.Format("2006-01-02"))
		assert.Equal(t, 0, target.Hour())
	})

	t.Run("offset one is tomorrow", func(t *testing.T) {
		target, err := clock.ResolveTargetDate("", 1)
		require.NoError(t, err)
		assert.Equal(t, "2024-06-11", target.Format("2006-01-02"))
	})

	t.Run("negative offset is yesterday", func(t *testing.T) {
		target, err := clock.ResolveTargetDate("", -1)
		require.NoError(t, err)
		assert.Equal(t, "2024-06-09", target.Format("2006-01-02"))
	})
}

func TestClockNow_FixedZone(t *testing.T) {
	clock := NewClock()
	now := clock.Now()

	_, offset := now.Zone()
	assert.Equal(t, 8*60*60, offset, "fixed zone is UTC+8")
}
