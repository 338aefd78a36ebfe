package utils

import (
	"openstatus-service/internal/pkg/constvars"
	"time"
)

// CombineDateAndWallClock anchors an HH:MM wall-clock value on the
// given calendar date in loc, with seconds zeroed.
func CombineDateAndWallClock(date time.Time, wallClock string, loc *time.Location) (time.Time, error) {
	parsed, err := time.Parse(constvars.WallClockFormat, wallClock)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(), parsed.Hour(), parsed.Minute(), 0, 0, loc), nil
}

// ISOWeekdayNumber maps time.Weekday to ISO-8601 numbering,
// 1=Monday .. 7=Sunday.
func ISOWeekdayNumber(t time.Time) int {
	weekday := int(t.Weekday())
	if weekday == 0 {
		return 7
	}
	return weekday
}

func SameCalendarDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
