package hours

import (
	"time"

	"openstatus-service/internal/pkg/constvars"
	"openstatus-service/internal/pkg/exceptions"
)

// Clock resolves request date specifiers and the current moment in the
// one fixed zone the service operates in (UTC+8, no daylight saving).
type Clock struct {
	location *time.Location
	now      func() time.Time
}

func NewClock() *Clock {
	location, err := time.LoadLocation(constvars.TimezoneHongKong)
	if err != nil {
		location = time.FixedZone(constvars.TimezoneHongKongAbbrev, constvars.TimezoneHongKongOffsetSeconds)
	}
	return &Clock{
		location: location,
		now:      time.Now,
	}
}

func (c *Clock) Location() *time.Location {
	return c.location
}

// Now is the true current moment in the fixed zone, not truncated.
func (c *Clock) Now() time.Time {
	return c.now().In(c.location)
}

// ResolveTargetDate turns a date specifier into midnight of a concrete
// calendar date in the fixed zone. A non-empty dateStr wins over
// offsetDays; with both absent the target is today (offsetDays zero).
func (c *Clock) ResolveTargetDate(dateStr string, offsetDays int) (time.Time, error) {
	if dateStr != "" {
		parsed, err := time.ParseInLocation(constvars.DateFormatYMD, dateStr, c.location)
		if err != nil {
			return time.Time{}, exceptions.ErrInvalidDateFormat(err)
		}
		return parsed, nil
	}

	now := c.Now().AddDate(0, 0, offsetDays)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, c.location), nil
}
