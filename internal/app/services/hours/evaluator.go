package hours

import (
	"time"

	"openstatus-service/internal/pkg/calcom_dto"
	"openstatus-service/internal/pkg/constvars"
	"openstatus-service/internal/pkg/utils"
)

// Evaluation is the resolved opening window for one calendar date.
// Start and End are wall-clock HH:MM strings, empty when closed.
type Evaluation struct {
	IsOpen    bool
	StartTime string
	EndTime   string
	Timezone  string
}

// EvaluateSchedule resolves the applicable hours for targetDate.
// Precedence: the first override whose date matches is authoritative
// and short-circuits the weekly lookup entirely, even when its times
// are blank (an explicit closed exception). Otherwise the first
// availability block listing targetDate's weekday wins. List order is
// source order and is significant.
func EvaluateSchedule(schedule *calcom_dto.ScheduleData, targetDate time.Time) Evaluation {
	timezone := schedule.TimeZone
	if timezone == "" {
		timezone = constvars.TimezoneHongKong
	}

	dateStr := targetDate.Format(constvars.DateFormatYMD)
	for _, override := range schedule.Overrides {
		if override.Date == dateStr {
			return Evaluation{
				IsOpen:    override.StartTime != "" && override.EndTime != "",
				StartTime: override.StartTime,
				EndTime:   override.EndTime,
				Timezone:  timezone,
			}
		}
	}

	weekdayName := targetDate.Weekday().String()
	for _, block := range schedule.Availability {
		for _, day := range block.Days {
			if day == weekdayName {
				return Evaluation{
					IsOpen:    block.StartTime != "" && block.EndTime != "",
					StartTime: block.StartTime,
					EndTime:   block.EndTime,
					Timezone:  timezone,
				}
			}
		}
	}

	return Evaluation{Timezone: timezone}
}

// ResolveStatusPhase relates the current moment to the resolved
// window. Phases other than not_today only apply when targetDate is
// today in the fixed zone. The opening boundary is inclusive, the
// closing boundary exclusive.
func ResolveStatusPhase(targetDate, currentMoment time.Time, evaluation Evaluation, location *time.Location) (*bool, string) {
	if !utils.SameCalendarDate(targetDate, currentMoment.In(location)) {
		return nil, constvars.StatusPhaseNotToday
	}

	closed := false
	if !evaluation.IsOpen {
		return &closed, constvars.StatusPhaseClosed
	}

	startTs, errStart := utils.CombineDateAndWallClock(targetDate, evaluation.StartTime, location)
	endTs, errEnd := utils.CombineDateAndWallClock(targetDate, evaluation.EndTime, location)
	if errStart != nil || errEnd != nil {
		return &closed, constvars.StatusPhaseClosed
	}

	openNow := false
	switch {
	case currentMoment.Before(startTs):
		return &openNow, constvars.StatusPhaseBeforeOpen
	case currentMoment.Before(endTs):
		openNow = true
		return &openNow, constvars.StatusPhaseOpen
	default:
		return &openNow, constvars.StatusPhaseAfterClose
	}
}
