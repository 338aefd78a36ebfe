package hours

import (
	"context"
	"time"

	"openstatus-service/internal/app/config"
	"openstatus-service/internal/app/services/calcom"
	"openstatus-service/internal/app/services/locations"
	"openstatus-service/internal/pkg/constvars"
	"openstatus-service/internal/pkg/dto/requests"
	"openstatus-service/internal/pkg/dto/responses"
	"openstatus-service/internal/pkg/exceptions"
	"openstatus-service/internal/pkg/utils"
)

type hoursUsecase struct {
	Clock            *Clock
	LocationRegistry locations.Registry
	ScheduleClient   calcom.ScheduleClient
	InternalConfig   *config.InternalConfig
}

func NewHoursUsecase(
	clock *Clock,
	locationRegistry locations.Registry,
	scheduleClient calcom.ScheduleClient,
	internalConfig *config.InternalConfig,
) HoursUsecase {
	return &hoursUsecase{
		Clock:            clock,
		LocationRegistry: locationRegistry,
		ScheduleClient:   scheduleClient,
		InternalConfig:   internalConfig,
	}
}

func (uc *hoursUsecase) HandleGetOpenStatus(ctx context.Context, request *requests.OpenStatusQuery) (*responses.OpenStatus, error) {
	err := utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInvalidDateFormat(err)
	}

	targetDate, err := uc.Clock.ResolveTargetDate(request.Date, request.OffsetDays)
	if err != nil {
		return nil, err
	}

	// Registry lookup comes first so unknown locations never trigger a
	// provider call.
	scheduleID, err := uc.LocationRegistry.ScheduleIDByKey(request.LocationKey)
	if err != nil {
		return nil, err
	}

	if uc.InternalConfig.Calcom.APIKey == "" {
		return nil, exceptions.ErrMissingCredential(nil)
	}

	schedule, err := uc.ScheduleClient.FindScheduleByID(ctx, scheduleID)
	if err != nil {
		return nil, err
	}

	evaluation := EvaluateSchedule(schedule, targetDate)
	openNow, statusPhase := ResolveStatusPhase(targetDate, uc.Clock.Now(), evaluation, uc.Clock.Location())

	result := &responses.OpenStatus{
		Date:     targetDate.Format(constvars.DateFormatYMD),
		Weekday:  targetDate.Weekday().String(),
		Timezone: evaluation.Timezone,
		Open:     evaluation.IsOpen,
		OpenNow:  openNow,
		Status:   statusPhase,
	}

	if evaluation.IsOpen {
		result.Start = &evaluation.StartTime
		result.End = &evaluation.EndTime

		startTs, errStart := utils.CombineDateAndWallClock(targetDate, evaluation.StartTime, uc.Clock.Location())
		endTs, errEnd := utils.CombineDateAndWallClock(targetDate, evaluation.EndTime, uc.Clock.Location())
		if errStart == nil && errEnd == nil {
			startIso := startTs.Format(time.RFC3339)
			endIso := endTs.Format(time.RFC3339)
			result.StartIso = &startIso
			result.EndIso = &endIso
		}
	}

	return result, nil
}

func (uc *hoursUsecase) HandleGetCurrentTime() *responses.CurrentTime {
	now := uc.Clock.Now()
	return &responses.CurrentTime{
		Datetime:   now.Format(time.RFC3339),
		WeekdayNum: utils.ISOWeekdayNumber(now),
		Timezone:   constvars.TimezoneHongKong,
	}
}
