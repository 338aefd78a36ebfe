package calcom

import (
	"context"
	"openstatus-service/internal/pkg/calcom_dto"
)

type ScheduleClient interface {
	// FindScheduleByID fetches one schedule resource from the provider.
	// The returned payload is fully populated: an absent data object or
	// absent lists come back as zero values, never as an error.
	FindScheduleByID(ctx context.Context, scheduleID string) (*calcom_dto.ScheduleData, error)
}
