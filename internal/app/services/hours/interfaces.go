package hours

import (
	"context"

	"openstatus-service/internal/pkg/dto/requests"
	"openstatus-service/internal/pkg/dto/responses"
)

type HoursUsecase interface {
	// HandleGetOpenStatus answers whether the location identified by
	// the request's key is open on the resolved target date.
	HandleGetOpenStatus(ctx context.Context, request *requests.OpenStatusQuery) (*responses.OpenStatus, error)

	// HandleGetCurrentTime reports the current moment in the fixed zone.
	HandleGetCurrentTime() *responses.CurrentTime
}
