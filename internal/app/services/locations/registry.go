package locations

import (
	"strings"

	"openstatus-service/internal/app/config"
	"openstatus-service/internal/pkg/constvars"
	"openstatus-service/internal/pkg/exceptions"
)

type staticRegistry struct {
	scheduleIDs map[string]string
}

// NewStaticRegistry builds the location map once from configuration.
// The map is never mutated after construction.
func NewStaticRegistry(internalConfig *config.InternalConfig) Registry {
	return &staticRegistry{
		scheduleIDs: map[string]string{
			constvars.LocationKeyHongKong:    internalConfig.Calcom.ScheduleIDHongKong,
			constvars.LocationKeyTsimShaTsui: internalConfig.Calcom.ScheduleIDTsimShaTsui,
		},
	}
}

func (r *staticRegistry) ScheduleIDByKey(locationKey string) (string, error) {
	scheduleID, ok := r.scheduleIDs[strings.ToLower(locationKey)]
	if !ok {
		return "", exceptions.ErrUnknownLocation(nil, locationKey)
	}
	if scheduleID == "" {
		return "", exceptions.ErrMissingScheduleID(nil, locationKey)
	}
	return scheduleID, nil
}
