package calcom_dto

// Schedule DTOs mirror the provider's v2 schedule resource. The data
// object and both lists are optional on the wire; the gateway resolves
// every optional field to its zero value before the payload reaches
// the evaluator, and list order is preserved as received.

type ScheduleResponse struct {
	Status string        `json:"status"`
	Data   *ScheduleData `json:"data"`
}

type ScheduleData struct {
	ID           int64               `json:"id"`
	Name         string              `json:"name"`
	TimeZone     string              `json:"timeZone"`
	Availability []AvailabilityBlock `json:"availability"`
	Overrides    []ScheduleOverride  `json:"overrides"`
}

// AvailabilityBlock is a recurring weekly rule: the listed weekday
// names share one start/end wall-clock pair.
type AvailabilityBlock struct {
	Days      []string `json:"days"`
	StartTime string   `json:"startTime"`
	EndTime   string   `json:"endTime"`
}

// ScheduleOverride is a date-specific exception. Empty start and end
// times mean the location is closed on that date.
type ScheduleOverride struct {
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}
