package constvars

const (
	ResponseUnknown = "Unknown"

	ServiceName = "openstatus-service"
)
