package constvars

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientInvalidDateFormat             = "date must be in YYYY-MM-DD format"
	ErrClientInvalidOffsetDays             = "offsetDays must be an integer"
	ErrClientUnknownLocation               = "Unknown location"
	ErrClientScheduleProviderUnavailable   = "schedule provider is unavailable"
)

// Error messages for developers
const (
	ErrDevValidationFailed       = "input validation failed"
	ErrDevCannotParseDate        = "cannot parse the requested date"
	ErrDevCannotParseOffsetDays  = "cannot parse offsetDays into an integer"
	ErrDevCannotParseJSON        = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON      = "cannot convert struct or other data types to JSON"
	ErrDevCreateHTTPRequest      = "failed to create HTTP request"
	ErrDevSendHTTPRequest        = "failed to send HTTP request"
	ErrDevUnknownLocation        = "location key %s is not registered"
	ErrDevMissingScheduleID      = "location key %s resolves to an empty schedule id"
	ErrDevCalcomAPIKeyMissing    = "CALCOM_API_KEY is not configured"
	ErrDevCalcomGetSchedule      = "failed to fetch schedule %s from provider"
	ErrDevCalcomDecodeSchedule   = "failed to decode schedule %s provider response"
	ErrDevCalcomUnexpectedStatus = "provider responded with status %d for schedule %s"
)
