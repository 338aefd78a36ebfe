package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY ContextKey = "request_id"
)

const (
	TimezoneHongKong = "Asia/Hong_Kong"

	// Fixed offset fallback when the tz database is unavailable.
	TimezoneHongKongAbbrev        = "HKT"
	TimezoneHongKongOffsetSeconds = 8 * 60 * 60
)

const (
	DateFormatYMD   = "2006-01-02"
	WallClockFormat = "15:04"
)

// Status phases describing the relationship between now and today's
// opening window. Only meaningful when the target date is today.
const (
	StatusPhaseBeforeOpen = "before_open"
	StatusPhaseOpen       = "open"
	StatusPhaseAfterClose = "after_close"
	StatusPhaseClosed     = "closed"
	StatusPhaseNotToday   = "not_today"
)

const (
	LocationKeyHongKong    = "hk"
	LocationKeyTsimShaTsui = "tst"
)

const (
	CalcomAPIVersion          = "2024-06-11"
	CalcomResourceSchedules   = "/schedules"
	CalcomAuthorizationPrefix = "Bearer "
)
