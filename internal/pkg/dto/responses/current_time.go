package responses

// CurrentTime reports the current moment in the fixed zone.
// WeekdayNum follows ISO-8601: 1=Monday .. 7=Sunday.
type CurrentTime struct {
	Datetime   string `json:"datetime"`
	WeekdayNum int    `json:"weekdayNum"`
	Timezone   string `json:"timezone"`
}
