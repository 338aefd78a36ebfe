package responses

// OpenStatus is the wire shape of an open/closed answer for one
// location and one target date. When Open is false every nullable
// field stays null; when Open is true Start and End are both set.
type OpenStatus struct {
	Date     string  `json:"date"`
	Weekday  string  `json:"weekday"`
	Timezone string  `json:"timezone"`
	Open     bool    `json:"open"`
	Start    *string `json:"start"`
	End      *string `json:"end"`
	StartIso *string `json:"startIso"`
	EndIso   *string `json:"endIso"`
	OpenNow  *bool   `json:"openNow"`
	Status   string  `json:"status"`
}
