package requests

// OpenStatusQuery carries the parsed query parameters for the /open
// endpoints. Date takes precedence over OffsetDays when both are set;
// an absent offset behaves like 0 (today).
type OpenStatusQuery struct {
	LocationKey string `validate:"required"`
	Date        string `validate:"omitempty,datetime=2006-01-02"`
	OffsetDays  int
}
