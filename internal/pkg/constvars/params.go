package constvars

const (
	URLParamLocationKey = "locationKey"

	QueryParamDate       = "date"
	QueryParamOffsetDays = "offsetDays"
)
