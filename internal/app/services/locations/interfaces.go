package locations

type Registry interface {
	// ScheduleIDByKey resolves a location key to the provider schedule
	// id. Keys are matched case-insensitively. Unregistered keys return
	// ErrUnknownLocation; registered keys with an empty id return
	// ErrMissingScheduleID.
	ScheduleIDByKey(locationKey string) (string, error)
}
