package exceptions

import (
	"fmt"
	"openstatus-service/internal/pkg/constvars"
)

var (
	// Input
	ErrInvalidDateFormat = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientInvalidDateFormat, constvars.ErrDevCannotParseDate)
	}
	ErrInvalidOffsetDays = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientInvalidOffsetDays, constvars.ErrDevCannotParseOffsetDays)
	}
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevValidationFailed)
	}

	// Locations
	ErrUnknownLocation = func(err error, locationKey string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientUnknownLocation, fmt.Sprintf(constvars.ErrDevUnknownLocation, locationKey))
	}
	ErrMissingScheduleID = func(err error, locationKey string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMissingScheduleID, locationKey))
	}

	// Provider credential. Client message stays generic so no secret
	// state leaks through the API.
	ErrMissingCredential = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCalcomAPIKeyMissing)
	}

	// HTTP
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCreateHTTPRequest)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}

	// Provider
	ErrProviderUnavailable = func(err error, scheduleID string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientScheduleProviderUnavailable, fmt.Sprintf(constvars.ErrDevCalcomGetSchedule, scheduleID))
	}
	ErrProviderUnexpectedStatus = func(statusCode int, scheduleID string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadGateway, constvars.ErrClientScheduleProviderUnavailable, fmt.Sprintf(constvars.ErrDevCalcomUnexpectedStatus, statusCode, scheduleID))
	}
	ErrDecodeResponse = func(err error, scheduleID string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientScheduleProviderUnavailable, fmt.Sprintf(constvars.ErrDevCalcomDecodeSchedule, scheduleID))
	}
)
