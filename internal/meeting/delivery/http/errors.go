package http

import (
	"errors"
	"net/http"

	"smartmeet/internal/meeting"
	pkgErrors "smartmeet/pkg/errors"
	"smartmeet/pkg/response"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	var failure *meeting.ValidationFailure
	if errors.As(err, &failure) {
		return pkgErrors.NewHTTPError(http.StatusBadRequest, failure.Reason)
	}

	switch {
	case errors.Is(err, meeting.ErrEmptyInput):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "text is required")
	case errors.Is(err, meeting.ErrMeetingNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "meeting not found")
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, response.DefaultErrorMessage)
	}
}

// failurePayload extracts the structured validation detail for the
// response envelope's errors field, nil for non-validation errors.
func (h *handler) failurePayload(err error) any {
	var failure *meeting.ValidationFailure
	if errors.As(err, &failure) {
		return newFailureResp(failure)
	}
	return nil
}

// failureCode names the validation sentinel on the wire.
func failureCode(f *meeting.ValidationFailure) string {
	switch {
	case errors.Is(f, meeting.ErrMissingParticipants):
		return "missing_participants"
	case errors.Is(f, meeting.ErrUnknownParticipant):
		return "unknown_participant"
	case errors.Is(f, meeting.ErrUnparseableTime):
		return "unparseable_time"
	case errors.Is(f, meeting.ErrPastTime):
		return "past_time"
	case errors.Is(f, meeting.ErrInvalidDuration):
		return "invalid_duration"
	default:
		return "validation_failed"
	}
}
