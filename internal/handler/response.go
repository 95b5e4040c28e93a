package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/grachmannico95/casedesk-be/internal/domain"
)

type errorResponse struct {
	Error  string              `json:"error"`
	Errors []domain.FieldError `json:"errors,omitempty"`
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrCaseNotFound),
		errors.Is(err, domain.ErrRowNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidCase):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, domain.ErrBatchHasErrors),
		errors.Is(err, domain.ErrSubmitInFlight),
		errors.Is(err, domain.ErrInvalidState),
		errors.Is(err, domain.ErrStaleResult):
		return http.StatusConflict
	case errors.Is(err, domain.ErrSubmission):
		return http.StatusBadGateway
	case errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, domain.ErrEmptyImport),
		errors.Is(err, domain.ErrMissingFields),
		errors.Is(err, domain.ErrMissingCredentials),
		errors.Is(err, domain.ErrWeakPassword),
		errors.Is(err, domain.ErrUserExists),
		errors.Is(err, domain.ErrParse),
		errors.Is(err, domain.ErrTooManyRows),
		errors.Is(err, domain.ErrEmptyBatch),
		errors.Is(err, domain.ErrInvalidPageParams),
		errors.Is(err, domain.ErrInvalidRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(c echo.Context, err error) error {
	status := statusFor(err)

	resp := errorResponse{Error: err.Error()}
	switch status {
	case http.StatusUnauthorized:
		if errors.Is(err, domain.ErrUnauthenticated) {
			resp.Error = domain.ErrUnauthenticated.Error()
		}
	case http.StatusInternalServerError:
		resp.Error = "internal server error"
	}

	var verr *domain.CaseValidationError
	if errors.As(err, &verr) {
		resp.Error = domain.ErrInvalidCase.Error()
		resp.Errors = verr.Errors
	}
	var rerr *requestError
	if errors.As(err, &rerr) {
		resp.Errors = rerr.fields
	}

	return c.JSON(status, resp)
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, errorResponse{Error: message})
}
