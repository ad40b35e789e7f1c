package http

import (
	"errors"
	"net/http"

	"dockflow/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// writeError translates an application error into the uniform JSON error body.
// The kind decides the status; the message keeps the human-readable detail.
func writeError(ctx echo.Context, err error) error {
	code := statusCodeFor(err)
	return ctx.JSON(code, Error{
		Code:    code,
		Message: err.Error(),
	})
}

func statusCodeFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrDockConflict),
		errors.Is(err, errs.ErrNoDockAvailable):
		return http.StatusConflict
	case errors.Is(err, errs.ErrScanMismatch),
		errors.Is(err, errs.ErrNotApplicable):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
