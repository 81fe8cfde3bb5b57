package http

import (
	"errors"
	"log/slog"
	"net/http"

	"ordering/internal/generated/servers"
	"ordering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// retryAfterSeconds is advertised with 409 responses caused by a concurrent
// modification; the request can be replayed as is.
const retryAfterSeconds = "1"

// statusFor maps an application error onto the HTTP status and the message
// shown to the client. Unknown errors become 500 and keep their text private.
func statusFor(err error) (int, string) {
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &httpErr):
		if msg, ok := httpErr.Message.(string); ok {
			return httpErr.Code, msg
		}
		return httpErr.Code, http.StatusText(httpErr.Code)
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden, err.Error()
	case errors.Is(err, errs.ErrOrderLocked):
		return http.StatusLocked, err.Error()
	case errors.Is(err, errs.ErrInvalidTransition):
		return http.StatusConflict, err.Error()
	case errors.Is(err, errs.ErrConcurrentModification):
		return http.StatusConflict, err.Error()
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

func writeError(ctx echo.Context, err error) error {
	code, message := statusFor(err)
	if errors.Is(err, errs.ErrConcurrentModification) {
		ctx.Response().Header().Set(echo.HeaderRetryAfter, retryAfterSeconds)
	}
	return ctx.JSON(code, servers.Error{Code: code, Message: message})
}

func (s *Server) fail(ctx echo.Context, err error) error {
	if code, _ := statusFor(err); code >= http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method, "path", ctx.Path(), "error", err)
	}
	return writeError(ctx, err)
}

// ErrorHandler renders errors that escape the handlers, such as unknown routes
// and binding failures, in the same Error shape.
func ErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}
		if code, _ := statusFor(err); code >= http.StatusInternalServerError {
			logger.ErrorContext(ctx.Request().Context(), "unhandled error", "path", ctx.Path(), "error", err)
		}
		if ctx.Request().Method == http.MethodHead {
			code, _ := statusFor(err)
			_ = ctx.NoContent(code)
			return
		}
		_ = writeError(ctx, err)
	}
}
