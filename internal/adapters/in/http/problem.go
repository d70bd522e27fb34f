package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"wandshop/internal/pkg/errs"

	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/labstack/echo/v4"
)

// ContentTypeProblemJSON is the media type for Problem Details responses.
const ContentTypeProblemJSON = "application/problem+json"

// ProblemDetail is an RFC 7807 problem. Extensions are carried in a nested object.
type ProblemDetail struct {
	Type       string         `json:"type"`
	Title      string         `json:"title"`
	Status     int            `json:"status"`
	Detail     string         `json:"detail,omitempty"`
	Instance   string         `json:"instance,omitempty"`
	Extensions map[string]any `json:"extensions,omitempty"`
}

func (p ProblemDetail) WithDetail(detail string) ProblemDetail {
	p.Detail = detail
	return p
}

func (p ProblemDetail) WithExtension(key string, value any) ProblemDetail {
	ext := make(map[string]any, len(p.Extensions)+1)
	for k, v := range p.Extensions {
		ext[k] = v
	}
	ext[key] = value
	p.Extensions = ext
	return p
}

const (
	TypeValidation      = "/problems/validation-error"
	TypeNotFound        = "/problems/not-found"
	TypeInvalidState    = "/problems/invalid-state"
	TypeConflict        = "/problems/conflict"
	TypeNoInventory     = "/problems/no-inventory"
	TypeContentRejected = "/problems/content-rejected"
	TypeExternalService = "/problems/external-service"
	TypeInternal        = "/problems/internal-error"
)

var (
	problemValidation = ProblemDetail{Type: TypeValidation, Title: "Validation Error", Status: http.StatusBadRequest}
	problemNotFound   = ProblemDetail{Type: TypeNotFound, Title: "Resource Not Found", Status: http.StatusNotFound}
	problemState      = ProblemDetail{Type: TypeInvalidState, Title: "Invalid State", Status: http.StatusBadRequest}
	problemConflict   = ProblemDetail{Type: TypeConflict, Title: "Conflict", Status: http.StatusConflict}
	problemInventory  = ProblemDetail{Type: TypeNoInventory, Title: "No Inventory", Status: http.StatusConflict}
	problemRejected   = ProblemDetail{Type: TypeContentRejected, Title: "Content Rejected", Status: http.StatusUnprocessableEntity}
	problemExternal   = ProblemDetail{Type: TypeExternalService, Title: "External Service Error", Status: http.StatusBadGateway}
	problemInternal   = ProblemDetail{Type: TypeInternal, Title: "Internal Server Error", Status: http.StatusInternalServerError}
)

// ProblemFromError classifies an error by the errs kind it wraps.
func ProblemFromError(err error) ProblemDetail {
	var (
		invalidState *errs.InvalidStateError
		requestErr   *openapi3filter.RequestError
		httpErr      *echo.HTTPError
	)

	switch {
	case errors.As(err, &requestErr):
		return problemValidation.WithDetail(requestErr.Error())
	case errors.As(err, &httpErr):
		return ProblemDetail{
			Type:   "about:blank",
			Title:  http.StatusText(httpErr.Code),
			Status: httpErr.Code,
			Detail: fmt.Sprint(httpErr.Message),
		}
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return problemValidation.WithDetail(err.Error())
	case errors.Is(err, errs.ErrObjectNotFound):
		return problemNotFound.WithDetail(err.Error())
	case errors.As(err, &invalidState):
		return problemState.WithDetail(err.Error()).WithExtension("state", invalidState.State)
	case errors.Is(err, errs.ErrConcurrentModification),
		errors.Is(err, errs.ErrAllocationConflict):
		return problemConflict.WithDetail(err.Error()).WithExtension("retryable", true)
	case errors.Is(err, errs.ErrNoInventory):
		return problemInventory.WithDetail(err.Error())
	case errors.Is(err, errs.ErrContentRejected):
		return problemRejected.WithDetail(err.Error())
	case errors.Is(err, errs.ErrExternalService):
		return problemExternal.WithDetail(err.Error())
	default:
		return problemInternal
	}
}

// NewErrorHandler renders every error returned by a handler as a problem. Server
// errors are logged; their detail is not sent to the client.
func NewErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		problem := ProblemFromError(err)
		problem.Instance = c.Request().URL.Path
		if problem.Status >= http.StatusInternalServerError {
			logger.ErrorContext(c.Request().Context(), "request failed",
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"error", err,
			)
		}

		c.Response().Header().Set(echo.HeaderContentType, ContentTypeProblemJSON)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(problem.Status)
			return
		}
		_ = c.JSON(problem.Status, problem)
	}
}
