package http

import (
	"errors"
	"net/http"
	"strings"

	"ordering/internal/core/domain/model/actor"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/generated/servers"
	"ordering/internal/pkg/errs"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/middleware/stdlib"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// Authentication happens upstream; the gateway forwards the caller identity in
// these headers.
const (
	HeaderActorID   = "X-Actor-ID"
	HeaderActorRole = "X-Actor-Role"

	actorContextKey = "ordering.actor"
	apiPrefix       = "/api/"
)

var errActorMissing = errors.New("actor is missing from the request context")

// ActorMiddleware resolves the caller from the identity headers of every API
// request and answers 401 when they are missing or malformed.
func ActorMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if !strings.HasPrefix(ctx.Request().URL.Path, apiPrefix) {
				return next(ctx)
			}

			a, err := parseActor(ctx.Request().Header)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, servers.Error{
					Code:    http.StatusUnauthorized,
					Message: err.Error(),
				})
			}

			ctx.Set(actorContextKey, a)
			return next(ctx)
		}
	}
}

func parseActor(header http.Header) (actor.Actor, error) {
	rawID := strings.TrimSpace(header.Get(HeaderActorID))
	rawRole := strings.ToLower(strings.TrimSpace(header.Get(HeaderActorRole)))
	if rawID == "" || rawRole == "" {
		return actor.Actor{}, errs.NewValueIsRequiredError(HeaderActorID + " and " + HeaderActorRole + " headers")
	}

	id, err := kernel.UUIDFromString(rawID)
	if err != nil {
		return actor.Actor{}, errs.NewValueIsInvalidErrorWithCause(HeaderActorID, err)
	}
	role, err := actor.ParseRole(rawRole)
	if err != nil {
		return actor.Actor{}, err
	}

	return actor.NewActor(id, role)
}

func actorFrom(ctx echo.Context) (actor.Actor, error) {
	a, ok := ctx.Get(actorContextKey).(actor.Actor)
	if !ok {
		return actor.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, errActorMissing.Error())
	}
	return a, nil
}

// OpenAPIValidator checks path, query and body of every request that matches an
// operation of doc. Requests outside the document (health, metrics, swagger)
// pass through untouched.
func OpenAPIValidator(doc *openapi3.T) (echo.MiddlewareFunc, error) {
	router, err := legacy.NewRouter(doc)
	if err != nil {
		return nil, err
	}

	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()
			route, pathParams, findErr := router.FindRoute(req)
			if findErr != nil {
				return next(ctx)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if validateErr := openapi3filter.ValidateRequest(req.Context(), input); validateErr != nil {
				return ctx.JSON(http.StatusBadRequest, servers.Error{
					Code:    http.StatusBadRequest,
					Message: validateErr.Error(),
				})
			}

			return next(ctx)
		}
	}, nil
}

// RateLimiter limits requests per client IP with an in-memory store. rate uses
// the limiter notation, e.g. "100-S" or "1000-M".
func RateLimiter(rate string) (echo.MiddlewareFunc, error) {
	parsed, err := limiter.NewRateFromFormatted(rate)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("rate limit", err)
	}

	instance := limiter.New(memory.NewStore(), parsed)
	mw := stdlib.NewMiddleware(instance,
		stdlib.WithLimitReachedHandler(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"code":429,"message":"rate limit exceeded"}`))
		}),
	)

	return echo.WrapMiddleware(mw.Handler), nil
}

// RequestValidator adapts go-playground/validator to echo.Validator.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

func (v *RequestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("request body", err)
	}
	return nil
}

func bindAndValidate(ctx echo.Context, body any) error {
	if err := ctx.Bind(body); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("request body", err)
	}
	return ctx.Validate(body)
}
