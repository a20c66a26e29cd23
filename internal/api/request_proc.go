package api

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/yakoovad/workload-planner/internal/service"
)

// ProcessRequest runs the steps in order and stops at the first failure.
func ProcessRequest[T any](e echo.Context, req *T, steps ...func(echo.Context, *T) *service.Error) *service.Error {
	for _, step := range steps {
		if err := step(e, req); err != nil {
			return err
		}
	}
	return nil
}

// decodeRequest binds the body (and path/query params) into req and validates it.
func decodeRequest[T any](e echo.Context, req *T) *service.Error {
	return ProcessRequest(e, req, bindStep[T], validateStep[T])
}

func bindStep[T any](e echo.Context, req *T) *service.Error {
	if err := e.Bind(req); err != nil {
		return service.NewError(service.ErrorCodeInvalidBody, "invalid request body")
	}
	return nil
}

func validateStep[T any](e echo.Context, req *T) *service.Error {
	if err := e.Validate(req); err != nil {
		return service.NewError(service.ErrorCodeInvalidBody, errors.Wrap(err, "request validation failed").Error())
	}
	return nil
}

// parseDate reads a YYYY-MM-DD value. An empty value yields nil.
func parseDate(value, field string) (*time.Time, *service.Error) {
	if value == "" {
		return nil, nil
	}
	d, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return nil, service.NewError(service.ErrorCodeInvalidBody, field+" must be a date in YYYY-MM-DD format")
	}
	return &d, nil
}
