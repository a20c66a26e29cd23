package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/yakoovad/workload-planner/internal/model"
	"github.com/yakoovad/workload-planner/pkg/logger"
	"go.uber.org/zap"
)

func (h *Handler) CreatePerson(e echo.Context) error {
	l := logger.FromContext(e.Request().Context())
	s := SessionFromContext(e)

	req := model.NewPerson{WeeklyHours: 40, WorkloadPercent: 100}

	if err := decodeRequest(e, &req); err != nil {
		l.Error("invalid request", zap.Any("error", err))
		return h.transportError(e, err)
	}

	person, err := h.person.CreatePerson(e.Request().Context(), s.OrganizationID, &req)
	if err != nil {
		l.Error("failed to create person", zap.String("email", req.Email), zap.Any("error", err))
		return h.transportError(e, err)
	}

	return e.JSON(http.StatusCreated, person)
}

func (h *Handler) GetPerson(e echo.Context) error {
	l := logger.FromContext(e.Request().Context())
	s := SessionFromContext(e)

	personID := e.Param("personID")

	person, err := h.person.GetPerson(e.Request().Context(), s.OrganizationID, personID)
	if err != nil {
		l.Error("failed to get person", zap.String("person_id", personID), zap.Any("error", err))
		return h.transportError(e, err)
	}

	return e.JSON(http.StatusOK, person)
}

func (h *Handler) SetCapacity(e echo.Context) error {
	l := logger.FromContext(e.Request().Context())
	s := SessionFromContext(e)

	personID := e.Param("personID")

	var req model.Capacity
	if err := decodeRequest(e, &req); err != nil {
		l.Error("invalid request", zap.Any("error", err))
		return h.transportError(e, err)
	}

	person, err := h.person.SetCapacity(e.Request().Context(), s.OrganizationID, personID, &req)
	if err != nil {
		l.Error("failed to set capacity", zap.String("person_id", personID), zap.Any("error", err))
		return h.transportError(e, err)
	}

	return e.JSON(http.StatusOK, person)
}
