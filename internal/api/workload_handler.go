package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/yakoovad/workload-planner/pkg/logger"
	"go.uber.org/zap"
)

func (h *Handler) GetWorkload(e echo.Context) error {
	l := logger.FromContext(e.Request().Context())
	s := SessionFromContext(e)

	date, err := parseDate(e.QueryParam("date"), "date")
	if err != nil {
		l.Warn("invalid request", zap.Any("error", err))
		return h.transportError(e, err)
	}

	var teamID *string
	if v := e.QueryParam("team_id"); v != "" {
		teamID = &v
	}

	report, err := h.workload.GetOrganizationWorkload(e.Request().Context(), s.OrganizationID, teamID, date)
	if err != nil {
		l.Error("failed to get workload", zap.Any("error", err))
		return h.transportError(e, err)
	}

	return e.JSON(http.StatusOK, report)
}

func (h *Handler) GetPersonWorkload(e echo.Context) error {
	l := logger.FromContext(e.Request().Context())
	s := SessionFromContext(e)

	personID := e.Param("personID")

	date, err := parseDate(e.QueryParam("date"), "date")
	if err != nil {
		l.Warn("invalid request", zap.Any("error", err))
		return h.transportError(e, err)
	}

	res, err := h.workload.GetPersonWorkload(e.Request().Context(), s.OrganizationID, personID, date)
	if err != nil {
		l.Error("failed to get person workload", zap.String("person_id", personID), zap.Any("error", err))
		return h.transportError(e, err)
	}

	return e.JSON(http.StatusOK, res)
}
