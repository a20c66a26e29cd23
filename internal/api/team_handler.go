package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/yakoovad/workload-planner/internal/model"
	"github.com/yakoovad/workload-planner/pkg/logger"
	"go.uber.org/zap"
)

func (h *Handler) ListTeams(e echo.Context) error {
	l := logger.FromContext(e.Request().Context())
	s := SessionFromContext(e)

	teams, err := h.team.ListTeams(e.Request().Context(), s.OrganizationID)
	if err != nil {
		l.Error("failed to list teams", zap.Any("error", err))
		return h.transportError(e, err)
	}

	return e.JSON(http.StatusOK, teams)
}

func (h *Handler) GetTeam(e echo.Context) error {
	l := logger.FromContext(e.Request().Context())
	s := SessionFromContext(e)

	teamID := e.Param("teamID")

	l.Info("getting team", zap.String("team_id", teamID))

	team, err := h.team.GetTeam(e.Request().Context(), s.OrganizationID, teamID)
	if err != nil {
		l.Error("failed to get team", zap.String("team_id", teamID), zap.Any("error", err))
		return h.transportError(e, err)
	}

	return e.JSON(http.StatusOK, team)
}

func (h *Handler) CreateTeam(e echo.Context) error {
	l := logger.FromContext(e.Request().Context())
	s := SessionFromContext(e)

	var req struct {
		Name string `json:"team_name" validate:"required,max=100"`
	}

	if err := decodeRequest(e, &req); err != nil {
		l.Error("invalid request", zap.Any("error", err))
		return h.transportError(e, err)
	}

	team, err := h.team.CreateTeam(e.Request().Context(), s.OrganizationID, req.Name)
	if err != nil {
		l.Error("failed to create team", zap.String("team_name", req.Name), zap.Any("error", err))
		return h.transportError(e, err)
	}

	return e.JSON(http.StatusCreated, team)
}

func (h *Handler) SetMembership(e echo.Context) error {
	l := logger.FromContext(e.Request().Context())
	s := SessionFromContext(e)

	var req struct {
		TeamID          string   `param:"teamID" validate:"required"`
		PersonID        string   `param:"personID" validate:"required"`
		WeeklyHours     *float64 `json:"weekly_hours" validate:"omitempty,gte=0,lte=168"`
		WorkloadPercent *float64 `json:"workload_percent" validate:"omitempty,gte=0,lte=100"`
	}

	if err := decodeRequest(e, &req); err != nil {
		l.Error("invalid request", zap.Any("error", err))
		return h.transportError(e, err)
	}

	l.Info("setting membership",
		zap.String("team_id", req.TeamID),
		zap.String("person_id", req.PersonID))

	m, err := h.team.SetMembership(e.Request().Context(), s.OrganizationID, &model.TeamMembership{
		TeamID:          req.TeamID,
		PersonID:        req.PersonID,
		WeeklyHours:     req.WeeklyHours,
		WorkloadPercent: req.WorkloadPercent,
	})
	if err != nil {
		l.Error("failed to set membership",
			zap.String("team_id", req.TeamID),
			zap.String("person_id", req.PersonID),
			zap.Any("error", err))
		return h.transportError(e, err)
	}

	return e.JSON(http.StatusOK, m)
}

func (h *Handler) RemoveMembership(e echo.Context) error {
	l := logger.FromContext(e.Request().Context())
	s := SessionFromContext(e)

	teamID, personID := e.Param("teamID"), e.Param("personID")

	if err := h.team.RemoveMembership(e.Request().Context(), s.OrganizationID, teamID, personID); err != nil {
		l.Error("failed to remove membership",
			zap.String("team_id", teamID),
			zap.String("person_id", personID),
			zap.Any("error", err))
		return h.transportError(e, err)
	}

	return e.NoContent(http.StatusNoContent)
}
