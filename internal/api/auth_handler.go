package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/yakoovad/workload-planner/internal/model"
	"github.com/yakoovad/workload-planner/pkg/logger"
	"go.uber.org/zap"
)

func (h *Handler) Login(e echo.Context) error {
	l := logger.FromContext(e.Request().Context())

	var req struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	if err := decodeRequest(e, &req); err != nil {
		l.Error("invalid request", zap.Any("error", err))
		return h.transportError(e, err)
	}

	token, person, err := h.auth.Login(e.Request().Context(), req.Email, req.Password)
	if err != nil {
		l.Warn("login failed", zap.String("email", req.Email), zap.Any("error", err))
		return h.transportError(e, err)
	}

	e.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(h.sessions.TTL()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return e.JSON(http.StatusOK, struct {
		Token  string        `json:"token"`
		Person *model.Person `json:"person"`
	}{Token: token, Person: person})
}

func (h *Handler) Logout(e echo.Context) error {
	e.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return e.NoContent(http.StatusNoContent)
}
