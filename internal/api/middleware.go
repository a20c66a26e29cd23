package api

import (
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/yakoovad/workload-planner/internal/auth"
	"github.com/yakoovad/workload-planner/internal/model"
	"github.com/yakoovad/workload-planner/internal/service"
	"github.com/yakoovad/workload-planner/pkg/logger"
	"go.uber.org/zap"
)

const sessionKey = "session"

func ZapLoggerMiddleware(l *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			req := c.Request()
			res := c.Response()

			requestID := res.Header().Get(echo.HeaderXRequestID)

			reqLogger := l.With(
				zap.String("request_id", requestID),
			)

			ctx := logger.WithLogger(req.Context(), reqLogger)
			c.SetRequest(req.WithContext(ctx))

			err := next(c)

			latency := time.Since(start)

			fields := []zap.Field{
				zap.String("method", req.Method),
				zap.String("uri", req.RequestURI),
				zap.String("remote_ip", c.RealIP()),
				zap.Int("status", res.Status),
				zap.Duration("latency", latency),
				zap.Int64("bytes_in", req.ContentLength),
				zap.Int64("bytes_out", res.Size),
			}

			if err != nil {
				fields = append(fields, zap.Error(err))
				reqLogger.Error("request failed", fields...)
			} else {
				reqLogger.Info("request completed", fields...)
			}

			return err
		}
	}
}

// AuthMiddleware accepts a session token from the cookie or an
// "Authorization: Bearer" header and requires one of roles.
func AuthMiddleware(sessions SessionManager, cookieName string, roles ...model.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := tokenFromRequest(c, cookieName)
			if token == "" {
				return writeError(c, service.NewError(service.ErrorCodeUnauthorized, "authentication required"))
			}

			s, ok := sessions.SessionFromToken(token)
			if !ok {
				return writeError(c, service.NewError(service.ErrorCodeUnauthorized, "invalid or expired session"))
			}

			if !s.HasRole(roles...) {
				logger.FromContext(c.Request().Context()).Warn("forbidden",
					zap.String("person_id", s.PersonID),
					zap.String("role", string(s.Role)))
				return writeError(c, service.NewError(service.ErrorCodeForbidden, "insufficient role"))
			}

			c.Set(sessionKey, s)

			req := c.Request()
			l := logger.FromContext(req.Context()).With(
				zap.String("person_id", s.PersonID),
				zap.String("organization_id", s.OrganizationID),
			)
			c.SetRequest(req.WithContext(logger.WithLogger(req.Context(), l)))

			return next(c)
		}
	}
}

func tokenFromRequest(c echo.Context, cookieName string) string {
	if header := c.Request().Header.Get(echo.HeaderAuthorization); header != "" {
		if token, ok := strings.CutPrefix(header, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
	}

	if cookie, err := c.Cookie(cookieName); err == nil {
		return cookie.Value
	}
	return ""
}

// SessionFromContext returns the session stored by AuthMiddleware.
func SessionFromContext(c echo.Context) *auth.Session {
	if s, ok := c.Get(sessionKey).(*auth.Session); ok {
		return s
	}
	return &auth.Session{}
}
