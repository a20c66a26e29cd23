package api

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/yakoovad/workload-planner/internal/auth"
	"github.com/yakoovad/workload-planner/internal/model"
	"github.com/yakoovad/workload-planner/internal/service"
	"go.uber.org/zap"
)

type WorkloadService interface {
	GetOrganizationWorkload(ctx context.Context, orgID string, teamID *string, date *time.Time) (*model.WorkloadReport, *service.Error)
	GetPersonWorkload(ctx context.Context, orgID, personID string, date *time.Time) (*model.PersonWorkload, *service.Error)
}

type TeamService interface {
	CreateTeam(ctx context.Context, orgID, name string) (*model.Team, *service.Error)
	GetTeam(ctx context.Context, orgID, teamID string) (*model.Team, *service.Error)
	ListTeams(ctx context.Context, orgID string) ([]*model.Team, *service.Error)
	SetMembership(ctx context.Context, orgID string, m *model.TeamMembership) (*model.TeamMembership, *service.Error)
	RemoveMembership(ctx context.Context, orgID, teamID, personID string) *service.Error
}

type PersonService interface {
	CreatePerson(ctx context.Context, orgID string, in *model.NewPerson) (*model.Person, *service.Error)
	GetPerson(ctx context.Context, orgID, personID string) (*model.Person, *service.Error)
	SetCapacity(ctx context.Context, orgID, personID string, c *model.Capacity) (*model.Person, *service.Error)
}

type TaskService interface {
	CreateTask(ctx context.Context, orgID string, in *model.NewTask) (*model.Task, *service.Error)
	CompleteTask(ctx context.Context, orgID, taskID string) (*model.Task, *service.Error)
	ReopenTask(ctx context.Context, orgID, taskID string) (*model.Task, *service.Error)
	ListAssigneeTasks(ctx context.Context, orgID, assigneeID string) ([]*model.Task, *service.Error)
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, *model.Person, *service.Error)
}

// SessionManager verifies session tokens and knows how long they live.
type SessionManager interface {
	SessionFromToken(token string) (*auth.Session, bool)
	TTL() time.Duration
}

type Handler struct {
	workload WorkloadService
	team     TeamService
	person   PersonService
	task     TaskService
	auth     AuthService

	sessions   SessionManager
	cookieName string

	requestTimeout time.Duration

	healthChecker HealthChecker

	logger *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{
		cookieName: "session",
		logger:     logger,
	}
}

func (h *Handler) WithHealthChecker(c HealthChecker) *Handler {
	h.healthChecker = c
	return h
}

func (h *Handler) WithWorkloadService(w WorkloadService) *Handler {
	h.workload = w
	return h
}

func (h *Handler) WithTeamService(team TeamService) *Handler {
	h.team = team
	return h
}

func (h *Handler) WithPersonService(person PersonService) *Handler {
	h.person = person
	return h
}

func (h *Handler) WithTaskService(task TaskService) *Handler {
	h.task = task
	return h
}

func (h *Handler) WithAuthService(a AuthService) *Handler {
	h.auth = a
	return h
}

func (h *Handler) WithSessions(sessions SessionManager, cookieName string) *Handler {
	h.sessions = sessions
	h.cookieName = cookieName
	return h
}

func (h *Handler) WithRequestTimeout(d time.Duration) *Handler {
	h.requestTimeout = d
	return h
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.Validator = NewValidator()
	e.Use(middleware.RequestID())
	e.Use(ZapLoggerMiddleware(h.logger))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	if h.requestTimeout > 0 {
		e.Use(middleware.ContextTimeout(h.requestTimeout))
	}

	if h.healthChecker != nil {
		e.GET("/health", h.healthChecker.HealthCheck())
	}

	e.POST("/auth/login", h.Login)
	e.POST("/auth/logout", h.Logout)

	memberSecurity := e.Group("/api", AuthMiddleware(h.sessions, h.cookieName, model.RoleMember, model.RoleAdmin))

	memberSecurity.GET("/workload", h.GetWorkload)
	memberSecurity.GET("/workload/:personID", h.GetPersonWorkload)
	memberSecurity.GET("/teams", h.ListTeams)
	memberSecurity.GET("/teams/:teamID", h.GetTeam)
	memberSecurity.GET("/persons/:personID", h.GetPerson)
	memberSecurity.POST("/subtasks", h.CreateTask)
	memberSecurity.GET("/subtasks", h.ListTasks)
	memberSecurity.POST("/subtasks/:taskID/complete", h.CompleteTask)
	memberSecurity.POST("/subtasks/:taskID/reopen", h.ReopenTask)

	adminSecurity := e.Group("/api", AuthMiddleware(h.sessions, h.cookieName, model.RoleAdmin))

	adminSecurity.POST("/teams", h.CreateTeam)
	adminSecurity.PUT("/teams/:teamID/members/:personID", h.SetMembership)
	adminSecurity.DELETE("/teams/:teamID/members/:personID", h.RemoveMembership)
	adminSecurity.POST("/persons", h.CreatePerson)
	adminSecurity.PATCH("/persons/:personID/capacity", h.SetCapacity)
}

func (h *Handler) transportError(e echo.Context, err *service.Error) error {
	return writeError(e, err)
}

func writeError(e echo.Context, err *service.Error) error {
	response := struct {
		Error *service.Error `json:"error"`
	}{Error: err}

	switch err.Code {
	case service.ErrorCodeNotFound:
		return e.JSON(http.StatusNotFound, response)
	case service.ErrorCodeTeamExists, service.ErrorCodePersonExists, service.ErrorCodeTaskCompleted:
		return e.JSON(http.StatusConflict, response)
	case service.ErrorCodeInvalidBody:
		return e.JSON(http.StatusBadRequest, response)
	case service.ErrorCodeInvalidCredentials, service.ErrorCodeUnauthorized:
		return e.JSON(http.StatusUnauthorized, response)
	case service.ErrorCodeForbidden:
		return e.JSON(http.StatusForbidden, response)
	default:
		return e.JSON(http.StatusInternalServerError, response)
	}
}
