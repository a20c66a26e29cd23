package api

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/yakoovad/workload-planner/internal/model"
	"github.com/yakoovad/workload-planner/internal/service"
)

func serviceError(args mock.Arguments, i int) *service.Error {
	if err, ok := args.Get(i).(*service.Error); ok {
		return err
	}
	return nil
}

type MockWorkloadService struct {
	mock.Mock
}

func (m *MockWorkloadService) GetOrganizationWorkload(ctx context.Context, orgID string, teamID *string, date *time.Time) (*model.WorkloadReport, *service.Error) {
	args := m.Called(ctx, orgID, teamID, date)
	report, _ := args.Get(0).(*model.WorkloadReport)
	return report, serviceError(args, 1)
}

func (m *MockWorkloadService) GetPersonWorkload(ctx context.Context, orgID, personID string, date *time.Time) (*model.PersonWorkload, *service.Error) {
	args := m.Called(ctx, orgID, personID, date)
	res, _ := args.Get(0).(*model.PersonWorkload)
	return res, serviceError(args, 1)
}

type MockTeamService struct {
	mock.Mock
}

func (m *MockTeamService) CreateTeam(ctx context.Context, orgID, name string) (*model.Team, *service.Error) {
	args := m.Called(ctx, orgID, name)
	team, _ := args.Get(0).(*model.Team)
	return team, serviceError(args, 1)
}

func (m *MockTeamService) GetTeam(ctx context.Context, orgID, teamID string) (*model.Team, *service.Error) {
	args := m.Called(ctx, orgID, teamID)
	team, _ := args.Get(0).(*model.Team)
	return team, serviceError(args, 1)
}

func (m *MockTeamService) ListTeams(ctx context.Context, orgID string) ([]*model.Team, *service.Error) {
	args := m.Called(ctx, orgID)
	teams, _ := args.Get(0).([]*model.Team)
	return teams, serviceError(args, 1)
}

func (m *MockTeamService) SetMembership(ctx context.Context, orgID string, tm *model.TeamMembership) (*model.TeamMembership, *service.Error) {
	args := m.Called(ctx, orgID, tm)
	res, _ := args.Get(0).(*model.TeamMembership)
	return res, serviceError(args, 1)
}

func (m *MockTeamService) RemoveMembership(ctx context.Context, orgID, teamID, personID string) *service.Error {
	args := m.Called(ctx, orgID, teamID, personID)
	return serviceError(args, 0)
}

type MockPersonService struct {
	mock.Mock
}

func (m *MockPersonService) CreatePerson(ctx context.Context, orgID string, in *model.NewPerson) (*model.Person, *service.Error) {
	args := m.Called(ctx, orgID, in)
	p, _ := args.Get(0).(*model.Person)
	return p, serviceError(args, 1)
}

func (m *MockPersonService) GetPerson(ctx context.Context, orgID, personID string) (*model.Person, *service.Error) {
	args := m.Called(ctx, orgID, personID)
	p, _ := args.Get(0).(*model.Person)
	return p, serviceError(args, 1)
}

func (m *MockPersonService) SetCapacity(ctx context.Context, orgID, personID string, c *model.Capacity) (*model.Person, *service.Error) {
	args := m.Called(ctx, orgID, personID, c)
	p, _ := args.Get(0).(*model.Person)
	return p, serviceError(args, 1)
}

type MockTaskService struct {
	mock.Mock
}

func (m *MockTaskService) CreateTask(ctx context.Context, orgID string, in *model.NewTask) (*model.Task, *service.Error) {
	args := m.Called(ctx, orgID, in)
	t, _ := args.Get(0).(*model.Task)
	return t, serviceError(args, 1)
}

func (m *MockTaskService) CompleteTask(ctx context.Context, orgID, taskID string) (*model.Task, *service.Error) {
	args := m.Called(ctx, orgID, taskID)
	t, _ := args.Get(0).(*model.Task)
	return t, serviceError(args, 1)
}

func (m *MockTaskService) ReopenTask(ctx context.Context, orgID, taskID string) (*model.Task, *service.Error) {
	args := m.Called(ctx, orgID, taskID)
	t, _ := args.Get(0).(*model.Task)
	return t, serviceError(args, 1)
}

func (m *MockTaskService) ListAssigneeTasks(ctx context.Context, orgID, assigneeID string) ([]*model.Task, *service.Error) {
	args := m.Called(ctx, orgID, assigneeID)
	t, _ := args.Get(0).([]*model.Task)
	return t, serviceError(args, 1)
}

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, *model.Person, *service.Error) {
	args := m.Called(ctx, email, password)
	p, _ := args.Get(1).(*model.Person)
	return args.String(0), p, serviceError(args, 2)
}
