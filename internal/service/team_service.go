package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/yakoovad/workload-planner/internal/db"
	"github.com/yakoovad/workload-planner/internal/model"
	"github.com/yakoovad/workload-planner/internal/repository"
	"github.com/yakoovad/workload-planner/pkg/logger"
	"go.uber.org/zap"
)

type TeamService struct {
	tx db.Transactor

	teams       repository.TeamRepository
	persons     repository.PersonRepository
	memberships repository.MembershipRepository

	newID func() string
}

func NewTeamService(tx db.Transactor) *TeamService {
	return &TeamService{
		tx:    tx,
		newID: uuid.NewString,
	}
}

func (t *TeamService) CreateTeam(ctx context.Context, orgID, name string) (*model.Team, *Error) {
	l := logger.FromContext(ctx)
	l.Info("creating team", zap.String("organization_id", orgID), zap.String("team_name", name))

	team := &repository.Team{
		ID:             t.newID(),
		OrganizationID: orgID,
		Name:           name,
	}

	err := t.teams.Create(ctx, team)
	if errors.Is(err, repository.ErrAlreadyExists) {
		l.Warn("team already exists", zap.String("team_name", name))
		return nil, NewError(ErrorCodeTeamExists, "team_name already exists")
	}
	if err != nil {
		l.Error("failed to create team", zap.String("team_name", name), zap.Error(err))
		return nil, NewError(ErrorCodeUnspecified, "failed to create team")
	}

	return &model.Team{
		ID:             team.ID,
		OrganizationID: team.OrganizationID,
		Name:           team.Name,
		Members:        []*model.TeamMember{},
	}, nil
}

func (t *TeamService) GetTeam(ctx context.Context, orgID, teamID string) (*model.Team, *Error) {
	l := logger.FromContext(ctx)
	l.Debug("getting team", zap.String("team_id", teamID))

	team, serr := t.getTeam(ctx, orgID, teamID)
	if serr != nil {
		return nil, serr
	}

	repoMembers, err := t.memberships.ListByTeam(ctx, teamID)
	if err != nil {
		l.Error("failed to get team members", zap.String("team_id", teamID), zap.Error(err))
		return nil, NewError(ErrorCodeUnspecified, "failed to get team members")
	}

	members := make([]*model.TeamMember, 0, len(repoMembers))
	for _, m := range repoMembers {
		members = append(members, &model.TeamMember{
			PersonID:        m.PersonID,
			Name:            m.PersonName,
			WeeklyHours:     m.WeeklyHours,
			WorkloadPercent: m.WorkloadPercent,
		})
	}

	return &model.Team{
		ID:             team.ID,
		OrganizationID: team.OrganizationID,
		Name:           team.Name,
		Members:        members,
	}, nil
}

func (t *TeamService) ListTeams(ctx context.Context, orgID string) ([]*model.Team, *Error) {
	l := logger.FromContext(ctx)

	repoTeams, err := t.teams.List(ctx, orgID)
	if err != nil {
		l.Error("failed to list teams", zap.String("organization_id", orgID), zap.Error(err))
		return nil, NewError(ErrorCodeUnspecified, "failed to list teams")
	}

	teams := make([]*model.Team, 0, len(repoTeams))
	for _, team := range repoTeams {
		teams = append(teams, &model.Team{
			ID:             team.ID,
			OrganizationID: team.OrganizationID,
			Name:           team.Name,
		})
	}
	return teams, nil
}

// SetMembership adds a person to a team or replaces the capacity override
// of an existing membership.
func (t *TeamService) SetMembership(ctx context.Context, orgID string, m *model.TeamMembership) (*model.TeamMembership, *Error) {
	l := logger.FromContext(ctx)

	err := t.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		team, serr := t.getTeam(txCtx, orgID, m.TeamID)
		if serr != nil {
			return serr
		}

		person, err := t.persons.Get(txCtx, m.PersonID)
		if errors.Is(err, repository.ErrNotFound) || (err == nil && person.OrganizationID != orgID) {
			l.Warn("person not found", zap.String("person_id", m.PersonID))
			return NewError(ErrorCodeNotFound, "person not found")
		}
		if err != nil {
			l.Error("failed to get person", zap.String("person_id", m.PersonID), zap.Error(err))
			return NewError(ErrorCodeUnspecified, "failed to get person")
		}

		if err = t.memberships.Upsert(txCtx, &repository.Membership{
			TeamID:          team.ID,
			PersonID:        person.ID,
			WeeklyHours:     m.WeeklyHours,
			WorkloadPercent: m.WorkloadPercent,
		}); err != nil {
			l.Error("failed to upsert membership",
				zap.String("team_id", m.TeamID),
				zap.String("person_id", m.PersonID),
				zap.Error(err))
			return NewError(ErrorCodeUnspecified, "failed to save membership")
		}

		m.TeamName = team.Name
		return nil
	})
	if serr := asError(err, "failed to save membership"); serr != nil {
		return nil, serr
	}

	l.Debug("membership saved", zap.String("team_id", m.TeamID), zap.String("person_id", m.PersonID))
	return m, nil
}

func (t *TeamService) RemoveMembership(ctx context.Context, orgID, teamID, personID string) *Error {
	l := logger.FromContext(ctx)

	if _, serr := t.getTeam(ctx, orgID, teamID); serr != nil {
		return serr
	}

	err := t.memberships.Delete(ctx, teamID, personID)
	if errors.Is(err, repository.ErrNotFound) {
		return NewError(ErrorCodeNotFound, "membership not found")
	}
	if err != nil {
		l.Error("failed to delete membership",
			zap.String("team_id", teamID),
			zap.String("person_id", personID),
			zap.Error(err))
		return NewError(ErrorCodeUnspecified, "failed to delete membership")
	}
	return nil
}

// getTeam hides teams of other organizations behind NOT_FOUND.
func (t *TeamService) getTeam(ctx context.Context, orgID, teamID string) (*repository.Team, *Error) {
	l := logger.FromContext(ctx)

	team, err := t.teams.Get(ctx, teamID)
	if errors.Is(err, repository.ErrNotFound) || (err == nil && team.OrganizationID != orgID) {
		l.Warn("team not found", zap.String("team_id", teamID))
		return nil, NewError(ErrorCodeNotFound, "team not found")
	}
	if err != nil {
		l.Error("failed to get team", zap.String("team_id", teamID), zap.Error(err))
		return nil, NewError(ErrorCodeUnspecified, "failed to get team")
	}
	return team, nil
}

func (t *TeamService) WithTeamRepo(r repository.TeamRepository) *TeamService {
	t.teams = r
	return t
}

func (t *TeamService) WithPersonRepo(r repository.PersonRepository) *TeamService {
	t.persons = r
	return t
}

func (t *TeamService) WithMembershipRepo(r repository.MembershipRepository) *TeamService {
	t.memberships = r
	return t
}

func (t *TeamService) WithIDGenerator(newID func() string) *TeamService {
	t.newID = newID
	return t
}
