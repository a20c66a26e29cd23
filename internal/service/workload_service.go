package service

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/yakoovad/workload-planner/internal/model"
	"github.com/yakoovad/workload-planner/internal/repository"
	"github.com/yakoovad/workload-planner/internal/workload"
	"github.com/yakoovad/workload-planner/pkg/logger"
	"go.uber.org/zap"
)

// WorkloadService loads people with their memberships and open tasks and
// runs the workload calculation over them. It keeps no state between calls.
type WorkloadService struct {
	persons     repository.PersonRepository
	memberships repository.MembershipRepository
	teams       repository.TeamRepository
	tasks       repository.TaskRepository

	clock    func() time.Time
	location *time.Location
}

func NewWorkloadService() *WorkloadService {
	return &WorkloadService{
		clock:    time.Now,
		location: time.UTC,
	}
}

// Today is the current calendar date in the planning timezone.
func (w *WorkloadService) Today() time.Time {
	return workload.Date(w.clock().In(w.location))
}

func (w *WorkloadService) GetOrganizationWorkload(ctx context.Context, orgID string, teamID *string, date *time.Time) (*model.WorkloadReport, *Error) {
	l := logger.FromContext(ctx)

	if teamID != nil {
		team, err := w.teams.Get(ctx, *teamID)
		if errors.Is(err, repository.ErrNotFound) || (err == nil && team.OrganizationID != orgID) {
			l.Warn("team not found", zap.String("team_id", *teamID))
			return nil, NewError(ErrorCodeNotFound, "team not found")
		}
		if err != nil {
			l.Error("failed to get team", zap.String("team_id", *teamID), zap.Error(err))
			return nil, NewError(ErrorCodeUnspecified, "failed to get team")
		}
	}

	repoPersons, err := w.persons.List(ctx, repository.PersonFilter{OrganizationID: orgID, TeamID: teamID})
	if err != nil {
		l.Error("failed to list persons", zap.String("organization_id", orgID), zap.Error(err))
		return nil, NewError(ErrorCodeUnspecified, "failed to list persons")
	}

	persons, serr := w.loadPlanning(ctx, repoPersons)
	if serr != nil {
		return nil, serr
	}

	today := w.Today()
	ref := w.referenceDate(today, date)

	people := make([]*model.PersonWorkload, 0, len(persons))
	for _, p := range persons {
		people = append(people, workload.Summarize(p, today, ref))
	}

	report := &model.WorkloadReport{
		OrganizationID: orgID,
		TeamID:         teamID,
		Date:           model.NewDate(ref),
		People:         people,
	}
	report.Today, report.ThisWeek, report.ThisMonth = workload.Combine(people, ref)

	l.Debug("workload computed",
		zap.String("organization_id", orgID),
		zap.Int("people", len(people)),
		zap.Time("date", ref))

	return report, nil
}

func (w *WorkloadService) GetPersonWorkload(ctx context.Context, orgID, personID string, date *time.Time) (*model.PersonWorkload, *Error) {
	l := logger.FromContext(ctx)

	repoPerson, err := w.persons.Get(ctx, personID)
	if errors.Is(err, repository.ErrNotFound) || (err == nil && repoPerson.OrganizationID != orgID) {
		l.Warn("person not found", zap.String("person_id", personID))
		return nil, NewError(ErrorCodeNotFound, "person not found")
	}
	if err != nil {
		l.Error("failed to get person", zap.String("person_id", personID), zap.Error(err))
		return nil, NewError(ErrorCodeUnspecified, "failed to get person")
	}

	persons, serr := w.loadPlanning(ctx, []*repository.Person{repoPerson})
	if serr != nil {
		return nil, serr
	}

	today := w.Today()
	return workload.Summarize(persons[0], today, w.referenceDate(today, date)), nil
}

// loadPlanning attaches memberships and open tasks to every person.
func (w *WorkloadService) loadPlanning(ctx context.Context, repoPersons []*repository.Person) ([]*model.Person, *Error) {
	l := logger.FromContext(ctx)

	ids := make([]string, 0, len(repoPersons))
	byID := make(map[string]*model.Person, len(repoPersons))
	persons := make([]*model.Person, 0, len(repoPersons))
	for _, rp := range repoPersons {
		p := toModelPerson(rp)
		ids = append(ids, p.ID)
		byID[p.ID] = p
		persons = append(persons, p)
	}

	memberships, err := w.memberships.ListByPersons(ctx, ids)
	if err != nil {
		l.Error("failed to list memberships", zap.Int("persons", len(ids)), zap.Error(err))
		return nil, NewError(ErrorCodeUnspecified, "failed to list memberships")
	}
	for _, m := range memberships {
		if p, ok := byID[m.PersonID]; ok {
			p.Memberships = append(p.Memberships, toModelMembership(m))
		}
	}

	tasks, err := w.tasks.ListOpenByAssignees(ctx, ids)
	if err != nil {
		l.Error("failed to list open tasks", zap.Int("persons", len(ids)), zap.Error(err))
		return nil, NewError(ErrorCodeUnspecified, "failed to list tasks")
	}
	for _, t := range tasks {
		if t.AssigneeID == nil {
			continue
		}
		if p, ok := byID[*t.AssigneeID]; ok {
			p.Tasks = append(p.Tasks, toModelTask(t))
		}
	}

	return persons, nil
}

func (w *WorkloadService) referenceDate(today time.Time, date *time.Time) time.Time {
	if date == nil {
		return today
	}
	return workload.Date(*date)
}

func (w *WorkloadService) WithPersonRepo(r repository.PersonRepository) *WorkloadService {
	w.persons = r
	return w
}

func (w *WorkloadService) WithMembershipRepo(r repository.MembershipRepository) *WorkloadService {
	w.memberships = r
	return w
}

func (w *WorkloadService) WithTeamRepo(r repository.TeamRepository) *WorkloadService {
	w.teams = r
	return w
}

func (w *WorkloadService) WithTaskRepo(r repository.TaskRepository) *WorkloadService {
	w.tasks = r
	return w
}

func (w *WorkloadService) WithClock(clock func() time.Time) *WorkloadService {
	w.clock = clock
	return w
}

func (w *WorkloadService) WithLocation(loc *time.Location) *WorkloadService {
	w.location = loc
	return w
}
