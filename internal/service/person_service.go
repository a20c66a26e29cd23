package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/yakoovad/workload-planner/internal/auth"
	"github.com/yakoovad/workload-planner/internal/db"
	"github.com/yakoovad/workload-planner/internal/model"
	"github.com/yakoovad/workload-planner/internal/repository"
	"github.com/yakoovad/workload-planner/pkg/logger"
	"go.uber.org/zap"
)

type PersonService struct {
	tx db.Transactor

	persons       repository.PersonRepository
	organizations repository.OrganizationRepository

	newID        func() string
	hashPassword func(string) (string, error)
}

func NewPersonService(tx db.Transactor) *PersonService {
	return &PersonService{
		tx:           tx,
		newID:        uuid.NewString,
		hashPassword: auth.HashPassword,
	}
}

func (p *PersonService) CreatePerson(ctx context.Context, orgID string, in *model.NewPerson) (*model.Person, *Error) {
	l := logger.FromContext(ctx)
	l.Info("creating person", zap.String("organization_id", orgID), zap.String("email", in.Email))

	person, err := p.createPerson(ctx, orgID, in)
	if err != nil {
		return nil, err
	}
	return toModelPerson(person), nil
}

func (p *PersonService) createPerson(ctx context.Context, orgID string, in *model.NewPerson) (*repository.Person, *Error) {
	l := logger.FromContext(ctx)

	if in.WeeklyHours < 0 || in.WorkloadPercent < 0 || in.WorkloadPercent > 100 {
		return nil, NewError(ErrorCodeInvalidBody, "weekly_hours must be >= 0 and workload_percent within [0, 100]")
	}

	hash, err := p.hashPassword(in.Password)
	if err != nil {
		l.Error("failed to hash password", zap.Error(err))
		return nil, NewError(ErrorCodeUnspecified, "failed to create person")
	}

	role := in.Role
	if role == "" {
		role = model.RoleMember
	}

	person := &repository.Person{
		ID:              p.newID(),
		OrganizationID:  orgID,
		Name:            in.Name,
		Email:           in.Email,
		PasswordHash:    hash,
		Role:            role,
		WeeklyHours:     in.WeeklyHours,
		WorkloadPercent: in.WorkloadPercent,
	}

	err = p.persons.Create(ctx, person)
	if errors.Is(err, repository.ErrAlreadyExists) {
		l.Warn("person already exists", zap.String("email", in.Email))
		return nil, NewError(ErrorCodePersonExists, "email already registered")
	}
	if errors.Is(err, repository.ErrNotFound) {
		return nil, NewError(ErrorCodeNotFound, "organization not found")
	}
	if err != nil {
		l.Error("failed to create person", zap.String("email", in.Email), zap.Error(err))
		return nil, NewError(ErrorCodeUnspecified, "failed to create person")
	}

	return person, nil
}

func (p *PersonService) GetPerson(ctx context.Context, orgID, personID string) (*model.Person, *Error) {
	l := logger.FromContext(ctx)

	person, err := p.persons.Get(ctx, personID)
	if errors.Is(err, repository.ErrNotFound) || (err == nil && person.OrganizationID != orgID) {
		l.Warn("person not found", zap.String("person_id", personID))
		return nil, NewError(ErrorCodeNotFound, "person not found")
	}
	if err != nil {
		l.Error("failed to get person", zap.String("person_id", personID), zap.Error(err))
		return nil, NewError(ErrorCodeUnspecified, "failed to get person")
	}
	return toModelPerson(person), nil
}

func (p *PersonService) SetCapacity(ctx context.Context, orgID, personID string, c *model.Capacity) (*model.Person, *Error) {
	l := logger.FromContext(ctx)

	if c.WeeklyHours != nil && *c.WeeklyHours < 0 {
		return nil, NewError(ErrorCodeInvalidBody, "weekly_hours must be >= 0")
	}
	if c.WorkloadPercent != nil && (*c.WorkloadPercent < 0 || *c.WorkloadPercent > 100) {
		return nil, NewError(ErrorCodeInvalidBody, "workload_percent must be within [0, 100]")
	}

	var res *model.Person
	err := p.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		person, err := p.persons.Get(txCtx, personID)
		if errors.Is(err, repository.ErrNotFound) || (err == nil && person.OrganizationID != orgID) {
			return NewError(ErrorCodeNotFound, "person not found")
		}
		if err != nil {
			l.Error("failed to get person", zap.String("person_id", personID), zap.Error(err))
			return NewError(ErrorCodeUnspecified, "failed to get person")
		}

		updated, err := p.persons.Patch(txCtx, &repository.PersonPatch{
			ID:              personID,
			WeeklyHours:     c.WeeklyHours,
			WorkloadPercent: c.WorkloadPercent,
		})
		if err != nil {
			l.Error("failed to update capacity", zap.String("person_id", personID), zap.Error(err))
			return NewError(ErrorCodeUnspecified, "failed to update person")
		}

		res = toModelPerson(updated)
		return nil
	})
	if serr := asError(err, "failed to update person"); serr != nil {
		return nil, serr
	}

	return res, nil
}

// Bootstrap creates an organization with a first admin unless a person with
// the admin email already exists.
func (p *PersonService) Bootstrap(ctx context.Context, orgName string, admin *model.NewPerson) *Error {
	l := logger.FromContext(ctx)

	err := p.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		_, err := p.persons.GetByEmail(txCtx, admin.Email)
		if err == nil {
			l.Debug("bootstrap admin already present", zap.String("email", admin.Email))
			return nil
		}
		if !errors.Is(err, repository.ErrNotFound) {
			l.Error("failed to look up admin", zap.String("email", admin.Email), zap.Error(err))
			return NewError(ErrorCodeUnspecified, "failed to look up admin")
		}

		org := &repository.Organization{ID: p.newID(), Name: orgName}
		if err = p.organizations.Create(txCtx, org); err != nil {
			l.Error("failed to create organization", zap.String("organization", orgName), zap.Error(err))
			return NewError(ErrorCodeUnspecified, "failed to create organization")
		}

		in := *admin
		in.Role = model.RoleAdmin
		if _, serr := p.createPerson(txCtx, org.ID, &in); serr != nil {
			return serr
		}

		l.Info("organization bootstrapped", zap.String("organization_id", org.ID), zap.String("email", admin.Email))
		return nil
	})

	return asError(err, "failed to bootstrap organization")
}

func (p *PersonService) WithPersonRepo(r repository.PersonRepository) *PersonService {
	p.persons = r
	return p
}

func (p *PersonService) WithOrganizationRepo(r repository.OrganizationRepository) *PersonService {
	p.organizations = r
	return p
}

func (p *PersonService) WithIDGenerator(newID func() string) *PersonService {
	p.newID = newID
	return p
}

func (p *PersonService) WithPasswordHasher(hash func(string) (string, error)) *PersonService {
	p.hashPassword = hash
	return p
}
