package service

import (
	"context"

	"github.com/pkg/errors"
	"github.com/yakoovad/workload-planner/internal/auth"
	"github.com/yakoovad/workload-planner/internal/model"
	"github.com/yakoovad/workload-planner/internal/repository"
	"github.com/yakoovad/workload-planner/pkg/logger"
	"go.uber.org/zap"
)

type TokenIssuer interface {
	GenerateToken(s auth.Session) (string, error)
}

type AuthService struct {
	persons repository.PersonRepository
	tokens  TokenIssuer

	checkPassword func(hash, password string) error
}

func NewAuthService(tokens TokenIssuer) *AuthService {
	return &AuthService{
		tokens:        tokens,
		checkPassword: auth.CheckPassword,
	}
}

// Login verifies the credentials and issues a session token.
func (a *AuthService) Login(ctx context.Context, email, password string) (string, *model.Person, *Error) {
	l := logger.FromContext(ctx)

	person, err := a.persons.GetByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		l.Warn("login for unknown email", zap.String("email", email))
		return "", nil, NewError(ErrorCodeInvalidCredentials, "invalid email or password")
	}
	if err != nil {
		l.Error("failed to get person", zap.String("email", email), zap.Error(err))
		return "", nil, NewError(ErrorCodeUnspecified, "failed to log in")
	}

	if err = a.checkPassword(person.PasswordHash, password); err != nil {
		l.Warn("login with wrong password", zap.String("person_id", person.ID))
		return "", nil, NewError(ErrorCodeInvalidCredentials, "invalid email or password")
	}

	token, err := a.tokens.GenerateToken(auth.Session{
		PersonID:       person.ID,
		OrganizationID: person.OrganizationID,
		Role:           person.Role,
	})
	if err != nil {
		l.Error("failed to sign token", zap.String("person_id", person.ID), zap.Error(err))
		return "", nil, NewError(ErrorCodeUnspecified, "failed to log in")
	}

	return token, toModelPerson(person), nil
}

func (a *AuthService) WithPersonRepo(r repository.PersonRepository) *AuthService {
	a.persons = r
	return a
}

func (a *AuthService) WithPasswordChecker(check func(hash, password string) error) *AuthService {
	a.checkPassword = check
	return a
}
