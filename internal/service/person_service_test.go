package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/yakoovad/workload-planner/internal/model"
	"github.com/yakoovad/workload-planner/internal/repository"
)

func fakeHash(password string) (string, error) {
	return "hash:" + password, nil
}

func newPersonService(persons *MockPersonRepository, orgs *MockOrganizationRepository) *PersonService {
	return NewPersonService(new(MockTransactor)).
		WithPersonRepo(persons).
		WithOrganizationRepo(orgs).
		WithIDGenerator(fixedID("p1")).
		WithPasswordHasher(fakeHash)
}

func TestPersonService_CreatePerson(t *testing.T) {
	tests := []struct {
		name          string
		in            *model.NewPerson
		setupMocks    func(*MockPersonRepository)
		expectedError bool
		errorCode     ErrorCode
	}{
		{
			name: "success",
			in:   &model.NewPerson{Name: "Anna", Email: "anna@example.com", Password: "secret-42", WeeklyHours: 40, WorkloadPercent: 80},
			setupMocks: func(pr *MockPersonRepository) {
				pr.On("Create", mock.Anything, &repository.Person{
					ID:              "p1",
					OrganizationID:  "org1",
					Name:            "Anna",
					Email:           "anna@example.com",
					PasswordHash:    "hash:secret-42",
					Role:            model.RoleMember,
					WeeklyHours:     40,
					WorkloadPercent: 80,
				}).Return(nil)
			},
		},
		{
			name:          "workload above 100",
			in:            &model.NewPerson{Name: "Anna", Email: "anna@example.com", Password: "secret-42", WeeklyHours: 40, WorkloadPercent: 120},
			setupMocks:    func(pr *MockPersonRepository) {},
			expectedError: true,
			errorCode:     ErrorCodeInvalidBody,
		},
		{
			name:          "negative weekly hours",
			in:            &model.NewPerson{Name: "Anna", Email: "anna@example.com", Password: "secret-42", WeeklyHours: -1},
			setupMocks:    func(pr *MockPersonRepository) {},
			expectedError: true,
			errorCode:     ErrorCodeInvalidBody,
		},
		{
			name: "email already registered",
			in:   &model.NewPerson{Name: "Anna", Email: "anna@example.com", Password: "secret-42", WeeklyHours: 40, WorkloadPercent: 100},
			setupMocks: func(pr *MockPersonRepository) {
				pr.On("Create", mock.Anything, mock.Anything).Return(repository.ErrAlreadyExists)
			},
			expectedError: true,
			errorCode:     ErrorCodePersonExists,
		},
		{
			name: "create failure",
			in:   &model.NewPerson{Name: "Anna", Email: "anna@example.com", Password: "secret-42", WeeklyHours: 40, WorkloadPercent: 100},
			setupMocks: func(pr *MockPersonRepository) {
				pr.On("Create", mock.Anything, mock.Anything).Return(errors.New("db error"))
			},
			expectedError: true,
			errorCode:     ErrorCodeUnspecified,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pr := new(MockPersonRepository)
			tt.setupMocks(pr)

			person, err := newPersonService(pr, new(MockOrganizationRepository)).
				CreatePerson(context.Background(), "org1", tt.in)

			if tt.expectedError {
				assert.NotNil(t, err)
				assert.Equal(t, tt.errorCode, err.Code)
				assert.Nil(t, person)
			} else {
				assert.Nil(t, err)
				assert.Equal(t, "p1", person.ID)
				assert.Equal(t, model.RoleMember, person.Role)
			}

			pr.AssertExpectations(t)
		})
	}
}

func TestPersonService_GetPerson(t *testing.T) {
	tests := []struct {
		name          string
		setupMocks    func(*MockPersonRepository)
		expectedError bool
		errorCode     ErrorCode
	}{
		{
			name: "success",
			setupMocks: func(pr *MockPersonRepository) {
				pr.On("Get", mock.Anything, "p1").Return(anna, nil)
			},
		},
		{
			name: "person of another organization",
			setupMocks: func(pr *MockPersonRepository) {
				pr.On("Get", mock.Anything, "p1").Return(&repository.Person{ID: "p1", OrganizationID: "org2"}, nil)
			},
			expectedError: true,
			errorCode:     ErrorCodeNotFound,
		},
		{
			name: "get failure",
			setupMocks: func(pr *MockPersonRepository) {
				pr.On("Get", mock.Anything, "p1").Return(nil, errors.New("db error"))
			},
			expectedError: true,
			errorCode:     ErrorCodeUnspecified,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pr := new(MockPersonRepository)
			tt.setupMocks(pr)

			person, err := newPersonService(pr, nil).GetPerson(context.Background(), "org1", "p1")

			if tt.expectedError {
				assert.NotNil(t, err)
				assert.Equal(t, tt.errorCode, err.Code)
			} else {
				assert.Nil(t, err)
				assert.Equal(t, "Anna", person.Name)
			}

			pr.AssertExpectations(t)
		})
	}
}

func TestPersonService_SetCapacity(t *testing.T) {
	tests := []struct {
		name          string
		capacity      *model.Capacity
		setupMocks    func(*MockPersonRepository)
		expectedError bool
		errorCode     ErrorCode
	}{
		{
			name:     "success",
			capacity: &model.Capacity{WorkloadPercent: ptr(80.0)},
			setupMocks: func(pr *MockPersonRepository) {
				pr.On("Get", mock.Anything, "p1").Return(anna, nil)
				pr.On("Patch", mock.Anything, &repository.PersonPatch{ID: "p1", WorkloadPercent: ptr(80.0)}).
					Return(&repository.Person{ID: "p1", OrganizationID: "org1", WeeklyHours: 40, WorkloadPercent: 80}, nil)
			},
		},
		{
			name:          "workload out of range",
			capacity:      &model.Capacity{WorkloadPercent: ptr(101.0)},
			setupMocks:    func(pr *MockPersonRepository) {},
			expectedError: true,
			errorCode:     ErrorCodeInvalidBody,
		},
		{
			name:     "person not found",
			capacity: &model.Capacity{WeeklyHours: ptr(32.0)},
			setupMocks: func(pr *MockPersonRepository) {
				pr.On("Get", mock.Anything, "p1").Return(nil, repository.ErrNotFound)
			},
			expectedError: true,
			errorCode:     ErrorCodeNotFound,
		},
		{
			name:     "patch failure",
			capacity: &model.Capacity{WeeklyHours: ptr(32.0)},
			setupMocks: func(pr *MockPersonRepository) {
				pr.On("Get", mock.Anything, "p1").Return(anna, nil)
				pr.On("Patch", mock.Anything, mock.Anything).Return(nil, errors.New("db error"))
			},
			expectedError: true,
			errorCode:     ErrorCodeUnspecified,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pr := new(MockPersonRepository)
			tt.setupMocks(pr)

			person, err := newPersonService(pr, nil).SetCapacity(context.Background(), "org1", "p1", tt.capacity)

			if tt.expectedError {
				assert.NotNil(t, err)
				assert.Equal(t, tt.errorCode, err.Code)
				assert.Nil(t, person)
			} else {
				assert.Nil(t, err)
				assert.Equal(t, 80.0, person.WorkloadPercent)
			}

			pr.AssertExpectations(t)
		})
	}
}

func TestPersonService_Bootstrap(t *testing.T) {
	admin := &model.NewPerson{Name: "Root", Email: "root@example.com", Password: "change-me"}

	t.Run("creates organization and admin", func(t *testing.T) {
		pr := new(MockPersonRepository)
		or := new(MockOrganizationRepository)

		pr.On("GetByEmail", mock.Anything, "root@example.com").Return(nil, repository.ErrNotFound)
		or.On("Create", mock.Anything, &repository.Organization{ID: "p1", Name: "Acme"}).Return(nil)
		pr.On("Create", mock.Anything, mock.MatchedBy(func(p *repository.Person) bool {
			return p.Role == model.RoleAdmin && p.OrganizationID == "p1" && p.PasswordHash == "hash:change-me"
		})).Return(nil)

		err := newPersonService(pr, or).Bootstrap(context.Background(), "Acme", admin)

		require.Nil(t, err)
		assert.Empty(t, admin.Role)
		pr.AssertExpectations(t)
		or.AssertExpectations(t)
	})

	t.Run("admin already present", func(t *testing.T) {
		pr := new(MockPersonRepository)
		or := new(MockOrganizationRepository)

		pr.On("GetByEmail", mock.Anything, "root@example.com").Return(&repository.Person{ID: "p0"}, nil)

		err := newPersonService(pr, or).Bootstrap(context.Background(), "Acme", admin)

		assert.Nil(t, err)
		pr.AssertExpectations(t)
		or.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("organization failure", func(t *testing.T) {
		pr := new(MockPersonRepository)
		or := new(MockOrganizationRepository)

		pr.On("GetByEmail", mock.Anything, "root@example.com").Return(nil, repository.ErrNotFound)
		or.On("Create", mock.Anything, mock.Anything).Return(errors.New("db error"))

		err := newPersonService(pr, or).Bootstrap(context.Background(), "Acme", admin)

		require.NotNil(t, err)
		assert.Equal(t, ErrorCodeUnspecified, err.Code)
	})
}
