package therapists

import (
	"calmora-service/internal/app/models"
	"calmora-service/internal/pkg/constvars"
	"calmora-service/internal/pkg/dto/requests"
	"calmora-service/internal/pkg/exceptions"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockTherapistRepository struct {
	mock.Mock
}

func (m *MockTherapistRepository) Insert(ctx context.Context, therapist *models.Therapist) (*models.Therapist, error) {
	args := m.Called(ctx, therapist)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Therapist), args.Error(1)
}

func (m *MockTherapistRepository) FindByID(ctx context.Context, therapistID int64) (*models.Therapist, error) {
	args := m.Called(ctx, therapistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Therapist), args.Error(1)
}

func (m *MockTherapistRepository) FindAll(ctx context.Context) ([]models.Therapist, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Therapist), args.Error(1)
}

func newTestTherapistUsecase(repository *MockTherapistRepository) *therapistUsecase {
	return &therapistUsecase{
		TherapistRepository: repository,
		Log:                 zap.NewNop(),
	}
}

func TestTherapistUsecase_CreateTherapist_Succeeds(t *testing.T) {
	repository := new(MockTherapistRepository)
	usecase := newTestTherapistUsecase(repository)

	repository.On("Insert", mock.Anything, mock.AnythingOfType("*models.Therapist")).Return(&models.Therapist{
		ID:        1,
		Name:      "Dr. Amara Osei",
		Email:     "amara@example.com",
		Phone:     "+15550100",
		CreatedAt: time.Now(),
	}, nil)

	response, err := usecase.CreateTherapist(context.Background(), &requests.CreateTherapist{
		Name:  "Dr. Amara Osei",
		Email: "amara@example.com",
		Phone: "+15550100",
	})

	require.NoError(t, err)
	require.NotNil(t, response)
	assert.Equal(t, int64(1), response.ID)
	assert.Equal(t, "amara@example.com", response.Email)
	assert.False(t, response.CreatedAt.IsZero())
}

func TestTherapistUsecase_CreateTherapist_RejectsInvalidEmail(t *testing.T) {
	repository := new(MockTherapistRepository)
	usecase := newTestTherapistUsecase(repository)

	response, err := usecase.CreateTherapist(context.Background(), &requests.CreateTherapist{
		Name:  "Dr. Amara Osei",
		Email: "not-an-email",
		Phone: "+15550100",
	})

	require.Error(t, err)
	assert.Nil(t, response)

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)

	repository.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestTherapistUsecase_CreateTherapist_RejectsMissingFields(t *testing.T) {
	repository := new(MockTherapistRepository)
	usecase := newTestTherapistUsecase(repository)

	_, err := usecase.CreateTherapist(context.Background(), &requests.CreateTherapist{})

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	repository.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestTherapistUsecase_CreateTherapist_PropagatesDuplicateEmail(t *testing.T) {
	repository := new(MockTherapistRepository)
	usecase := newTestTherapistUsecase(repository)

	repository.On("Insert", mock.Anything, mock.AnythingOfType("*models.Therapist")).Return(nil, exceptions.ErrEmailAlreadyExist(nil))

	response, err := usecase.CreateTherapist(context.Background(), &requests.CreateTherapist{
		Name:  "Dr. Amara Osei",
		Email: "amara@example.com",
		Phone: "+15550100",
	})

	require.Error(t, err)
	assert.Nil(t, response)

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	assert.Equal(t, constvars.ErrClientEmailAlreadyExists, customErr.ClientMessage)
}

func TestTherapistUsecase_FindAll_ReturnsEmptyList(t *testing.T) {
	repository := new(MockTherapistRepository)
	usecase := newTestTherapistUsecase(repository)

	repository.On("FindAll", mock.Anything).Return([]models.Therapist{}, nil)

	response, err := usecase.FindAll(context.Background())

	require.NoError(t, err)
	require.NotNil(t, response)
	assert.Empty(t, response)
}

func TestTherapistUsecase_FindTherapistByID_NotFound(t *testing.T) {
	repository := new(MockTherapistRepository)
	usecase := newTestTherapistUsecase(repository)

	repository.On("FindByID", mock.Anything, int64(404)).Return(nil, nil)

	response, err := usecase.FindTherapistByID(context.Background(), 404)

	require.Error(t, err)
	assert.Nil(t, response)

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
}
