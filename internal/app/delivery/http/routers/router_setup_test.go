package routers

import (
	"calmora-service/internal/app/config"
	"calmora-service/internal/app/delivery/http/controllers"
	"calmora-service/internal/app/delivery/http/middlewares"
	"calmora-service/internal/pkg/dto/requests"
	"calmora-service/internal/pkg/dto/responses"
	"context"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockTherapistUsecase struct {
	mock.Mock
}

func (m *MockTherapistUsecase) CreateTherapist(ctx context.Context, request *requests.CreateTherapist) (*responses.Therapist, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Therapist), args.Error(1)
}

func (m *MockTherapistUsecase) FindAll(ctx context.Context) ([]responses.Therapist, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]responses.Therapist), args.Error(1)
}

func (m *MockTherapistUsecase) FindTherapistByID(ctx context.Context, therapistID int64) (*responses.Therapist, error) {
	args := m.Called(ctx, therapistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Therapist), args.Error(1)
}

type MockBookingUsecase struct {
	mock.Mock
}

func (m *MockBookingUsecase) CreateBooking(ctx context.Context, request *requests.CreateBooking) (*responses.Booking, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Booking), args.Error(1)
}

func (m *MockBookingUsecase) FindBookingByID(ctx context.Context, bookingID int64) (*responses.Booking, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Booking), args.Error(1)
}

func (m *MockBookingUsecase) FindBookingsByTherapistID(ctx context.Context, therapistID int64) ([]responses.Booking, error) {
	args := m.Called(ctx, therapistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]responses.Booking), args.Error(1)
}

// The controllers are process-wide singletons, so the test router is
// built once and shared by every test in this package.
var (
	onceTestRouter       sync.Once
	testRouter           http.Handler
	mockTherapistUsecase *MockTherapistUsecase
	mockBookingUsecase   *MockBookingUsecase
)

func setupTestRouter() http.Handler {
	onceTestRouter.Do(func() {
		logger := zap.NewNop()
		internalConfig := &config.InternalConfig{
			App: config.App{
				Env:         "test",
				MaxRequests: 1000,
			},
		}

		mockTherapistUsecase = new(MockTherapistUsecase)
		mockBookingUsecase = new(MockBookingUsecase)

		therapistController := controllers.NewTherapistController(logger, mockTherapistUsecase)
		bookingController := controllers.NewBookingController(logger, mockBookingUsecase)
		healthController := controllers.NewHealthController()

		router := chi.NewRouter()
		SetupRoutes(
			router,
			internalConfig,
			middlewares.NewMiddlewares(logger, internalConfig),
			therapistController,
			bookingController,
			healthController,
		)
		testRouter = router
	})
	return testRouter
}
