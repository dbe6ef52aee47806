package routers

import (
	"bytes"
	"calmora-service/internal/pkg/dto/requests"
	"calmora-service/internal/pkg/dto/responses"
	"calmora-service/internal/pkg/exceptions"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTherapistRoutes(t *testing.T) {
	router := setupTestRouter()

	t.Run("CreateTherapist succeeds", func(t *testing.T) {
		expected := &responses.Therapist{
			ID:        1,
			Name:      "Dr. Amara Osei",
			Email:     "amara@example.com",
			Phone:     "+15550100",
			CreatedAt: time.Now(),
		}
		mockTherapistUsecase.On("CreateTherapist", mock.Anything, mock.AnythingOfType("*requests.CreateTherapist")).Return(expected, nil).Once()

		requestBody := requests.CreateTherapist{
			Name:  "Dr. Amara Osei",
			Email: "amara@example.com",
			Phone: "+15550100",
		}
		jsonBody, _ := json.Marshal(requestBody)

		req := httptest.NewRequest("POST", "/therapists", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var envelope struct {
			Success bool                `json:"success"`
			Data    responses.Therapist `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
		assert.True(t, envelope.Success)
		assert.Equal(t, int64(1), envelope.Data.ID)
		assert.Equal(t, "amara@example.com", envelope.Data.Email)
	})

	t.Run("CreateTherapist with duplicate email returns 400", func(t *testing.T) {
		mockTherapistUsecase.On("CreateTherapist", mock.Anything, mock.AnythingOfType("*requests.CreateTherapist")).Return(nil, exceptions.ErrEmailAlreadyExist(nil)).Once()

		requestBody := requests.CreateTherapist{
			Name:  "Dr. Amara Osei",
			Email: "amara@example.com",
			Phone: "+15550100",
		}
		jsonBody, _ := json.Marshal(requestBody)

		req := httptest.NewRequest("POST", "/therapists", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var envelope responses.ResponseDTO
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
		assert.False(t, envelope.Success)
	})

	t.Run("CreateTherapist with invalid payload returns 400", func(t *testing.T) {
		mockTherapistUsecase.On("CreateTherapist", mock.Anything, mock.AnythingOfType("*requests.CreateTherapist")).Return(nil, exceptions.ErrInputValidation(nil)).Once()

		jsonBody, _ := json.Marshal(requests.CreateTherapist{Name: "No Email"})

		req := httptest.NewRequest("POST", "/therapists", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("FindAll returns therapists", func(t *testing.T) {
		mockTherapistUsecase.On("FindAll", mock.Anything).Return([]responses.Therapist{
			{ID: 1, Name: "Dr. Amara Osei", Email: "amara@example.com"},
			{ID: 2, Name: "Dr. Lena Fischer", Email: "lena@example.com"},
		}, nil).Once()

		req := httptest.NewRequest("GET", "/therapists", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var envelope struct {
			Success bool                  `json:"success"`
			Data    []responses.Therapist `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
		assert.Len(t, envelope.Data, 2)
	})

	t.Run("FindTherapistByID returns 404 when absent", func(t *testing.T) {
		mockTherapistUsecase.On("FindTherapistByID", mock.Anything, int64(404)).Return(nil, exceptions.ErrTherapistNotFound(nil)).Once()

		req := httptest.NewRequest("GET", "/therapists/404", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("FindTherapistByID rejects non-numeric id", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/therapists/abc", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	mockTherapistUsecase.AssertExpectations(t)
}

func TestHealthRoute(t *testing.T) {
	router := setupTestRouter()

	req := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
}
