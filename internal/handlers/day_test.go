package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-calorie-tracker/internal/models"
	"github.com/sbilibin2017/gw-calorie-tracker/internal/services"
	"github.com/stretchr/testify/assert"
)

func newDayRouter(reader DayReader, logger FoodLogger, getUserID UserIDGetter) http.Handler {
	r := chi.NewRouter()
	r.Get("/day", NewGetDayHandler(reader, getUserID))
	r.Post("/day", NewAddEntryHandler(logger, getUserID))
	r.Put("/day/{id}", NewUpdateEntryHandler(logger, getUserID))
	r.Delete("/day/{id}", NewDeleteEntryHandler(logger, getUserID))
	return r
}

func TestGetDayHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := NewMockDayReader(ctrl)
	router := newDayRouter(mockReader, NewMockFoodLogger(ctrl), authedAs(1))

	status := models.StatusBelow
	tests := []struct {
		name           string
		url            string
		mockSetup      func()
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "day with targets",
			url:  "/day?date=2024-03-01",
			mockSetup: func() {
				mockReader.EXPECT().GetDay(gomock.Any(), int64(1), "2024-03-01").Return(&models.DayView{
					Date:        "2024-03-01",
					Items:       []models.FoodEntry{},
					TotalKcal:   0,
					UserTargets: models.Targets{MinKcal: ptr(1500)},
					Status:      &status,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"date":"2024-03-01","items":[],"total_kcal":0,"user_targets":{"min_kcal":1500,"max_kcal":null},"status":"below","note":null}`,
		},
		{
			name: "missing date",
			url:  "/day",
			mockSetup: func() {
				mockReader.EXPECT().GetDay(gomock.Any(), int64(1), "").
					Return(nil, &services.ValidationError{Message: "date is required"})
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"date is required"}`,
		},
		{
			name: "store failure",
			url:  "/day?date=2024-03-01",
			mockSetup: func() {
				mockReader.EXPECT().GetDay(gomock.Any(), int64(1), "2024-03-01").Return(nil, errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tt.url, nil))

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}

func TestAddEntryHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := NewMockFoodLogger(ctrl)
	router := newDayRouter(NewMockDayReader(ctrl), mockLogger, authedAs(1))

	tests := []struct {
		name           string
		body           string
		mockSetup      func()
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "entry with macros",
			body: `{"date":"2024-03-01","name":"Rice","grams":150,"kcal_100g":130,"protein_100g":2.7}`,
			mockSetup: func() {
				mockLogger.EXPECT().AddEntry(gomock.Any(), int64(1), models.NewFoodEntry{
					Date:        "2024-03-01",
					Name:        "Rice",
					Grams:       150,
					Kcal100g:    130,
					Protein100g: ptr(2.7),
				}).Return(&models.FoodEntry{ID: 7, Kcal: 195}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `{"id":7,"kcal":195}`,
		},
		{
			name:           "zero grams",
			body:           `{"date":"2024-03-01","name":"Rice","grams":0,"kcal_100g":130}`,
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"grams must be greater than 0"}`,
		},
		{
			name:           "malformed date",
			body:           `{"date":"2024-3-1","name":"Rice","grams":10,"kcal_100g":130}`,
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"date must be YYYY-MM-DD"}`,
		},
		{
			name:           "missing name",
			body:           `{"date":"2024-03-01","grams":10,"kcal_100g":130}`,
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"name is required"}`,
		},
		{
			name:           "negative macro",
			body:           `{"date":"2024-03-01","name":"Rice","grams":10,"kcal_100g":130,"carbs_100g":-2}`,
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"carbs_100g must be at least 0"}`,
		},
		{
			name:           "overflowing amounts",
			body:           `{"date":"2024-03-01","name":"Rice","grams":1e200,"kcal_100g":1e200}`,
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"grams must be at most 100000"}`,
		},
		{
			name:           "macro above 100 g",
			body:           `{"date":"2024-03-01","name":"Oil","grams":10,"kcal_100g":884,"fat_100g":150}`,
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"fat_100g must be at most 100"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/day", bytes.NewBufferString(tt.body)))

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}

func TestUpdateEntryHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := NewMockFoodLogger(ctrl)
	router := newDayRouter(NewMockDayReader(ctrl), mockLogger, authedAs(1))

	tests := []struct {
		name           string
		url            string
		body           string
		mockSetup      func()
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "own entry",
			url:  "/day/5",
			body: `{"grams":200,"kcal_100g":130}`,
			mockSetup: func() {
				mockLogger.EXPECT().UpdateEntry(gomock.Any(), int64(1), int64(5), 200.0, 130.0).Return(int64(1), 260.0, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"ok":true,"updated":1,"kcal":260}`,
		},
		{
			name: "someone else's entry",
			url:  "/day/6",
			body: `{"grams":200,"kcal_100g":130}`,
			mockSetup: func() {
				mockLogger.EXPECT().UpdateEntry(gomock.Any(), int64(1), int64(6), 200.0, 130.0).Return(int64(0), 260.0, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"ok":true,"updated":0,"kcal":260}`,
		},
		{
			name:           "non-numeric id",
			url:            "/day/abc",
			body:           `{"grams":200,"kcal_100g":130}`,
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"invalid entry id"}`,
		},
		{
			name:           "missing rate",
			url:            "/day/5",
			body:           `{"grams":200}`,
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"kcal_100g must be greater than 0"}`,
		},
		{
			name:           "rate above bound",
			url:            "/day/5",
			body:           `{"grams":200,"kcal_100g":5000}`,
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"kcal_100g must be at most 1000"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(http.MethodPut, tt.url, bytes.NewBufferString(tt.body)))

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}

func TestDeleteEntryHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := NewMockFoodLogger(ctrl)
	router := newDayRouter(NewMockDayReader(ctrl), mockLogger, authedAs(1))

	tests := []struct {
		name           string
		url            string
		mockSetup      func()
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "deleted",
			url:  "/day/5",
			mockSetup: func() {
				mockLogger.EXPECT().DeleteEntry(gomock.Any(), int64(1), int64(5)).Return(int64(1), nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"ok":true,"deleted":1}`,
		},
		{
			name: "nothing deleted",
			url:  "/day/99",
			mockSetup: func() {
				mockLogger.EXPECT().DeleteEntry(gomock.Any(), int64(1), int64(99)).Return(int64(0), nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"ok":true,"deleted":0}`,
		},
		{
			name:           "zero id",
			url:            "/day/0",
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"invalid entry id"}`,
		},
		{
			name: "store failure",
			url:  "/day/5",
			mockSetup: func() {
				mockLogger.EXPECT().DeleteEntry(gomock.Any(), int64(1), int64(5)).Return(int64(0), errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, tt.url, nil))

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}

func TestDayHandlers_Unauthorized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := newDayRouter(NewMockDayReader(ctrl), NewMockFoodLogger(ctrl), anonymous)

	for _, req := range []*http.Request{
		httptest.NewRequest(http.MethodGet, "/day?date=2024-03-01", nil),
		httptest.NewRequest(http.MethodPost, "/day", bytes.NewBufferString(`{}`)),
		httptest.NewRequest(http.MethodPut, "/day/1", bytes.NewBufferString(`{}`)),
		httptest.NewRequest(http.MethodDelete, "/day/1", nil),
	} {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code, req.Method)
	}
}
