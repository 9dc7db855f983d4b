package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-calorie-tracker/internal/models"
	"github.com/sbilibin2017/gw-calorie-tracker/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestGetNoteHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockNoteManager(ctrl)
	handler := NewGetNoteHandler(mockSvc, authedAs(3))

	tests := []struct {
		name           string
		url            string
		mockSetup      func()
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "note present",
			url:  "/notes?date=2024-03-01",
			mockSetup: func() {
				mockSvc.EXPECT().GetNote(gomock.Any(), int64(3), "2024-03-01").
					Return(&models.DayNote{UserID: 3, Date: "2024-03-01", Note: "rest day"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"date":"2024-03-01","note":"rest day"}`,
		},
		{
			name: "no note",
			url:  "/notes?date=2024-03-02",
			mockSetup: func() {
				mockSvc.EXPECT().GetNote(gomock.Any(), int64(3), "2024-03-02").Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"date":"2024-03-02","note":null}`,
		},
		{
			name: "bad date",
			url:  "/notes?date=yesterday",
			mockSetup: func() {
				mockSvc.EXPECT().GetNote(gomock.Any(), int64(3), "yesterday").
					Return(nil, &services.ValidationError{Message: "date must be YYYY-MM-DD"})
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"date must be YYYY-MM-DD"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tt.url, nil))

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}

func TestSaveNoteHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockNoteManager(ctrl)
	handler := NewSaveNoteHandler(mockSvc, authedAs(3))

	tests := []struct {
		name           string
		body           string
		mockSetup      func()
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "saved",
			body: `{"date":"2024-03-01","note":"ran 5k"}`,
			mockSetup: func() {
				mockSvc.EXPECT().SaveNote(gomock.Any(), int64(3), "2024-03-01", "ran 5k").
					Return(&models.DayNote{Date: "2024-03-01", Note: "ran 5k"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"date":"2024-03-01","note":"ran 5k"}`,
		},
		{
			name: "blank note clears",
			body: `{"date":"2024-03-01","note":"   "}`,
			mockSetup: func() {
				mockSvc.EXPECT().SaveNote(gomock.Any(), int64(3), "2024-03-01", "   ").Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"date":"2024-03-01","note":null}`,
		},
		{
			name:           "missing date",
			body:           `{"note":"x"}`,
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"date is required"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/notes", bytes.NewBufferString(tt.body)))

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}

func TestDeleteNoteHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockNoteManager(ctrl)
	handler := NewDeleteNoteHandler(mockSvc, authedAs(3))

	mockSvc.EXPECT().DeleteNote(gomock.Any(), int64(3), "2024-03-01").Return(nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/notes?date=2024-03-01", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"ok":true}`, rr.Body.String())

	mockSvc.EXPECT().DeleteNote(gomock.Any(), int64(3), "2024-03-01").Return(errors.New("boom"))
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/notes?date=2024-03-01", nil))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)

	rr = httptest.NewRecorder()
	NewDeleteNoteHandler(mockSvc, anonymous).ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/notes?date=2024-03-01", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
