package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-calorie-tracker/internal/facades"
	"github.com/sbilibin2017/gw-calorie-tracker/internal/models"
	"github.com/sbilibin2017/gw-calorie-tracker/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestFoodSearchHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockFoodSearcher(ctrl)
	handler := NewFoodSearchHandler(mockSvc)

	tests := []struct {
		name           string
		url            string
		mockSetup      func()
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "defaults",
			url:  "/foods/search?query=apple",
			mockSetup: func() {
				mockSvc.EXPECT().Search(gomock.Any(), "apple", 0, true).Return(&models.FoodSearchResult{
					Query: "apple",
					Count: 1,
					Items: []models.FoodSearchItem{{Name: "Apple", Kcal100g: 52, Fat100g: ptr(0.2)}},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"query":"apple","count":1,"items":[{"name":"Apple","kcal_100g":52,"protein_100g":null,"carbs_100g":null,"fat_100g":0.2}]}`,
		},
		{
			name: "explicit limit and branded foods",
			url:  "/foods/search?query=bar&limit=5&onlyGeneric=false",
			mockSetup: func() {
				mockSvc.EXPECT().Search(gomock.Any(), "bar", 5, false).
					Return(&models.FoodSearchResult{Query: "bar", Items: []models.FoodSearchItem{}}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"query":"bar","count":0,"items":[]}`,
		},
		{
			name:           "bad limit",
			url:            "/foods/search?query=bar&limit=ten",
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"limit must be an integer"}`,
		},
		{
			name:           "bad onlyGeneric",
			url:            "/foods/search?query=bar&onlyGeneric=maybe",
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"onlyGeneric must be true or false"}`,
		},
		{
			name: "empty query",
			url:  "/foods/search",
			mockSetup: func() {
				mockSvc.EXPECT().Search(gomock.Any(), "", 0, true).
					Return(nil, &services.ValidationError{Message: "query is required"})
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"query is required"}`,
		},
		{
			name: "credentials unset",
			url:  "/foods/search?query=apple",
			mockSetup: func() {
				mockSvc.EXPECT().Search(gomock.Any(), "apple", 0, true).Return(nil, facades.ErrNotConfigured)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"food database is not configured"}`,
		},
		{
			name: "upstream failure",
			url:  "/foods/search?query=apple",
			mockSetup: func() {
				mockSvc.EXPECT().Search(gomock.Any(), "apple", 0, true).
					Return(nil, &facades.UpstreamError{Status: 429, Message: "rate limited"})
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"food database request failed","status":429,"message":"rate limited"}`,
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
