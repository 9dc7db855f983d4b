package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-calorie-tracker/internal/models"
	"github.com/sbilibin2017/gw-calorie-tracker/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dayMocks struct {
	entries *services.MockFoodEntryReader
	users   *services.MockUserReader
	notes   *services.MockNoteReader
	svc     *services.DayService
}

func newDayMocks(t *testing.T) dayMocks {
	ctrl := gomock.NewController(t)
	m := dayMocks{
		entries: services.NewMockFoodEntryReader(ctrl),
		users:   services.NewMockUserReader(ctrl),
		notes:   services.NewMockNoteReader(ctrl),
	}
	m.svc = services.NewDayService(m.entries, m.users, m.notes)
	return m
}

func TestDayService_GetDay(t *testing.T) {
	ctx := context.Background()
	const day = "2024-03-01"

	tests := []struct {
		name       string
		total      float64
		min, max   *float64
		note       *models.DayNote
		wantTotal  float64
		wantStatus *string
		wantNote   *string
	}{
		{name: "below", total: 1200, min: ptr(1500), max: ptr(2000), wantTotal: 1200, wantStatus: str(models.StatusBelow)},
		{name: "within", total: 1800, min: ptr(1500), max: ptr(2000), wantTotal: 1800, wantStatus: str(models.StatusWithin)},
		{name: "above", total: 2200, min: ptr(1500), max: ptr(2000), wantTotal: 2200, wantStatus: str(models.StatusAbove)},
		{name: "no targets", total: 1800, wantTotal: 1800},
		{name: "total rounded to one decimal", total: 1499.96, min: ptr(1500), wantTotal: 1500, wantStatus: str(models.StatusWithin)},
		{
			name: "with note", total: 0, note: &models.DayNote{Date: day, Note: "rest day"},
			wantTotal: 0, wantNote: str("rest day"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newDayMocks(t)

			m.entries.EXPECT().ListByDate(gomock.Any(), int64(1), day).Return([]models.FoodEntry{{ID: 1, Kcal: 12.345}}, nil)
			m.entries.EXPECT().TotalByDate(gomock.Any(), int64(1), day).Return(tt.total, nil)
			m.users.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&models.User{ID: 1, MinKcal: tt.min, MaxKcal: tt.max}, nil)
			m.notes.EXPECT().Get(gomock.Any(), int64(1), day).Return(tt.note, nil)

			view, err := m.svc.GetDay(ctx, 1, day)
			require.NoError(t, err)
			assert.Equal(t, day, view.Date)
			assert.Equal(t, tt.wantTotal, view.TotalKcal)
			assert.Equal(t, tt.wantStatus, view.Status)
			assert.Equal(t, tt.wantNote, view.Note)
			assert.Equal(t, tt.min, view.UserTargets.MinKcal)
			assert.Equal(t, tt.max, view.UserTargets.MaxKcal)
			require.Len(t, view.Items, 1)
			assert.Equal(t, 12.35, view.Items[0].Kcal)
		})
	}
}

func TestDayService_GetDay_Errors(t *testing.T) {
	ctx := context.Background()
	dbErr := errors.New("db error")

	t.Run("invalid date", func(t *testing.T) {
		m := newDayMocks(t)
		_, err := m.svc.GetDay(ctx, 1, "2024-13-01")
		assert.ErrorIs(t, err, services.ErrValidation)
	})

	t.Run("list error", func(t *testing.T) {
		m := newDayMocks(t)
		m.entries.EXPECT().ListByDate(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, dbErr)

		_, err := m.svc.GetDay(ctx, 1, "2024-03-01")
		assert.ErrorIs(t, err, dbErr)
	})

	t.Run("total error", func(t *testing.T) {
		m := newDayMocks(t)
		m.entries.EXPECT().ListByDate(gomock.Any(), gomock.Any(), gomock.Any()).Return([]models.FoodEntry{}, nil)
		m.entries.EXPECT().TotalByDate(gomock.Any(), gomock.Any(), gomock.Any()).Return(0.0, dbErr)

		_, err := m.svc.GetDay(ctx, 1, "2024-03-01")
		assert.ErrorIs(t, err, dbErr)
	})

	t.Run("user gone", func(t *testing.T) {
		m := newDayMocks(t)
		m.entries.EXPECT().ListByDate(gomock.Any(), gomock.Any(), gomock.Any()).Return([]models.FoodEntry{}, nil)
		m.entries.EXPECT().TotalByDate(gomock.Any(), gomock.Any(), gomock.Any()).Return(0.0, nil)
		m.users.EXPECT().GetByID(gomock.Any(), int64(1)).Return(nil, nil)

		_, err := m.svc.GetDay(ctx, 1, "2024-03-01")
		assert.ErrorIs(t, err, services.ErrUserNotFound)
	})

	t.Run("note error", func(t *testing.T) {
		m := newDayMocks(t)
		m.entries.EXPECT().ListByDate(gomock.Any(), gomock.Any(), gomock.Any()).Return([]models.FoodEntry{}, nil)
		m.entries.EXPECT().TotalByDate(gomock.Any(), gomock.Any(), gomock.Any()).Return(0.0, nil)
		m.users.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&models.User{ID: 1}, nil)
		m.notes.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, dbErr)

		_, err := m.svc.GetDay(ctx, 1, "2024-03-01")
		assert.ErrorIs(t, err, dbErr)
	})
}

func str(s string) *string { return &s }
