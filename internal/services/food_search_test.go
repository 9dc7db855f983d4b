package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-calorie-tracker/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hit(name string, kcal float64) models.FoodSearchItem {
	return models.FoodSearchItem{Name: name, Kcal100g: kcal}
}

func TestFoodSearchService_Search(t *testing.T) {
	ctx := context.Background()

	t.Run("normalizes and caches on miss", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		upstream := NewMockFoodDatabase(ctrl)
		cache := NewMockFoodSearchCache(ctrl)
		svc := NewFoodSearchService(upstream, cache)

		cache.EXPECT().Get(gomock.Any(), "apple|20|true").Return(nil, false, nil)
		upstream.EXPECT().Search(gomock.Any(), "Apple", true).Return([]models.FoodSearchItem{
			{Name: "Apple", Kcal100g: 52.04, Protein100g: floatPtr(0.26)},
			hit("apple", 50),
			hit(" APPLE ", 49),
			hit("Apple Juice", 46.46),
		}, nil)
		cache.EXPECT().Set(gomock.Any(), "apple|20|true", gomock.Any()).Return(nil)

		res, err := svc.Search(ctx, "  Apple ", 0, true)
		require.NoError(t, err)
		assert.Equal(t, "Apple", res.Query)
		assert.Equal(t, 2, res.Count)
		require.Len(t, res.Items, 2)
		assert.Equal(t, "Apple", res.Items[0].Name)
		assert.Equal(t, 52.0, res.Items[0].Kcal100g)
		assert.Equal(t, 0.3, *res.Items[0].Protein100g)
		assert.Equal(t, "Apple Juice", res.Items[1].Name)
		assert.Equal(t, 46.5, res.Items[1].Kcal100g)
	})

	t.Run("cache hit skips upstream", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		upstream := NewMockFoodDatabase(ctrl)
		cache := NewMockFoodSearchCache(ctrl)
		svc := NewFoodSearchService(upstream, cache)

		cached := &models.FoodSearchResult{Query: "rice", Count: 1, Items: []models.FoodSearchItem{hit("Rice", 130)}}
		cache.EXPECT().Get(gomock.Any(), "rice|5|false").Return(cached, true, nil)

		res, err := svc.Search(ctx, "RICE", 5, false)
		require.NoError(t, err)
		assert.Equal(t, "RICE", res.Query)
		assert.Equal(t, cached.Items, res.Items)
		assert.Equal(t, "rice", cached.Query)
	})

	t.Run("cache failures fall through to upstream", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		upstream := NewMockFoodDatabase(ctrl)
		cache := NewMockFoodSearchCache(ctrl)
		svc := NewFoodSearchService(upstream, cache)

		cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, false, errors.New("redis down"))
		upstream.EXPECT().Search(gomock.Any(), "rice", true).Return([]models.FoodSearchItem{hit("Rice", 130)}, nil)
		cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

		res, err := svc.Search(ctx, "rice", 20, true)
		require.NoError(t, err)
		assert.Equal(t, 1, res.Count)
	})

	t.Run("limit is capped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		upstream := NewMockFoodDatabase(ctrl)
		svc := NewFoodSearchService(upstream, nil)

		hits := make([]models.FoodSearchItem, 0, 80)
		for i := 0; i < 80; i++ {
			hits = append(hits, hit(fmt.Sprintf("Food %d", i), float64(i+1)))
		}
		upstream.EXPECT().Search(gomock.Any(), "food", true).Return(hits, nil).Times(2)

		res, err := svc.Search(ctx, "food", 500, true)
		require.NoError(t, err)
		assert.Equal(t, MaxSearchLimit, res.Count)

		res, err = svc.Search(ctx, "food", 3, true)
		require.NoError(t, err)
		assert.Equal(t, 3, res.Count)
		assert.Equal(t, "Food 2", res.Items[2].Name)
	})

	t.Run("empty query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := NewFoodSearchService(NewMockFoodDatabase(ctrl), NewMockFoodSearchCache(ctrl))

		_, err := svc.Search(ctx, "   ", 20, true)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("upstream error is not cached", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		upstream := NewMockFoodDatabase(ctrl)
		cache := NewMockFoodSearchCache(ctrl)
		svc := NewFoodSearchService(upstream, cache)

		upErr := errors.New("upstream 500")
		cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, false, nil)
		upstream.EXPECT().Search(gomock.Any(), "rice", true).Return(nil, upErr)

		_, err := svc.Search(ctx, "rice", 20, true)
		assert.ErrorIs(t, err, upErr)
	})

	t.Run("empty upstream answer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		upstream := NewMockFoodDatabase(ctrl)
		svc := NewFoodSearchService(upstream, nil)

		upstream.EXPECT().Search(gomock.Any(), "xyzzy", true).Return(nil, nil)

		res, err := svc.Search(ctx, "xyzzy", 20, true)
		require.NoError(t, err)
		assert.Equal(t, 0, res.Count)
		assert.NotNil(t, res.Items)
	})
}

func TestFoodSearchService_Search_CollapsesConcurrentMisses(t *testing.T) {
	ctrl := gomock.NewController(t)
	upstream := NewMockFoodDatabase(ctrl)
	svc := NewFoodSearchService(upstream, nil)

	release := make(chan struct{})
	upstream.EXPECT().Search(gomock.Any(), "rice", true).DoAndReturn(
		func(context.Context, string, bool) ([]models.FoodSearchItem, error) {
			<-release
			return []models.FoodSearchItem{hit("Rice", 130)}, nil
		}).Times(1)

	const callers = 5
	var wg sync.WaitGroup
	results := make([]*models.FoodSearchResult, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res, err := svc.Search(context.Background(), "rice", 20, true)
			assert.NoError(t, err)
			results[i] = res
		}(i)
	}

	// let every caller join the in-flight call before it completes
	time.Sleep(100 * time.Millisecond)
	close(release)
	wg.Wait()

	for _, res := range results {
		require.NotNil(t, res)
		assert.Equal(t, 1, res.Count)
	}
}

func TestClampLimit(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{-1, DefaultSearchLimit},
		{0, DefaultSearchLimit},
		{1, 1},
		{50, 50},
		{51, MaxSearchLimit},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, clampLimit(tt.in))
	}
}
