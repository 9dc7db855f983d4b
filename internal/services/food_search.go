package services

//go:generate mockgen -source=food_search.go -destination=food_search_mock.go -package=services

import (
	"context"
	"fmt"
	"strings"

	"github.com/sbilibin2017/gw-calorie-tracker/internal/calories"
	"github.com/sbilibin2017/gw-calorie-tracker/internal/logger"
	"github.com/sbilibin2017/gw-calorie-tracker/internal/models"
	"golang.org/x/sync/singleflight"
)

const (
	DefaultSearchLimit = 20
	MaxSearchLimit     = 50
)

// FoodDatabase looks foods up in the external nutrition database.
type FoodDatabase interface {
	Search(ctx context.Context, query string, onlyGeneric bool) ([]models.FoodSearchItem, error)
}

// FoodSearchCache stores normalized search results by key.
type FoodSearchCache interface {
	Get(ctx context.Context, key string) (*models.FoodSearchResult, bool, error)
	Set(ctx context.Context, key string, result *models.FoodSearchResult) error
}

// FoodSearchService proxies food lookups with caching and deduplication.
type FoodSearchService struct {
	upstream FoodDatabase
	cache    FoodSearchCache
	group    singleflight.Group
}

// NewFoodSearchService creates a new FoodSearchService. cache may be nil.
func NewFoodSearchService(upstream FoodDatabase, cache FoodSearchCache) *FoodSearchService {
	return &FoodSearchService{upstream: upstream, cache: cache}
}

// Search returns at most limit distinct foods matching query. limit <= 0 means
// DefaultSearchLimit and anything above MaxSearchLimit is capped.
func (s *FoodSearchService) Search(ctx context.Context, query string, limit int, onlyGeneric bool) (*models.FoodSearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, invalid("query is required")
	}
	limit = clampLimit(limit)
	key := searchKey(query, limit, onlyGeneric)

	if res, ok := s.cacheGet(ctx, key); ok {
		return withQuery(res, query), nil
	}

	// identical concurrent misses share one upstream call
	v, err, _ := s.group.Do(key, func() (any, error) {
		hits, err := s.upstream.Search(context.WithoutCancel(ctx), query, onlyGeneric)
		if err != nil {
			return nil, err
		}
		res := normalize(query, hits, limit)
		s.cacheSet(ctx, key, res)
		return res, nil
	})
	if err != nil {
		logger.Log.Errorw("food search failed", "query", query, "error", err)
		return nil, err
	}

	return withQuery(v.(*models.FoodSearchResult), query), nil
}

func (s *FoodSearchService) cacheGet(ctx context.Context, key string) (*models.FoodSearchResult, bool) {
	if s.cache == nil {
		return nil, false
	}
	res, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		logger.Log.Warnw("food search cache read failed", "key", key, "error", err)
		return nil, false
	}
	return res, ok
}

func (s *FoodSearchService) cacheSet(ctx context.Context, key string, res *models.FoodSearchResult) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, res); err != nil {
		logger.Log.Warnw("food search cache write failed", "key", key, "error", err)
	}
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultSearchLimit
	case limit > MaxSearchLimit:
		return MaxSearchLimit
	default:
		return limit
	}
}

func searchKey(query string, limit int, onlyGeneric bool) string {
	return fmt.Sprintf("%s|%d|%t", strings.ToLower(query), limit, onlyGeneric)
}

// withQuery returns a shallow copy of res echoing the caller's query.
func withQuery(res *models.FoodSearchResult, query string) *models.FoodSearchResult {
	out := *res
	out.Query = query
	return &out
}

// normalize drops repeated names (case-insensitive, first wins), caps the
// list at limit and rounds nutrients to 1 decimal.
func normalize(query string, hits []models.FoodSearchItem, limit int) *models.FoodSearchResult {
	seen := make(map[string]struct{}, len(hits))
	items := make([]models.FoodSearchItem, 0, min(len(hits), limit))

	for _, hit := range hits {
		if len(items) == limit {
			break
		}
		name := strings.TrimSpace(hit.Name)
		key := strings.ToLower(name)
		if name == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		items = append(items, models.FoodSearchItem{
			Name:        name,
			Kcal100g:    calories.Round(hit.Kcal100g, 1),
			Protein100g: roundPtr(hit.Protein100g),
			Carbs100g:   roundPtr(hit.Carbs100g),
			Fat100g:     roundPtr(hit.Fat100g),
		})
	}

	return &models.FoodSearchResult{
		Query: query,
		Count: len(items),
		Items: items,
	}
}

func roundPtr(v *float64) *float64 {
	if v == nil {
		return nil
	}
	r := calories.Round(*v, 1)
	return &r
}
