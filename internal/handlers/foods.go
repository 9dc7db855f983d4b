package handlers

//go:generate mockgen -source=foods.go -destination=foods_mock.go -package=handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/sbilibin2017/gw-calorie-tracker/internal/models"
)

// FoodSearcher looks foods up in the nutrition database.
type FoodSearcher interface {
	Search(ctx context.Context, query string, limit int, onlyGeneric bool) (*models.FoodSearchResult, error)
}

// NewFoodSearchHandler proxies a food lookup.
// @Summary Search foods
// @Description Distinct foods matching the query with kcal and macros per 100 g. Results are cached for a few minutes.
// @Tags foods
// @Produce json
// @Param query query string true "Search text"
// @Param limit query int false "Maximum results, 1..50" default(20)
// @Param onlyGeneric query bool false "Restrict to generic foods" default(true)
// @Success 200 {object} models.FoodSearchResult
// @Failure 400 {object} handlers.ErrorResponse "Missing query or bad parameters"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Not configured or upstream failure"
// @Router /foods/search [get]
// @Security BearerAuth
func NewFoodSearchHandler(svc FoodSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		limit := 0
		if raw := q.Get("limit"); raw != "" {
			v, err := strconv.Atoi(raw)
			if err != nil {
				writeErrorMessage(w, http.StatusBadRequest, "limit must be an integer")
				return
			}
			limit = v
		}

		onlyGeneric := true
		if raw := q.Get("onlyGeneric"); raw != "" {
			v, err := strconv.ParseBool(raw)
			if err != nil {
				writeErrorMessage(w, http.StatusBadRequest, "onlyGeneric must be true or false")
				return
			}
			onlyGeneric = v
		}

		res, err := svc.Search(r.Context(), q.Get("query"), limit, onlyGeneric)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, res)
	}
}
