package facades

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/sbilibin2017/gw-calorie-tracker/internal/logger"
	"github.com/sbilibin2017/gw-calorie-tracker/internal/models"
)

// DefaultFoodDatabaseURL is the public Edamam API host.
const DefaultFoodDatabaseURL = "https://api.edamam.com"

const parserPath = "/api/food-database/v2/parser"

// Edamam nutrient codes, per 100 g.
const (
	nutrientEnergy  = "ENERC_KCAL"
	nutrientProtein = "PROCNT"
	nutrientCarbs   = "CHOCDF"
	nutrientFat     = "FAT"
)

// maxErrorBody caps how much of a failed response is read into UpstreamError.
const maxErrorBody = 4 << 10

// ErrNotConfigured is returned when the Edamam credentials are missing.
var ErrNotConfigured = errors.New("food database credentials are not configured")

// UpstreamError carries a non-2xx answer of the food database.
type UpstreamError struct {
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("food database responded %d: %s", e.Status, e.Message)
}

// FoodDatabaseHTTPFacade queries the Edamam food database parser over HTTP.
type FoodDatabaseHTTPFacade struct {
	client  *http.Client
	baseURL string
	appID   string
	appKey  string
}

// NewFoodDatabaseHTTPFacade creates a facade. The client is expected to carry
// a timeout; an empty baseURL falls back to DefaultFoodDatabaseURL.
func NewFoodDatabaseHTTPFacade(client *http.Client, baseURL, appID, appKey string) *FoodDatabaseHTTPFacade {
	if baseURL == "" {
		baseURL = DefaultFoodDatabaseURL
	}
	return &FoodDatabaseHTTPFacade{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
		appID:   appID,
		appKey:  appKey,
	}
}

type parserResponse struct {
	Hints []struct {
		Food struct {
			Label     string             `json:"label"`
			Nutrients map[string]float64 `json:"nutrients"`
		} `json:"food"`
	} `json:"hints"`
}

// Search returns the upstream hits for query in upstream order. Hits without
// a label or an energy value are skipped.
func (f *FoodDatabaseHTTPFacade) Search(ctx context.Context, query string, onlyGeneric bool) ([]models.FoodSearchItem, error) {
	if f.appID == "" || f.appKey == "" {
		return nil, ErrNotConfigured
	}

	params := url.Values{}
	params.Set("app_id", f.appID)
	params.Set("app_key", f.appKey)
	params.Set("ingr", query)
	params.Set("nutrition-type", "logging")
	if onlyGeneric {
		params.Set("category", "generic-foods")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+parserPath+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("food database request failed", "query", query, "error", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		upErr := &UpstreamError{Status: resp.StatusCode, Message: readErrorMessage(resp)}
		logger.Log.Errorw("food database returned error", "query", query, "status", upErr.Status, "message", upErr.Message)
		return nil, upErr
	}

	var body parserResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		logger.Log.Errorw("failed to decode food database response", "query", query, "error", err)
		return nil, err
	}

	items := make([]models.FoodSearchItem, 0, len(body.Hints))
	for _, hint := range body.Hints {
		label := strings.TrimSpace(hint.Food.Label)
		kcal, ok := hint.Food.Nutrients[nutrientEnergy]
		if label == "" || !ok {
			continue
		}
		items = append(items, models.FoodSearchItem{
			Name:        label,
			Kcal100g:    kcal,
			Protein100g: nutrient(hint.Food.Nutrients, nutrientProtein),
			Carbs100g:   nutrient(hint.Food.Nutrients, nutrientCarbs),
			Fat100g:     nutrient(hint.Food.Nutrients, nutrientFat),
		})
	}

	logger.Log.Infow("food database search", "query", query, "only_generic", onlyGeneric, "hints", len(body.Hints), "items", len(items))

	return items, nil
}

func nutrient(nutrients map[string]float64, code string) *float64 {
	v, ok := nutrients[code]
	if !ok {
		return nil
	}
	return &v
}

// readErrorMessage extracts a message from an error body. Edamam answers with
// {"message": ...} or {"errors": [{"description": ...}]}, sometimes plain text.
func readErrorMessage(resp *http.Response) string {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var body struct {
		Message string `json:"message"`
		Errors  []struct {
			Description string `json:"description"`
		} `json:"errors"`
	}
	if json.Unmarshal(raw, &body) == nil {
		if body.Message != "" {
			return body.Message
		}
		if len(body.Errors) > 0 && body.Errors[0].Description != "" {
			return body.Errors[0].Description
		}
	}

	if text := strings.TrimSpace(string(raw)); text != "" {
		return text
	}
	return http.StatusText(resp.StatusCode)
}
