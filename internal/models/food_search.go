package models

// FoodSearchItem is one normalized hit from the nutrition database.
type FoodSearchItem struct {
	Name        string   `json:"name"`
	Kcal100g    float64  `json:"kcal_100g"`
	Protein100g *float64 `json:"protein_100g"`
	Carbs100g   *float64 `json:"carbs_100g"`
	Fat100g     *float64 `json:"fat_100g"`
}

// FoodSearchResult is the response of a food lookup.
type FoodSearchResult struct {
	Query string           `json:"query"`
	Count int              `json:"count"`
	Items []FoodSearchItem `json:"items"`
}
