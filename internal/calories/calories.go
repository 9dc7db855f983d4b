// Package calories holds the arithmetic shared by the food log and the search proxy.
package calories

import "math"

// Compute returns the energy of grams of a food that has kcal100g per 100 g.
func Compute(grams, kcal100g float64) float64 {
	return kcal100g / 100 * grams
}

// Round rounds v half away from zero to the given number of decimal places.
func Round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

// Display is Compute rounded to 2 decimals, the precision returned to clients.
func Display(grams, kcal100g float64) float64 {
	return Round(Compute(grams, kcal100g), 2)
}
