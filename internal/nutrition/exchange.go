package nutrition

import "strings"

// Food categories recognized by the exchange-list builder. Reference data is
// validated against this closed set when it is ingested; the builder still
// matches case-insensitively and skips anything else so a stale row can never
// poison a plan.
const (
	CategoryProtein = "protein"
	CategoryCarbs   = "carbs"
	CategoryFats    = "fats"
)

// Display names of the three exchange groups, in the order they print.
const (
	GroupProteinSources = "Protein Sources"
	GroupCarbohydrates  = "Carbohydrates"
	GroupFats           = "Fats"
)

// ValidCategory reports whether s names one of the closed food categories,
// ignoring case.
func ValidCategory(s string) bool {
	switch strings.ToLower(s) {
	case CategoryProtein, CategoryCarbs, CategoryFats:
		return true
	}
	return false
}

// FoodItem is the slice of reference data the builder needs. The service
// layer maps database rows into this shape so the builder stays free of
// storage concerns.
type FoodItem struct {
	Name            string  `json:"name"`
	ArabicName      string  `json:"arabic_name,omitempty"`
	Category        string  `json:"category"`
	CaloriesPer100g float64 `json:"calories_per_100g"`
	ProteinPer100g  float64 `json:"protein_per_100g"`
	CarbsPer100g    float64 `json:"carbs_per_100g"`
	FatsPer100g     float64 `json:"fats_per_100g"`
}

// ExchangeMeta is what the computed weight of a food actually delivers.
type ExchangeMeta struct {
	Cals  int `json:"cals"`
	Pro   int `json:"pro"`
	Carbs int `json:"carbs"`
	Fats  int `json:"fats"`
}

// ExchangeItem is one interchangeable food portion within a group.
type ExchangeItem struct {
	Name       string       `json:"name"`
	ArabicName string       `json:"arabic_name,omitempty"`
	Weight     int          `json:"weight"`
	Unit       string       `json:"unit"`
	Meta       ExchangeMeta `json:"meta"`
}

// ExchangeGroup collects the portions that each hit one macro category's
// per-meal calorie target.
type ExchangeGroup struct {
	Name       string         `json:"name"`
	TargetCals int            `json:"target_cals"`
	Items      []ExchangeItem `json:"items"`
}

// BuildExchangeList converts per-meal calorie targets plus the food reference
// list into portion sizes per category. Returns nil when the food list is
// empty (reference data still loading is a valid state, not an error).
// Carbohydrate portions are scaled by carbAdjustmentPct so a coach can
// inflate or deflate carbs without touching the protein/fat math. Input
// order is preserved within each group.
func BuildExchangeList(perMeal PerMeal, foods []FoodItem, carbAdjustmentPct float64) []ExchangeGroup {
	if len(foods) == 0 {
		return nil
	}

	groups := []ExchangeGroup{
		{Name: GroupProteinSources, TargetCals: perMeal.ProteinCals},
		{Name: GroupCarbohydrates, TargetCals: perMeal.CarbsCals},
		{Name: GroupFats, TargetCals: perMeal.FatsCals},
	}
	carbModifier := 1 + carbAdjustmentPct/100

	for _, food := range foods {
		// Zero or negative energy density would make the required weight
		// meaningless (division by zero), so the row is excluded outright.
		if food.CaloriesPer100g <= 0 {
			continue
		}

		var idx int
		switch strings.ToLower(food.Category) {
		case CategoryProtein:
			idx = 0
		case CategoryCarbs:
			idx = 1
		case CategoryFats:
			idx = 2
		default:
			continue
		}

		requiredWeight := float64(groups[idx].TargetCals) / food.CaloriesPer100g * 100
		if idx == 1 {
			requiredWeight *= carbModifier
		}

		groups[idx].Items = append(groups[idx].Items, ExchangeItem{
			Name:       food.Name,
			ArabicName: food.ArabicName,
			Weight:     round(requiredWeight),
			Unit:       "g",
			Meta: ExchangeMeta{
				Cals:  round(food.CaloriesPer100g * requiredWeight / 100),
				Pro:   round(food.ProteinPer100g * requiredWeight / 100),
				Carbs: round(food.CarbsPer100g * requiredWeight / 100),
				Fats:  round(food.FatsPer100g * requiredWeight / 100),
			},
		})
	}
	return groups
}
