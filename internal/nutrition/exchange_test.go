package nutrition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chickenBreast() FoodItem {
	return FoodItem{
		Name:            "Chicken Breast",
		ArabicName:      "صدور دجاج",
		Category:        "protein",
		CaloriesPer100g: 165,
		ProteinPer100g:  31,
		CarbsPer100g:    0,
		FatsPer100g:     3.6,
	}
}

func whiteRice() FoodItem {
	return FoodItem{
		Name:            "White Rice",
		Category:        "carbs",
		CaloriesPer100g: 130,
		ProteinPer100g:  2.7,
		CarbsPer100g:    28,
		FatsPer100g:     0.3,
	}
}

func TestBuildExchangeList_EmptyFoodList(t *testing.T) {
	groups := BuildExchangeList(PerMeal{ProteinCals: 176}, nil, 0)
	assert.Nil(t, groups)

	groups = BuildExchangeList(PerMeal{ProteinCals: 176}, []FoodItem{}, 0)
	assert.Nil(t, groups)
}

func TestBuildExchangeList_ProteinWeightScenario(t *testing.T) {
	perMeal := PerMeal{ProteinCals: 176, CarbsCals: 246, FatsCals: 141}
	groups := BuildExchangeList(perMeal, []FoodItem{chickenBreast()}, 0)
	require.Len(t, groups, 3)

	assert.Equal(t, GroupProteinSources, groups[0].Name)
	assert.Equal(t, GroupCarbohydrates, groups[1].Name)
	assert.Equal(t, GroupFats, groups[2].Name)
	assert.Equal(t, 176, groups[0].TargetCals)

	require.Len(t, groups[0].Items, 1)
	item := groups[0].Items[0]
	// requiredWeight = 176/165*100 = 106.66… → 107
	assert.Equal(t, 107, item.Weight)
	assert.Equal(t, "g", item.Unit)
	// meta scales per-100g values by the unrounded weight: 165*1.0666… = 176
	assert.Equal(t, 176, item.Meta.Cals)
	assert.Equal(t, 33, item.Meta.Pro)
	assert.Equal(t, "صدور دجاج", item.ArabicName)

	assert.Empty(t, groups[1].Items)
	assert.Empty(t, groups[2].Items)
}

func TestBuildExchangeList_CarbAdjustmentScalesLinearly(t *testing.T) {
	perMeal := PerMeal{CarbsCals: 246}

	base := BuildExchangeList(perMeal, []FoodItem{whiteRice()}, 0)
	boosted := BuildExchangeList(perMeal, []FoodItem{whiteRice()}, 50)
	require.Len(t, base[1].Items, 1)
	require.Len(t, boosted[1].Items, 1)

	// +50% carb adjustment yields exactly 1.5x the weight, within rounding.
	assert.InDelta(t, float64(base[1].Items[0].Weight)*1.5, float64(boosted[1].Items[0].Weight), 1)
}

func TestBuildExchangeList_SkipsInvalidRows(t *testing.T) {
	foods := []FoodItem{
		{Name: "Water", Category: "protein", CaloriesPer100g: 0},
		{Name: "Mystery", Category: "supplements", CaloriesPer100g: 400},
		chickenBreast(),
	}
	groups := BuildExchangeList(PerMeal{ProteinCals: 176}, foods, 0)
	require.Len(t, groups, 3)

	require.Len(t, groups[0].Items, 1)
	assert.Equal(t, "Chicken Breast", groups[0].Items[0].Name)
}

func TestBuildExchangeList_CategoryMatchIsCaseInsensitive(t *testing.T) {
	food := chickenBreast()
	food.Category = "Protein"
	groups := BuildExchangeList(PerMeal{ProteinCals: 176}, []FoodItem{food}, 0)
	assert.Len(t, groups[0].Items, 1)
}

func TestBuildExchangeList_PreservesInputOrder(t *testing.T) {
	a := chickenBreast()
	b := chickenBreast()
	b.Name = "Turkey Breast"
	b.CaloriesPer100g = 135

	groups := BuildExchangeList(PerMeal{ProteinCals: 176}, []FoodItem{a, b}, 0)
	require.Len(t, groups[0].Items, 2)
	assert.Equal(t, "Chicken Breast", groups[0].Items[0].Name)
	assert.Equal(t, "Turkey Breast", groups[0].Items[1].Name)
}

func TestBuildExchangeList_ZeroTargetKeepsZeroWeightItems(t *testing.T) {
	groups := BuildExchangeList(PerMeal{}, []FoodItem{chickenBreast()}, 0)
	require.Len(t, groups[0].Items, 1)
	assert.Equal(t, 0, groups[0].Items[0].Weight)
}

func TestValidCategory(t *testing.T) {
	assert.True(t, ValidCategory("protein"))
	assert.True(t, ValidCategory("Carbs"))
	assert.True(t, ValidCategory("FATS"))
	assert.False(t, ValidCategory("vegetables"))
	assert.False(t, ValidCategory(""))
}
