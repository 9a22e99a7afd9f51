package nutrition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

// fullInput is the worked example every printed plan was validated against.
func fullInput() Input {
	return Input{
		Gender:         Male,
		Age:            intPtr(25),
		HeightCm:       floatPtr(175),
		WeightKg:       floatPtr(80),
		ActivityLevel:  Moderate,
		DeficitSurplus: intPtr(-500),
		FatPercentage:  floatPtr(25),
		ProteinPerLb:   floatPtr(1.0),
		MealsCount:     intPtr(4),
	}
}

func TestComputeTargets_KnownScenario(t *testing.T) {
	res := ComputeTargets(fullInput())

	// bmr = 10*80 + 6.25*175 - 5*25 + 5 = 1773.75
	assert.Equal(t, 2749, res.TDEE)
	assert.Equal(t, 2249, res.TargetCalories)
	assert.Empty(t, res.Warning)

	assert.Equal(t, 176, res.Macros.Protein.Grams)
	assert.Equal(t, 704, res.Macros.Protein.Cals)
	assert.Equal(t, 562, res.Macros.Fats.Cals)
	assert.Equal(t, 62, res.Macros.Fats.Grams)
	assert.Equal(t, 983, res.Macros.Carbs.Cals)
	assert.Equal(t, 246, res.Macros.Carbs.Grams)
	assert.Equal(t, 31, res.Macros.Fiber.Grams)

	assert.Equal(t, 176, res.PerMeal.ProteinCals)
	assert.Equal(t, 246, res.PerMeal.CarbsCals)
	assert.Equal(t, 141, res.PerMeal.FatsCals)
	assert.Equal(t, 44, res.PerMeal.ProteinGrams)
}

func TestComputeTargets_Deterministic(t *testing.T) {
	a := ComputeTargets(fullInput())
	b := ComputeTargets(fullInput())
	assert.Equal(t, a, b)
}

func TestComputeTargets_EmptyInputUsesDefaults(t *testing.T) {
	res := ComputeTargets(Input{})

	// bmr = 10*80 + 6.25*170 - 5*25 + 5 = 1742.5; tdee = round(1742.5*1.55)
	assert.Equal(t, 2701, res.TDEE)
	assert.Equal(t, 2701, res.TargetCalories)
	assert.Empty(t, res.Warning)
	assert.Equal(t, round(80*LbsPerKg), res.Macros.Protein.Grams)
}

func TestComputeTargets_FemaleConstant(t *testing.T) {
	in := fullInput()
	in.Gender = Female
	res := ComputeTargets(in)

	// bmr drops by 166 (from +5 to -161): 1607.75 * 1.55 = 2492.0125
	assert.Equal(t, 2492, res.TDEE)
}

func TestComputeTargets_UnknownActivityFallsBackToSedentary(t *testing.T) {
	in := fullInput()
	in.ActivityLevel = "ultra"
	res := ComputeTargets(in)

	assert.Equal(t, round(1773.75*1.2), res.TDEE)
}

func TestComputeTargets_MacroInfeasibilityWarns(t *testing.T) {
	in := fullInput()
	in.ProteinPerLb = floatPtr(3)
	in.FatPercentage = floatPtr(90)
	in.DeficitSurplus = intPtr(-2000)
	res := ComputeTargets(in)

	require.NotEmpty(t, res.Warning)
	assert.Equal(t, WarningMacrosExceedTarget, res.Warning)
	assert.Equal(t, 0, res.Macros.Carbs.Grams)
	assert.Equal(t, 0, res.Macros.Carbs.Cals)
	// Fiber is independent of the macro warning.
	assert.Equal(t, round(float64(res.TargetCalories)/1000*14), res.Macros.Fiber.Grams)
}

func TestComputeTargets_PercentagesSumToRoughly100(t *testing.T) {
	cases := []struct {
		name string
		mut  func(*Input)
	}{
		{"baseline", func(in *Input) {}},
		{"surplus", func(in *Input) { in.DeficitSurplus = intPtr(300) }},
		{"lean female", func(in *Input) {
			in.Gender = Female
			in.WeightKg = floatPtr(58)
			in.HeightCm = floatPtr(164)
		}},
		{"high protein", func(in *Input) { in.ProteinPerLb = floatPtr(1.4) }},
		{"three meals", func(in *Input) { in.MealsCount = intPtr(3) }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := fullInput()
			tc.mut(&in)
			res := ComputeTargets(in)
			require.Empty(t, res.Warning)

			sum := res.Macros.Protein.Pct + res.Macros.Fats.Pct + res.Macros.Carbs.Pct
			assert.InDelta(t, 100, sum, 1, "pct sum %d out of tolerance", sum)
		})
	}
}

func TestComputeTargets_PerMealConservation(t *testing.T) {
	for _, meals := range []int{1, 2, 3, 4, 5, 6} {
		in := fullInput()
		in.MealsCount = intPtr(meals)
		res := ComputeTargets(in)

		assert.InDelta(t, res.Macros.Protein.Cals, res.PerMeal.ProteinCals*meals, float64(meals),
			"protein cals drift too large for %d meals", meals)
		assert.InDelta(t, res.Macros.Carbs.Cals, res.PerMeal.CarbsCals*meals, float64(meals))
		assert.InDelta(t, res.Macros.Fats.Cals, res.PerMeal.FatsCals*meals, float64(meals))
	}
}

func TestComputeTargets_ClampsOutOfRangeInputs(t *testing.T) {
	in := Input{
		Age:        intPtr(-4),
		HeightCm:   floatPtr(-170),
		WeightKg:   floatPtr(-80),
		MealsCount: intPtr(0),
	}
	res := ComputeTargets(in)

	// Weight and height clamp to zero, so protein grams are zero and the
	// per-meal divisor is floored at one meal.
	assert.Equal(t, 0, res.Macros.Protein.Grams)
	assert.Equal(t, res.Macros.Fats.Cals, res.PerMeal.FatsCals)
}

func TestComputeTargets_ZeroTargetYieldsZeroPercents(t *testing.T) {
	in := fullInput()
	res := ComputeTargets(in)
	in.DeficitSurplus = intPtr(-res.TDEE)

	res = ComputeTargets(in)
	assert.Equal(t, 0, res.TargetCalories)
	assert.Equal(t, 0, res.Macros.Protein.Pct)
	assert.Equal(t, 0, res.Macros.Fats.Pct)
	assert.Equal(t, 0, res.Macros.Carbs.Pct)
}

func TestRound_MatchesSourceRounding(t *testing.T) {
	// Half values round toward +infinity, matching the rounding the printed
	// plans were generated with.
	assert.Equal(t, 1, round(0.5))
	assert.Equal(t, 0, round(-0.5))
	assert.Equal(t, -1, round(-1.5))
	assert.Equal(t, 2, round(1.5))
}
