// Package nutrition holds the pure calculation core of the coaching app:
// the macro calculator, the food exchange-list builder, and the shared age
// helper. Nothing in this package touches the database or the network, so
// every function can run on each form change without debouncing.
package nutrition

import "math"

// Gender values accepted by the calculator.
const (
	Male   = "male"
	Female = "female"
)

// Activity level keys. The multipliers are the single source of truth for
// valid levels; anything else falls back to sedentary.
const (
	Sedentary  = "sedentary"
	Light      = "light"
	Moderate   = "moderate"
	Active     = "active"
	VeryActive = "very_active"
)

var activityMultipliers = map[string]float64{
	Sedentary:  1.2,
	Light:      1.375,
	Moderate:   1.55,
	Active:     1.725,
	VeryActive: 1.9,
}

// LbsPerKg converts kilograms to pounds.
const LbsPerKg = 2.20462

// WarningMacrosExceedTarget is attached to a Result when protein and fat
// calories alone exceed the calorie target. Carbs clamp to zero in that case.
const WarningMacrosExceedTarget = "Macros exceed Target Calories! Increase Calories or lower Fats/Protein."

// Defaults used when an Input field is absent.
const (
	DefaultGender        = Male
	DefaultAge           = 25
	DefaultHeightCm      = 170.0
	DefaultWeightKg      = 80.0
	DefaultActivityLevel = Moderate
	DefaultFatPercentage = 25.0
	DefaultProteinPerLb  = 1.0
	DefaultMealsCount    = 4
)

// Input carries one calculation's parameters. Numeric fields are pointers so
// that "absent" is distinguishable from an explicit zero: absent fields take
// the documented defaults, present fields are clamped to their valid range.
// Parsing of raw form text happens at the API boundary; by the time a value
// reaches this struct it is a number or nil.
type Input struct {
	Gender         string   `json:"gender"`
	Age            *int     `json:"age"`
	HeightCm       *float64 `json:"height_cm"`
	WeightKg       *float64 `json:"weight_kg"`
	ActivityLevel  string   `json:"activity_level"`
	DeficitSurplus *int     `json:"deficit_surplus"`
	FatPercentage  *float64 `json:"fat_percentage"`
	ProteinPerLb   *float64 `json:"protein_per_lb"`
	MealsCount     *int     `json:"meals_count"`
}

// Macro is one macro's daily allocation.
type Macro struct {
	Grams int `json:"grams"`
	Cals  int `json:"cals"`
	Pct   int `json:"pct"`
}

// Fiber has no calorie budget of its own, only a gram recommendation.
type Fiber struct {
	Grams int `json:"grams"`
}

// Macros is the full daily breakdown.
type Macros struct {
	Protein Macro `json:"protein"`
	Fats    Macro `json:"fats"`
	Carbs   Macro `json:"carbs"`
	Fiber   Fiber `json:"fiber"`
}

// PerMeal splits each daily value evenly across the configured meal count.
// Each field is rounded independently; the small aggregate drift across meals
// is deliberate and matches the printed plans clients already have.
type PerMeal struct {
	ProteinCals  int `json:"protein_cals"`
	CarbsCals    int `json:"carbs_cals"`
	FatsCals     int `json:"fats_cals"`
	ProteinGrams int `json:"protein_grams"`
	CarbsGrams   int `json:"carbs_grams"`
	FatsGrams    int `json:"fats_grams"`
}

// Result is the full output of one calculation. It is recomputed from scratch
// on every input change and carries no identity of its own.
type Result struct {
	TDEE           int     `json:"tdee"`
	TargetCalories int     `json:"target_calories"`
	Warning        string  `json:"warning,omitempty"`
	Macros         Macros  `json:"macros"`
	PerMeal        PerMeal `json:"per_meal"`
}

// round matches JavaScript's Math.round (half rounds toward +infinity).
// Printed plans were validated against these exact rounding artifacts, so we
// reproduce them rather than use math.Round.
func round(x float64) int {
	return int(math.Floor(x + 0.5))
}

func intOr(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}

func floatOr(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}

// ComputeTargets derives daily energy expenditure, target intake, the macro
// and fiber breakdown, and an even per-meal split from body metrics and diet
// strategy. It never fails: missing fields default, out-of-range values
// clamp, and the only user-visible fault is Result.Warning.
func ComputeTargets(in Input) Result {
	gender := in.Gender
	if gender == "" {
		gender = DefaultGender
	}
	level := in.ActivityLevel
	if level == "" {
		level = DefaultActivityLevel
	}

	age := intOr(in.Age, DefaultAge)
	if age < 0 {
		age = 0
	}
	heightCm := math.Max(0, floatOr(in.HeightCm, DefaultHeightCm))
	weightKg := math.Max(0, floatOr(in.WeightKg, DefaultWeightKg))
	meals := intOr(in.MealsCount, DefaultMealsCount)
	if meals < 1 {
		meals = 1
	}
	fatPct := math.Max(0, floatOr(in.FatPercentage, DefaultFatPercentage))
	proteinPerLb := math.Max(0, floatOr(in.ProteinPerLb, DefaultProteinPerLb))
	deficitSurplus := intOr(in.DeficitSurplus, 0)

	weightLbs := weightKg * LbsPerKg

	// Mifflin-St Jeor BMR
	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if gender == Male {
		bmr += 5
	} else {
		bmr -= 161
	}

	mult, ok := activityMultipliers[level]
	if !ok {
		mult = activityMultipliers[Sedentary]
	}
	tdee := round(bmr * mult)
	target := tdee + deficitSurplus

	proteinGrams := round(weightLbs * proteinPerLb)
	proteinCals := proteinGrams * 4

	fatCals := round(float64(target) * fatPct / 100)
	fatGrams := round(float64(fatCals) / 9)

	remainingCals := target - proteinCals - fatCals
	warning := ""
	if remainingCals < 0 {
		warning = WarningMacrosExceedTarget
		remainingCals = 0
	}
	carbGrams := round(float64(remainingCals) / 4)

	fiberGrams := round(float64(target) / 1000 * 14)

	pct := func(cals int) int {
		if target == 0 {
			return 0
		}
		return round(float64(cals) / float64(target) * 100)
	}

	perMeal := func(v int) int {
		return round(float64(v) / float64(meals))
	}

	return Result{
		TDEE:           tdee,
		TargetCalories: target,
		Warning:        warning,
		Macros: Macros{
			Protein: Macro{Grams: proteinGrams, Cals: proteinCals, Pct: pct(proteinCals)},
			Fats:    Macro{Grams: fatGrams, Cals: fatCals, Pct: pct(fatCals)},
			Carbs:   Macro{Grams: carbGrams, Cals: remainingCals, Pct: pct(remainingCals)},
			Fiber:   Fiber{Grams: fiberGrams},
		},
		PerMeal: PerMeal{
			ProteinCals:  perMeal(proteinCals),
			CarbsCals:    perMeal(remainingCals),
			FatsCals:     perMeal(fatCals),
			ProteinGrams: perMeal(proteinGrams),
			CarbsGrams:   perMeal(carbGrams),
			FatsGrams:    perMeal(fatGrams),
		},
	}
}
