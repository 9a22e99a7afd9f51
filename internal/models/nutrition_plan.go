package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/AmrIbrahim41/tfg-backend/internal/nutrition"
)

// Diet type labels shown on the plan card.
const (
	DietBalanced      = "Balanced"
	DietHighProtein   = "High Protein"
	DietLowCarb       = "Low Carb"
	DietKeto          = "Keto"
	DietVegan         = "Vegan"
	DietMediterranean = "Mediterranean"
)

// NutritionPlan is a saved plan card: the full calculator state plus the
// computed targets at save time. The calculator state round-trips losslessly
// through nutrition.Input so reopening a card restores the exact form.
type NutritionPlan struct {
	ID        uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	SubscriptionID uuid.UUID  `gorm:"type:varchar(36);not null;index" json:"subscription_id"`
	CreatedByID    *uuid.UUID `gorm:"type:varchar(36)" json:"created_by_id"`

	Name          string `gorm:"size:100;not null;default:'New Diet Plan'" json:"name"`
	DurationWeeks int    `gorm:"not null;default:4" json:"duration_weeks"`

	// Calculator state (saved inputs)
	CalcGender         string   `gorm:"size:10;default:'male'" json:"calc_gender"`
	CalcAge            *int     `json:"calc_age"`
	CalcHeight         *float64 `json:"calc_height"`
	CalcWeight         *float64 `json:"calc_weight"`
	CalcActivityLevel  string   `gorm:"size:20;default:'moderate'" json:"calc_activity_level"`
	CalcDeficitSurplus *int     `json:"calc_deficit_surplus"`
	CalcFatPercent     *float64 `json:"calc_fat_percent"`
	CalcProteinPerLb   *float64 `json:"calc_protein_per_lb"`
	CalcMeals          *int     `json:"calc_meals"`
	CalcSnacks         int      `gorm:"not null;default:0" json:"calc_snacks"`
	CalcCarbAdjustment int      `gorm:"not null;default:0" json:"calc_carb_adjustment"`
	PDFBrandText       string   `gorm:"size:50;default:'TFG'" json:"pdf_brand_text"`

	// Computed targets at save time
	TargetCalories int `gorm:"not null;default:0" json:"target_calories"`
	TargetProtein  int `gorm:"not null;default:0" json:"target_protein"`
	TargetCarbs    int `gorm:"not null;default:0" json:"target_carbs"`
	TargetFats     int `gorm:"not null;default:0" json:"target_fats"`

	WaterIntake float64 `gorm:"not null;default:3" json:"water_intake"`
	DietType    string  `gorm:"size:50;not null;default:'Balanced'" json:"diet_type"`
	Notes       string  `gorm:"type:text" json:"notes"`
}

func (p *NutritionPlan) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// EngineInput rebuilds the calculator input this plan was saved with.
func (p *NutritionPlan) EngineInput() nutrition.Input {
	return nutrition.Input{
		Gender:         p.CalcGender,
		Age:            p.CalcAge,
		HeightCm:       p.CalcHeight,
		WeightKg:       p.CalcWeight,
		ActivityLevel:  p.CalcActivityLevel,
		DeficitSurplus: p.CalcDeficitSurplus,
		FatPercentage:  p.CalcFatPercent,
		ProteinPerLb:   p.CalcProteinPerLb,
		MealsCount:     p.CalcMeals,
	}
}

// SetEngineInput stores the calculator state for round-tripping.
func (p *NutritionPlan) SetEngineInput(in nutrition.Input) {
	p.CalcGender = in.Gender
	p.CalcAge = in.Age
	p.CalcHeight = in.HeightCm
	p.CalcWeight = in.WeightKg
	p.CalcActivityLevel = in.ActivityLevel
	p.CalcDeficitSurplus = in.DeficitSurplus
	p.CalcFatPercent = in.FatPercentage
	p.CalcProteinPerLb = in.ProteinPerLb
	p.CalcMeals = in.MealsCount
}

// ApplyTargets snapshots the engine's output onto the card.
func (p *NutritionPlan) ApplyTargets(res nutrition.Result) {
	p.TargetCalories = res.TargetCalories
	p.TargetProtein = res.Macros.Protein.Grams
	p.TargetCarbs = res.Macros.Carbs.Grams
	p.TargetFats = res.Macros.Fats.Grams
}
