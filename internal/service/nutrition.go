package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/AmrIbrahim41/tfg-backend/internal/models"
	"github.com/AmrIbrahim41/tfg-backend/internal/nutrition"
	"github.com/AmrIbrahim41/tfg-backend/internal/types"
)

var ErrNutritionPlanNotFound = errors.New("nutrition plan not found")

type NutritionService struct {
	db   *gorm.DB
	food *FoodService
}

func NewNutritionService(db *gorm.DB, food *FoodService) *NutritionService {
	return &NutritionService{db: db, food: food}
}

// ComputeResult is the calculator response: the engine output plus the
// exchange list derived from it.
type ComputeResult struct {
	nutrition.Result
	ExchangeList []nutrition.ExchangeGroup `json:"exchange_list,omitempty"`
}

// Compute runs the macro engine and, when reference foods exist, builds the
// exchange list against the per-meal targets.
func (s *NutritionService) Compute(req *types.ComputeNutritionRequest) (*ComputeResult, error) {
	res := nutrition.ComputeTargets(req.Input)

	foods, err := s.food.ListAll()
	if err != nil {
		return nil, err
	}

	return &ComputeResult{
		Result:       res,
		ExchangeList: nutrition.BuildExchangeList(res.PerMeal, foods, req.CarbAdjustmentPct),
	}, nil
}

// CalculatorPrefill seeds the calculator form from what is already known
// about the client: age from the birth date, height/weight/activity from the
// latest InBody snapshot.
type CalculatorPrefill struct {
	Age      *int     `json:"age,omitempty"`
	HeightCm *float64 `json:"height_cm,omitempty"`
	WeightKg *float64 `json:"weight_kg,omitempty"`
	Activity string   `json:"activity,omitempty"`
	Goal     string   `json:"goal,omitempty"`
}

func (s *NutritionService) Prefill(clientID uuid.UUID) (*CalculatorPrefill, error) {
	var client models.Client
	if err := s.db.First(&client, "id = ?", clientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}

	prefill := &CalculatorPrefill{}
	if client.BirthDate != nil {
		age := nutrition.AgeAt(*client.BirthDate, time.Now())
		prefill.Age = &age
	}

	var sub models.ClientSubscription
	err := s.db.Where("client_id = ?", clientID).
		Order("start_date DESC").
		First(&sub).Error
	if err == nil {
		if sub.InBodyHeight > 0 {
			h := sub.InBodyHeight
			prefill.HeightCm = &h
		}
		if sub.InBodyWeight > 0 {
			w := sub.InBodyWeight
			prefill.WeightKg = &w
		}
		prefill.Activity = sub.InBodyActivity
		prefill.Goal = sub.InBodyGoal
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return prefill, nil
}

// SavePlan persists a plan card with its calculator state and the computed
// targets so the card renders the same numbers the coach saw.
func (s *NutritionService) SavePlan(trainerID uuid.UUID, req *types.SaveNutritionPlanRequest) (*models.NutritionPlan, error) {
	subID, err := uuid.Parse(req.SubscriptionID)
	if err != nil {
		return nil, errors.New("invalid subscription_id")
	}

	var sub models.ClientSubscription
	if err := s.db.First(&sub, "id = ?", subID).Error; err != nil {
		return nil, ErrSubscriptionNotFound
	}

	plan := models.NutritionPlan{
		SubscriptionID:     subID,
		CreatedByID:        &trainerID,
		CalcSnacks:         req.Snacks,
		CalcCarbAdjustment: req.CarbAdjustmentPct,
		WaterIntake:        req.WaterIntake,
		Notes:              req.Notes,
	}
	plan.Name = "New Diet Plan"
	if req.Name != "" {
		plan.Name = req.Name
	}
	plan.DurationWeeks = 4
	if req.DurationWeeks > 0 {
		plan.DurationWeeks = req.DurationWeeks
	}
	plan.PDFBrandText = "TFG"
	if req.BrandText != "" {
		plan.PDFBrandText = req.BrandText
	}
	plan.DietType = models.DietBalanced
	if req.DietType != "" {
		plan.DietType = req.DietType
	}
	plan.SetEngineInput(req.Input)
	plan.ApplyTargets(nutrition.ComputeTargets(req.Input))

	if err := s.db.Create(&plan).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

func (s *NutritionService) GetPlan(id uuid.UUID) (*models.NutritionPlan, error) {
	var plan models.NutritionPlan
	if err := s.db.First(&plan, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNutritionPlanNotFound
		}
		return nil, err
	}
	return &plan, nil
}

// ListPlans returns the saved plan cards for a subscription, newest first.
func (s *NutritionService) ListPlans(subscriptionID uuid.UUID) ([]models.NutritionPlan, error) {
	var plans []models.NutritionPlan
	if err := s.db.Where("subscription_id = ?", subscriptionID).
		Order("created_at DESC").
		Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

func (s *NutritionService) DeletePlan(id uuid.UUID) error {
	res := s.db.Delete(&models.NutritionPlan{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNutritionPlanNotFound
	}
	return nil
}

// RecomputePlan re-runs the engine and exchange list from a saved card's
// calculator state, for rendering the plan PDF.
func (s *NutritionService) RecomputePlan(plan *models.NutritionPlan) (*ComputeResult, error) {
	return s.Compute(&types.ComputeNutritionRequest{
		Input:             plan.EngineInput(),
		CarbAdjustmentPct: float64(plan.CalcCarbAdjustment),
	})
}
