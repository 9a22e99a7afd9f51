package types

import (
	"github.com/AmrIbrahim41/tfg-backend/internal/nutrition"
)

// LoginRequest authenticates a trainer.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest creates a trainer account (admin only).
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	IsAdmin  bool   `json:"is_admin"`
}

// CreateClientRequest covers both adults and children; the UI decides which
// optional fields it shows.
type CreateClientRequest struct {
	Name               string   `json:"name" binding:"required"`
	ManualID           string   `json:"manual_id" binding:"required"`
	Phone              string   `json:"phone" binding:"required"`
	NatureOfWork       string   `json:"nature_of_work"`
	BirthDate          string   `json:"birth_date"` // YYYY-MM-DD, optional
	Address            string   `json:"address"`
	Status             string   `json:"status"`
	Smoking            bool     `json:"smoking"`
	SleepHours         *float64 `json:"sleep_hours"`
	IsChild            bool     `json:"is_child"`
	ParentPhone        string   `json:"parent_phone"`
	Notes              string   `json:"notes"`
	Country            string   `json:"country"`
	TrainedGymBefore   bool     `json:"trained_gym_before"`
	TrainedCoachBefore bool     `json:"trained_coach_before"`
	Injuries           string   `json:"injuries"`
}

// UpdateClientRequest uses pointers so omitted fields are left untouched.
type UpdateClientRequest struct {
	Name               *string  `json:"name"`
	Phone              *string  `json:"phone"`
	NatureOfWork       *string  `json:"nature_of_work"`
	BirthDate          *string  `json:"birth_date"`
	Address            *string  `json:"address"`
	Status             *string  `json:"status"`
	Smoking            *bool    `json:"smoking"`
	SleepHours         *float64 `json:"sleep_hours"`
	ParentPhone        *string  `json:"parent_phone"`
	Notes              *string  `json:"notes"`
	Country            *string  `json:"country"`
	TrainedGymBefore   *bool    `json:"trained_gym_before"`
	TrainedCoachBefore *bool    `json:"trained_coach_before"`
	Injuries           *string  `json:"injuries"`
}

// InBodyData is the body-composition snapshot carried by a subscription.
type InBodyData struct {
	Height   float64 `json:"height"`
	Weight   float64 `json:"weight"`
	Muscle   float64 `json:"muscle"`
	Fat      float64 `json:"fat"`
	TBW      float64 `json:"tbw"`
	Goal     string  `json:"goal"`
	Activity string  `json:"activity"`
	Notes    string  `json:"notes"`
}

// CreateSubscriptionRequest starts a subscription period for a client.
// EndDate is normally left empty and derived from the plan duration.
type CreateSubscriptionRequest struct {
	ClientID  string      `json:"client_id" binding:"required"`
	PlanID    string      `json:"plan_id" binding:"required"`
	TrainerID string      `json:"trainer_id"`
	StartDate string      `json:"start_date"` // YYYY-MM-DD, defaults to today
	EndDate   string      `json:"end_date"`
	InBody    *InBodyData `json:"inbody"`
}

// UpdateSubscriptionRequest edits a period without shifting its end date
// unless one is explicitly provided.
type UpdateSubscriptionRequest struct {
	IsActive     *bool       `json:"is_active"`
	SessionsUsed *int        `json:"sessions_used"`
	EndDate      *string     `json:"end_date"`
	InBody       *InBodyData `json:"inbody"`
}

// CreatePlanRequest defines a sellable package.
type CreatePlanRequest struct {
	Name         string  `json:"name" binding:"required"`
	Units        int     `json:"units" binding:"required"`
	DurationDays int     `json:"duration_days" binding:"required"`
	Price        float64 `json:"price"`
	IsChildPlan  bool    `json:"is_child_plan"`
}

// ComputeNutritionRequest is the stateless calculator call: engine input plus
// the carb adjustment applied to the exchange list.
type ComputeNutritionRequest struct {
	Input             nutrition.Input `json:"input"`
	CarbAdjustmentPct float64         `json:"carb_adjustment_pct"`
}

// SaveNutritionPlanRequest persists a plan card against a subscription.
type SaveNutritionPlanRequest struct {
	SubscriptionID    string          `json:"subscription_id" binding:"required"`
	Name              string          `json:"name"`
	DurationWeeks     int             `json:"duration_weeks"`
	Input             nutrition.Input `json:"input"`
	Snacks            int             `json:"snacks"`
	CarbAdjustmentPct int             `json:"carb_adjustment_pct"`
	BrandText         string          `json:"brand_text"`
	WaterIntake       float64         `json:"water_intake"`
	DietType          string          `json:"diet_type"`
	Notes             string          `json:"notes"`
}

// CreateFoodRequest adds a row to the food reference database.
type CreateFoodRequest struct {
	Name            string  `json:"name" binding:"required"`
	ArabicName      string  `json:"arabic_name"`
	Category        string  `json:"category" binding:"required"`
	CaloriesPer100g float64 `json:"calories_per_100g" binding:"required"`
	ProteinPer100g  float64 `json:"protein_per_100g"`
	CarbsPer100g    float64 `json:"carbs_per_100g"`
	FatsPer100g     float64 `json:"fats_per_100g"`
	FiberPer100g    float64 `json:"fiber_per_100g"`
	ServingUnit     string  `json:"serving_unit"`
	GramsPerServing float64 `json:"grams_per_serving"`
	IsVerified      bool    `json:"is_verified"`
}

// SetRequest is one set row inside an exercise.
type SetRequest struct {
	Order     int    `json:"order"`
	Reps      string `json:"reps"`
	Weight    string `json:"weight"`
	Technique string `json:"technique"`
	Equipment string `json:"equipment"`
}

// ExerciseRequest is one exercise with its sets.
type ExerciseRequest struct {
	Order int          `json:"order"`
	Name  string       `json:"name" binding:"required"`
	Note  string       `json:"note"`
	Sets  []SetRequest `json:"sets"`
}

// SplitRequest is one day of a training cycle.
type SplitRequest struct {
	Order     int               `json:"order"`
	Name      string            `json:"name" binding:"required"`
	Exercises []ExerciseRequest `json:"exercises"`
}

// CreateTrainingPlanRequest replaces the split template for a subscription.
type CreateTrainingPlanRequest struct {
	SubscriptionID string         `json:"subscription_id" binding:"required"`
	CycleLength    int            `json:"cycle_length" binding:"required"`
	Splits         []SplitRequest `json:"splits"`
}

// CreateSessionRequest opens session N from a split template.
type CreateSessionRequest struct {
	SubscriptionID string `json:"subscription_id" binding:"required"`
	SessionNumber  int    `json:"session_number" binding:"required"`
	SplitID        string `json:"split_id"`
}

// CompleteSessionRequest records the final state of a logged session.
type CompleteSessionRequest struct {
	Date      string            `json:"date"` // YYYY-MM-DD, defaults to today
	Exercises []ExerciseRequest `json:"exercises"`
}
