package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AmrIbrahim41/tfg-backend/internal/nutrition"
	"github.com/AmrIbrahim41/tfg-backend/internal/types"
)

func seedFoods(t *testing.T, svc *FoodService) {
	t.Helper()
	trainerID := uuid.New()
	foods := []types.CreateFoodRequest{
		{Name: "Chicken Breast", Category: "Protein", CaloriesPer100g: 165, ProteinPer100g: 31},
		{Name: "White Rice", Category: "carbs", CaloriesPer100g: 130, CarbsPer100g: 28},
		{Name: "Olive Oil", Category: "fats", CaloriesPer100g: 884, FatsPer100g: 100},
	}
	for i := range foods {
		_, err := svc.Create(trainerID, &foods[i])
		require.NoError(t, err)
	}
}

func TestNutritionService_ComputeWithExchangeList(t *testing.T) {
	db := newTestDB(t)
	foodSvc := NewFoodService(db, nil)
	svc := NewNutritionService(db, foodSvc)
	seedFoods(t, foodSvc)

	res, err := svc.Compute(&types.ComputeNutritionRequest{})
	require.NoError(t, err)
	assert.Greater(t, res.TDEE, 0)
	require.Len(t, res.ExchangeList, 3)
	assert.Equal(t, nutrition.GroupProteinSources, res.ExchangeList[0].Name)
	require.Len(t, res.ExchangeList[0].Items, 1)
	assert.Equal(t, "Chicken Breast", res.ExchangeList[0].Items[0].Name)
}

func TestNutritionService_ComputeWithoutFoods(t *testing.T) {
	db := newTestDB(t)
	foodSvc := NewFoodService(db, nil)
	svc := NewNutritionService(db, foodSvc)

	res, err := svc.Compute(&types.ComputeNutritionRequest{})
	require.NoError(t, err)
	assert.Nil(t, res.ExchangeList)
}

func TestNutritionService_SaveAndRecomputePlan(t *testing.T) {
	db := newTestDB(t)
	sub := createTestSubscription(t, db)
	foodSvc := NewFoodService(db, nil)
	svc := NewNutritionService(db, foodSvc)

	age, height, weight := 25, 175.0, 80.0
	deficit, meals := -500, 4
	input := nutrition.Input{
		Gender:         nutrition.Male,
		Age:            &age,
		HeightCm:       &height,
		WeightKg:       &weight,
		ActivityLevel:  nutrition.Moderate,
		DeficitSurplus: &deficit,
		MealsCount:     &meals,
	}

	trainerID := uuid.New()
	plan, err := svc.SavePlan(trainerID, &types.SaveNutritionPlanRequest{
		SubscriptionID: sub.ID.String(),
		Name:           "Cut Phase 1",
		DurationWeeks:  8,
		Input:          input,
		WaterIntake:    3.5,
		DietType:       "High Protein",
	})
	require.NoError(t, err)
	assert.Equal(t, "Cut Phase 1", plan.Name)
	assert.Equal(t, 2249, plan.TargetCalories)
	assert.Equal(t, 176, plan.TargetProtein)

	// The saved calculator state reproduces the same numbers.
	loaded, err := svc.GetPlan(plan.ID)
	require.NoError(t, err)
	recomputed, err := svc.RecomputePlan(loaded)
	require.NoError(t, err)
	assert.Equal(t, 2249, recomputed.TargetCalories)
	assert.Equal(t, 2749, recomputed.TDEE)
}

func TestNutritionService_SavePlanDefaults(t *testing.T) {
	db := newTestDB(t)
	sub := createTestSubscription(t, db)
	svc := NewNutritionService(db, NewFoodService(db, nil))

	plan, err := svc.SavePlan(uuid.New(), &types.SaveNutritionPlanRequest{
		SubscriptionID: sub.ID.String(),
	})
	require.NoError(t, err)
	assert.Equal(t, "New Diet Plan", plan.Name)
	assert.Equal(t, 4, plan.DurationWeeks)
	assert.Equal(t, "TFG", plan.PDFBrandText)
	assert.Equal(t, "Balanced", plan.DietType)
}

func TestNutritionService_SavePlanUnknownSubscription(t *testing.T) {
	db := newTestDB(t)
	svc := NewNutritionService(db, NewFoodService(db, nil))

	_, err := svc.SavePlan(uuid.New(), &types.SaveNutritionPlanRequest{
		SubscriptionID: uuid.New().String(),
	})
	assert.ErrorIs(t, err, ErrSubscriptionNotFound)
}

func TestNutritionService_ListAndDeletePlans(t *testing.T) {
	db := newTestDB(t)
	sub := createTestSubscription(t, db)
	svc := NewNutritionService(db, NewFoodService(db, nil))

	for _, name := range []string{"Week 1", "Week 2"} {
		_, err := svc.SavePlan(uuid.New(), &types.SaveNutritionPlanRequest{
			SubscriptionID: sub.ID.String(),
			Name:           name,
		})
		require.NoError(t, err)
	}

	plans, err := svc.ListPlans(sub.ID)
	require.NoError(t, err)
	require.Len(t, plans, 2)

	require.NoError(t, svc.DeletePlan(plans[0].ID))
	plans, err = svc.ListPlans(sub.ID)
	require.NoError(t, err)
	assert.Len(t, plans, 1)
}

func TestNutritionService_Prefill(t *testing.T) {
	db := newTestDB(t)
	sub := createTestSubscription(t, db)
	subSvc := NewSubscriptionService(db)
	svc := NewNutritionService(db, NewFoodService(db, nil))

	_, err := subSvc.Update(sub.ID, &types.UpdateSubscriptionRequest{
		InBody: &types.InBodyData{Height: 178, Weight: 85, Goal: "Cutting", Activity: "High"},
	})
	require.NoError(t, err)

	prefill, err := svc.Prefill(sub.ClientID)
	require.NoError(t, err)
	require.NotNil(t, prefill.Age)
	assert.Greater(t, *prefill.Age, 0)
	require.NotNil(t, prefill.HeightCm)
	assert.Equal(t, 178.0, *prefill.HeightCm)
	require.NotNil(t, prefill.WeightKg)
	assert.Equal(t, 85.0, *prefill.WeightKg)
	assert.Equal(t, "Cutting", prefill.Goal)
}

func TestNutritionService_PrefillWithoutSubscription(t *testing.T) {
	db := newTestDB(t)
	client := createTestClient(t, db)
	svc := NewNutritionService(db, NewFoodService(db, nil))

	prefill, err := svc.Prefill(client.ID)
	require.NoError(t, err)
	require.NotNil(t, prefill.Age)
	assert.Nil(t, prefill.HeightCm)
}
