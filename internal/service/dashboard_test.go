package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AmrIbrahim41/tfg-backend/internal/types"
)

func TestDashboardService_Stats(t *testing.T) {
	db := newTestDB(t)
	sub := createTestSubscription(t, db)

	trainingSvc := NewTrainingService(db)
	session, err := trainingSvc.CreateSession(&types.CreateSessionRequest{
		SubscriptionID: sub.ID.String(),
		SessionNumber:  1,
	})
	require.NoError(t, err)
	_, err = trainingSvc.CompleteSession(session.ID, uuid.New(), &types.CompleteSessionRequest{})
	require.NoError(t, err)

	nutritionSvc := NewNutritionService(db, NewFoodService(db, nil))
	_, err = nutritionSvc.SavePlan(uuid.New(), &types.SaveNutritionPlanRequest{
		SubscriptionID: sub.ID.String(),
	})
	require.NoError(t, err)

	stats, err := NewDashboardService(db).Stats()
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalClients)
	assert.Equal(t, int64(1), stats.ActiveClients)
	assert.Equal(t, int64(0), stats.ChildClients)
	assert.Equal(t, int64(1), stats.ActiveSubscriptions)
	assert.Equal(t, int64(1), stats.SessionsToday)
	assert.Equal(t, int64(1), stats.SavedNutritionPlans)
}

func TestDashboardService_EmptyDatabase(t *testing.T) {
	db := newTestDB(t)

	stats, err := NewDashboardService(db).Stats()
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.TotalClients)
	assert.Equal(t, int64(0), stats.ActiveSubscriptions)
}
