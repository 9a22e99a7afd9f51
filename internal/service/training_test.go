package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AmrIbrahim41/tfg-backend/internal/types"
)

func trainingPlanRequest(subID string) *types.CreateTrainingPlanRequest {
	return &types.CreateTrainingPlanRequest{
		SubscriptionID: subID,
		CycleLength:    3,
		Splits: []types.SplitRequest{
			{
				Name: "Push",
				Exercises: []types.ExerciseRequest{
					{
						Name: "Bench Press",
						Sets: []types.SetRequest{
							{Reps: "8-12", Weight: "60", Equipment: "Barbell"},
							{Reps: "8-12", Weight: "65", Equipment: "Barbell"},
						},
					},
					{Name: "Overhead Press", Note: "strict form"},
				},
			},
			{
				Name: "Pull",
				Exercises: []types.ExerciseRequest{
					{Name: "Deadlift", Sets: []types.SetRequest{
						{Reps: "5", Weight: "100", Technique: "Pyramid"},
					}},
				},
			},
			{Name: "Legs"},
		},
	}
}

func TestTrainingService_SaveAndGetPlan(t *testing.T) {
	db := newTestDB(t)
	sub := createTestSubscription(t, db)
	svc := NewTrainingService(db)

	plan, err := svc.SavePlan(trainingPlanRequest(sub.ID.String()))
	require.NoError(t, err)
	require.Len(t, plan.Splits, 3)

	push := plan.Splits[0]
	assert.Equal(t, "Push", push.Name)
	assert.Equal(t, 1, push.Order)
	require.Len(t, push.Exercises, 2)
	require.Len(t, push.Exercises[0].Sets, 2)
	// Empty technique falls back to Regular.
	assert.Equal(t, "Regular", push.Exercises[0].Sets[0].Technique)
	assert.Equal(t, "Pyramid", plan.Splits[1].Exercises[0].Sets[0].Technique)
}

func TestTrainingService_SavePlanReplacesTemplate(t *testing.T) {
	db := newTestDB(t)
	sub := createTestSubscription(t, db)
	svc := NewTrainingService(db)

	_, err := svc.SavePlan(trainingPlanRequest(sub.ID.String()))
	require.NoError(t, err)

	plan, err := svc.SavePlan(&types.CreateTrainingPlanRequest{
		SubscriptionID: sub.ID.String(),
		CycleLength:    2,
		Splits: []types.SplitRequest{
			{Name: "Upper"},
			{Name: "Lower"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, plan.CycleLength)
	require.Len(t, plan.Splits, 2)
	assert.Equal(t, "Upper", plan.Splits[0].Name)
}

func TestTrainingService_CreateSessionCopiesSplit(t *testing.T) {
	db := newTestDB(t)
	sub := createTestSubscription(t, db)
	svc := NewTrainingService(db)

	_, err := svc.SavePlan(trainingPlanRequest(sub.ID.String()))
	require.NoError(t, err)

	session, err := svc.CreateSession(&types.CreateSessionRequest{
		SubscriptionID: sub.ID.String(),
		SessionNumber:  1,
	})
	require.NoError(t, err)
	assert.Equal(t, "Push", session.Name)
	require.Len(t, session.Exercises, 2)
	assert.Equal(t, "Bench Press", session.Exercises[0].Name)
	require.Len(t, session.Exercises[0].Sets, 2)
	assert.False(t, session.IsCompleted)

	// Session 4 wraps the 3-day cycle back to the first split.
	wrapped, err := svc.CreateSession(&types.CreateSessionRequest{
		SubscriptionID: sub.ID.String(),
		SessionNumber:  4,
	})
	require.NoError(t, err)
	assert.Equal(t, "Push", wrapped.Name)
}

func TestTrainingService_CreateSessionRejectsDuplicateNumber(t *testing.T) {
	db := newTestDB(t)
	sub := createTestSubscription(t, db)
	svc := NewTrainingService(db)

	_, err := svc.CreateSession(&types.CreateSessionRequest{
		SubscriptionID: sub.ID.String(),
		SessionNumber:  1,
	})
	require.NoError(t, err)

	_, err = svc.CreateSession(&types.CreateSessionRequest{
		SubscriptionID: sub.ID.String(),
		SessionNumber:  1,
	})
	assert.ErrorIs(t, err, ErrSessionExists)
}

func TestTrainingService_TemplateEditDoesNotRewriteHistory(t *testing.T) {
	db := newTestDB(t)
	sub := createTestSubscription(t, db)
	svc := NewTrainingService(db)

	_, err := svc.SavePlan(trainingPlanRequest(sub.ID.String()))
	require.NoError(t, err)

	session, err := svc.CreateSession(&types.CreateSessionRequest{
		SubscriptionID: sub.ID.String(),
		SessionNumber:  1,
	})
	require.NoError(t, err)

	_, err = svc.SavePlan(&types.CreateTrainingPlanRequest{
		SubscriptionID: sub.ID.String(),
		CycleLength:    1,
		Splits:         []types.SplitRequest{{Name: "Full Body"}},
	})
	require.NoError(t, err)

	reloaded, err := svc.GetSession(session.ID)
	require.NoError(t, err)
	assert.Equal(t, "Push", reloaded.Name)
	assert.Len(t, reloaded.Exercises, 2)
}

func TestTrainingService_CompleteSession(t *testing.T) {
	db := newTestDB(t)
	sub := createTestSubscription(t, db)
	svc := NewTrainingService(db)
	subSvc := NewSubscriptionService(db)

	_, err := svc.SavePlan(trainingPlanRequest(sub.ID.String()))
	require.NoError(t, err)

	session, err := svc.CreateSession(&types.CreateSessionRequest{
		SubscriptionID: sub.ID.String(),
		SessionNumber:  1,
	})
	require.NoError(t, err)

	trainerID := uuid.New()
	completed, err := svc.CompleteSession(session.ID, trainerID, &types.CompleteSessionRequest{
		Date: "2026-08-05",
		Exercises: []types.ExerciseRequest{
			{Name: "Bench Press", Sets: []types.SetRequest{
				{Reps: "10", Weight: "62.5"},
			}},
		},
	})
	require.NoError(t, err)
	assert.True(t, completed.IsCompleted)
	require.NotNil(t, completed.DateCompleted)
	assert.Equal(t, "2026-08-05", completed.DateCompleted.Format("2006-01-02"))
	require.NotNil(t, completed.CompletedByID)
	assert.Equal(t, trainerID, *completed.CompletedByID)
	require.Len(t, completed.Exercises, 1)
	assert.Equal(t, "62.5", completed.Exercises[0].Sets[0].Weight)

	reloaded, err := subSvc.Get(sub.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, reloaded.SessionsUsed)

	_, err = svc.CompleteSession(session.ID, trainerID, &types.CompleteSessionRequest{})
	assert.Error(t, err)
}

func TestTrainingService_DeleteCompletedSessionRefundsUnit(t *testing.T) {
	db := newTestDB(t)
	sub := createTestSubscription(t, db)
	svc := NewTrainingService(db)
	subSvc := NewSubscriptionService(db)

	session, err := svc.CreateSession(&types.CreateSessionRequest{
		SubscriptionID: sub.ID.String(),
		SessionNumber:  1,
	})
	require.NoError(t, err)

	_, err = svc.CompleteSession(session.ID, uuid.New(), &types.CompleteSessionRequest{})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteSession(session.ID))

	reloaded, err := subSvc.Get(sub.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, reloaded.SessionsUsed)

	_, err = svc.GetSession(session.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
