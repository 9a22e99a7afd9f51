package service

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/AmrIbrahim41/tfg-backend/internal/models"
	"github.com/AmrIbrahim41/tfg-backend/internal/types"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Client{},
		&models.Country{},
		&models.SubscriptionPlan{},
		&models.ClientSubscription{},
		&models.TrainingPlan{},
		&models.TrainingDaySplit{},
		&models.TrainingExercise{},
		&models.TrainingSet{},
		&models.TrainingSession{},
		&models.SessionExercise{},
		&models.SessionSet{},
		&models.NutritionPlan{},
		&models.Food{},
	))
	return db
}

func createTestClient(t *testing.T, db *gorm.DB) *ClientWithAge {
	t.Helper()
	svc := NewClientService(db)
	client, err := svc.Create(&types.CreateClientRequest{
		Name:      "Ahmed Hassan",
		ManualID:  "TFG-001",
		Phone:     "+201001234567",
		BirthDate: "1999-03-10",
	})
	require.NoError(t, err)
	return client
}

func createTestSubscription(t *testing.T, db *gorm.DB) *models.ClientSubscription {
	t.Helper()
	client := createTestClient(t, db)
	subSvc := NewSubscriptionService(db)
	plan, err := subSvc.CreatePlan(&types.CreatePlanRequest{
		Name:         "Gold",
		Units:        12,
		DurationDays: 30,
		Price:        1500,
	})
	require.NoError(t, err)

	sub, err := subSvc.Subscribe(&types.CreateSubscriptionRequest{
		ClientID:  client.ID.String(),
		PlanID:    plan.ID.String(),
		StartDate: "2026-08-01",
	})
	require.NoError(t, err)
	return sub
}
