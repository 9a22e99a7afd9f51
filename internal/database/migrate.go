package database

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/AmrIbrahim41/tfg-backend/internal/models"
)

// Migrate applies the schema for every model and seeds reference data that
// the UI assumes is present.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
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
	); err != nil {
		return fmt.Errorf("auto migration failed: %w", err)
	}

	if err := seedCountries(db); err != nil {
		return fmt.Errorf("country seed failed: %w", err)
	}
	return nil
}

// seedCountries inserts the dial-code list once; existing rows are kept.
func seedCountries(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Country{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	countries := []models.Country{
		{Name: "Egypt", Code: "EG", DialCode: "+20"},
		{Name: "Saudi Arabia", Code: "SA", DialCode: "+966"},
		{Name: "United Arab Emirates", Code: "AE", DialCode: "+971"},
		{Name: "Kuwait", Code: "KW", DialCode: "+965"},
		{Name: "Qatar", Code: "QA", DialCode: "+974"},
		{Name: "Jordan", Code: "JO", DialCode: "+962"},
		{Name: "United States", Code: "US", DialCode: "+1"},
		{Name: "United Kingdom", Code: "GB", DialCode: "+44"},
	}
	if err := db.Create(&countries).Error; err != nil {
		return err
	}
	log.Printf("Seeded %d countries", len(countries))
	return nil
}
