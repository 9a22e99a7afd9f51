// Command seed_foods loads a starter food reference list so the exchange
// builder has something to work with on a fresh install. Existing rows are
// left alone, so it is safe to rerun.
package main

import (
	"log"

	"github.com/AmrIbrahim41/tfg-backend/config"
	"github.com/AmrIbrahim41/tfg-backend/internal/database"
	"github.com/AmrIbrahim41/tfg-backend/internal/models"
)

var starterFoods = []models.Food{
	{Name: "Chicken Breast", ArabicName: "صدور فراخ", Category: "protein", CaloriesPer100g: 165, ProteinPer100g: 31, FatsPer100g: 3.6, IsVerified: true},
	{Name: "Beef (lean)", ArabicName: "لحم بقري", Category: "protein", CaloriesPer100g: 250, ProteinPer100g: 26, FatsPer100g: 15, IsVerified: true},
	{Name: "Tilapia", ArabicName: "بلطي", Category: "protein", CaloriesPer100g: 96, ProteinPer100g: 20, FatsPer100g: 1.7, IsVerified: true},
	{Name: "Tuna (canned in water)", ArabicName: "تونة", Category: "protein", CaloriesPer100g: 116, ProteinPer100g: 26, FatsPer100g: 0.8, IsVerified: true},
	{Name: "Eggs", ArabicName: "بيض", Category: "protein", CaloriesPer100g: 155, ProteinPer100g: 13, FatsPer100g: 11, CarbsPer100g: 1.1, IsVerified: true},
	{Name: "White Rice (cooked)", ArabicName: "أرز أبيض", Category: "carbs", CaloriesPer100g: 130, CarbsPer100g: 28, ProteinPer100g: 2.7, IsVerified: true},
	{Name: "Pasta (cooked)", ArabicName: "مكرونة", Category: "carbs", CaloriesPer100g: 131, CarbsPer100g: 25, ProteinPer100g: 5, IsVerified: true},
	{Name: "Potato (boiled)", ArabicName: "بطاطس", Category: "carbs", CaloriesPer100g: 87, CarbsPer100g: 20, FiberPer100g: 1.8, IsVerified: true},
	{Name: "Oats", ArabicName: "شوفان", Category: "carbs", CaloriesPer100g: 389, CarbsPer100g: 66, ProteinPer100g: 17, FiberPer100g: 10.6, IsVerified: true},
	{Name: "Baladi Bread", ArabicName: "عيش بلدي", Category: "carbs", CaloriesPer100g: 275, CarbsPer100g: 56, ProteinPer100g: 9, FiberPer100g: 4, IsVerified: true},
	{Name: "Olive Oil", ArabicName: "زيت زيتون", Category: "fats", CaloriesPer100g: 884, FatsPer100g: 100, IsVerified: true},
	{Name: "Peanut Butter", ArabicName: "زبدة فول سوداني", Category: "fats", CaloriesPer100g: 588, FatsPer100g: 50, ProteinPer100g: 25, CarbsPer100g: 20, IsVerified: true},
	{Name: "Almonds", ArabicName: "لوز", Category: "fats", CaloriesPer100g: 579, FatsPer100g: 50, ProteinPer100g: 21, CarbsPer100g: 22, FiberPer100g: 12.5, IsVerified: true},
	{Name: "Avocado", ArabicName: "أفوكادو", Category: "fats", CaloriesPer100g: 160, FatsPer100g: 15, CarbsPer100g: 9, FiberPer100g: 6.7, IsVerified: true},
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	seeded := 0
	for i := range starterFoods {
		food := starterFoods[i]
		var existing models.Food
		if err := db.Where("name = ?", food.Name).First(&existing).Error; err == nil {
			continue
		}
		if err := db.Create(&food).Error; err != nil {
			log.Fatalf("Failed to seed %q: %v", food.Name, err)
		}
		seeded++
	}
	log.Printf("Seeded %d foods (%d already present)", seeded, len(starterFoods)-seeded)
}
