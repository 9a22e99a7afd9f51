package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/AmrIbrahim41/tfg-backend/internal/models"
	"github.com/AmrIbrahim41/tfg-backend/internal/nutrition"
	"github.com/AmrIbrahim41/tfg-backend/internal/types"
)

var (
	ErrFoodNotFound    = errors.New("food not found")
	ErrInvalidCategory = errors.New("category must be one of protein, carbs, fats")
)

const (
	foodCacheKey = "foods:all"
	foodCacheTTL = 10 * time.Minute
)

// FoodService manages the exchange-list reference database. The full list is
// small and read on every calculator call, so it is cached in Redis; the
// client is optional and a nil client just means every read hits Postgres.
type FoodService struct {
	db    *gorm.DB
	redis *redis.Client
}

func NewFoodService(db *gorm.DB, redisClient *redis.Client) *FoodService {
	return &FoodService{db: db, redis: redisClient}
}

// ListAll returns every food mapped into the shape the exchange builder
// consumes, preserving creation order.
func (s *FoodService) ListAll() ([]nutrition.FoodItem, error) {
	ctx := context.Background()

	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, foodCacheKey).Result(); err == nil {
			var items []nutrition.FoodItem
			if err := json.Unmarshal([]byte(cached), &items); err == nil {
				return items, nil
			}
		}
	}

	var foods []models.Food
	if err := s.db.Order("created_at ASC").Find(&foods).Error; err != nil {
		return nil, err
	}

	items := make([]nutrition.FoodItem, 0, len(foods))
	for _, f := range foods {
		items = append(items, nutrition.FoodItem{
			Name:            f.Name,
			ArabicName:      f.ArabicName,
			Category:        f.Category,
			CaloriesPer100g: f.CaloriesPer100g,
			ProteinPer100g:  f.ProteinPer100g,
			CarbsPer100g:    f.CarbsPer100g,
			FatsPer100g:     f.FatsPer100g,
		})
	}

	if s.redis != nil {
		if data, err := json.Marshal(items); err == nil {
			// Cache failures only cost the next read a DB trip.
			_ = s.redis.Set(ctx, foodCacheKey, data, foodCacheTTL).Err()
		}
	}

	return items, nil
}

// List returns the raw rows for the management screen, with an optional
// category filter and name search.
func (s *FoodService) List(category, search string) ([]models.Food, error) {
	q := s.db.Model(&models.Food{})
	if category != "" {
		if !nutrition.ValidCategory(category) {
			return nil, ErrInvalidCategory
		}
		q = q.Where("category = ?", strings.ToLower(category))
	}
	if search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(name) LIKE ? OR arabic_name LIKE ?", pattern, "%"+search+"%")
	}

	var foods []models.Food
	if err := q.Order("name ASC").Find(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}

func (s *FoodService) Create(trainerID uuid.UUID, req *types.CreateFoodRequest) (*models.Food, error) {
	if !nutrition.ValidCategory(req.Category) {
		return nil, ErrInvalidCategory
	}

	food := models.Food{
		Name:            req.Name,
		ArabicName:      req.ArabicName,
		Category:        strings.ToLower(req.Category),
		CaloriesPer100g: req.CaloriesPer100g,
		ProteinPer100g:  req.ProteinPer100g,
		CarbsPer100g:    req.CarbsPer100g,
		FatsPer100g:     req.FatsPer100g,
		FiberPer100g:    req.FiberPer100g,
		ServingUnit:     req.ServingUnit,
		GramsPerServing: req.GramsPerServing,
		IsVerified:      req.IsVerified,
		CreatedByID:     &trainerID,
	}
	if food.ServingUnit == "" {
		food.ServingUnit = "g"
	}
	if food.GramsPerServing <= 0 {
		food.GramsPerServing = 100
	}

	if err := s.db.Create(&food).Error; err != nil {
		return nil, err
	}
	s.invalidateCache()
	return &food, nil
}

func (s *FoodService) Update(id uuid.UUID, req *types.CreateFoodRequest) (*models.Food, error) {
	if !nutrition.ValidCategory(req.Category) {
		return nil, ErrInvalidCategory
	}

	var food models.Food
	if err := s.db.First(&food, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFoodNotFound
		}
		return nil, err
	}

	food.Name = req.Name
	food.ArabicName = req.ArabicName
	food.Category = strings.ToLower(req.Category)
	food.CaloriesPer100g = req.CaloriesPer100g
	food.ProteinPer100g = req.ProteinPer100g
	food.CarbsPer100g = req.CarbsPer100g
	food.FatsPer100g = req.FatsPer100g
	food.FiberPer100g = req.FiberPer100g
	if req.ServingUnit != "" {
		food.ServingUnit = req.ServingUnit
	}
	if req.GramsPerServing > 0 {
		food.GramsPerServing = req.GramsPerServing
	}
	food.IsVerified = req.IsVerified

	if err := s.db.Save(&food).Error; err != nil {
		return nil, err
	}
	s.invalidateCache()
	return &food, nil
}

func (s *FoodService) Delete(id uuid.UUID) error {
	res := s.db.Delete(&models.Food{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrFoodNotFound
	}
	s.invalidateCache()
	return nil
}

func (s *FoodService) invalidateCache() {
	if s.redis != nil {
		_ = s.redis.Del(context.Background(), foodCacheKey).Err()
	}
}
