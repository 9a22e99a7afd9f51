package service

import (
	"time"

	"gorm.io/gorm"

	"github.com/AmrIbrahim41/tfg-backend/internal/models"
)

// DashboardStats is the front-page counter block.
type DashboardStats struct {
	TotalClients        int64 `json:"total_clients"`
	ActiveClients       int64 `json:"active_clients"`
	ChildClients        int64 `json:"child_clients"`
	ActiveSubscriptions int64 `json:"active_subscriptions"`
	ExpiringThisWeek    int64 `json:"expiring_this_week"`
	SessionsToday       int64 `json:"sessions_today"`
	SavedNutritionPlans int64 `json:"saved_nutrition_plans"`
}

type DashboardService struct {
	db *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

func (s *DashboardService) Stats() (*DashboardStats, error) {
	var stats DashboardStats

	if err := s.db.Model(&models.Client{}).Count(&stats.TotalClients).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Client{}).
		Where("status = ?", models.ClientStatusActive).
		Count(&stats.ActiveClients).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Client{}).
		Where("is_child = ?", true).
		Count(&stats.ChildClients).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.ClientSubscription{}).
		Where("is_active = ?", true).
		Count(&stats.ActiveSubscriptions).Error; err != nil {
		return nil, err
	}

	now := time.Now()
	weekFromNow := now.AddDate(0, 0, 7)
	if err := s.db.Model(&models.ClientSubscription{}).
		Where("is_active = ? AND end_date IS NOT NULL AND end_date BETWEEN ? AND ?",
			true, now, weekFromNow).
		Count(&stats.ExpiringThisWeek).Error; err != nil {
		return nil, err
	}

	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)
	if err := s.db.Model(&models.TrainingSession{}).
		Where("is_completed = ? AND date_completed >= ? AND date_completed < ?",
			true, dayStart, dayEnd).
		Count(&stats.SessionsToday).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.NutritionPlan{}).
		Count(&stats.SavedNutritionPlans).Error; err != nil {
		return nil, err
	}

	return &stats, nil
}
