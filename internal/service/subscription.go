package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/AmrIbrahim41/tfg-backend/internal/models"
	"github.com/AmrIbrahim41/tfg-backend/internal/types"
)

var (
	ErrSubscriptionNotFound = errors.New("subscription not found")
	ErrPlanNotFound         = errors.New("plan not found")
	ErrNoSessionsLeft       = errors.New("no sessions left on this subscription")
)

type SubscriptionService struct {
	db *gorm.DB
}

func NewSubscriptionService(db *gorm.DB) *SubscriptionService {
	return &SubscriptionService{db: db}
}

// CreatePlan defines a sellable package.
func (s *SubscriptionService) CreatePlan(req *types.CreatePlanRequest) (*models.SubscriptionPlan, error) {
	plan := models.SubscriptionPlan{
		Name:         req.Name,
		Units:        req.Units,
		DurationDays: req.DurationDays,
		Price:        req.Price,
		IsChildPlan:  req.IsChildPlan,
	}
	if err := s.db.Create(&plan).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

func (s *SubscriptionService) ListPlans() ([]models.SubscriptionPlan, error) {
	var plans []models.SubscriptionPlan
	if err := s.db.Order("name ASC").Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

func (s *SubscriptionService) DeletePlan(id uuid.UUID) error {
	res := s.db.Delete(&models.SubscriptionPlan{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrPlanNotFound
	}
	return nil
}

// Subscribe opens a period for a client. The end date is derived from the
// plan duration when not provided explicitly; it is set exactly once here
// and later edits never shift it.
func (s *SubscriptionService) Subscribe(req *types.CreateSubscriptionRequest) (*models.ClientSubscription, error) {
	clientID, err := uuid.Parse(req.ClientID)
	if err != nil {
		return nil, errors.New("invalid client_id")
	}
	planID, err := uuid.Parse(req.PlanID)
	if err != nil {
		return nil, errors.New("invalid plan_id")
	}

	var plan models.SubscriptionPlan
	if err := s.db.First(&plan, "id = ?", planID).Error; err != nil {
		return nil, ErrPlanNotFound
	}

	startDate := time.Now().Truncate(24 * time.Hour)
	if req.StartDate != "" {
		startDate, err = time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			return nil, errors.New("invalid start_date, expected YYYY-MM-DD")
		}
	}

	var endDate *time.Time
	if req.EndDate != "" {
		d, err := time.Parse("2006-01-02", req.EndDate)
		if err != nil {
			return nil, errors.New("invalid end_date, expected YYYY-MM-DD")
		}
		endDate = &d
	} else if plan.DurationDays > 0 {
		d := startDate.AddDate(0, 0, plan.DurationDays)
		endDate = &d
	}

	sub := models.ClientSubscription{
		ClientID:  clientID,
		PlanID:    &planID,
		StartDate: startDate,
		EndDate:   endDate,
		IsActive:  true,
	}
	if req.TrainerID != "" {
		trainerID, err := uuid.Parse(req.TrainerID)
		if err != nil {
			return nil, errors.New("invalid trainer_id")
		}
		sub.TrainerID = &trainerID
	}
	if req.InBody != nil {
		applyInBody(&sub, req.InBody)
	}

	// Only one active period per client.
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.ClientSubscription{}).
			Where("client_id = ? AND is_active = ?", clientID, true).
			Update("is_active", false).Error; err != nil {
			return err
		}
		return tx.Create(&sub).Error
	})
	if err != nil {
		return nil, err
	}

	sub.Plan = &plan
	return &sub, nil
}

func applyInBody(sub *models.ClientSubscription, in *types.InBodyData) {
	sub.InBodyHeight = in.Height
	sub.InBodyWeight = in.Weight
	sub.InBodyMuscle = in.Muscle
	sub.InBodyFat = in.Fat
	sub.InBodyTBW = in.TBW
	if in.Goal != "" {
		sub.InBodyGoal = in.Goal
	}
	if in.Activity != "" {
		sub.InBodyActivity = in.Activity
	}
	sub.InBodyNotes = in.Notes
}

func (s *SubscriptionService) Get(id uuid.UUID) (*models.ClientSubscription, error) {
	var sub models.ClientSubscription
	if err := s.db.Preload("Plan").Preload("Client").
		First(&sub, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubscriptionNotFound
		}
		return nil, err
	}
	return &sub, nil
}

// ListForClient returns the client's periods, newest first, so the UI can
// show the active card on top of the history.
func (s *SubscriptionService) ListForClient(clientID uuid.UUID) ([]models.ClientSubscription, error) {
	var subs []models.ClientSubscription
	if err := s.db.Preload("Plan").
		Where("client_id = ?", clientID).
		Order("start_date DESC").
		Find(&subs).Error; err != nil {
		return nil, err
	}
	return subs, nil
}

// Update edits a period in place. The end date only moves when the request
// names one; toggling activity or fixing the session counter never shifts
// the period.
func (s *SubscriptionService) Update(id uuid.UUID, req *types.UpdateSubscriptionRequest) (*models.ClientSubscription, error) {
	sub, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.IsActive != nil {
		sub.IsActive = *req.IsActive
	}
	if req.SessionsUsed != nil {
		if *req.SessionsUsed < 0 {
			return nil, errors.New("sessions_used cannot be negative")
		}
		sub.SessionsUsed = *req.SessionsUsed
	}
	if req.EndDate != nil {
		if *req.EndDate == "" {
			sub.EndDate = nil
		} else {
			d, err := time.Parse("2006-01-02", *req.EndDate)
			if err != nil {
				return nil, errors.New("invalid end_date, expected YYYY-MM-DD")
			}
			sub.EndDate = &d
		}
	}
	if req.InBody != nil {
		applyInBody(sub, req.InBody)
	}

	// Omit preloaded associations so Save touches only the period row.
	if err := s.db.Omit("Client", "Plan").Save(sub).Error; err != nil {
		return nil, err
	}
	return sub, nil
}

// UseSession burns one unit of the plan allowance.
func (s *SubscriptionService) UseSession(id uuid.UUID) (*models.ClientSubscription, error) {
	sub, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if sub.Plan != nil && sub.Plan.Units > 0 && sub.SessionsUsed >= sub.Plan.Units {
		return nil, ErrNoSessionsLeft
	}

	sub.SessionsUsed++
	if err := s.db.Model(sub).Update("sessions_used", sub.SessionsUsed).Error; err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *SubscriptionService) Delete(id uuid.UUID) error {
	res := s.db.Delete(&models.ClientSubscription{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrSubscriptionNotFound
	}
	return nil
}
