package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/AmrIbrahim41/tfg-backend/internal/models"
	"github.com/AmrIbrahim41/tfg-backend/internal/types"
)

var (
	ErrTrainingPlanNotFound = errors.New("training plan not found")
	ErrSessionNotFound      = errors.New("session not found")
	ErrSessionExists        = errors.New("session number already logged for this subscription")
)

type TrainingService struct {
	db *gorm.DB
}

func NewTrainingService(db *gorm.DB) *TrainingService {
	return &TrainingService{db: db}
}

// SavePlan replaces the split template for a subscription. Existing splits
// are dropped and recreated; logged sessions keep their own copies so the
// history is untouched.
func (s *TrainingService) SavePlan(req *types.CreateTrainingPlanRequest) (*models.TrainingPlan, error) {
	subID, err := uuid.Parse(req.SubscriptionID)
	if err != nil {
		return nil, errors.New("invalid subscription_id")
	}

	plan := models.TrainingPlan{
		SubscriptionID: subID,
		CycleLength:    req.CycleLength,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.TrainingPlan
		if err := tx.First(&existing, "subscription_id = ?", subID).Error; err == nil {
			if err := s.deletePlanTree(tx, existing.ID); err != nil {
				return err
			}
		}

		if err := tx.Create(&plan).Error; err != nil {
			return err
		}

		for i, sp := range req.Splits {
			split := models.TrainingDaySplit{
				PlanID: plan.ID,
				Order:  orderOr(sp.Order, i+1),
				Name:   sp.Name,
			}
			if err := tx.Create(&split).Error; err != nil {
				return err
			}
			for j, ex := range sp.Exercises {
				exercise := models.TrainingExercise{
					SplitID: split.ID,
					Order:   orderOr(ex.Order, j+1),
					Name:    ex.Name,
					Note:    ex.Note,
				}
				if err := tx.Create(&exercise).Error; err != nil {
					return err
				}
				for k, st := range ex.Sets {
					set := models.TrainingSet{
						ExerciseID: exercise.ID,
						Order:      orderOr(st.Order, k+1),
						Reps:       st.Reps,
						Weight:     st.Weight,
						Technique:  techniqueOr(st.Technique),
						Equipment:  st.Equipment,
					}
					if err := tx.Create(&set).Error; err != nil {
						return err
					}
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetPlan(subID)
}

func orderOr(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}

func techniqueOr(v string) string {
	if v == "" {
		return models.TechniqueRegular
	}
	return v
}

func (s *TrainingService) deletePlanTree(tx *gorm.DB, planID uuid.UUID) error {
	var splits []models.TrainingDaySplit
	if err := tx.Find(&splits, "plan_id = ?", planID).Error; err != nil {
		return err
	}
	for _, split := range splits {
		var exercises []models.TrainingExercise
		if err := tx.Find(&exercises, "split_id = ?", split.ID).Error; err != nil {
			return err
		}
		for _, ex := range exercises {
			if err := tx.Delete(&models.TrainingSet{}, "exercise_id = ?", ex.ID).Error; err != nil {
				return err
			}
		}
		if err := tx.Delete(&models.TrainingExercise{}, "split_id = ?", split.ID).Error; err != nil {
			return err
		}
	}
	if err := tx.Delete(&models.TrainingDaySplit{}, "plan_id = ?", planID).Error; err != nil {
		return err
	}
	return tx.Delete(&models.TrainingPlan{}, "id = ?", planID).Error
}

// GetPlan loads the split template with its whole tree, ordered the way the
// coach laid it out.
func (s *TrainingService) GetPlan(subscriptionID uuid.UUID) (*models.TrainingPlan, error) {
	var plan models.TrainingPlan
	err := s.db.
		Preload("Splits", func(db *gorm.DB) *gorm.DB { return db.Order("day_order ASC") }).
		Preload("Splits.Exercises", func(db *gorm.DB) *gorm.DB { return db.Order("exercise_order ASC") }).
		Preload("Splits.Exercises.Sets", func(db *gorm.DB) *gorm.DB { return db.Order("set_order ASC") }).
		First(&plan, "subscription_id = ?", subscriptionID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTrainingPlanNotFound
		}
		return nil, err
	}
	return &plan, nil
}

// CreateSession opens session N, copying exercises and sets from the chosen
// split (or from the cycle position when no split is named).
func (s *TrainingService) CreateSession(req *types.CreateSessionRequest) (*models.TrainingSession, error) {
	subID, err := uuid.Parse(req.SubscriptionID)
	if err != nil {
		return nil, errors.New("invalid subscription_id")
	}

	var existing models.TrainingSession
	if err := s.db.First(&existing,
		"subscription_id = ? AND session_number = ?", subID, req.SessionNumber).Error; err == nil {
		return nil, ErrSessionExists
	}

	plan, err := s.GetPlan(subID)
	if err != nil && !errors.Is(err, ErrTrainingPlanNotFound) {
		return nil, err
	}

	var split *models.TrainingDaySplit
	if plan != nil && len(plan.Splits) > 0 {
		if req.SplitID != "" {
			splitID, err := uuid.Parse(req.SplitID)
			if err != nil {
				return nil, errors.New("invalid split_id")
			}
			for i := range plan.Splits {
				if plan.Splits[i].ID == splitID {
					split = &plan.Splits[i]
					break
				}
			}
			if split == nil {
				return nil, errors.New("split does not belong to this subscription")
			}
		} else {
			// Cycle through splits by session number.
			idx := (req.SessionNumber - 1) % len(plan.Splits)
			if idx < 0 {
				idx = 0
			}
			split = &plan.Splits[idx]
		}
	}

	session := models.TrainingSession{
		SubscriptionID: subID,
		SessionNumber:  req.SessionNumber,
		Name:           fmt.Sprintf("Session %d", req.SessionNumber),
	}
	if split != nil {
		session.Name = split.Name
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&session).Error; err != nil {
			return err
		}
		if split == nil {
			return nil
		}
		for _, ex := range split.Exercises {
			sessionEx := models.SessionExercise{
				SessionID: session.ID,
				Order:     ex.Order,
				Name:      ex.Name,
			}
			if err := tx.Create(&sessionEx).Error; err != nil {
				return err
			}
			for _, st := range ex.Sets {
				set := models.SessionSet{
					ExerciseID: sessionEx.ID,
					Order:      st.Order,
					Reps:       st.Reps,
					Weight:     st.Weight,
					Technique:  st.Technique,
					Equipment:  st.Equipment,
				}
				if err := tx.Create(&set).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetSession(session.ID)
}

func (s *TrainingService) GetSession(id uuid.UUID) (*models.TrainingSession, error) {
	var session models.TrainingSession
	err := s.db.
		Preload("Exercises", func(db *gorm.DB) *gorm.DB { return db.Order("exercise_order ASC") }).
		Preload("Exercises.Sets", func(db *gorm.DB) *gorm.DB { return db.Order("set_order ASC") }).
		First(&session, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return &session, nil
}

// ListSessions returns the logged history for a subscription in session
// number order.
func (s *TrainingService) ListSessions(subscriptionID uuid.UUID) ([]models.TrainingSession, error) {
	var sessions []models.TrainingSession
	err := s.db.
		Preload("Exercises", func(db *gorm.DB) *gorm.DB { return db.Order("exercise_order ASC") }).
		Preload("Exercises.Sets", func(db *gorm.DB) *gorm.DB { return db.Order("set_order ASC") }).
		Where("subscription_id = ?", subscriptionID).
		Order("session_number ASC").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

// CompleteSession records what actually happened in the gym: the exercises
// are replaced with the logged values, the session is stamped, and one unit
// is burned from the subscription allowance.
func (s *TrainingService) CompleteSession(id uuid.UUID, trainerID uuid.UUID, req *types.CompleteSessionRequest) (*models.TrainingSession, error) {
	session, err := s.GetSession(id)
	if err != nil {
		return nil, err
	}
	if session.IsCompleted {
		return nil, errors.New("session already completed")
	}

	date := time.Now()
	if req.Date != "" {
		date, err = time.Parse("2006-01-02", req.Date)
		if err != nil {
			return nil, errors.New("invalid date, expected YYYY-MM-DD")
		}
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		// Replace the copied template with the logged values.
		if req.Exercises != nil {
			for _, ex := range session.Exercises {
				if err := tx.Delete(&models.SessionSet{}, "exercise_id = ?", ex.ID).Error; err != nil {
					return err
				}
			}
			if err := tx.Delete(&models.SessionExercise{}, "session_id = ?", session.ID).Error; err != nil {
				return err
			}
			for i, ex := range req.Exercises {
				sessionEx := models.SessionExercise{
					SessionID: session.ID,
					Order:     orderOr(ex.Order, i+1),
					Name:      ex.Name,
				}
				if err := tx.Create(&sessionEx).Error; err != nil {
					return err
				}
				for j, st := range ex.Sets {
					set := models.SessionSet{
						ExerciseID: sessionEx.ID,
						Order:      orderOr(st.Order, j+1),
						Reps:       st.Reps,
						Weight:     st.Weight,
						Technique:  techniqueOr(st.Technique),
						Equipment:  st.Equipment,
					}
					if err := tx.Create(&set).Error; err != nil {
						return err
					}
				}
			}
		}

		updates := map[string]interface{}{
			"is_completed":    true,
			"date_completed":  date,
			"completed_by_id": trainerID,
		}
		if err := tx.Model(&models.TrainingSession{}).
			Where("id = ?", session.ID).Updates(updates).Error; err != nil {
			return err
		}

		return tx.Model(&models.ClientSubscription{}).
			Where("id = ?", session.SubscriptionID).
			UpdateColumn("sessions_used", gorm.Expr("sessions_used + 1")).Error
	})
	if err != nil {
		return nil, err
	}

	return s.GetSession(session.ID)
}

func (s *TrainingService) DeleteSession(id uuid.UUID) error {
	session, err := s.GetSession(id)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		for _, ex := range session.Exercises {
			if err := tx.Delete(&models.SessionSet{}, "exercise_id = ?", ex.ID).Error; err != nil {
				return err
			}
		}
		if err := tx.Delete(&models.SessionExercise{}, "session_id = ?", session.ID).Error; err != nil {
			return err
		}
		if session.IsCompleted {
			if err := tx.Model(&models.ClientSubscription{}).
				Where("id = ? AND sessions_used > 0", session.SubscriptionID).
				UpdateColumn("sessions_used", gorm.Expr("sessions_used - 1")).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&models.TrainingSession{}, "id = ?", session.ID).Error
	})
}
