package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubscriptionPlan is a package sold by the gym, e.g. "Gold / 12 sessions".
type SubscriptionPlan struct {
	ID           uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	Name         string    `gorm:"size:100;not null" json:"name"`
	Units        int       `gorm:"not null" json:"units"`
	DurationDays int       `gorm:"not null" json:"duration_days"`
	Price        float64   `gorm:"not null;default:0" json:"price"`
	IsChildPlan  bool      `gorm:"not null;default:false" json:"is_child_plan"`
}

func (p *SubscriptionPlan) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// InBody goal and activity choices, as the front-end selects present them.
const (
	GoalWeightLoss  = "Weight Loss"
	GoalBulking     = "Bulking"
	GoalCutting     = "Cutting"
	GoalMaintenance = "Maintenance"
)

// ClientSubscription ties a client to a plan for one period, carrying the
// InBody snapshot taken when the period started.
type ClientSubscription struct {
	ID        uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	ClientID  uuid.UUID         `gorm:"type:varchar(36);not null;index" json:"client_id"`
	Client    *Client           `gorm:"constraint:OnDelete:CASCADE" json:"client,omitempty"`
	PlanID    *uuid.UUID        `gorm:"type:varchar(36)" json:"plan_id"`
	Plan      *SubscriptionPlan `json:"plan,omitempty"`
	TrainerID *uuid.UUID        `gorm:"type:varchar(36)" json:"trainer_id"`

	StartDate    time.Time  `gorm:"not null" json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
	IsActive     bool       `gorm:"not null;default:true" json:"is_active"`
	SessionsUsed int        `gorm:"not null;default:0" json:"sessions_used"`

	InBodyHeight   float64 `gorm:"not null;default:0" json:"inbody_height"`
	InBodyWeight   float64 `gorm:"not null;default:0" json:"inbody_weight"`
	InBodyMuscle   float64 `gorm:"not null;default:0" json:"inbody_muscle"`
	InBodyFat      float64 `gorm:"not null;default:0" json:"inbody_fat"`
	InBodyTBW      float64 `gorm:"not null;default:0" json:"inbody_tbw"`
	InBodyGoal     string  `gorm:"size:50;default:'Weight Loss'" json:"inbody_goal"`
	InBodyActivity string  `gorm:"size:50;default:'Moderate'" json:"inbody_activity"`
	InBodyNotes    string  `gorm:"type:text" json:"inbody_notes"`
}

func (s *ClientSubscription) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// ProgressPercentage is how much of the plan's session allowance is used.
func (s *ClientSubscription) ProgressPercentage() int {
	if s.Plan == nil || s.Plan.Units == 0 {
		return 0
	}
	return s.SessionsUsed * 100 / s.Plan.Units
}
