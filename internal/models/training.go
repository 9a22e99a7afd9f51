package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Set technique and equipment choices, matching the workout sheet badges.
const (
	TechniqueRegular  = "Regular"
	TechniqueDropSet  = "Drop Set"
	TechniqueSuperSet = "Super Set"
	TechniquePyramid  = "Pyramid"
	TechniqueNegative = "Negative"
)

// TrainingPlan is the split template for one subscription period.
type TrainingPlan struct {
	ID             uuid.UUID          `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt      time.Time          `json:"created_at"`
	SubscriptionID uuid.UUID          `gorm:"type:varchar(36);not null;uniqueIndex" json:"subscription_id"`
	CycleLength    int                `gorm:"not null" json:"cycle_length"`
	Splits         []TrainingDaySplit `gorm:"foreignKey:PlanID;constraint:OnDelete:CASCADE" json:"splits,omitempty"`
}

func (p *TrainingPlan) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TrainingDaySplit is "Day N: Push / Pull / Legs / Rest".
type TrainingDaySplit struct {
	ID        uuid.UUID          `gorm:"type:varchar(36);primarykey" json:"id"`
	PlanID    uuid.UUID          `gorm:"type:varchar(36);not null;index" json:"plan_id"`
	Order     int                `gorm:"column:day_order;not null" json:"order"`
	Name      string             `gorm:"size:100;not null" json:"name"`
	Exercises []TrainingExercise `gorm:"foreignKey:SplitID;constraint:OnDelete:CASCADE" json:"exercises,omitempty"`
}

func (s *TrainingDaySplit) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

type TrainingExercise struct {
	ID      uuid.UUID     `gorm:"type:varchar(36);primarykey" json:"id"`
	SplitID uuid.UUID     `gorm:"type:varchar(36);not null;index" json:"split_id"`
	Order   int           `gorm:"column:exercise_order;not null;default:1" json:"order"`
	Name    string        `gorm:"size:200;not null" json:"name"`
	Note    string        `gorm:"size:200" json:"note"`
	Sets    []TrainingSet `gorm:"foreignKey:ExerciseID;constraint:OnDelete:CASCADE" json:"sets,omitempty"`
}

func (e *TrainingExercise) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// TrainingSet keeps reps and weight as strings on purpose: coaches write
// things like "8-12" or "to failure".
type TrainingSet struct {
	ID         uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	ExerciseID uuid.UUID `gorm:"type:varchar(36);not null;index" json:"exercise_id"`
	Order      int       `gorm:"column:set_order;not null;default:1" json:"order"`
	Reps       string    `gorm:"size:50" json:"reps"`
	Weight     string    `gorm:"size:50" json:"weight"`
	Technique  string    `gorm:"size:50;not null;default:'Regular'" json:"technique"`
	Equipment  string    `gorm:"size:50" json:"equipment"`
}

func (s *TrainingSet) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TrainingSession is one numbered visit, with its exercises copied from a
// split at creation so later template edits don't rewrite history.
type TrainingSession struct {
	ID             uuid.UUID         `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt      time.Time         `json:"created_at"`
	SubscriptionID uuid.UUID         `gorm:"type:varchar(36);not null;index:idx_session_number,unique" json:"subscription_id"`
	SessionNumber  int               `gorm:"not null;index:idx_session_number,unique" json:"session_number"`
	Name           string            `gorm:"size:100;not null" json:"name"`
	DateCompleted  *time.Time        `json:"date_completed"`
	IsCompleted    bool              `gorm:"not null;default:false" json:"is_completed"`
	CompletedByID  *uuid.UUID        `gorm:"type:varchar(36)" json:"completed_by_id"`
	Exercises      []SessionExercise `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE" json:"exercises,omitempty"`
}

func (s *TrainingSession) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

type SessionExercise struct {
	ID        uuid.UUID    `gorm:"type:varchar(36);primarykey" json:"id"`
	SessionID uuid.UUID    `gorm:"type:varchar(36);not null;index" json:"session_id"`
	Order     int          `gorm:"column:exercise_order;not null;default:1" json:"order"`
	Name      string       `gorm:"size:200;not null" json:"name"`
	Sets      []SessionSet `gorm:"foreignKey:ExerciseID;constraint:OnDelete:CASCADE" json:"sets,omitempty"`
}

func (e *SessionExercise) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

type SessionSet struct {
	ID         uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	ExerciseID uuid.UUID `gorm:"type:varchar(36);not null;index" json:"exercise_id"`
	Order      int       `gorm:"column:set_order;not null;default:1" json:"order"`
	Reps       string    `gorm:"size:50" json:"reps"`
	Weight     string    `gorm:"size:50" json:"weight"`
	Technique  string    `gorm:"size:50;not null;default:'Regular'" json:"technique"`
	Equipment  string    `gorm:"size:50" json:"equipment"`
}

func (s *SessionSet) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
