package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Food is one row of the exchange-list reference database. Category is
// validated at the service boundary against the closed set the exchange
// builder understands (protein/carbs/fats); values are stored lowercased.
type Food struct {
	ID        uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name       string `gorm:"size:200;not null;uniqueIndex" json:"name"`
	ArabicName string `gorm:"size:200" json:"arabic_name"`
	Category   string `gorm:"size:50;not null;index" json:"category"`

	CaloriesPer100g float64 `gorm:"not null" json:"calories_per_100g"`
	ProteinPer100g  float64 `gorm:"not null;default:0" json:"protein_per_100g"`
	CarbsPer100g    float64 `gorm:"not null;default:0" json:"carbs_per_100g"`
	FatsPer100g     float64 `gorm:"not null;default:0" json:"fats_per_100g"`
	FiberPer100g    float64 `gorm:"not null;default:0" json:"fiber_per_100g"`

	ServingUnit     string  `gorm:"size:50;not null;default:'g'" json:"serving_unit"`
	GramsPerServing float64 `gorm:"not null;default:100" json:"grams_per_serving"`

	IsVerified  bool       `gorm:"not null;default:false" json:"is_verified"`
	CreatedByID *uuid.UUID `gorm:"type:varchar(36)" json:"created_by_id"`
}

func (f *Food) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
