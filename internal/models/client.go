package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Client statuses are free-form in practice; Active is the default.
const ClientStatusActive = "Active"

// Client is a gym member. Children share the table with adults and are
// distinguished by IsChild plus a parent phone number.
type Client struct {
	ID        uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name     string `gorm:"not null" json:"name"`
	ManualID string `gorm:"size:50;not null;uniqueIndex" json:"manual_id"`
	Phone    string `gorm:"size:20;not null" json:"phone"`
	PhotoKey string `gorm:"size:255" json:"photo_key"`

	NatureOfWork string     `gorm:"size:255" json:"nature_of_work"`
	BirthDate    *time.Time `json:"birth_date"`
	Address      string     `gorm:"type:text" json:"address"`
	Status       string     `gorm:"size:50;not null;default:'Active'" json:"status"`
	Smoking      bool       `gorm:"not null;default:false" json:"smoking"`
	SleepHours   *float64   `json:"sleep_hours"`

	IsChild     bool   `gorm:"not null;default:false;index" json:"is_child"`
	ParentPhone string `gorm:"size:20" json:"parent_phone"`
	Notes       string `gorm:"type:text" json:"notes"`
	Country     string `gorm:"size:50;not null;default:'Egypt'" json:"country"`

	TrainedGymBefore   bool   `gorm:"not null;default:false" json:"trained_gym_before"`
	TrainedCoachBefore bool   `gorm:"not null;default:false" json:"trained_coach_before"`
	Injuries           string `gorm:"type:text" json:"injuries"`
}

func (c *Client) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// Country is phone-prefix reference data for the client form.
type Country struct {
	ID       uint   `gorm:"primarykey" json:"id"`
	Name     string `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Code     string `gorm:"size:5;not null;uniqueIndex" json:"code"`
	DialCode string `gorm:"size:10;not null" json:"dial_code"`
}
