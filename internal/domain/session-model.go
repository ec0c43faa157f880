package domain

import (
	"time"

	"gorm.io/gorm"
)

type Session struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	UserID          uint      `gorm:"not null;index" json:"user_id"`
	Title           string    `gorm:"type:varchar(200);not null" json:"title"`
	Description     string    `gorm:"type:text" json:"description"`
	Location        string    `gorm:"type:varchar(200)" json:"location"`
	SessionDate     time.Time `gorm:"not null" json:"session_date"`
	DurationMinutes int       `gorm:"not null;default:0" json:"duration_minutes"`
	LearnerCount    *int      `json:"learner_count,omitempty"`

	Status     string     `gorm:"type:varchar(20);not null;default:pending" json:"status"`
	Feedback   *string    `gorm:"type:text" json:"feedback,omitempty"`
	VerifiedBy *uint      `json:"verified_by,omitempty"`
	VerifiedAt *time.Time `json:"verified_at,omitempty"`

	gorm.Model
}
