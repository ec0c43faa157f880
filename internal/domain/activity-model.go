package domain

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Activity rows live in the student_activities table; the table predates the
// rename of the feature and keeps its original name.
type Activity struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	UserID       uint           `gorm:"not null;index" json:"user_id"`
	Title        string         `gorm:"type:varchar(200);not null" json:"title"`
	ActivityType string         `gorm:"type:varchar(100);not null" json:"activity_type"` // cpd | research | volunteering | ...
	Description  string         `gorm:"type:text" json:"description"`
	Evidence     datatypes.JSON `gorm:"type:json" json:"evidence,omitempty"` // list of uploaded file URLs

	Status     string     `gorm:"type:varchar(20);not null;default:pending" json:"status"`
	Feedback   *string    `gorm:"type:text" json:"feedback,omitempty"`
	VerifiedBy *uint      `json:"verified_by,omitempty"`
	VerifiedAt *time.Time `json:"verified_at,omitempty"`

	gorm.Model
}

func (Activity) TableName() string { return "student_activities" }
