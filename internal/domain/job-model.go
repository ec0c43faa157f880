package domain

import (
	"time"

	"gorm.io/gorm"
)

type JobPost struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	PostedBy     uint       `gorm:"not null;index" json:"posted_by"` // mentor/admin user_id
	Title        string     `gorm:"type:varchar(200);not null" json:"title"`
	Organization string     `gorm:"type:varchar(200);not null" json:"organization"`
	Location     string     `gorm:"type:varchar(200)" json:"location"`
	Description  string     `gorm:"type:text" json:"description"`
	ClosingDate  *time.Time `json:"closing_date,omitempty"`

	gorm.Model
}

type Application struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	UserID    uint   `gorm:"not null;index" json:"user_id"`
	JobPostID uint   `gorm:"not null;index" json:"job_post_id"`
	CoverNote string `gorm:"type:text" json:"cover_note"`

	Status     string     `gorm:"type:varchar(20);not null;default:pending" json:"status"`
	Feedback   *string    `gorm:"type:text" json:"feedback,omitempty"`
	VerifiedBy *uint      `json:"verified_by,omitempty"`
	VerifiedAt *time.Time `json:"verified_at,omitempty"`

	JobPost *JobPost `gorm:"foreignKey:JobPostID" json:"job_post,omitempty"`

	gorm.Model
}
