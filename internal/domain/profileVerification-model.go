package domain

import (
	"time"

	"gorm.io/gorm"
)

type ProfileDocType string

const (
	ProfileDocDBS            ProfileDocType = "dbs_check"
	ProfileDocRightToWork    ProfileDocType = "right_to_work"
	ProfileDocIDCard         ProfileDocType = "id_card"
	ProfileDocQualTranscript ProfileDocType = "transcript"
	ProfileDocOther          ProfileDocType = "other"
)

type ProfileVerification struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	UserID       uint           `gorm:"not null;index" json:"user_id"`
	DocumentType ProfileDocType `gorm:"type:varchar(30);not null" json:"document_type"`
	DocumentURL  string         `gorm:"type:text;not null" json:"document_url"`

	Status     string     `gorm:"type:varchar(20);not null;default:pending" json:"status"`
	Feedback   *string    `gorm:"type:text" json:"feedback,omitempty"`
	VerifiedBy *uint      `json:"verified_by,omitempty"`
	VerifiedAt *time.Time `json:"verified_at,omitempty"`

	gorm.Model
}
