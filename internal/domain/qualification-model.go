package domain

import (
	"time"

	"gorm.io/gorm"
)

type Qualification struct {
	ID                  uint       `gorm:"primaryKey" json:"id"`
	UserID              uint       `gorm:"not null;index" json:"user_id"`
	Title               string     `gorm:"type:varchar(200);not null" json:"title"`
	Description         string     `gorm:"type:text" json:"description"`
	IssuingOrganization string     `gorm:"type:varchar(200)" json:"issuing_organization"`
	ExpiryDate          *time.Time `json:"expiry_date,omitempty"`
	CertificateURL      *string    `gorm:"type:text" json:"certificate_url,omitempty"`

	VerificationStatus string     `gorm:"type:varchar(20);not null;default:pending" json:"verification_status"`
	Feedback           *string    `gorm:"type:text" json:"feedback,omitempty"`
	VerifiedBy         *uint      `json:"verified_by,omitempty"` // mentor/admin user_id
	VerifiedAt         *time.Time `json:"verified_at,omitempty"`

	gorm.Model
}
