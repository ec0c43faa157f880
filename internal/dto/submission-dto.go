package dto

import "time"

type QualificationCreateRequest struct {
	Title               string     `json:"title" validate:"required"`
	Description         string     `json:"description,omitempty"`
	IssuingOrganization string     `json:"issuing_organization" validate:"required"`
	ExpiryDate          *time.Time `json:"expiry_date,omitempty"`
	CertificateURL      *string    `json:"certificate_url,omitempty"`
}

type SessionCreateRequest struct {
	Title           string    `json:"title" validate:"required"`
	Description     string    `json:"description,omitempty"`
	Location        string    `json:"location,omitempty"`
	SessionDate     time.Time `json:"session_date" validate:"required"`
	DurationMinutes int       `json:"duration_minutes" validate:"required,min=1"`
	LearnerCount    *int      `json:"learner_count,omitempty"`
}

type ActivityCreateRequest struct {
	Title        string   `json:"title" validate:"required"`
	ActivityType string   `json:"activity_type" validate:"required"`
	Description  string   `json:"description,omitempty"`
	Evidence     []string `json:"evidence,omitempty"`
}

type ApplicationCreateRequest struct {
	JobPostID uint   `json:"job_post_id" validate:"required"`
	CoverNote string `json:"cover_note,omitempty"`
}

type ProfileVerificationCreateRequest struct {
	DocumentType string `json:"document_type" validate:"required"`
	DocumentURL  string `json:"document_url" validate:"required"`
}

type ResubmitRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}

type JobPostCreateRequest struct {
	Title        string     `json:"title" validate:"required"`
	Organization string     `json:"organization" validate:"required"`
	Location     string     `json:"location,omitempty"`
	Description  string     `json:"description,omitempty"`
	ClosingDate  *time.Time `json:"closing_date,omitempty"`
}
