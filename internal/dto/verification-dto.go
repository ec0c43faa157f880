package dto

import "github.com/sudarshan-gautam/placement-tracking-app-sub002/internal/domain"

type SetVerificationStatusRequest struct {
	ID       uint   `json:"id" validate:"required"`
	Type     string `json:"type,omitempty"` // defaults to qualification when omitted
	Status   string `json:"status" validate:"required,oneof=verified rejected"`
	Feedback string `json:"feedback,omitempty"`
}

type VerificationQueueResponse struct {
	Records       []domain.UnifiedVerificationRecord `json:"records"`
	Degraded      bool                               `json:"degraded"`
	FailedSources []string                           `json:"failed_sources,omitempty"`
}

type VerificationDecisionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
