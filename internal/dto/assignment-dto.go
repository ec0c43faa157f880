package dto

import "time"

type AssignRequest struct {
	MentorID  uint    `json:"mentor_id" validate:"required"`
	StudentID uint    `json:"student_id" validate:"required"`
	Notes     *string `json:"notes,omitempty"`
}

type AssignedStudentResponse struct {
	StudentID  uint      `json:"student_id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Email      string    `json:"email"`
	AssignedAt time.Time `json:"assigned_at"`
	Notes      *string   `json:"notes,omitempty"`
}

type MentorRefResponse struct {
	MentorID   uint      `json:"mentor_id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Email      string    `json:"email"`
	AssignedAt time.Time `json:"assigned_at"`
}
