package domain

import "time"

// MentorAssignment links a student to their current mentor. A student has at
// most one row here; assigning again replaces the previous mentor. Rows are
// hard-deleted on unassign so the unique student index stays reusable.
type MentorAssignment struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	MentorID   uint      `gorm:"not null;index" json:"mentor_id"`
	StudentID  uint      `gorm:"uniqueIndex;not null" json:"student_id"`
	AssignedAt time.Time `gorm:"autoCreateTime" json:"assigned_at"`
	Notes      *string   `gorm:"type:text" json:"notes,omitempty"`
	UpdatedAt  time.Time `json:"updated_at"`
}
