package repository

import (
	"context"
	"time"

	"github.com/sudarshan-gautam/placement-tracking-app-sub002/internal/domain"
	"gorm.io/gorm"
)

// AssignedStudentRow carries the join against users for mentor-side listings.
type AssignedStudentRow struct {
	StudentID  uint
	FirstName  string
	LastName   string
	Email      string
	AssignedAt time.Time
	Notes      *string
}

type MentorRow struct {
	MentorID   uint
	FirstName  string
	LastName   string
	Email      string
	AssignedAt time.Time
}

type AssignmentRepository interface {
	Upsert(ctx context.Context, a *domain.MentorAssignment) error
	DeleteByStudent(ctx context.Context, studentID uint) (int64, error)
	ListByMentor(ctx context.Context, mentorID uint) ([]AssignedStudentRow, error)
	FindByStudent(ctx context.Context, studentID uint) (*MentorRow, error)
}

type assignmentRepository struct {
	db *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) AssignmentRepository {
	return &assignmentRepository{db: db}
}

// Upsert replaces the student's current mentor when one exists. Keyed on
// student_id, so the one-mentor-per-student invariant holds at the store
// boundary too.
func (r *assignmentRepository) Upsert(ctx context.Context, a *domain.MentorAssignment) error {
	return r.db.WithContext(ctx).
		Where("student_id = ?", a.StudentID).
		Assign(map[string]any{
			"mentor_id":   a.MentorID,
			"assigned_at": time.Now(),
			"notes":       a.Notes,
		}).
		FirstOrCreate(a).Error
}

func (r *assignmentRepository) DeleteByStudent(ctx context.Context, studentID uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Delete(&domain.MentorAssignment{})
	return res.RowsAffected, res.Error
}

func (r *assignmentRepository) ListByMentor(ctx context.Context, mentorID uint) ([]AssignedStudentRow, error) {
	var rows []AssignedStudentRow
	err := r.db.WithContext(ctx).
		Table("mentor_assignments").
		Select(`mentor_assignments.student_id AS student_id,
			users.first_name AS first_name,
			users.last_name AS last_name,
			users.email AS email,
			mentor_assignments.assigned_at AS assigned_at,
			mentor_assignments.notes AS notes`).
		Joins("JOIN users ON users.id = mentor_assignments.student_id").
		Where("mentor_assignments.mentor_id = ?", mentorID).
		Order("mentor_assignments.assigned_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *assignmentRepository) FindByStudent(ctx context.Context, studentID uint) (*MentorRow, error) {
	var row MentorRow
	res := r.db.WithContext(ctx).
		Table("mentor_assignments").
		Select(`mentor_assignments.mentor_id AS mentor_id,
			users.first_name AS first_name,
			users.last_name AS last_name,
			users.email AS email,
			mentor_assignments.assigned_at AS assigned_at`).
		Joins("JOIN users ON users.id = mentor_assignments.mentor_id").
		Where("mentor_assignments.student_id = ?", studentID).
		Limit(1).
		Scan(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &row, nil
}
