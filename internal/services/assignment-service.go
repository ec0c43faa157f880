package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/sudarshan-gautam/placement-tracking-app-sub002/internal/domain"
	"github.com/sudarshan-gautam/placement-tracking-app-sub002/internal/dto"
	"github.com/sudarshan-gautam/placement-tracking-app-sub002/internal/interfaces"
	"github.com/sudarshan-gautam/placement-tracking-app-sub002/internal/repository"
	"gorm.io/gorm"
)

type AssignmentService interface {
	Assign(ctx context.Context, actorID uint, input dto.AssignRequest) error
	Unassign(ctx context.Context, actorID uint, studentID uint) error
	ListStudentsForMentor(ctx context.Context, mentorID uint) ([]dto.AssignedStudentResponse, error)
	GetMentorForStudent(ctx context.Context, studentID uint) (*dto.MentorRefResponse, error)
}

type assignmentService struct {
	repo         repository.AssignmentRepository
	userRepo     repository.UserRepository
	userRoleRepo repository.UserRoleRepository
	auditRepo    repository.AuditRepository
	producer     interfaces.ProducerHandler
}

func NewAssignmentService(
	repo repository.AssignmentRepository,
	userRepo repository.UserRepository,
	userRoleRepo repository.UserRoleRepository,
	auditRepo repository.AuditRepository,
	producer interfaces.ProducerHandler,
) AssignmentService {
	return &assignmentService{
		repo:         repo,
		userRepo:     userRepo,
		userRoleRepo: userRoleRepo,
		auditRepo:    auditRepo,
		producer:     producer,
	}
}

// Assign creates or replaces the student's mentor link. Overwrite policy: the
// newest assignment wins, earlier mentors are dropped without ceremony.
func (s *assignmentService) Assign(ctx context.Context, actorID uint, input dto.AssignRequest) error {
	if input.MentorID == 0 || input.StudentID == 0 {
		return domain.ValidationErrorf("mentor_id and student_id are required")
	}
	if input.MentorID == input.StudentID {
		return domain.ValidationErrorf("mentor and student must be different users")
	}

	if err := s.requireRole(input.MentorID, domain.RoleMentor); err != nil {
		return err
	}
	if err := s.requireRole(input.StudentID, domain.RoleStudent); err != nil {
		return err
	}

	a := &domain.MentorAssignment{
		MentorID:  input.MentorID,
		StudentID: input.StudentID,
		Notes:     input.Notes,
	}
	if err := s.repo.Upsert(ctx, a); err != nil {
		return domain.StorageError(err)
	}

	s.audit(actorID, "mentor.assign", input.StudentID, input.Notes)

	if s.producer != nil {
		payload := fmt.Sprintf(
			`{"mentor_id":%d,"student_id":%d,"assigned_by":%d}`,
			input.MentorID, input.StudentID, actorID,
		)
		_ = s.producer.PublishMessage([]byte("mentor.assigned"), []byte(payload))
	}

	return nil
}

// Unassign is idempotent: removing a student with no mentor is a no-op
// success, not an error.
func (s *assignmentService) Unassign(ctx context.Context, actorID uint, studentID uint) error {
	if studentID == 0 {
		return domain.ValidationErrorf("student_id is required")
	}

	removed, err := s.repo.DeleteByStudent(ctx, studentID)
	if err != nil {
		return domain.StorageError(err)
	}
	if removed > 0 {
		s.audit(actorID, "mentor.unassign", studentID, nil)
	}
	return nil
}

func (s *assignmentService) ListStudentsForMentor(ctx context.Context, mentorID uint) ([]dto.AssignedStudentResponse, error) {
	if mentorID == 0 {
		return nil, domain.ValidationErrorf("mentor_id is required")
	}

	rows, err := s.repo.ListByMentor(ctx, mentorID)
	if err != nil {
		return nil, domain.StorageError(err)
	}

	out := make([]dto.AssignedStudentResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.AssignedStudentResponse{
			StudentID:  r.StudentID,
			FirstName:  r.FirstName,
			LastName:   r.LastName,
			Email:      r.Email,
			AssignedAt: r.AssignedAt,
			Notes:      r.Notes,
		})
	}
	return out, nil
}

// GetMentorForStudent returns nil (not an error) for an unassigned student.
func (s *assignmentService) GetMentorForStudent(ctx context.Context, studentID uint) (*dto.MentorRefResponse, error) {
	if studentID == 0 {
		return nil, domain.ValidationErrorf("student_id is required")
	}

	row, err := s.repo.FindByStudent(ctx, studentID)
	if err != nil {
		return nil, domain.StorageError(err)
	}
	if row == nil {
		return nil, nil
	}
	return &dto.MentorRefResponse{
		MentorID:   row.MentorID,
		FirstName:  row.FirstName,
		LastName:   row.LastName,
		Email:      row.Email,
		AssignedAt: row.AssignedAt,
	}, nil
}

func (s *assignmentService) requireRole(userID uint, roleCode string) error {
	if _, err := s.userRepo.FindUserById(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ValidationErrorf("user %d does not exist", userID)
		}
		return domain.StorageError(err)
	}

	has, err := s.userRoleRepo.UserHasRole(userID, roleCode)
	if err != nil {
		return domain.StorageError(err)
	}
	if !has {
		return domain.ValidationErrorf("user %d does not hold the %s role", userID, roleCode)
	}
	return nil
}

func (s *assignmentService) audit(actorID uint, action string, studentID uint, note *string) {
	if s.auditRepo == nil {
		return
	}
	entry := &domain.AuditLog{
		ActorID:  actorID,
		Action:   action,
		Entity:   "mentor_assignments",
		EntityID: studentID,
		Note:     note,
	}
	if err := s.auditRepo.Record(entry); err != nil {
		log.Printf("audit record error: %v", err)
	}
}
