package services

import (
	"context"
	"errors"
	"testing"

	"github.com/sudarshan-gautam/placement-tracking-app-sub002/internal/domain"
	"github.com/sudarshan-gautam/placement-tracking-app-sub002/internal/dto"
	"github.com/sudarshan-gautam/placement-tracking-app-sub002/internal/repository"
	"gorm.io/gorm"
)

func newAssignmentFixture(t *testing.T) (*gorm.DB, AssignmentService, *fakeProducer) {
	t.Helper()

	db := newTestDB(t)
	producer := &fakeProducer{}
	svc := NewAssignmentService(
		repository.NewAssignmentRepository(db),
		repository.NewUserRepository(db),
		repository.NewUserRoleRepository(db),
		repository.NewAuditRepository(db),
		producer,
	)
	return db, svc, producer
}

func TestAssignAndLookup(t *testing.T) {
	db, svc, producer := newAssignmentFixture(t)
	admin := createUser(t, db, "admin@example.com", domain.RoleAdmin)
	mentor := createUser(t, db, "mentor@example.com", domain.RoleMentor)
	student := createUser(t, db, "student@example.com", domain.RoleStudent)

	err := svc.Assign(context.Background(), admin.ID, dto.AssignRequest{
		MentorID:  mentor.ID,
		StudentID: student.ID,
	})
	if err != nil {
		t.Fatalf("Assign: %v", err)
	}

	ref, err := svc.GetMentorForStudent(context.Background(), student.ID)
	if err != nil {
		t.Fatalf("GetMentorForStudent: %v", err)
	}
	if ref == nil || ref.MentorID != mentor.ID {
		t.Fatalf("unexpected mentor ref: %+v", ref)
	}
	if ref.Email != "mentor@example.com" {
		t.Fatalf("unexpected mentor email %q", ref.Email)
	}

	students, err := svc.ListStudentsForMentor(context.Background(), mentor.ID)
	if err != nil {
		t.Fatalf("ListStudentsForMentor: %v", err)
	}
	if len(students) != 1 || students[0].StudentID != student.ID {
		t.Fatalf("unexpected student list: %+v", students)
	}

	keys := producer.keys()
	if len(keys) != 1 || keys[0] != "mentor.assigned" {
		t.Fatalf("unexpected events: %v", keys)
	}
}

func TestReassignReplacesMentor(t *testing.T) {
	db, svc, _ := newAssignmentFixture(t)
	admin := createUser(t, db, "admin@example.com", domain.RoleAdmin)
	mentorA := createUser(t, db, "mentor.a@example.com", domain.RoleMentor)
	mentorB := createUser(t, db, "mentor.b@example.com", domain.RoleMentor)
	student := createUser(t, db, "student@example.com", domain.RoleStudent)

	for _, mentorID := range []uint{mentorA.ID, mentorB.ID} {
		err := svc.Assign(context.Background(), admin.ID, dto.AssignRequest{
			MentorID: mentorID, StudentID: student.ID,
		})
		if err != nil {
			t.Fatalf("Assign mentor %d: %v", mentorID, err)
		}
	}

	ref, err := svc.GetMentorForStudent(context.Background(), student.ID)
	if err != nil {
		t.Fatalf("GetMentorForStudent: %v", err)
	}
	if ref == nil || ref.MentorID != mentorB.ID {
		t.Fatalf("latest assignment should win, got %+v", ref)
	}

	var count int64
	if err := db.Model(&domain.MentorAssignment{}).Where("student_id = ?", student.ID).Count(&count).Error; err != nil {
		t.Fatalf("count assignments: %v", err)
	}
	if count != 1 {
		t.Fatalf("student holds %d assignment rows, want 1", count)
	}

	former, err := svc.ListStudentsForMentor(context.Background(), mentorA.ID)
	if err != nil {
		t.Fatalf("ListStudentsForMentor(former): %v", err)
	}
	if len(former) != 0 {
		t.Fatalf("former mentor still lists the student: %+v", former)
	}
}

func TestAssignValidation(t *testing.T) {
	db, svc, _ := newAssignmentFixture(t)
	admin := createUser(t, db, "admin@example.com", domain.RoleAdmin)
	mentor := createUser(t, db, "mentor@example.com", domain.RoleMentor)
	student := createUser(t, db, "student@example.com", domain.RoleStudent)

	cases := []struct {
		name  string
		input dto.AssignRequest
	}{
		{"missing mentor", dto.AssignRequest{StudentID: student.ID}},
		{"missing student", dto.AssignRequest{MentorID: mentor.ID}},
		{"self assignment", dto.AssignRequest{MentorID: mentor.ID, StudentID: mentor.ID}},
		{"mentor does not exist", dto.AssignRequest{MentorID: 999, StudentID: student.ID}},
		{"student does not exist", dto.AssignRequest{MentorID: mentor.ID, StudentID: 999}},
		{"mentor lacks role", dto.AssignRequest{MentorID: student.ID, StudentID: student.ID + 1000}},
		{"roles swapped", dto.AssignRequest{MentorID: student.ID, StudentID: mentor.ID}},
	}

	for _, tc := range cases {
		err := svc.Assign(context.Background(), admin.ID, tc.input)
		if !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("%s: expected validation error, got %v", tc.name, err)
		}
	}

	var count int64
	if err := db.Model(&domain.MentorAssignment{}).Count(&count).Error; err != nil {
		t.Fatalf("count assignments: %v", err)
	}
	if count != 0 {
		t.Fatalf("rejected assignments must not persist, found %d rows", count)
	}
}

func TestUnassignIsIdempotent(t *testing.T) {
	db, svc, _ := newAssignmentFixture(t)
	admin := createUser(t, db, "admin@example.com", domain.RoleAdmin)
	mentor := createUser(t, db, "mentor@example.com", domain.RoleMentor)
	student := createUser(t, db, "student@example.com", domain.RoleStudent)

	err := svc.Assign(context.Background(), admin.ID, dto.AssignRequest{
		MentorID: mentor.ID, StudentID: student.ID,
	})
	if err != nil {
		t.Fatalf("Assign: %v", err)
	}

	for i := 0; i < 2; i++ {
		if err := svc.Unassign(context.Background(), admin.ID, student.ID); err != nil {
			t.Fatalf("Unassign #%d: %v", i+1, err)
		}
	}

	ref, err := svc.GetMentorForStudent(context.Background(), student.ID)
	if err != nil {
		t.Fatalf("GetMentorForStudent: %v", err)
	}
	if ref != nil {
		t.Fatalf("student still assigned after unassign: %+v", ref)
	}

	// unassigning a student who never had a mentor is also a no-op success
	if err := svc.Unassign(context.Background(), admin.ID, student.ID+500); err != nil {
		t.Fatalf("Unassign unknown student: %v", err)
	}
}

func TestUnassignThenReassign(t *testing.T) {
	db, svc, _ := newAssignmentFixture(t)
	admin := createUser(t, db, "admin@example.com", domain.RoleAdmin)
	mentor := createUser(t, db, "mentor@example.com", domain.RoleMentor)
	student := createUser(t, db, "student@example.com", domain.RoleStudent)

	input := dto.AssignRequest{MentorID: mentor.ID, StudentID: student.ID}
	if err := svc.Assign(context.Background(), admin.ID, input); err != nil {
		t.Fatalf("Assign: %v", err)
	}
	if err := svc.Unassign(context.Background(), admin.ID, student.ID); err != nil {
		t.Fatalf("Unassign: %v", err)
	}
	if err := svc.Assign(context.Background(), admin.ID, input); err != nil {
		t.Fatalf("reassign after unassign: %v", err)
	}

	ref, err := svc.GetMentorForStudent(context.Background(), student.ID)
	if err != nil {
		t.Fatalf("GetMentorForStudent: %v", err)
	}
	if ref == nil || ref.MentorID != mentor.ID {
		t.Fatalf("expected restored assignment, got %+v", ref)
	}
}

func TestGetMentorForUnassignedStudent(t *testing.T) {
	db, svc, _ := newAssignmentFixture(t)
	student := createUser(t, db, "student@example.com", domain.RoleStudent)

	ref, err := svc.GetMentorForStudent(context.Background(), student.ID)
	if err != nil {
		t.Fatalf("GetMentorForStudent: %v", err)
	}
	if ref != nil {
		t.Fatalf("expected nil for unassigned student, got %+v", ref)
	}
}
