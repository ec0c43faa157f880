package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sudarshan-gautam/placement-tracking-app-sub002/internal/domain"
	"github.com/sudarshan-gautam/placement-tracking-app-sub002/internal/dto"
	"github.com/sudarshan-gautam/placement-tracking-app-sub002/internal/repository"
	"gorm.io/gorm"
)

func newSubmissionFixture(t *testing.T) (*gorm.DB, SubmissionService) {
	t.Helper()

	db := newTestDB(t)
	svc := NewSubmissionService(
		repository.NewQualificationRepository(db),
		repository.NewSessionRepository(db),
		repository.NewActivityRepository(db),
		repository.NewApplicationRepository(db),
		repository.NewProfileVerificationRepository(db),
		repository.NewJobPostRepository(db),
	)
	return db, svc
}

func TestCreateQualificationStartsPending(t *testing.T) {
	db, svc := newSubmissionFixture(t)
	student := createUser(t, db, "student@example.com", domain.RoleStudent)

	q, err := svc.CreateQualification(student.ID, dto.QualificationCreateRequest{
		Title:               "  BSc Education  ",
		IssuingOrganization: "University of Leeds",
	})
	if err != nil {
		t.Fatalf("CreateQualification: %v", err)
	}
	if q.Title != "BSc Education" {
		t.Fatalf("title not trimmed: %q", q.Title)
	}
	if q.VerificationStatus != domain.VerifyStatusPending {
		t.Fatalf("new submission status %q, want pending", q.VerificationStatus)
	}

	list, err := svc.ListQualifications(student.ID, 0, 0)
	if err != nil {
		t.Fatalf("ListQualifications: %v", err)
	}
	if len(list) != 1 || list[0].ID != q.ID {
		t.Fatalf("unexpected list: %+v", list)
	}

	if _, err := svc.CreateQualification(student.ID, dto.QualificationCreateRequest{Title: "No org"}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateSessionValidation(t *testing.T) {
	db, svc := newSubmissionFixture(t)
	student := createUser(t, db, "student@example.com", domain.RoleStudent)

	_, err := svc.CreateSession(student.ID, dto.SessionCreateRequest{
		Title:       "No duration",
		SessionDate: time.Now(),
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error for zero duration, got %v", err)
	}

	learners := 28
	sess, err := svc.CreateSession(student.ID, dto.SessionCreateRequest{
		Title:           "Year 9 Mathematics",
		SessionDate:     time.Now(),
		DurationMinutes: 60,
		LearnerCount:    &learners,
	})
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	if sess.Status != domain.VerifyStatusPending {
		t.Fatalf("new session status %q", sess.Status)
	}
}

func TestCreateActivityStoresEvidence(t *testing.T) {
	db, svc := newSubmissionFixture(t)
	student := createUser(t, db, "student@example.com", domain.RoleStudent)

	a, err := svc.CreateActivity(student.ID, dto.ActivityCreateRequest{
		Title:        "Safeguarding Workshop",
		ActivityType: "cpd",
		Evidence:     []string{"https://files.example.com/a.pdf", "https://files.example.com/b.pdf"},
	})
	if err != nil {
		t.Fatalf("CreateActivity: %v", err)
	}

	var reread domain.Activity
	if err := db.First(&reread, a.ID).Error; err != nil {
		t.Fatalf("reread activity: %v", err)
	}
	got := string(reread.Evidence)
	want := `["https://files.example.com/a.pdf","https://files.example.com/b.pdf"]`
	if got != want {
		t.Fatalf("evidence stored as %q, want %q", got, want)
	}
}

func TestCreateApplicationChecksJobAndDuplicates(t *testing.T) {
	db, svc := newSubmissionFixture(t)
	student := createUser(t, db, "student@example.com", domain.RoleStudent)
	admin := createUser(t, db, "admin@example.com", domain.RoleAdmin)

	if _, err := svc.CreateApplication(student.ID, dto.ApplicationCreateRequest{JobPostID: 999}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not-found for unknown job post, got %v", err)
	}

	job, err := svc.CreateJobPost(admin.ID, dto.JobPostCreateRequest{
		Title:        "Teaching Assistant",
		Organization: "Northside School",
	})
	if err != nil {
		t.Fatalf("CreateJobPost: %v", err)
	}

	if _, err := svc.CreateApplication(student.ID, dto.ApplicationCreateRequest{JobPostID: job.ID, CoverNote: "Keen"}); err != nil {
		t.Fatalf("CreateApplication: %v", err)
	}
	if _, err := svc.CreateApplication(student.ID, dto.ApplicationCreateRequest{JobPostID: job.ID}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("duplicate application should fail validation, got %v", err)
	}
}

func TestCreateJobPostRejectsPastClosingDate(t *testing.T) {
	db, svc := newSubmissionFixture(t)
	admin := createUser(t, db, "admin@example.com", domain.RoleAdmin)

	past := time.Now().Add(-24 * time.Hour)
	_, err := svc.CreateJobPost(admin.ID, dto.JobPostCreateRequest{
		Title:        "Expired Post",
		Organization: "Org",
		ClosingDate:  &past,
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestListSubmissionsReportsStorageErrors(t *testing.T) {
	db, svc := newSubmissionFixture(t)
	student := createUser(t, db, "student@example.com", domain.RoleStudent)

	if err := db.Migrator().DropTable("qualifications"); err != nil {
		t.Fatalf("drop qualifications: %v", err)
	}

	_, err := svc.ListQualifications(student.ID, 0, 0)
	if !errors.Is(err, domain.ErrStorage) {
		t.Fatalf("expected storage error, got %v", err)
	}
}

func TestResubmitRejectedQualification(t *testing.T) {
	db, svc := newSubmissionFixture(t)
	student := createUser(t, db, "student@example.com", domain.RoleStudent)
	admin := createUser(t, db, "admin@example.com", domain.RoleAdmin)

	q, err := svc.CreateQualification(student.ID, dto.QualificationCreateRequest{
		Title:               "PGCE",
		IssuingOrganization: "University of Leeds",
	})
	if err != nil {
		t.Fatalf("CreateQualification: %v", err)
	}

	verifier := NewVerificationService(
		repository.NewVerificationRepository(db),
		repository.NewAuditRepository(db),
		nil,
	)
	err = verifier.SetVerificationStatus(context.Background(), admin.ID, dto.SetVerificationStatusRequest{
		ID: q.ID, Type: "qualification", Status: domain.VerifyStatusRejected, Feedback: "Certificate unreadable",
	})
	if err != nil {
		t.Fatalf("reject: %v", err)
	}

	if err := svc.Resubmit(student.ID, "qualification", q.ID); err != nil {
		t.Fatalf("Resubmit: %v", err)
	}

	var reread domain.Qualification
	if err := db.First(&reread, q.ID).Error; err != nil {
		t.Fatalf("reread: %v", err)
	}
	if reread.VerificationStatus != domain.VerifyStatusPending {
		t.Fatalf("resubmitted status %q, want pending", reread.VerificationStatus)
	}
	if reread.Feedback != nil || reread.VerifiedBy != nil || reread.VerifiedAt != nil {
		t.Fatalf("review fields not cleared: %+v", reread)
	}
}

func TestResubmitGuards(t *testing.T) {
	db, svc := newSubmissionFixture(t)
	owner := createUser(t, db, "owner@example.com", domain.RoleStudent)
	other := createUser(t, db, "other@example.com", domain.RoleStudent)

	q, err := svc.CreateQualification(owner.ID, dto.QualificationCreateRequest{
		Title:               "Pending Item",
		IssuingOrganization: "Org",
	})
	if err != nil {
		t.Fatalf("CreateQualification: %v", err)
	}

	// still pending, nothing to resubmit
	if err := svc.Resubmit(owner.ID, "qualification", q.ID); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("resubmitting a pending item should fail validation, got %v", err)
	}

	if err := db.Model(&domain.Qualification{}).Where("id = ?", q.ID).
		Update("verification_status", domain.VerifyStatusRejected).Error; err != nil {
		t.Fatalf("mark rejected: %v", err)
	}

	if err := svc.Resubmit(other.ID, "qualification", q.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("non-owner resubmit should be forbidden, got %v", err)
	}
	if err := svc.Resubmit(owner.ID, "qualification", 999); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("unknown id should be not-found, got %v", err)
	}
	if err := svc.Resubmit(owner.ID, "medal", q.ID); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("unknown type should fail validation, got %v", err)
	}

	if err := svc.Resubmit(owner.ID, "qualification", q.ID); err != nil {
		t.Fatalf("owner resubmit of rejected item: %v", err)
	}
}
