package services

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/sudarshan-gautam/placement-tracking-app-sub002/internal/domain"
	"github.com/sudarshan-gautam/placement-tracking-app-sub002/internal/dto"
	"github.com/sudarshan-gautam/placement-tracking-app-sub002/internal/repository"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SubmissionService owns the student-facing side of the review lifecycle:
// creating pending items and resubmitting rejected ones.
type SubmissionService interface {
	CreateQualification(userID uint, input dto.QualificationCreateRequest) (*domain.Qualification, error)
	ListQualifications(userID uint, limit, offset int) ([]domain.Qualification, error)

	CreateSession(userID uint, input dto.SessionCreateRequest) (*domain.Session, error)
	ListSessions(userID uint, limit, offset int) ([]domain.Session, error)

	CreateActivity(userID uint, input dto.ActivityCreateRequest) (*domain.Activity, error)
	ListActivities(userID uint, limit, offset int) ([]domain.Activity, error)

	CreateApplication(userID uint, input dto.ApplicationCreateRequest) (*domain.Application, error)
	ListApplications(userID uint, limit, offset int) ([]domain.Application, error)

	CreateProfileVerification(userID uint, input dto.ProfileVerificationCreateRequest) (*domain.ProfileVerification, error)
	ListProfileVerifications(userID uint, limit, offset int) ([]domain.ProfileVerification, error)

	Resubmit(userID uint, typ string, id uint) error

	CreateJobPost(postedBy uint, input dto.JobPostCreateRequest) (*domain.JobPost, error)
	ListJobPosts(limit, offset int) ([]domain.JobPost, error)
}

type submissionService struct {
	qualRepo    repository.QualificationRepository
	sessionRepo repository.SessionRepository
	actRepo     repository.ActivityRepository
	appRepo     repository.ApplicationRepository
	profileRepo repository.ProfileVerificationRepository
	jobRepo     repository.JobPostRepository
}

func NewSubmissionService(
	qualRepo repository.QualificationRepository,
	sessionRepo repository.SessionRepository,
	actRepo repository.ActivityRepository,
	appRepo repository.ApplicationRepository,
	profileRepo repository.ProfileVerificationRepository,
	jobRepo repository.JobPostRepository,
) SubmissionService {
	return &submissionService{
		qualRepo:    qualRepo,
		sessionRepo: sessionRepo,
		actRepo:     actRepo,
		appRepo:     appRepo,
		profileRepo: profileRepo,
		jobRepo:     jobRepo,
	}
}

func (s *submissionService) CreateQualification(userID uint, input dto.QualificationCreateRequest) (*domain.Qualification, error) {
	title := strings.TrimSpace(input.Title)
	org := strings.TrimSpace(input.IssuingOrganization)
	if userID == 0 || title == "" || org == "" {
		return nil, domain.ValidationErrorf("title and issuing_organization are required")
	}

	q := &domain.Qualification{
		UserID:              userID,
		Title:               title,
		Description:         strings.TrimSpace(input.Description),
		IssuingOrganization: org,
		ExpiryDate:          input.ExpiryDate,
		CertificateURL:      input.CertificateURL,
		VerificationStatus:  domain.VerifyStatusPending,
	}
	if err := s.qualRepo.Create(q); err != nil {
		return nil, domain.StorageError(err)
	}
	return q, nil
}

func (s *submissionService) ListQualifications(userID uint, limit, offset int) ([]domain.Qualification, error) {
	out, err := s.qualRepo.ListByUser(userID, normalizeLimit(limit), offset)
	if err != nil {
		return nil, domain.StorageError(err)
	}
	return out, nil
}

func (s *submissionService) CreateSession(userID uint, input dto.SessionCreateRequest) (*domain.Session, error) {
	title := strings.TrimSpace(input.Title)
	if userID == 0 || title == "" || input.SessionDate.IsZero() {
		return nil, domain.ValidationErrorf("title and session_date are required")
	}
	if input.DurationMinutes <= 0 {
		return nil, domain.ValidationErrorf("duration_minutes must be positive")
	}

	sess := &domain.Session{
		UserID:          userID,
		Title:           title,
		Description:     strings.TrimSpace(input.Description),
		Location:        strings.TrimSpace(input.Location),
		SessionDate:     input.SessionDate,
		DurationMinutes: input.DurationMinutes,
		LearnerCount:    input.LearnerCount,
		Status:          domain.VerifyStatusPending,
	}
	if err := s.sessionRepo.Create(sess); err != nil {
		return nil, domain.StorageError(err)
	}
	return sess, nil
}

func (s *submissionService) ListSessions(userID uint, limit, offset int) ([]domain.Session, error) {
	out, err := s.sessionRepo.ListByUser(userID, normalizeLimit(limit), offset)
	if err != nil {
		return nil, domain.StorageError(err)
	}
	return out, nil
}

func (s *submissionService) CreateActivity(userID uint, input dto.ActivityCreateRequest) (*domain.Activity, error) {
	title := strings.TrimSpace(input.Title)
	actType := strings.TrimSpace(input.ActivityType)
	if userID == 0 || title == "" || actType == "" {
		return nil, domain.ValidationErrorf("title and activity_type are required")
	}

	a := &domain.Activity{
		UserID:       userID,
		Title:        title,
		ActivityType: actType,
		Description:  strings.TrimSpace(input.Description),
		Status:       domain.VerifyStatusPending,
	}
	if len(input.Evidence) > 0 {
		raw, err := json.Marshal(input.Evidence)
		if err != nil {
			return nil, domain.ValidationErrorf("invalid evidence list")
		}
		a.Evidence = datatypes.JSON(raw)
	}

	if err := s.actRepo.Create(a); err != nil {
		return nil, domain.StorageError(err)
	}
	return a, nil
}

func (s *submissionService) ListActivities(userID uint, limit, offset int) ([]domain.Activity, error) {
	out, err := s.actRepo.ListByUser(userID, normalizeLimit(limit), offset)
	if err != nil {
		return nil, domain.StorageError(err)
	}
	return out, nil
}

func (s *submissionService) CreateApplication(userID uint, input dto.ApplicationCreateRequest) (*domain.Application, error) {
	if userID == 0 || input.JobPostID == 0 {
		return nil, domain.ValidationErrorf("job_post_id is required")
	}

	if _, err := s.jobRepo.FindByID(input.JobPostID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFoundErrorf("job post %d does not exist", input.JobPostID)
		}
		return nil, domain.StorageError(err)
	}

	dup, err := s.appRepo.ExistsForJob(userID, input.JobPostID)
	if err != nil {
		return nil, domain.StorageError(err)
	}
	if dup {
		return nil, domain.ValidationErrorf("already applied to this job post")
	}

	a := &domain.Application{
		UserID:    userID,
		JobPostID: input.JobPostID,
		CoverNote: strings.TrimSpace(input.CoverNote),
		Status:    domain.VerifyStatusPending,
	}
	if err := s.appRepo.Create(a); err != nil {
		return nil, domain.StorageError(err)
	}
	return a, nil
}

func (s *submissionService) ListApplications(userID uint, limit, offset int) ([]domain.Application, error) {
	out, err := s.appRepo.ListByUser(userID, normalizeLimit(limit), offset)
	if err != nil {
		return nil, domain.StorageError(err)
	}
	return out, nil
}

func (s *submissionService) CreateProfileVerification(userID uint, input dto.ProfileVerificationCreateRequest) (*domain.ProfileVerification, error) {
	docType := strings.TrimSpace(strings.ToLower(input.DocumentType))
	docURL := strings.TrimSpace(input.DocumentURL)
	if userID == 0 || docType == "" || docURL == "" {
		return nil, domain.ValidationErrorf("document_type and document_url are required")
	}

	p := &domain.ProfileVerification{
		UserID:       userID,
		DocumentType: domain.ProfileDocType(docType),
		DocumentURL:  docURL,
		Status:       domain.VerifyStatusPending,
	}
	if err := s.profileRepo.Create(p); err != nil {
		return nil, domain.StorageError(err)
	}
	return p, nil
}

func (s *submissionService) ListProfileVerifications(userID uint, limit, offset int) ([]domain.ProfileVerification, error) {
	out, err := s.profileRepo.ListByUser(userID, normalizeLimit(limit), offset)
	if err != nil {
		return nil, domain.StorageError(err)
	}
	return out, nil
}

// Resubmit puts a rejected item back into the review queue. Only the owner may
// resubmit, and only from rejected; earlier feedback is cleared.
func (s *submissionService) Resubmit(userID uint, typ string, id uint) error {
	if userID == 0 || id == 0 {
		return domain.ValidationErrorf("id is required")
	}

	switch strings.ToLower(strings.TrimSpace(typ)) {
	case "qualification":
		q, err := s.qualRepo.FindByID(id)
		if err != nil {
			return resubmitLookupError(err, typ, id)
		}
		if err := checkResubmittable(q.UserID, userID, q.VerificationStatus); err != nil {
			return err
		}
		q.VerificationStatus = domain.VerifyStatusPending
		q.Feedback = nil
		q.VerifiedBy = nil
		q.VerifiedAt = nil
		return s.qualRepo.Save(q)

	case "session":
		sess, err := s.sessionRepo.FindByID(id)
		if err != nil {
			return resubmitLookupError(err, typ, id)
		}
		if err := checkResubmittable(sess.UserID, userID, sess.Status); err != nil {
			return err
		}
		sess.Status = domain.VerifyStatusPending
		sess.Feedback = nil
		sess.VerifiedBy = nil
		sess.VerifiedAt = nil
		return s.sessionRepo.Save(sess)

	case "activity":
		a, err := s.actRepo.FindByID(id)
		if err != nil {
			return resubmitLookupError(err, typ, id)
		}
		if err := checkResubmittable(a.UserID, userID, a.Status); err != nil {
			return err
		}
		a.Status = domain.VerifyStatusPending
		a.Feedback = nil
		a.VerifiedBy = nil
		a.VerifiedAt = nil
		return s.actRepo.Save(a)

	case "application":
		app, err := s.appRepo.FindByID(id)
		if err != nil {
			return resubmitLookupError(err, typ, id)
		}
		if err := checkResubmittable(app.UserID, userID, app.Status); err != nil {
			return err
		}
		app.Status = domain.VerifyStatusPending
		app.Feedback = nil
		app.VerifiedBy = nil
		app.VerifiedAt = nil
		return s.appRepo.Save(app)

	case "profile":
		p, err := s.profileRepo.FindByID(id)
		if err != nil {
			return resubmitLookupError(err, typ, id)
		}
		if err := checkResubmittable(p.UserID, userID, p.Status); err != nil {
			return err
		}
		p.Status = domain.VerifyStatusPending
		p.Feedback = nil
		p.VerifiedBy = nil
		p.VerifiedAt = nil
		return s.profileRepo.Save(p)

	default:
		return domain.ValidationErrorf("unknown verification type %q", typ)
	}
}

func (s *submissionService) CreateJobPost(postedBy uint, input dto.JobPostCreateRequest) (*domain.JobPost, error) {
	title := strings.TrimSpace(input.Title)
	org := strings.TrimSpace(input.Organization)
	if postedBy == 0 || title == "" || org == "" {
		return nil, domain.ValidationErrorf("title and organization are required")
	}
	if input.ClosingDate != nil && input.ClosingDate.Before(time.Now()) {
		return nil, domain.ValidationErrorf("closing_date is in the past")
	}

	j := &domain.JobPost{
		PostedBy:     postedBy,
		Title:        title,
		Organization: org,
		Location:     strings.TrimSpace(input.Location),
		Description:  strings.TrimSpace(input.Description),
		ClosingDate:  input.ClosingDate,
	}
	if err := s.jobRepo.Create(j); err != nil {
		return nil, domain.StorageError(err)
	}
	return j, nil
}

func (s *submissionService) ListJobPosts(limit, offset int) ([]domain.JobPost, error) {
	out, err := s.jobRepo.List(normalizeLimit(limit), offset)
	if err != nil {
		return nil, domain.StorageError(err)
	}
	return out, nil
}

func checkResubmittable(ownerID, callerID uint, status string) error {
	if ownerID != callerID {
		return domain.ErrForbidden
	}
	if status != domain.VerifyStatusRejected {
		return domain.ValidationErrorf("only rejected items can be resubmitted")
	}
	return nil
}

func resubmitLookupError(err error, typ string, id uint) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.NotFoundErrorf("%s %d does not exist", typ, id)
	}
	return domain.StorageError(err)
}

func normalizeLimit(limit int) int {
	if limit <= 0 || limit > 100 {
		return 20
	}
	return limit
}
