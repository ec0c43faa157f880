package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/sudarshan-gautam/placement-tracking-app-sub002/internal/domain"
	"github.com/sudarshan-gautam/placement-tracking-app-sub002/internal/dto"
	"github.com/sudarshan-gautam/placement-tracking-app-sub002/internal/interfaces"
	"github.com/sudarshan-gautam/placement-tracking-app-sub002/internal/repository"
	"gorm.io/gorm"
)

// queries across five tables can pile up; keep the whole call bounded
const verificationTimeout = 10 * time.Second

type VerificationService interface {
	ListPendingVerifications(ctx context.Context) (*dto.VerificationQueueResponse, error)
	SetVerificationStatus(ctx context.Context, reviewerID uint, input dto.SetVerificationStatusRequest) error
	History(ctx context.Context, typ string, id uint) ([]domain.AuditLog, error)
	Dashboard(ctx context.Context, userID uint) (*dto.DashboardResponse, error)
}

type verificationService struct {
	repo      repository.VerificationRepository
	auditRepo repository.AuditRepository
	producer  interfaces.ProducerHandler

	priority domain.PriorityPolicy
	now      func() time.Time
}

type VerificationOption func(*verificationService)

// WithPriorityPolicy swaps the staleness bucket for another classifier.
func WithPriorityPolicy(p domain.PriorityPolicy) VerificationOption {
	return func(s *verificationService) { s.priority = p }
}

func WithClock(now func() time.Time) VerificationOption {
	return func(s *verificationService) { s.now = now }
}

func NewVerificationService(
	repo repository.VerificationRepository,
	auditRepo repository.AuditRepository,
	producer interfaces.ProducerHandler,
	opts ...VerificationOption,
) VerificationService {
	s := &verificationService{
		repo:      repo,
		auditRepo: auditRepo,
		producer:  producer,
		priority:  domain.RecencyPriority,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListPendingVerifications walks the source registry and concatenates each
// table's pending rows, newest first within a source. A failing source is
// logged and skipped so the rest of the queue still renders; only an
// unreachable store fails the whole call.
func (s *verificationService) ListPendingVerifications(ctx context.Context) (*dto.VerificationQueueResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, verificationTimeout)
	defer cancel()

	if err := s.repo.Ping(ctx); err != nil {
		return nil, domain.StorageError(err)
	}

	now := s.now()
	records := make([]domain.UnifiedVerificationRecord, 0)
	var failed []string

	for _, src := range domain.VerificationSources {
		rows, err := s.repo.ListBySource(ctx, src)
		if err != nil {
			log.Printf("verification source %s query failed: %v", src.Type, err)
			failed = append(failed, src.Type)
			continue
		}
		for _, row := range rows {
			records = append(records, s.toRecord(src, row, now))
		}
	}

	// every source broke: serve the demo fallback rather than an empty queue
	if len(failed) == len(domain.VerificationSources) {
		q := sampleVerificationQueue(now)
		q.FailedSources = failed
		return q, nil
	}

	return &dto.VerificationQueueResponse{
		Records:       records,
		Degraded:      len(failed) > 0,
		FailedSources: failed,
	}, nil
}

func (s *verificationService) toRecord(src domain.VerificationSource, row repository.SourceRow, now time.Time) domain.UnifiedVerificationRecord {
	return domain.UnifiedVerificationRecord{
		ID:         row.ID,
		Type:       src.Label,
		SourceType: src.Type,
		Student: domain.VerificationStudent{
			ID:    row.StudentID,
			Name:  row.StudentName,
			Email: row.StudentEmail,
		},
		Activity: domain.VerificationActivity{
			Title:       row.Title,
			Type:        row.ItemType,
			Description: row.Description,
			Location:    row.Location,
		},
		SubmittedAt: row.CreatedAt,
		Priority:    s.priority(row.CreatedAt, now),
		Attachments: parseAttachments(row.Attachment),
		Status:      row.Status,
	}
}

// parseAttachments accepts either a bare URL or a JSON array of URLs (the
// evidence column stores the latter).
func parseAttachments(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "null" {
		return nil
	}
	if strings.HasPrefix(raw, "[") {
		var urls []string
		if err := json.Unmarshal([]byte(raw), &urls); err == nil {
			return urls
		}
	}
	return []string{raw}
}

// SetVerificationStatus routes one status transition to the right table. The
// update is a pure set; re-applying the current status succeeds. An id that
// matches nothing is reported, never silently ignored.
func (s *verificationService) SetVerificationStatus(ctx context.Context, reviewerID uint, input dto.SetVerificationStatusRequest) error {
	ctx, cancel := context.WithTimeout(ctx, verificationTimeout)
	defer cancel()

	if input.ID == 0 {
		return domain.ValidationErrorf("id is required")
	}

	status := strings.ToLower(strings.TrimSpace(input.Status))
	if status != domain.VerifyStatusVerified && status != domain.VerifyStatusRejected {
		return domain.ValidationErrorf("status must be %q or %q", domain.VerifyStatusVerified, domain.VerifyStatusRejected)
	}

	typ := strings.ToLower(strings.TrimSpace(input.Type))
	if typ == "" {
		typ = "qualification"
	}
	src, ok := domain.FindVerificationSource(typ)
	if !ok {
		return domain.ValidationErrorf("unknown verification type %q", input.Type)
	}

	exists, err := s.repo.Exists(ctx, src, input.ID)
	if err != nil {
		return domain.StorageError(err)
	}
	if !exists {
		return domain.NotFoundErrorf("%s %d does not exist", src.Type, input.ID)
	}

	var feedback *string
	if fb := strings.TrimSpace(input.Feedback); fb != "" {
		feedback = &fb
	}

	if err := s.repo.SetStatus(ctx, src, input.ID, status, feedback, reviewerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NotFoundErrorf("%s %d does not exist", src.Type, input.ID)
		}
		return domain.StorageError(err)
	}

	s.audit(reviewerID, "verification."+status, src.Table, input.ID, feedback)

	if s.producer != nil {
		payload := fmt.Sprintf(
			`{"id":%d,"type":"%s","status":"%s","reviewer_id":%d}`,
			input.ID, src.Type, status, reviewerID,
		)
		_ = s.producer.PublishMessage([]byte("verification.decided"), []byte(payload))
	}

	return nil
}

// History lists the decision trail for one reviewable item, newest first.
func (s *verificationService) History(ctx context.Context, typ string, id uint) ([]domain.AuditLog, error) {
	if id == 0 {
		return nil, domain.ValidationErrorf("id is required")
	}
	src, ok := domain.FindVerificationSource(strings.ToLower(strings.TrimSpace(typ)))
	if !ok {
		return nil, domain.ValidationErrorf("unknown verification type %q", typ)
	}

	out, err := s.auditRepo.ListByEntity(src.Table, id, 50, 0)
	if err != nil {
		return nil, domain.StorageError(err)
	}
	return out, nil
}

func (s *verificationService) Dashboard(ctx context.Context, userID uint) (*dto.DashboardResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, verificationTimeout)
	defer cancel()

	if userID == 0 {
		return nil, domain.ValidationErrorf("user id is required")
	}

	out := &dto.DashboardResponse{}
	targets := map[string]*dto.StatusCounts{
		"qualification": &out.Qualifications,
		"session":       &out.Sessions,
		"activity":      &out.Activities,
		"application":   &out.Applications,
		"profile":       &out.ProfileVerifications,
	}

	for _, src := range domain.VerificationSources {
		counts, err := s.repo.StatusCounts(ctx, src, userID)
		if err != nil {
			return nil, domain.StorageError(err)
		}
		t := targets[src.Type]
		t.Pending = counts[domain.VerifyStatusPending]
		t.Verified = counts[domain.VerifyStatusVerified]
		t.Rejected = counts[domain.VerifyStatusRejected]
	}
	return out, nil
}

func (s *verificationService) audit(actorID uint, action, entity string, entityID uint, note *string) {
	if s.auditRepo == nil {
		return
	}
	entry := &domain.AuditLog{
		ActorID:  actorID,
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		Note:     note,
	}
	if err := s.auditRepo.Record(entry); err != nil {
		log.Printf("audit record error: %v", err)
	}
}

// sampleVerificationQueue is the demo payload served when every source query
// fails. Kept small and clearly fake.
func sampleVerificationQueue(now time.Time) *dto.VerificationQueueResponse {
	mk := func(id uint, label, srcType, title, itemType string, age time.Duration) domain.UnifiedVerificationRecord {
		return domain.UnifiedVerificationRecord{
			ID:         id,
			Type:       label,
			SourceType: srcType,
			Student: domain.VerificationStudent{
				ID:    0,
				Name:  "Sample Student",
				Email: "sample@example.com",
			},
			Activity: domain.VerificationActivity{
				Title:       title,
				Type:        itemType,
				Description: "Sample record shown while verification data is unavailable",
			},
			SubmittedAt: now.Add(-age),
			Priority:    domain.RecencyPriority(now.Add(-age), now),
			Status:      domain.VerifyStatusPending,
		}
	}

	return &dto.VerificationQueueResponse{
		Records: []domain.UnifiedVerificationRecord{
			mk(1, "Qualification", "qualification", "First Aid Certificate", "Qualification", 24*time.Hour),
			mk(2, "Teaching Session", "session", "Year 9 Mathematics", "Teaching Session", 4*24*time.Hour),
			mk(3, "Activity", "activity", "Safeguarding Workshop", "cpd", 10*24*time.Hour),
		},
		Degraded: true,
	}
}
