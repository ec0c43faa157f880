package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/sudarshan-gautam/placement-tracking-app-sub002/internal/domain"
	"gorm.io/gorm"
)

// SourceRow is the flat shape every reviewable table is projected into before
// the service layer turns it into a UnifiedVerificationRecord.
type SourceRow struct {
	ID           uint
	Title        string
	ItemType     string
	Description  string
	Location     string
	Attachment   string
	Status       string
	CreatedAt    time.Time
	StudentID    uint
	StudentName  string
	StudentEmail string
}

type VerificationRepository interface {
	Ping(ctx context.Context) error
	ListBySource(ctx context.Context, src domain.VerificationSource) ([]SourceRow, error)
	Exists(ctx context.Context, src domain.VerificationSource, id uint) (bool, error)
	SetStatus(ctx context.Context, src domain.VerificationSource, id uint, status string, feedback *string, reviewerID uint) error
	StatusCounts(ctx context.Context, src domain.VerificationSource, userID uint) (map[string]int64, error)
}

type verificationRepository struct {
	db *gorm.DB
}

func NewVerificationRepository(db *gorm.DB) VerificationRepository {
	return &verificationRepository{db: db}
}

func (r *verificationRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// ListBySource runs one query per source table, joined against users for the
// submitter's name and email. Queries go through Table() rather than the
// models, so the soft-delete scope has to be spelled out.
func (r *verificationRepository) ListBySource(ctx context.Context, src domain.VerificationSource) ([]SourceRow, error) {
	var rows []SourceRow

	selectExpr := fmt.Sprintf(
		`%[1]s.id AS id,
		 %[2]s AS title,
		 %[3]s AS item_type,
		 %[4]s AS description,
		 %[5]s AS location,
		 %[6]s AS attachment,
		 %[1]s.%[7]s AS status,
		 %[1]s.created_at AS created_at,
		 users.id AS student_id,
		 users.first_name || ' ' || users.last_name AS student_name,
		 users.email AS student_email`,
		src.Table, src.TitleExpr, src.TypeExpr, src.DescExpr,
		src.LocationExpr, src.AttachExpr, src.StatusCol,
	)

	q := r.db.WithContext(ctx).
		Table(src.Table).
		Select(selectExpr).
		Joins(fmt.Sprintf("JOIN users ON users.id = %s.user_id", src.Table)).
		Where(src.Table + ".deleted_at IS NULL").
		Where("users.deleted_at IS NULL")

	if src.ExtraJoin != "" {
		q = q.Joins(src.ExtraJoin)
	}
	if !src.AllStatuses {
		q = q.Where(fmt.Sprintf("%s.%s = ?", src.Table, src.StatusCol), domain.VerifyStatusPending)
	}

	if err := q.Order(src.Table + ".created_at DESC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *verificationRepository) Exists(ctx context.Context, src domain.VerificationSource, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table(src.Table).
		Where("id = ? AND deleted_at IS NULL", id).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// SetStatus is a pure set: re-applying the current status succeeds. Zero
// matched rows surfaces as gorm.ErrRecordNotFound so the service can promote
// it instead of silently succeeding.
func (r *verificationRepository) SetStatus(ctx context.Context, src domain.VerificationSource, id uint, status string, feedback *string, reviewerID uint) error {
	now := time.Now()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Table(src.Table).
			Where("id = ? AND deleted_at IS NULL", id).
			Updates(map[string]any{
				src.StatusCol:   status,
				src.FeedbackCol: feedback,
				"verified_by":   reviewerID,
				"verified_at":   now,
				"updated_at":    now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// StatusCounts feeds the dashboard: per-status row counts for one source,
// scoped to a single submitter.
func (r *verificationRepository) StatusCounts(ctx context.Context, src domain.VerificationSource, userID uint) (map[string]int64, error) {
	type bucket struct {
		Status string
		N      int64
	}
	var buckets []bucket

	err := r.db.WithContext(ctx).
		Table(src.Table).
		Select(fmt.Sprintf("%s AS status, COUNT(*) AS n", src.StatusCol)).
		Where("user_id = ? AND deleted_at IS NULL", userID).
		Group(src.StatusCol).
		Scan(&buckets).Error
	if err != nil {
		return nil, err
	}

	out := make(map[string]int64, len(buckets))
	for _, b := range buckets {
		out[b.Status] = b.N
	}
	return out, nil
}
