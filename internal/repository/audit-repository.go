package repository

import (
	"github.com/sudarshan-gautam/placement-tracking-app-sub002/internal/domain"
	"gorm.io/gorm"
)

type AuditRepository interface {
	Record(entry *domain.AuditLog) error
	ListByEntity(entity string, entityID uint, limit, offset int) ([]domain.AuditLog, error)
}

type auditRepository struct {
	db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) AuditRepository {
	return &auditRepository{db: db}
}

func (r *auditRepository) Record(entry *domain.AuditLog) error {
	return r.db.Create(entry).Error
}

func (r *auditRepository) ListByEntity(entity string, entityID uint, limit, offset int) ([]domain.AuditLog, error) {
	var out []domain.AuditLog
	err := r.db.Where("entity = ? AND entity_id = ?", entity, entityID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
