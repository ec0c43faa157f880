package repository

import (
	"github.com/sudarshan-gautam/placement-tracking-app-sub002/internal/domain"
	"gorm.io/gorm"
)

type QualificationRepository interface {
	Create(q *domain.Qualification) error
	FindByID(id uint) (*domain.Qualification, error)
	ListByUser(userID uint, limit, offset int) ([]domain.Qualification, error)
	Save(q *domain.Qualification) error
}

type qualificationRepository struct {
	db *gorm.DB
}

func NewQualificationRepository(db *gorm.DB) QualificationRepository {
	return &qualificationRepository{db: db}
}

func (r *qualificationRepository) Create(q *domain.Qualification) error {
	return r.db.Create(q).Error
}

func (r *qualificationRepository) FindByID(id uint) (*domain.Qualification, error) {
	var q domain.Qualification
	if err := r.db.First(&q, id).Error; err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *qualificationRepository) ListByUser(userID uint, limit, offset int) ([]domain.Qualification, error) {
	var out []domain.Qualification
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *qualificationRepository) Save(q *domain.Qualification) error {
	return r.db.Save(q).Error
}
