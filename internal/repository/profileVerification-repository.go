package repository

import (
	"github.com/sudarshan-gautam/placement-tracking-app-sub002/internal/domain"
	"gorm.io/gorm"
)

type ProfileVerificationRepository interface {
	Create(p *domain.ProfileVerification) error
	FindByID(id uint) (*domain.ProfileVerification, error)
	ListByUser(userID uint, limit, offset int) ([]domain.ProfileVerification, error)
	Save(p *domain.ProfileVerification) error
}

type profileVerificationRepository struct {
	db *gorm.DB
}

func NewProfileVerificationRepository(db *gorm.DB) ProfileVerificationRepository {
	return &profileVerificationRepository{db: db}
}

func (r *profileVerificationRepository) Create(p *domain.ProfileVerification) error {
	return r.db.Create(p).Error
}

func (r *profileVerificationRepository) FindByID(id uint) (*domain.ProfileVerification, error) {
	var p domain.ProfileVerification
	if err := r.db.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *profileVerificationRepository) ListByUser(userID uint, limit, offset int) ([]domain.ProfileVerification, error) {
	var out []domain.ProfileVerification
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *profileVerificationRepository) Save(p *domain.ProfileVerification) error {
	return r.db.Save(p).Error
}
