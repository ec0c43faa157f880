package repository

import (
	"github.com/sudarshan-gautam/placement-tracking-app-sub002/internal/domain"
	"gorm.io/gorm"
)

type ApplicationRepository interface {
	Create(a *domain.Application) error
	FindByID(id uint) (*domain.Application, error)
	ListByUser(userID uint, limit, offset int) ([]domain.Application, error)
	ExistsForJob(userID, jobPostID uint) (bool, error)
	Save(a *domain.Application) error
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Create(a *domain.Application) error {
	return r.db.Create(a).Error
}

func (r *applicationRepository) FindByID(id uint) (*domain.Application, error) {
	var a domain.Application
	if err := r.db.Preload("JobPost").First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *applicationRepository) ListByUser(userID uint, limit, offset int) ([]domain.Application, error) {
	var out []domain.Application
	err := r.db.Preload("JobPost").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *applicationRepository) ExistsForJob(userID, jobPostID uint) (bool, error) {
	var count int64
	err := r.db.Model(&domain.Application{}).
		Where("user_id = ? AND job_post_id = ?", userID, jobPostID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *applicationRepository) Save(a *domain.Application) error {
	return r.db.Save(a).Error
}
