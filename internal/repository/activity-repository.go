package repository

import (
	"github.com/sudarshan-gautam/placement-tracking-app-sub002/internal/domain"
	"gorm.io/gorm"
)

type ActivityRepository interface {
	Create(a *domain.Activity) error
	FindByID(id uint) (*domain.Activity, error)
	ListByUser(userID uint, limit, offset int) ([]domain.Activity, error)
	Save(a *domain.Activity) error
}

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) Create(a *domain.Activity) error {
	return r.db.Create(a).Error
}

func (r *activityRepository) FindByID(id uint) (*domain.Activity, error) {
	var a domain.Activity
	if err := r.db.First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *activityRepository) ListByUser(userID uint, limit, offset int) ([]domain.Activity, error) {
	var out []domain.Activity
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *activityRepository) Save(a *domain.Activity) error {
	return r.db.Save(a).Error
}
