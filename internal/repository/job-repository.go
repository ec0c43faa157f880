package repository

import (
	"github.com/sudarshan-gautam/placement-tracking-app-sub002/internal/domain"
	"gorm.io/gorm"
)

type JobPostRepository interface {
	Create(j *domain.JobPost) error
	FindByID(id uint) (*domain.JobPost, error)
	List(limit, offset int) ([]domain.JobPost, error)
}

type jobPostRepository struct {
	db *gorm.DB
}

func NewJobPostRepository(db *gorm.DB) JobPostRepository {
	return &jobPostRepository{db: db}
}

func (r *jobPostRepository) Create(j *domain.JobPost) error {
	return r.db.Create(j).Error
}

func (r *jobPostRepository) FindByID(id uint) (*domain.JobPost, error) {
	var j domain.JobPost
	if err := r.db.First(&j, id).Error; err != nil {
		return nil, err
	}
	return &j, nil
}

func (r *jobPostRepository) List(limit, offset int) ([]domain.JobPost, error) {
	var out []domain.JobPost
	err := r.db.Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
