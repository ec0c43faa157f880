package repository

import (
	"github.com/sudarshan-gautam/placement-tracking-app-sub002/internal/domain"
	"gorm.io/gorm"
)

type SessionRepository interface {
	Create(s *domain.Session) error
	FindByID(id uint) (*domain.Session, error)
	ListByUser(userID uint, limit, offset int) ([]domain.Session, error)
	Save(s *domain.Session) error
}

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(s *domain.Session) error {
	return r.db.Create(s).Error
}

func (r *sessionRepository) FindByID(id uint) (*domain.Session, error) {
	var s domain.Session
	if err := r.db.First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *sessionRepository) ListByUser(userID uint, limit, offset int) ([]domain.Session, error) {
	var out []domain.Session
	err := r.db.Where("user_id = ?", userID).
		Order("session_date DESC").
		Limit(limit).Offset(offset).
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *sessionRepository) Save(s *domain.Session) error {
	return r.db.Save(s).Error
}
