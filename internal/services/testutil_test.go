package services

import (
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/sudarshan-gautam/placement-tracking-app-sub002/internal/domain"
	"github.com/sudarshan-gautam/placement-tracking-app-sub002/internal/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a uniquely named in-memory SQLite database with the full
// schema and seeded roles.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Role{},
		&domain.UserRole{},
		&domain.Qualification{},
		&domain.Session{},
		&domain.Activity{},
		&domain.JobPost{},
		&domain.Application{},
		&domain.ProfileVerification{},
		&domain.MentorAssignment{},
		&domain.Conversation{},
		&domain.Message{},
		&domain.AuditLog{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	for _, code := range []string{domain.RoleAdmin, domain.RoleMentor, domain.RoleStudent} {
		if err := db.Create(&domain.Role{Code: code, Name: code}).Error; err != nil {
			t.Fatalf("seed role %s: %v", code, err)
		}
	}

	return db
}

// createUser inserts a user holding the given role and returns it.
func createUser(t *testing.T, db *gorm.DB, email, roleCode string) *domain.User {
	t.Helper()

	u := &domain.User{
		Email:        email,
		PasswordHash: "x",
		FirstName:    "Test",
		LastName:     "User",
		Status:       "active",
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("create user %s: %v", email, err)
	}

	var role domain.Role
	if err := db.Where("code = ?", roleCode).First(&role).Error; err != nil {
		t.Fatalf("find role %s: %v", roleCode, err)
	}
	if err := db.Create(&domain.UserRole{UserID: u.ID, RoleID: role.ID}).Error; err != nil {
		t.Fatalf("link role %s: %v", roleCode, err)
	}

	return u
}

// fakeProducer records published events in memory.
type fakeProducer struct {
	mu     sync.Mutex
	events []string
}

func (p *fakeProducer) PublishMessage(key, value []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, string(key))
	return nil
}

func (p *fakeProducer) keys() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.events))
	copy(out, p.events)
	return out
}

func newVerificationFixture(t *testing.T) (*gorm.DB, VerificationService, *fakeProducer) {
	t.Helper()

	db := newTestDB(t)
	producer := &fakeProducer{}
	svc := NewVerificationService(
		repository.NewVerificationRepository(db),
		repository.NewAuditRepository(db),
		producer,
	)
	return db, svc, producer
}
