package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sudarshan-gautam/placement-tracking-app-sub002/internal/domain"
	"github.com/sudarshan-gautam/placement-tracking-app-sub002/internal/dto"
	"github.com/sudarshan-gautam/placement-tracking-app-sub002/internal/interfaces"
	"github.com/sudarshan-gautam/placement-tracking-app-sub002/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService interface {
	Register(input dto.RegisterRequest) (*domain.User, error)
	Login(input dto.UserLogin) (*domain.User, error)
	GetProfile(userID uint) (*dto.UserProfileResponse, error)
	UpdateProfile(userID uint, input dto.UpdateUserProfile) (*dto.UserProfileResponse, error)

	RoleCode(userID uint) (string, error)
	IsAdmin(userID uint) (bool, error)
	IsMentor(userID uint) (bool, error)
}

type userService struct {
	repo         repository.UserRepository
	roleRepo     repository.RoleRepository
	userRoleRepo repository.UserRoleRepository
	producer     interfaces.ProducerHandler
}

func NewUserService(
	repo repository.UserRepository,
	roleRepo repository.RoleRepository,
	userRoleRepo repository.UserRoleRepository,
	producer interfaces.ProducerHandler,
) UserService {
	return &userService{
		repo:         repo,
		roleRepo:     roleRepo,
		userRoleRepo: userRoleRepo,
		producer:     producer,
	}
}

func (u *userService) Register(input dto.RegisterRequest) (*domain.User, error) {
	email := strings.TrimSpace(strings.ToLower(input.Email))
	firstName := strings.TrimSpace(input.FirstName)
	lastName := strings.TrimSpace(input.LastName)
	role := strings.TrimSpace(strings.ToUpper(input.Role))

	if email == "" || strings.TrimSpace(input.Password) == "" || firstName == "" || lastName == "" {
		return nil, domain.ValidationErrorf("email, password and name are required")
	}
	// admins are seeded, never self-registered
	if role != domain.RoleStudent && role != domain.RoleMentor {
		return nil, domain.ValidationErrorf("role must be STUDENT or MENTOR")
	}
	if len(input.Password) < 6 {
		return nil, domain.ValidationErrorf("password must be at least 6 characters")
	}

	existing, err := u.repo.FindUserByEmail(email)
	if err == nil && existing != nil && existing.ID != 0 {
		return nil, domain.ValidationErrorf("email already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("failed to hash password")
	}

	newUser := &domain.User{
		Email:        email,
		PasswordHash: string(hashedPassword),
		FirstName:    firstName,
		LastName:     lastName,
		Phone:        input.Phone,
		Status:       "active",
	}

	usr, err := u.repo.CreateUser(newUser)
	if err != nil {
		return nil, err
	}

	roleObj, err := u.roleRepo.FindByCode(role)
	if err != nil {
		return nil, err
	}
	if err := u.userRoleRepo.ReplaceUserRoles(usr.ID, []uint{roleObj.ID}); err != nil {
		return nil, err
	}

	if u.producer != nil {
		payload := fmt.Sprintf(
			`{"user_id":%d,"email":"%s","role":"%s"}`,
			usr.ID, usr.Email, role,
		)
		_ = u.producer.PublishMessage([]byte("user.registered"), []byte(payload))
	}

	return usr, nil
}

func (u *userService) Login(input dto.UserLogin) (*domain.User, error) {
	email := strings.TrimSpace(strings.ToLower(input.Email))
	password := strings.TrimSpace(input.Password)

	if email == "" || password == "" {
		return nil, errors.New("invalid email or password")
	}

	user, err := u.repo.FindUserByEmail(email)
	if err != nil || user == nil || user.ID == 0 {
		return nil, errors.New("invalid email or password")
	}

	if user.Status != "" && user.Status != "active" {
		return nil, errors.New("account is not active")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, errors.New("invalid email or password")
	}

	return user, nil
}

func (u *userService) GetProfile(userID uint) (*dto.UserProfileResponse, error) {
	if userID == 0 {
		return nil, domain.ValidationErrorf("invalid user id")
	}

	user, err := u.repo.FindUserById(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFoundErrorf("user %d does not exist", userID)
		}
		return nil, err
	}

	role, err := u.roleRepo.GetRoleCodeByUserID(userID)
	if err != nil {
		role = ""
	}

	return &dto.UserProfileResponse{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Phone:     user.Phone,
		Role:      role,
		Status:    user.Status,
	}, nil
}

// UpdateProfile patches the caller's own record: nil fields are untouched,
// provided fields must be non-empty.
func (u *userService) UpdateProfile(userID uint, input dto.UpdateUserProfile) (*dto.UserProfileResponse, error) {
	if userID == 0 {
		return nil, domain.ValidationErrorf("invalid user id")
	}

	user, err := u.repo.FindUserById(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFoundErrorf("user %d does not exist", userID)
		}
		return nil, domain.StorageError(err)
	}

	if input.FirstName != nil {
		fn := strings.TrimSpace(*input.FirstName)
		if fn == "" {
			return nil, domain.ValidationErrorf("first_name cannot be empty")
		}
		user.FirstName = fn
	}
	if input.LastName != nil {
		ln := strings.TrimSpace(*input.LastName)
		if ln == "" {
			return nil, domain.ValidationErrorf("last_name cannot be empty")
		}
		user.LastName = ln
	}
	if input.Phone != nil {
		p := strings.TrimSpace(*input.Phone)
		if p == "" {
			return nil, domain.ValidationErrorf("phone cannot be empty")
		}
		user.Phone = &p
	}

	if err := u.repo.SaveUser(user); err != nil {
		return nil, domain.StorageError(err)
	}

	return u.GetProfile(userID)
}

func (u *userService) RoleCode(userID uint) (string, error) {
	if userID == 0 {
		return "", errors.New("invalid user id")
	}
	return u.roleRepo.GetRoleCodeByUserID(userID)
}

func (u *userService) IsAdmin(userID uint) (bool, error) {
	return u.hasRole(userID, domain.RoleAdmin)
}

func (u *userService) IsMentor(userID uint) (bool, error) {
	return u.hasRole(userID, domain.RoleMentor)
}

func (u *userService) hasRole(userID uint, code string) (bool, error) {
	if userID == 0 {
		return false, errors.New("invalid user id")
	}

	roles, err := u.userRoleRepo.GetRolesByUserID(userID)
	if err != nil {
		return false, err
	}
	for _, r := range roles {
		if strings.ToUpper(r.Code) == code {
			return true, nil
		}
	}
	return false, nil
}
