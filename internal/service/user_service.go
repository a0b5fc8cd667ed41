package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"minops/internal/audit"
	"minops/internal/cache"
	errs "minops/internal/errors"
	"minops/internal/model"
	"minops/internal/repository"
)

const userCacheTTL = 5 * time.Minute

// UserService exposes user administration operations.
type UserService interface {
	CreateUser(ctx context.Context, name, email, password string, roleID *uint, actor audit.Actor) (*model.User, error)
	GetUser(ctx context.Context, id uint) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	UpdateUser(ctx context.Context, id uint, name, email string, actor audit.Actor) (*model.User, error)
	DeleteUser(ctx context.Context, id uint, actor audit.Actor) error
	AssignRole(ctx context.Context, userID, roleID uint, actor audit.Actor) (*model.User, error)
}

type userService struct {
	userRepo repository.UserRepository
	roleRepo repository.RoleRepository
	cache    *cache.Client
	recorder audit.Recorder
}

// NewUserService builds a UserService.
func NewUserService(userRepo repository.UserRepository, roleRepo repository.RoleRepository, cache *cache.Client, recorder audit.Recorder) UserService {
	return &userService{
		userRepo: userRepo,
		roleRepo: roleRepo,
		cache:    cache,
		recorder: recorder,
	}
}

func (s *userService) cacheKey(id uint) string {
	return fmt.Sprintf("user:%d", id)
}

// userSnapshot is the audited field subset; enough to reconstruct a
// change for review without dumping hashes or tokens.
func userSnapshot(u *model.User) map[string]any {
	snap := map[string]any{
		"name":  u.Name,
		"email": u.Email,
	}
	if u.RoleID != nil {
		snap["role_id"] = *u.RoleID
	}
	return snap
}

// CreateUser is the admin-initiated creation path: the account is
// verified up front, no verification mail is involved.
func (s *userService) CreateUser(ctx context.Context, name, email, password string, roleID *uint, actor audit.Actor) (*model.User, error) {
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, errs.ErrDuplicateEmail
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	if roleID != nil {
		if _, err := s.roleRepo.FindByID(ctx, *roleID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, errs.ErrRoleNotFound
			}
			return nil, fmt.Errorf("find role: %w", err)
		}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	user := &model.User{
		Name:            name,
		Email:           email,
		PasswordHash:    string(hashedPassword),
		RoleID:          roleID,
		EmailVerifiedAt: &now,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.recorder.Created(ctx, actor, "user", user.ID, userSnapshot(user))
	return user, nil
}

func (s *userService) GetUser(ctx context.Context, id uint) (*model.User, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(user); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, userCacheTTL)
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.userRepo.List(ctx)
}

func (s *userService) UpdateUser(ctx context.Context, id uint, name, email string, actor audit.Actor) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, err
	}

	if email != user.Email {
		existing, err := s.userRepo.FindByEmail(ctx, email)
		if err == nil && existing != nil {
			return nil, errs.ErrDuplicateEmail
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("check email: %w", err)
		}
	}

	oldValues := userSnapshot(user)
	user.Name = name
	user.Email = email
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))
	s.recorder.Updated(ctx, actor, "user", user.ID, oldValues, userSnapshot(user))
	return user, nil
}

// DeleteUser removes a user. When the user holds a protected role the
// deletion is rejected if they are that role's last member; the check is
// independent of the caller's own permissions.
func (s *userService) DeleteUser(ctx context.Context, id uint, actor audit.Actor) error {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.ErrUserNotFound
		}
		return err
	}

	if user.Role != nil && user.Role.Protected {
		count, err := s.userRepo.CountByRoleID(ctx, user.Role.ID)
		if err != nil {
			return fmt.Errorf("count role members: %w", err)
		}
		if count <= 1 {
			return errs.ErrLastProtectedUser
		}
	}

	oldValues := userSnapshot(user)
	if err := s.userRepo.Delete(ctx, user); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))
	s.recorder.Deleted(ctx, actor, "user", id, oldValues)
	return nil
}

// AssignRole replaces the user's role reference.
func (s *userService) AssignRole(ctx context.Context, userID, roleID uint, actor audit.Actor) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, err
	}

	role, err := s.roleRepo.FindByID(ctx, roleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrRoleNotFound
		}
		return nil, err
	}

	oldValues := userSnapshot(user)
	user.RoleID = &role.ID
	user.Role = role
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("assign role: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(userID))
	s.recorder.Updated(ctx, actor, "user", user.ID, oldValues, userSnapshot(user))
	return user, nil
}
