package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"minops/internal/audit"
	errs "minops/internal/errors"
	"minops/internal/model"
	"minops/internal/repository"
)

// RoleService exposes role and permission management.
type RoleService interface {
	ListRoles(ctx context.Context) ([]model.Role, error)
	ListPermissions(ctx context.Context) ([]model.Permission, error)
	GetRole(ctx context.Context, id uint) (*model.Role, error)
	CreateRole(ctx context.Context, name, description string, actor audit.Actor) (*model.Role, error)
	// SetRolePermissions replaces the role's entire permission set.
	SetRolePermissions(ctx context.Context, roleID uint, permissionIDs []uint, actor audit.Actor) (*model.Role, error)
	DeleteRole(ctx context.Context, id uint, actor audit.Actor) error
}

type roleService struct {
	roleRepo repository.RoleRepository
	permRepo repository.PermissionRepository
	recorder audit.Recorder
}

// NewRoleService builds a RoleService.
func NewRoleService(roleRepo repository.RoleRepository, permRepo repository.PermissionRepository, recorder audit.Recorder) RoleService {
	return &roleService{
		roleRepo: roleRepo,
		permRepo: permRepo,
		recorder: recorder,
	}
}

func permissionNames(perms []model.Permission) []string {
	names := make([]string, 0, len(perms))
	for _, p := range perms {
		names = append(names, p.Name)
	}
	return names
}

func (s *roleService) ListRoles(ctx context.Context) ([]model.Role, error) {
	return s.roleRepo.List(ctx)
}

func (s *roleService) ListPermissions(ctx context.Context) ([]model.Permission, error) {
	return s.permRepo.List(ctx)
}

func (s *roleService) GetRole(ctx context.Context, id uint) (*model.Role, error) {
	role, err := s.roleRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrRoleNotFound
		}
		return nil, err
	}
	return role, nil
}

func (s *roleService) CreateRole(ctx context.Context, name, description string, actor audit.Actor) (*model.Role, error) {
	existing, err := s.roleRepo.FindByName(ctx, name)
	if err == nil && existing != nil {
		return nil, errs.ErrDuplicateRole
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check role existence: %w", err)
	}

	role := &model.Role{Name: name, Description: description}
	if err := s.roleRepo.Create(ctx, role); err != nil {
		return nil, fmt.Errorf("create role: %w", err)
	}

	s.recorder.Created(ctx, actor, "role", role.ID, map[string]any{"name": role.Name})
	return role, nil
}

// SetRolePermissions validates every referenced permission, then swaps
// the whole set in one transaction (a full sync, not an incremental add).
func (s *roleService) SetRolePermissions(ctx context.Context, roleID uint, permissionIDs []uint, actor audit.Actor) (*model.Role, error) {
	role, err := s.roleRepo.FindByID(ctx, roleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrRoleNotFound
		}
		return nil, err
	}

	permissions, err := s.permRepo.FindByIDs(ctx, permissionIDs)
	if err != nil {
		return nil, fmt.Errorf("find permissions: %w", err)
	}
	if len(permissions) != len(dedupe(permissionIDs)) {
		return nil, errs.ErrPermissionNotFound
	}

	oldNames := permissionNames(role.Permissions)
	if err := s.roleRepo.ReplacePermissions(ctx, role, permissions); err != nil {
		return nil, fmt.Errorf("replace permissions: %w", err)
	}
	role.Permissions = permissions

	s.recorder.Updated(ctx, actor, "role", role.ID,
		map[string]any{"permissions": oldNames},
		map[string]any{"permissions": permissionNames(permissions)},
	)
	return role, nil
}

// DeleteRole rejects protected roles and roles still assigned to users.
func (s *roleService) DeleteRole(ctx context.Context, id uint, actor audit.Actor) error {
	role, err := s.roleRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.ErrRoleNotFound
		}
		return err
	}

	if role.Protected {
		return errs.ErrRoleProtected
	}

	count, err := s.roleRepo.CountUsers(ctx, id)
	if err != nil {
		return fmt.Errorf("count role users: %w", err)
	}
	if count > 0 {
		return errs.ErrRoleInUse
	}

	oldValues := map[string]any{"name": role.Name, "permissions": permissionNames(role.Permissions)}
	if err := s.roleRepo.Delete(ctx, role); err != nil {
		return fmt.Errorf("delete role: %w", err)
	}

	s.recorder.Deleted(ctx, actor, "role", id, oldValues)
	return nil
}

func dedupe(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
