package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"minops/internal/audit"
	errs "minops/internal/errors"
	"minops/internal/model"
)

func TestRoleService_CreateRole(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockRoles := new(MockRoleRepository)
		mockRoles.On("FindByName", mock.Anything, "editor").Return(nil, gorm.ErrRecordNotFound)
		mockRoles.On("Create", mock.Anything, mock.AnythingOfType("*model.Role")).Return(nil)

		svc := NewRoleService(mockRoles, new(MockPermissionRepository), NopRecorder{})
		role, err := svc.CreateRole(context.Background(), "editor", "report editors", audit.Actor{})

		assert.NoError(t, err)
		assert.Equal(t, "editor", role.Name)
		mockRoles.AssertExpectations(t)
	})

	t.Run("duplicate name", func(t *testing.T) {
		mockRoles := new(MockRoleRepository)
		mockRoles.On("FindByName", mock.Anything, "editor").Return(&model.Role{ID: 1, Name: "editor"}, nil)

		svc := NewRoleService(mockRoles, new(MockPermissionRepository), NopRecorder{})
		role, err := svc.CreateRole(context.Background(), "editor", "", audit.Actor{})

		assert.ErrorIs(t, err, errs.ErrDuplicateRole)
		assert.Nil(t, role)
	})
}

func TestRoleService_SetRolePermissions(t *testing.T) {
	perms := []model.Permission{
		{ID: 1, Name: "view_reports"},
		{ID: 2, Name: "view_sensors"},
	}

	t.Run("replaces the whole set", func(t *testing.T) {
		mockRoles := new(MockRoleRepository)
		mockPerms := new(MockPermissionRepository)

		role := &model.Role{ID: 3, Name: "editor", Permissions: []model.Permission{{ID: 9, Name: "manage_mines"}}}
		mockRoles.On("FindByID", mock.Anything, uint(3)).Return(role, nil)
		mockPerms.On("FindByIDs", mock.Anything, []uint{1, 2}).Return(perms, nil)
		mockRoles.On("ReplacePermissions", mock.Anything, role, perms).Return(nil)

		svc := NewRoleService(mockRoles, mockPerms, NopRecorder{})
		updated, err := svc.SetRolePermissions(context.Background(), 3, []uint{1, 2}, audit.Actor{})

		assert.NoError(t, err)
		// The returned role reflects exactly the new set, not a merge.
		assert.Len(t, updated.Permissions, 2)
		assert.Equal(t, "view_reports", updated.Permissions[0].Name)
		mockRoles.AssertExpectations(t)
	})

	t.Run("unknown permission id", func(t *testing.T) {
		mockRoles := new(MockRoleRepository)
		mockPerms := new(MockPermissionRepository)

		mockRoles.On("FindByID", mock.Anything, uint(3)).Return(&model.Role{ID: 3}, nil)
		// Only one of the two ids exists.
		mockPerms.On("FindByIDs", mock.Anything, []uint{1, 404}).Return(perms[:1], nil)

		svc := NewRoleService(mockRoles, mockPerms, NopRecorder{})
		_, err := svc.SetRolePermissions(context.Background(), 3, []uint{1, 404}, audit.Actor{})

		assert.ErrorIs(t, err, errs.ErrPermissionNotFound)
	})

	t.Run("duplicate ids in the request are tolerated", func(t *testing.T) {
		mockRoles := new(MockRoleRepository)
		mockPerms := new(MockPermissionRepository)

		role := &model.Role{ID: 3}
		mockRoles.On("FindByID", mock.Anything, uint(3)).Return(role, nil)
		mockPerms.On("FindByIDs", mock.Anything, []uint{1, 1, 2}).Return(perms, nil)
		mockRoles.On("ReplacePermissions", mock.Anything, role, perms).Return(nil)

		svc := NewRoleService(mockRoles, mockPerms, NopRecorder{})
		_, err := svc.SetRolePermissions(context.Background(), 3, []uint{1, 1, 2}, audit.Actor{})

		assert.NoError(t, err)
	})

	t.Run("empty set is a valid state", func(t *testing.T) {
		mockRoles := new(MockRoleRepository)
		mockPerms := new(MockPermissionRepository)

		role := &model.Role{ID: 3, Permissions: perms}
		mockRoles.On("FindByID", mock.Anything, uint(3)).Return(role, nil)
		mockPerms.On("FindByIDs", mock.Anything, []uint{}).Return([]model.Permission{}, nil)
		mockRoles.On("ReplacePermissions", mock.Anything, role, []model.Permission{}).Return(nil)

		svc := NewRoleService(mockRoles, mockPerms, NopRecorder{})
		updated, err := svc.SetRolePermissions(context.Background(), 3, []uint{}, audit.Actor{})

		assert.NoError(t, err)
		assert.Empty(t, updated.Permissions)
	})

	t.Run("missing role", func(t *testing.T) {
		mockRoles := new(MockRoleRepository)
		mockRoles.On("FindByID", mock.Anything, uint(404)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewRoleService(mockRoles, new(MockPermissionRepository), NopRecorder{})
		_, err := svc.SetRolePermissions(context.Background(), 404, []uint{1}, audit.Actor{})

		assert.ErrorIs(t, err, errs.ErrRoleNotFound)
	})
}

func TestRoleService_DeleteRole(t *testing.T) {
	t.Run("protected role is rejected", func(t *testing.T) {
		mockRoles := new(MockRoleRepository)
		mockRoles.On("FindByID", mock.Anything, uint(1)).Return(&model.Role{ID: 1, Name: "admin", Protected: true}, nil)

		svc := NewRoleService(mockRoles, new(MockPermissionRepository), NopRecorder{})
		err := svc.DeleteRole(context.Background(), 1, audit.Actor{})

		assert.ErrorIs(t, err, errs.ErrRoleProtected)
	})

	t.Run("role in use is rejected", func(t *testing.T) {
		mockRoles := new(MockRoleRepository)
		mockRoles.On("FindByID", mock.Anything, uint(2)).Return(&model.Role{ID: 2, Name: "operator"}, nil)
		mockRoles.On("CountUsers", mock.Anything, uint(2)).Return(int64(4), nil)

		svc := NewRoleService(mockRoles, new(MockPermissionRepository), NopRecorder{})
		err := svc.DeleteRole(context.Background(), 2, audit.Actor{})

		assert.ErrorIs(t, err, errs.ErrRoleInUse)
	})

	t.Run("unused role is deleted", func(t *testing.T) {
		mockRoles := new(MockRoleRepository)
		role := &model.Role{ID: 3, Name: "legacy"}
		mockRoles.On("FindByID", mock.Anything, uint(3)).Return(role, nil)
		mockRoles.On("CountUsers", mock.Anything, uint(3)).Return(int64(0), nil)
		mockRoles.On("Delete", mock.Anything, role).Return(nil)

		svc := NewRoleService(mockRoles, new(MockPermissionRepository), NopRecorder{})
		err := svc.DeleteRole(context.Background(), 3, audit.Actor{})

		assert.NoError(t, err)
		mockRoles.AssertExpectations(t)
	})
}
