package authz

import (
	"context"
	"fmt"
)

// Permission names form a closed set. Routes declare these constants, the
// seed command inserts them, and ValidateRegistry checks at boot that the
// database agrees, so a typo fails the server start instead of a request.
const (
	PermManageUsers   = "manage_users"
	PermViewUsers     = "view_users"
	PermManageRoles   = "manage_roles"
	PermViewAllMines  = "view_all_mines"
	PermManageMines   = "manage_mines"
	PermViewSensors   = "view_sensors"
	PermManageSensors = "manage_sensors"
	PermViewAuditLogs = "view_audit_logs"
	PermSendMessages  = "send_messages"
	PermViewReports   = "view_reports"
)

// Registry returns every permission name the application declares, with a
// human-readable description, in seed order.
func Registry() []RegistryEntry {
	return []RegistryEntry{
		{PermManageUsers, "Create, update and delete users and their roles"},
		{PermViewUsers, "View user accounts"},
		{PermManageRoles, "Create roles and assign permissions to them"},
		{PermViewAllMines, "View every mine, sector and sensor"},
		{PermManageMines, "Create, update and delete mines and sectors"},
		{PermViewSensors, "View sensor inventory"},
		{PermManageSensors, "Create, update and delete sensors"},
		{PermViewAuditLogs, "View the audit log"},
		{PermSendMessages, "Send direct messages"},
		{PermViewReports, "View operational reports"},
	}
}

// RegistryEntry pairs a permission name with its description.
type RegistryEntry struct {
	Name        string
	Description string
}

// PermissionLister is the slice of the permission repository the registry
// check needs.
type PermissionLister interface {
	ListNames(ctx context.Context) ([]string, error)
}

// ValidateRegistry verifies that every declared permission exists in the
// database. Run at boot, after migrations and seeding.
func ValidateRegistry(ctx context.Context, repo PermissionLister) error {
	names, err := repo.ListNames(ctx)
	if err != nil {
		return fmt.Errorf("list permissions: %w", err)
	}

	seeded := make(map[string]struct{}, len(names))
	for _, n := range names {
		seeded[n] = struct{}{}
	}

	for _, entry := range Registry() {
		if _, ok := seeded[entry.Name]; !ok {
			return fmt.Errorf("permission %q declared but not seeded; run cmd/seed", entry.Name)
		}
	}
	return nil
}
