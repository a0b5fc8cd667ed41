package main

import (
	"context"
	"errors"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"minops/internal/authz"
	"minops/internal/config"
	"minops/internal/db"
	"minops/internal/model"
	"minops/internal/repository"
)

// roleSpec declares a role to seed and the permissions it starts with.
// Permission sets are only applied when the role is first created;
// later runs leave operator-managed assignments alone.
type roleSpec struct {
	name        string
	description string
	protected   bool
	permissions []string
}

func defaultRoles() []roleSpec {
	all := make([]string, 0)
	for _, entry := range authz.Registry() {
		all = append(all, entry.Name)
	}

	return []roleSpec{
		{
			name:        "admin",
			description: "Full administrative access",
			protected:   true,
			permissions: all,
		},
		{
			name:        "supervisor",
			description: "Oversees sites and crews",
			permissions: []string{
				authz.PermViewUsers,
				authz.PermViewAllMines,
				authz.PermManageMines,
				authz.PermViewSensors,
				authz.PermManageSensors,
				authz.PermSendMessages,
				authz.PermViewReports,
			},
		},
		{
			name:        "operator",
			description: "Day-to-day site operations",
			permissions: []string{
				authz.PermViewAllMines,
				authz.PermViewSensors,
				authz.PermSendMessages,
			},
		},
	}
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.Permission{},
		&model.Role{},
		&model.User{},
		&model.UserLog{},
		&model.Mine{},
		&model.Sector{},
		&model.Sensor{},
		&model.Message{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	permRepo := repository.NewPermissionRepository(gormDB)
	roleRepo := repository.NewRoleRepository(gormDB)
	userRepo := repository.NewUserRepository(gormDB)

	// Permission registry
	for _, entry := range authz.Registry() {
		perm := &model.Permission{Name: entry.Name, Description: entry.Description}
		if err := permRepo.Upsert(ctx, perm); err != nil {
			log.Fatalf("Failed to seed permission %s: %v", entry.Name, err)
		}
	}
	log.Printf("Seeded %d permissions", len(authz.Registry()))

	permsByName := make(map[string]model.Permission)
	allPerms, err := permRepo.List(ctx)
	if err != nil {
		log.Fatalf("Failed to list permissions: %v", err)
	}
	for _, p := range allPerms {
		permsByName[p.Name] = p
	}

	// Roles
	adminRole := seedRoles(ctx, roleRepo, permsByName)

	// Initial admin account
	existing, err := userRepo.FindByEmail(ctx, cfg.AdminEmail)
	if err == nil && existing != nil {
		log.Printf("Admin account %s already exists, skipping", cfg.AdminEmail)
		log.Println("Seed completed")
		return
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("Failed to check admin account: %v", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), 10)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}

	now := time.Now()
	admin := &model.User{
		Name:            cfg.AdminName,
		Email:           cfg.AdminEmail,
		PasswordHash:    string(hashedPassword),
		RoleID:          &adminRole.ID,
		EmailVerifiedAt: &now,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		log.Fatalf("Failed to create admin account: %v", err)
	}
	log.Printf("Created admin account %s", cfg.AdminEmail)
	log.Println("Seed completed")
}

func seedRoles(ctx context.Context, roleRepo repository.RoleRepository, permsByName map[string]model.Permission) *model.Role {
	var adminRole *model.Role

	for _, spec := range defaultRoles() {
		role, err := roleRepo.FindByName(ctx, spec.name)
		if err == nil {
			log.Printf("Role %s already exists, skipping", spec.name)
			if spec.name == "admin" {
				adminRole = role
			}
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatalf("Failed to check role %s: %v", spec.name, err)
		}

		role = &model.Role{
			Name:        spec.name,
			Description: spec.description,
			Protected:   spec.protected,
		}
		if err := roleRepo.Create(ctx, role); err != nil {
			log.Fatalf("Failed to create role %s: %v", spec.name, err)
		}

		perms := make([]model.Permission, 0, len(spec.permissions))
		for _, name := range spec.permissions {
			perm, ok := permsByName[name]
			if !ok {
				log.Fatalf("Role %s references unknown permission %s", spec.name, name)
			}
			perms = append(perms, perm)
		}
		if err := roleRepo.ReplacePermissions(ctx, role, perms); err != nil {
			log.Fatalf("Failed to assign permissions to role %s: %v", spec.name, err)
		}
		log.Printf("Created role %s with %d permissions", spec.name, len(perms))

		if spec.name == "admin" {
			adminRole = role
		}
	}

	if adminRole == nil {
		log.Fatal("admin role missing after seeding")
	}
	return adminRole
}
