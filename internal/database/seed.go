package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"gujarattaxi/internal/models"
)

// Seed populates the database with the built-in roles and a default
// super-admin account. It is a no-op when users already exist.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return fmt.Errorf("seed check users: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	superPerms, err := json.Marshal(models.AllPermissions())
	if err != nil {
		return fmt.Errorf("seed marshal permissions: %w", err)
	}

	adminPerms := models.AllPermissions()
	adminPerms.RoleManage = false
	adminPerms.SettingsManage = false
	adminPermsJSON, err := json.Marshal(adminPerms)
	if err != nil {
		return fmt.Errorf("seed marshal permissions: %w", err)
	}

	var superRoleID string
	err = db.QueryRow(`
		INSERT INTO roles (name, slug, description, permissions)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, "Super Admin", models.RoleSlugSuperAdmin, "Full access to every admin capability", superPerms).Scan(&superRoleID)
	if err != nil {
		return fmt.Errorf("seed insert super-admin role: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO roles (name, slug, description, permissions)
		VALUES ($1, $2, $3, $4)
	`, "Admin", models.RoleSlugAdmin, "Day-to-day content administration", adminPermsJSON)
	if err != nil {
		return fmt.Errorf("seed insert admin role: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed bcrypt: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO users (user_name, email, password_hash, role_id)
		VALUES ($1, $2, $3, $4)
	`, "Admin", "admin@gujarattaxi.local", string(hash), superRoleID)
	if err != nil {
		return fmt.Errorf("seed insert admin: %w", err)
	}

	slog.Info("database seeded with default roles and admin user",
		"email", "admin@gujarattaxi.local",
		"password", "admin",
	)

	return nil
}
