// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"gujarattaxi/internal/models"
)

// UserStore handles admin user account operations.
type UserStore struct {
	db *sql.DB
}

// NewUserStore creates a new UserStore.
func NewUserStore(db *sql.DB) *UserStore {
	return &UserStore{db: db}
}

const userColumns = `id, user_name, email, password_hash, role_id,
	totp_secret, totp_enabled, created_at, updated_at`

func scanUser(row scanner) (*models.User, error) {
	u := &models.User{}
	err := row.Scan(&u.ID, &u.UserName, &u.Email, &u.PasswordHash, &u.RoleID,
		&u.TOTPSecret, &u.TOTPEnabled, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// List returns all users ordered by creation date.
func (s *UserStore) List() ([]models.User, error) {
	rows, err := s.db.Query(`SELECT ` + userColumns + ` FROM users ORDER BY created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var items []models.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		items = append(items, *u)
	}
	return items, rows.Err()
}

// FindByID retrieves a user. Returns nil if not found.
func (s *UserStore) FindByID(id uuid.UUID) (*models.User, error) {
	u, err := scanUser(s.db.QueryRow(`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return u, nil
}

// FindByEmail retrieves a user by email. Returns nil if not found.
// Used by login.
func (s *UserStore) FindByEmail(email string) (*models.User, error) {
	u, err := scanUser(s.db.QueryRow(`SELECT `+userColumns+` FROM users WHERE email = $1`, email))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return u, nil
}

// Create inserts a new user. Returns ErrDuplicate if the email is taken.
func (s *UserStore) Create(u *models.User) (*models.User, error) {
	result, err := scanUser(s.db.QueryRow(`
		INSERT INTO users (user_name, email, password_hash, role_id)
		VALUES ($1, $2, $3, $4)
		RETURNING `+userColumns,
		u.UserName, u.Email, u.PasswordHash, u.RoleID))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return result, nil
}

// Update modifies a user's profile and role.
func (s *UserStore) Update(u *models.User) error {
	_, err := s.db.Exec(`
		UPDATE users SET user_name = $1, email = $2, password_hash = $3,
		       role_id = $4, updated_at = NOW()
		WHERE id = $5`,
		u.UserName, u.Email, u.PasswordHash, u.RoleID, u.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// SetTOTP stores the user's TOTP secret and enrollment flag.
func (s *UserStore) SetTOTP(id uuid.UUID, secret *string, enabled bool) error {
	_, err := s.db.Exec(`
		UPDATE users SET totp_secret = $1, totp_enabled = $2, updated_at = NOW()
		WHERE id = $3`, secret, enabled, id)
	if err != nil {
		return fmt.Errorf("set totp: %w", err)
	}
	return nil
}

// Delete removes a user by ID.
func (s *UserStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

// Count returns the total number of users. Used by the seeder to decide
// whether to create the default admin.
func (s *UserStore) Count() (int, error) {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return count, nil
}
