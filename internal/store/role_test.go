package store

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"gujarattaxi/internal/models"
)

func TestRoleStorePermissionsRoundTrip(t *testing.T) {
	db := testDB(t)
	s := NewRoleStore(db)

	slug := "test-editor-" + uuid.NewString()[:8]
	t.Cleanup(func() { cleanRoles(t, db, slug) })

	role := &models.Role{
		Name: "Editor " + slug,
		Slug: slug,
		Permissions: models.Permissions{
			BlogCreate: true,
			BlogEdit:   true,
			BlogView:   true,
			MediaView:  true,
		},
	}

	created, err := s.Create(role)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if !created.Permissions.BlogCreate || !created.Permissions.BlogEdit {
		t.Error("expected blog create/edit flags set")
	}
	if created.Permissions.RoleManage {
		t.Error("expected role manage flag unset")
	}

	found, err := s.FindBySlug(slug)
	if err != nil {
		t.Fatalf("FindBySlug: %v", err)
	}
	if found == nil {
		t.Fatal("expected role, got nil")
	}
	if found.Permissions != created.Permissions {
		t.Errorf("permissions round-trip: got %+v, want %+v", found.Permissions, created.Permissions)
	}
}

func TestRoleStoreDuplicateSlug(t *testing.T) {
	db := testDB(t)
	s := NewRoleStore(db)

	slug := "test-dup-role-" + uuid.NewString()[:8]
	t.Cleanup(func() { cleanRoles(t, db, slug) })

	if _, err := s.Create(&models.Role{Name: "First " + slug, Slug: slug}); err != nil {
		t.Fatalf("Create first: %v", err)
	}

	_, err := s.Create(&models.Role{Name: "Second " + slug, Slug: slug})
	if !errors.Is(err, ErrDuplicate) {
		t.Errorf("expected ErrDuplicate, got %v", err)
	}
}

func TestRoleStoreUpdate(t *testing.T) {
	db := testDB(t)
	s := NewRoleStore(db)

	slug := "test-upd-role-" + uuid.NewString()[:8]
	t.Cleanup(func() { cleanRoles(t, db, slug) })

	created, _ := s.Create(&models.Role{Name: "Viewer " + slug, Slug: slug})

	created.Permissions.AuditView = true
	if err := s.Update(created); err != nil {
		t.Fatalf("Update: %v", err)
	}

	found, _ := s.FindByID(created.ID)
	if !found.Permissions.AuditView {
		t.Error("expected audit view flag after update")
	}
}
