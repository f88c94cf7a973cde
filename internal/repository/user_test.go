package repository

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"github.com/Ernest-Dike/Movie-recommendation-latest/internal/models"
)

func TestUserRepository_CreateAndFind(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))
	ctx := context.Background()

	user := &models.User{
		Name:         "Ann",
		Email:        "ann@x.com",
		PasswordHash: "hashed",
	}

	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if user.ID == 0 {
		t.Fatal("Create() should populate the user id")
	}

	byEmail, err := repo.FindByEmail(ctx, "ann@x.com")
	if err != nil {
		t.Fatalf("FindByEmail() error = %v", err)
	}
	if byEmail.ID != user.ID || byEmail.Name != "Ann" {
		t.Errorf("FindByEmail() = %+v, want id=%d name=Ann", byEmail, user.ID)
	}

	byID, err := repo.FindByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if byID.Email != "ann@x.com" {
		t.Errorf("FindByID() email = %s, want ann@x.com", byID.Email)
	}
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))
	ctx := context.Background()

	first := &models.User{Name: "Ann", Email: "ann@x.com", PasswordHash: "h1"}
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	second := &models.User{Name: "Other Ann", Email: "ann@x.com", PasswordHash: "h2"}
	err := repo.Create(ctx, second)

	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Errorf("Create() error = %v, want %v", err, gorm.ErrDuplicatedKey)
	}
}

func TestUserRepository_FindMissing(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))
	ctx := context.Background()

	if _, err := repo.FindByEmail(ctx, "nobody@x.com"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("FindByEmail() error = %v, want %v", err, gorm.ErrRecordNotFound)
	}

	if _, err := repo.FindByID(ctx, 12345); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("FindByID() error = %v, want %v", err, gorm.ErrRecordNotFound)
	}
}
