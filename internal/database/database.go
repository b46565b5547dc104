package database

import (
	"context"

	"fairway-backend/internal/models"
	"fairway-backend/internal/pkg/apperrors"
	"fairway-backend/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open opens a GORM DB from DSN. PreferSimpleProtocol disables prepared
// statement caching to avoid 42P05 ("prepared statement already exists")
// when running behind connection poolers (PgBouncer, Supabase, Render).
func Open(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
}

// AutoMigrate runs migrations for the round-tracking models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{}, &models.Round{}, &models.Hole{})
}

// SeedDefaultUser creates the single tracked user if it does not exist yet.
// The password is stored hashed even though no login flow exists.
func SeedDefaultUser(ctx context.Context, store repository.Store, username, password, name string) (*models.User, error) {
	user, err := store.GetUserByUsername(ctx, username)
	if err == nil {
		return user, nil
	}
	if !apperrors.IsNotFound(err) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user = &models.User{
		Username:     username,
		PasswordHash: string(hash),
		Name:         name,
	}
	if err := store.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
