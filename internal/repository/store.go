// Package repository abstracts durable storage for rounds, holes and users.
// The services depend only on Store, so tests can run against MemStore or a
// GormStore over an in-memory sqlite database while production uses postgres.
package repository

import (
	"context"

	"fairway-backend/internal/models"
)

// Column keys accepted by UpdateRound and UpdateHole. A nil value under a
// key clears the column (SQL NULL).
const (
	FieldScore       = "score"
	FieldPutts       = "putts"
	FieldFIR         = "fairway_in_regulation"
	FieldGIR         = "green_in_regulation"
	FieldNotes       = "notes"
	FieldTotalScore  = "total_score"
	FieldCurrentHole = "current_hole"
	FieldIsCompleted = "is_completed"
)

// Store is the persistence capability the core requires. Missing records
// surface as apperrors.NotFoundError; storage failures propagate unmodified.
type Store interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUser(ctx context.Context, id uint) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)

	CreateRound(ctx context.Context, round *models.Round) error
	GetRound(ctx context.Context, id uint) (*models.Round, error)
	// GetRoundsByUser returns the user's rounds newest date first.
	GetRoundsByUser(ctx context.Context, userID uint) ([]models.Round, error)
	UpdateRound(ctx context.Context, id uint, fields map[string]interface{}) (*models.Round, error)
	// DeleteRound removes the round and all of its holes (explicit two-step
	// cascade, not storage-engine level).
	DeleteRound(ctx context.Context, id uint) error

	CreateHole(ctx context.Context, hole *models.Hole) error
	// GetHolesByRound returns the round's holes ordered by hole number.
	GetHolesByRound(ctx context.Context, roundID uint) ([]models.Hole, error)
	UpdateHole(ctx context.Context, roundID uint, holeNumber int, fields map[string]interface{}) (*models.Hole, error)
}
