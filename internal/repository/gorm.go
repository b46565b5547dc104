package repository

import (
	"context"
	"errors"

	"fairway-backend/internal/models"
	"fairway-backend/internal/pkg/apperrors"

	"gorm.io/gorm"
)

// GormStore implements Store on a GORM database (postgres in production,
// glebarez/sqlite in tests).
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func (s *GormStore) CreateUser(ctx context.Context, user *models.User) error {
	return s.DB.WithContext(ctx).Create(user).Error
}

func (s *GormStore) GetUser(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.DB.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("User")
		}
		return nil, err
	}
	return &user, nil
}

func (s *GormStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := s.DB.WithContext(ctx).First(&user, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("User")
		}
		return nil, err
	}
	return &user, nil
}

func (s *GormStore) CreateRound(ctx context.Context, round *models.Round) error {
	return s.DB.WithContext(ctx).Create(round).Error
}

func (s *GormStore) GetRound(ctx context.Context, id uint) (*models.Round, error) {
	var round models.Round
	if err := s.DB.WithContext(ctx).First(&round, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Round")
		}
		return nil, err
	}
	return &round, nil
}

func (s *GormStore) GetRoundsByUser(ctx context.Context, userID uint) ([]models.Round, error) {
	var rounds []models.Round
	err := s.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&rounds).Error
	return rounds, err
}

func (s *GormStore) UpdateRound(ctx context.Context, id uint, fields map[string]interface{}) (*models.Round, error) {
	if _, err := s.GetRound(ctx, id); err != nil {
		return nil, err
	}
	if len(fields) > 0 {
		err := s.DB.WithContext(ctx).
			Model(&models.Round{}).
			Where("id = ?", id).
			Updates(fields).Error
		if err != nil {
			return nil, err
		}
	}
	return s.GetRound(ctx, id)
}

func (s *GormStore) DeleteRound(ctx context.Context, id uint) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var round models.Round
		if err := tx.First(&round, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("Round")
			}
			return err
		}
		if err := tx.Where("round_id = ?", id).Delete(&models.Hole{}).Error; err != nil {
			return err
		}
		return tx.Delete(&round).Error
	})
}

func (s *GormStore) CreateHole(ctx context.Context, hole *models.Hole) error {
	return s.DB.WithContext(ctx).Create(hole).Error
}

func (s *GormStore) GetHolesByRound(ctx context.Context, roundID uint) ([]models.Hole, error) {
	var holes []models.Hole
	err := s.DB.WithContext(ctx).
		Where("round_id = ?", roundID).
		Order("hole_number ASC").
		Find(&holes).Error
	return holes, err
}

func (s *GormStore) UpdateHole(ctx context.Context, roundID uint, holeNumber int, fields map[string]interface{}) (*models.Hole, error) {
	var hole models.Hole
	err := s.DB.WithContext(ctx).
		First(&hole, "round_id = ? AND hole_number = ?", roundID, holeNumber).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Hole")
		}
		return nil, err
	}
	if len(fields) > 0 {
		if err := s.DB.WithContext(ctx).Model(&hole).Updates(fields).Error; err != nil {
			return nil, err
		}
	}
	if err := s.DB.WithContext(ctx).
		First(&hole, "round_id = ? AND hole_number = ?", roundID, holeNumber).Error; err != nil {
		return nil, err
	}
	return &hole, nil
}
