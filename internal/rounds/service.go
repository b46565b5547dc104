package rounds

import (
	"context"
	"strings"
	"time"

	"fairway-backend/internal/models"
	"fairway-backend/internal/pkg/apperrors"
	"fairway-backend/internal/repository"
)

// Standard 18-hole template applied to every new round. Par and yardage are
// fixed at creation and immutable afterwards.
var standardPars = [18]int{4, 4, 3, 5, 4, 4, 3, 4, 5, 4, 3, 4, 4, 5, 3, 4, 4, 4}
var standardYardages = [18]int{387, 425, 165, 520, 410, 380, 175, 390, 485, 395, 145, 400, 375, 515, 160, 420, 405, 385}

// StatsInvalidator drops a user's cached statistics. Round creation and
// deletion change the completed-round set, so both invalidate.
type StatsInvalidator interface {
	InvalidateUser(ctx context.Context, userID uint)
}

// Service owns round lifecycle: creation with the 18-hole template, reads
// with holes attached, and cascading deletion.
type Service struct {
	Store repository.Store
	Stats StatsInvalidator
}

// CreateRequest is the round-creation payload.
type CreateRequest struct {
	UserID     uint   `json:"userId"`
	CourseName string `json:"courseName"`
	TotalPar   *int   `json:"totalPar"`
}

// Create validates the request, creates the round with derived fields at
// their initial values and populates its 18 holes from the standard
// template. The fully assembled round is returned.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*models.RoundWithHoles, error) {
	courseName := strings.TrimSpace(req.CourseName)
	if req.UserID == 0 {
		return nil, apperrors.Validation("userId must be a positive identifier")
	}
	if courseName == "" {
		return nil, apperrors.Validation("courseName is required")
	}
	totalPar := 72
	if req.TotalPar != nil {
		if *req.TotalPar < 1 {
			return nil, apperrors.Validation("totalPar must be a positive integer")
		}
		totalPar = *req.TotalPar
	}

	round := models.Round{
		UserID:      req.UserID,
		CourseName:  courseName,
		Date:        time.Now(),
		TotalPar:    totalPar,
		IsCompleted: false,
		CurrentHole: 1,
	}
	if err := s.Store.CreateRound(ctx, &round); err != nil {
		return nil, err
	}

	for i := 1; i <= 18; i++ {
		yardage := standardYardages[i-1]
		hole := models.Hole{
			RoundID:    round.ID,
			HoleNumber: i,
			Par:        standardPars[i-1],
			Yardage:    &yardage,
		}
		if err := s.Store.CreateHole(ctx, &hole); err != nil {
			return nil, err
		}
	}

	if s.Stats != nil {
		s.Stats.InvalidateUser(ctx, round.UserID)
	}
	return s.Get(ctx, round.ID)
}

// Get returns one round with its holes, or a not-found error.
func (s *Service) Get(ctx context.Context, id uint) (*models.RoundWithHoles, error) {
	round, err := s.Store.GetRound(ctx, id)
	if err != nil {
		return nil, err
	}
	holes, err := s.Store.GetHolesByRound(ctx, id)
	if err != nil {
		return nil, err
	}
	return &models.RoundWithHoles{Round: *round, Holes: holes}, nil
}

// ListByUser returns all of a user's rounds, newest date first, each with
// its holes.
func (s *Service) ListByUser(ctx context.Context, userID uint) ([]models.RoundWithHoles, error) {
	rounds, err := s.Store.GetRoundsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	result := make([]models.RoundWithHoles, 0, len(rounds))
	for _, round := range rounds {
		holes, err := s.Store.GetHolesByRound(ctx, round.ID)
		if err != nil {
			return nil, err
		}
		result = append(result, models.RoundWithHoles{Round: round, Holes: holes})
	}
	return result, nil
}

// Active returns the user's in-progress round. Uniqueness of the active
// round is not enforced at creation; when several exist the most recent one
// wins. Not-found when every round is completed.
func (s *Service) Active(ctx context.Context, userID uint) (*models.RoundWithHoles, error) {
	rounds, err := s.Store.GetRoundsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, round := range rounds {
		if !round.IsCompleted {
			return s.Get(ctx, round.ID)
		}
	}
	return nil, apperrors.NotFound("Active round")
}

// Delete removes a round and its holes. The cascade is the store's explicit
// two-step delete.
func (s *Service) Delete(ctx context.Context, id uint) error {
	round, err := s.Store.GetRound(ctx, id)
	if err != nil {
		return err
	}
	if err := s.Store.DeleteRound(ctx, id); err != nil {
		return err
	}
	if s.Stats != nil {
		s.Stats.InvalidateUser(ctx, round.UserID)
	}
	return nil
}
