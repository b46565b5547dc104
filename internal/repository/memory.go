package repository

import (
	"context"
	"sort"
	"sync"

	"fairway-backend/internal/models"
	"fairway-backend/internal/pkg/apperrors"
)

// MemStore is a map-backed Store used in unit tests and local development.
// A single mutex guards all maps; operations never span two stores.
type MemStore struct {
	mu      sync.Mutex
	users   map[uint]models.User
	rounds  map[uint]models.Round
	holes   map[uint]models.Hole
	userID  uint
	roundID uint
	holeID  uint
}

func NewMemStore() *MemStore {
	return &MemStore{
		users:  make(map[uint]models.User),
		rounds: make(map[uint]models.Round),
		holes:  make(map[uint]models.Hole),
	}
}

func (s *MemStore) CreateUser(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userID++
	user.ID = s.userID
	s.users[user.ID] = *user
	return nil
}

func (s *MemStore) GetUser(_ context.Context, id uint) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return nil, apperrors.NotFound("User")
	}
	return &user, nil
}

func (s *MemStore) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.users {
		if user.Username == username {
			u := user
			return &u, nil
		}
	}
	return nil, apperrors.NotFound("User")
}

func (s *MemStore) CreateRound(_ context.Context, round *models.Round) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.roundID++
	round.ID = s.roundID
	s.rounds[round.ID] = *round
	return nil
}

func (s *MemStore) GetRound(_ context.Context, id uint) (*models.Round, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	round, ok := s.rounds[id]
	if !ok {
		return nil, apperrors.NotFound("Round")
	}
	return &round, nil
}

func (s *MemStore) GetRoundsByUser(_ context.Context, userID uint) ([]models.Round, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var rounds []models.Round
	for _, round := range s.rounds {
		if round.UserID == userID {
			rounds = append(rounds, round)
		}
	}
	sort.Slice(rounds, func(i, j int) bool {
		return rounds[i].Date.After(rounds[j].Date)
	})
	return rounds, nil
}

func (s *MemStore) UpdateRound(_ context.Context, id uint, fields map[string]interface{}) (*models.Round, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	round, ok := s.rounds[id]
	if !ok {
		return nil, apperrors.NotFound("Round")
	}
	for key, value := range fields {
		switch key {
		case FieldTotalScore:
			round.TotalScore = toIntPtr(value)
		case FieldCurrentHole:
			if v := toIntPtr(value); v != nil {
				round.CurrentHole = *v
			}
		case FieldIsCompleted:
			round.IsCompleted = value.(bool)
		}
	}
	s.rounds[id] = round
	return &round, nil
}

func (s *MemStore) DeleteRound(_ context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rounds[id]; !ok {
		return apperrors.NotFound("Round")
	}
	for holeID, hole := range s.holes {
		if hole.RoundID == id {
			delete(s.holes, holeID)
		}
	}
	delete(s.rounds, id)
	return nil
}

func (s *MemStore) CreateHole(_ context.Context, hole *models.Hole) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.holeID++
	hole.ID = s.holeID
	s.holes[hole.ID] = *hole
	return nil
}

func (s *MemStore) GetHolesByRound(_ context.Context, roundID uint) ([]models.Hole, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.holesLocked(roundID), nil
}

func (s *MemStore) UpdateHole(_ context.Context, roundID uint, holeNumber int, fields map[string]interface{}) (*models.Hole, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, hole := range s.holes {
		if hole.RoundID != roundID || hole.HoleNumber != holeNumber {
			continue
		}
		for key, value := range fields {
			switch key {
			case FieldScore:
				hole.Score = toIntPtr(value)
			case FieldPutts:
				hole.Putts = toIntPtr(value)
			case FieldFIR:
				hole.FairwayInRegulation = toBoolPtr(value)
			case FieldGIR:
				hole.GreenInRegulation = toBoolPtr(value)
			case FieldNotes:
				hole.Notes = toStringPtr(value)
			}
		}
		s.holes[id] = hole
		return &hole, nil
	}
	return nil, apperrors.NotFound("Hole")
}

func (s *MemStore) holesLocked(roundID uint) []models.Hole {
	var holes []models.Hole
	for _, hole := range s.holes {
		if hole.RoundID == roundID {
			holes = append(holes, hole)
		}
	}
	sort.Slice(holes, func(i, j int) bool {
		return holes[i].HoleNumber < holes[j].HoleNumber
	})
	return holes
}

// Update maps carry nil for explicit clears and either T or *T for sets,
// depending on the caller. Normalize both.

func toIntPtr(value interface{}) *int {
	switch v := value.(type) {
	case nil:
		return nil
	case int:
		return &v
	case *int:
		return v
	}
	return nil
}

func toBoolPtr(value interface{}) *bool {
	switch v := value.(type) {
	case nil:
		return nil
	case bool:
		return &v
	case *bool:
		return v
	}
	return nil
}

func toStringPtr(value interface{}) *string {
	switch v := value.(type) {
	case nil:
		return nil
	case string:
		return &v
	case *string:
		return v
	}
	return nil
}
