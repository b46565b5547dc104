package stats

import (
	"context"

	"fairway-backend/internal/models"
	"fairway-backend/internal/repository"
	"fairway-backend/internal/scoring"
)

// Aggregate is the cross-round performance summary for a user. All values
// are plain arithmetic means over completed rounds; formatting is left to
// the client.
type Aggregate struct {
	AverageScore  float64 `json:"averageScore"`
	FirPercentage float64 `json:"firPercentage"`
	GirPercentage float64 `json:"girPercentage"`
	AveragePutts  float64 `json:"averagePutts"`
	TotalRounds   int     `json:"totalRounds"`
}

// Service computes aggregates from completed rounds, with an optional redis
// cache in front.
type Service struct {
	Store repository.Store
	Cache *Cache
}

// ForUser aggregates statistics over the user's completed rounds. A user
// with no completed rounds gets the zero-value aggregate, which is a defined
// empty state rather than an error.
func (s *Service) ForUser(ctx context.Context, userID uint) (Aggregate, error) {
	if agg, ok := s.Cache.Get(ctx, userID); ok {
		return agg, nil
	}

	completed, err := s.completedRounds(ctx, userID)
	if err != nil {
		return Aggregate{}, err
	}
	if len(completed) == 0 {
		return Aggregate{}, nil
	}

	agg := Aggregate{TotalRounds: len(completed)}

	scoreSum := 0
	for _, round := range completed {
		if round.TotalScore != nil {
			scoreSum += *round.TotalScore
		}
	}
	agg.AverageScore = float64(scoreSum) / float64(len(completed))

	firHits, firTracked := 0, 0
	girHits, girTracked := 0, 0
	puttsSum, puttsTracked := 0, 0
	for _, round := range completed {
		holes, err := s.Store.GetHolesByRound(ctx, round.ID)
		if err != nil {
			return Aggregate{}, err
		}
		for _, hole := range holes {
			if hole.FairwayInRegulation != nil {
				firTracked++
				if *hole.FairwayInRegulation {
					firHits++
				}
			}
			if hole.GreenInRegulation != nil {
				girTracked++
				if *hole.GreenInRegulation {
					girHits++
				}
			}
			if hole.Putts != nil {
				puttsTracked++
				puttsSum += *hole.Putts
			}
		}
	}
	if firTracked > 0 {
		agg.FirPercentage = float64(firHits) / float64(firTracked) * 100
	}
	if girTracked > 0 {
		agg.GirPercentage = float64(girHits) / float64(girTracked) * 100
	}
	if puttsTracked > 0 {
		agg.AveragePutts = float64(puttsSum) / float64(puttsTracked)
	}

	s.Cache.Set(ctx, userID, agg)
	return agg, nil
}

// Handicap computes the simplified handicap index from the user's most
// recent completed rounds (up to 20), with default course and slope ratings.
func (s *Service) Handicap(ctx context.Context, userID uint) (float64, error) {
	completed, err := s.completedRounds(ctx, userID)
	if err != nil {
		return 0, err
	}
	if len(completed) > 20 {
		completed = completed[:20]
	}
	scores := make([]int, 0, len(completed))
	for _, round := range completed {
		if round.TotalScore != nil {
			scores = append(scores, *round.TotalScore)
		}
	}
	return scoring.Handicap(scores, nil, nil), nil
}

// completedRounds returns the user's completed rounds, newest first.
func (s *Service) completedRounds(ctx context.Context, userID uint) ([]models.Round, error) {
	rounds, err := s.Store.GetRoundsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	var completed []models.Round
	for _, round := range rounds {
		if round.IsCompleted {
			completed = append(completed, round)
		}
	}
	return completed, nil
}
