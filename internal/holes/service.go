package holes

import (
	"context"

	"fairway-backend/internal/models"
	"fairway-backend/internal/pkg/apperrors"
	"fairway-backend/internal/pkg/patch"
	"fairway-backend/internal/repository"
	"fairway-backend/internal/scoring"

	"github.com/microcosm-cc/bluemonday"
)

// Notes come straight from client input; strip everything but text.
var notesPolicy = bluemonday.StrictPolicy()

// Update is the partial-update payload for one hole. A key left out of the
// JSON body leaves that field unchanged; an explicit null clears it.
type Update struct {
	Score               patch.Field[int]    `json:"score"`
	Putts               patch.Field[int]    `json:"putts"`
	FairwayInRegulation patch.Field[bool]   `json:"fairwayInRegulation"`
	GreenInRegulation   patch.Field[bool]   `json:"greenInRegulation"`
	Notes               patch.Field[string] `json:"notes"`
}

// StatsInvalidator drops a user's cached statistics after a score change.
type StatsInvalidator interface {
	InvalidateUser(ctx context.Context, userID uint)
}

// Service applies partial updates to holes and keeps the owning round's
// derived fields consistent.
type Service struct {
	Store repository.Store
	Stats StatsInvalidator
}

// Apply merges the update over the hole identified by (roundID, holeNumber)
// and persists it. When the score key is among the updated fields, even set
// to the same value or to null, the round's totals are recalculated from a
// fresh hole snapshot and written back before returning.
func (s *Service) Apply(ctx context.Context, roundID uint, holeNumber int, upd Update) (*models.Hole, error) {
	if holeNumber < 1 || holeNumber > 18 {
		return nil, apperrors.Validation("holeNumber must be between 1 and 18")
	}
	if upd.Score.Present && upd.Score.Value != nil && *upd.Score.Value < 1 {
		return nil, apperrors.Validation("score must be at least 1")
	}
	if upd.Putts.Present && upd.Putts.Value != nil && *upd.Putts.Value < 0 {
		return nil, apperrors.Validation("putts must not be negative")
	}

	fields := make(map[string]interface{})
	if upd.Score.Present {
		fields[repository.FieldScore] = intValue(upd.Score)
	}
	if upd.Putts.Present {
		fields[repository.FieldPutts] = intValue(upd.Putts)
	}
	if upd.FairwayInRegulation.Present {
		fields[repository.FieldFIR] = boolValue(upd.FairwayInRegulation)
	}
	if upd.GreenInRegulation.Present {
		fields[repository.FieldGIR] = boolValue(upd.GreenInRegulation)
	}
	if upd.Notes.Present {
		fields[repository.FieldNotes] = sanitizedNotes(upd.Notes)
	}

	hole, err := s.Store.UpdateHole(ctx, roundID, holeNumber, fields)
	if err != nil {
		return nil, err
	}

	if upd.Score.Present {
		if err := s.recalculateRound(ctx, roundID); err != nil {
			return nil, err
		}
	}
	return hole, nil
}

// recalculateRound reads the round's holes and writes the derived fields
// back. The hole snapshot is read after the triggering write, so totals are
// never computed from stale data.
func (s *Service) recalculateRound(ctx context.Context, roundID uint) error {
	holesList, err := s.Store.GetHolesByRound(ctx, roundID)
	if err != nil {
		return err
	}
	totals := scoring.Recalculate(holesList)

	fields := map[string]interface{}{
		repository.FieldCurrentHole: totals.CurrentHole,
		repository.FieldIsCompleted: totals.IsCompleted,
		repository.FieldTotalScore:  nil,
	}
	if totals.TotalScore != nil {
		fields[repository.FieldTotalScore] = *totals.TotalScore
	}

	round, err := s.Store.UpdateRound(ctx, roundID, fields)
	if err != nil {
		return err
	}
	if s.Stats != nil {
		s.Stats.InvalidateUser(ctx, round.UserID)
	}
	return nil
}

func intValue(f patch.Field[int]) interface{} {
	if f.Value == nil {
		return nil
	}
	return *f.Value
}

func boolValue(f patch.Field[bool]) interface{} {
	if f.Value == nil {
		return nil
	}
	return *f.Value
}

func sanitizedNotes(f patch.Field[string]) interface{} {
	if f.Value == nil {
		return nil
	}
	return notesPolicy.Sanitize(*f.Value)
}
