// Package scoring holds the pure round-derivation logic: recalculating a
// round's aggregate fields from its holes, and the golf arithmetic helpers
// (score to par, handicap).
package scoring

import "fairway-backend/internal/models"

// Totals is the derived state of a round: total score over the scored holes
// (nil when none are scored), the first unscored hole position, and whether
// all 18 holes have a score.
type Totals struct {
	TotalScore  *int
	CurrentHole int
	IsCompleted bool
}

// Recalculate derives Totals from a round's holes, which must be ordered by
// hole number ascending. It is idempotent and accepts any positive score
// as-is; no game rules are applied. An empty or partially-cleared hole set
// is handled: TotalScore is nil when nothing is scored.
func Recalculate(holes []models.Hole) Totals {
	sum := 0
	scored := 0
	firstUnscored := 0
	for i, hole := range holes {
		if hole.Score != nil {
			sum += *hole.Score
			scored++
		} else if firstUnscored == 0 {
			firstUnscored = i + 1
		}
	}

	totals := Totals{
		CurrentHole: firstUnscored,
		IsCompleted: scored == len(holes) && scored == 18,
	}
	if firstUnscored == 0 || firstUnscored > 18 {
		// No unscored hole: the player sits on the last hole.
		totals.CurrentHole = 18
	}
	if scored > 0 {
		totals.TotalScore = &sum
	}
	return totals
}
