package holes

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fairway-backend/internal/models"
	"fairway-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeInvalidator struct {
	calls []uint
}

func (f *fakeInvalidator) InvalidateUser(_ context.Context, userID uint) {
	f.calls = append(f.calls, userID)
}

func setupHolesTest(t *testing.T) (*fiber.App, repository.Store, *gorm.DB, *fakeInvalidator) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Round{}, &models.Hole{}))
	store := repository.NewGormStore(db)
	inv := &fakeInvalidator{}

	h := &Handlers{Service: &Service{Store: store, Stats: inv}}
	app := fiber.New()
	app.Patch("/api/v1/rounds/:roundId/holes/:holeNumber", h.Patch)
	return app, store, db, inv
}

func seedRound(t *testing.T, store repository.Store, userID uint) *models.Round {
	ctx := context.Background()
	round := &models.Round{
		UserID:      userID,
		CourseName:  "Pebble Creek",
		Date:        time.Now(),
		TotalPar:    72,
		CurrentHole: 1,
	}
	require.NoError(t, store.CreateRound(ctx, round))
	for i := 1; i <= 18; i++ {
		require.NoError(t, store.CreateHole(ctx, &models.Hole{
			RoundID:    round.ID,
			HoleNumber: i,
			Par:        4,
		}))
	}
	return round
}

func patchHole(t *testing.T, app *fiber.App, roundID uint, holeNumber int, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest("PATCH",
		fmt.Sprintf("/api/v1/rounds/%d/holes/%d", roundID, holeNumber),
		bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestPatchHole_ScoreUpdatesRoundTotals(t *testing.T) {
	app, store, _, _ := setupHolesTest(t)
	round := seedRound(t, store, 1)

	resp := patchHole(t, app, round.ID, 1, `{"score":5,"putts":2,"fairwayInRegulation":true}`)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	got, err := store.GetRound(context.Background(), round.ID)
	require.NoError(t, err)
	require.NotNil(t, got.TotalScore)
	assert.Equal(t, 5, *got.TotalScore)
	assert.Equal(t, 2, got.CurrentHole)
	assert.False(t, got.IsCompleted)
}

func TestPatchHole_PuttsOnlyDoesNotRecalculate(t *testing.T) {
	app, store, db, inv := setupHolesTest(t)
	round := seedRound(t, store, 1)

	// Plant sentinel derived values; a recalculation would overwrite them.
	err := db.Model(&models.Round{}).Where("id = ?", round.ID).
		Updates(map[string]interface{}{"total_score": 999, "current_hole": 9}).Error
	require.NoError(t, err)

	resp := patchHole(t, app, round.ID, 5, `{"putts":3}`)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	got, err := store.GetRound(context.Background(), round.ID)
	require.NoError(t, err)
	require.NotNil(t, got.TotalScore)
	assert.Equal(t, 999, *got.TotalScore)
	assert.Equal(t, 9, got.CurrentHole)
	assert.Empty(t, inv.calls)
}

func TestPatchHole_SameScoreStillRecalculates(t *testing.T) {
	app, store, db, inv := setupHolesTest(t)
	round := seedRound(t, store, 1)

	resp := patchHole(t, app, round.ID, 1, `{"score":4}`)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Len(t, inv.calls, 1)

	// Corrupt the derived fields, then re-send the identical score.
	err := db.Model(&models.Round{}).Where("id = ?", round.ID).
		Update("total_score", 999).Error
	require.NoError(t, err)

	resp = patchHole(t, app, round.ID, 1, `{"score":4}`)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	got, err := store.GetRound(context.Background(), round.ID)
	require.NoError(t, err)
	require.NotNil(t, got.TotalScore)
	assert.Equal(t, 4, *got.TotalScore)
	assert.Equal(t, []uint{1, 1}, inv.calls)
}

func TestPatchHole_NullClearsScore(t *testing.T) {
	app, store, _, _ := setupHolesTest(t)
	round := seedRound(t, store, 1)

	patchHole(t, app, round.ID, 1, `{"score":5}`)
	patchHole(t, app, round.ID, 2, `{"score":4}`)

	resp := patchHole(t, app, round.ID, 1, `{"score":null}`)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	ctx := context.Background()
	holes, err := store.GetHolesByRound(ctx, round.ID)
	require.NoError(t, err)
	assert.Nil(t, holes[0].Score)
	require.NotNil(t, holes[1].Score)

	got, err := store.GetRound(ctx, round.ID)
	require.NoError(t, err)
	require.NotNil(t, got.TotalScore)
	assert.Equal(t, 4, *got.TotalScore)
	assert.Equal(t, 1, got.CurrentHole)
	assert.False(t, got.IsCompleted)
}

func TestPatchHole_CompletesRound(t *testing.T) {
	app, store, _, _ := setupHolesTest(t)
	round := seedRound(t, store, 1)

	for i := 1; i <= 18; i++ {
		resp := patchHole(t, app, round.ID, i, `{"score":4}`)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	got, err := store.GetRound(context.Background(), round.ID)
	require.NoError(t, err)
	require.NotNil(t, got.TotalScore)
	assert.Equal(t, 72, *got.TotalScore)
	assert.Equal(t, 18, got.CurrentHole)
	assert.True(t, got.IsCompleted)
}

func TestPatchHole_Validation(t *testing.T) {
	app, store, _, _ := setupHolesTest(t)
	round := seedRound(t, store, 1)

	cases := []struct {
		name       string
		holeNumber int
		body       string
	}{
		{"score below one", 1, `{"score":0}`},
		{"negative putts", 1, `{"putts":-1}`},
		{"hole number too high", 19, `{"score":4}`},
		{"hole number zero", 0, `{"score":4}`},
		{"malformed body", 1, `{"score":`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := patchHole(t, app, round.ID, tc.holeNumber, tc.body)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestPatchHole_RoundNotFound(t *testing.T) {
	app, _, _, _ := setupHolesTest(t)
	resp := patchHole(t, app, 999, 1, `{"score":4}`)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestPatchHole_SanitizesNotes(t *testing.T) {
	app, store, _, _ := setupHolesTest(t)
	round := seedRound(t, store, 1)

	resp := patchHole(t, app, round.ID, 3, `{"notes":"<b>great</b> drive down the left side"}`)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	holes, err := store.GetHolesByRound(context.Background(), round.ID)
	require.NoError(t, err)
	require.NotNil(t, holes[2].Notes)
	assert.Equal(t, "great drive down the left side", *holes[2].Notes)
}
