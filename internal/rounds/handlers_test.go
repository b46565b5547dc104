package rounds

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
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

func setupRoundsTest(t *testing.T) (*fiber.App, repository.Store, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Round{}, &models.Hole{}))
	store := repository.NewGormStore(db)

	h := &Handlers{Service: &Service{Store: store}}
	app := fiber.New()
	app.Post("/api/v1/rounds", h.Create)
	app.Get("/api/v1/rounds/:id", h.GetByID)
	app.Delete("/api/v1/rounds/:id", h.Delete)
	app.Get("/api/v1/users/:id/rounds", h.ListForUser)
	app.Get("/api/v1/users/:id/active-round", h.ActiveForUser)
	return app, store, db
}

type roundEnvelope struct {
	Status string                `json:"status"`
	Data   models.RoundWithHoles `json:"data"`
}

type roundsEnvelope struct {
	Status string                  `json:"status"`
	Data   []models.RoundWithHoles `json:"data"`
}

func postRound(t *testing.T, app *fiber.App, body string) *roundEnvelope {
	req := httptest.NewRequest("POST", "/api/v1/rounds", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var env roundEnvelope
	decodeBody(t, resp.Body, &env)
	return &env
}

func decodeBody(t *testing.T, r io.ReadCloser, v interface{}) {
	t.Helper()
	defer r.Close()
	require.NoError(t, json.NewDecoder(r).Decode(v))
}

func TestCreateRound_PopulatesTemplate(t *testing.T) {
	app, _, _ := setupRoundsTest(t)

	env := postRound(t, app, `{"userId":1,"courseName":"Pebble Creek"}`)
	round := env.Data

	assert.Equal(t, "Pebble Creek", round.CourseName)
	assert.Equal(t, 72, round.TotalPar)
	assert.Equal(t, 1, round.CurrentHole)
	assert.False(t, round.IsCompleted)
	assert.Nil(t, round.TotalScore)
	require.Len(t, round.Holes, 18)
	for i, hole := range round.Holes {
		assert.Equal(t, i+1, hole.HoleNumber)
		assert.Equal(t, standardPars[i], hole.Par)
		require.NotNil(t, hole.Yardage)
		assert.Equal(t, standardYardages[i], *hole.Yardage)
		assert.Nil(t, hole.Score)
		assert.Nil(t, hole.Putts)
		assert.Nil(t, hole.FairwayInRegulation)
		assert.Nil(t, hole.GreenInRegulation)
		assert.Nil(t, hole.Notes)
	}
}

func TestCreateRound_Validation(t *testing.T) {
	app, _, _ := setupRoundsTest(t)

	cases := []struct {
		name string
		body string
	}{
		{"missing courseName", `{"userId":1}`},
		{"blank courseName", `{"userId":1,"courseName":"   "}`},
		{"missing userId", `{"courseName":"Pebble Creek"}`},
		{"bad totalPar", `{"userId":1,"courseName":"Pebble Creek","totalPar":0}`},
		{"malformed body", `{"userId":`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/api/v1/rounds", bytes.NewReader([]byte(tc.body)))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestGetRound_NotFound(t *testing.T) {
	app, _, _ := setupRoundsTest(t)
	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/rounds/999", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestGetRound_WithHoles(t *testing.T) {
	app, _, _ := setupRoundsTest(t)
	created := postRound(t, app, `{"userId":1,"courseName":"Pebble Creek"}`)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/rounds/1", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var env roundEnvelope
	decodeBody(t, resp.Body, &env)
	assert.Equal(t, created.Data.ID, env.Data.ID)
	assert.Len(t, env.Data.Holes, 18)
}

func TestDeleteRound_Cascades(t *testing.T) {
	app, store, _ := setupRoundsTest(t)
	postRound(t, app, `{"userId":1,"courseName":"Pebble Creek"}`)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/api/v1/rounds/1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	holes, err := store.GetHolesByRound(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, holes)

	resp, err = app.Test(httptest.NewRequest("DELETE", "/api/v1/rounds/1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestActiveRound(t *testing.T) {
	app, store, _ := setupRoundsTest(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/users/1/active-round", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	created := postRound(t, app, `{"userId":1,"courseName":"Pebble Creek"}`)

	resp, err = app.Test(httptest.NewRequest("GET", "/api/v1/users/1/active-round", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var env roundEnvelope
	decodeBody(t, resp.Body, &env)
	assert.Equal(t, created.Data.ID, env.Data.ID)
	assert.False(t, env.Data.IsCompleted)

	// Once completed it is no longer the active round.
	_, err = store.UpdateRound(context.Background(), created.Data.ID, map[string]interface{}{
		repository.FieldIsCompleted: true,
	})
	require.NoError(t, err)
	resp, err = app.Test(httptest.NewRequest("GET", "/api/v1/users/1/active-round", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestListRounds_NewestFirst(t *testing.T) {
	app, _, db := setupRoundsTest(t)
	first := postRound(t, app, `{"userId":1,"courseName":"Old Course"}`)
	second := postRound(t, app, `{"userId":1,"courseName":"New Course"}`)

	// Push the first round's date into the past so ordering is deterministic.
	err := db.Model(&models.Round{}).
		Where("id = ?", first.Data.ID).
		Update("date", time.Now().Add(-24*time.Hour)).Error
	require.NoError(t, err)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/users/1/rounds", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var env roundsEnvelope
	decodeBody(t, resp.Body, &env)
	require.Len(t, env.Data, 2)
	assert.Equal(t, second.Data.ID, env.Data[0].ID)
	assert.Equal(t, first.Data.ID, env.Data[1].ID)
	for _, r := range env.Data {
		assert.Len(t, r.Holes, 18)
	}
}
