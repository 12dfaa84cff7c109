package handlers

import (
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golfbuddy/backend/internal/websocket"
)

func TestSubmitScoresFinalizeCheckFailureLocksNothingIn(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "rounds"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "external_id", "date", "course_name", "created_at"}).
			AddRow(uuid.New().String(), "mon-1", time.Now(), "Nicklaus", time.Now()))
	// If the finalize check fails, the submission must be rejected rather
	// than treated as "not finalized" and written anyway.
	mock.ExpectQuery(`SELECT count\(\*\) FROM "finalized_scores"`).
		WillReturnError(errors.New("connection reset"))

	playerID := uuid.New().String()
	app := fiber.New()
	app.Post("/rounds/:roundID/scores", func(c *fiber.Ctx) error {
		c.Locals("playerID", playerID)
		return c.Next()
	}, SubmitScores(db, websocket.NewHub()))

	req := httptest.NewRequest(fiber.MethodPost, "/rounds/mon-1/scores",
		strings.NewReader(`{"scores":[{"hole_number":1,"strokes":4}]}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	// No insert may reach the database on this path.
	assert.NoError(t, mock.ExpectationsWereMet())
}
