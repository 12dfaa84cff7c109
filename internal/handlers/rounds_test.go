package handlers

import (
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRoundUnknownSlug(t *testing.T) {
	db, _ := newMockDB(t)

	app := fiber.New()
	app.Get("/rounds/:roundID", GetRound(db))

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/rounds/never-1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestGetRoundFinalizeCheckFailureIsAnError(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "rounds"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "external_id", "date", "course_name", "created_at"}).
			AddRow(uuid.New().String(), "mon-1", time.Now(), "Nicklaus", time.Now()))
	// A failed finalize lookup must surface, not read as "not finalized".
	mock.ExpectQuery(`SELECT count\(\*\) FROM "finalized_scores"`).
		WillReturnError(errors.New("connection reset"))

	playerID := uuid.New().String()
	app := fiber.New()
	app.Get("/rounds/:roundID", func(c *fiber.Ctx) error {
		c.Locals("playerID", playerID)
		return c.Next()
	}, GetRound(db))

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/rounds/mon-1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}
