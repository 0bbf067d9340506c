package services

import (
	"fmt"
	"strings"
	"testing"

	"namepilot/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a per-test in-memory sqlite database with the full schema.
// cache=shared keeps the database alive across the pool's connections.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Session{},
		&models.Game{},
		&models.Player{},
		&models.Round{},
	))

	return db
}

func createTestSession(t *testing.T, db *gorm.DB) *models.Session {
	t.Helper()

	session, err := NewSessionService(db).Create()
	require.NoError(t, err)
	return session
}

func createTestGame(t *testing.T, db *gorm.DB, sessionID string) *models.Game {
	t.Helper()

	game, err := NewGameService(db).Create(&CreateGameRequest{
		Difficulty: "easy",
		Timer:      60,
		SessionID:  sessionID,
	})
	require.NoError(t, err)
	return game
}
