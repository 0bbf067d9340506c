package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCreatePlayerDefaultsScore(t *testing.T) {
	db := newTestDB(t)
	svc := NewPlayerService(db)

	session := createTestSession(t, db)
	game := createTestGame(t, db, session.ID)

	player, err := svc.Create(&CreatePlayerRequest{
		GameID:   game.ID,
		Username: "alice",
		Level:    "1",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, player.ID)
	assert.Equal(t, game.ID, player.GameID)
	assert.Equal(t, "alice", player.Username)
	assert.Equal(t, 0, player.Score)
	assert.Equal(t, "1", player.Level)
	assert.False(t, player.CreatedAt.IsZero())
}

func TestCreatePlayerWithScore(t *testing.T) {
	db := newTestDB(t)
	svc := NewPlayerService(db)

	session := createTestSession(t, db)
	game := createTestGame(t, db, session.ID)

	player, err := svc.Create(&CreatePlayerRequest{
		GameID:   game.ID,
		Username: "bob",
		Score:    42,
		Level:    "3",
	})
	require.NoError(t, err)
	assert.Equal(t, 42, player.Score)
}

func TestListPlayersEmpty(t *testing.T) {
	db := newTestDB(t)
	svc := NewPlayerService(db)

	players, err := svc.List()
	require.NoError(t, err)
	assert.NotNil(t, players)
	assert.Empty(t, players)
}

func TestDeletePlayer(t *testing.T) {
	db := newTestDB(t)
	svc := NewPlayerService(db)

	session := createTestSession(t, db)
	game := createTestGame(t, db, session.ID)
	player, err := svc.Create(&CreatePlayerRequest{
		GameID:   game.ID,
		Username: "alice",
		Level:    "1",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(player.ID))

	players, err := svc.List()
	require.NoError(t, err)
	assert.Empty(t, players)
}

func TestDeletePlayerNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewPlayerService(db)

	err := svc.Delete("does-not-exist")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
