package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/melodytrail/backend/internal/trail/catalog"
	"github.com/melodytrail/backend/internal/trail/models"
)

func TestGetTrailMap_NewStudent(t *testing.T) {
	setupTestDB(t)
	student := createTestStudent(t, "ada")

	trail, err := GetTrailMap(student.ID)

	require.NoError(t, err)
	assert.Len(t, trail, len(catalog.AllNodes()))

	byID := make(map[string]*models.NodeWithProgress, len(trail))
	for _, entry := range trail {
		byID[entry.ID] = entry
		assert.Nil(t, entry.Progress)
	}

	assert.True(t, byID["treble_1_1"].Unlocked)
	assert.True(t, byID["bass_1_1"].Unlocked)
	assert.True(t, byID["rhythm_1_1"].Unlocked)
	assert.False(t, byID["treble_1_2"].Unlocked)
	assert.False(t, byID["boss_trail_guardian"].Unlocked)
}

func TestGetTrailMap_CompletionUnlocksNext(t *testing.T) {
	setupTestDB(t)
	student := createTestStudent(t, "ada")

	_, err := RecordCompletion(student.ID, models.CompletionRequest{
		NodeID:          "treble_1_1",
		ScorePercentage: 90,
	})
	require.NoError(t, err)

	trail, err := GetTrailMap(student.ID)
	require.NoError(t, err)

	byID := make(map[string]*models.NodeWithProgress, len(trail))
	for _, entry := range trail {
		byID[entry.ID] = entry
	}

	assert.True(t, byID["treble_1_2"].Unlocked)
	require.NotNil(t, byID["treble_1_1"].Progress)
	assert.Equal(t, 2, byID["treble_1_1"].Progress.Stars)
}

func TestGetTrailMap_ZeroStarsDoesNotUnlock(t *testing.T) {
	setupTestDB(t)
	student := createTestStudent(t, "ada")

	_, err := RecordCompletion(student.ID, models.CompletionRequest{
		NodeID:          "treble_1_1",
		ScorePercentage: 30,
	})
	require.NoError(t, err)

	unlocked, err := CheckNodeUnlocked(student.ID, "treble_1_2")
	require.NoError(t, err)
	assert.False(t, unlocked, "a failed attempt is not a completion")
}

func TestGetAvailableNodes_NewStudent(t *testing.T) {
	setupTestDB(t)
	student := createTestStudent(t, "ada")

	available, err := GetAvailableNodes(student.ID)

	require.NoError(t, err)
	assert.Len(t, available, 3, "one starting node per path")
}

func TestGetNextRecommendedNode_NewStudentGetsTrailStart(t *testing.T) {
	setupTestDB(t)
	student := createTestStudent(t, "ada")

	node, err := GetNextRecommendedNode(student.ID)

	require.NoError(t, err)
	assert.Equal(t, "treble_1_1", node.ID, "lowest trail order wins")
}

func TestGetNextRecommendedNode_PrefersInProgress(t *testing.T) {
	setupTestDB(t)
	student := createTestStudent(t, "ada")

	// One star on the rhythm start leaves it in progress; it beats the
	// untouched treble and bass starts.
	_, err := RecordCompletion(student.ID, models.CompletionRequest{
		NodeID:          "rhythm_1_1",
		ScorePercentage: 70,
	})
	require.NoError(t, err)

	node, err := GetNextRecommendedNode(student.ID)

	require.NoError(t, err)
	assert.Equal(t, "rhythm_1_1", node.ID)
}

func TestGetNextRecommendedNode_MasteredNodeFallsBehindUnstarted(t *testing.T) {
	setupTestDB(t)
	student := createTestStudent(t, "ada")

	_, err := RecordCompletion(student.ID, models.CompletionRequest{
		NodeID:          "treble_1_1",
		ScorePercentage: 100,
	})
	require.NoError(t, err)

	node, err := GetNextRecommendedNode(student.ID)

	require.NoError(t, err)
	assert.NotEqual(t, "treble_1_1", node.ID)
	assert.Nil(t, node.Progress, "an unstarted node comes next")
}

func TestGetStudentLevel(t *testing.T) {
	setupTestDB(t)
	student := createTestStudent(t, "ada")

	_, err := RecordCompletion(student.ID, models.CompletionRequest{
		NodeID:          "treble_1_1",
		ScorePercentage: 85,
	})
	require.NoError(t, err)

	level, err := GetStudentLevel(student.ID)

	require.NoError(t, err)
	assert.Equal(t, 105, level.TotalXP)
	assert.Equal(t, 2, level.Level.Level)
	assert.Equal(t, 250, level.Progress.NextLevelXP)
}

func TestGetXPLeaderboard_RanksAndClamps(t *testing.T) {
	setupTestDB(t)
	ada := createTestStudent(t, "ada")
	createTestStudent(t, "bob")

	_, err := RecordCompletion(ada.ID, models.CompletionRequest{
		NodeID:          "treble_1_1",
		ScorePercentage: 100,
	})
	require.NoError(t, err)

	board, err := GetXPLeaderboard(500)

	require.NoError(t, err)
	require.Len(t, board, 2)
	assert.Equal(t, 1, board[0].Rank)
	assert.Equal(t, "ada", board[0].Username)
	assert.Equal(t, 2, board[1].Rank)
	assert.Equal(t, "bob", board[1].Username)
}
