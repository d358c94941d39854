package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/melodytrail/backend/internal/common/database"
	"github.com/melodytrail/backend/internal/trail/models"
	"github.com/melodytrail/backend/internal/trail/repository"
	"github.com/melodytrail/backend/internal/trail/xp"
)

// setupTestDB points the global connection at a fresh shared in-memory
// SQLite database and resets the rate limit policy to defaults.
func setupTestDB(t *testing.T) {
	t.Helper()

	err := database.InitWithType("sqlite", "file::memory:?cache=shared")
	require.NoError(t, err)

	database.DB.Exec("DROP TABLE IF EXISTS progress_records")
	database.DB.Exec("DROP TABLE IF EXISTS rate_limit_buckets")
	database.DB.Exec("DROP TABLE IF EXISTS students")

	err = database.Migrate(
		&models.Student{},
		&models.ProgressRecord{},
		&models.RateLimitBucket{},
	)
	require.NoError(t, err)

	ConfigureRateLimit(10, 300)
}

func createTestStudent(t *testing.T, username string) *models.Student {
	t.Helper()

	student := &models.Student{Username: username}
	require.NoError(t, repository.CreateStudent(student))
	return student
}

func TestStarsForScore(t *testing.T) {
	tests := []struct {
		score float64
		stars int
	}{
		{100, 3},
		{95, 3},
		{94.9, 2},
		{80, 2},
		{79.9, 1},
		{60, 1},
		{59.9, 0},
		{0, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.stars, StarsForScore(tt.score), "score=%v", tt.score)
	}
}

func TestRecordCompletion_InvalidStudentID(t *testing.T) {
	_, err := RecordCompletion(0, models.CompletionRequest{NodeID: "treble_1_1", ScorePercentage: 90})
	assert.Error(t, err)
}

func TestRecordCompletion_UnknownNode(t *testing.T) {
	setupTestDB(t)
	student := createTestStudent(t, "ada")

	_, err := RecordCompletion(student.ID, models.CompletionRequest{NodeID: "no_such_node", ScorePercentage: 90})
	assert.Error(t, err)
}

func TestRecordCompletion_ScoreOutOfRange(t *testing.T) {
	setupTestDB(t)
	student := createTestStudent(t, "ada")

	_, err := RecordCompletion(student.ID, models.CompletionRequest{NodeID: "treble_1_1", ScorePercentage: 150})
	assert.Error(t, err)
}

func TestRecordCompletion_UnknownStudent(t *testing.T) {
	setupTestDB(t)

	_, err := RecordCompletion(9999, models.CompletionRequest{NodeID: "treble_1_1", ScorePercentage: 90})
	assert.Error(t, err)
}

func TestRecordCompletion_FirstCompletion(t *testing.T) {
	setupTestDB(t)
	student := createTestStudent(t, "ada")

	result, err := RecordCompletion(student.ID, models.CompletionRequest{
		NodeID:          "treble_1_1",
		ScorePercentage: 85,
	})

	require.NoError(t, err)
	assert.False(t, result.RateLimited)
	assert.Equal(t, 2, result.StarsEarned)
	require.NotNil(t, result.Record)
	assert.Equal(t, 85, result.Record.BestScore)

	// treble_1_1 awards 40 XP per star plus the first-time bonus.
	require.NotNil(t, result.XP)
	assert.Equal(t, 80, result.XP.BaseXP)
	assert.Equal(t, xp.BonusFirstComplete, result.XP.BonusXP)
	assert.Equal(t, 105, result.XP.TotalXP)
	assert.True(t, result.XP.First)
	assert.False(t, result.XP.Perfect)

	assert.Equal(t, 105, result.NewTotalXP)
	assert.Equal(t, 2, result.NewLevel)
	assert.True(t, result.LeveledUp)
}

func TestRecordCompletion_PerfectRun(t *testing.T) {
	setupTestDB(t)
	student := createTestStudent(t, "ada")

	result, err := RecordCompletion(student.ID, models.CompletionRequest{
		NodeID:          "treble_1_1",
		ScorePercentage: 100,
	})

	require.NoError(t, err)
	assert.Equal(t, 3, result.StarsEarned)
	require.NotNil(t, result.XP)
	assert.True(t, result.XP.Perfect)

	want := 40*3 + xp.BonusFirstComplete + xp.BonusPerfectScore + xp.BonusThreeStars
	assert.Equal(t, want, result.XP.TotalXP)
}

func TestRecordCompletion_BossWinBonus(t *testing.T) {
	setupTestDB(t)
	student := createTestStudent(t, "ada")

	// Beating any boss-flagged node pays the flat boss bonus on top of
	// the usual star and first-time rewards.
	result, err := RecordCompletion(student.ID, models.CompletionRequest{
		NodeID:          "boss_trail_guardian",
		ScorePercentage: 85,
	})

	require.NoError(t, err)
	require.NotNil(t, result.XP)

	want := 150*2 + xp.BonusFirstComplete + xp.BonusBossWin
	assert.Equal(t, want, result.XP.TotalXP)
	assert.Equal(t, 300, result.XP.BaseXP)
}

func TestRecordCompletion_FailedAttemptEarnsNothing(t *testing.T) {
	setupTestDB(t)
	student := createTestStudent(t, "ada")

	result, err := RecordCompletion(student.ID, models.CompletionRequest{
		NodeID:          "treble_1_1",
		ScorePercentage: 40,
	})

	require.NoError(t, err)
	assert.Equal(t, 0, result.StarsEarned)
	assert.Nil(t, result.XP, "no XP for a zero-star attempt")

	// The attempt is still recorded for practice history.
	require.NotNil(t, result.Record)
	assert.Equal(t, 1, result.Record.ExercisesCompleted)

	fetched, err := repository.GetStudentByID(student.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, fetched.TotalXP)
}

func TestRecordCompletion_RepeatLosesFirstTimeBonus(t *testing.T) {
	setupTestDB(t)
	student := createTestStudent(t, "ada")

	_, err := RecordCompletion(student.ID, models.CompletionRequest{
		NodeID:          "treble_1_1",
		ScorePercentage: 85,
	})
	require.NoError(t, err)

	result, err := RecordCompletion(student.ID, models.CompletionRequest{
		NodeID:          "treble_1_1",
		ScorePercentage: 62,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, result.StarsEarned)
	require.NotNil(t, result.XP)
	assert.False(t, result.XP.First)
	assert.Equal(t, 40, result.XP.TotalXP)

	// Stars and best score keep their earlier high-water marks.
	assert.Equal(t, 2, result.Record.Stars)
	assert.Equal(t, 85, result.Record.BestScore)
}

func TestRecordCompletion_RateLimited(t *testing.T) {
	setupTestDB(t)
	ConfigureRateLimit(3, 300)
	student := createTestStudent(t, "ada")

	for i := 0; i < 3; i++ {
		result, err := RecordCompletion(student.ID, models.CompletionRequest{
			NodeID:          "treble_1_1",
			ScorePercentage: 70,
		})
		require.NoError(t, err)
		assert.False(t, result.RateLimited, "submission %d", i+1)
	}

	result, err := RecordCompletion(student.ID, models.CompletionRequest{
		NodeID:          "treble_1_1",
		ScorePercentage: 70,
	})

	require.NoError(t, err)
	assert.True(t, result.RateLimited)
	require.NotNil(t, result.ResetTime)
	assert.Nil(t, result.Record, "a throttled submission writes nothing")

	record, err := repository.GetNodeProgress(student.ID, "treble_1_1")
	require.NoError(t, err)
	assert.Equal(t, 3, record.ExercisesCompleted, "attempt count unchanged by the denial")
}

func TestRecordCompletion_AllowsWhenLimiterStoreFails(t *testing.T) {
	setupTestDB(t)
	student := createTestStudent(t, "ada")

	// A broken throttle store must not block learning progress.
	database.DB.Exec("DROP TABLE rate_limit_buckets")

	result, err := RecordCompletion(student.ID, models.CompletionRequest{
		NodeID:          "treble_1_1",
		ScorePercentage: 85,
	})

	require.NoError(t, err)
	assert.False(t, result.RateLimited)
	require.NotNil(t, result.Record)
	assert.Equal(t, 2, result.StarsEarned)

	record, err := repository.GetNodeProgress(student.ID, "treble_1_1")
	require.NoError(t, err)
	assert.Equal(t, 1, record.ExercisesCompleted)
}

func TestGetTrailStats_Histogram(t *testing.T) {
	setupTestDB(t)
	student := createTestStudent(t, "ada")

	scores := []struct {
		nodeID string
		score  float64
	}{
		{"treble_1_1", 100}, // three stars
		{"bass_1_1", 85},    // two stars
		{"rhythm_1_1", 65},  // one star
	}
	for _, s := range scores {
		_, err := RecordCompletion(student.ID, models.CompletionRequest{
			NodeID:          s.nodeID,
			ScorePercentage: s.score,
		})
		require.NoError(t, err)
	}

	stats, err := GetTrailStats(student.ID)

	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalNodes)
	assert.Equal(t, 1, stats.NodesWithThreeStars)
	assert.Equal(t, 1, stats.NodesWithTwoStars)
	assert.Equal(t, 1, stats.NodesWithOneStar)
	assert.Equal(t, 6, stats.TotalStars)
	assert.Equal(t, 3, stats.TotalExercisesCompleted)
	assert.NotNil(t, stats.LastPracticed)
}

func TestResetStudentProgress(t *testing.T) {
	setupTestDB(t)
	student := createTestStudent(t, "ada")

	_, err := RecordCompletion(student.ID, models.CompletionRequest{
		NodeID:          "treble_1_1",
		ScorePercentage: 95,
	})
	require.NoError(t, err)

	require.NoError(t, ResetStudentProgress(student.ID))

	records, err := GetStudentProgress(student.ID)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestGetRateLimitStatus_UnknownNode(t *testing.T) {
	setupTestDB(t)
	student := createTestStudent(t, "ada")

	_, err := GetRateLimitStatus(student.ID, "no_such_node")
	assert.Error(t, err)
}

func TestGetRateLimitStatus_CountsDown(t *testing.T) {
	setupTestDB(t)
	student := createTestStudent(t, "ada")

	_, err := RecordCompletion(student.ID, models.CompletionRequest{
		NodeID:          "treble_1_1",
		ScorePercentage: 70,
	})
	require.NoError(t, err)

	status, err := GetRateLimitStatus(student.ID, "treble_1_1")

	require.NoError(t, err)
	assert.Equal(t, 9, status.Tokens)
}
