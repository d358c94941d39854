package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/melodytrail/backend/internal/common/database"
	"github.com/melodytrail/backend/internal/trail/models"
)

const (
	testMaxTokens = 3
	testWindow    = 5 * time.Minute
)

func TestConsumeToken_FirstUseStartsFullBucket(t *testing.T) {
	setupTestDB(t)
	student := createTestStudent(t, "ada")

	allowed, _, err := ConsumeToken(student.ID, "treble_1_1", testMaxTokens, testWindow)

	require.NoError(t, err)
	assert.True(t, allowed)

	status, err := GetRateLimitStatus(student.ID, "treble_1_1", testMaxTokens, testWindow)
	require.NoError(t, err)
	assert.Equal(t, testMaxTokens-1, status.Tokens)
}

func TestConsumeToken_DeniesWhenExhausted(t *testing.T) {
	setupTestDB(t)
	student := createTestStudent(t, "ada")

	for i := 0; i < testMaxTokens; i++ {
		allowed, _, err := ConsumeToken(student.ID, "treble_1_1", testMaxTokens, testWindow)
		require.NoError(t, err)
		assert.True(t, allowed, "submission %d should pass", i+1)
	}

	allowed, resetTime, err := ConsumeToken(student.ID, "treble_1_1", testMaxTokens, testWindow)

	require.NoError(t, err)
	assert.False(t, allowed)
	assert.True(t, resetTime.After(time.Now()), "reset time lies in the future")
	assert.True(t, resetTime.Before(time.Now().Add(testWindow+time.Second)))
}

func TestConsumeToken_DenialDoesNotExtendWindow(t *testing.T) {
	setupTestDB(t)
	student := createTestStudent(t, "ada")

	for i := 0; i < testMaxTokens; i++ {
		_, _, err := ConsumeToken(student.ID, "treble_1_1", testMaxTokens, testWindow)
		require.NoError(t, err)
	}

	_, firstReset, err := ConsumeToken(student.ID, "treble_1_1", testMaxTokens, testWindow)
	require.NoError(t, err)
	_, secondReset, err := ConsumeToken(student.ID, "treble_1_1", testMaxTokens, testWindow)
	require.NoError(t, err)

	assert.Equal(t, firstReset, secondReset)
}

func TestConsumeToken_RefillsAfterWindow(t *testing.T) {
	setupTestDB(t)
	student := createTestStudent(t, "ada")

	for i := 0; i < testMaxTokens; i++ {
		_, _, err := ConsumeToken(student.ID, "treble_1_1", testMaxTokens, testWindow)
		require.NoError(t, err)
	}

	// Age the bucket past the window instead of sleeping.
	expired := time.Now().Add(-testWindow - time.Minute)
	err := database.DB.Model(&models.RateLimitBucket{}).
		Where("student_id = ? AND node_id = ?", student.ID, "treble_1_1").
		Update("last_refill", expired).Error
	require.NoError(t, err)

	allowed, _, err := ConsumeToken(student.ID, "treble_1_1", testMaxTokens, testWindow)

	require.NoError(t, err)
	assert.True(t, allowed, "elapsed window refills the bucket")

	status, err := GetRateLimitStatus(student.ID, "treble_1_1", testMaxTokens, testWindow)
	require.NoError(t, err)
	assert.Equal(t, testMaxTokens-1, status.Tokens, "refill is whole-window, then one spent")
}

func TestConsumeToken_BucketsAreIndependent(t *testing.T) {
	setupTestDB(t)
	ada := createTestStudent(t, "ada")
	bob := createTestStudent(t, "bob")

	for i := 0; i < testMaxTokens; i++ {
		_, _, err := ConsumeToken(ada.ID, "treble_1_1", testMaxTokens, testWindow)
		require.NoError(t, err)
	}

	// Exhausting ada on one node blocks neither her other nodes nor bob.
	allowed, _, err := ConsumeToken(ada.ID, "treble_1_2", testMaxTokens, testWindow)
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, _, err = ConsumeToken(bob.ID, "treble_1_1", testMaxTokens, testWindow)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestGetRateLimitStatus_MissingBucketIsFull(t *testing.T) {
	setupTestDB(t)
	student := createTestStudent(t, "ada")

	status, err := GetRateLimitStatus(student.ID, "treble_1_1", testMaxTokens, testWindow)

	require.NoError(t, err)
	assert.Equal(t, testMaxTokens, status.Tokens)
}

func TestGetRateLimitStatus_DoesNotConsume(t *testing.T) {
	setupTestDB(t)
	student := createTestStudent(t, "ada")

	_, _, err := ConsumeToken(student.ID, "treble_1_1", testMaxTokens, testWindow)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		status, err := GetRateLimitStatus(student.ID, "treble_1_1", testMaxTokens, testWindow)
		require.NoError(t, err)
		assert.Equal(t, testMaxTokens-1, status.Tokens)
	}
}

func TestGetRateLimitStatus_ExpiredBucketIsFull(t *testing.T) {
	setupTestDB(t)
	student := createTestStudent(t, "ada")

	_, _, err := ConsumeToken(student.ID, "treble_1_1", testMaxTokens, testWindow)
	require.NoError(t, err)

	expired := time.Now().Add(-testWindow - time.Minute)
	err = database.DB.Model(&models.RateLimitBucket{}).
		Where("student_id = ? AND node_id = ?", student.ID, "treble_1_1").
		Update("last_refill", expired).Error
	require.NoError(t, err)

	status, err := GetRateLimitStatus(student.ID, "treble_1_1", testMaxTokens, testWindow)

	require.NoError(t, err)
	assert.Equal(t, testMaxTokens, status.Tokens)
}
