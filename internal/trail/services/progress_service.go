package services

import (
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/melodytrail/backend/internal/common/errors"
	"github.com/melodytrail/backend/internal/common/validation"
	"github.com/melodytrail/backend/internal/trail/catalog"
	"github.com/melodytrail/backend/internal/trail/models"
	"github.com/melodytrail/backend/internal/trail/repository"
	"github.com/melodytrail/backend/internal/trail/xp"
	"github.com/melodytrail/backend/pkg/logger"
)

// Star thresholds, in score percentage. Tuned empirically; change with
// care since stored stars never regress.
const (
	ThreeStarThreshold = 95
	TwoStarThreshold   = 80
	OneStarThreshold   = 60
)

// Rate-limit policy, overridable at boot via ConfigureRateLimit.
var (
	rateLimitMaxTokens = 10
	rateLimitWindow    = 300 * time.Second
)

// ConfigureRateLimit overrides the submission throttle policy.
func ConfigureRateLimit(maxTokens, windowSeconds int) {
	if maxTokens > 0 {
		rateLimitMaxTokens = maxTokens
	}
	if windowSeconds > 0 {
		rateLimitWindow = time.Duration(windowSeconds) * time.Second
	}
}

// StarsForScore derives the 0-3 star rating from a score percentage.
func StarsForScore(percentage float64) int {
	switch {
	case percentage >= ThreeStarThreshold:
		return 3
	case percentage >= TwoStarThreshold:
		return 2
	case percentage >= OneStarThreshold:
		return 1
	default:
		return 0
	}
}

// RecordCompletion processes an exercise outcome: derives stars, checks
// the rate limit, upserts the progress record with ratchet semantics and
// credits XP. A rate-limited submission performs no write and returns a
// result carrying the reset time.
//
// If the rate limiter itself fails, the submission is allowed: blocking
// all learning progress because the anti-farming gate is down is worse
// than occasionally missing a throttle.
func RecordCompletion(studentID uint, req models.CompletionRequest) (*models.CompletionResult, error) {
	if studentID == 0 {
		return nil, errors.BadRequest("invalid student ID")
	}

	node, ok := catalog.NodeByID(req.NodeID)
	if !ok {
		return nil, errors.NotFound("trail node")
	}

	if err := validation.ValidateFloatRange(req.ScorePercentage, 0, 100); err != nil {
		return nil, errors.BadRequest("score percentage must be between 0 and 100")
	}

	// Unknown students surface before any write.
	if _, err := repository.GetStudentByID(studentID); err != nil {
		return nil, err
	}

	allowed, resetTime, err := repository.ConsumeToken(studentID, req.NodeID, rateLimitMaxTokens, rateLimitWindow)
	if err != nil {
		logger.Warn("rate limiter unavailable, allowing submission",
			zap.Uint("student_id", studentID),
			zap.String("node_id", req.NodeID),
			zap.Error(err),
		)
		allowed = true
	}
	if !allowed {
		return &models.CompletionResult{
			RateLimited: true,
			ResetTime:   &resetTime,
		}, nil
	}

	stars := StarsForScore(req.ScorePercentage)

	// First-time means the node was not completed (stars > 0) before.
	firstTime := true
	if existing, err := repository.GetNodeProgress(studentID, req.NodeID); err == nil && existing.Stars > 0 {
		firstTime = false
	}

	score := int(math.Round(req.ScorePercentage))
	record, err := repository.UpsertCompletion(studentID, req.NodeID, stars, score, time.Now())
	if err != nil {
		return nil, err
	}

	result := &models.CompletionResult{
		Record:      record,
		StarsEarned: stars,
	}

	// XP is only credited for a completed attempt.
	if stars > 0 {
		perfect := req.ScorePercentage == 100
		totalXP := xp.NodeXP(stars, node.XPReward, xp.Bonuses{
			FirstTime: firstTime,
			Perfect:   perfect,
			BossWin:   node.IsBoss,
		})
		baseXP := node.XPReward * stars

		award, err := repository.AwardXP(studentID, totalXP)
		if err != nil {
			return nil, err
		}

		result.XP = &models.XPBreakdown{
			BaseXP:  baseXP,
			BonusXP: totalXP - baseXP,
			TotalXP: totalXP,
			Perfect: perfect,
			First:   firstTime,
		}
		result.NewTotalXP = award.NewTotalXP
		result.NewLevel = award.NewLevel
		result.LeveledUp = award.LeveledUp
	}

	return result, nil
}

// GetStudentProgress returns all of a student's progress records.
func GetStudentProgress(studentID uint) ([]*models.ProgressRecord, error) {
	if studentID == 0 {
		return nil, errors.BadRequest("invalid student ID")
	}
	return repository.GetProgressByStudent(studentID)
}

// GetTrailStats summarizes the student's journey.
func GetTrailStats(studentID uint) (*models.TrailStats, error) {
	records, err := GetStudentProgress(studentID)
	if err != nil {
		return nil, err
	}

	stats := &models.TrailStats{TotalNodes: len(records)}
	for _, record := range records {
		switch record.Stars {
		case 1:
			stats.NodesWithOneStar++
		case 2:
			stats.NodesWithTwoStars++
		case 3:
			stats.NodesWithThreeStars++
		}
		stats.TotalStars += record.Stars
		stats.TotalExercisesCompleted += record.ExercisesCompleted

		if stats.LastPracticed == nil || record.LastPracticed.After(*stats.LastPracticed) {
			practiced := record.LastPracticed
			stats.LastPracticed = &practiced
		}
	}
	return stats, nil
}

// ResetStudentProgress deletes all progress for a student.
func ResetStudentProgress(studentID uint) error {
	if studentID == 0 {
		return errors.BadRequest("invalid student ID")
	}
	return repository.DeleteProgressByStudent(studentID)
}

// GetRateLimitStatus reports remaining submissions for a node without
// consuming a token.
func GetRateLimitStatus(studentID uint, nodeID string) (*models.RateLimitStatus, error) {
	if studentID == 0 {
		return nil, errors.BadRequest("invalid student ID")
	}
	if _, ok := catalog.NodeByID(nodeID); !ok {
		return nil, errors.NotFound("trail node")
	}
	return repository.GetRateLimitStatus(studentID, nodeID, rateLimitMaxTokens, rateLimitWindow)
}
