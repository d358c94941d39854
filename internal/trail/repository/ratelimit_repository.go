package repository

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/melodytrail/backend/internal/common/database"
	"github.com/melodytrail/backend/internal/common/errors"
	"github.com/melodytrail/backend/internal/trail/models"
)

// ConsumeToken atomically checks and decrements the (student, node)
// token bucket. The whole check-and-decrement runs in one transaction
// with the row locked, so two simultaneous submissions cannot both spend
// the last token. The window refills wholesale once it has elapsed.
//
// Returns allowed=false with the reset time when the bucket is empty.
func ConsumeToken(studentID uint, nodeID string, maxTokens int, window time.Duration) (bool, time.Time, error) {
	var allowed bool
	var resetTime time.Time

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		now := time.Now()

		// SQLite serializes writers per connection and rejects FOR
		// UPDATE; the row lock is only needed on PostgreSQL.
		query := tx
		if tx.Dialector.Name() == "postgres" {
			query = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		var bucket models.RateLimitBucket
		result := query.
			Where("student_id = ? AND node_id = ?", studentID, nodeID).
			First(&bucket)

		if result.Error == gorm.ErrRecordNotFound {
			// First submission for this pair: start a full bucket and
			// spend one token.
			bucket = models.RateLimitBucket{
				StudentID:  studentID,
				NodeID:     nodeID,
				Tokens:     maxTokens - 1,
				LastRefill: now,
			}
			if err := tx.Create(&bucket).Error; err != nil {
				return err
			}
			allowed = true
			return nil
		}
		if result.Error != nil {
			return result.Error
		}

		if now.Sub(bucket.LastRefill) >= window {
			// Window elapsed: whole-window refill, then spend one.
			bucket.Tokens = maxTokens - 1
			bucket.LastRefill = now
			allowed = true
		} else if bucket.Tokens > 0 {
			bucket.Tokens--
			allowed = true
		} else {
			allowed = false
			resetTime = bucket.LastRefill.Add(window)
			return nil
		}

		return tx.Model(&models.RateLimitBucket{}).
			Where("id = ?", bucket.ID).
			Updates(map[string]interface{}{
				"tokens":      bucket.Tokens,
				"last_refill": bucket.LastRefill,
			}).Error
	})

	if err != nil {
		return false, time.Time{}, errors.Internal("rate limit check failed", err.Error())
	}
	return allowed, resetTime, nil
}

// GetRateLimitStatus reports the remaining tokens for a pair without
// consuming one. A missing or expired bucket counts as full.
func GetRateLimitStatus(studentID uint, nodeID string, maxTokens int, window time.Duration) (*models.RateLimitStatus, error) {
	now := time.Now()

	var bucket models.RateLimitBucket
	result := database.DB.
		Where("student_id = ? AND node_id = ?", studentID, nodeID).
		First(&bucket)

	if result.Error == gorm.ErrRecordNotFound {
		return &models.RateLimitStatus{Tokens: maxTokens, ResetTime: now}, nil
	}
	if result.Error != nil {
		return nil, errors.Internal("failed to fetch rate limit status", result.Error.Error())
	}

	resetTime := bucket.LastRefill.Add(window)
	if !resetTime.After(now) {
		return &models.RateLimitStatus{Tokens: maxTokens, ResetTime: now}, nil
	}

	return &models.RateLimitStatus{Tokens: bucket.Tokens, ResetTime: resetTime}, nil
}
