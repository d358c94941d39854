package models

import (
	"time"

	"github.com/melodytrail/backend/internal/trail/catalog"
	"github.com/melodytrail/backend/internal/trail/xp"
)

// Student holds the XP account for a learner. Authentication lives
// upstream; this row only carries what the trail engine needs.
type Student struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"unique;not null" json:"username"`
	TotalXP      int       `gorm:"default:0" json:"total_xp"`
	CurrentLevel int       `gorm:"default:1" json:"current_level"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ProgressRecord is the per (student, node) best-result state. Stars and
// BestScore only ever ratchet upward; ExercisesCompleted counts every
// accepted completion.
type ProgressRecord struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	StudentID          uint      `gorm:"not null;uniqueIndex:idx_progress_student_node" json:"student_id"`
	NodeID             string    `gorm:"not null;uniqueIndex:idx_progress_student_node" json:"node_id"`
	Stars              int       `gorm:"not null;default:0;check:stars >= 0 AND stars <= 3" json:"stars"`
	BestScore          int       `gorm:"not null;default:0" json:"best_score"`
	ExercisesCompleted int       `gorm:"not null;default:0" json:"exercises_completed"`
	LastPracticed      time.Time `json:"last_practiced"`
}

// RateLimitBucket is the per (student, node) token bucket gating
// progress writes. The window refills wholesale, not incrementally.
type RateLimitBucket struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	StudentID  uint      `gorm:"not null;uniqueIndex:idx_rate_limit_student_node" json:"student_id"`
	NodeID     string    `gorm:"not null;uniqueIndex:idx_rate_limit_student_node" json:"node_id"`
	Tokens     int       `gorm:"not null" json:"tokens"`
	LastRefill time.Time `gorm:"not null" json:"last_refill"`
}

// CompletionRequest is the exercise outcome posted by the exercise
// player when a student finishes a node.
type CompletionRequest struct {
	NodeID          string  `json:"node_id" binding:"required"`
	ScorePercentage float64 `json:"score_percentage" binding:"min=0,max=100"`
}

// XPBreakdown itemizes the XP awarded for one completion.
type XPBreakdown struct {
	BaseXP  int  `json:"base_xp"`
	BonusXP int  `json:"bonus_xp"`
	TotalXP int  `json:"total_xp"`
	Perfect bool `json:"perfect"`
	First   bool `json:"first_time"`
}

// CompletionResult is the outcome of a completion submission. When
// RateLimited is set no write occurred and ResetTime tells the student
// when they can try again.
type CompletionResult struct {
	RateLimited bool             `json:"rate_limited"`
	ResetTime   *time.Time       `json:"reset_time,omitempty"`
	Record      *ProgressRecord  `json:"record,omitempty"`
	StarsEarned int              `json:"stars_earned"`
	XP          *XPBreakdown     `json:"xp,omitempty"`
	NewTotalXP  int              `json:"new_total_xp,omitempty"`
	NewLevel    int              `json:"new_level,omitempty"`
	LeveledUp   bool             `json:"leveled_up,omitempty"`
}

// NodeWithProgress pairs a catalog node with the student's state on it,
// for trail map rendering.
type NodeWithProgress struct {
	catalog.Node
	Unlocked bool            `json:"unlocked"`
	Progress *ProgressRecord `json:"progress,omitempty"`
}

// TrailStats summarizes a student's journey across the trail.
type TrailStats struct {
	TotalNodes               int        `json:"total_nodes"`
	NodesWithOneStar         int        `json:"nodes_with_one_star"`
	NodesWithTwoStars        int        `json:"nodes_with_two_stars"`
	NodesWithThreeStars      int        `json:"nodes_with_three_stars"`
	TotalStars               int        `json:"total_stars"`
	TotalExercisesCompleted  int        `json:"total_exercises_completed"`
	LastPracticed            *time.Time `json:"last_practiced,omitempty"`
}

// RateLimitStatus is a non-consuming view of a student's bucket.
type RateLimitStatus struct {
	Tokens    int       `json:"tokens"`
	ResetTime time.Time `json:"reset_time"`
}

// LevelResponse is the student's XP account plus derived level progress.
type LevelResponse struct {
	TotalXP  int         `json:"total_xp"`
	Level    xp.Level    `json:"level"`
	Progress xp.Progress `json:"progress"`
}

// LeaderboardEntry is one row of the XP leaderboard.
type LeaderboardEntry struct {
	Rank     int      `json:"rank"`
	UserID   uint     `json:"user_id"`
	Username string   `json:"username"`
	TotalXP  int      `json:"total_xp"`
	Level    xp.Level `json:"level"`
}
