package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/melodytrail/backend/internal/common/errors"
	"github.com/melodytrail/backend/internal/common/middleware"
	"github.com/melodytrail/backend/internal/trail/services"
)

// GetProgress returns all of the current student's progress records.
func GetProgress(c *gin.Context) {
	userIDStr, exists := c.Get("user_id")
	if !exists {
		middleware.JSONErrorResponse(c, errors.Unauthorized("missing authentication"))
		return
	}

	userID, err := strconv.ParseUint(userIDStr.(string), 10, 32)
	if err != nil {
		middleware.JSONErrorResponse(c, errors.BadRequest("invalid student ID"))
		return
	}

	records, err := services.GetStudentProgress(uint(userID))
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(200, gin.H{
		"progress": records,
		"total":    len(records),
	})
}

// GetTrailStats returns the student's aggregate trail statistics.
func GetTrailStats(c *gin.Context) {
	userIDStr, exists := c.Get("user_id")
	if !exists {
		middleware.JSONErrorResponse(c, errors.Unauthorized("missing authentication"))
		return
	}

	userID, err := strconv.ParseUint(userIDStr.(string), 10, 32)
	if err != nil {
		middleware.JSONErrorResponse(c, errors.BadRequest("invalid student ID"))
		return
	}

	stats, err := services.GetTrailStats(uint(userID))
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(200, stats)
}

// ResetProgress deletes all of the student's progress records.
func ResetProgress(c *gin.Context) {
	userIDStr, exists := c.Get("user_id")
	if !exists {
		middleware.JSONErrorResponse(c, errors.Unauthorized("missing authentication"))
		return
	}

	userID, err := strconv.ParseUint(userIDStr.(string), 10, 32)
	if err != nil {
		middleware.JSONErrorResponse(c, errors.BadRequest("invalid student ID"))
		return
	}

	if err := services.ResetStudentProgress(uint(userID)); err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(200, gin.H{"message": "progress reset successfully"})
}

// GetLevel returns the student's XP account and level progress.
func GetLevel(c *gin.Context) {
	userIDStr, exists := c.Get("user_id")
	if !exists {
		middleware.JSONErrorResponse(c, errors.Unauthorized("missing authentication"))
		return
	}

	userID, err := strconv.ParseUint(userIDStr.(string), 10, 32)
	if err != nil {
		middleware.JSONErrorResponse(c, errors.BadRequest("invalid student ID"))
		return
	}

	level, err := services.GetStudentLevel(uint(userID))
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(200, level)
}

// GetLeaderboard returns the top students by XP. Public.
func GetLeaderboard(c *gin.Context) {
	limit := c.DefaultQuery("limit", "10")

	limitNum, err := strconv.Atoi(limit)
	if err != nil || limitNum < 1 || limitNum > 100 {
		limitNum = 10
	}

	leaderboard, err := services.GetXPLeaderboard(limitNum)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(200, gin.H{
		"leaderboard": leaderboard,
		"total":       len(leaderboard),
	})
}
