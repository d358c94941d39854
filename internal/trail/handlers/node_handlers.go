package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/melodytrail/backend/internal/common/errors"
	"github.com/melodytrail/backend/internal/common/middleware"
	"github.com/melodytrail/backend/internal/trail/catalog"
	"github.com/melodytrail/backend/internal/trail/services"
)

// GetTrailNodes returns the full trail annotated with the current
// student's unlock state and progress.
func GetTrailNodes(c *gin.Context) {
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

	trail, err := services.GetTrailMap(uint(userID))
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(200, gin.H{
		"nodes": trail,
		"total": len(trail),
	})
}

// GetNodeByID returns one catalog node. Public: the catalog carries no
// student state.
func GetNodeByID(c *gin.Context) {
	node, ok := catalog.NodeByID(c.Param("id"))
	if !ok {
		middleware.JSONErrorResponse(c, errors.NotFound("trail node"))
		return
	}

	c.JSON(200, node)
}

// GetRecommendation returns the next node the student should play.
func GetRecommendation(c *gin.Context) {
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

	node, err := services.GetNextRecommendedNode(uint(userID))
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(200, node)
}

// GetNodeRateLimit reports remaining submissions for a node without
// consuming a token.
func GetNodeRateLimit(c *gin.Context) {
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

	status, err := services.GetRateLimitStatus(uint(userID), c.Param("id"))
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(200, status)
}
