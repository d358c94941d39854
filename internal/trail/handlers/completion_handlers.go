package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/melodytrail/backend/internal/common/errors"
	"github.com/melodytrail/backend/internal/common/middleware"
	"github.com/melodytrail/backend/internal/trail/models"
	"github.com/melodytrail/backend/internal/trail/services"
)

// SubmitCompletion records an exercise outcome for the current student.
// Rate-limited submissions get a 429 carrying the reset time for the
// "try again in N minutes" UI message.
func SubmitCompletion(c *gin.Context) {
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

	var req models.CompletionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.JSONErrorResponse(c, errors.BadRequest("invalid completion payload: "+err.Error()))
		return
	}

	result, err := services.RecordCompletion(uint(userID), req)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	if result.RateLimited {
		c.JSON(429, result)
		return
	}

	c.JSON(201, result)
}
