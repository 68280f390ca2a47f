package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"contract-flow/internal/workflow"
	"contract-flow/pkg/logger"
)

// workflowError maps the engine's error taxonomy onto HTTP responses.
// Forbidden and reason-required are caller mistakes; invalid transitions
// and inactive steps mean the client acted on stale state and should
// refetch; anything else is a persistence failure.
func workflowError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, workflow.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "you are not allowed to perform this action"})
	case errors.Is(err, workflow.ErrReasonRequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": "a reason is required for this action"})
	case errors.Is(err, workflow.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": "action is not valid for the contract's current status"})
	case errors.Is(err, workflow.ErrStepNotActive):
		c.JSON(http.StatusConflict, gin.H{"error": "no workflow step is active"})
	case errors.Is(err, workflow.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	default:
		logger.Error(c.Request.Context(), "workflow operation failed", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
