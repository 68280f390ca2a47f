package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"contract-flow/internal/database"
	"contract-flow/internal/middleware"
	"contract-flow/internal/workflow"
)

// GetWorkflow returns the contract's steps, the step currently requiring
// action, and the actions the caller may invoke.
func (h *ContractHandler) GetWorkflow(c *gin.Context) {
	actor, _ := middleware.CurrentActor(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid contract id"})
		return
	}

	store := database.NewStore(database.DB)
	contract, err := store.GetContract(c.Request.Context(), id)
	if err != nil {
		workflowError(c, err)
		return
	}
	if !workflow.PermissionsFor(actor.Role).CanViewAll && contract.CreatedBy != actor.UserID {
		c.JSON(http.StatusForbidden, gin.H{"error": "access denied"})
		return
	}

	steps, err := store.ListSteps(c.Request.Context(), id)
	if err != nil {
		workflowError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":       contract.Status,
		"steps":        steps,
		"current_step": workflow.CurrentStep(steps),
		"actions":      h.engine.AvailableActions(actor, contract, steps),
	})
}

type workflowActionRequest struct {
	Action workflow.Action `json:"action"`
	Notes  string          `json:"notes"`
}

// ExecuteAction runs a workflow action and returns the updated step list.
func (h *ContractHandler) ExecuteAction(c *gin.Context) {
	actor, _ := middleware.CurrentActor(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid contract id"})
		return
	}

	var req workflowActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.engine.Execute(c.Request.Context(), actor, id, req.Action, req.Notes); err != nil {
		workflowError(c, err)
		return
	}

	store := database.NewStore(database.DB)
	contract, err := store.GetContract(c.Request.Context(), id)
	if err != nil {
		workflowError(c, err)
		return
	}
	steps, err := store.ListSteps(c.Request.Context(), id)
	if err != nil {
		workflowError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  contract.Status,
		"steps":   steps,
		"actions": h.engine.AvailableActions(actor, contract, steps),
	})
}
