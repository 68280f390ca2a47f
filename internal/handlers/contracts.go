package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"contract-flow/internal/database"
	"contract-flow/internal/middleware"
	"contract-flow/internal/models"
	"contract-flow/internal/workflow"
)

type ContractHandler struct {
	engine *workflow.Engine
}

func NewContractHandler(engine *workflow.Engine) *ContractHandler {
	return &ContractHandler{engine: engine}
}

// List returns the contracts visible to the caller, newest first. Roles
// without view-all see only their own.
func (h *ContractHandler) List(c *gin.Context) {
	actor, _ := middleware.CurrentActor(c)

	filter := database.ContractFilter{
		Status:       c.Query("status"),
		ContractType: c.Query("type"),
	}
	if deptStr := c.Query("department_id"); deptStr != "" {
		if deptID, err := uuid.Parse(deptStr); err == nil {
			filter.DepartmentID = &deptID
		}
	}
	if !workflow.PermissionsFor(actor.Role).CanViewAll {
		filter.CreatedBy = &actor.UserID
	}

	contracts, err := database.ListContracts(filter)
	if err != nil {
		workflowError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"contracts": contracts})
}

type contractRequest struct {
	Title        string     `json:"title"`
	ContractType string     `json:"contract_type"`
	Priority     string     `json:"priority"`
	Description  string     `json:"description"`
	DepartmentID *uuid.UUID `json:"department_id"`
	UnitID       *uuid.UUID `json:"unit_id"`
	AssignedTo   *uuid.UUID `json:"assigned_to"`
	StartDate    *time.Time `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
	Value        *float64   `json:"value"`
}

// Create inserts the contract in draft together with its workflow steps.
func (h *ContractHandler) Create(c *gin.Context) {
	actor, _ := middleware.CurrentActor(c)

	var req contractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	req.Title = strings.TrimSpace(req.Title)
	if len(req.Title) < 3 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title must be at least 3 characters"})
		return
	}
	if req.ContractType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "contract_type is required"})
		return
	}

	contract := models.Contract{
		Title:        req.Title,
		ContractType: req.ContractType,
		Priority:     models.Priority(req.Priority),
		Description:  req.Description,
		DepartmentID: req.DepartmentID,
		UnitID:       req.UnitID,
		AssignedTo:   req.AssignedTo,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Value:        req.Value,
	}

	if err := h.engine.Create(c.Request.Context(), actor, &contract); err != nil {
		workflowError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"contract": contract})
}

// Get returns one contract with its steps and audit trail.
func (h *ContractHandler) Get(c *gin.Context) {
	actor, _ := middleware.CurrentActor(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid contract id"})
		return
	}

	var contract models.Contract
	err = database.DB.
		Preload("Department").
		Preload("Creator").
		First(&contract, "id = ?", id).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	if !workflow.PermissionsFor(actor.Role).CanViewAll && contract.CreatedBy != actor.UserID {
		c.JSON(http.StatusForbidden, gin.H{"error": "access denied"})
		return
	}

	steps, err := database.NewStore(database.DB).ListSteps(c.Request.Context(), id)
	if err != nil {
		workflowError(c, err)
		return
	}
	activities, err := database.ListContractActivities(id)
	if err != nil {
		workflowError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"contract":   contract,
		"steps":      steps,
		"activities": activities,
		"actions":    h.engine.AvailableActions(actor, &contract, steps),
	})
}

// Update replaces the contract's editable fields wholesale (PUT
// semantics): optional fields omitted from the request clear the stored
// values. Status is deliberately not accepted here: status only moves
// through workflow actions.
func (h *ContractHandler) Update(c *gin.Context) {
	actor, _ := middleware.CurrentActor(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid contract id"})
		return
	}

	var contract models.Contract
	if err := database.DB.First(&contract, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	if !h.engine.CanEdit(actor, &contract) {
		c.JSON(http.StatusForbidden, gin.H{"error": "you may only edit your own contracts"})
		return
	}

	var req contractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	req.Title = strings.TrimSpace(req.Title)
	if len(req.Title) < 3 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title must be at least 3 characters"})
		return
	}
	if req.ContractType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "contract_type is required"})
		return
	}

	updates := map[string]any{
		"title":         req.Title,
		"contract_type": req.ContractType,
		"description":   req.Description,
		"department_id": req.DepartmentID,
		"unit_id":       req.UnitID,
		"assigned_to":   req.AssignedTo,
		"start_date":    req.StartDate,
		"end_date":      req.EndDate,
		"value":         req.Value,
	}
	if p := models.Priority(req.Priority); p == models.PriorityLow || p == models.PriorityMedium || p == models.PriorityHigh {
		updates["priority"] = p
	}

	if err := database.DB.Model(&contract).Updates(updates).Error; err != nil {
		workflowError(c, err)
		return
	}
	if err := database.DB.First(&contract, "id = ?", id).Error; err != nil {
		workflowError(c, err)
		return
	}

	store := database.NewStore(database.DB)
	_ = store.AppendActivity(c.Request.Context(), models.Activity{
		ContractID:   contract.ID,
		ActivityType: "updated",
		Description:  "Contract details updated",
		PerformedBy:  actor.UserID,
		PerformedAt:  time.Now().UTC(),
	})

	c.JSON(http.StatusOK, gin.H{"contract": contract})
}

// Delete removes a contract; steps and activities cascade.
func (h *ContractHandler) Delete(c *gin.Context) {
	actor, _ := middleware.CurrentActor(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid contract id"})
		return
	}

	if err := h.engine.Delete(c.Request.Context(), actor, id); err != nil {
		workflowError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
