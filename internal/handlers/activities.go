package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"contract-flow/internal/database"
	"contract-flow/internal/middleware"
	"contract-flow/internal/models"
	"contract-flow/internal/workflow"
)

// ListContractActivities returns one contract's audit trail.
func ListContractActivities(c *gin.Context) {
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
	if !workflow.PermissionsFor(actor.Role).CanViewAll && contract.CreatedBy != actor.UserID {
		c.JSON(http.StatusForbidden, gin.H{"error": "access denied"})
		return
	}

	activities, err := database.ListContractActivities(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"activities": activities})
}

// RecentActivities is the admin-wide audit feed. Route is gated to admin.
func RecentActivities(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "200"))

	activities, err := database.RecentActivities(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"activities": activities})
}
