package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"contract-flow/internal/database"
	"contract-flow/internal/middleware"
	"contract-flow/internal/workflow"
)

// DashboardStats returns aggregate counts over the caller-visible
// contracts.
func DashboardStats(c *gin.Context) {
	actor, _ := middleware.CurrentActor(c)

	var stats *database.DashboardStats
	var err error
	if workflow.PermissionsFor(actor.Role).CanViewAll {
		stats, err = database.GetDashboardStats(nil)
	} else {
		stats, err = database.GetDashboardStats(&actor.UserID)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
