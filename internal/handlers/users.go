package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm/clause"

	"contract-flow/internal/database"
	"contract-flow/internal/models"
)

// User administration. Routes are gated to admin.

type userWithRole struct {
	models.User
	Role models.Role `json:"role"`
}

func ListUsers(c *gin.Context) {
	var users []models.User
	if err := database.DB.Preload("Department").Order("email asc").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	var roles []models.UserRole
	if err := database.DB.Find(&roles).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	roleByUser := make(map[uuid.UUID]models.Role, len(roles))
	for _, r := range roles {
		roleByUser[r.UserID] = r.Role
	}

	out := make([]userWithRole, 0, len(users))
	for _, u := range users {
		role, ok := roleByUser[u.ID]
		if !ok {
			role = models.RoleUser
		}
		out = append(out, userWithRole{User: u, Role: role})
	}
	c.JSON(http.StatusOK, gin.H{"users": out})
}

type setRoleRequest struct {
	Role models.Role `json:"role"`
}

// SetUserRole assigns a role, creating the row if the user has never had
// one. Takes effect on the target user's next request.
func SetUserRole(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	var req setRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if !req.Role.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown role"})
		return
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	err = database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"role", "updated_at"}),
	}).Create(&models.UserRole{UserID: userID, Role: req.Role}).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user_id": userID, "role": req.Role})
}
