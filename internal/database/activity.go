package database

import (
	"github.com/google/uuid"

	"contract-flow/internal/models"
)

// ListContractActivities returns a contract's audit trail, oldest first.
func ListContractActivities(contractID uuid.UUID) ([]models.Activity, error) {
	var activities []models.Activity
	err := DB.Preload("Performer").
		Where("contract_id = ?", contractID).
		Order("performed_at asc").
		Find(&activities).Error
	return activities, err
}

// RecentActivities returns the newest audit records across all contracts,
// for the admin activity feed.
func RecentActivities(limit int) ([]models.Activity, error) {
	if limit <= 0 || limit > 500 {
		limit = 200
	}
	var activities []models.Activity
	err := DB.Preload("Performer").
		Order("performed_at desc").
		Limit(limit).
		Find(&activities).Error
	return activities, err
}
