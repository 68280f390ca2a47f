package database

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"contract-flow/internal/models"
)

// ContractFilter narrows a contract listing. CreatedBy is set by the
// handler for roles without view-all, scoping the query to own rows.
type ContractFilter struct {
	Status       string
	ContractType string
	DepartmentID *uuid.UUID
	CreatedBy    *uuid.UUID
}

func ListContracts(filter ContractFilter) ([]models.Contract, error) {
	q := DB.Preload("Department").Preload("Creator").Order("created_at desc")

	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.ContractType != "" {
		q = q.Where("contract_type = ?", filter.ContractType)
	}
	if filter.DepartmentID != nil {
		q = q.Where("department_id = ?", *filter.DepartmentID)
	}
	if filter.CreatedBy != nil {
		q = q.Where("created_by = ?", *filter.CreatedBy)
	}

	var contracts []models.Contract
	err := q.Find(&contracts).Error
	return contracts, err
}

// DashboardStats aggregates the caller-visible contracts.
type DashboardStats struct {
	Total        int64                           `json:"total"`
	ByStatus     map[models.ContractStatus]int64 `json:"by_status"`
	ExpiringSoon int64                           `json:"expiring_soon"`
	TotalValue   float64                         `json:"total_value"`
}

func GetDashboardStats(createdBy *uuid.UUID) (*DashboardStats, error) {
	stats := &DashboardStats{ByStatus: map[models.ContractStatus]int64{}}

	// Session makes the scoped query reusable across the aggregates below.
	base := DB.Model(&models.Contract{})
	if createdBy != nil {
		base = base.Where("created_by = ?", *createdBy)
	}
	base = base.Session(&gorm.Session{})

	if err := base.Count(&stats.Total).Error; err != nil {
		return nil, err
	}

	type statusRow struct {
		Status models.ContractStatus
		Count  int64
	}
	var rows []statusRow
	if err := base.
		Select("status, count(*) as count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, r := range rows {
		stats.ByStatus[r.Status] = r.Count
	}

	now := time.Now()
	cutoff := now.AddDate(0, 0, 30)
	if err := base.
		Where("end_date IS NOT NULL AND end_date >= ? AND end_date <= ?", now, cutoff).
		Count(&stats.ExpiringSoon).Error; err != nil {
		return nil, err
	}

	if err := base.
		Select("coalesce(sum(value), 0)").
		Scan(&stats.TotalValue).Error; err != nil {
		return nil, err
	}

	return stats, nil
}
