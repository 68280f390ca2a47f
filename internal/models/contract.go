package models

import (
	"time"

	"github.com/google/uuid"
)

type ContractStatus string
type Priority string

const (
	StatusDraft           ContractStatus = "draft"
	StatusUnderReview     ContractStatus = "under_review"
	StatusInReview        ContractStatus = "in_review"
	StatusPendingApproval ContractStatus = "pending_approval"
	StatusApproved        ContractStatus = "approved"
	StatusSigned          ContractStatus = "signed"
	StatusRejected        ContractStatus = "rejected"

	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Terminal reports whether no further workflow transitions apply, short of
// an explicit resubmission.
func (s ContractStatus) Terminal() bool {
	return s == StatusApproved || s == StatusSigned || s == StatusRejected
}

type Contract struct {
	ID           uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title        string         `gorm:"size:255;not null" json:"title"`
	ContractType string         `gorm:"size:100;not null" json:"contract_type"`
	Status       ContractStatus `gorm:"type:varchar(30);not null" json:"status"`
	Priority     Priority       `gorm:"type:varchar(20);not null" json:"priority"`
	Description  string         `gorm:"type:text" json:"description"`

	CreatedBy  uuid.UUID  `gorm:"type:uuid;not null;index" json:"created_by"`
	Creator    *User      `gorm:"foreignKey:CreatedBy" json:"creator,omitempty"`
	AssignedTo *uuid.UUID `gorm:"type:uuid" json:"assigned_to"`

	DepartmentID *uuid.UUID  `gorm:"type:uuid;index" json:"department_id"`
	Department   *Department `json:"department,omitempty"`
	UnitID       *uuid.UUID  `gorm:"type:uuid" json:"unit_id"`

	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
	Value     *float64   `json:"value"`

	Steps      []WorkflowStep `gorm:"constraint:OnDelete:CASCADE" json:"steps,omitempty"`
	Activities []Activity     `gorm:"constraint:OnDelete:CASCADE" json:"activities,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
