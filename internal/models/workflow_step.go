package models

import (
	"time"

	"github.com/google/uuid"
)

type StepStatus string

const (
	StepPending    StepStatus = "pending"
	StepInProgress StepStatus = "in_progress"
	StepCompleted  StepStatus = "completed"
	StepRejected   StepStatus = "rejected"
	StepReturned   StepStatus = "returned"
)

// WorkflowStep is one stage of the approval pipeline attached to a contract.
// StepOrder is 1..N and immutable after creation. For a given contract at
// most one step is in_progress; everything before it is completed,
// everything after it is pending.
type WorkflowStep struct {
	ID         uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ContractID uuid.UUID  `gorm:"type:uuid;not null;index:idx_contract_step,unique" json:"contract_id"`
	StepOrder  int        `gorm:"not null;index:idx_contract_step,unique" json:"step_order"`
	StepName   string     `gorm:"size:100;not null" json:"step_name"`
	Status     StepStatus `gorm:"type:varchar(20);not null" json:"status"`

	AssignedTo  *uuid.UUID `gorm:"type:uuid" json:"assigned_to"`
	CompletedAt *time.Time `json:"completed_at"`
	Notes       string     `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
