package models

import (
	"time"

	"github.com/google/uuid"
)

// Activity is an append-only audit record. Rows are created, never
// mutated or deleted individually; they cascade with their contract.
type Activity struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ContractID uuid.UUID `gorm:"type:uuid;not null;index" json:"contract_id"`

	ActivityType  string `gorm:"size:50;not null" json:"activity_type"` // "created", "submitted", "approved", ...
	Description   string `gorm:"type:text" json:"description"`
	PreviousValue string `gorm:"size:255" json:"previous_value,omitempty"`
	NewValue      string `gorm:"size:255" json:"new_value,omitempty"`

	PerformedBy uuid.UUID `gorm:"type:uuid;not null" json:"performed_by"`
	Performer   *User     `gorm:"foreignKey:PerformedBy" json:"performer,omitempty"`
	PerformedAt time.Time `gorm:"not null;index" json:"performed_at"`
}
