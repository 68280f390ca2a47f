package database

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"contract-flow/internal/models"
	"contract-flow/internal/workflow"
)

// Store is the gorm-backed implementation of the workflow engine's
// persistence collaborators.
type Store struct {
	db *gorm.DB
}

var _ workflow.Store = (*Store)(nil)

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Tx runs fn inside a database transaction. The contract row lock taken
// by GetContract serializes concurrent workflow actions on one contract.
func (s *Store) Tx(ctx context.Context, fn func(tx workflow.Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx})
	})
}

func (s *Store) GetContract(ctx context.Context, id uuid.UUID) (*models.Contract, error) {
	var c models.Contract
	err := s.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&c, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, workflow.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Store) CreateContract(ctx context.Context, c *models.Contract) error {
	return s.db.WithContext(ctx).Create(c).Error
}

func (s *Store) SetContractStatus(ctx context.Context, id uuid.UUID, status models.ContractStatus) error {
	res := s.db.WithContext(ctx).
		Model(&models.Contract{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return workflow.ErrNotFound
	}
	return nil
}

func (s *Store) DeleteContract(ctx context.Context, id uuid.UUID) error {
	res := s.db.WithContext(ctx).Delete(&models.Contract{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return workflow.ErrNotFound
	}
	return nil
}

func (s *Store) ListSteps(ctx context.Context, contractID uuid.UUID) ([]models.WorkflowStep, error) {
	var steps []models.WorkflowStep
	err := s.db.WithContext(ctx).
		Where("contract_id = ?", contractID).
		Order("step_order asc").
		Find(&steps).Error
	return steps, err
}

func (s *Store) UpdateStep(ctx context.Context, contractID uuid.UUID, stepOrder int, upd workflow.StepUpdate) error {
	res := s.db.WithContext(ctx).
		Model(&models.WorkflowStep{}).
		Where("contract_id = ? AND step_order = ?", contractID, stepOrder).
		Updates(map[string]any{
			"status":       upd.Status,
			"assigned_to":  upd.AssignedTo,
			"notes":        upd.Notes,
			"completed_at": upd.CompletedAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return workflow.ErrNotFound
	}
	return nil
}

func (s *Store) CreateSteps(ctx context.Context, steps []models.WorkflowStep) error {
	if len(steps) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Create(&steps).Error
}

func (s *Store) AppendActivity(ctx context.Context, a models.Activity) error {
	return s.db.WithContext(ctx).Create(&a).Error
}

func (s *Store) GetRole(ctx context.Context, userID uuid.UUID) (models.Role, error) {
	var ur models.UserRole
	err := s.db.WithContext(ctx).First(&ur, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", workflow.ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return ur.Role, nil
}

func (s *Store) CreateRole(ctx context.Context, userID uuid.UUID, role models.Role) error {
	return s.db.WithContext(ctx).Create(&models.UserRole{UserID: userID, Role: role}).Error
}
