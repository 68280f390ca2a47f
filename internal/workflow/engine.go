package workflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"contract-flow/internal/models"
)

// Actor is the authenticated caller: an opaque user id plus the role
// resolved for this request. The engine never reads ambient session state.
type Actor struct {
	UserID uuid.UUID
	Role   models.Role
}

// Action is a workflow action requested by the UI.
type Action string

const (
	ActionSubmit  Action = "submit"
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
	ActionReturn  Action = "return"
)

// StepUpdate overwrites the mutable fields of a single workflow step.
// Nil pointers write NULL.
type StepUpdate struct {
	Status      models.StepStatus
	AssignedTo  *uuid.UUID
	Notes       string
	CompletedAt *time.Time
}

// ContractStore is the contract persistence collaborator.
type ContractStore interface {
	GetContract(ctx context.Context, id uuid.UUID) (*models.Contract, error)
	CreateContract(ctx context.Context, c *models.Contract) error
	SetContractStatus(ctx context.Context, id uuid.UUID, status models.ContractStatus) error
	DeleteContract(ctx context.Context, id uuid.UUID) error
}

// StepStore is the per-contract workflow step collaborator. ListSteps
// returns steps ordered by step_order.
type StepStore interface {
	ListSteps(ctx context.Context, contractID uuid.UUID) ([]models.WorkflowStep, error)
	UpdateStep(ctx context.Context, contractID uuid.UUID, stepOrder int, upd StepUpdate) error
	CreateSteps(ctx context.Context, steps []models.WorkflowStep) error
}

// ActivityLog is the append-only audit trail collaborator.
type ActivityLog interface {
	AppendActivity(ctx context.Context, a models.Activity) error
}

// RoleStore is the user-role collaborator. GetRole returns ErrNotFound
// for users without an assigned role.
type RoleStore interface {
	GetRole(ctx context.Context, userID uuid.UUID) (models.Role, error)
	CreateRole(ctx context.Context, userID uuid.UUID, role models.Role) error
}

// Store bundles the collaborators with a transactional boundary. Tx runs
// fn against a store whose writes commit or roll back as one unit; reads
// inside fn observe row-level locks so concurrent actions on the same
// contract serialize.
type Store interface {
	ContractStore
	StepStore
	ActivityLog
	RoleStore
	Tx(ctx context.Context, fn func(tx Store) error) error
}

// Engine drives contract lifecycle transitions. Stateless between calls;
// all state lives in the store.
type Engine struct {
	store    Store
	template []StepDef
	log      *slog.Logger
}

func NewEngine(store Store, log *slog.Logger) *Engine {
	if log == nil {
		log = slog.Default()
	}
	return &Engine{store: store, template: DefaultTemplate(), log: log}
}

// SetTemplate replaces the step template used for newly created contracts
// and for classifying step names. Intended for deployment-level renames.
func (e *Engine) SetTemplate(template []StepDef) {
	e.template = template
}

// ResolveRole maps a user to their role, creating the default "user" role
// on first access. Fails closed: any lookup error degrades to "user"
// rather than propagating, so callers fall back to least privilege.
func (e *Engine) ResolveRole(ctx context.Context, userID uuid.UUID) models.Role {
	role, err := e.store.GetRole(ctx, userID)
	if err == nil && role.Valid() {
		return role
	}
	if errors.Is(err, ErrNotFound) {
		if cerr := e.store.CreateRole(ctx, userID, models.RoleUser); cerr != nil {
			e.log.Warn("failed to create default role", "user_id", userID, "error", cerr)
		}
		return models.RoleUser
	}
	if err != nil {
		e.log.Warn("role lookup failed, degrading to user", "user_id", userID, "error", err)
	}
	return models.RoleUser
}

// CanEdit reports whether the actor may edit the contract. The "user"
// role may edit only contracts it created.
func (e *Engine) CanEdit(actor Actor, c *models.Contract) bool {
	perms := PermissionsFor(actor.Role)
	if !perms.CanEditContract {
		return false
	}
	return perms.CanViewAll || c.CreatedBy == actor.UserID
}

// Create inserts a contract in draft together with its pipeline steps,
// all pending, as one unit.
func (e *Engine) Create(ctx context.Context, actor Actor, c *models.Contract) error {
	if !PermissionsFor(actor.Role).CanCreateContract {
		return ErrForbidden
	}
	c.Status = models.StatusDraft
	c.CreatedBy = actor.UserID
	if c.Priority == "" {
		c.Priority = models.PriorityMedium
	}
	err := e.store.Tx(ctx, func(tx Store) error {
		if err := tx.CreateContract(ctx, c); err != nil {
			return err
		}
		steps := make([]models.WorkflowStep, 0, len(e.template))
		for i, def := range e.template {
			steps = append(steps, models.WorkflowStep{
				ContractID: c.ID,
				StepOrder:  i + 1,
				StepName:   def.Name,
				Status:     models.StepPending,
			})
		}
		return tx.CreateSteps(ctx, steps)
	})
	if err != nil {
		return err
	}
	e.logActivity(ctx, c.ID, actor, "created", "Contract created")
	return nil
}

// Submit moves a draft contract into review: every step is reset to
// pending and step 1 becomes in_progress with its assignee cleared for
// auto-assignment. Resubmission after a return restarts from step 1.
func (e *Engine) Submit(ctx context.Context, actor Actor, contractID uuid.UUID) error {
	perms := PermissionsFor(actor.Role)
	if !perms.CanEditContract {
		return ErrForbidden
	}
	err := e.store.Tx(ctx, func(tx Store) error {
		c, err := tx.GetContract(ctx, contractID)
		if err != nil {
			return err
		}
		if !perms.CanViewAll && c.CreatedBy != actor.UserID {
			return ErrForbidden
		}
		if c.Status != models.StatusDraft {
			return ErrInvalidTransition
		}
		steps, err := tx.ListSteps(ctx, contractID)
		if err != nil {
			return err
		}
		if len(steps) == 0 {
			return ErrNotFound
		}
		for _, s := range steps {
			upd := StepUpdate{Status: models.StepPending}
			if s.StepOrder == 1 {
				upd.Status = models.StepInProgress
			}
			if err := tx.UpdateStep(ctx, contractID, s.StepOrder, upd); err != nil {
				return err
			}
		}
		return tx.SetContractStatus(ctx, contractID, models.StatusUnderReview)
	})
	if err != nil {
		return err
	}
	e.logActivity(ctx, contractID, actor, "submitted", "Contract submitted for review")
	return nil
}

// Approve completes the active step. On the final step the contract
// becomes approved; otherwise the next step starts and the contract
// status follows the next step's kind.
func (e *Engine) Approve(ctx context.Context, actor Actor, contractID uuid.UUID, notes string) error {
	var description string
	err := e.store.Tx(ctx, func(tx Store) error {
		if _, err := tx.GetContract(ctx, contractID); err != nil {
			return err
		}
		steps, err := tx.ListSteps(ctx, contractID)
		if err != nil {
			return err
		}
		cur := CurrentStep(steps)
		if cur == nil || cur.Status != models.StepInProgress {
			return ErrStepNotActive
		}
		if !canCompleteStep(actor.Role, e.kindOf(cur.StepName)) {
			return ErrForbidden
		}
		now := time.Now().UTC()
		actorID := actor.UserID
		upd := StepUpdate{
			Status:      models.StepCompleted,
			AssignedTo:  &actorID,
			Notes:       notes,
			CompletedAt: &now,
		}
		if err := tx.UpdateStep(ctx, contractID, cur.StepOrder, upd); err != nil {
			return err
		}
		next := stepAfter(steps, cur.StepOrder)
		if next == nil {
			description = "Contract final approval completed"
			return tx.SetContractStatus(ctx, contractID, models.StatusApproved)
		}
		if err := tx.UpdateStep(ctx, contractID, next.StepOrder, StepUpdate{Status: models.StepInProgress}); err != nil {
			return err
		}
		description = fmt.Sprintf("Step %d (%s) approved, moved to %s", cur.StepOrder, cur.StepName, next.StepName)
		return tx.SetContractStatus(ctx, contractID, statusFor(e.kindOf(next.StepName)))
	})
	if err != nil {
		return err
	}
	e.logActivity(ctx, contractID, actor, "approved", description)
	return nil
}

// Reject terminates the workflow at the active step. Reason is mandatory.
func (e *Engine) Reject(ctx context.Context, actor Actor, contractID uuid.UUID, reason string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return ErrReasonRequired
	}
	if err := e.requireReviewer(actor); err != nil {
		return err
	}
	err := e.store.Tx(ctx, func(tx Store) error {
		if _, err := tx.GetContract(ctx, contractID); err != nil {
			return err
		}
		steps, err := tx.ListSteps(ctx, contractID)
		if err != nil {
			return err
		}
		cur := CurrentStep(steps)
		if cur == nil || cur.Status != models.StepInProgress {
			return ErrStepNotActive
		}
		now := time.Now().UTC()
		actorID := actor.UserID
		upd := StepUpdate{
			Status:      models.StepRejected,
			AssignedTo:  &actorID,
			Notes:       reason,
			CompletedAt: &now,
		}
		if err := tx.UpdateStep(ctx, contractID, cur.StepOrder, upd); err != nil {
			return err
		}
		return tx.SetContractStatus(ctx, contractID, models.StatusRejected)
	})
	if err != nil {
		return err
	}
	e.logActivity(ctx, contractID, actor, "rejected", "Contract rejected: "+reason)
	return nil
}

// Return sends the contract back to draft so the creator can amend and
// resubmit. The active step is marked returned, not completed.
func (e *Engine) Return(ctx context.Context, actor Actor, contractID uuid.UUID, reason string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return ErrReasonRequired
	}
	if err := e.requireReviewer(actor); err != nil {
		return err
	}
	err := e.store.Tx(ctx, func(tx Store) error {
		if _, err := tx.GetContract(ctx, contractID); err != nil {
			return err
		}
		steps, err := tx.ListSteps(ctx, contractID)
		if err != nil {
			return err
		}
		cur := CurrentStep(steps)
		if cur == nil || cur.Status != models.StepInProgress {
			return ErrStepNotActive
		}
		actorID := actor.UserID
		upd := StepUpdate{
			Status:     models.StepReturned,
			AssignedTo: &actorID,
			Notes:      reason,
		}
		if err := tx.UpdateStep(ctx, contractID, cur.StepOrder, upd); err != nil {
			return err
		}
		return tx.SetContractStatus(ctx, contractID, models.StatusDraft)
	})
	if err != nil {
		return err
	}
	e.logActivity(ctx, contractID, actor, "returned", "Contract returned for changes: "+reason)
	return nil
}

// Delete removes a contract; steps and activities cascade with it.
func (e *Engine) Delete(ctx context.Context, actor Actor, contractID uuid.UUID) error {
	if !PermissionsFor(actor.Role).CanDeleteContract {
		return ErrForbidden
	}
	return e.store.Tx(ctx, func(tx Store) error {
		if _, err := tx.GetContract(ctx, contractID); err != nil {
			return err
		}
		return tx.DeleteContract(ctx, contractID)
	})
}

// Execute dispatches a named action. Notes carry the approval comment or
// the mandatory reject/return reason.
func (e *Engine) Execute(ctx context.Context, actor Actor, contractID uuid.UUID, action Action, notes string) error {
	switch action {
	case ActionSubmit:
		return e.Submit(ctx, actor, contractID)
	case ActionApprove:
		return e.Approve(ctx, actor, contractID, notes)
	case ActionReject:
		return e.Reject(ctx, actor, contractID, notes)
	case ActionReturn:
		return e.Return(ctx, actor, contractID, notes)
	default:
		return ErrInvalidTransition
	}
}

// AvailableActions lists the actions the actor may invoke on the contract
// in its current state. Consumed by the UI to decide which buttons to show.
func (e *Engine) AvailableActions(actor Actor, c *models.Contract, steps []models.WorkflowStep) []Action {
	actions := []Action{}
	perms := PermissionsFor(actor.Role)
	if c.Status == models.StatusDraft && perms.CanEditContract &&
		(perms.CanViewAll || c.CreatedBy == actor.UserID) {
		actions = append(actions, ActionSubmit)
	}
	cur := CurrentStep(steps)
	if cur != nil && cur.Status == models.StepInProgress {
		if canCompleteStep(actor.Role, e.kindOf(cur.StepName)) {
			actions = append(actions, ActionApprove)
		}
		if perms.CanReviewContract || perms.CanApproveContract {
			actions = append(actions, ActionReject, ActionReturn)
		}
	}
	return actions
}

// CurrentStep returns the lowest-ordered step still requiring action
// (pending, in_progress, or returned). Nil means the workflow is complete
// or terminated by a rejection.
func CurrentStep(steps []models.WorkflowStep) *models.WorkflowStep {
	var cur *models.WorkflowStep
	for i := range steps {
		switch steps[i].Status {
		case models.StepPending, models.StepInProgress, models.StepReturned:
			if cur == nil || steps[i].StepOrder < cur.StepOrder {
				cur = &steps[i]
			}
		}
	}
	return cur
}

func stepAfter(steps []models.WorkflowStep, order int) *models.WorkflowStep {
	var next *models.WorkflowStep
	for i := range steps {
		if steps[i].StepOrder <= order {
			continue
		}
		if next == nil || steps[i].StepOrder < next.StepOrder {
			next = &steps[i]
		}
	}
	return next
}

func (e *Engine) requireReviewer(actor Actor) error {
	perms := PermissionsFor(actor.Role)
	if !perms.CanReviewContract && !perms.CanApproveContract {
		return ErrForbidden
	}
	return nil
}

// Audit failures are warnings only; the transition has already committed.
func (e *Engine) logActivity(ctx context.Context, contractID uuid.UUID, actor Actor, activityType, description string) {
	err := e.store.AppendActivity(ctx, models.Activity{
		ContractID:   contractID,
		ActivityType: activityType,
		Description:  description,
		PerformedBy:  actor.UserID,
		PerformedAt:  time.Now().UTC(),
	})
	if err != nil {
		e.log.Warn("activity append failed",
			"contract_id", contractID, "type", activityType, "error", err)
	}
}
