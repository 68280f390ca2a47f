package workflow

import "contract-flow/internal/models"

// StepKind classifies a pipeline stage for role gating and for deriving the
// contract status while the stage is active.
type StepKind string

const (
	KindReview    StepKind = "review"
	KindApproval  StepKind = "approval"
	KindExecution StepKind = "execution"
)

// StepDef is one stage of the approval pipeline template. The vocabulary is
// configuration: deployments may rename stages (e.g. "Department Alignment"
// instead of "Management Approval") as long as the kind is right.
type StepDef struct {
	Name string
	Kind StepKind
}

// DefaultTemplate is the four-stage pipeline created with every contract.
func DefaultTemplate() []StepDef {
	return []StepDef{
		{Name: "Legal Review", Kind: KindReview},
		{Name: "Management Approval", Kind: KindApproval},
		{Name: "Final Approval", Kind: KindApproval},
		{Name: "Contract Execution", Kind: KindExecution},
	}
}

// kindOf resolves a step back to its kind via the template, falling back on
// review for unknown names.
func (e *Engine) kindOf(stepName string) StepKind {
	for _, def := range e.template {
		if def.Name == stepName {
			return def.Kind
		}
	}
	return KindReview
}

// statusFor derives the contract status shown while a step of the given
// kind is in progress.
func statusFor(kind StepKind) models.ContractStatus {
	if kind == KindReview {
		return models.StatusInReview
	}
	return models.StatusPendingApproval
}

// canCompleteStep gates approve by the active step's kind: review stages
// need a reviewer, approval and execution stages need an approver. Admin
// passes everything.
func canCompleteStep(role models.Role, kind StepKind) bool {
	if role == models.RoleAdmin {
		return true
	}
	switch kind {
	case KindReview:
		return role == models.RoleReviewer
	case KindApproval, KindExecution:
		return role == models.RoleApproval
	}
	return false
}
