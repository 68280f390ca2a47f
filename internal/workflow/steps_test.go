package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contract-flow/internal/models"
)

func TestCurrentStep(t *testing.T) {
	steps := []models.WorkflowStep{
		{StepOrder: 1, Status: models.StepCompleted},
		{StepOrder: 2, Status: models.StepInProgress},
		{StepOrder: 3, Status: models.StepPending},
		{StepOrder: 4, Status: models.StepPending},
	}
	cur := CurrentStep(steps)
	require.NotNil(t, cur)
	assert.Equal(t, 2, cur.StepOrder)

	// a returned step is still the one requiring action
	steps[1].Status = models.StepReturned
	cur = CurrentStep(steps)
	require.NotNil(t, cur)
	assert.Equal(t, 2, cur.StepOrder)

	// all completed: workflow is done
	for i := range steps {
		steps[i].Status = models.StepCompleted
	}
	assert.Nil(t, CurrentStep(steps))

	// rejected steps terminate the workflow without a current step
	steps[2].Status = models.StepRejected
	assert.Nil(t, CurrentStep(steps))

	assert.Nil(t, CurrentStep(nil))
}

func TestCanCompleteStep(t *testing.T) {
	tests := []struct {
		role models.Role
		kind StepKind
		want bool
	}{
		{models.RoleReviewer, KindReview, true},
		{models.RoleReviewer, KindApproval, false},
		{models.RoleReviewer, KindExecution, false},
		{models.RoleApproval, KindReview, false},
		{models.RoleApproval, KindApproval, true},
		{models.RoleApproval, KindExecution, true},
		{models.RoleAdmin, KindReview, true},
		{models.RoleAdmin, KindApproval, true},
		{models.RoleAdmin, KindExecution, true},
		{models.RoleManager, KindReview, false},
		{models.RoleUser, KindReview, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, canCompleteStep(tt.role, tt.kind),
			"role=%s kind=%s", tt.role, tt.kind)
	}
}

func TestStatusForKind(t *testing.T) {
	assert.Equal(t, models.StatusInReview, statusFor(KindReview))
	assert.Equal(t, models.StatusPendingApproval, statusFor(KindApproval))
	assert.Equal(t, models.StatusPendingApproval, statusFor(KindExecution))
}

func TestDefaultTemplate(t *testing.T) {
	template := DefaultTemplate()
	require.Len(t, template, 4)
	assert.Equal(t, "Legal Review", template[0].Name)
	assert.Equal(t, KindReview, template[0].Kind)
	assert.Equal(t, KindExecution, template[3].Kind)
}
