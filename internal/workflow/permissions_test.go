package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"contract-flow/internal/models"
)

func TestPermissionsTable(t *testing.T) {
	tests := []struct {
		role models.Role
		want Permissions
	}{
		{models.RoleUser, Permissions{
			CanCreateContract: true,
			CanEditContract:   true,
		}},
		{models.RoleReviewer, Permissions{
			CanCreateContract: true,
			CanEditContract:   true,
			CanReviewContract: true,
			CanViewAll:        true,
			CanAssignReviewer: true,
		}},
		{models.RoleApproval, Permissions{
			CanCreateContract:  true,
			CanEditContract:    true,
			CanReviewContract:  true,
			CanApproveContract: true,
			CanDeleteContract:  true,
			CanViewAll:         true,
			CanAssignReviewer:  true,
		}},
		{models.RoleManager, Permissions{
			CanCreateContract: true,
			CanEditContract:   true,
			CanReviewContract: true,
			CanViewAll:        true,
		}},
		{models.RoleAdmin, Permissions{
			CanCreateContract:  true,
			CanEditContract:    true,
			CanReviewContract:  true,
			CanApproveContract: true,
			CanDeleteContract:  true,
			CanViewAll:         true,
			CanAssignReviewer:  true,
		}},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			assert.Equal(t, tt.want, PermissionsFor(tt.role))
			// deterministic: same input, same output
			assert.Equal(t, PermissionsFor(tt.role), PermissionsFor(tt.role))
		})
	}
}

func TestPermissionsUnknownRoleGetsNothing(t *testing.T) {
	assert.Equal(t, Permissions{}, PermissionsFor(models.Role("superuser")))
	assert.Equal(t, Permissions{}, PermissionsFor(models.Role("")))
}
