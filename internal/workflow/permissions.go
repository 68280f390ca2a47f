package workflow

import "contract-flow/internal/models"

// Permissions is the capability set attached to a role.
type Permissions struct {
	CanCreateContract  bool `json:"can_create_contract"`
	CanEditContract    bool `json:"can_edit_contract"`
	CanReviewContract  bool `json:"can_review_contract"`
	CanApproveContract bool `json:"can_approve_contract"`
	CanDeleteContract  bool `json:"can_delete_contract"`
	CanViewAll         bool `json:"can_view_all_contracts"`
	CanAssignReviewer  bool `json:"can_assign_reviewer"`
}

// PermissionsFor maps a role to its capabilities. Pure and exhaustive;
// unknown roles get nothing. Ownership gating of CanEditContract for the
// "user" role is enforced by the engine, not here.
func PermissionsFor(role models.Role) Permissions {
	switch role {
	case models.RoleUser:
		return Permissions{
			CanCreateContract: true,
			CanEditContract:   true, // own contracts only
		}
	case models.RoleReviewer:
		return Permissions{
			CanCreateContract: true,
			CanEditContract:   true,
			CanReviewContract: true,
			CanViewAll:        true,
			CanAssignReviewer: true,
		}
	case models.RoleApproval:
		return Permissions{
			CanCreateContract:  true,
			CanEditContract:    true,
			CanReviewContract:  true,
			CanApproveContract: true,
			CanDeleteContract:  true,
			CanViewAll:         true,
			CanAssignReviewer:  true,
		}
	case models.RoleManager:
		return Permissions{
			CanCreateContract: true,
			CanEditContract:   true,
			CanReviewContract: true,
			CanViewAll:        true,
		}
	case models.RoleAdmin:
		return Permissions{
			CanCreateContract:  true,
			CanEditContract:    true,
			CanReviewContract:  true,
			CanApproveContract: true,
			CanDeleteContract:  true,
			CanViewAll:         true,
			CanAssignReviewer:  true,
		}
	default:
		return Permissions{}
	}
}
