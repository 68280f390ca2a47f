package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleValid(t *testing.T) {
	for _, role := range []Role{RoleAdmin, RoleManager, RoleUser, RoleReviewer, RoleApproval} {
		assert.True(t, role.Valid(), "role %q should be valid", role)
	}

	for _, role := range []Role{"", "superuser", "Admin", "USER"} {
		assert.False(t, role.Valid(), "role %q should be invalid", role)
	}
}
