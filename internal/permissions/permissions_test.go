package permissions

import (
	"testing"

	"github.com/kampusapp/admin-backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestAllowedMapsEachFlagIndependently(t *testing.T) {
	all := []Capability{
		ManageCustomers, ManageFinancial, ManageCollaborationCodes,
		ViewCollaborationStats, ManageAccess, DeleteUsers,
	}

	grant := func(c Capability) *models.User {
		u := &models.User{}
		switch c {
		case ManageCustomers:
			u.CanManageCustomers = true
		case ManageFinancial:
			u.CanManageFinancial = true
		case ManageCollaborationCodes:
			u.CanManageCollaborationCodes = true
		case ViewCollaborationStats:
			u.CanViewCollaborationStats = true
		case ManageAccess:
			u.CanManageAccess = true
		case DeleteUsers:
			u.CanDeleteUsers = true
		}
		return u
	}

	for _, held := range all {
		u := grant(held)
		for _, checked := range all {
			if checked == held {
				assert.True(t, Allowed(u, checked), "%s should grant itself", held)
			} else {
				assert.False(t, Allowed(u, checked), "%s must not imply %s", held, checked)
			}
		}
	}
}

func TestAllowedNilUser(t *testing.T) {
	assert.False(t, Allowed(nil, ManageAccess))
}

func TestCapabilityString(t *testing.T) {
	assert.Equal(t, "manage_customers", ManageCustomers.String())
	assert.Equal(t, "delete_users", DeleteUsers.String())
	assert.Equal(t, "unknown", Capability(99).String())
}
