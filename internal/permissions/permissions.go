// Package permissions defines the closed set of staff capabilities and the
// single gate that checks a user against one of them.
package permissions

import "github.com/kampusapp/admin-backend/internal/models"

// Capability is one of the six independent permission flags on a staff
// account. The set is closed: a new capability means a new constant and a
// new column, never a string lookup.
type Capability int

const (
	ManageCustomers Capability = iota
	ManageFinancial
	ManageCollaborationCodes
	ViewCollaborationStats
	ManageAccess
	DeleteUsers
)

func (c Capability) String() string {
	switch c {
	case ManageCustomers:
		return "manage_customers"
	case ManageFinancial:
		return "manage_financial"
	case ManageCollaborationCodes:
		return "manage_collaboration_codes"
	case ViewCollaborationStats:
		return "view_collaboration_stats"
	case ManageAccess:
		return "manage_access"
	case DeleteUsers:
		return "delete_users"
	default:
		return "unknown"
	}
}

// Allowed reports whether the user holds the capability. Flags are fully
// independent; there is no hierarchy.
func Allowed(u *models.User, c Capability) bool {
	if u == nil {
		return false
	}
	switch c {
	case ManageCustomers:
		return u.CanManageCustomers
	case ManageFinancial:
		return u.CanManageFinancial
	case ManageCollaborationCodes:
		return u.CanManageCollaborationCodes
	case ViewCollaborationStats:
		return u.CanViewCollaborationStats
	case ManageAccess:
		return u.CanManageAccess
	case DeleteUsers:
		return u.CanDeleteUsers
	default:
		return false
	}
}
