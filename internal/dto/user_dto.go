package dto

type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`

	CanManageCustomers          bool `json:"can_manage_customers"`
	CanManageFinancial          bool `json:"can_manage_financial"`
	CanManageCollaborationCodes bool `json:"can_manage_collaboration_codes"`
	CanViewCollaborationStats   bool `json:"can_view_collaboration_stats"`
	CanManageAccess             bool `json:"can_manage_access"`
	CanDeleteUsers              bool `json:"can_delete_users"`
}

// UpdateUserRequest is a partial patch: nil means "leave unchanged", so
// every capability flag is tri-state.
type UpdateUserRequest struct {
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=8"`

	CanManageCustomers          *bool `json:"can_manage_customers"`
	CanManageFinancial          *bool `json:"can_manage_financial"`
	CanManageCollaborationCodes *bool `json:"can_manage_collaboration_codes"`
	CanViewCollaborationStats   *bool `json:"can_view_collaboration_stats"`
	CanManageAccess             *bool `json:"can_manage_access"`
	CanDeleteUsers              *bool `json:"can_delete_users"`
}
