package request

type CreateAccountRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	LastName string `json:"last_name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateAccountRequest accepts is_staff and is_superuser but the update path
// ignores them: privilege changes go through the dedicated grant endpoints.
type UpdateAccountRequest struct {
	Email       *string `json:"email" binding:"omitempty,email"`
	Name        *string `json:"name"`
	LastName    *string `json:"last_name"`
	Password    *string `json:"password"`
	IsActive    *bool   `json:"is_active"`
	IsStaff     *bool   `json:"is_staff"`
	IsSuperuser *bool   `json:"is_superuser"`
}
