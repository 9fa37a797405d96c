package dto

type RegisterRequest struct {
	Email     string  `json:"email"      validate:"required,email"`
	Password  string  `json:"password"   validate:"required,min=8"`
	Name      string  `json:"name"       validate:"required,min=2"`
	Role      string  `json:"role"       validate:"omitempty,oneof=admin manager operator viewer"`
	CompanyID *string `json:"company_id" validate:"omitempty,uuid"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type UserResponse struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	Name      string  `json:"name"`
	Role      string  `json:"role"`
	CompanyID *string `json:"company_id"`
	IsActive  bool    `json:"is_active"`
	LastLogin *string `json:"last_login"`
}

type AuthResponse struct {
	User         UserResponse `json:"user"`
	Token        string       `json:"token"`
	RefreshToken string       `json:"refresh_token"`
	TokenType    string       `json:"token_type"`
	ExpiresIn    int          `json:"expires_in"`
}

type UpdateProfileRequest struct {
	Name     *string `json:"name"     validate:"omitempty,min=2"`
	Password *string `json:"password" validate:"omitempty,min=8"`
}

// UpdateUserRequest is the admin user-management variant: may also change
// role, company, and active flag.
type UpdateUserRequest struct {
	Name      *string `json:"name"       validate:"omitempty,min=2"`
	Password  *string `json:"password"   validate:"omitempty,min=8"`
	Role      *string `json:"role"       validate:"omitempty,oneof=admin manager operator viewer"`
	CompanyID *string `json:"company_id" validate:"omitempty,uuid"`
	IsActive  *bool   `json:"is_active"`
}
