package models

// User roles. The first registered user becomes admin; everyone who
// registers after that starts as a member until an admin changes it.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleMember  = "member"
)

// ValidRole reports whether role is one of the three known roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleManager || role == RoleMember
}

// User is a stored account document. The password hash never leaves the
// server.
type User struct {
	ID        string `json:"id" bson:"id"`
	Email     string `json:"email" bson:"email"`
	Password  string `json:"-" bson:"password"`
	Name      string `json:"name" bson:"name"`
	Role      string `json:"role" bson:"role"`
	CreatedAt string `json:"created_at" bson:"created_at"`
}

type RegisterInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// InviteInput creates a team member with an explicit role (admin only).
type InviteInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        User   `json:"user"`
}
