package domain

const (
	RoleAdmin  = "ADMIN"
	RoleFarmer = "FARMER"
)

// User models an authenticated actor in the system.
type User struct {
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
}

// UserSummary is the listing view of a user.
type UserSummary struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	Active   bool   `json:"active"`
}
