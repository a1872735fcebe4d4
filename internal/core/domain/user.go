package domain

// UserRole controls what a staff member may do.
type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleStaff UserRole = "staff"
)

// User represents a staff member who can sign in to the system.
type User struct {
	UserID       string   `json:"userID"` // Primary key (UUID)
	Email        string   `json:"email"`
	FullName     string   `json:"fullName"`
	Role         UserRole `json:"role"`
	PasswordHash string   `json:"-"` // bcrypt hash, never serialized
	AuditFields
}
