package session

// Roles. Assigned at sign-up and immutable from the client's perspective.
const (
	RoleStudent = "student"
	RoleFaculty = "faculty"
	RoleAdmin   = "admin"
)

var AllRoles = []string{RoleStudent, RoleFaculty, RoleAdmin}

func ValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}

// User is the locally derived profile of the authenticated account.
// It exists if and only if a live provider session exists.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	Role  string `json:"role"`
}

func (u User) IsStudent() bool { return u.Role == RoleStudent }
func (u User) IsFaculty() bool { return u.Role == RoleFaculty }
func (u User) IsAdmin() bool   { return u.Role == RoleAdmin }

// IsZero reports whether no user is present (anonymous caller).
func (u User) IsZero() bool { return u.ID == "" }
