package constants

import "fmt"

// Canonical roles after ROLE_ prefix normalization.
const (
	RoleStudent   = "STUDENT"
	RoleAdmin     = "ADMIN"
	RoleProfessor = "PROFESSOR"
)

// Role error message templates
const (
	ErrOnlyProfessorsCanAccess = "Access denied. Professor privileges required for %s."
	ErrOnlyViewersCanAccess    = "Access denied. Student, Admin, or Professor privileges required for %s."
)

func RoleErrorProfessor(feature string) string {
	return fmt.Sprintf(ErrOnlyProfessorsCanAccess, feature)
}

func RoleErrorViewer(feature string) string {
	return fmt.Sprintf(ErrOnlyViewersCanAccess, feature)
}

// ==========================
// Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleStudent,
		RoleAdmin,
		RoleProfessor,
	}

	// ViewerRoles may read grade records.
	ViewerRoles = []string{
		RoleStudent,
		RoleAdmin,
		RoleProfessor,
	}

	// ManagerRoles may create, update, and delete grade records.
	ManagerRoles = []string{
		RoleProfessor,
	}
)
