package models

import "strings"

// Role selects which dashboard a session operates.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleOperator Role = "operator"
	RoleAdmin    Role = "admin"
)

// ParseRole normalizes raw input into one of the known roles.
func ParseRole(raw string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(raw))) {
	case RoleCustomer:
		return RoleCustomer, true
	case RoleOperator:
		return RoleOperator, true
	case RoleAdmin:
		return RoleAdmin, true
	}
	return "", false
}

// DisplayName derives the demo account name shown in the header,
// e.g. "Customer User".
func (r Role) DisplayName() string {
	s := string(r)
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:] + " User"
}

// User is the active session identity. Login selects a role; no credential
// is attached.
type User struct {
	Name string `json:"name"`
	Role Role   `json:"role"`
}
