// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the authorization role carried by a session.
type Role string

const (
	// RoleAdmin can manage every account and run maintenance operations.
	RoleAdmin Role = "admin"
	// RoleEditor can edit accounts and exams.
	RoleEditor Role = "editor"
	// RoleWorker is the default role of a worker account.
	RoleWorker Role = "worker"
	// RoleCompany is the role every organization session carries.
	RoleCompany Role = "company"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleEditor, RoleWorker, RoleCompany:
		return true
	default:
		return false
	}
}

// IsWorkerRole reports whether the role can be assigned to a worker account.
func (r Role) IsWorkerRole() bool {
	return r == RoleAdmin || r == RoleEditor || r == RoleWorker
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}
