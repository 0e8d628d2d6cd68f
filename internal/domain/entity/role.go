// Package entity contains the core business objects of the ledger,
// each representing a unique, identifiable concept within the domain.
package entity

import "slices"

// Role represents the kind of account a user holds.
type Role string

const (
	// RoleContractor is the business owner: creates sites and workers, records
	// expenses and payments, reads every ledger view.
	RoleContractor Role = "contractor"
	// RoleWorker is a laborer account: reads only its own attendance and dues.
	RoleWorker Role = "worker"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleContractor, RoleWorker:
		return true
	default:
		return false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts Roles to []string for JWT compatibility.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// RolesFromStrings converts []string to Roles, filtering out invalid role strings.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(s)
		if role.IsValid() {
			result = append(result, role)
		}
	}

	return result
}
