// Package entity contains the core business objects of the project.
package entity

// Role represents the access level of a customer account.
type Role string

const (
	// RoleCustomer is assigned to every self-registered account.
	RoleCustomer Role = "CUSTOMER"
	// RoleAdmin grants access to the administration endpoints.
	RoleAdmin Role = "ADMIN"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleAdmin:
		return true
	default:
		return false
	}
}

// Scope returns the token scope claim granted by the role.
func (r Role) Scope() string {
	switch r {
	case RoleAdmin:
		return ScopeAdmin
	default:
		return ScopeCustomer
	}
}

// Token scopes carried in the "scope" claim.
const (
	ScopeCustomer = "customer"
	ScopeAdmin    = "admin"
)
