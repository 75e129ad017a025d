package models

import "errors"

// ErrUnknownRole is returned when a role name is not User or Admin.
var ErrUnknownRole = errors.New("unknown role")

// Role is the access level of a user.
type Role string

const (
	RoleUser  Role = "User"
	RoleAdmin Role = "Admin"
)

// ParseRole validates a role name at the boundary so a typo in a stored
// or transmitted role can never grant access.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleUser:
		return RoleUser, nil
	case RoleAdmin:
		return RoleAdmin, nil
	default:
		return "", ErrUnknownRole
	}
}
