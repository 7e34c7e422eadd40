package domain

import "strings"

// Role is a named authority carried by a user account and its tokens.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// ParseRoles splits the stored comma-separated role set.
func ParseRoles(raw string) []string {
	out := []string{}
	for _, r := range strings.Split(raw, ",") {
		r = strings.TrimSpace(r)
		if r != "" {
			out = append(out, r)
		}
	}
	return out
}

// JoinRoles is the inverse of ParseRoles.
func JoinRoles(roles []string) string {
	return strings.Join(roles, ",")
}
