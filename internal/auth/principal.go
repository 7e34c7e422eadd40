package auth

import (
	"sort"

	"marketplace/internal/domain"
)

// Principal is the verified identity bound to one request.
type Principal struct {
	subject string
	userID  int64
	roles   []string
}

func NewPrincipal(subject string, userID int64, roles []string) *Principal {
	return &Principal{subject: subject, userID: userID, roles: normalizeRoles(roles)}
}

func (p *Principal) Subject() string { return p.subject }
func (p *Principal) UserID() int64   { return p.userID }

// Roles returns a copy of the sorted role set.
func (p *Principal) Roles() []string {
	out := make([]string, len(p.roles))
	copy(out, p.roles)
	return out
}

func (p *Principal) HasRole(role domain.Role) bool {
	if p == nil {
		return false
	}
	for _, r := range p.roles {
		if r == string(role) {
			return true
		}
	}
	return false
}

func normalizeRoles(roles []string) []string {
	seen := make(map[string]struct{}, len(roles))
	out := make([]string, 0, len(roles))
	for _, r := range roles {
		if r == "" {
			continue
		}
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	sort.Strings(out)
	return out
}
