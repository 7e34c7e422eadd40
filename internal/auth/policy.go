package auth

import "marketplace/internal/domain"

type Decision int

const (
	Allow Decision = iota
	Unauthenticated
	Forbidden
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case Unauthenticated:
		return "unauthenticated"
	case Forbidden:
		return "forbidden"
	}
	return "unknown"
}

// Err maps a denial onto the domain error taxonomy; Allow gives nil.
func (d Decision) Err() error {
	switch d {
	case Allow:
		return nil
	case Unauthenticated:
		return domain.UnauthenticatedError{}
	default:
		return domain.ForbiddenError{}
	}
}

// Authorize decides whether p may act.
//
// With ownerID set, the principal must own the resource, or hold requiredRole
// when one is given (the role overrides ownership). Without ownerID, a
// non-empty requiredRole must be held. A nil principal is always
// Unauthenticated; public operations do not call Authorize.
func Authorize(p *Principal, requiredRole domain.Role, ownerID *int64) Decision {
	if p == nil {
		return Unauthenticated
	}
	if ownerID != nil {
		if p.UserID() == *ownerID {
			return Allow
		}
		if requiredRole != "" && p.HasRole(requiredRole) {
			return Allow
		}
		return Forbidden
	}
	if requiredRole != "" && !p.HasRole(requiredRole) {
		return Forbidden
	}
	return Allow
}
