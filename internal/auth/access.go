package auth

import "marketplace/internal/domain"

type Level int

const (
	Public Level = iota
	Authenticated
	RoleGated
	OwnerGated
)

// Rule is the access requirement of one route. For OwnerGated rules Role is
// the optional role that overrides ownership on that route.
type Rule struct {
	Level Level
	Role  domain.Role
}

func PublicRule() Rule                    { return Rule{Level: Public} }
func AuthenticatedRule() Rule             { return Rule{Level: Authenticated} }
func RoleRule(role domain.Role) Rule      { return Rule{Level: RoleGated, Role: role} }
func OwnerRule(override domain.Role) Rule { return Rule{Level: OwnerGated, Role: override} }

// Check evaluates the rule before any resource is loaded. Owner-gated rules
// only require a principal here; CheckOwner finishes the decision.
func (r Rule) Check(p *Principal) Decision {
	switch r.Level {
	case Public:
		return Allow
	case RoleGated:
		return Authorize(p, r.Role, nil)
	default:
		return Authorize(p, "", nil)
	}
}

// CheckOwner evaluates an owner-gated rule against the resource owner.
func (r Rule) CheckOwner(p *Principal, ownerID int64) Decision {
	return Authorize(p, r.Role, &ownerID)
}

// AccessTable maps (method, route pattern) to a rule. Unknown routes require
// authentication.
type AccessTable struct {
	rules map[string]Rule
}

func NewAccessTable() *AccessTable {
	return &AccessTable{rules: map[string]Rule{}}
}

func (t *AccessTable) Set(method, pattern string, r Rule) {
	t.rules[method+" "+pattern] = r
}

func (t *AccessTable) Lookup(method, pattern string) Rule {
	if r, ok := t.rules[method+" "+pattern]; ok {
		return r
	}
	return AuthenticatedRule()
}

func (l Level) String() string {
	switch l {
	case Public:
		return "public"
	case Authenticated:
		return "authenticated"
	case RoleGated:
		return "role"
	case OwnerGated:
		return "owner"
	default:
		return "unknown"
	}
}
