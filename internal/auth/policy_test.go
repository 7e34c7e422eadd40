package auth

import (
	"testing"

	"marketplace/internal/domain"
)

func ownerID(id int64) *int64 { return &id }

func TestAuthorizeOwnership(t *testing.T) {
	user := NewPrincipal("u1@example.com", 1, []string{"USER"})
	admin := NewPrincipal("admin@example.com", 99, []string{"USER", "ADMIN"})

	if d := Authorize(user, domain.RoleAdmin, ownerID(2)); d != Forbidden {
		t.Fatalf("non-owner without role: got %v, want forbidden", d)
	}
	if d := Authorize(user, domain.RoleAdmin, ownerID(1)); d != Allow {
		t.Fatalf("owner: got %v, want allow", d)
	}
	if d := Authorize(admin, domain.RoleAdmin, ownerID(2)); d != Allow {
		t.Fatalf("admin override: got %v, want allow", d)
	}
	if d := Authorize(admin, "", ownerID(2)); d != Forbidden {
		t.Fatalf("owner-only route must not honour admin: got %v", d)
	}
	if d := Authorize(nil, domain.RoleAdmin, ownerID(2)); d != Unauthenticated {
		t.Fatalf("anonymous: got %v, want unauthenticated", d)
	}
}

func TestAuthorizeRoleAndAuthenticated(t *testing.T) {
	user := NewPrincipal("u1@example.com", 1, []string{"USER"})
	admin := NewPrincipal("admin@example.com", 99, []string{"ADMIN"})

	if d := Authorize(user, domain.RoleAdmin, nil); d != Forbidden {
		t.Fatalf("role-gated for user: got %v, want forbidden", d)
	}
	if d := Authorize(admin, domain.RoleAdmin, nil); d != Allow {
		t.Fatalf("role-gated for admin: got %v, want allow", d)
	}
	if d := Authorize(user, "", nil); d != Allow {
		t.Fatalf("authenticated-only: got %v, want allow", d)
	}
	if d := Authorize(nil, "", nil); d != Unauthenticated {
		t.Fatalf("anonymous authenticated-only: got %v, want unauthenticated", d)
	}
}

func TestDecisionErr(t *testing.T) {
	if Allow.Err() != nil {
		t.Fatalf("allow must not produce an error")
	}
	if !domain.IsUnauthenticated(Unauthenticated.Err()) {
		t.Fatalf("unauthenticated must map to UnauthenticatedError")
	}
	if !domain.IsForbidden(Forbidden.Err()) {
		t.Fatalf("forbidden must map to ForbiddenError")
	}
}

func TestAccessTable(t *testing.T) {
	table := NewAccessTable()
	table.Set("GET", "/api/products", PublicRule())
	table.Set("DELETE", "/api/categories/:id", RoleRule(domain.RoleAdmin))
	table.Set("PATCH", "/api/products/:id", OwnerRule(""))

	user := NewPrincipal("u@example.com", 1, []string{"USER"})

	if d := table.Lookup("GET", "/api/products").Check(nil); d != Allow {
		t.Fatalf("public route denied anonymous: %v", d)
	}
	if d := table.Lookup("DELETE", "/api/categories/:id").Check(user); d != Forbidden {
		t.Fatalf("role route: got %v, want forbidden", d)
	}
	if d := table.Lookup("POST", "/api/unlisted").Check(nil); d != Unauthenticated {
		t.Fatalf("unlisted route must require authentication, got %v", d)
	}
	rule := table.Lookup("PATCH", "/api/products/:id")
	if d := rule.Check(user); d != Allow {
		t.Fatalf("owner route pre-check should only need a principal, got %v", d)
	}
	if d := rule.CheckOwner(user, 2); d != Forbidden {
		t.Fatalf("owner route foreign resource: got %v, want forbidden", d)
	}
	if d := rule.CheckOwner(user, 1); d != Allow {
		t.Fatalf("owner route own resource: got %v, want allow", d)
	}
}
