package user

import "testing"

func TestRoleAtLeast(t *testing.T) {
	cases := []struct {
		role Role
		min  Role
		want bool
	}{
		{RoleAdmin, RoleAdmin, true},
		{RoleAdmin, RoleManager, true},
		{RoleAdmin, RoleMember, true},
		{RoleManager, RoleAdmin, false},
		{RoleManager, RoleManager, true},
		{RoleManager, RoleMember, true},
		{RoleMember, RoleManager, false},
		{RoleMember, RoleMember, true},
		{Role("UNKNOWN"), RoleMember, false},
		{Role(""), RoleMember, false},
	}
	for _, c := range cases {
		if got := c.role.AtLeast(c.min); got != c.want {
			t.Errorf("Role(%q).AtLeast(%q) = %v, want %v", c.role, c.min, got, c.want)
		}
	}
}

func TestRoleIsValid(t *testing.T) {
	for _, r := range []Role{RoleAdmin, RoleManager, RoleMember} {
		if !r.IsValid() {
			t.Errorf("Role(%q).IsValid() = false, want true", r)
		}
	}
	for _, r := range []Role{"", "owner", "admin"} {
		if r.IsValid() {
			t.Errorf("Role(%q).IsValid() = true, want false", r)
		}
	}
}

func TestUserCanManageInvitations(t *testing.T) {
	cases := []struct {
		name string
		u    User
		want bool
	}{
		{"active admin", User{Role: RoleAdmin, IsActive: true}, true},
		{"active manager", User{Role: RoleManager, IsActive: true}, true},
		{"active member", User{Role: RoleMember, IsActive: true}, false},
		{"inactive manager", User{Role: RoleManager, IsActive: false}, false},
	}
	for _, c := range cases {
		if got := c.u.CanManageInvitations(); got != c.want {
			t.Errorf("%s: CanManageInvitations() = %v, want %v", c.name, got, c.want)
		}
	}
}
