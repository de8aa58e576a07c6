package model

import "testing"

func TestNormalizeRole(t *testing.T) {
	tests := []struct {
		in   string
		want UserRole
	}{
		{"master", RoleMaster},
		{"Master", RoleMaster},
		{"MASTER", RoleMaster},
		{" admin ", RoleAdmin},
		{"super_admin", RoleSuperAdmin},
		{"user", RoleUser},
	}
	for _, tt := range tests {
		if got := NormalizeRole(tt.in); got != tt.want {
			t.Errorf("NormalizeRole(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestUserRoleValid(t *testing.T) {
	for _, r := range []UserRole{RoleMaster, RoleSuperAdmin, RoleAdmin, RoleUser} {
		if !r.Valid() {
			t.Errorf("%q should be valid", r)
		}
	}
	for _, r := range []UserRole{"", "GUEST", "master"} {
		if r.Valid() {
			t.Errorf("%q should not be valid", r)
		}
	}
}

func TestCallerRoleChecks(t *testing.T) {
	tests := []struct {
		role     UserRole
		isMaster bool
		isAdmin  bool
	}{
		{RoleMaster, true, true},
		{RoleSuperAdmin, false, true},
		{RoleAdmin, false, true},
		{RoleUser, false, false},
	}
	for _, tt := range tests {
		c := Caller{Role: tt.role}
		if c.IsMaster() != tt.isMaster {
			t.Errorf("%q IsMaster = %v, want %v", tt.role, c.IsMaster(), tt.isMaster)
		}
		if c.IsAdmin() != tt.isAdmin {
			t.Errorf("%q IsAdmin = %v, want %v", tt.role, c.IsAdmin(), tt.isAdmin)
		}
	}
}
