package services

import "testing"

func TestHasPermission(t *testing.T) {
	tests := []struct {
		role Role
		perm Permission
		want bool
	}{
		{RoleOwner, PermBillingManage, true},
		{RoleAdmin, PermBillingManage, false},
		{RoleAdmin, PermTeamManage, true},
		{RoleManager, PermBusinessEdit, true},
		{RoleAgent, PermTicketsCreate, true},
		{RoleAgent, PermReportsView, false},
		{RoleViewer, PermTicketsCreate, false},
		{"contractor", PermTicketsView, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.role)+"/"+string(tt.perm), func(t *testing.T) {
			if got := HasPermission(tt.role, tt.perm); got != tt.want {
				t.Errorf("HasPermission(%q, %q) = %v, want %v", tt.role, tt.perm, got, tt.want)
			}
		})
	}
}

func TestRoles_PermissionsAreKnown(t *testing.T) {
	known := map[Permission]bool{}
	for _, p := range AllPermissions {
		known[p] = true
	}
	for _, r := range Roles {
		for _, p := range r.Permissions {
			if !known[p] {
				t.Errorf("role %q has permission %q missing from AllPermissions", r.Role, p)
			}
		}
	}
}
