package services

import "slices"

// Role is a team member's access level in the client dashboard.
type Role string

const (
	RoleOwner   Role = "owner"
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleAgent   Role = "agent"
	RoleViewer  Role = "viewer"
)

// Permission names one dashboard capability.
type Permission string

const (
	PermBillingManage     Permission = "billing.manage"
	PermTeamManage        Permission = "team.manage"
	PermServicesConfigure Permission = "services.configure"
	PermBusinessEdit      Permission = "business.edit"
	PermTicketsCreate     Permission = "tickets.create"
	PermTicketsView       Permission = "tickets.view"
	PermReportsView       Permission = "reports.view"
)

// RoleInfo describes a role for the team page.
type RoleInfo struct {
	Role        Role
	Label       string
	Permissions []Permission
}

// Roles is the static permission table, most to least privileged.
var Roles = []RoleInfo{
	{RoleOwner, "Owner", []Permission{PermBillingManage, PermTeamManage, PermServicesConfigure, PermBusinessEdit, PermTicketsCreate, PermTicketsView, PermReportsView}},
	{RoleAdmin, "Admin", []Permission{PermTeamManage, PermServicesConfigure, PermBusinessEdit, PermTicketsCreate, PermTicketsView, PermReportsView}},
	{RoleManager, "Manager", []Permission{PermBusinessEdit, PermTicketsCreate, PermTicketsView, PermReportsView}},
	{RoleAgent, "Agent", []Permission{PermTicketsCreate, PermTicketsView}},
	{RoleViewer, "Viewer", []Permission{PermTicketsView, PermReportsView}},
}

// AllPermissions lists every permission in table-column order.
var AllPermissions = []Permission{
	PermBillingManage, PermTeamManage, PermServicesConfigure, PermBusinessEdit,
	PermTicketsCreate, PermTicketsView, PermReportsView,
}

// HasPermission reports whether role grants perm. Unknown roles grant nothing.
func HasPermission(role Role, perm Permission) bool {
	for _, r := range Roles {
		if r.Role == role {
			return slices.Contains(r.Permissions, perm)
		}
	}
	return false
}
