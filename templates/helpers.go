package templates

import (
	"strconv"
	"strings"

	"callcenter/profile"
	"callcenter/services"
)

type navLink struct {
	href  string
	label string
}

var navLinks = []navLink{
	{"/", "Home"},
	{"/pricing", "Pricing"},
	{"/builder", "Build your plan"},
	{"/dashboard", "Dashboard"},
	{"/dashboard/team", "Team"},
	{"/admin/services", "Services admin"},
	{"/admin/ai", "AI keys"},
}

// permissionLabel turns "tickets.create" into "Tickets create".
func permissionLabel(p services.Permission) string {
	s := strings.ReplaceAll(string(p), ".", " ")
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// priorityChosen defaults an empty selection to medium.
func priorityChosen(current, option string) bool {
	return option == current || (current == "" && option == profile.PriorityMedium)
}

func scoreText(score float64) string {
	return strconv.FormatFloat(score, 'f', 0, 64)
}

func upliftLabel(factor float64) string {
	return "Complexity uplift (x" + strconv.FormatFloat(factor, 'f', 2, 64) + ")"
}

func aiPath(provider, action string) string {
	return "/admin/ai/" + provider + "/" + action
}
