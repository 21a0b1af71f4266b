package model

import "strings"

// FamilyMembers is the fixed roster of author names, in display order.
var FamilyMembers = []string{
	"Mom",
	"Dad",
	"Grandma Sue",
	"Grandpa Joe",
	"Aunt Claire",
	"Uncle Ben",
}

// RosterTabs returns the roster prefixed with the implicit "All" tab.
func RosterTabs() []string {
	tabs := make([]string, 0, len(FamilyMembers)+1)
	tabs = append(tabs, "All")
	return append(tabs, FamilyMembers...)
}

// MatchRoster returns roster names containing prompt, case-insensitively.
// An empty prompt matches the whole roster.
func MatchRoster(prompt string) []string {
	prompt = strings.ToLower(strings.TrimSpace(prompt))

	matches := make([]string, 0, len(FamilyMembers))
	for _, name := range FamilyMembers {
		if prompt == "" || strings.Contains(strings.ToLower(name), prompt) {
			matches = append(matches, name)
		}
	}
	return matches
}
