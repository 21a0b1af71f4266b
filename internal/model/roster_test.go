package model

import "testing"

func TestRosterTabsStartWithAll(t *testing.T) {
	tabs := RosterTabs()

	if tabs[0] != "All" {
		t.Errorf("first tab = %q, want All", tabs[0])
	}
	if len(tabs) != len(FamilyMembers)+1 {
		t.Errorf("got %d tabs, want %d", len(tabs), len(FamilyMembers)+1)
	}
}

func TestMatchRosterIsCaseInsensitiveSubstring(t *testing.T) {
	got := MatchRoster("GRAND")

	if len(got) != 2 {
		t.Fatalf("got %v, want the two grandparents", got)
	}
	if got[0] != "Grandma Sue" || got[1] != "Grandpa Joe" {
		t.Errorf("matches = %v, want roster order preserved", got)
	}
}

func TestMatchRosterEmptyPromptMatchesAll(t *testing.T) {
	if got := MatchRoster("  "); len(got) != len(FamilyMembers) {
		t.Errorf("got %d matches, want %d", len(got), len(FamilyMembers))
	}
}

func TestMatchRosterNoMatches(t *testing.T) {
	if got := MatchRoster("zzz"); len(got) != 0 {
		t.Errorf("got %v, want no matches", got)
	}
}
