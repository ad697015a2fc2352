package utils

import "strings"

// SelectAll is the selector value that disables a filter.
const SelectAll = "all"

// MatchesSelector reports whether value passes a dropdown-style filter.
// An empty selector behaves like SelectAll.
func MatchesSelector(selector, value string) bool {
	if selector == "" || selector == SelectAll {
		return true
	}
	return selector == value
}

// ContainsFold reports whether substr is within s, ignoring case.
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
