// Package strings provides small string and *string helpers shared by the catalog and repos
package strings

import (
	std "strings"

	"golang.org/x/text/cases"
)

// Fold returns the Unicode case folded form of s
func Fold(s string) string {
	// a Caser carries state, so each call gets its own
	return cases.Fold().String(s)
}

// ContainsFold reports whether sub is within s under Unicode case folding
func ContainsFold(s, sub string) bool {
	if sub == "" {
		return true
	}
	return std.Contains(Fold(s), Fold(sub))
}

// Blank reports whether s has no non whitespace content
func Blank(s string) bool { return std.TrimSpace(s) == "" }

// Ptr returns a pointer to s, or nil if s is empty
func Ptr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// NilIfBlank returns nil for a nil or whitespace-only ps, else ps
func NilIfBlank(ps *string) *string {
	if ps == nil || Blank(*ps) {
		return nil
	}
	return ps
}
