// Package testutil provides common testing utilities for UI models.
package testutil

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// StripANSI removes ANSI escape codes from a string for easier testing.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// ContainsLine checks if any line in the output contains the given substring.
func ContainsLine(output, substr string) bool {
	return FindLine(output, substr) != "" || substr == ""
}

// FindLine returns the first line containing the given substring, or empty string.
func FindLine(output, substr string) string {
	for line := range strings.SplitSeq(output, "\n") {
		if strings.Contains(line, substr) {
			return line
		}
	}
	return ""
}

// AssertContains returns an error message if output doesn't contain substr,
// or empty string if it does.
func AssertContains(output, substr string) string {
	if !strings.Contains(StripANSI(output), substr) {
		return "expected output to contain " + substr
	}
	return ""
}

// AssertNotContains returns an error message if output contains substr,
// or empty string if it doesn't.
func AssertNotContains(output, substr string) string {
	if strings.Contains(StripANSI(output), substr) {
		return "expected output to NOT contain " + substr
	}
	return ""
}
