// Package replacement implements the content-patching primitives applied to
// project files: where a replacement goes, whether it should happen at all,
// and how a missing anchor is treated.
package replacement

import "strings"

// Condition decides whether a replacement should be attempted on content.
// A false result makes the replacer a no-op.
type Condition func(content, replacement string) bool

// Always is the condition that never blocks a replacement.
func Always() Condition {
	return func(string, string) bool { return true }
}

// NotContainingReplacement blocks a replacement whose text is already present
// in the content, whatever its line endings. It is the idempotence guard for
// insertions.
func NotContainingReplacement() Condition {
	return func(content, replacement string) bool {
		return !strings.Contains(unixLines(content), unixLines(replacement))
	}
}

// NotContainingLines blocks a replacement already present as whole lines of
// the content, so "  java" does not match "  javaX".
func NotContainingLines() Condition {
	return func(content, replacement string) bool {
		return !strings.Contains("\n"+unixLines(content)+"\n", "\n"+unixLines(replacement)+"\n")
	}
}

func unixLines(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}
