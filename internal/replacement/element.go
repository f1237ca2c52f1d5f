package replacement

import (
	"fmt"
	"regexp"
	"strings"

	oerrors "github.com/seedctl/seedctl/internal/errors"
)

// ElementReplacer locates an element in a file content and puts a replacement
// text relative to it. Implementations are stateless and do no I/O.
type ElementReplacer interface {
	// Condition returns the guard checked before Apply.
	Condition() Condition

	// Apply returns the updated content. matched is false when the element
	// could not be found, in which case content is returned unchanged.
	Apply(content, replacement string) (updated string, matched bool, err error)

	// Element describes what is searched, for error messages.
	Element() string
}

// MatchMode selects how many matches a match replacer rewrites.
type MatchMode int

const (
	// First rewrites only the first match.
	First MatchMode = iota
	// All rewrites every match.
	All
)

// RegexNeedleBeforeReplacer inserts the replacement on its own line right
// before the line holding the needle.
type RegexNeedleBeforeReplacer struct {
	condition Condition
	needle    *regexp.Regexp
}

// NewRegexNeedleBefore creates a RegexNeedleBeforeReplacer. Needles matching
// whole lines must be compiled in multi-line mode.
func NewRegexNeedleBefore(condition Condition, needle *regexp.Regexp) RegexNeedleBeforeReplacer {
	return RegexNeedleBeforeReplacer{condition: condition, needle: needle}
}

func (r RegexNeedleBeforeReplacer) Condition() Condition { return r.condition }

func (r RegexNeedleBeforeReplacer) Element() string { return r.needle.String() }

func (r RegexNeedleBeforeReplacer) Apply(content, replacement string) (string, bool, error) {
	loc, err := uniqueMatch(r.needle, content)
	if err != nil || loc == nil {
		return content, false, err
	}
	return insertBeforeLine(content, loc[1], replacement), true, nil
}

// RegexNeedleAfterReplacer inserts the replacement on its own line right after
// the line holding the needle.
type RegexNeedleAfterReplacer struct {
	condition Condition
	needle    *regexp.Regexp
}

// NewRegexNeedleAfter creates a RegexNeedleAfterReplacer.
func NewRegexNeedleAfter(condition Condition, needle *regexp.Regexp) RegexNeedleAfterReplacer {
	return RegexNeedleAfterReplacer{condition: condition, needle: needle}
}

func (r RegexNeedleAfterReplacer) Condition() Condition { return r.condition }

func (r RegexNeedleAfterReplacer) Element() string { return r.needle.String() }

func (r RegexNeedleAfterReplacer) Apply(content, replacement string) (string, bool, error) {
	loc, err := uniqueMatch(r.needle, content)
	if err != nil || loc == nil {
		return content, false, err
	}
	return insertAfterLine(content, loc[1], replacement), true, nil
}

// TextNeedleBeforeReplacer inserts the replacement before the line containing
// a literal needle.
type TextNeedleBeforeReplacer struct {
	condition Condition
	needle    string
}

// NewTextNeedleBefore creates a TextNeedleBeforeReplacer.
func NewTextNeedleBefore(condition Condition, needle string) TextNeedleBeforeReplacer {
	return TextNeedleBeforeReplacer{condition: condition, needle: needle}
}

func (r TextNeedleBeforeReplacer) Condition() Condition { return r.condition }

func (r TextNeedleBeforeReplacer) Element() string { return r.needle }

func (r TextNeedleBeforeReplacer) Apply(content, replacement string) (string, bool, error) {
	end, err := uniqueText(r.needle, content)
	if err != nil || end < 0 {
		return content, false, err
	}
	return insertBeforeLine(content, end, replacement), true, nil
}

// TextNeedleAfterReplacer inserts the replacement after the line containing
// a literal needle.
type TextNeedleAfterReplacer struct {
	condition Condition
	needle    string
}

// NewTextNeedleAfter creates a TextNeedleAfterReplacer.
func NewTextNeedleAfter(condition Condition, needle string) TextNeedleAfterReplacer {
	return TextNeedleAfterReplacer{condition: condition, needle: needle}
}

func (r TextNeedleAfterReplacer) Condition() Condition { return r.condition }

func (r TextNeedleAfterReplacer) Element() string { return r.needle }

func (r TextNeedleAfterReplacer) Apply(content, replacement string) (string, bool, error) {
	end, err := uniqueText(r.needle, content)
	if err != nil || end < 0 {
		return content, false, err
	}
	return insertAfterLine(content, end, replacement), true, nil
}

// RegexReplacer rewrites matches of a pattern. An empty replacement deletes
// the matches. The replacement is taken literally.
type RegexReplacer struct {
	condition Condition
	pattern   *regexp.Regexp
	mode      MatchMode
}

// NewRegexReplacer creates a RegexReplacer.
func NewRegexReplacer(condition Condition, pattern *regexp.Regexp, mode MatchMode) RegexReplacer {
	return RegexReplacer{condition: condition, pattern: pattern, mode: mode}
}

func (r RegexReplacer) Condition() Condition { return r.condition }

func (r RegexReplacer) Element() string { return r.pattern.String() }

func (r RegexReplacer) Apply(content, replacement string) (string, bool, error) {
	if r.mode == All {
		if !r.pattern.MatchString(content) {
			return content, false, nil
		}
		return r.pattern.ReplaceAllLiteralString(content, replacement), true, nil
	}

	loc := r.pattern.FindStringIndex(content)
	if loc == nil {
		return content, false, nil
	}
	return content[:loc[0]] + replacement + content[loc[1]:], true, nil
}

// TextReplacer rewrites occurrences of a literal text.
type TextReplacer struct {
	condition Condition
	text      string
	mode      MatchMode
}

// NewTextReplacer creates a TextReplacer.
func NewTextReplacer(condition Condition, text string, mode MatchMode) TextReplacer {
	return TextReplacer{condition: condition, text: text, mode: mode}
}

func (r TextReplacer) Condition() Condition { return r.condition }

func (r TextReplacer) Element() string { return r.text }

func (r TextReplacer) Apply(content, replacement string) (string, bool, error) {
	if r.text == "" || !strings.Contains(content, r.text) {
		return content, false, nil
	}
	n := 1
	if r.mode == All {
		n = -1
	}
	return strings.Replace(content, r.text, replacement, n), true, nil
}

// EndOfFile appends the replacement as the last line of the content.
type EndOfFile struct {
	condition Condition
}

// NewEndOfFile creates an EndOfFile replacer.
func NewEndOfFile(condition Condition) EndOfFile {
	return EndOfFile{condition: condition}
}

func (r EndOfFile) Condition() Condition { return r.condition }

func (r EndOfFile) Element() string { return "end of file" }

func (r EndOfFile) Apply(content, replacement string) (string, bool, error) {
	eol := lineEnding(content)
	if content != "" && !strings.HasSuffix(content, "\n") {
		content += eol
	}
	return content + withLineEnding(replacement, eol) + eol, true, nil
}

// FileStart prepends the replacement as the first line of the content.
type FileStart struct {
	condition Condition
}

// NewFileStart creates a FileStart replacer.
func NewFileStart(condition Condition) FileStart {
	return FileStart{condition: condition}
}

func (r FileStart) Condition() Condition { return r.condition }

func (r FileStart) Element() string { return "file start" }

func (r FileStart) Apply(content, replacement string) (string, bool, error) {
	eol := lineEnding(content)
	return withLineEnding(replacement, eol) + eol + content, true, nil
}

// uniqueMatch returns the single match of needle, nil when there is none.
func uniqueMatch(needle *regexp.Regexp, content string) ([]int, error) {
	matches := needle.FindAllStringIndex(content, 2)
	switch len(matches) {
	case 0:
		return nil, nil
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("needle %q matches more than one line: %w", needle.String(), oerrors.ErrAmbiguousNeedle)
	}
}

// uniqueText returns the end offset of the single occurrence of needle, -1
// when there is none.
func uniqueText(needle, content string) (int, error) {
	if needle == "" {
		return -1, nil
	}
	switch strings.Count(content, needle) {
	case 0:
		return -1, nil
	case 1:
		return strings.Index(content, needle) + len(needle), nil
	default:
		return -1, fmt.Errorf("needle %q matches more than one line: %w", needle, oerrors.ErrAmbiguousNeedle)
	}
}

// insertBeforeLine inserts text on its own line at the start of the line
// containing offset end. A match spanning several lines anchors on its last
// line. The inserted line uses the line ending of content.
func insertBeforeLine(content string, end int, text string) string {
	if end > 0 && end <= len(content) && content[end-1] == '\n' {
		end--
	}
	eol := lineEnding(content)
	lineStart := strings.LastIndex(content[:end], "\n") + 1
	return content[:lineStart] + withLineEnding(text, eol) + eol + content[lineStart:]
}

// insertAfterLine inserts text on its own line after the line containing
// offset end.
func insertAfterLine(content string, end int, text string) string {
	eol := lineEnding(content)
	text = withLineEnding(text, eol)
	if end > 0 && content[end-1] == '\n' {
		return content[:end] + text + eol + content[end:]
	}
	lineEnd := strings.Index(content[end:], "\n")
	if lineEnd < 0 {
		return content + eol + text
	}
	at := end + lineEnd + 1
	return content[:at] + text + eol + content[at:]
}

// lineEnding returns "\r\n" for content with Windows line endings, "\n"
// otherwise.
func lineEnding(content string) string {
	if strings.Contains(content, "\r\n") {
		return "\r\n"
	}
	return "\n"
}

// withLineEnding rewrites the line breaks of text to eol.
func withLineEnding(text, eol string) string {
	if eol == "\n" {
		return text
	}
	return strings.ReplaceAll(strings.ReplaceAll(text, "\r\n", "\n"), "\n", eol)
}
