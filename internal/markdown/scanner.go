package markdown

import (
	"strings"
	"unicode"
)

const (
	tagOpen  = "<!--"
	tagClose = "-->"
	fence    = "```"
)

// Match is one parsed magic tag together with its fenced content.
type Match struct {
	// Command is the first token of the tag line.
	Command string

	// Argument is the remainder of the tag line after the command,
	// outer whitespace trimmed, inner whitespace preserved. Empty
	// when the tag carried no argument.
	Argument string

	// Content holds the lines between the fence delimiters, in
	// document order. The delimiters themselves are never included.
	Content []string

	// Consumed counts the lines this match spans: the tag line, the
	// opening fence, the content lines, and the closing fence.
	Consumed int

	// Line is the 1-based document line number of the tag line.
	Line int
}

// Scanner yields magic tags from a document, front to back.
//
// The line slice is treated as immutable; the scanner tracks progress
// with an index cursor instead of mutating the input. Repeated calls
// to Next never re-emit lines already consumed by an earlier call.
type Scanner struct {
	lines []string
	pos   int
}

// NewScanner creates a scanner over the given lines.
func NewScanner(lines []string) *Scanner {
	return &Scanner{lines: lines}
}

// SplitLines splits raw document text into lines for scanning.
// Carriage returns are kept; the tag grammar treats them as whitespace.
func SplitLines(src string) []string {
	return strings.Split(src, "\n")
}

// Pos returns the cursor offset into the line slice. Lines before the
// cursor have been consumed.
func (s *Scanner) Pos() int {
	return s.pos
}

// Next returns the next well-formed tag-plus-fence pair, or false when
// the input is exhausted without finding one.
//
// Lines that do not open a valid pair are skipped. A tag line whose
// following line is not a fence opener costs only the tag line itself;
// scanning resumes at the offending line. A fence that opens but never
// closes consumes the rest of the input (see the package documentation
// on parse recovery).
func (s *Scanner) Next() (Match, bool) {
	for s.pos < len(s.lines) {
		tagPos := s.pos
		command, argument, ok := ParseTag(s.lines[tagPos])
		if !ok {
			s.pos++
			continue
		}
		content, next, ok := s.parseFence(tagPos + 1)
		s.pos = next
		if !ok {
			continue
		}
		return Match{
			Command:  command,
			Argument: argument,
			Content:  content,
			Consumed: next - tagPos,
			Line:     tagPos + 1,
		}, true
	}
	return Match{}, false
}

// parseFence parses a fenced block expected to start exactly at start.
// It returns the content lines and the cursor position after the block.
//
// On failure ok is false and next indicates how far the attempt
// consumed: nothing beyond start when the opener is missing, the whole
// input when the opener was found but no closer appears.
func (s *Scanner) parseFence(start int) (content []string, next int, ok bool) {
	if start >= len(s.lines) || !strings.HasPrefix(s.lines[start], fence) {
		return nil, start, false
	}
	for i := start + 1; i < len(s.lines); i++ {
		if s.lines[i] == fence {
			content = append([]string{}, s.lines[start+1:i]...)
			return content, i + 1, true
		}
	}
	return nil, len(s.lines), false
}

// ParseTag parses a single magic tag line of the form
//
//	<!-- COMMAND [ARGUMENT] -->
//
// The opener must start the line and be followed by at least one
// whitespace character. The command is the first token; anything after
// it up to the optional closer is the argument. The closer is optional
// but must be separated from the argument by whitespace, and nothing
// except trailing whitespace may follow it. Neither command nor
// argument may contain '>'.
func ParseTag(line string) (command, argument string, ok bool) {
	rest, found := strings.CutPrefix(line, tagOpen)
	if !found {
		return "", "", false
	}
	body := strings.TrimLeftFunc(rest, unicode.IsSpace)
	if len(body) == len(rest) {
		// No whitespace after the opener.
		return "", "", false
	}
	body = strings.TrimRightFunc(body, unicode.IsSpace)
	if closed, hadCloser := strings.CutSuffix(body, tagClose); hadCloser {
		stripped := strings.TrimRightFunc(closed, unicode.IsSpace)
		if stripped == closed && closed != "" {
			// "arg-->" reads as a '>' inside the argument, which the
			// grammar forbids. The closer only counts when whitespace
			// separates it from the argument.
			return "", "", false
		}
		body = stripped
	}
	if body == "" || strings.ContainsRune(body, '>') {
		return "", "", false
	}
	cmdEnd := strings.IndexFunc(body, unicode.IsSpace)
	if cmdEnd < 0 {
		return body, "", true
	}
	return body[:cmdEnd], strings.TrimLeftFunc(body[cmdEnd:], unicode.IsSpace), true
}
