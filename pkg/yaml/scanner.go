package yaml

import "strings"

// scanner provides cursor-based access to the physical lines of a source
// text. Lines are split on '\n' only; carriage returns are left in place and
// handled, where at all, by block-scalar trimming.
type scanner struct {
	lines []string
	pos   int
}

func newScanner(text string) *scanner {
	return &scanner{lines: strings.Split(text, "\n")}
}

func (s *scanner) eof() bool {
	return s.pos >= len(s.lines)
}

// peek returns the current line without consuming it.
func (s *scanner) peek() string {
	return s.lines[s.pos]
}

// next consumes and returns the current line.
func (s *scanner) next() string {
	line := s.lines[s.pos]
	s.pos++
	return line
}

// skipBlanksAndComments advances past lines that are empty or whose first
// non-space character is '#', leaving the cursor on the first substantive
// line (or at EOF).
func (s *scanner) skipBlanksAndComments() {
	for !s.eof() {
		t := strings.TrimSpace(s.peek())
		if t != "" && !strings.HasPrefix(t, "#") {
			return
		}
		s.pos++
	}
}

// indentOf returns the number of leading space characters. Tabs are not
// indentation and end the count.
func indentOf(line string) int {
	for i := 0; i < len(line); i++ {
		if line[i] != ' ' {
			return i
		}
	}
	return len(line)
}
