package extract

import (
	"github.com/leapstack-labs/numex/pkg/grammar"
)

// Line is a single compiled pattern line ready to run against text, for
// callers that do not need block structure.
type Line struct {
	sec *section
}

// CompileLine compiles one pattern line for standalone matching.
func CompileLine(pattern string) (*Line, error) {
	sec, err := compileSection([]string{pattern})
	if err != nil {
		return nil, err
	}
	return &Line{sec: sec}, nil
}

// Pattern returns the generated regex.
func (l *Line) Pattern() string {
	return l.sec.re.String()
}

// Groups returns the capture groups in order.
func (l *Line) Groups() []grammar.Group {
	return l.sec.groups
}

// FindAll captures one row per occurrence of the pattern in text.
func (l *Line) FindAll(text string) ([]Row, error) {
	return l.sec.capture(text)
}
