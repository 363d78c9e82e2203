package extract

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dlclark/regexp2"
	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/numex/pkg/grammar"
)

// Template describes the repeating block structure of a document as three
// line-set sections. Body is required and may match many times per block;
// Head and Tail bracket it once each.
type Template struct {
	Head []string `yaml:"head"`
	Body []string `yaml:"body"`
	Tail []string `yaml:"tail"`
}

// Section group names in the document-level pattern.
const (
	sectionHead = "head"
	sectionBody = "body"
	sectionTail = "tail"
)

// Load reads a YAML template spec.
func Load(r io.Reader) (*Template, error) {
	var t Template
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil {
		return nil, fmt.Errorf("parse template: %w", err)
	}
	return &t, nil
}

// LoadFile reads a YAML template spec from a file.
func LoadFile(path string) (*Template, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// section is one compiled line set: the capturing regex used on section
// text, its groups in order, and the capture-free pattern embedded in the
// document-level regex (which must be repeatable without duplicating
// group names).
type section struct {
	re     *regexp2.Regexp
	groups []grammar.Group
	bare   string
}

// Compiled is a Template compiled to executable form.
type Compiled struct {
	doc  *regexp2.Regexp
	head *section
	body *section
	tail *section
}

// Compile compiles every section and assembles the document-level
// pattern. Fails on the first bad pattern line; a template with no body
// has nothing to repeat and is rejected.
func (t *Template) Compile() (*Compiled, error) {
	if len(t.Body) == 0 {
		return nil, fmt.Errorf("template: body section is required")
	}

	head, err := compileSection(t.Head)
	if err != nil {
		return nil, fmt.Errorf("head: %w", err)
	}
	body, err := compileSection(t.Body)
	if err != nil {
		return nil, fmt.Errorf("body: %w", err)
	}
	tail, err := compileSection(t.Tail)
	if err != nil {
		return nil, fmt.Errorf("tail: %w", err)
	}

	var b strings.Builder
	if head != nil {
		b.WriteString("(?<" + sectionHead + ">" + head.bare + ")\n")
	}
	// At least one body line set, then any number more.
	b.WriteString("(?<" + sectionBody + ">" + body.bare + `(?:\n` + body.bare + `)*` + ")")
	if tail != nil {
		b.WriteString(`\n` + "(?<" + sectionTail + ">" + tail.bare + ")")
	}

	doc, err := regexp2.Compile(b.String(), regexp2.None)
	if err != nil {
		return nil, fmt.Errorf("template: compile document pattern: %w", err)
	}

	return &Compiled{doc: doc, head: head, body: body, tail: tail}, nil
}

// Pattern returns the document-level regex, for inspection.
func (c *Compiled) Pattern() string {
	return c.doc.String()
}

// HeadGroups returns the head section's capture groups in order.
func (c *Compiled) HeadGroups() []grammar.Group { return sectionGroups(c.head) }

// BodyGroups returns the body section's capture groups in order.
func (c *Compiled) BodyGroups() []grammar.Group { return sectionGroups(c.body) }

// TailGroups returns the tail section's capture groups in order.
func (c *Compiled) TailGroups() []grammar.Group { return sectionGroups(c.tail) }

func sectionGroups(s *section) []grammar.Group {
	if s == nil {
		return nil
	}
	return s.groups
}

// Block holds the captures from one matched document block.
type Block struct {
	Head Row
	Body []Row // one row per body line-set occurrence
	Tail Row
}

// Extract matches the template against a document and captures every
// block. The document-level pattern carries no value groups, so each
// matched section is re-scanned with its capturing regex; this is what
// lets the body repeat without group-name collisions.
func (c *Compiled) Extract(text string) ([]Block, error) {
	var blocks []Block

	m, err := c.doc.FindStringMatch(text)
	if err != nil {
		return nil, err
	}
	for m != nil {
		var blk Block

		if blk.Head, err = captureOnce(c.head, m, sectionHead); err != nil {
			return nil, err
		}
		if g := m.GroupByName(sectionBody); g != nil && len(g.Captures) > 0 {
			if blk.Body, err = c.body.capture(g.String()); err != nil {
				return nil, err
			}
		}
		if blk.Tail, err = captureOnce(c.tail, m, sectionTail); err != nil {
			return nil, err
		}

		blocks = append(blocks, blk)
		if m, err = c.doc.FindNextMatch(m); err != nil {
			return nil, err
		}
	}
	return blocks, nil
}

// captureOnce scans a single-occurrence section (head or tail) of a
// document match.
func captureOnce(s *section, m *regexp2.Match, name string) (Row, error) {
	if s == nil {
		return nil, nil
	}
	g := m.GroupByName(name)
	if g == nil || len(g.Captures) == 0 {
		return nil, nil
	}
	rows, err := s.capture(g.String())
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	return rows[0], nil
}

// capture runs the section's capturing regex over section text and
// collects one row per match, preserving group order. Groups from absent
// optional lines appear as unmatched values so rows keep their shape.
func (s *section) capture(text string) ([]Row, error) {
	var rows []Row

	m, err := s.re.FindStringMatch(text)
	if err != nil {
		return nil, err
	}
	for m != nil {
		row := make(Row, 0, len(s.groups))
		for _, g := range s.groups {
			v := Value{Group: g}
			if mg := m.GroupByName(g.Name); mg != nil && len(mg.Captures) > 0 {
				v.Text = mg.String()
				v.Matched = true
			}
			row = append(row, v)
		}
		rows = append(rows, row)
		if m, err = s.re.FindNextMatch(m); err != nil {
			return nil, err
		}
	}
	return rows, nil
}

// compileSection compiles a line set into a section. Returns nil for an
// empty set, which the callers treat as "section not present".
func compileSection(lines []string) (*section, error) {
	if len(lines) == 0 {
		return nil, nil
	}

	capped := make([]grammar.CompiledLine, 0, len(lines))
	bare := make([]grammar.CompiledLine, 0, len(lines))
	var groups []grammar.Group

	offset := 0
	for _, line := range lines {
		cl, err := grammar.CompileLine(line)
		if err != nil {
			return nil, err
		}
		nc, err := grammar.CompileLineNoCapture(line)
		if err != nil {
			return nil, err
		}

		cl.Regex = Renumber(cl.Regex, offset)
		for i := range cl.Groups {
			cl.Groups[i].Name = fmt.Sprintf("%s%d", grammar.GroupPrefix, offset+i+1)
		}
		offset += len(cl.Groups)
		groups = append(groups, cl.Groups...)

		capped = append(capped, cl)
		bare = append(bare, nc)
	}

	re, err := regexp2.Compile(joinLines(capped), regexp2.None)
	if err != nil {
		return nil, fmt.Errorf("compile section pattern: %w", err)
	}

	return &section{re: re, groups: groups, bare: joinLines(bare)}, nil
}

// joinLines concatenates compiled lines with literal newlines. An
// optional line is wrapped together with its joining newline, so an
// absent line leaves its neighbors directly adjacent. A leading optional
// line owns the newline on its right instead, and the following line
// must then not add its own.
func joinLines(lines []grammar.CompiledLine) string {
	var b strings.Builder
	sepAbsorbed := false
	for i, cl := range lines {
		sep := `\n`
		if i == 0 || sepAbsorbed {
			sep = ""
		}
		sepAbsorbed = false

		switch {
		case cl.Optional && i == 0 && len(lines) > 1:
			b.WriteString(`(?:` + cl.Regex + `\n)?`)
			sepAbsorbed = true
		case cl.Optional:
			b.WriteString(`(?:` + sep + cl.Regex + `)?`)
		default:
			b.WriteString(sep + cl.Regex)
		}
	}
	return b.String()
}
