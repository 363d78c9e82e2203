package grammar

import (
	"strconv"
	"strings"
)

// optionalLineMarker, as the first token of a line, makes the whole line
// optional in the matched text.
const optionalLineMarker = "?"

// Line anchors. Start and end of line are asserted with zero-width
// alternations so compiled lines can be concatenated with a literal \n
// and still anchor correctly inside a larger document.
const (
	lineStart = `(^|(?<=\n))`
	lineEnd   = `($|(?=\n))`
)

// Group describes one capture group of a compiled line, in left-to-right
// order. Number and Sign are meaningful only for ContentNumber groups.
type Group struct {
	Name    string
	Content ContentKind
	Number  NumberKind
	Sign    SignMode
}

// CompiledLine is the result of compiling one pattern line: a regex
// anchored to line boundaries plus the ordered capture groups it defines.
// Group numbering restarts at 1 on every compilation; callers composing
// several lines into one regex must renumber to avoid name collisions.
//
// Optional reports the leading ? marker but the regex itself is not made
// optional: a line is only meaningfully absent relative to its neighbors,
// so the composition layer wraps it together with its joining newline.
type CompiledLine struct {
	Pattern  string // the source pattern line
	Regex    string
	Groups   []Group
	Optional bool // line may be absent entirely
}

// CompileLine compiles a pattern line into a regex with capture groups
// named cap1..capN over the capturing tokens.
//
// Compilation is deterministic and stateless: the same pattern yields a
// byte-identical CompiledLine every time.
func CompileLine(pattern string) (CompiledLine, error) {
	return compileLine(pattern, true)
}

// CompileLineNoCapture compiles a pattern line with every capture
// suppressed. Used where the line regex must be repeatable inside a
// larger pattern without duplicating group names.
func CompileLineNoCapture(pattern string) (CompiledLine, error) {
	return compileLine(pattern, false)
}

func compileLine(pattern string, capture bool) (CompiledLine, error) {
	cl := CompiledLine{Pattern: pattern}

	fields := strings.Fields(pattern)
	if len(fields) == 0 {
		return cl, &LineError{Line: pattern, Message: "no tokens"}
	}

	if fields[0] == optionalLineMarker {
		cl.Optional = true
		fields = fields[1:]
		if len(fields) == 0 {
			return cl, &LineError{Line: pattern, Message: "optional-line marker with no tokens"}
		}
	}

	tokens := make([]Token, 0, len(fields))
	for _, f := range fields {
		if f == optionalLineMarker {
			return cl, &LineError{Line: pattern, Message: "optional-line marker must be the first token"}
		}
		tok, err := ParseToken(f)
		if err != nil {
			return cl, err
		}
		tokens = append(tokens, tok)
	}

	var b strings.Builder
	b.WriteString(lineStart)
	// Leading whitespace on the matched line never matters.
	b.WriteString(`[ \t]*`)

	group := 0
	for i, t := range tokens {
		if i > 0 {
			switch t.Gap {
			case GapRequired:
				b.WriteString(`[ \t]+`)
			case GapOptional:
				b.WriteString(`[ \t]*`)
			case GapNone:
				// Two lazy free-text runs with nothing between them
				// have no unambiguous split point.
				if t.Content == ContentAny && tokens[i-1].Content == ContentAny {
					return cl, &AdjacencyError{First: tokens[i-1].Raw, Second: t.Raw}
				}
			}
		}

		eff := t
		if !capture {
			eff.Capture = false
		}

		var frag string
		var err error
		if eff.Capture {
			group++
			frag, err = eff.Pattern(group)
			cl.Groups = append(cl.Groups, Group{
				Name:    groupName(group),
				Content: t.Content,
				Number:  t.Number,
				Sign:    t.Sign,
			})
		} else {
			frag, err = eff.Pattern(0)
		}
		if err != nil {
			return cl, err
		}

		// Boundary guards go around literal and number tokens, but only
		// across required-whitespace boundaries; a token that may abut
		// its neighbor must be allowed to start or end mid-run.
		if t.Content != ContentAny {
			if i == 0 || t.Gap == GapRequired {
				frag = wordStart + frag
			}
			if i == len(tokens)-1 || tokens[i+1].Gap == GapRequired {
				frag += wordEnd
			}
		}

		b.WriteString(frag)
	}

	b.WriteString(`[ \t]*`)
	b.WriteString(lineEnd)

	cl.Regex = b.String()
	return cl, nil
}

func groupName(n int) string {
	return GroupPrefix + strconv.Itoa(n)
}
