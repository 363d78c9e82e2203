package grammar

import "fmt"

// TokenError reports a token string that does not conform to the grammar.
type TokenError struct {
	Token  string
	Reason string
}

func (e *TokenError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid pattern token %q: %s", e.Token, e.Reason)
	}
	return fmt.Sprintf("invalid pattern token %q", e.Token)
}

// LineError reports a structurally invalid pattern line.
type LineError struct {
	Line    string
	Message string
}

func (e *LineError) Error() string {
	return fmt.Sprintf("bad pattern line %q: %s", e.Line, e.Message)
}

// AdjacencyError reports two adjacent tokens whose spacing requirements
// cannot be jointly satisfied.
type AdjacencyError struct {
	First  string
	Second string
}

func (e *AdjacencyError) Error() string {
	return fmt.Sprintf("tokens %q and %q have no unambiguous boundary", e.First, e.Second)
}
