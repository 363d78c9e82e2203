package grammar

import (
	"fmt"

	"github.com/dlclark/regexp2"
)

// GroupPrefix is prepended to the 1-based group index to form the capture
// group names in compiled regexes (cap1, cap2, ...).
const GroupPrefix = "cap"

// Token is the parsed form of one whitespace-delimited pattern atom.
// Tokens are built fresh for every compilation and carry no identity
// beyond it.
type Token struct {
	Raw     string      // the original atom, kept for error reporting
	Content ContentKind // what the token matches
	Capture bool        // false when the ! modifier is present
	Gap     GapMode     // whitespace requirement before the token

	// Number tokens only.
	Quantity Quantity
	Number   NumberKind
	Sign     SignMode

	// Literal tokens only.
	Text string
}

// ParseToken parses a single pattern atom. Any atom that does not conform
// to the grammar fails with a *TokenError; there is no best-effort
// fallback, since a half-understood token would generate a regex that
// silently matches the wrong thing.
func ParseToken(raw string) (Token, error) {
	t := Token{
		Raw:      raw,
		Capture:  true,
		Gap:      GapRequired,
		Quantity: QuantitySingle,
	}

	if raw == "" {
		return t, &TokenError{Token: raw, Reason: "empty token"}
	}

	content, ok := contentForMarker(raw[0])
	if !ok {
		return t, &TokenError{Token: raw, Reason: fmt.Sprintf("unknown content marker %q", raw[0])}
	}
	t.Content = content

	i := 1
mods:
	for i < len(raw) {
		switch raw[i] {
		case modIgnore:
			t.Capture = false
		case modNoSpaceBefore:
			t.Gap = GapNone
		case modOptionalSpace:
			t.Gap = GapOptional
		default:
			break mods
		}
		i++
	}

	// Free-text tokens take no suffix at all.
	if t.Content == ContentAny {
		if i != len(raw) {
			return t, &TokenError{Token: raw, Reason: "free-text token takes no suffix"}
		}
		return t, nil
	}

	if i >= len(raw) {
		return t, &TokenError{Token: raw, Reason: "missing quantity selector"}
	}
	quantity, ok := quantityForCode(raw[i])
	if !ok {
		return t, &TokenError{Token: raw, Reason: fmt.Sprintf("unknown quantity selector %q", raw[i])}
	}
	t.Quantity = quantity
	i++

	switch t.Content {
	case ContentLiteral:
		if i >= len(raw) {
			return t, &TokenError{Token: raw, Reason: "missing literal text"}
		}
		t.Text = raw[i:]

	case ContentNumber:
		if len(raw)-i != 2 {
			return t, &TokenError{Token: raw, Reason: "number token needs a sign code and a number code"}
		}
		sign, ok := signForCode(raw[i])
		if !ok {
			return t, &TokenError{Token: raw, Reason: fmt.Sprintf("unknown sign code %q", raw[i])}
		}
		number, ok := numberForCode(raw[i+1])
		if !ok {
			return t, &TokenError{Token: raw, Reason: fmt.Sprintf("unknown number code %q", raw[i+1])}
		}
		t.Sign = sign
		t.Number = number
	}

	return t, nil
}

// fragment returns the regex for the token's match region only, without
// group wrapping or boundary guards.
func (t Token) fragment() (string, error) {
	if t.Quantity != QuantitySingle {
		return "", &TokenError{Token: t.Raw, Reason: "multi-value quantity is reserved and has no matching logic"}
	}

	switch t.Content {
	case ContentAny:
		// Lazy, so that two free-text tokens bracketing a fixed
		// delimiter split at the delimiter instead of one of them
		// swallowing it.
		return `.*?`, nil
	case ContentLiteral:
		return regexp2.Escape(t.Text), nil
	case ContentNumber:
		return NumberPattern(t.Number, t.Sign), nil
	}
	return "", &TokenError{Token: t.Raw, Reason: "unknown content kind"}
}

// Pattern renders the token as a regex fragment. Capturing tokens become
// the named group GroupPrefix+group; ignored tokens still consume their
// match inside a non-capturing group.
func (t Token) Pattern(group int) (string, error) {
	frag, err := t.fragment()
	if err != nil {
		return "", err
	}
	if t.Capture {
		return fmt.Sprintf("(?<%s%d>%s)", GroupPrefix, group, frag), nil
	}
	return "(?:" + frag + ")", nil
}
