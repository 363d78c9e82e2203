package grammar

import "fmt"

// Zero-width guards that keep a numeric match from starting or ending
// inside a longer alphanumeric run ("23" must not match inside "x230").
// Sign and point characters are part of the guarded set so that a match
// cannot begin immediately after a stray sign either.
const (
	wordStart = `(?<![\w.+-])`
	wordEnd   = `(?![\w.+-])`
)

// Base fragments per number kind, without sign or boundary handling.
// General is ordered longest-shape-first so the engine prefers a full
// scientific literal over its decimal or integer prefix.
const (
	fragInteger = `\d+`
	fragDecimal = `(?:\d+\.\d*|\.\d+)`
	fragSciNot  = `(?:\d+\.?\d*|\.\d+)[eE][+-]?\d+`
	fragGeneral = `(?:` + fragSciNot + `|\d+\.\d*|\.\d+|\d+)`
)

// Sign prefixes per mode. SignOptional accepts everything SignNonNegative
// or SignNegative accepts, and SignExplicit is a strict subset of it.
var signPrefixes = map[SignMode]string{
	SignOptional:    `[+-]?`,
	SignNonNegative: `[+]?`,
	SignNegative:    `-`,
	SignExplicit:    `[+-]`,
}

// numClass keys the number pattern table.
type numClass struct {
	number NumberKind
	sign   SignMode
}

// numberPatterns holds the full NumberKind x SignMode cross product.
// Built once at init and never mutated; safe for concurrent reads.
var numberPatterns = buildNumberPatterns()

func buildNumberPatterns() map[numClass]string {
	bases := map[NumberKind]string{
		NumberInteger: fragInteger,
		NumberDecimal: fragDecimal,
		NumberSciNot:  fragSciNot,
		NumberGeneral: fragGeneral,
	}

	table := make(map[numClass]string, len(bases)*len(signPrefixes))
	for number, base := range bases {
		for sign, prefix := range signPrefixes {
			table[numClass{number, sign}] = prefix + base
		}
	}
	return table
}

// NumberPattern returns the regex fragment matching numeric literals of
// the given kind and sign mode, without capture-group or word-boundary
// wrapping. The table covers the full enum cross product, so a miss is a
// programming defect rather than a caller error.
func NumberPattern(number NumberKind, sign SignMode) string {
	pat, ok := numberPatterns[numClass{number, sign}]
	if !ok {
		panic(fmt.Sprintf("grammar: no number pattern for %s/%s", number, sign))
	}
	return pat
}

// BoundaryWrap surrounds a numeric fragment with the zero-width
// word-boundary guards used by the compiler. Exposed so the raw pattern
// table can be exercised on its own.
func BoundaryWrap(fragment string) string {
	return wordStart + fragment + wordEnd
}
