package grammar

// ContentKind identifies what a token matches.
type ContentKind int

const (
	// ContentAny matches an arbitrary run of characters.
	ContentAny ContentKind = iota
	// ContentLiteral matches an exact, case-sensitive string.
	ContentLiteral
	// ContentNumber matches a numeric literal from the pattern table.
	ContentNumber
)

// String returns a human-readable representation of the content kind.
func (c ContentKind) String() string {
	if name, ok := contentNames[c]; ok {
		return name
	}
	return "CONTENT(?)"
}

var contentNames = map[ContentKind]string{
	ContentAny:     "any",
	ContentLiteral: "literal",
	ContentNumber:  "number",
}

// Content marker characters, first in every token.
const (
	markerAny     = '~'
	markerLiteral = '@'
	markerNumber  = '#'
)

// contentForMarker maps a marker character to its content kind.
func contentForMarker(ch byte) (ContentKind, bool) {
	switch ch {
	case markerAny:
		return ContentAny, true
	case markerLiteral:
		return ContentLiteral, true
	case markerNumber:
		return ContentNumber, true
	}
	return 0, false
}

// Modifier characters, directly after the content marker.
const (
	modIgnore        = '!' // match but do not capture
	modNoSpaceBefore = 'x' // token abuts the previous one in the text
	modOptionalSpace = 'o' // whitespace before the token is optional
)

// NumberKind identifies the lexical shape of a numeric literal.
type NumberKind int

const (
	// NumberInteger matches digits only.
	NumberInteger NumberKind = iota
	// NumberDecimal matches digits with a required decimal point.
	NumberDecimal
	// NumberSciNot matches a mantissa with an e/E exponent.
	NumberSciNot
	// NumberGeneral matches any of the other three shapes.
	NumberGeneral
)

// String returns a human-readable representation of the number kind.
func (n NumberKind) String() string {
	if name, ok := numberNames[n]; ok {
		return name
	}
	return "NUMBER(?)"
}

var numberNames = map[NumberKind]string{
	NumberInteger: "integer",
	NumberDecimal: "decimal",
	NumberSciNot:  "scinot",
	NumberGeneral: "general",
}

// numberForCode maps a number code character to its kind.
func numberForCode(ch byte) (NumberKind, bool) {
	switch ch {
	case 'i':
		return NumberInteger, true
	case 'd':
		return NumberDecimal, true
	case 's':
		return NumberSciNot, true
	case 'g':
		return NumberGeneral, true
	}
	return 0, false
}

// SignMode identifies which leading signs a numeric match accepts.
type SignMode int

const (
	// SignOptional accepts a literal with or without a leading + or -.
	SignOptional SignMode = iota
	// SignNonNegative accepts an optional leading + and rejects -.
	SignNonNegative
	// SignNegative requires a leading -.
	SignNegative
	// SignExplicit requires a leading + or -.
	SignExplicit
)

// String returns a human-readable representation of the sign mode.
func (s SignMode) String() string {
	if name, ok := signNames[s]; ok {
		return name
	}
	return "SIGN(?)"
}

var signNames = map[SignMode]string{
	SignOptional:    "optional",
	SignNonNegative: "nonnegative",
	SignNegative:    "negative",
	SignExplicit:    "explicit",
}

// signForCode maps a sign code character to its mode.
func signForCode(ch byte) (SignMode, bool) {
	switch ch {
	case '.':
		return SignOptional, true
	case '+':
		return SignNonNegative, true
	case '-':
		return SignNegative, true
	case '=':
		return SignExplicit, true
	}
	return 0, false
}

// Quantity identifies how many values a token matches at its position.
// Only QuantitySingle has matching logic; QuantityMultiple is a reserved
// slot for delimited value runs and is rejected at compile time.
type Quantity int

const (
	// QuantitySingle matches exactly one value.
	QuantitySingle Quantity = iota
	// QuantityMultiple is reserved for delimited repeated values.
	QuantityMultiple
)

// String returns a human-readable representation of the quantity.
func (q Quantity) String() string {
	if q == QuantityMultiple {
		return "multiple"
	}
	return "single"
}

// quantityForCode maps a quantity selector character to its value.
func quantityForCode(ch byte) (Quantity, bool) {
	switch ch {
	case '.':
		return QuantitySingle, true
	case '+':
		return QuantityMultiple, true
	}
	return 0, false
}

// GapMode identifies the whitespace requirement between a token and the
// one before it in the matched text.
type GapMode int

const (
	// GapRequired demands at least one space or tab before the token.
	GapRequired GapMode = iota
	// GapOptional allows but does not require whitespace.
	GapOptional
	// GapNone makes the token abut the previous one directly.
	GapNone
)

// String returns a human-readable representation of the gap mode.
func (g GapMode) String() string {
	switch g {
	case GapOptional:
		return "optional"
	case GapNone:
		return "none"
	}
	return "required"
}
