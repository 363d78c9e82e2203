// Package grammar compiles the numex line-pattern notation into regular
// expressions.
//
// A pattern line is a sequence of whitespace-separated tokens. Each token
// starts with a content marker (~ for free text, @ for an exact literal,
// # for a number), followed by optional modifier characters (! suppresses
// the capture group, x removes the required whitespace before the token,
// o makes it optional), followed by a quantity selector and the
// content-specific suffix. Literal tokens carry their text verbatim;
// number tokens carry a sign code (. optional, + non-negative, - negative,
// = explicit) and a number code (i integer, d decimal, s scientific,
// g any of the three).
//
// CompileLine turns one pattern line into a single line-anchored regex with
// named capture groups cap1..capN, numbered left to right over the
// capturing tokens. Compilation is pure: the same pattern always produces
// the same regex, and the package holds no state across calls.
//
// The generated dialect uses lookbehind and lookahead assertions and is
// intended for a backtracking engine such as github.com/dlclark/regexp2;
// it is not compatible with the standard library's regexp package.
package grammar
