package extract

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/leapstack-labs/numex/pkg/grammar"
)

// groupNameRx locates the capture-group names the grammar compiler
// emits. Literal token text cannot produce a false hit: it is
// regex-escaped on render, so a "(?<" sequence never survives verbatim.
//
// This runs over our own generated pattern text, not over matched input,
// so the standard library engine is fine here.
var groupNameRx = regexp.MustCompile(`\(\?<` + grammar.GroupPrefix + `(\d+)>`)

// Renumber rewrites every capture-group name in a compiled line regex by
// a fixed offset. The grammar compiler numbers groups from 1 on every
// call, so lines composed into one pattern must be shifted to keep names
// unique.
func Renumber(regex string, offset int) string {
	if offset == 0 {
		return regex
	}
	return groupNameRx.ReplaceAllStringFunc(regex, func(m string) string {
		n, err := strconv.Atoi(m[len(`(?<`)+len(grammar.GroupPrefix) : len(m)-1])
		if err != nil {
			// Cannot happen: the pattern only matches digits.
			return m
		}
		return fmt.Sprintf("(?<%s%d>", grammar.GroupPrefix, n+offset)
	})
}
