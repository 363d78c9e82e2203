package extract

import (
	"fmt"
	"strconv"

	"github.com/leapstack-labs/numex/pkg/grammar"
)

// Value is one captured substring together with the group that produced
// it. The grammar guarantees the text is syntactically valid for the
// group's number kind; coercion to a typed value happens here.
type Value struct {
	Text    string
	Group   grammar.Group
	Matched bool // false when the group's line was optional and absent
}

// Row is the ordered set of values captured by one match of a line set.
type Row []Value

// Int parses the value as a signed integer.
func (v Value) Int() (int64, error) {
	if !v.Matched {
		return 0, fmt.Errorf("group %s did not match", v.Group.Name)
	}
	return strconv.ParseInt(v.Text, 10, 64)
}

// Float parses the value as a float. Scientific notation parses directly.
func (v Value) Float() (float64, error) {
	if !v.Matched {
		return 0, fmt.Errorf("group %s did not match", v.Group.Name)
	}
	return strconv.ParseFloat(v.Text, 64)
}

// Typed coerces the value according to its originating token: int64 for
// integer number tokens, float64 for the other number kinds, and the raw
// string for literal and free-text tokens. An absent value yields nil.
func (v Value) Typed() (any, error) {
	if !v.Matched {
		return nil, nil
	}
	if v.Group.Content != grammar.ContentNumber {
		return v.Text, nil
	}
	if v.Group.Number == grammar.NumberInteger {
		return v.Int()
	}
	return v.Float()
}

func (v Value) String() string {
	return v.Text
}
