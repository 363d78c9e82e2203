// Package extract runs compiled numex patterns against real text.
//
// It builds on pkg/grammar in two steps the grammar core deliberately
// leaves out: composing several compiled lines into one multi-line
// document pattern (renumbering capture groups so names stay unique), and
// executing the result with a backtracking regex engine to pull out
// captured, typed values.
//
// A Template describes a repeating block of a document as three line-set
// sections: an optional head, a required body that may occur many times
// per block, and an optional tail.
package extract
