// Command numex extracts labeled numeric and string values from
// semi-structured text using compact line patterns.
package main

import (
	"os"

	"github.com/leapstack-labs/numex/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
