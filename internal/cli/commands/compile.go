package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/numex/internal/cli/output"
	"github.com/leapstack-labs/numex/pkg/extract"
	"github.com/leapstack-labs/numex/pkg/grammar"
)

// CompileOptions holds options for the compile command.
type CompileOptions struct {
	Template string // Template file to compile instead of a pattern line
	Format   string // Output format override
}

// NewCompileCommand creates the compile command.
func NewCompileCommand() *cobra.Command {
	opts := &CompileOptions{}
	cmd := &cobra.Command{
		Use:   "compile [pattern]",
		Short: "Compile a pattern and show the generated regex",
		Long: `Compile a single pattern line or a template file and print the
generated regular expression together with its capture groups.

Useful for debugging a pattern before running an extraction.`,
		Example: `  # Compile a single pattern line
  numex compile '~! @!.contains ~! #.+i ~!'

  # Compile a template file
  numex compile --template orca.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Template == "" && len(args) == 0 {
				return fmt.Errorf("provide a pattern line or --template")
			}
			pattern := ""
			if len(args) > 0 {
				pattern = args[0]
			}
			return runCompile(cmd, opts, pattern)
		},
	}

	cmd.Flags().StringVarP(&opts.Template, "template", "T", "", "Template file to compile")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json, csv")

	return cmd
}

func runCompile(cmd *cobra.Command, opts *CompileOptions, pattern string) error {
	cmdCtx := NewCommandContext(cmd, opts.Format)
	r := cmdCtx.Renderer

	if opts.Template != "" {
		tmpl, err := extract.LoadFile(resolveTemplate(cmdCtx.Cfg, opts.Template))
		if err != nil {
			return err
		}
		compiled, err := tmpl.Compile()
		if err != nil {
			return err
		}

		r.Heading("Document pattern")
		fmt.Fprintln(cmd.OutOrStdout(), compiled.Pattern())
		r.Heading("Body groups")
		return groupTable(r, compiled.BodyGroups())
	}

	line, err := extract.CompileLine(pattern)
	if err != nil {
		return err
	}

	r.Heading("Pattern")
	fmt.Fprintln(cmd.OutOrStdout(), line.Pattern())
	r.Heading("Groups")
	return groupTable(r, line.Groups())
}

func groupTable(r *output.Renderer, groups []grammar.Group) error {
	rows := make([][]string, 0, len(groups))
	for _, g := range groups {
		number, sign := "", ""
		if g.Content == grammar.ContentNumber {
			number = g.Number.String()
			sign = g.Sign.String()
		}
		rows = append(rows, []string{g.Name, g.Content.String(), number, sign})
	}
	return r.Table([]string{"group", "content", "number", "sign"}, rows)
}
