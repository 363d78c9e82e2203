package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/numex/internal/cli/config"
	"github.com/leapstack-labs/numex/internal/cli/output"
	"github.com/leapstack-labs/numex/pkg/extract"
	"github.com/leapstack-labs/numex/pkg/grammar"
)

// ExtractOptions holds options for the extract command.
type ExtractOptions struct {
	Template string // Template file describing the block structure
	Pattern  string // Single pattern line, alternative to a template
	Format   string // Output format override
}

// fileResult pairs an input file with its extracted rows.
type fileResult struct {
	path string
	rows [][]string
}

// NewExtractCommand creates the extract command.
func NewExtractCommand() *cobra.Command {
	opts := &ExtractOptions{}
	cmd := &cobra.Command{
		Use:   "extract [files...]",
		Short: "Extract values from input files",
		Long: `Apply a compiled pattern to one or more input files and print the
captured values.

Patterns come either from a YAML template file (head/body/tail line
sets) or from a single pattern line given with --pattern. With no input
files, text is read from stdin.`,
		Example: `  # Extract with a template
  numex extract --template energies.yaml run1.out run2.out

  # Extract every integer on lines mentioning "cycles"
  numex extract --pattern '~! @!.cycles ~! #.+i ~!' run.out

  # JSON output for scripting
  numex extract -T energies.yaml -f json run.out`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if (opts.Template == "") == (opts.Pattern == "") {
				return fmt.Errorf("provide exactly one of --template or --pattern")
			}
			return runExtract(cmd, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.Template, "template", "T", "", "Template file (YAML)")
	cmd.Flags().StringVarP(&opts.Pattern, "pattern", "p", "", "Single pattern line")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json, csv")

	return cmd
}

func runExtract(cmd *cobra.Command, opts *ExtractOptions, args []string) error {
	cmdCtx := NewCommandContext(cmd, opts.Format)
	r := cmdCtx.Renderer
	logger := cmdCtx.Logger

	run, groups, err := buildRunner(cmdCtx.Cfg, opts)
	if err != nil {
		return err
	}

	// Stdin when no files are named.
	if len(args) == 0 {
		text, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		rows, err := run(string(text))
		if err != nil {
			return err
		}
		return renderRows(r, groups, rows)
	}

	results := make([]fileResult, len(args))
	g, _ := errgroup.WithContext(cmd.Context())
	for i, path := range args {
		g.Go(func() error {
			text, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			rows, err := run(string(text))
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			logger.Debug("extracted", "file", path, "rows", len(rows))
			results[i] = fileResult{path: path, rows: rows}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, res := range results {
		if len(args) > 1 {
			r.Heading(res.path)
		}
		if err := renderRows(r, groups, res.rows); err != nil {
			return err
		}
	}
	return nil
}

// buildRunner compiles the template or single pattern into a function
// producing stringified rows, plus the column groups.
func buildRunner(cfg *config.Config, opts *ExtractOptions) (func(string) ([][]string, error), []grammar.Group, error) {
	if opts.Pattern != "" {
		line, err := extract.CompileLine(opts.Pattern)
		if err != nil {
			return nil, nil, err
		}
		run := func(text string) ([][]string, error) {
			rows, err := line.FindAll(text)
			if err != nil {
				return nil, err
			}
			return stringify(rows), nil
		}
		return run, line.Groups(), nil
	}

	tmpl, err := extract.LoadFile(resolveTemplate(cfg, opts.Template))
	if err != nil {
		return nil, nil, err
	}
	compiled, err := tmpl.Compile()
	if err != nil {
		return nil, nil, err
	}
	run := func(text string) ([][]string, error) {
		blocks, err := compiled.Extract(text)
		if err != nil {
			return nil, err
		}
		var rows []extract.Row
		for _, blk := range blocks {
			rows = append(rows, blk.Body...)
		}
		return stringify(rows), nil
	}
	return run, compiled.BodyGroups(), nil
}

// resolveTemplate resolves a template path against the configured
// templates directory unless it is absolute or points at an existing
// file as given.
func resolveTemplate(cfg *config.Config, path string) string {
	if filepath.IsAbs(path) || cfg.TemplatesDir == "" {
		return path
	}
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return filepath.Join(cfg.TemplatesDir, path)
}

func stringify(rows []extract.Row) [][]string {
	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells := make([]string, 0, len(row))
		for _, v := range row {
			cells = append(cells, v.Text)
		}
		out = append(out, cells)
	}
	return out
}

func renderRows(r *output.Renderer, groups []grammar.Group, rows [][]string) error {
	cols := make([]string, 0, len(groups))
	for _, g := range groups {
		cols = append(cols, g.Name)
	}
	return r.Table(cols, rows)
}
