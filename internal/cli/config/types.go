// Package config provides configuration management for the numex CLI.
package config

// Config holds all CLI configuration options.
type Config struct {
	TemplatesDir string `koanf:"templates_dir"`
	OutputFormat string `koanf:"output"`
	Verbose      bool   `koanf:"verbose"`

	// ProjectRoot is where the config file was found; relative template
	// paths resolve against it. Not itself configurable.
	ProjectRoot string `koanf:"-"`
}

// Default configuration values.
const (
	DefaultTemplatesDir = "templates"
	DefaultOutput       = "auto" // TTY=text, non-TTY=markdown
)
