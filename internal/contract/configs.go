package contract

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/huangsam/heatgrid/schema"
)

// Default values for configuration.
const (
	DefaultBaseURL  = "https://github.com"
	DefaultTimeout  = 30 * time.Second
	DefaultWidth    = 80
	MaxSlugLength   = 38
	DefaultHue      = schema.GreenHue
	DefaultOutput   = schema.TextOut
	DefaultColorOut = "yes"
)

var (
	slugPattern = regexp.MustCompile(`^[a-zA-Z0-9-]{0,38}$`)
	yearPattern = regexp.MustCompile(`^\d{4}$`)
)

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// Config holds the runtime configuration for a heatmap run.
// This struct is the "final, validated" config.
type Config struct {
	Slug       string // GitHub profile slug, e.g. huangsam
	Year       string // Calendar year to fetch, empty for the rolling year
	Hue        schema.Hue
	Output     schema.OutputMode
	OutputFile string
	Detail     bool // Print the activity summary table after the grid
	Fit        bool // Drop the oldest weeks so the grid fits the terminal
	Width      int  // Terminal width override (0 = auto-detect)

	BaseURL string
	Timeout time.Duration

	UseColors bool // Emit truecolor escapes for glyphs and labels
	Verbose   bool // Trace requests on stderr
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	SlugStr string

	Year        string `mapstructure:"year"`
	Color       string `mapstructure:"color"`
	Output      string `mapstructure:"output"`
	OutputFile  string `mapstructure:"output-file"`
	Detail      bool   `mapstructure:"detail"`
	Fit         bool   `mapstructure:"fit"`
	Width       int    `mapstructure:"width"`
	BaseURL     string `mapstructure:"base-url"`
	Timeout     string `mapstructure:"timeout"`
	ColorOutput string `mapstructure:"color-output"`
	Verbose     bool   `mapstructure:"verbose"`
}

// Clone returns a copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := processProfileInputs(cfg, input); err != nil {
		return err
	}
	if err := processOutputInputs(cfg, input); err != nil {
		return err
	}
	if err := processTransportInputs(cfg, input); err != nil {
		return err
	}
	return nil
}

// ProcessServerInputs validates only what a long-running server needs,
// since the profile is supplied per request there.
func ProcessServerInputs(cfg *Config, input *ConfigRawInput) error {
	if err := processOutputInputs(cfg, input); err != nil {
		return err
	}
	return processTransportInputs(cfg, input)
}

// ParseSlug validates a GitHub profile slug.
func ParseSlug(value string) (string, error) {
	if !slugPattern.MatchString(value) {
		return "", fmt.Errorf("slug must only contain alphanumeric characters and/or hyphens, up to %d characters (received %q)", MaxSlugLength, value)
	}
	return value, nil
}

// ParseYear validates a calendar year. An empty value means no year.
func ParseYear(value string) (string, error) {
	if value == "" {
		return "", nil
	}
	if !yearPattern.MatchString(value) {
		return "", fmt.Errorf("year must be a valid calendar year, e.g. 2022 (received %q)", value)
	}
	return value, nil
}

// processProfileInputs validates which profile and year to fetch.
func processProfileInputs(cfg *Config, input *ConfigRawInput) error {
	slug, err := ParseSlug(strings.TrimSpace(input.SlugStr))
	if err != nil {
		return err
	}
	if slug == "" {
		return fmt.Errorf("slug is required")
	}
	cfg.Slug = slug

	year, err := ParseYear(strings.TrimSpace(input.Year))
	if err != nil {
		return err
	}
	cfg.Year = year
	return nil
}

// processOutputInputs validates the rendering and output settings.
func processOutputInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.OutputFile = input.OutputFile
	cfg.Detail = input.Detail
	cfg.Fit = input.Fit
	cfg.Verbose = input.Verbose

	// --- 1. Hue Validation ---
	color := input.Color
	if color == "" {
		color = string(DefaultHue)
	}
	hue, ok := schema.ParseHue(color)
	if !ok {
		return fmt.Errorf("invalid color '%s'. must be red, green, blue", input.Color)
	}
	cfg.Hue = hue

	// --- 2. Output Validation ---
	output := input.Output
	if output == "" {
		output = string(DefaultOutput)
	}
	cfg.Output = schema.OutputMode(strings.ToLower(output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", input.Output)
	}
	if cfg.Output == schema.ParquetOut && cfg.OutputFile == "" {
		return fmt.Errorf("--output-file is required for parquet output")
	}

	// --- 3. Width Validation ---
	if input.Width < 0 {
		return fmt.Errorf("width cannot be negative (received %d)", input.Width)
	}
	cfg.Width = input.Width

	// --- 4. Color Output Flag ---
	colorOut := input.ColorOutput
	if colorOut == "" {
		colorOut = DefaultColorOut
	}
	colors, err := ParseBoolString(colorOut)
	if err != nil {
		return fmt.Errorf("invalid --color-output value: %w", err)
	}
	cfg.UseColors = colors

	return nil
}

// processTransportInputs validates how the profile page is fetched.
func processTransportInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(input.BaseURL), "/")
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if !strings.HasPrefix(cfg.BaseURL, "http://") && !strings.HasPrefix(cfg.BaseURL, "https://") {
		return fmt.Errorf("base-url must start with http:// or https:// (received %q)", input.BaseURL)
	}

	cfg.Timeout = DefaultTimeout
	if input.Timeout != "" {
		timeout, err := time.ParseDuration(input.Timeout)
		if err != nil {
			return fmt.Errorf("invalid timeout '%s': %w", input.Timeout, err)
		}
		if timeout <= 0 {
			return fmt.Errorf("timeout must be greater than 0 (received %s)", input.Timeout)
		}
		cfg.Timeout = timeout
	}
	return nil
}

// ProcessProfilingConfig enables profiling when a file prefix is given.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) error {
	profilePrefix = strings.TrimSpace(profilePrefix)
	if profilePrefix != "" {
		profile.Enabled = true
		profile.Prefix = profilePrefix
	}
	return nil
}
