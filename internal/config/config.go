// Package config loads, validates and stores the dono configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/klabast/dono/internal/calendar"
	"github.com/klabast/dono/internal/render"
)

// Constants
const (
	DirName         = "dono"
	FileName        = "dono.toml"
	TmpSuffix       = ".tmp"
	FilePermissions = 0600
	DirPermissions  = 0755

	// TokenEnv overrides github_user_token when set
	TokenEnv = "GITHUB_TOKEN"
	// TokenURL is where users create a personal access token
	TokenURL = "https://github.com/settings/tokens"
)

var (
	// ErrConfigCreated is returned by Load after it wrote a default config file
	ErrConfigCreated = errors.New("config file created")
	// ErrInvalidConfig is returned when the config file cannot be parsed
	ErrInvalidConfig = errors.New("config file is invalid, please check your config file")
	// ErrMissingToken is returned when no GitHub token is configured
	ErrMissingToken = errors.New("GitHub user token field in configuration file is empty")
	// ErrInvalidColor is returned for colors that are not #rrggbb
	ErrInvalidColor = errors.New("not a valid hex color code")
	// ErrInvalidWeekday is returned for an unknown week_start_day
	ErrInvalidWeekday = errors.New("not a valid week start day")
	// ErrInvalidGlyph is returned when fill or empty is blank
	ErrInvalidGlyph = errors.New("glyph must not be empty")
)

// Colors is the five-step palette used when native colors are off
type Colors struct {
	Empty  string `toml:"empty"`
	Low    string `toml:"low"`
	Medium string `toml:"medium"`
	High   string `toml:"high"`
	Max    string `toml:"max"`
}

// Config represents the contents of dono.toml
type Config struct {
	GitHubUserToken string `toml:"github_user_token"`
	NativeColors    bool   `toml:"native_colors"`
	Fill            string `toml:"fill"`
	Empty           string `toml:"empty"`
	Colors          Colors `toml:"colors"`
	WeekStartDay    string `toml:"week_start_day"`
}

// Default returns the configuration written on first run
func Default() Config {
	return Config{
		NativeColors: false,
		Fill:         render.DefaultGlyph,
		Empty:        render.DefaultGlyph,
		Colors: Colors{
			Empty:  "#161b22",
			Low:    "#0e4429",
			Medium: "#006d32",
			High:   "#26a641",
			Max:    "#39d353",
		},
		WeekStartDay: "Sunday",
	}
}

// DefaultPath returns the config file location inside the user config directory
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("could not find config directory: %w", err)
	}
	return filepath.Join(dir, DirName, FileName), nil
}

// Load reads the config file at path. A missing file is replaced by the
// defaults and ErrConfigCreated is returned together with them.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
		cfg := Default()
		if err := cfg.Save(path); err != nil {
			return Config{}, err
		}
		cfg.applyEnvOverrides()
		return cfg, ErrConfigCreated
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, err
	}
	cfg.applyEnvOverrides()
	return cfg, nil
}

// Parse decodes TOML on top of the defaults, so missing keys keep their default
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return cfg, nil
}

// applyEnvOverrides lets GITHUB_TOKEN replace the stored token
func (c *Config) applyEnvOverrides() {
	if token := strings.TrimSpace(os.Getenv(TokenEnv)); token != "" {
		c.GitHubUserToken = token
	}
}

// Validate checks everything that must hold before a render is attempted
func (c Config) Validate() error {
	if strings.TrimSpace(c.GitHubUserToken) == "" {
		return ErrMissingToken
	}
	if err := c.ValidateDisplay(); err != nil {
		return err
	}
	return nil
}

// ValidateDisplay checks colors, glyphs and the week start day
func (c Config) ValidateDisplay() error {
	for _, color := range []string{c.Colors.Empty, c.Colors.Low, c.Colors.Medium, c.Colors.High, c.Colors.Max} {
		if !calendar.IsHexColor(color) {
			return fmt.Errorf("color %s is %w", color, ErrInvalidColor)
		}
	}
	if c.Fill == "" || c.Empty == "" {
		return ErrInvalidGlyph
	}
	if _, err := calendar.ParseWeekday(c.WeekStartDay); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidWeekday, err)
	}
	return nil
}

// RenderOptions converts the display settings into render options
func (c Config) RenderOptions() (render.Options, error) {
	if err := c.ValidateDisplay(); err != nil {
		return render.Options{}, err
	}

	weekStart, _ := calendar.ParseWeekday(c.WeekStartDay)
	policy := render.PolicyCustom
	if c.NativeColors {
		policy = render.PolicyNative
	}

	return render.Options{
		Policy:  policy,
		Fill:    c.Fill,
		Empty:   c.Empty,
		Palette: render.Palette{
			Empty:  calendar.MustParseColor(c.Colors.Empty),
			Low:    calendar.MustParseColor(c.Colors.Low),
			Medium: calendar.MustParseColor(c.Colors.Medium),
			High:   calendar.MustParseColor(c.Colors.High),
			Max:    calendar.MustParseColor(c.Colors.Max),
		},
		WeekStart: weekStart,
	}, nil
}

// MaskedToken returns the token with all but its last four characters hidden
func (c Config) MaskedToken() string {
	token := c.GitHubUserToken
	if len(token) <= 4 {
		return strings.Repeat("*", len(token))
	}
	return strings.Repeat("*", len(token)-4) + token[len(token)-4:]
}

// Redacted returns a copy that is safe to print
func (c Config) Redacted() Config {
	c.GitHubUserToken = c.MaskedToken()
	return c
}
