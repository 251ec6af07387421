package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/shikataNai/ScopeForge/internal/errors"
)

const (
	// DefaultConfigFile is read from the working directory when no config
	// file is named explicitly.
	DefaultConfigFile = "scopeforge.toml"
	// DefaultDotEnvFile is loaded into the environment when present.
	DefaultDotEnvFile = ".env"
	// DefaultOutputDir is the working directory.
	DefaultOutputDir = "."
)

// Settings holds every knob of a scopeforge run.
type Settings struct {
	OutputDir        string `toml:"output_dir" env:"SCOPEFORGE_OUTPUT_DIR"`
	AllAddresses     bool   `toml:"all_addresses" env:"SCOPEFORGE_ALL_ADDRESSES"`
	SummaryOnly      bool   `toml:"summary_only" env:"SCOPEFORGE_SUMMARY_ONLY"`
	FailOnEmptyScope bool   `toml:"fail_on_empty_scope" env:"SCOPEFORGE_FAIL_ON_EMPTY_SCOPE"`
	IncludeNetwork   bool   `toml:"include_network" env:"SCOPEFORGE_INCLUDE_NETWORK"`
	IncludeBroadcast bool   `toml:"include_broadcast" env:"SCOPEFORGE_INCLUDE_BROADCAST"`

	Log LogSettings `toml:"log"`
}

// LogSettings configures diagnostics.
type LogSettings struct {
	Verbose bool   `toml:"verbose" env:"SCOPEFORGE_VERBOSE"`
	JSON    bool   `toml:"json" env:"SCOPEFORGE_LOG_JSON"`
	File    string `toml:"file" env:"SCOPEFORGE_LOG_FILE"`
}

// Default returns the built-in settings.
func Default() *Settings {
	return &Settings{
		OutputDir: DefaultOutputDir,
	}
}

// Validate checks that the Settings are usable.
func (s *Settings) Validate() error {
	if strings.TrimSpace(s.OutputDir) == "" {
		return fmt.Errorf("output directory cannot be empty")
	}
	return nil
}

// Load layers the defaults, a TOML file and the environment, in that order.
//
// path names the TOML file; when empty, DefaultConfigFile is used if it
// exists. A .env file in the working directory is loaded into the process
// environment first, without overriding variables that are already set.
func Load(path string) (*Settings, error) {
	s := Default()

	if path == "" {
		if _, err := os.Stat(DefaultConfigFile); err == nil {
			path = DefaultConfigFile
		}
	}
	if path != "" {
		if err := decodeFile(path, s); err != nil {
			return nil, err
		}
	}

	// The .env file is optional.
	_ = godotenv.Load(DefaultDotEnvFile)

	if err := env.Parse(s); err != nil {
		return nil, errors.ConfigError("invalid SCOPEFORGE_* environment", err)
	}

	return s, nil
}

func decodeFile(path string, s *Settings) error {
	md, err := toml.DecodeFile(path, s)
	if err != nil {
		return errors.ConfigError(fmt.Sprintf("failed to parse config %s", path), err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return errors.ConfigError(fmt.Sprintf("unknown keys in config %s: %s", path, strings.Join(keys, ", ")), nil)
	}

	return nil
}

// ResolveOutputDir expands a leading "~" and makes dir absolute.
func ResolveOutputDir(dir string) (string, error) {
	if dir == "~" || strings.HasPrefix(dir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve home directory: %w", err)
		}
		dir = filepath.Join(home, strings.TrimPrefix(dir, "~"))
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("invalid output directory %q: %w", dir, err)
	}
	return abs, nil
}
