/*
Package config manages the TOML config for finglish.

Values come from, in increasing priority: built-in defaults, the TOML file,
and FINGLISH_* environment variables.

	[convert]
	max_word_size = 15
	cutoff = 3
	display_limit = 10

	[data]
	dir = ""
	beginning = "f2p-beginning.txt"

	[server]
	max_limit = 64
	max_phrase_len = 512
	cache_size = 4096

	[log]
	level = "warn"

An empty data.dir means the data files compiled into the binary.
*/
package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/ilyakaznacheev/cleanenv"

	"github.com/bastiangx/finglish/internal/utils"
	"github.com/bastiangx/finglish/pkg/dictionary"
)

// Config holds the entire config structure
type Config struct {
	Convert ConvertConfig `toml:"convert"`
	Data    DataConfig    `toml:"data"`
	Server  ServerConfig  `toml:"server"`
	Log     LogConfig     `toml:"log"`
}

// ConvertConfig holds conversion defaults.
type ConvertConfig struct {
	MaxWordSize  int `toml:"max_word_size" env:"FINGLISH_MAX_WORD_SIZE"`
	Cutoff       int `toml:"cutoff"        env:"FINGLISH_CUTOFF"`
	DisplayLimit int `toml:"display_limit" env:"FINGLISH_DISPLAY_LIMIT"`
}

// DataConfig locates the data files.
type DataConfig struct {
	Dir         string `toml:"dir"         env:"FINGLISH_DATA_DIR"`
	Beginning   string `toml:"beginning"   env:"FINGLISH_DATA_BEGINNING"`
	Middle      string `toml:"middle"      env:"FINGLISH_DATA_MIDDLE"`
	Ending      string `toml:"ending"      env:"FINGLISH_DATA_ENDING"`
	Frequencies string `toml:"frequencies" env:"FINGLISH_DATA_FREQUENCIES"`
	Dictionary  string `toml:"dictionary"  env:"FINGLISH_DATA_DICTIONARY"`
}

// ServerConfig has server related options.
type ServerConfig struct {
	MaxLimit     int `toml:"max_limit"      env:"FINGLISH_SERVER_MAX_LIMIT"`
	MaxPhraseLen int `toml:"max_phrase_len" env:"FINGLISH_SERVER_MAX_PHRASE_LEN"`
	CacheSize    int `toml:"cache_size"     env:"FINGLISH_SERVER_CACHE_SIZE"`
}

// LogConfig holds logging options.
type LogConfig struct {
	Level string `toml:"level" env:"FINGLISH_LOG_LEVEL"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	files := dictionary.DefaultFiles()
	return &Config{
		Convert: ConvertConfig{
			MaxWordSize:  15,
			Cutoff:       3,
			DisplayLimit: 10,
		},
		Data: DataConfig{
			Dir:         "",
			Beginning:   files.Beginning,
			Middle:      files.Middle,
			Ending:      files.Ending,
			Frequencies: files.Frequencies,
			Dictionary:  files.Dictionary,
		},
		Server: ServerConfig{
			MaxLimit:     64,
			MaxPhraseLen: 512,
			CacheSize:    4096,
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// Files returns the data file names as a dictionary.Files.
func (c *Config) Files() dictionary.Files {
	return dictionary.Files{
		Beginning:   c.Data.Beginning,
		Middle:      c.Data.Middle,
		Ending:      c.Data.Ending,
		Frequencies: c.Data.Frequencies,
		Dictionary:  c.Data.Dictionary,
	}
}

// ErrInvalid wraps every Validate failure.
var ErrInvalid = errors.New("invalid config")

// Validate rejects values the converter or server cannot work with.
func (c *Config) Validate() error {
	checks := []struct {
		name  string
		value int
		min   int
	}{
		{"convert.max_word_size", c.Convert.MaxWordSize, 1},
		{"convert.cutoff", c.Convert.Cutoff, 1},
		{"convert.display_limit", c.Convert.DisplayLimit, 1},
		{"server.max_limit", c.Server.MaxLimit, 1},
		{"server.max_phrase_len", c.Server.MaxPhraseLen, 1},
		{"server.cache_size", c.Server.CacheSize, 0},
	}
	for _, check := range checks {
		if check.value < check.min {
			return fmt.Errorf("%w: %s must be >= %d, got %d", ErrInvalid, check.name, check.min, check.value)
		}
	}

	files := c.Files()
	for _, name := range []string{files.Beginning, files.Middle, files.Ending, files.Frequencies, files.Dictionary} {
		if name == "" {
			return fmt.Errorf("%w: data file names must not be empty", ErrInvalid)
		}
	}

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalid, err)
	}
	return nil
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return fromEnv(DefaultConfig()), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return fromEnv(config), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return fromEnv(config), nil
	}

	return LoadConfig(configPath)
}

// LoadConfig loads from a TOML file, then applies environment overrides.
// A file that does not decode cleanly is salvaged section by section.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := cleanenv.ReadConfig(configPath, config); err != nil {
		log.Warnf("TOML parsing error in config file %s: %v. Attempting partial recovery...", configPath, err)
		return tryPartialParse(configPath)
	}
	return config, nil
}

// fromEnv applies FINGLISH_* overrides; a bad variable is logged and ignored.
func fromEnv(config *Config) *Config {
	if err := cleanenv.ReadEnv(config); err != nil {
		log.Warnf("Ignoring environment overrides: %v", err)
	}
	return config
}

// tryPartialParse attempts to parse a TOML file
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return fromEnv(config), nil
	}

	if section, ok := utils.ExtractSection(tempConfig, "convert"); ok {
		extractConvertConfig(section, &config.Convert)
	}
	if section, ok := utils.ExtractSection(tempConfig, "data"); ok {
		extractDataConfig(section, &config.Data)
	}
	if section, ok := utils.ExtractSection(tempConfig, "server"); ok {
		extractServerConfig(section, &config.Server)
	}
	if section, ok := utils.ExtractSection(tempConfig, "log"); ok {
		if val, ok := utils.ExtractString(section, "level"); ok {
			config.Log.Level = val
		}
	}
	return fromEnv(config), nil
}

func extractConvertConfig(data map[string]any, convert *ConvertConfig) {
	if val, ok := utils.ExtractInt64(data, "max_word_size"); ok {
		convert.MaxWordSize = val
	}
	if val, ok := utils.ExtractInt64(data, "cutoff"); ok {
		convert.Cutoff = val
	}
	if val, ok := utils.ExtractInt64(data, "display_limit"); ok {
		convert.DisplayLimit = val
	}
}

func extractDataConfig(data map[string]any, dataConfig *DataConfig) {
	fields := map[string]*string{
		"dir":         &dataConfig.Dir,
		"beginning":   &dataConfig.Beginning,
		"middle":      &dataConfig.Middle,
		"ending":      &dataConfig.Ending,
		"frequencies": &dataConfig.Frequencies,
		"dictionary":  &dataConfig.Dictionary,
	}
	for key, field := range fields {
		if val, ok := utils.ExtractString(data, key); ok {
			*field = val
		}
	}
}

func extractServerConfig(data map[string]any, server *ServerConfig) {
	if val, ok := utils.ExtractInt64(data, "max_limit"); ok {
		server.MaxLimit = val
	}
	if val, ok := utils.ExtractInt64(data, "max_phrase_len"); ok {
		server.MaxPhraseLen = val
	}
	if val, ok := utils.ExtractInt64(data, "cache_size"); ok {
		server.CacheSize = val
	}
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}
