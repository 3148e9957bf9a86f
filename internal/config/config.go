/*
Package config manages TOML config for tuning the abbreviation engine.

None of these values change the ISO-4 semantics the engine implements;
they tune the internal data structures (bucket size of the prefix tree,
accepted appendix characters) and are exposed so a host application can
retune them without recompiling, the way WordServe exposes dictionary
and server knobs.
*/
package config

import (
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/iso4nlp/abbrev/internal/utils"
)

// Config holds the entire tunable surface of the engine.
type Config struct {
	Tree   TreeConfig   `toml:"tree"`
	Match  MatchConfig  `toml:"match"`
	Logger LoggerConfig `toml:"logger"`
}

// TreeConfig controls the bucketed prefix tree (internal/patterntree).
type TreeConfig struct {
	// MaxNodeSize is the bucket-overflow threshold before a node splits.
	MaxNodeSize int `toml:"max_node_size"`
}

// MatchConfig controls the single-pattern matcher and planner (pkg/engine).
type MatchConfig struct {
	// AppendixChars is the set of characters a tolerated flectional
	// suffix may be made of, matched 0-3 times after a pattern with no
	// end-dash.
	AppendixChars string `toml:"appendix_chars"`
	// MaxAppendixLen bounds how many AppendixChars characters are
	// tolerated after a pattern body.
	MaxAppendixLen int `toml:"max_appendix_len"`
	// MinPatternLen rejects LTWA records whose trimmed pattern is
	// shorter than this during parsing.
	MinPatternLen int `toml:"min_pattern_len"`
}

// LoggerConfig controls construction-time diagnostics.
type LoggerConfig struct {
	Level string `toml:"level"`
	// ReportTimestamp prefixes each log line with its time, the way
	// cmd/iso4's -d flag does for interactive debugging.
	ReportTimestamp bool `toml:"report_timestamp"`
}

// DefaultConfig returns a Config with the values this specification requires.
func DefaultConfig() *Config {
	return &Config{
		Tree: TreeConfig{
			MaxNodeSize: 5,
		},
		Match: MatchConfig{
			AppendixChars:  "iaesn'’",
			MaxAppendixLen: 3,
			MinPatternLen:  3,
		},
		Logger: LoggerConfig{
			Level:           "warn",
			ReportTimestamp: false,
		},
	}
}

// LoadConfig loads a Config from a TOML file, falling back to defaults for
// any field the file does not set.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()
	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	return config, nil
}

// tryPartialParse attempts a best-effort parse of a TOML file, keeping
// defaults for any section that fails to decode.
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if treeSection, ok := utils.ExtractSection(tempConfig, "tree"); ok {
		if val, ok := utils.ExtractInt64(treeSection, "max_node_size"); ok {
			config.Tree.MaxNodeSize = val
		}
	}
	if matchSection, ok := utils.ExtractSection(tempConfig, "match"); ok {
		if val, ok := utils.ExtractInt64(matchSection, "max_appendix_len"); ok {
			config.Match.MaxAppendixLen = val
		}
		if val, ok := utils.ExtractInt64(matchSection, "min_pattern_len"); ok {
			config.Match.MinPatternLen = val
		}
		if val, ok := utils.ExtractString(matchSection, "appendix_chars"); ok {
			config.Match.AppendixChars = val
		}
	}
	if loggerSection, ok := utils.ExtractSection(tempConfig, "logger"); ok {
		if val, ok := utils.ExtractString(loggerSection, "level"); ok {
			config.Logger.Level = val
		}
		if val, ok := utils.ExtractBool(loggerSection, "report_timestamp"); ok {
			config.Logger.ReportTimestamp = val
		}
	}

	return config, nil
}

// SaveConfig writes a Config to a TOML file, creating parent directories
// as needed.
func SaveConfig(config *Config, configPath string) error {
	if err := utils.EnsureDir(filepath.Dir(configPath)); err != nil {
		return err
	}
	return utils.SaveTOMLFile(config, configPath)
}

// InitConfig loads the config at configPath, creating it with defaults if
// it does not yet exist.
func InitConfig(configPath string) (*Config, error) {
	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("failed to create default config file at %s: %v. Using built-in defaults.", configPath, err)
			return DefaultConfig(), nil
		}
		return config, nil
	}
	config, err := LoadConfig(configPath)
	if err != nil {
		log.Warnf("failed to load config from %s: %v. Using built-in defaults.", configPath, err)
		return DefaultConfig(), nil
	}
	return config, nil
}
