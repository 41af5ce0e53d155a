package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	// Output locations
	OutputDir  string `mapstructure:"output_dir" yaml:"output_dir"`
	CleanedCSV string `mapstructure:"cleaned_csv" yaml:"cleaned_csv"`
	ChartsDir  string `mapstructure:"charts_dir" yaml:"charts_dir"`

	// Optional SQLite export
	SQLiteEnabled bool   `mapstructure:"sqlite_enabled" yaml:"sqlite_enabled"`
	SQLitePath    string `mapstructure:"sqlite_path" yaml:"sqlite_path"`

	// Profiling
	TopLocations int `mapstructure:"top_locations" yaml:"top_locations"`

	// Modeling
	Trees        int     `mapstructure:"trees" yaml:"trees"`
	Seed         int64   `mapstructure:"seed" yaml:"seed"`
	TestFraction float64 `mapstructure:"test_fraction" yaml:"test_fraction"`
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.foodlens/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".foodlens")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("FOODLENS")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("output_dir", "foodlens-out")
	v.SetDefault("cleaned_csv", "listings_clean.csv")
	v.SetDefault("charts_dir", "charts")
	v.SetDefault("sqlite_enabled", false)
	v.SetDefault("sqlite_path", "listings.sqlite")
	v.SetDefault("top_locations", 10)
	v.SetDefault("trees", 100)
	v.SetDefault("seed", 42)
	v.SetDefault("test_fraction", 0.2)

	// Config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".foodlens")
		_ = os.MkdirAll(dir, 0o755)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.TestFraction <= 0 || c.TestFraction >= 1 {
		return nil, fmt.Errorf("test_fraction must be in (0, 1), got %v", c.TestFraction)
	}
	if c.Trees < 1 {
		return nil, fmt.Errorf("trees must be positive, got %d", c.Trees)
	}
	return &c, nil
}

// CleanedCSVPath resolves the cleaned-export path under the output dir.
func (c *Global) CleanedCSVPath() string {
	return filepath.Join(c.OutputDir, c.CleanedCSV)
}

// ChartsPath resolves the charts directory under the output dir.
func (c *Global) ChartsPath() string {
	return filepath.Join(c.OutputDir, c.ChartsDir)
}

// SQLiteDBPath resolves the SQLite export path under the output dir.
func (c *Global) SQLiteDBPath() string {
	return filepath.Join(c.OutputDir, c.SQLitePath)
}
