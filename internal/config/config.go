package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const envPrefix = "VOC"

type Config struct {
	Paths       PathsConfig       `yaml:"paths"`
	Analysis    AnalysisConfig    `yaml:"analysis"`
	Output      OutputConfig      `yaml:"output"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
	Hooks       HooksConfig       `yaml:"hooks"`
	Watch       WatchConfig       `yaml:"watch"`
}

type PathsConfig struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
}

type AnalysisConfig struct {
	MaxConversations int `yaml:"max_conversations"`
}

type OutputConfig struct {
	Suffix string `yaml:"suffix"`
	Pretty *bool  `yaml:"pretty"`
	Docx   bool   `yaml:"docx"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

type HooksConfig struct {
	PostRun CommandConfig `yaml:"post_run"`
}

type CommandConfig struct {
	Command string   `yaml:"command"`
	Args    []string `yaml:"args"`
	Dir     string   `yaml:"dir"`
}

type WatchConfig struct {
	Debounce time.Duration `yaml:"debounce"`
}

// envOverrides are read from VOC_* variables and win over the file.
type envOverrides struct {
	Input            string `envconfig:"INPUT"`
	Output           string `envconfig:"OUTPUT"`
	MaxConversations int    `envconfig:"MAX_CONVERSATIONS"`
	MaxConcurrent    int    `envconfig:"MAX_CONCURRENT"`
	LogLevel         string `envconfig:"LOG_LEVEL"`
}

// Load reads the YAML file at path, then a local .env file if present,
// then applies VOC_* environment overrides. Defaults are filled by Validate.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyEnv() error {
	var env envOverrides
	if err := envconfig.Process(envPrefix, &env); err != nil {
		return fmt.Errorf("read environment: %w", err)
	}
	if env.Input != "" {
		c.Paths.Input = env.Input
	}
	if env.Output != "" {
		c.Paths.Output = env.Output
	}
	if env.MaxConversations > 0 {
		c.Analysis.MaxConversations = env.MaxConversations
	}
	if env.MaxConcurrent > 0 {
		c.Performance.MaxConcurrent = env.MaxConcurrent
	}
	if env.LogLevel != "" {
		c.Logging.Level = env.LogLevel
	}
	return nil
}

// PrettyJSON reports whether artifacts are written indented. Defaults to true.
func (c *Config) PrettyJSON() bool {
	return c.Output.Pretty == nil || *c.Output.Pretty
}

func (c *Config) Validate() error {
	if c.Paths.Input == "" {
		return fmt.Errorf("paths.input is required")
	}
	if c.Paths.Output == "" {
		return fmt.Errorf("paths.output is required")
	}
	if c.Analysis.MaxConversations < 0 {
		return fmt.Errorf("analysis.max_conversations must be >= 0")
	}
	if c.Performance.MaxConcurrent < 0 {
		return fmt.Errorf("performance.max_concurrent must be >= 0")
	}
	if c.Hooks.PostRun.Command == "" && len(c.Hooks.PostRun.Args) > 0 {
		return fmt.Errorf("hooks.post_run.command is required when args are set")
	}

	if c.Analysis.MaxConversations == 0 {
		c.Analysis.MaxConversations = 10000
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 4
	}
	if c.Output.Suffix == "" {
		c.Output.Suffix = "_dpd"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
	if c.Watch.Debounce <= 0 {
		c.Watch.Debounce = 500 * time.Millisecond
	}

	return nil
}
