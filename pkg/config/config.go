// Package config loads launcher settings from PYLAUNCH_* environment variables and an optional
// YAML file. There are no command-line flags; every argument belongs to the child.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/museng3n/limit2d/pkg/common"
	"github.com/spf13/viper"
)

const (
	envPrefix       = "PYLAUNCH"
	defaultFileName = "pylaunch"
)

// Config holds all launcher configuration.
type Config struct {
	Interpreter string   `mapstructure:"interpreter"`
	ProgramName string   `mapstructure:"program_name"`
	NoPause     bool     `mapstructure:"no_pause"`
	Color       string   `mapstructure:"color"`
	LogLevel    string   `mapstructure:"log_level"`
	InheritEnv  bool     `mapstructure:"inherit_env"`
	Env         []string `mapstructure:"env"`
}

// Load reads defaults, then the config file (if any), then the environment. argv0 is only used to
// derive the default program name shown in the usage line.
func Load(argv0 string) (*Config, error) {
	v := viper.New()

	setDefaults(v, argv0)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	bindEnvVars(v)

	err := loadConfigFile(v)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// Defaults is what Load returns when no file and no PYLAUNCH_* variables are present.
func Defaults(argv0 string) *Config {
	v := viper.New()

	setDefaults(v, argv0)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic(fmt.Sprintf("defaults failed to unmarshal: %v", err))
	}

	return &cfg
}

func setDefaults(v *viper.Viper, argv0 string) {
	programName := common.DefaultProgramName
	if argv0 != "" {
		programName = filepath.Base(argv0)
	}

	v.SetDefault("interpreter", "")
	v.SetDefault("program_name", programName)
	v.SetDefault("no_pause", false)
	v.SetDefault("color", "auto")
	v.SetDefault("log_level", "warn")
	v.SetDefault("inherit_env", true)
	v.SetDefault("env", []string{})
}

func bindEnvVars(v *viper.Viper) {
	_ = v.BindEnv("interpreter", "PYLAUNCH_INTERPRETER")
	_ = v.BindEnv("program_name", "PYLAUNCH_PROGRAM_NAME")
	_ = v.BindEnv("no_pause", "PYLAUNCH_NO_PAUSE")
	_ = v.BindEnv("color", "PYLAUNCH_COLOR")
	_ = v.BindEnv("log_level", "PYLAUNCH_LOG_LEVEL")
	_ = v.BindEnv("inherit_env", "PYLAUNCH_INHERIT_ENV")
}

// loadConfigFile uses PYLAUNCH_CONFIG when set (and then the file must exist), else an optional
// pylaunch.yaml in the working directory.
func loadConfigFile(v *viper.Viper) error {
	explicit := os.Getenv(envPrefix + "_CONFIG")

	if explicit != "" {
		v.SetConfigFile(explicit)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName(defaultFileName)
		v.SetConfigType("yaml")
	}

	err := v.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if explicit == "" && errors.As(err, &notFound) {
		return nil
	}

	return fmt.Errorf("failed to read config file: %w", err)
}

// Interpreters is the candidate list for process.Lookup.
func (c *Config) Interpreters() []string {
	if c.Interpreter != "" {
		return []string{c.Interpreter}
	}

	interpreters := make([]string, len(common.DefaultInterpreters))
	copy(interpreters, common.DefaultInterpreters)

	return interpreters
}
