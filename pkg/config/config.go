// Package config loads casedesk settings from .casedesk.yaml and CASEDESK_*
// environment variables.
package config

import (
	"os"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"tableflip.dev/casedesk/pkg/record"
)

const (
	// EnvConfigPath names a directory searched first for the config file.
	EnvConfigPath = "CASEDESK_CONFIG_PATH"

	fileName  = ".casedesk"
	envPrefix = "CASEDESK"
)

// ErrTagInvalid marks settings that were read but cannot be used.
var ErrTagInvalid = goerr.NewTag("invalid_config")

// Config is the effective configuration.
type Config struct {
	User     UserConfig `json:"user" yaml:"user"`
	Greeting string     `json:"greeting" yaml:"greeting"`
	Theme    string     `json:"theme" yaml:"theme"`
	LogFile  string     `json:"logFile" yaml:"logFile"`
	LogLevel string     `json:"logLevel" yaml:"logLevel"`
	// File is the config file that was read, empty when none was found.
	File string `json:"file" yaml:"file"`
}

// UserConfig is the signed-in user shown in the header.
type UserConfig struct {
	Name       string `json:"name" yaml:"name"`
	Role       string `json:"role" yaml:"role"`
	AvatarSeed string `json:"avatarSeed" yaml:"avatarSeed"`
}

// Profile converts the user settings into the record shown by the UI.
func (c *Config) Profile() record.Profile {
	return record.Profile{
		Name:         c.User.Name,
		Role:         c.User.Role,
		AvatarSeed:   c.User.AvatarSeed,
		GreetingName: c.Greeting,
	}
}

// Level parses LogLevel.
func (c *Config) Level() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.InfoLevel, goerr.Wrap(err, "invalid log level",
			goerr.V("level", c.LogLevel), goerr.T(ErrTagInvalid))
	}
	return lvl, nil
}

// IsInvalid reports whether err carries ErrTagInvalid.
func IsInvalid(err error) bool {
	return goerr.HasTag(err, ErrTagInvalid)
}

// Defaults mirrors the built-in profile so an empty config renders the
// sample dashboard unchanged.
func Defaults() map[string]interface{} {
	p := record.DefaultProfile()
	return map[string]interface{}{
		"user.name":        p.Name,
		"user.role":        p.Role,
		"user.avatar_seed": p.AvatarSeed,
		"greeting.name":    p.GreetingName,
		"theme":            "dark",
		"log.file":         "",
		"log.level":        "info",
	}
}

// Load reads the configuration. The file is searched in $CASEDESK_CONFIG_PATH,
// then dir (when set), then the working directory, then the home directory.
// A missing file is not an error.
func Load(dir string) (*Config, error) {
	v := viper.New()
	for k, val := range Defaults() {
		v.SetDefault(k, val)
	}
	v.SetConfigName(fileName) // .yaml is implicit
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if override := os.Getenv(EnvConfigPath); override != "" {
		v.AddConfigPath(override)
	}
	if dir != "" {
		expanded, err := homedir.Expand(dir)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to expand config dir", goerr.V("dir", dir))
		}
		v.AddConfigPath(expanded)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, goerr.Wrap(err, "error reading config file", goerr.T(ErrTagInvalid))
		}
	}

	cfg := &Config{
		User: UserConfig{
			Name:       v.GetString("user.name"),
			Role:       v.GetString("user.role"),
			AvatarSeed: v.GetString("user.avatar_seed"),
		},
		Greeting: v.GetString("greeting.name"),
		Theme:    strings.ToLower(strings.TrimSpace(v.GetString("theme"))),
		LogFile:  v.GetString("log.file"),
		LogLevel: v.GetString("log.level"),
		File:     v.ConfigFileUsed(),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that have a closed set of choices.
func (c *Config) Validate() error {
	switch c.Theme {
	case "dark", "light":
	default:
		return goerr.New("unknown theme", goerr.V("theme", c.Theme), goerr.T(ErrTagInvalid))
	}
	if strings.TrimSpace(c.User.Name) == "" {
		return goerr.New("user.name must not be empty", goerr.T(ErrTagInvalid))
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.LogFile != "" {
		expanded, err := homedir.Expand(c.LogFile)
		if err != nil {
			return goerr.Wrap(err, "invalid log file", goerr.V("file", c.LogFile), goerr.T(ErrTagInvalid))
		}
		c.LogFile = expanded
	}
	return nil
}
