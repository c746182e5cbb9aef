package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/nickyhof/StoreDB/core"
)

// Config holds the shell settings. Values come from the optional YAML file
// and are overridden by flags that were set explicitly.
type Config struct {
	DataDir     string `yaml:"data_dir"`
	History     bool   `yaml:"history"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
	LogLevel    string `yaml:"log_level"`
	LogFile     string `yaml:"log_file"`
	HistoryFile string `yaml:"history_file"`
}

func defaultConfig() Config {
	return Config{
		AuthorName:  "StoreDB",
		AuthorEmail: "cli@storedb.local",
		LogLevel:    "warn",
		HistoryFile: defaultHistoryPath(),
	}
}

func (c Config) Identity() core.Identity {
	return core.Identity{Name: c.AuthorName, Email: c.AuthorEmail}
}

// loadConfigFile merges the YAML file at path over cfg. A missing file is
// only an error when the path was given explicitly.
func loadConfigFile(path string, cfg Config, required bool) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// parseConfig reads flags from args, then the config file, then applies
// the flags that were set.
func parseConfig(args []string) (Config, error) {
	fs := flag.NewFlagSet("storedb", flag.ContinueOnError)
	configPath := fs.String("config", "", "YAML config file (default ~/.storedb.yaml)")
	dataDir := fs.String("baseDir", "", "Directory for database files (memory when empty)")
	history := fs.Bool("history", false, "Commit every save to a git repository in baseDir")
	userName := fs.String("name", "", "Author name for history commits")
	userEmail := fs.String("email", "", "Author email for history commits")
	logLevel := fs.String("logLevel", "", "Log level: debug, info, warn, error")
	logFile := fs.String("logFile", "", "Write logs to this file instead of stderr")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := defaultConfig()
	var err error
	if *configPath != "" {
		cfg, err = loadConfigFile(*configPath, cfg, true)
	} else if home, homeErr := os.UserHomeDir(); homeErr == nil {
		cfg, err = loadConfigFile(filepath.Join(home, ".storedb.yaml"), cfg, false)
	}
	if err != nil {
		return Config{}, err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "baseDir":
			cfg.DataDir = *dataDir
		case "history":
			cfg.History = *history
		case "name":
			cfg.AuthorName = *userName
		case "email":
			cfg.AuthorEmail = *userEmail
		case "logLevel":
			cfg.LogLevel = *logLevel
		case "logFile":
			cfg.LogFile = *logFile
		}
	})
	return cfg, nil
}

// newLogger builds a console logger that stays out of the way of the
// shell output: warnings and above on stderr unless configured otherwise.
func newLogger(cfg Config) (*zap.SugaredLogger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}

	zapConfig := zap.NewDevelopmentConfig()
	zapConfig.Level = zap.NewAtomicLevelAt(level)
	zapConfig.DisableStacktrace = true
	zapConfig.OutputPaths = []string{"stderr"}
	if cfg.LogFile != "" {
		zapConfig.OutputPaths = []string{cfg.LogFile}
	}
	zapConfig.ErrorOutputPaths = zapConfig.OutputPaths

	logger, err := zapConfig.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}

func defaultHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".storedb_history")
}
