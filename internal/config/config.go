// Package config resolves settings from the .sessionnote file, SESSIONNOTE_*
// environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/csheth/sessionnote/internal/logging"
	"github.com/csheth/sessionnote/internal/note"
	"github.com/csheth/sessionnote/internal/store"
)

const (
	EnvPrefix = "SESSIONNOTE"
	FileName  = ".sessionnote"

	KeyBackend   = "storage.backend"
	KeyStorePath = "storage.path"
	KeyLogFile   = "log.file"
	KeyLogDebug  = "log.debug"
	KeyAltScreen = "ui.altscreen"
	KeyPlan      = "note.plan"
	KeyMode      = "note.mode"
	KeyDuration  = "note.duration"
)

// Config is the resolved application configuration.
type Config struct {
	Storage   store.BackendConfig
	Log       logging.Config
	AltScreen bool
	Defaults  note.Form
}

// New returns a viper instance with the defaults and environment binding.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyBackend, store.BackendDiskv)
	v.SetDefault(KeyStorePath, defaultDir(os.UserConfigDir, "store"))
	v.SetDefault(KeyLogFile, defaultDir(os.UserCacheDir, "sessionnote.log"))
	v.SetDefault(KeyLogDebug, false)
	v.SetDefault(KeyAltScreen, true)
	v.SetDefault(KeyPlan, note.DefaultPlan)
	v.SetDefault(KeyMode, string(note.ModeTelephone))
	v.SetDefault(KeyDuration, int(note.Duration90))

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func defaultDir(base func() (string, error), name string) string {
	dir, err := base()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "sessionnote", name)
}

// Read loads file into v, or searches for the default config file when file
// is empty. A missing default file is not an error.
func Read(v *viper.Viper, file string) error {
	if file != "" {
		path, err := homedir.Expand(file)
		if err != nil {
			return fmt.Errorf("expand config path: %w", err)
		}
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
		return nil
	}

	v.SetConfigName(FileName)
	v.SetConfigType("yaml")
	if override := os.Getenv(EnvPrefix + "_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "sessionnote"))
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}
	return nil
}

// LoadDotEnv exports variables from the given .env files. Missing files are
// skipped.
func LoadDotEnv(paths ...string) error {
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

// Decode resolves the typed configuration from v.
func Decode(v *viper.Viper) (Config, error) {
	storePath, err := homedir.Expand(v.GetString(KeyStorePath))
	if err != nil {
		return Config{}, fmt.Errorf("expand %s: %w", KeyStorePath, err)
	}
	logFile, err := homedir.Expand(v.GetString(KeyLogFile))
	if err != nil {
		return Config{}, fmt.Errorf("expand %s: %w", KeyLogFile, err)
	}

	mode, err := note.ParseMode(v.GetString(KeyMode))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", KeyMode, err)
	}
	duration, err := note.ParseDuration(strconv.Itoa(v.GetInt(KeyDuration)))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", KeyDuration, err)
	}

	defaults := note.NewForm()
	defaults.Mode = mode
	defaults.Duration = duration
	defaults.Plan = v.GetString(KeyPlan)

	return Config{
		Storage: store.BackendConfig{
			Backend: strings.ToLower(strings.TrimSpace(v.GetString(KeyBackend))),
			Path:    storePath,
		},
		Log: logging.Config{
			File:  logFile,
			Debug: v.GetBool(KeyLogDebug),
		},
		AltScreen: v.GetBool(KeyAltScreen),
		Defaults:  defaults,
	}, nil
}
