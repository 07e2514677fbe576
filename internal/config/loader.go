package config

import (
	"errors"
	"log/slog"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

var errInvalidLocale = errors.New("invalid locale")

// Loader handles setting up viper, loading configuration from files, and broadcasting configuration changes.
type Loader struct {
	*viper.Viper
	changes chan<- Config
}

// NewLoader creates a loader reading from configFile, or when empty, from the default
// search paths. Changes are only broadcast when changes is non-nil and Watch is called.
func NewLoader(configFile string, changes chan<- Config) *Loader {
	loader := Loader{changes: changes, Viper: viper.New()}
	loader.SetDefault("source_url", "http://localhost:8080/"+DefaultSourcePath)
	loader.SetDefault("file_dir", ".")
	loader.SetDefault("locale", "en")
	loader.SetDefault("debug", false)
	loader.SetDefault("listen_address", "localhost:8080")
	loader.SetDefault("data_file", DefaultSourcePath)
	loader.SetDefault("derive_ratings", false)
	loader.SetDefault("k_factor", 32)
	loader.SetDefault("cors_origins", []string{"*"})
	if configFile != "" {
		loader.SetConfigFile(configFile)
	} else {
		loader.SetConfigName(DefaultConfigName)
		loader.SetConfigType("yaml")
		loader.AddConfigPath(Path(""))
		loader.AddConfigPath(".")
	}
	loader.SetEnvPrefix(EnvPrefix)
	loader.AutomaticEnv()

	return &loader
}

// Watch starts watching the config file, sending a freshly read Config on every write.
func (cl *Loader) Watch() {
	if cl.changes == nil || cl.ConfigFileUsed() == "" {
		return
	}

	cl.OnConfigChange(cl.onConfigChange)
	cl.WatchConfig()
}

func (cl *Loader) Path() string {
	return cl.ConfigFileUsed()
}

func (cl *Loader) onConfigChange(in fsnotify.Event) {
	if !in.Has(fsnotify.Write) && !in.Has(fsnotify.Rename) {
		return
	}

	slog.Debug("External config reload triggered")
	config, err := cl.Read()
	if err != nil {
		slog.Error("Error reading config", slog.String("error", err.Error()))

		return
	}

	cl.changes <- config
}

// Write persists config to path, creating the file when it does not exist.
func (cl *Loader) Write(path string, config Config) error {
	cl.Set("source_url", config.SourceURL)
	cl.Set("file_dir", config.FileDir)
	cl.Set("locale", config.Locale)
	cl.Set("debug", config.Debug)
	cl.Set("listen_address", config.ListenAddress)
	cl.Set("data_file", config.DataFile)
	cl.Set("derive_ratings", config.DeriveRatings)
	cl.Set("k_factor", config.KFactor)
	cl.Set("cors_origins", config.CORSOrigins)

	if err := cl.WriteConfigAs(path); err != nil {
		return errors.Join(err, errConfigWrite)
	}

	return nil
}

// Read loads the config file if one exists. A missing file is not an error, the
// defaults and environment are used instead.
func (cl *Loader) Read() (Config, error) {
	if err := cl.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return Config{}, errors.Join(err, errConfigRead)
		}
	}

	var config Config
	if err := cl.Unmarshal(&config); err != nil {
		return Config{}, errors.Join(err, errConfigRead)
	}

	if _, errLocale := language.Parse(config.Locale); errLocale != nil {
		return Config{}, errors.Join(errLocale, errInvalidLocale, errConfigRead)
	}

	return config, nil
}

// Tag returns the parsed collation locale, defaulting to English.
func (c Config) Tag() language.Tag {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.English
	}

	return tag
}
