package config

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path"
	"time"

	"github.com/adrg/xdg"
)

var (
	errConfigWrite = errors.New("failed to write config file")
	errConfigRead  = errors.New("failed to read config file")
	errLoggerInit  = errors.New("failed to initialize logger")
)

const (
	ConfigDirName      = "lb-tui"
	DefaultConfigName  = "lb-tui"
	DefaultLogName     = "lb-tui.log"
	EnvPrefix          = "lbtui"
	DefaultHTTPTimeout = 15 * time.Second
	DefaultSourcePath  = "sample_players.json"
)

type Config struct {
	// SourceURL is fetched on startup and on every refresh.
	SourceURL string `mapstructure:"source_url"`
	// FileDir is the directory the file picker starts in.
	FileDir string `mapstructure:"file_dir"`
	// Locale is the BCP 47 tag used to collate player names. A reload applies from the next load.
	Locale string `mapstructure:"locale"`
	Debug  bool   `mapstructure:"debug"`
	// ListenAddress, DataFile, DeriveRatings, KFactor and CORSOrigins only apply to serve mode.
	ListenAddress string   `mapstructure:"listen_address"`
	DataFile      string   `mapstructure:"data_file"`
	DeriveRatings bool     `mapstructure:"derive_ratings"`
	KFactor       float64  `mapstructure:"k_factor"`
	CORSOrigins   []string `mapstructure:"cors_origins"`
}

// LogLevel maps the debug flag to a slog level.
func (c Config) LogLevel() slog.Level {
	if c.Debug {
		return slog.LevelDebug
	}

	return slog.LevelInfo
}

// Path generates a path pointing to the filename under this apps defined $XDG_CONFIG_HOME.
func Path(name string) string {
	fullPath, errFullPath := xdg.ConfigFile(path.Join(ConfigDirName, name))
	if errFullPath != nil {
		panic(errFullPath)
	}

	return fullPath
}

// LoggerInit sets up the slog global handler to use a log file as we cant print to the console.
func LoggerInit(logPath string, level slog.Level) (io.Closer, error) {
	logFile, errLogFile := os.Create(path.Join(xdg.ConfigHome, ConfigDirName, logPath))
	if errLogFile != nil {
		return nil, errors.Join(errLogFile, errLoggerInit)
	}

	LoggerInitWriter(logFile, level)

	return logFile, nil
}

// LoggerInitWriter sets up the slog global handler to write to an arbitrary writer. Used
// by the non-interactive commands which are free to log to stderr.
func LoggerInitWriter(writer io.Writer, level slog.Level) {
	logger := slog.New(slog.NewTextHandler(writer, &slog.HandlerOptions{
		AddSource: false,
		Level:     level,
	}))

	slog.SetDefault(logger)
}
