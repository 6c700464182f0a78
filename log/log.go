// Package log provides a structured logging facade over logrus with console and file sinks.
package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/mcuc-cli/mcuc/filesystem"
	"github.com/mcuc-cli/mcuc/key"
	"github.com/mcuc-cli/mcuc/where"
	logrus "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// successField marks an info entry as a success report.
const successField = "ok"

// enabled indicates whether log entries are emitted at all.
var enabled bool

var logger = logrus.New()

// Setup configures the logger from the global configuration.
// When logging is disabled every emission below is discarded.
func Setup() error {
	enabled = viper.GetBool(key.LogsEnabled)
	if !enabled {
		return nil
	}

	var out io.Writer = os.Stderr
	if viper.GetBool(key.LogsWrite) {
		f, err := openLogFile()
		if err != nil {
			return err
		}
		out = io.MultiWriter(os.Stderr, f)
	}

	return configure(out)
}

// Enabled reports whether the last Setup turned logging on.
func Enabled() bool {
	return enabled
}

func configure(out io.Writer) error {
	logger.SetOutput(out)

	if viper.GetBool(key.LogsJson) {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&consoleFormatter{timestamp: viper.GetBool(key.LogsTimestamp)})
	}

	level, err := logrus.ParseLevel(viper.GetString(key.LogsLevel))
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	return nil
}

func openLogFile() (io.Writer, error) {
	path := filepath.Join(where.Logs(), fmt.Sprintf("%s.log", time.Now().Format("2006-01-02")))

	f, err := filesystem.API().OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o666)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

func Error(args ...any) {
	if enabled {
		logger.Error(args...)
	}
}

func Errorf(format string, args ...any) {
	if enabled {
		logger.Errorf(format, args...)
	}
}

func Warn(args ...any) {
	if enabled {
		logger.Warn(args...)
	}
}

func Warnf(format string, args ...any) {
	if enabled {
		logger.Warnf(format, args...)
	}
}

func Info(args ...any) {
	if enabled {
		logger.Info(args...)
	}
}

func Infof(format string, args ...any) {
	if enabled {
		logger.Infof(format, args...)
	}
}

// Success logs an info entry rendered with the [OK] tag.
func Success(args ...any) {
	if enabled {
		logger.WithField(successField, true).Info(args...)
	}
}

func Successf(format string, args ...any) {
	if enabled {
		logger.WithField(successField, true).Infof(format, args...)
	}
}

func Debug(args ...any) {
	if enabled {
		logger.Debug(args...)
	}
}

func Debugf(format string, args ...any) {
	if enabled {
		logger.Debugf(format, args...)
	}
}
