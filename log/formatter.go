package log

import (
	"strings"
	"time"

	"github.com/mcuc-cli/mcuc/style"
	logrus "github.com/sirupsen/logrus"
)

type consoleFormatter struct {
	timestamp bool
}

var tags = map[logrus.Level]string{
	logrus.PanicLevel: "ERROR",
	logrus.FatalLevel: "ERROR",
	logrus.ErrorLevel: "ERROR",
	logrus.WarnLevel:  "WARN",
	logrus.InfoLevel:  "INFO",
	logrus.DebugLevel: "DEBUG",
	logrus.TraceLevel: "TRACE",
}

func tagOf(entry *logrus.Entry) (string, func(string) string) {
	if ok, _ := entry.Data[successField].(bool); ok && entry.Level == logrus.InfoLevel {
		return "OK", style.Fg(style.SuccessColor)
	}

	tag := tags[entry.Level]
	switch entry.Level {
	case logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel:
		return tag, style.Fg(style.ErrorColor)
	case logrus.WarnLevel:
		return tag, style.Fg(style.WarningColor)
	case logrus.InfoLevel:
		return tag, style.Fg(style.InfoColor)
	default:
		return tag, style.Fg(style.FaintColor)
	}
}

// Format renders "[TAG] message", optionally preceded by a timestamp.
func (f *consoleFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var b strings.Builder

	if f.timestamp {
		b.WriteString(style.Faint(entry.Time.Format(time.TimeOnly)))
		b.WriteByte(' ')
	}

	tag, paint := tagOf(entry)
	b.WriteString(paint("[" + tag + "]"))
	b.WriteByte(' ')
	b.WriteString(entry.Message)
	b.WriteByte('\n')

	return []byte(b.String()), nil
}
