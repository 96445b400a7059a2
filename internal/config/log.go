package config

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

var logFormatters = map[string]log.Formatter{
	"text":   log.TextFormatter,
	"json":   log.JSONFormatter,
	"logfmt": log.LogfmtFormatter,
}

// Log is the logging section shared by both binaries.
type Log struct {
	// Level is one of debug, info, warn, error, fatal. Overridable with
	// the --log-level flag.
	Level string `koanf:"level"`
	// Format is one of text, json, logfmt.
	Format string `koanf:"format"`
	// DisableTimestamps drops timestamps from log output. Overridable with
	// the --log-disable-timestamps flag.
	DisableTimestamps bool `koanf:"disable_timestamps"`
	// Parsed
	ParsedLevel     log.Level     `koanf:"-"`
	ParsedFormatter log.Formatter `koanf:"-"`
}

func (l *Log) Validate() (err error) {
	l.ParsedLevel, err = log.ParseLevel(l.Level)
	if err != nil {
		return fmt.Errorf("log.level must be one of debug, info, warn, error, fatal - got: %s", l.Level)
	}

	var ok bool
	l.ParsedFormatter, ok = logFormatters[l.Format]
	if !ok {
		return fmt.Errorf("log.format must be one of text, json, logfmt - got: %s", l.Format)
	}

	return nil
}

// SetLoggerDefaults applies time format, UTC, and styles to the global logger.
// Call this early (e.g. in cmd init()) so pre-config errors are styled
// the same way as everything after.
func SetLoggerDefaults() {
	log.SetTimeFunction(log.NowUTC)
	log.SetTimeFormat("2006-01-02T15:04:05.000Z07:00")

	styles := log.DefaultStyles()
	styles.Timestamp = lipgloss.NewStyle().Faint(true)
	styles.Message = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	styles.Value = lipgloss.NewStyle().Foreground(lipgloss.Color("109"))

	styles.Levels[log.DebugLevel] = styles.Levels[log.DebugLevel].Foreground(lipgloss.Color("63"))
	styles.Levels[log.InfoLevel] = styles.Levels[log.InfoLevel].Foreground(lipgloss.Color("77"))
	styles.Levels[log.WarnLevel] = styles.Levels[log.WarnLevel].Foreground(lipgloss.Color("214"))
	styles.Levels[log.ErrorLevel] = styles.Levels[log.ErrorLevel].Foreground(lipgloss.Color("203"))
	styles.Levels[log.FatalLevel] = styles.Levels[log.FatalLevel].Foreground(lipgloss.Color("160"))

	log.SetStyles(styles)
}

// Configure applies the section to the global logger. A non-empty
// levelOverride wins over the config level; disableTimestampsOverride forces
// timestamps off regardless of config.
func (l *Log) Configure(levelOverride string, disableTimestampsOverride bool) {
	if levelOverride != "" && levelOverride != l.Level {
		parsedLevel, err := log.ParseLevel(levelOverride)
		if err != nil {
			log.Error("invalid level, using "+l.Level, "invalid_level", levelOverride, "error", err)
		} else {
			l.Level = levelOverride
			l.ParsedLevel = parsedLevel
		}
	}

	log.SetLevel(l.ParsedLevel)
	log.SetFormatter(l.ParsedFormatter)

	disable := l.DisableTimestamps || disableTimestampsOverride
	log.SetReportTimestamp(!disable)

	SetLoggerDefaults()
}
