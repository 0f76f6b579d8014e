// Package observers provides observers for monitoring traffic-light controllers
package observers

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/anggasct/trafficlight"
)

// LogLevel represents the logging level
type LogLevel int

const (
	// LogError logs only errors
	LogError LogLevel = iota
	// LogWarning logs errors and warnings
	LogWarning
	// LogInfo logs errors, warnings, and info
	LogInfo
	// LogDebug logs errors, warnings, info, and debug
	LogDebug
)

func (l LogLevel) String() string {
	switch l {
	case LogError:
		return "ERROR"
	case LogWarning:
		return "WARN"
	case LogInfo:
		return "INFO"
	case LogDebug:
		return "DEBUG"
	default:
		return "INFO"
	}
}

// ParseLogLevel converts a level name such as "debug" into a LogLevel
func ParseLogLevel(name string) (LogLevel, error) {
	switch name {
	case "error", "ERROR":
		return LogError, nil
	case "warn", "warning", "WARN":
		return LogWarning, nil
	case "info", "INFO", "":
		return LogInfo, nil
	case "debug", "DEBUG":
		return LogDebug, nil
	}
	return LogInfo, fmt.Errorf("unknown log level %q", name)
}

// LogFormatter formats log messages
type LogFormatter func(level LogLevel, format string, args ...interface{}) string

// DefaultLogFormatter provides default log formatting
func DefaultLogFormatter(level LogLevel, format string, args ...interface{}) string {
	return fmt.Sprintf("[%s] %s", level, fmt.Sprintf(format, args...))
}

// LoggingObserver logs controller and driver events
type LoggingObserver struct {
	trafficlight.BaseObserver

	level     LogLevel
	prefix    string
	out       io.Writer
	mutex     sync.RWMutex
	formatter LogFormatter
}

// NewLoggingObserver creates a new logging observer writing to stdout
func NewLoggingObserver(level LogLevel, prefix string) *LoggingObserver {
	return &LoggingObserver{
		level:     level,
		prefix:    prefix,
		out:       os.Stdout,
		formatter: DefaultLogFormatter,
	}
}

// NewDefaultLoggingObserver creates a logging observer with default settings (LogInfo level)
func NewDefaultLoggingObserver() *LoggingObserver {
	return NewLoggingObserver(LogInfo, "TrafficLight")
}

// SetFormatter sets the log formatter
func (o *LoggingObserver) SetFormatter(formatter LogFormatter) {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	o.formatter = formatter
}

// SetOutput redirects log lines to w
func (o *LoggingObserver) SetOutput(w io.Writer) {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	o.out = w
}

func (o *LoggingObserver) log(level LogLevel, format string, args ...interface{}) {
	o.mutex.RLock()
	defer o.mutex.RUnlock()

	if level > o.level {
		return
	}

	prefix := ""
	if o.prefix != "" {
		prefix = fmt.Sprintf("[%s] ", o.prefix)
	}

	message := ""
	if o.formatter != nil {
		message = o.formatter(level, format, args...)
	} else {
		message = fmt.Sprintf(format, args...)
	}

	fmt.Fprintf(o.out, "%s%s\n", prefix, message)
}

// OnTransition logs transitions
func (o *LoggingObserver) OnTransition(t trafficlight.Transition) {
	o.log(LogInfo, "Transition: %s -> %s (cycle %d, id %s)", t.From, t.To, t.Cycle, t.ID)
}

// OnPhaseEnter logs phase entry
func (o *LoggingObserver) OnPhaseEnter(phase trafficlight.Phase, durationMS uint64) {
	o.log(LogDebug, "Entering phase: %s for %dms", phase, durationMS)
}

// OnError logs errors
func (o *LoggingObserver) OnError(err error) {
	o.log(LogError, "Error: %v", err)
}

// OnDriverStarted logs the start of the driver loop
func (o *LoggingObserver) OnDriverStarted() {
	o.log(LogInfo, "Driver loop started")
}

// OnDriverStopped logs the end of the driver loop
func (o *LoggingObserver) OnDriverStopped(err error) {
	if err != nil {
		o.log(LogWarning, "Driver loop stopped: %v", err)
		return
	}
	o.log(LogInfo, "Driver loop stopped")
}
