package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

// LogLevel represents the severity level of log messages.
type LogLevel int

// Log level constants defining message severity.
const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
	FATAL
)

var levelNames = map[LogLevel]string{
	DEBUG: "DEBUG",
	INFO:  "INFO",
	WARN:  "WARN",
	ERROR: "ERROR",
	FATAL: "FATAL",
}

// String returns the upper-case name of the level.
func (l LogLevel) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return "INFO"
}

// ParseLogLevel converts a string log level to its LogLevel constant.
func ParseLogLevel(level string) LogLevel {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return DEBUG
	case "INFO":
		return INFO
	case "WARN", "WARNING":
		return WARN
	case "ERROR":
		return ERROR
	case "FATAL":
		return FATAL
	default:
		return INFO
	}
}

// Options configures the rotating file sink. An empty FilePath logs to stdout only.
type Options struct {
	FilePath   string
	Level      LogLevel
	MaxSize    int // MB
	MaxBackups int
	MaxAge     int // days
	Compress   bool
}

// Logger writes level-filtered lines to stdout and, when configured, a rotated log file.
type Logger struct {
	loggers map[LogLevel]*log.Logger
	level   LogLevel
	mu      sync.RWMutex
}

var (
	instance *Logger
	once     sync.Once
)

// Init initializes the global logger from opts. Later calls are ignored.
func Init(opts Options) {
	once.Do(func() {
		l, err := New(opts)
		if err != nil {
			log.Printf("[WARN] file logging disabled: %v", err)
			l = newWithWriter(os.Stdout, opts.Level)
		}
		instance = l
	})
}

// InitConsole initializes the global logger on stdout only.
func InitConsole(level LogLevel) {
	Init(Options{Level: level})
}

// New builds a logger from opts, creating the log directory when needed.
func New(opts Options) (*Logger, error) {
	if opts.FilePath == "" {
		return newWithWriter(os.Stdout, opts.Level), nil
	}

	dir := filepath.Dir(opts.FilePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("cannot create log directory %s: %w", dir, err)
	}

	rotating := &lumberjack.Logger{
		Filename:   opts.FilePath,
		MaxSize:    opts.MaxSize,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAge,
		Compress:   opts.Compress,
	}
	return newWithWriter(io.MultiWriter(os.Stdout, rotating), opts.Level), nil
}

func newWithWriter(w io.Writer, level LogLevel) *Logger {
	flags := log.LstdFlags | log.Lshortfile
	l := &Logger{
		loggers: make(map[LogLevel]*log.Logger, len(levelNames)),
		level:   level,
	}
	for lvl, name := range levelNames {
		l.loggers[lvl] = log.New(w, "["+name+"] ", flags)
	}
	return l
}

// SetLevel changes the minimum log level for filtering messages.
func (l *Logger) SetLevel(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// GetLevel returns the current minimum log level.
func (l *Logger) GetLevel() LogLevel {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.level
}

func (l *Logger) output(level LogLevel, msg string) {
	l.mu.RLock()
	enabled := level >= l.level
	l.mu.RUnlock()
	if !enabled {
		return
	}
	// depth 3: output <- Logger method <- package func or caller
	l.loggers[level].Output(3, msg)
}

// Debugf logs a formatted debug-level message.
func (l *Logger) Debugf(format string, v ...interface{}) {
	l.output(DEBUG, fmt.Sprintf(format, v...))
}

// Infof logs a formatted info-level message.
func (l *Logger) Infof(format string, v ...interface{}) {
	l.output(INFO, fmt.Sprintf(format, v...))
}

// Warnf logs a formatted warning-level message.
func (l *Logger) Warnf(format string, v ...interface{}) {
	l.output(WARN, fmt.Sprintf(format, v...))
}

// Errorf logs a formatted error-level message.
func (l *Logger) Errorf(format string, v ...interface{}) {
	l.output(ERROR, fmt.Sprintf(format, v...))
}

// Fatalf logs a formatted fatal-level message and exits the program.
func (l *Logger) Fatalf(format string, v ...interface{}) {
	l.output(FATAL, fmt.Sprintf(format, v...))
	os.Exit(1)
}

// Global convenience functions. They are no-ops until Init is called, except
// Fatalf which always exits.

// Debugf logs a formatted debug-level message using the global logger instance.
func Debugf(format string, v ...interface{}) {
	if instance != nil {
		instance.Debugf(format, v...)
	}
}

// Infof logs a formatted info-level message using the global logger instance.
func Infof(format string, v ...interface{}) {
	if instance != nil {
		instance.Infof(format, v...)
	}
}

// Warnf logs a formatted warning-level message using the global logger instance.
func Warnf(format string, v ...interface{}) {
	if instance != nil {
		instance.Warnf(format, v...)
	}
}

// Errorf logs a formatted error-level message using the global logger instance.
func Errorf(format string, v ...interface{}) {
	if instance != nil {
		instance.Errorf(format, v...)
	}
}

// Fatalf logs a formatted fatal-level message and exits the program.
func Fatalf(format string, v ...interface{}) {
	if instance != nil {
		instance.Fatalf(format, v...)
	}
	log.Fatalf(format, v...)
}

// SetLevel changes the minimum log level for the global logger instance.
func SetLevel(level LogLevel) {
	if instance != nil {
		instance.SetLevel(level)
	}
}

// GetLevel returns the current minimum log level of the global logger instance.
func GetLevel() LogLevel {
	if instance != nil {
		return instance.GetLevel()
	}
	return INFO
}
