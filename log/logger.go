package log

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

const DefaultTimeFormat = "2006-01-02 15:04:05"

type Logger struct {
	mu     *sync.Mutex
	writer io.Writer

	Name  string
	Level Level

	TimeFormat string
	NoColor    bool
	JSON       bool
	NoTerminal bool
}

// Config describes where a Logger writes to. Terminal output goes to stdout
// unless NoTerminal is set, File is rotated through lumberjack, and Writer
// receives a copy of every line (useful for capturing output in tests).
type Config struct {
	Name       string
	Level      Level
	File       string
	Writer     io.Writer
	NoTerminal bool
	NoColor    bool
	JSON       bool
	Rotation   *Rotation
}

type Rotation struct {
	MaxSize    int
	MaxBackups int
	MaxAge     int
	Compress   bool
}

type logEntry struct {
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"`
	Service   string `json:"service,omitempty"`
	Message   string `json:"message"`
}

func defaultRotation() *Rotation {
	return &Rotation{
		MaxSize:    128,
		MaxBackups: 5,
		MaxAge:     16,
		Compress:   false,
	}
}

func NewLogger(name string, level Level, file string, noTerminal bool) *Logger {
	return New(Config{
		Name:       name,
		Level:      level,
		File:       file,
		NoTerminal: noTerminal,
	})
}

func New(cfg Config) *Logger {
	l := &Logger{
		mu:         &sync.Mutex{},
		Name:       cfg.Name,
		Level:      cfg.Level,
		TimeFormat: DefaultTimeFormat,
		NoColor:    cfg.NoColor,
		JSON:       cfg.JSON,
		NoTerminal: cfg.NoTerminal,
	}

	var writers []io.Writer
	if !cfg.NoTerminal {
		writers = append(writers, os.Stdout)
	}

	if cfg.File != "" {
		rotation := cfg.Rotation
		if rotation == nil {
			rotation = defaultRotation()
		}
		writers = append(writers, &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    rotation.MaxSize,
			MaxBackups: rotation.MaxBackups,
			MaxAge:     rotation.MaxAge,
			Compress:   rotation.Compress,
		})
	}

	if cfg.Writer != nil {
		writers = append(writers, cfg.Writer)
		// Colour codes only make sense on a terminal
		if cfg.NoTerminal {
			l.NoColor = true
		}
	}

	switch len(writers) {
	case 0:
		l.writer = io.Discard
	case 1:
		l.writer = writers[0]
	default:
		l.writer = io.MultiWriter(writers...)
	}

	return l
}

// Nop returns a logger that drops every line.
func Nop() *Logger {
	return New(Config{NoTerminal: true})
}

func (l *Logger) log(level Level, msg string, args ...any) {
	if l == nil || level < l.Level {
		return
	}

	timestamp := time.Now().Format(l.TimeFormat)
	formattedMsg := fmt.Sprintf(msg, args...)

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.JSON {
		entry := logEntry{
			Timestamp: timestamp,
			Level:     level.String(),
			Service:   l.Name,
			Message:   formattedMsg,
		}

		jsonBytes, _ := json.Marshal(entry)
		fmt.Fprintf(l.writer, "%s\n", jsonBytes)
	} else {
		prefix := fmt.Sprintf("[%s] %-5s", timestamp, level)
		if l.Name != "" {
			prefix = fmt.Sprintf("%s [%s]", prefix, l.Name)
		}

		if !l.NoTerminal && !l.NoColor {
			fmt.Fprintf(l.writer, "%s%s %s%s\n", color(level), prefix, formattedMsg, colorReset)
		} else {
			fmt.Fprintf(l.writer, "%s %s\n", prefix, formattedMsg)
		}
	}

	if level == Fatal {
		os.Exit(1)
	}
}

func (l *Logger) Debug(msg string, args ...any) {
	l.log(Debug, msg, args...)
}

func (l *Logger) Info(msg string, args ...any) {
	l.log(Info, msg, args...)
}

func (l *Logger) Warn(msg string, args ...any) {
	l.log(Warn, msg, args...)
}

func (l *Logger) Error(msg string, args ...any) {
	l.log(Error, msg, args...)
}

func (l *Logger) Fatal(msg string, args ...any) {
	l.log(Fatal, msg, args...)
}

// Named returns a child logger that shares the writer and level of l.
func (l *Logger) Named(name string) *Logger {
	if l.Name != "" {
		name = fmt.Sprintf("%s/%s", l.Name, name)
	}

	return &Logger{
		mu:     l.mu,
		writer: l.writer,

		Name:  name,
		Level: l.Level,

		TimeFormat: l.TimeFormat,
		NoColor:    l.NoColor,
		JSON:       l.JSON,
		NoTerminal: l.NoTerminal,
	}
}
