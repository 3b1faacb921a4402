package cmdargs

import (
	"io"

	"github.com/mwantia/cmdargs/log"
)

type ParserOptions struct {
	Logger        *log.Logger
	LogLevel      log.Level
	LogFile       string
	LogWriter     io.Writer
	NoTerminalLog bool
	// Strict turns contract violations into panics instead of returned
	// errors and false results.
	Strict bool
}

type ParserOption func(*ParserOptions) error

func newDefaultParserOptions() *ParserOptions {
	return &ParserOptions{
		LogLevel:      log.Warn,
		NoTerminalLog: true,
	}
}

// WithLogger makes the parser log through a child of logger. All other log
// options are ignored when a logger is given.
func WithLogger(logger *log.Logger) ParserOption {
	return func(opts *ParserOptions) error {
		opts.Logger = logger
		return nil
	}
}

func WithLogLevel(logLevel log.Level) ParserOption {
	return func(opts *ParserOptions) error {
		opts.LogLevel = logLevel
		return nil
	}
}

func WithLogFile(logFile string) ParserOption {
	return func(opts *ParserOptions) error {
		opts.LogFile = logFile
		return nil
	}
}

func WithLogWriter(w io.Writer) ParserOption {
	return func(opts *ParserOptions) error {
		opts.LogWriter = w
		return nil
	}
}

// WithTerminalLog enables diagnostics on stdout.
func WithTerminalLog() ParserOption {
	return func(opts *ParserOptions) error {
		opts.NoTerminalLog = false
		return nil
	}
}

func WithStrict() ParserOption {
	return func(opts *ParserOptions) error {
		opts.Strict = true
		return nil
	}
}

func (opts *ParserOptions) logger() *log.Logger {
	if opts.Logger != nil {
		return opts.Logger.Named("cmdargs")
	}

	return log.New(log.Config{
		Name:       "cmdargs",
		Level:      opts.LogLevel,
		File:       opts.LogFile,
		Writer:     opts.LogWriter,
		NoTerminal: opts.NoTerminalLog,
	})
}
