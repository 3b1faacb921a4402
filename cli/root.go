package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mwantia/cmdargs/cli/tui"
	"github.com/mwantia/cmdargs/cmd"
	"github.com/mwantia/cmdargs/log"
	"github.com/spf13/cobra"
)

type app struct {
	configFile string
	config     *Config
	logger     *log.Logger
	manager    *cmd.Manager
}

func newRootCommand() *cobra.Command {
	a := &app{}
	v := newViper()

	root := &cobra.Command{
		Use:           "cmdargs",
		Short:         "Runs console commands with typed -name value arguments",
		SilenceUsage:  true,
		SilenceErrors: true,

		// Root flags are parsed while traversing, so they still apply to run,
		// which leaves its own arguments untouched.
		TraverseChildren: true,

		PersistentPreRunE: func(c *cobra.Command, args []string) error {
			cfg, err := loadConfig(v, a.configFile)
			if err != nil {
				return err
			}
			a.config = cfg

			if a.logger, err = newLogger(cfg); err != nil {
				return err
			}
			a.manager, err = newManager(c.Context(), cfg, a.logger)
			return err
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "config file (default ./cmdargs.yaml or ~/.cmdargs/cmdargs.yaml)")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("log-file", "", "write logs to this file as well")
	flags.StringSlice("catalog", nil, "schema files or directories to load commands from")

	for key, flag := range map[string]string{
		"log_level": "log-level",
		"log_file":  "log-file",
		"catalog":   "catalog",
	} {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			panic(err)
		}
	}

	root.AddCommand(
		newConsoleCommand(a),
		newTUICommand(a),
		newRunCommand(a),
		newCommandsCommand(a),
	)
	return root
}

func newConsoleCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "console",
		Short: "Reads command lines from stdin and executes them",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return runConsole(c.Context(), a.manager, c.InOrStdin(), c.OutOrStdout(), c.ErrOrStderr())
		},
	}
}

func newTUICommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Opens the interactive console",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			model := tui.NewModel(c.Context(), a.manager, a.logger)
			p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(c.Context()))
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("tui: %w", err)
			}
			return nil
		},
	}
}

func newRunCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run <command> [args...]",
		Short: "Executes a single command line",
		Example: `  cmdargs run spawn -pos "(X=10,Y=20,Z=30)" -count 2
  cmdargs run echo -text "hello world"`,
		Args:               cobra.MinimumNArgs(1),
		DisableFlagParsing: true,
		RunE: func(c *cobra.Command, args []string) error {
			code, err := a.manager.Execute(c.Context(), joinLine(args), c.OutOrStdout())
			if err != nil || code != 0 {
				return &exitError{code: max(code, 1), err: err}
			}
			return nil
		},
	}
}

func newCommandsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "commands [name]",
		Short: "Lists commands, or describes one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			out := c.OutOrStdout()
			if len(args) == 1 {
				text, err := a.manager.Describe(args[0])
				if err != nil {
					return err
				}
				fmt.Fprint(out, text)
				return nil
			}

			for _, command := range a.manager.List() {
				fmt.Fprintf(out, "%s\t%s\n", command.Name(), command.Description())
			}
			return nil
		},
	}
}

func execute(ctx context.Context) int {
	root := newRootCommand()
	root.SetContext(ctx)

	err := root.Execute()
	if err == nil {
		return 0
	}

	var exit *exitError
	if errors.As(err, &exit) {
		if exit.err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", exit.err)
		}
		return exit.code
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return 1
}
