// Package cli wires configuration, console output, the pause and the launcher into a single cobra
// command.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/museng3n/limit2d/internal"
	"github.com/museng3n/limit2d/pkg/config"
	"github.com/museng3n/limit2d/pkg/console"
	"github.com/museng3n/limit2d/pkg/launcher"
	"github.com/museng3n/limit2d/pkg/pause"
	"github.com/museng3n/limit2d/pkg/process"
	"github.com/spf13/cobra"
)

const (
	ExitRan    = 0
	ExitNotRun = 1
)

type Options struct {
	Argv0  string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Runner launcher.Runner
}

// NewRootCommand never parses flags: everything after the program name is forwarded untouched,
// including things like --help. exitCode is set once the command has run.
func NewRootCommand(opts Options, exitCode *int) *cobra.Command {
	*exitCode = ExitNotRun

	cmd := &cobra.Command{
		Use:                "pylaunch <script-path> [args...]",
		Short:              "Run a Python script with the given arguments, then wait for a keypress",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := internal.GetLogger("cli")

			// config problems never stop the launch (or the pause that follows it)
			cfg, err := config.Load(opts.Argv0)
			if err != nil {
				logger.Warn("failed to load config; using defaults", "error", err)
				cfg = config.Defaults(opts.Argv0)
			}

			err = internal.SetLogLevel(cfg.LogLevel)
			if err != nil {
				logger.Warn("ignoring log level", "error", err)
			}

			colorMode, err := console.ParseColorMode(cfg.Color)
			if err != nil {
				logger.Warn("ignoring color mode", "error", err)
				colorMode = console.ColorAuto
			}

			var pauser pause.Pauser = pause.New(opts.Stdin, opts.Stdout)
			if cfg.NoPause {
				pauser = pause.Disabled{}
			}

			runner := opts.Runner
			if runner == nil {
				runner = launcher.ProcessRunner
			}

			l := launcher.New(
				cfg.ProgramName,
				process.Lookup(cfg.Interpreters()),
				cfg.Env,
				cfg.InheritEnv,
				launcher.Streams{
					Stdin:  opts.Stdin,
					Stdout: opts.Stdout,
					Stderr: opts.Stderr,
				},
				console.New(opts.Stdout, colorMode),
				pauser,
				runner,
			)

			result := l.Run(args)

			if result.Outcome == launcher.Ran {
				*exitCode = ExitRan
			} else {
				*exitCode = ExitNotRun
			}

			return nil
		},
	}

	cmd.SetIn(opts.Stdin)
	cmd.SetOut(opts.Stdout)
	cmd.SetErr(opts.Stderr)

	return cmd
}

// execute hands args to cmd; the first token is never allowed to select one of cobra's hidden
// completion commands.
func execute(cmd *cobra.Command, args []string) error {
	if len(args) > 0 && (args[0] == cobra.ShellCompRequestCmd || args[0] == cobra.ShellCompNoDescRequestCmd) {
		return cmd.RunE(cmd, args)
	}

	// cobra falls back to os.Args when handed nil
	if args == nil {
		args = []string{}
	}

	cmd.SetArgs(args)

	return cmd.Execute()
}

// Execute runs the launcher against the real process and returns the exit code for os.Exit.
func Execute(args []string) int {
	argv0 := ""
	if len(args) > 0 {
		argv0 = args[0]
		args = args[1:]
	}

	exitCode := ExitNotRun

	cmd := NewRootCommand(
		Options{
			Argv0:  argv0,
			Stdin:  os.Stdin,
			Stdout: os.Stdout,
			Stderr: os.Stderr,
		},
		&exitCode,
	)

	err := execute(cmd, args)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return ExitNotRun
	}

	return exitCode
}
