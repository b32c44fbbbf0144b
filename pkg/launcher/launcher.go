package launcher

import (
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/museng3n/limit2d/internal"
	"github.com/museng3n/limit2d/pkg/common"
	"github.com/museng3n/limit2d/pkg/console"
	"github.com/museng3n/limit2d/pkg/pause"
	"github.com/museng3n/limit2d/pkg/process"
)

type Outcome string

const (
	NotRun Outcome = "not-run"
	Ran    Outcome = "ran"
)

type Result struct {
	Outcome    Outcome
	Started    bool
	ReturnCode int
	Argv       []string
}

// Runner starts the child; process.Run satisfies it via RunnerFunc.
type Runner interface {
	Run(processArgs common.ProcessArgs, stdin io.Reader, stdout io.Writer, stderr io.Writer) Child
}

type Child interface {
	Wait() error
	Started() bool
	ReturnCode() int
	Argv() []string
	Close()
}

type RunnerFunc func(processArgs common.ProcessArgs, stdin io.Reader, stdout io.Writer, stderr io.Writer) Child

func (f RunnerFunc) Run(processArgs common.ProcessArgs, stdin io.Reader, stdout io.Writer, stderr io.Writer) Child {
	return f(processArgs, stdin, stdout, stderr)
}

var (
	ProcessRunner = RunnerFunc(func(processArgs common.ProcessArgs, stdin io.Reader, stdout io.Writer, stderr io.Writer) Child {
		return process.Run(processArgs, stdin, stdout, stderr)
	})
)

type Streams struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

type Launcher struct {
	programName string
	interpreter string
	env         []string
	inheritEnv  bool
	streams     Streams
	printer     *console.Printer
	pauser      pause.Pauser
	runner      Runner
	shield      func() func()
	logger      *slog.Logger
}

func New(
	programName string,
	interpreter string,
	env []string,
	inheritEnv bool,
	streams Streams,
	printer *console.Printer,
	pauser pause.Pauser,
	runner Runner,
) *Launcher {
	l := Launcher{
		programName: programName,
		interpreter: interpreter,
		env:         env,
		inheritEnv:  inheritEnv,
		streams:     streams,
		printer:     printer,
		pauser:      pauser,
		runner:      runner,
		shield:      process.Shield,
		logger:      internal.GetLogger("launcher"),
	}

	return &l
}

// Run prints the usage error when args is empty, otherwise runs the interpreter with args exactly
// as given; either way it ends by waiting for a keypress.
func (l *Launcher) Run(args []string) Result {
	logger := l.logger.With("launch_id", uuid.New().String())

	result := Result{
		Outcome:    NotRun,
		ReturnCode: -1,
	}

	defer func() {
		err := l.pauser.Pause(pause.Prompt)
		if err != nil {
			logger.Warn("pause failed", "error", err)
		}
	}()

	if len(args) == 0 {
		l.printer.Usage(l.programName)
		logger.Debug("no script specified; nothing run")
		return result
	}

	l.printer.Starting(args[0])

	release := l.shield()

	child := l.runner.Run(
		common.ProcessArgs{
			Interpreter: l.interpreter,
			Args:        args,
			Env:         l.env,
			InheritEnv:  l.inheritEnv,
		},
		l.streams.Stdin,
		l.streams.Stdout,
		l.streams.Stderr,
	)

	err := child.Wait()

	release()
	child.Close()

	result.Outcome = Ran
	result.Started = child.Started()
	result.ReturnCode = child.ReturnCode()
	result.Argv = child.Argv()

	if !result.Started {
		logger.Warn("failed to start interpreter", "interpreter", l.interpreter, "error", err)
	} else {
		logger.Debug("child exited", "argv", result.Argv, "return_code", result.ReturnCode)
	}

	l.printer.Finished()

	return result
}
