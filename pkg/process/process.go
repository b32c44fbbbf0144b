package process

import (
	"io"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"sync"

	"github.com/museng3n/limit2d/pkg/common"
)

type Process struct {
	cmd        *exec.Cmd
	wg         sync.WaitGroup
	err        error
	mu         sync.Mutex
	returnCode int
	started    bool
}

func Run(
	processArgs common.ProcessArgs,
	stdin io.Reader,
	stdout io.Writer,
	stderr io.Writer,
) *Process {
	actualEnv := make([]string, 0)

	if processArgs.InheritEnv {
		actualEnv = append(actualEnv, os.Environ()...)
	}

	actualEnv = append(actualEnv, processArgs.Env...)

	// the forwarded args are handed over as-is; a nil slice and an empty one mean the same thing
	args := make([]string, len(processArgs.Args))
	copy(args, processArgs.Args)

	p := &Process{
		cmd: exec.Command(
			processArgs.Interpreter,
			args...,
		),
		returnCode: -1,
	}
	p.cmd.Env = actualEnv
	p.cmd.Dir = processArgs.Dir
	p.cmd.Stdin = stdin
	p.cmd.Stdout = stdout
	p.cmd.Stderr = stderr

	p.wg.Add(1)
	go func() {
		err := p.cmd.Start()
		if err == nil {
			p.mu.Lock()
			p.started = true
			p.mu.Unlock()

			err = p.cmd.Wait()
		}

		p.mu.Lock()
		p.err = err
		if p.cmd.ProcessState != nil {
			p.returnCode = p.cmd.ProcessState.ExitCode()
		}
		p.mu.Unlock()

		p.wg.Done()
	}()
	runtime.Gosched()

	return p
}

func (p *Process) Error() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.err
}

func (p *Process) Wait() error {
	p.wg.Wait()

	return p.Error()
}

func (p *Process) ReturnCode() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.returnCode
}

// Started is false when the interpreter could not be executed at all (e.g. not found on PATH).
func (p *Process) Started() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.started
}

// Argv is the full argument vector the child was (or would have been) started with.
func (p *Process) Argv() []string {
	argv := make([]string, len(p.cmd.Args))
	copy(argv, p.cmd.Args)

	return argv
}

func (p *Process) Close() {
	if p.cmd != nil && p.cmd.Process != nil {
		_ = p.cmd.Process.Kill()
	}
}

// Lookup returns the first candidate found on PATH, falling back to the first candidate so that
// the start failure names something sensible.
func Lookup(candidates []string) string {
	for _, candidate := range candidates {
		_, err := exec.LookPath(candidate)
		if err == nil {
			return candidate
		}
	}

	if len(candidates) == 0 {
		return ""
	}

	return candidates[0]
}

// Shield catches interrupts for this process until the returned func is called; the child shares
// the console and receives the interrupt itself.
//
// Catching rather than ignoring matters: ignored signals stay ignored across exec, caught ones are
// reset to their defaults in the child.
func Shield() func() {
	interrupts := make(chan os.Signal, 1)
	done := make(chan struct{})

	signal.Notify(interrupts, os.Interrupt)

	go func() {
		for {
			select {
			case <-done:
				return
			case <-interrupts:
			}
		}
	}()

	var once sync.Once

	return func() {
		once.Do(func() {
			signal.Stop(interrupts)
			close(done)
		})
	}
}
