package test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const (
	scriptTemplate = `#!/bin/sh

: > '%v'
for arg in "$@"; do
	printf '%%s\n' "$arg" >> '%v'
done

echo "%v_interpreter: ran"

exit %v
`
)

// InterpreterHarness is an executable stand-in for an interpreter that records the argv it was
// started with, one token per line.
type InterpreterHarness struct {
	name       string
	dir        string
	returnCode int
}

func NewInterpreterHarness(name string, returnCode int) *InterpreterHarness {
	dir, err := os.MkdirTemp("", fmt.Sprintf("%v_%v_", name, uuid.New().String()))
	if err != nil {
		panic(err)
	}

	p := InterpreterHarness{
		name:       name,
		dir:        dir,
		returnCode: returnCode,
	}

	err = os.WriteFile(
		p.GetExecutablePath(),
		[]byte(fmt.Sprintf(scriptTemplate, p.recordPath(), p.recordPath(), p.name, p.returnCode)),
		0o755,
	)
	if err != nil {
		panic(err)
	}

	return &p
}

func (p *InterpreterHarness) recordPath() string {
	return filepath.Join(p.dir, "argv.txt")
}

func (p *InterpreterHarness) GetExecutablePath() string {
	return filepath.Join(p.dir, fmt.Sprintf("%v_interpreter.sh", p.name))
}

func (p *InterpreterHarness) GetOutput() string {
	return fmt.Sprintf("%v_interpreter: ran\n", p.name)
}

// GetRecordedArgs returns nil if the harness was never run.
func (p *InterpreterHarness) GetRecordedArgs() []string {
	b, err := os.ReadFile(p.recordPath())
	if err != nil {
		return nil
	}

	args := strings.Split(string(b), "\n")

	return args[:len(args)-1]
}

func (p *InterpreterHarness) Close() {
	_ = os.RemoveAll(p.dir)
}
