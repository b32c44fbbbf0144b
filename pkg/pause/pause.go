package pause

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/museng3n/limit2d/internal"
	"golang.org/x/term"
)

const (
	Prompt = "Press any key to continue . . . "
)

type Pauser interface {
	Pause(prompt string) error
}

// Terminal blocks until a single key (or byte, when in isn't a terminal) has been read.
type Terminal struct {
	in     io.Reader
	out    io.Writer
	logger *slog.Logger
}

func New(in io.Reader, out io.Writer) *Terminal {
	t := Terminal{
		in:     in,
		out:    out,
		logger: internal.GetLogger("pause"),
	}

	return &t
}

func (t *Terminal) readOne() error {
	b := make([]byte, 1)

	for {
		n, err := t.in.Read(b)
		if n > 0 {
			return nil
		}

		if err == io.EOF {
			return nil
		}

		if err != nil {
			return fmt.Errorf("failed to read acknowledgement: %w", err)
		}
	}
}

func (t *Terminal) Pause(prompt string) error {
	_, _ = fmt.Fprint(t.out, prompt)
	defer func() {
		_, _ = fmt.Fprintln(t.out)
	}()

	f, ok := t.in.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return t.readOne()
	}

	state, err := term.MakeRaw(int(f.Fd()))
	if err != nil {
		t.logger.Debug("failed to enter raw mode; falling back to a plain read", "error", err)
		return t.readOne()
	}

	defer func() {
		err := term.Restore(int(f.Fd()), state)
		if err != nil {
			t.logger.Warn("failed to restore terminal", "error", err)
		}
	}()

	return t.readOne()
}

type Disabled struct{}

func (Disabled) Pause(string) error {
	return nil
}
