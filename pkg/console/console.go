package console

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

const (
	noScriptMessage = "ERROR: No script specified."
	usageTemplate   = "Usage: %v your_script.py [arguments]"
	startTemplate   = "Running %v..."
	finishedMessage = "Script execution finished."
)

var (
	colorBoldRed    = color.New(color.FgRed, color.Bold)
	colorBoldCyan   = color.New(color.FgCyan, color.Bold)
	colorBoldGreen  = color.New(color.FgGreen, color.Bold)
	colorPlainWhite = color.New(color.FgWhite)
)

func ParseColorMode(value string) (ColorMode, error) {
	switch ColorMode(value) {
	case ColorAuto, ColorAlways, ColorNever:
		return ColorMode(value), nil
	case "":
		return ColorAuto, nil
	}

	return "", fmt.Errorf("unknown color mode %#+v (want auto|always|never)", value)
}

type Printer struct {
	out      io.Writer
	colorize bool
}

func New(out io.Writer, mode ColorMode) *Printer {
	p := Printer{
		out: out,
	}

	switch mode {
	case ColorAlways:
		p.colorize = true
	case ColorNever:
		p.colorize = false
	default:
		f, ok := out.(*os.File)
		p.colorize = ok && term.IsTerminal(int(f.Fd()))
	}

	return &p
}

func (p *Printer) sprintf(c *color.Color, format string, a ...interface{}) string {
	if p.colorize {
		// the package-level NoColor guess is about os.Stdout, which may not be where we write
		c.EnableColor()
		return c.Sprintf(format, a...)
	}

	return fmt.Sprintf(format, a...)
}

func (p *Printer) println(c *color.Color, format string, a ...interface{}) {
	_, _ = fmt.Fprintln(p.out, p.sprintf(c, format, a...))
}

func (p *Printer) Usage(program string) {
	p.println(colorBoldRed, noScriptMessage)
	p.println(colorPlainWhite, usageTemplate, program)
}

func (p *Printer) Starting(script string) {
	p.println(colorBoldCyan, startTemplate, script)
}

func (p *Printer) Finished() {
	p.println(colorBoldGreen, finishedMessage)
}
