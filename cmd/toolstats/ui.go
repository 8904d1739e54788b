package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

const colorReset = "\033[0m"

type status struct {
	symbol string
	color  string
}

var (
	statusInfo    = status{"ℹ", "\033[0;34m"}
	statusSuccess = status{"✓", "\033[0;32m"}
	statusWarning = status{"⚠", "\033[1;33m"}
	statusError   = status{"✗", "\033[0;31m"}
)

// console is where status lines go. Colour is only used on a terminal.
var (
	console  io.Writer = os.Stdout
	useColor           = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
)

func (s status) print(format string, a ...any) {
	writeLine(s.color, s.symbol+" "+fmt.Sprintf(format, a...))
}

func writeLine(color, line string) {
	if useColor {
		line = color + line + colorReset
	}
	fmt.Fprintln(console, line)
}

func PrintInfo(format string, a ...any)    { statusInfo.print(format, a...) }
func PrintSuccess(format string, a ...any) { statusSuccess.print(format, a...) }
func PrintWarning(format string, a ...any) { statusWarning.print(format, a...) }
func PrintError(format string, a ...any)   { statusError.print(format, a...) }

func PrintHeader(title string) {
	fmt.Fprintln(console)
	writeLine(statusWarning.color, "=== "+title+" ===")
}
