// This file is part of AsyncFIFO.
//
// AsyncFIFO is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// AsyncFIFO is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with AsyncFIFO.  If not, see <https://www.gnu.org/licenses/>.

// Package plainterm implements the Terminal interface for the stepper. It's as
// simple as simple can be and offers no special features.
package plainterm

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jetsetilly/asyncfifo/debugger/terminal"
)

// PlainTerminal is the default, most basic terminal interface. It keeps the
// terminal in whatever mode it started, probably cooked mode. As such, input
// is only acted upon when the user presses return.
type PlainTerminal struct {
	input     io.Reader
	output    io.Writer
	realInput bool
	silenced  bool
	scanner   *bufio.Scanner
}

// NewPlainTerminal is the preferred method of initialisation for the
// PlainTerminal type. Either argument can be nil in which case the standard
// input or output is used.
func NewPlainTerminal(input io.Reader, output io.Writer) *PlainTerminal {
	return &PlainTerminal{
		input:  input,
		output: output,
	}
}

// Initialise perfoms any setting up required for the terminal.
func (pt *PlainTerminal) Initialise() error {
	if pt.input == nil {
		pt.input = os.Stdin
		if fi, err := os.Stdin.Stat(); err == nil {
			pt.realInput = fi.Mode()&os.ModeCharDevice == os.ModeCharDevice
		}
	}
	if pt.output == nil {
		pt.output = os.Stdout
	}
	pt.scanner = bufio.NewScanner(pt.input)
	return nil
}

// CleanUp perfoms any cleaning up required for the terminal.
func (pt *PlainTerminal) CleanUp() {
}

// Silence implements the terminal.Terminal interface.
func (pt *PlainTerminal) Silence(silenced bool) {
	pt.silenced = silenced
}

// TermPrintLine implements the terminal.Output interface.
func (pt *PlainTerminal) TermPrintLine(style terminal.Style, s string) {
	if pt.silenced && style != terminal.StyleError {
		return
	}

	switch style {
	case terminal.StyleEcho:
		// the user can see what they typed in a plain terminal unless the
		// input is not a real terminal
		if pt.realInput {
			return
		}
		s = fmt.Sprintf("> %s", s)
	case terminal.StyleError:
		s = fmt.Sprintf("* %s", s)
	}

	io.WriteString(pt.output, s)
	if !style.IsPrompt() {
		io.WriteString(pt.output, "\n")
	}
}

// TermRead implements the terminal.Input interface.
func (pt *PlainTerminal) TermRead(prompt terminal.Prompt) (string, error) {
	if pt.realInput {
		pt.TermPrintLine(terminal.StylePrompt, prompt.String())
	}

	if !pt.scanner.Scan() {
		if err := pt.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}

	return strings.TrimSpace(pt.scanner.Text()), nil
}

// IsInteractive implements the terminal.Input interface.
func (pt *PlainTerminal) IsInteractive() bool {
	return pt.realInput
}
