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

//go:build !windows

// Package colorterm implements the Terminal interface for the stepper. It
// supports color output and acts on key presses immediately, without the user
// needing to press return.
package colorterm

import (
	"os"

	"github.com/jetsetilly/asyncfifo/curated"
	"github.com/jetsetilly/asyncfifo/debugger/terminal"
	"github.com/jetsetilly/asyncfifo/debugger/terminal/colorterm/easyterm"
)

// ColorTerminal implements the stepper interface with a basic ANSI terminal.
type ColorTerminal struct {
	easyterm.EasyTerm

	silenced bool
}

// Initialise perfoms any setting up required for the terminal.
func (ct *ColorTerminal) Initialise() error {
	err := ct.EasyTerm.Initialise(os.Stdin, os.Stdout)
	if err != nil {
		return curated.Errorf("colorterm: %v", err)
	}
	ct.CBreakMode()
	return nil
}

// CleanUp perfoms any cleaning up required for the terminal.
func (ct *ColorTerminal) CleanUp() {
	ct.EasyTerm.TermPrint("\r")
	_ = ct.Flush()
	ct.EasyTerm.CleanUp()
}

// IsInteractive implements the terminal.Input interface.
func (ct *ColorTerminal) IsInteractive() bool {
	return true
}

// Silence implements the terminal.Terminal interface.
func (ct *ColorTerminal) Silence(silenced bool) {
	ct.silenced = silenced
}

// TermRead implements the terminal.Input interface. Only a single key press is
// returned.
func (ct *ColorTerminal) TermRead(prompt terminal.Prompt) (string, error) {
	ct.TermPrintLine(terminal.StylePrompt, prompt.String())

	for {
		k, err := ct.ReadKey()
		if err != nil {
			return "", err
		}

		switch k {
		case easyterm.KeyInterrupt:
			ct.EasyTerm.TermPrint("\n")
			return "", curated.Errorf(terminal.UserInterrupt)
		case easyterm.KeyEndOfFile:
			ct.EasyTerm.TermPrint("\n")
			return "", curated.Errorf(terminal.UserAbort)
		case easyterm.KeySuspend:
			ct.CanonicalMode()
			easyterm.SuspendProcess()
			ct.CBreakMode()
		case easyterm.KeyCarriageReturn, easyterm.KeyLineFeed, easyterm.KeyEsc:
			// ignore
		default:
			ct.EasyTerm.TermPrint("\n")
			return string(rune(k)), nil
		}
	}
}

// Available returns nil if the ColorTerminal can be used on this platform.
func Available() error {
	return nil
}
