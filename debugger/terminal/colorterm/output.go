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

package colorterm

import (
	"github.com/jetsetilly/asyncfifo/debugger/terminal"
	"github.com/jetsetilly/asyncfifo/debugger/terminal/colorterm/easyterm/ansi"
)

// pens for each style. styles not listed are printed with the normal pen.
var stylePens = map[terminal.Style]string{
	terminal.StyleEcho:     ansi.DimPens["white"],
	terminal.StyleFeedback: ansi.DimPens["white"],
	terminal.StyleHelp:     ansi.DimPens["cyan"],
	terminal.StyleWrite:    ansi.Pens["yellow"],
	terminal.StyleRead:     ansi.Pens["blue"],
	terminal.StyleFlag:     ansi.Pens["magenta"] + ansi.PenStyles["bold"],
	terminal.StyleOutput:   ansi.Pens["green"],
	terminal.StylePrompt:   ansi.PenStyles["bold"],
	terminal.StyleError:    ansi.Pens["red"],
}

// TermPrintLine implements the terminal.Output interface.
func (ct *ColorTerminal) TermPrintLine(style terminal.Style, s string) {
	if ct.silenced && style != terminal.StyleError {
		return
	}

	// key presses are echoed by TermRead()
	if style == terminal.StyleEcho {
		return
	}

	ct.EasyTerm.TermPrint("\r")
	ct.EasyTerm.TermPrint(stylePens[style])
	if style == terminal.StyleError {
		ct.EasyTerm.TermPrint("* ")
	}
	ct.EasyTerm.TermPrint(s)
	ct.EasyTerm.TermPrint(ansi.NormalPen)

	// add a newline if print style is anything other than prompt
	if !style.IsPrompt() {
		ct.EasyTerm.TermPrint("\n")
	}
}
