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

package terminal

// Style is used to identify the category of text being sent to the
// Terminal.TermPrintLine() function. The terminal implementation can interpret
// this how it sees fit - the most likely treatment is to print different
// styles in different colours.
type Style int

// List of terminal styles.
const (
	// the echo of the key or command that caused the output
	StyleEcho Style = iota

	// information from the stepper
	StyleFeedback

	// help text
	StyleHelp

	// the state of the write domain
	StyleWrite

	// the state of the read domain
	StyleRead

	// a flag that is currently asserted
	StyleFlag

	// a word leaving the FIFO
	StyleOutput

	// the prompt
	StylePrompt

	// error messages
	StyleError
)

// IsPrompt returns true if the style is for a prompt. Prompts are not
// terminated with a newline.
func (s Style) IsPrompt() bool {
	return s == StylePrompt
}
