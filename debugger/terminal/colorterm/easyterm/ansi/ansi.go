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

// Package ansi defines ANSI control codes for styles and colours.
package ansi

import (
	"fmt"
	"strings"
)

// ansi colors. the index of each entry is the colour's value in the
// sequence. normal is the terminal's default colour.
var colors = map[string]int{
	"BLACK":   0,
	"RED":     1,
	"GREEN":   2,
	"YELLOW":  3,
	"BLUE":    4,
	"MAGENTA": 5,
	"CYAN":    6,
	"WHITE":   7,
	"NORMAL":  9,
}

// ansi target.
const (
	targetPen         = 3
	targetPaper       = 4
	targetBrightPen   = 9
	targetBrightPaper = 10
)

// ansi attributes.
var attributes = map[string]int{
	"BOLD":      1,
	"UNDERLINE": 4,
	"INVERSE":   7,
	"STRIKE":    9,
}

// Pens is the table of colors to be used for text.
var Pens map[string]string

// DimPens is the table of pastel colors to be used for text.
var DimPens map[string]string

// PenStyles is the table of styles to be used for text.
var PenStyles map[string]string

// NormalPen is the CSI sequence for regular text.
var NormalPen string

func mustBuild(pen, paper, attribute string, brightPen, brightPaper bool) string {
	s, err := ColorBuild(pen, paper, attribute, brightPen, brightPaper)
	if err != nil {
		panic(err)
	}
	return s
}

func init() {
	Pens = make(map[string]string)
	DimPens = make(map[string]string)
	PenStyles = make(map[string]string)

	NormalPen = mustBuild("", "", "", false, false)

	for _, c := range []string{"red", "green", "yellow", "blue", "magenta", "cyan", "white"} {
		Pens[c] = mustBuild(c, "normal", "", true, false)
		DimPens[c] = mustBuild(c, "normal", "", false, false)
	}

	PenStyles["bold"] = mustBuild("", "", "bold", false, false)
	PenStyles["underline"] = mustBuild("", "", "underline", false, false)
	PenStyles["inverse"] = mustBuild("", "", "inverse", false, false)
}

func color(s *strings.Builder, target int, name string) error {
	if name == "" {
		return nil
	}
	c, ok := colors[strings.ToUpper(name)]
	if !ok {
		return fmt.Errorf("unknown ANSI color (%s)", name)
	}
	if s.Len() > 2 {
		s.WriteString(";")
	}
	s.WriteString(fmt.Sprintf("%d%d", target, c))
	return nil
}

// ColorBuild creates the ANSI sequence to create the pen with the correct
// foreground/background color and attribute.
func ColorBuild(pen, paper, attribute string, brightPen, brightPaper bool) (string, error) {
	s := strings.Builder{}
	s.Grow(32)
	s.WriteString("\033[")

	target := targetPen
	if brightPen {
		target = targetBrightPen
	}
	if err := color(&s, target, pen); err != nil {
		return "", fmt.Errorf("pen: %w", err)
	}

	target = targetPaper
	if brightPaper {
		target = targetBrightPaper
	}
	if err := color(&s, target, paper); err != nil {
		return "", fmt.Errorf("paper: %w", err)
	}

	if attribute != "" && strings.ToUpper(attribute) != "NORMAL" {
		a, ok := attributes[strings.ToUpper(attribute)]
		if !ok {
			return "", fmt.Errorf("unknown ANSI attribute (%s)", attribute)
		}
		if s.Len() > 2 {
			s.WriteString(";")
		}
		s.WriteString(fmt.Sprintf("%d", a))
	}

	// terminate ANSI sequence
	s.WriteString("m")

	return s.String(), nil
}

// ClearLine is the CSI sequence to clear the entire of the current line.
const ClearLine = "\033[2K"

// CursorStore is the CSI sequence to store the current cursor position.
const CursorStore = "\033[s"

// CursorRestore is the CSI sequence to restore the cursor position to a
// previous store.
const CursorRestore = "\033[u"

// CursorMove is the CSI sequence to move the cursor n characters forward.
// Negative values of n move the cursor backward.
func CursorMove(n int) string {
	switch {
	case n < 0:
		return fmt.Sprintf("\033[%dD", -n)
	case n > 0:
		return fmt.Sprintf("\033[%dC", n)
	}
	return ""
}
