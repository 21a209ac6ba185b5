// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	ui "github.com/gizak/termui/v3"
)

type TerminalMode int

const (
	TerminalModeUnknown TerminalMode = iota
	TerminalModeLight
	TerminalModeDark
)

// ANSI escapes for plain terminal output. Empty when colors are disabled.
var (
	Green   = "\033[92m"
	Info    = "\033[96m"
	Warning = "\033[93m"
	Error   = "\033[91m"
	Reset   = "\033[0m"
)

var detectedMode TerminalMode

// detectTerminalMode guesses the terminal background from COLORFGBG and the
// THEME style variables. Dark is assumed when nothing says otherwise.
func detectTerminalMode() TerminalMode {
	if colorScheme := os.Getenv("COLORFGBG"); colorScheme != "" {
		// "foreground;background"
		parts := strings.Split(colorScheme, ";")
		switch parts[len(parts)-1] {
		case "0", "8", "16":
			return TerminalModeDark
		case "7", "15", "255":
			return TerminalModeLight
		}
	}

	for _, env := range []string{"TERM_THEME", "THEME"} {
		theme := strings.ToLower(os.Getenv(env))
		if strings.Contains(theme, "dark") {
			return TerminalModeDark
		} else if strings.Contains(theme, "light") {
			return TerminalModeLight
		}
	}

	return TerminalModeDark
}

// InitializeColors picks the ANSI palette for the detected terminal mode, or
// clears it when colors are turned off.
func InitializeColors(enabled bool) {
	detectedMode = detectTerminalMode()

	switch {
	case !enabled:
		Green, Info, Warning, Error, Reset = "", "", "", "", ""
	case detectedMode == TerminalModeLight:
		// darker colors read better on a light background
		Green, Info, Warning, Error = "\033[32m", "\033[34m", "\033[33m", "\033[31m"
		Reset = "\033[0m"
	default:
		Green, Info, Warning, Error = "\033[92m", "\033[96m", "\033[93m", "\033[91m"
		Reset = "\033[0m"
	}
}

// kindColor is the chart bar color of each tree kind.
func kindColor(unbalanced bool) ui.Color {
	if detectedMode == TerminalModeLight {
		if unbalanced {
			return ui.Color(1) // dark red
		}
		return ui.Color(4) // dark blue
	}
	if unbalanced {
		return ui.Color(9) // bright red
	}
	return ui.Color(14) // bright cyan
}

// chartTextStyle is used for chart labels and numbers.
func chartTextStyle() ui.Style {
	if detectedMode == TerminalModeLight {
		return ui.NewStyle(ui.ColorBlack)
	}
	return ui.NewStyle(ui.ColorWhite)
}

// keyStyle highlights keys in rendered trees.
func keyStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "25", Dark: "39"}).
		Bold(true)
}
