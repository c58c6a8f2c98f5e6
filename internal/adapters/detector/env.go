// Package detector picks how the live loop reports its state.
package detector

import (
	"os"

	"golang.org/x/term"
)

// OutputMode is the presentation of the live loop.
type OutputMode int

const (
	// ModeAuto chooses from the environment.
	ModeAuto OutputMode = iota
	// ModeDashboard is the interactive terminal dashboard.
	ModeDashboard
	// ModePlain prints one status line per second.
	ModePlain
)

// DetectEnvironment returns ModePlain when stdout is not a terminal or CI is
// set, and ModeDashboard otherwise.
func DetectEnvironment() OutputMode {
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))

	ci := os.Getenv("CI")
	isCI := ci == "true" || ci == "1"

	if !isTTY || isCI {
		return ModePlain
	}
	return ModeDashboard
}

// ResolveMode applies the --output flag ("auto", "dashboard", "plain") to the
// detected mode. Unknown values fall back to the detected mode.
func ResolveMode(detected OutputMode, flag string) OutputMode {
	switch flag {
	case "dashboard", "tui":
		return ModeDashboard
	case "plain", "linear":
		return ModePlain
	default:
		return detected
	}
}
