package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

const colorAuto = "auto"

// colorEnv overrides --color auto.
const colorEnv = "ARTICLEPARAMS_COLOR"

func colorProfile(mode string) (termenv.Profile, bool, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", colorAuto:
		return termenv.Ascii, false, nil
	case "truecolor", "true", "24bit":
		return termenv.TrueColor, true, nil
	case "256", "ansi256":
		return termenv.ANSI256, true, nil
	case "16", "ansi", "basic":
		return termenv.ANSI, true, nil
	case "none", "off", "ascii":
		return termenv.Ascii, true, nil
	default:
		return termenv.Ascii, false, fmt.Errorf("unknown color mode %q", mode)
	}
}

// applyColorMode sets the lipgloss color profile. In auto mode the
// environment decides, which includes NO_COLOR and CLICOLOR_FORCE.
func applyColorMode(mode string) error {
	if strings.EqualFold(strings.TrimSpace(mode), colorAuto) || mode == "" {
		if env := os.Getenv(colorEnv); env != "" {
			mode = env
		}
	}

	profile, explicit, err := colorProfile(mode)
	if err != nil {
		return err
	}
	if !explicit {
		profile = termenv.NewOutput(os.Stdout).EnvColorProfile()
	}
	lipgloss.SetColorProfile(profile)
	return nil
}
