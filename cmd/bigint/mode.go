package main

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// mode is the value of a tri-state auto|on|off setting such as --color or --ui.
type mode string

const (
	modeAuto mode = "auto"
	modeOn   mode = "on"
	modeOff  mode = "off"
)

func parseMode(flag, value string) (mode, error) {
	switch m := mode(strings.ToLower(strings.TrimSpace(value))); m {
	case "":
		return modeAuto, nil
	case modeAuto, modeOn, modeOff:
		return m, nil
	default:
		return "", fmt.Errorf("invalid --%s value %q (expected auto|on|off)", flag, value)
	}
}

// modeSetting reads flag when it was given on the command line and falls back
// to the configured value otherwise.
func modeSetting(flags *pflag.FlagSet, flag, configured string) (mode, error) {
	value := configured
	if flags.Changed(flag) {
		value, _ = flags.GetString(flag) //nolint:errcheck
	}
	return parseMode(flag, value)
}

// enabled resolves the mode; detect decides auto.
func (m mode) enabled(detect func() bool) bool {
	switch m {
	case modeOn:
		return true
	case modeOff:
		return false
	default:
		return detect()
	}
}
