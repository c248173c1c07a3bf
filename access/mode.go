package access

import (
	"os"
	"strings"
)

// EnvMode is the environment variable that overrides the access mode.
const EnvMode = "STATVEC_ACCESS"

// Mode selects how a Cache picks strategies.
type Mode uint8

const (
	// ModeSpecialized installs specialized strategies when available.
	ModeSpecialized Mode = iota
	// ModeGeneric always uses the Generic strategy.
	ModeGeneric
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeSpecialized:
		return "specialized"
	case ModeGeneric:
		return "generic"
	default:
		return "unknown"
	}
}

// ParseMode parses a mode name.
func ParseMode(s string) (Mode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "specialized":
		return ModeSpecialized, true
	case "generic":
		return ModeGeneric, true
	default:
		return ModeSpecialized, false
	}
}

// ModeFromEnv returns the mode selected by STATVEC_ACCESS, or
// ModeSpecialized when unset or invalid.
func ModeFromEnv() Mode {
	if override := os.Getenv(EnvMode); override != "" {
		if m, ok := ParseMode(override); ok {
			return m
		}
	}
	return ModeSpecialized
}
