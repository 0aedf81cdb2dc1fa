// Package detector provides environment detection for log format selection.
package detector

import (
	"os"

	"go.trai.ch/dist/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/term"
)

// LogFormat represents how diagnostics are rendered on stderr.
type LogFormat int

const (
	// FormatAuto picks pretty on an interactive terminal and JSON otherwise.
	FormatAuto LogFormat = iota
	// FormatPretty forces the human-readable handler.
	FormatPretty
	// FormatJSON forces structured JSON lines.
	FormatJSON
)

// String returns the flag spelling of the format.
func (f LogFormat) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatPretty:
		return "pretty"
	case FormatJSON:
		return "json"
	default:
		return "invalid"
	}
}

// DetectEnvironment returns the recommended format for stderr.
// It checks if stderr is a TTY and if CI environment variables are set.
func DetectEnvironment() LogFormat {
	return detect(term.IsTerminal(int(os.Stderr.Fd())), os.Getenv("CI"))
}

func detect(isTTY bool, ci string) LogFormat {
	isCI := ci == "true" || ci == "1"
	if !isTTY || isCI {
		return FormatJSON
	}
	return FormatPretty
}

// ResolveFormat applies the user's --log-format flag to auto-detection.
// userFlag should be one of: "auto", "pretty", "json", or empty.
func ResolveFormat(autoDetected LogFormat, userFlag string) (LogFormat, error) {
	switch userFlag {
	case "pretty":
		return FormatPretty, nil
	case "json":
		return FormatJSON, nil
	case "auto", "":
		return autoDetected, nil
	default:
		return FormatAuto, zerr.With(zerr.Wrap(domain.ErrUsage, "unknown log format"), "log_format", userFlag)
	}
}
