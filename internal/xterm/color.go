// Package xterm provides the handful of ANSI escape helpers used to color
// console output while experiments are generated.
package xterm

import "fmt"

// Color renders text wrapped in an ANSI escape sequence.
type Color interface {
	S(text string) string
}

type color struct {
	code uint8
}

func (c color) S(text string) string {
	return fmt.Sprintf("\x1b[%dm%s\x1b[0m", c.code, text)
}

// Roles used by the console trace.
var (
	Cmd     = color{code: 36} // echoed external commands
	Suite   = color{code: 94} // suite names
	Variant = color{code: 35} // variant names
	Fail    = color{code: 91} // fatal errors
)

// NoColor passes text through unchanged.
var NoColor Color = noColor{}

type noColor struct{}

func (noColor) S(text string) string { return text }
