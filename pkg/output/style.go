package output

import (
	"io"

	"github.com/muesli/termenv"
)

// Style applies terminal emphasis to text. With the Ascii profile every
// method returns its input unchanged.
type Style struct {
	profile termenv.Profile
}

// NewStyle builds a Style for the given colour profile.
func NewStyle(p termenv.Profile) Style {
	return Style{profile: p}
}

// DetectStyle picks a profile for w, honouring NO_COLOR and CLICOLOR_FORCE.
// Writers that are not terminals get plain text.
func DetectStyle(w io.Writer) Style {
	return Style{profile: termenv.NewOutput(w).EnvColorProfile()}
}

// Plain returns a Style that never emits escape sequences.
func Plain() Style {
	return Style{profile: termenv.Ascii}
}

func (s Style) Profile() termenv.Profile { return s.profile }

func (s Style) Emphasis(text string) string {
	return s.profile.String(text).Bold().String()
}

func (s Style) Alert(text string) string {
	return s.profile.String(text).Foreground(termenv.ANSIRed).String()
}

func (s Style) Caution(text string) string {
	return s.profile.String(text).Foreground(termenv.ANSIYellow).String()
}

func (s Style) Subdued(text string) string {
	return s.profile.String(text).Faint().String()
}

func (s Style) Success(text string) string {
	return s.profile.String(text).Foreground(termenv.ANSIGreen).Bold().String()
}

func (s Style) Failure(text string) string {
	return s.profile.String(text).Foreground(termenv.ANSIRed).Bold().String()
}
