package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

var gradient = []string{"#818cf8", "#a78bfa", "#c084fc", "#e879f9", "#f472b6", "#fb7185"}

const logo = `                      _
  ___ _ __ ___   ___ | |
 / __| '_ ` + "`" + ` _ \ / _ \| |
 \__ \ | | | | | (_) | |
 |___/_| |_| |_|\___/|_|`

// PrintBanner writes the smol logo followed by version, one gradient colour
// per line.
func PrintBanner(w io.Writer, version string) {
	p := termenv.NewOutput(w).EnvColorProfile()

	fmt.Fprintln(w)
	for i, line := range strings.Split(logo, "\n") {
		s := termenv.String(line).Foreground(p.Color(gradient[i%len(gradient)]))
		fmt.Fprintln(w, s)
	}
	if version != "" {
		fmt.Fprintln(w, termenv.String("  "+version).Faint())
	}
	fmt.Fprintln(w)
}
