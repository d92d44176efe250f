package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the atlas banner and version.
func PrintBanner(w io.Writer, version string) {
	p := termenv.ColorProfile()
	lines := []struct {
		text  string
		color string
	}{
		{`        _   _`, "#34d399"},
		{`   __ _| |_| | __ _ ___`, "#2dd4bf"},
		{`  / _' | __| |/ _' / __|`, "#22d3ee"},
		{` | (_| | |_| | (_| \__ \`, "#38bdf8"},
		{`  \__,_|\__|_|\__,_|___/`, "#60a5fa"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w, termenv.String("  v"+version).Faint())
	fmt.Fprintln(w)
}

// Heading styles an exercise heading for terminal output.
// When color is false the text is returned unchanged.
func Heading(text string, color bool) string {
	if !color {
		return text
	}
	p := termenv.ColorProfile()
	return termenv.String(text).Bold().Foreground(p.Color("#22d3ee")).String()
}

// ErrorText styles an error line for terminal output.
func ErrorText(text string, color bool) string {
	if !color {
		return text
	}
	p := termenv.ColorProfile()
	return termenv.String(text).Foreground(p.Color("#f87171")).String()
}
