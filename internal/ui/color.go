package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

var (
	genStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	trkStyle   = lipgloss.NewStyle().Faint(true)
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	classStyle = lipgloss.NewStyle().Bold(true)
)

// GenLine reports a class generated from a feature file for the first time.
func GenLine(w io.Writer, source, output string) {
	fmt.Fprintln(w, genStyle.Render("gen")+"  "+source+" -> "+output)
}

// TrkLine reports a regenerated class that was already tracked.
func TrkLine(w io.Writer, source, output string) {
	fmt.Fprintln(w, trkStyle.Render("trk")+"  "+source+" -> "+output)
}

func WarnLine(w io.Writer, source string, line int, message string) {
	fmt.Fprintf(w, "%s %s:%d: %s\n", warnStyle.Render("warn"), source, line, message)
}

func SummaryLine(w io.Writer, count int) {
	fmt.Fprintf(w, "generated %d classes\n", count)
}

// ListRow prints one tracked method with its columns padded to the given
// display widths.
func ListRow(w io.Writer, className, method, location string, statements, classWidth, methodWidth int) {
	fmt.Fprintf(w, "%s  %s  %d  %s\n",
		classStyle.Render(pad(className, classWidth)),
		pad(method, methodWidth),
		statements,
		trkStyle.Render(location))
}

// Width is the terminal display width of s.
func Width(s string) int {
	return runewidth.StringWidth(s)
}

func pad(s string, width int) string {
	if n := width - runewidth.StringWidth(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
