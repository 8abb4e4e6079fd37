package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format represents the output format type
type Format int

const (
	// FormatText renders plain text output without any styling
	FormatText Format = iota
	// FormatTerminal renders colored terminal output
	FormatTerminal
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatTerminal:
		return "term"
	default:
		return "unknown"
	}
}

// DetectFormat picks the format for w. Writers that are not terminals, and
// terminals where NO_COLOR is set or no colors are available, get text.
func DetectFormat(w io.Writer) Format {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return FormatText
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return FormatText
	}
	if termenv.NewOutput(w).EnvColorProfile() == termenv.Ascii {
		return FormatText
	}
	return FormatTerminal
}

var (
	ErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	WarningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// Printer writes diagnostic lines, styled when the format allows it
type Printer struct {
	w      io.Writer
	format Format
}

// NewPrinter creates a printer for w with a detected format
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w, format: DetectFormat(w)}
}

// NewPrinterWithFormat creates a printer with a fixed format
func NewPrinterWithFormat(w io.Writer, format Format) *Printer {
	return &Printer{w: w, format: format}
}

// Error writes msg as a single line
func (p *Printer) Error(msg string) {
	p.line(ErrorStyle, msg)
}

// Warning writes msg as a single line prefixed with "Warning: "
func (p *Printer) Warning(msg string) {
	p.line(WarningStyle, "Warning: "+msg)
}

func (p *Printer) line(style lipgloss.Style, msg string) {
	if p.format == FormatTerminal {
		msg = style.Render(msg)
	}
	fmt.Fprintln(p.w, msg)
}
