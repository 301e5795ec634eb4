// Package display renders roster output for the terminal.
package display

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	headerStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Printer writes styled output to a writer
type Printer struct {
	out      io.Writer
	renderer *glamour.TermRenderer
}

// Default prints to stdout
var Default = NewPrinter(os.Stdout)

// NewPrinter creates a Printer writing to w
func NewPrinter(w io.Writer) *Printer {
	return &Printer{out: w}
}

// SetOutput changes where the printer writes
func (p *Printer) SetOutput(w io.Writer) {
	p.out = w
}

// Writer returns the underlying writer
func (p *Printer) Writer() io.Writer {
	return p.out
}

// InitRenderer enables markdown rendering with glamour. Pass an empty style to
// pick one from the terminal background.
func (p *Printer) InitRenderer(style string, wordWrap int) error {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(wordWrap)}
	if style == "" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	p.renderer = r
	return nil
}

// Rendering reports whether markdown output is rendered
func (p *Printer) Rendering() bool {
	return p.renderer != nil
}

// ShowError prints an error message
func (p *Printer) ShowError(msg string) {
	fmt.Fprintln(p.out, errorStyle.Render("Error: ")+msg)
}

// ShowSuccess prints command feedback
func (p *Printer) ShowSuccess(msg string) {
	fmt.Fprintln(p.out, successStyle.Render(msg))
}

// ShowWarning prints a warning
func (p *Printer) ShowWarning(msg string) {
	fmt.Fprintln(p.out, warningStyle.Render(msg))
}

// ShowContent prints text as is
func (p *Printer) ShowContent(content string) {
	fmt.Fprintln(p.out, content)
}

// ShowContentRendered prints markdown, rendered when a renderer is set
func (p *Printer) ShowContentRendered(markdown string) {
	if p.renderer == nil {
		p.ShowContent(markdown)
		return
	}
	out, err := p.renderer.Render(markdown)
	if err != nil {
		p.ShowContent(markdown)
		return
	}
	fmt.Fprint(p.out, out)
}

// ShowKeyValues prints aligned "key: value" lines under a header
func (p *Printer) ShowKeyValues(title string, pairs [][2]string) {
	fmt.Fprintln(p.out, headerStyle.Render(title))
	width := 0
	for _, kv := range pairs {
		width = max(width, len(kv[0]))
	}
	for _, kv := range pairs {
		fmt.Fprintf(p.out, "  %s %s\n", mutedStyle.Render(kv[0]+":"+strings.Repeat(" ", width-len(kv[0]))), kv[1])
	}
}

// Package-level convenience functions using Default

// ShowError prints an error message to stdout
func ShowError(msg string) { Default.ShowError(msg) }

// ShowSuccess prints command feedback to stdout
func ShowSuccess(msg string) { Default.ShowSuccess(msg) }

// ShowWarning prints a warning to stdout
func ShowWarning(msg string) { Default.ShowWarning(msg) }

// ShowContent prints text to stdout
func ShowContent(content string) { Default.ShowContent(content) }

// ShowContentRendered prints markdown to stdout
func ShowContentRendered(markdown string) { Default.ShowContentRendered(markdown) }

// InitRenderer enables markdown rendering on the default printer
func InitRenderer() error { return Default.InitRenderer("", 100) }
