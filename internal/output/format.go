// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"taskman/internal/service"
)

const (
	// Width is the width of section separator lines.
	Width = 60

	// DoneMark and OpenMark prefix completed and pending tasks.
	DoneMark = "✓"
	OpenMark = "○"

	// CreatedLayout is the timestamp layout for created dates.
	CreatedLayout = service.TimeLayout
)

// Separator is the separator line for sections.
var Separator = strings.Repeat("=", Width)

// Printer writes formatted output, optionally colored.
type Printer struct {
	w     io.Writer
	color bool
}

// NewPrinter returns a Printer writing to w.
func NewPrinter(w io.Writer, colorEnabled bool) *Printer {
	return &Printer{w: w, color: colorEnabled}
}

// Writer returns the underlying writer.
func (p *Printer) Writer() io.Writer {
	return p.w
}

// Header prints a section title between separator lines, preceded by a blank line.
func (p *Printer) Header(title string) {
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, p.paint(Separator, color.FgCyan))
	fmt.Fprintln(p.w, p.paint(title, color.Bold))
	fmt.Fprintln(p.w, p.paint(Separator, color.FgCyan))
}

// Rule prints a separator line.
func (p *Printer) Rule() {
	fmt.Fprintln(p.w, p.paint(Separator, color.FgCyan))
}

// Task formats a task line.
// Format: "{MARK} [{ID}] {DESCRIPTION}\n"
func (p *Printer) Task(task service.Task) {
	mark := p.paint(OpenMark, color.FgYellow)
	if task.Completed {
		mark = p.paint(DoneMark, color.FgGreen)
	}
	fmt.Fprintf(p.w, "%s [%d] %s\n", mark, task.ID, normalizeDescription(task.Description))
}

// Tasks prints the task list section with a progress footer.
// Completed tasks also show when they were created.
func (p *Printer) Tasks(tasks []service.Task) {
	p.Header("YOUR TASKS")
	done := 0
	for _, task := range tasks {
		p.Task(task)
		if task.Completed {
			done++
			if !task.CreatedAt.IsZero() {
				fmt.Fprintf(p.w, "    Created: %s\n", task.CreatedAt.Format(CreatedLayout))
			}
		}
	}
	p.Rule()
	fmt.Fprintf(p.w, "Progress: %d/%d completed\n", done, len(tasks))
	p.Rule()
	fmt.Fprintln(p.w)
}

// Stats prints the statistics section.
func (p *Printer) Stats(st service.Stats) {
	p.Header("TASK STATISTICS")
	fmt.Fprintf(p.w, "%-20s%d\n", "Total tasks:", st.Total)
	fmt.Fprintf(p.w, "%-20s%d\n", "Completed:", st.Completed)
	fmt.Fprintf(p.w, "%-20s%d\n", "Pending:", st.Pending)
	fmt.Fprintf(p.w, "%-20s%.1f%%\n", "Completion rate:", st.CompletionRate())
	p.Rule()
	fmt.Fprintln(p.w)
}

// Success prints a confirmation line.
func (p *Printer) Success(format string, args ...any) {
	fmt.Fprintf(p.w, "%s %s\n", p.paint(DoneMark, color.FgGreen), fmt.Sprintf(format, args...))
}

// Info prints a plain line.
func (p *Printer) Info(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

// Error prints "error: ..." in the CLI's error format.
func Error(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "error: "+format+"\n", args...)
}

func (p *Printer) paint(s string, attrs ...color.Attribute) string {
	if !p.color {
		return s
	}
	c := color.New(attrs...)
	c.EnableColor()
	return c.Sprint(s)
}

// normalizeDescription normalizes a task description for display.
// - Empty or whitespace-only descriptions become "(untitled)"
// - Newlines are replaced with spaces
func normalizeDescription(desc string) string {
	desc = strings.ReplaceAll(desc, "\r", " ")
	desc = strings.ReplaceAll(desc, "\n", " ")

	if strings.TrimSpace(desc) == "" {
		return "(untitled)"
	}
	return desc
}
