// internal/platform/ui/pterm_reporter.go
package ui

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/pterm/pterm"

	"depboot/internal/core/ports"
)

// PTermReporter renders events with pterm: a banner on first output,
// gradient-coloured step numbers and boxed tables.
type PTermReporter struct {
	mu  sync.Mutex
	out io.Writer

	headerShown bool
	gradientIdx int
}

// NewPTermReporter creates a styled reporter writing to out.
func NewPTermReporter(out io.Writer) *PTermReporter {
	return &PTermReporter{out: out}
}

// Status prints "icon message" in the severity colour with a dimmed detail.
func (p *PTermReporter) Status(icon, message string, severity ports.Severity, detail string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.header()

	line := fmt.Sprintf("%s %s", icon, severityStyle(severity).Sprint(message))
	if detail != "" {
		line += " " + StyleSecondary.Sprint("("+detail+")")
	}
	fmt.Fprintln(p.out, line)
}

// Step prints a numbered section title.
func (p *PTermReporter) Step(n int, title, description string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.header()

	num := p.nextColor().Sprintf("[%d]", n)
	fmt.Fprintln(p.out)
	fmt.Fprintf(p.out, "%s %s\n", num, StyleText.Sprint(strings.ToUpper(title)))
	if description != "" {
		fmt.Fprintf(p.out, "    %s\n", StyleSecondary.Sprint(description))
	}
	fmt.Fprintln(p.out, StylePrimary.Sprint(SeparatorLight))
}

// Table renders a boxed table with the title on top.
func (p *PTermReporter) Table(headers []string, rows [][]string, title string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.header()

	data := make(pterm.TableData, 0, len(rows)+1)
	data = append(data, headers)
	for _, r := range rows {
		data = append(data, padRow(r, len(headers)))
	}

	rendered, err := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithData(data).
		Srender()
	if err != nil {
		for _, r := range data {
			fmt.Fprintln(p.out, strings.Join(r, " | "))
		}
		return
	}

	if title != "" {
		fmt.Fprintln(p.out, p.nextColor().Sprint(title))
	}
	fmt.Fprintln(p.out, rendered)
}

// Progress prints a static bar "[■■□□] 2/4 label".
func (p *PTermReporter) Progress(current, total int, label string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.header()

	fmt.Fprintf(p.out, "%s %s %s\n",
		StyleAccent.Sprint(progressBar(current, total, 20)),
		StyleText.Sprintf("%d/%d", current, total),
		StyleSecondary.Sprint(label),
	)
}

// header prints the banner once. Callers hold p.mu.
func (p *PTermReporter) header() {
	if p.headerShown {
		return
	}
	p.headerShown = true
	fmt.Fprintln(p.out, StyleAccent.Sprint(Banner))
	fmt.Fprintln(p.out, StylePrimary.Sprint(SeparatorHeavy))
}

// nextColor cycles through Gradient. Callers hold p.mu.
func (p *PTermReporter) nextColor() pterm.RGB {
	c := Gradient[p.gradientIdx%len(Gradient)]
	p.gradientIdx++
	return c
}

func progressBar(current, total, width int) string {
	if total <= 0 {
		total = 1
	}
	if current < 0 {
		current = 0
	}
	if current > total {
		current = total
	}
	filled := current * width / total
	return "[" + strings.Repeat(BarFull, filled) + strings.Repeat(BarEmpty, width-filled) + "]"
}

func padRow(r []string, n int) []string {
	if len(r) >= n {
		return r
	}
	out := make([]string, n)
	copy(out, r)
	return out
}
