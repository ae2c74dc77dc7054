// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jmallet/cv-builder/internal/layout"
	"github.com/jmallet/cv-builder/internal/sections"
	"github.com/jmallet/cv-builder/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintDocumentSummary outputs a human-readable summary of the loaded document.
func (p *Printer) PrintDocumentSummary(doc *types.CVDocument) {
	if doc == nil {
		return
	}

	var sb strings.Builder

	name := strings.TrimSpace(doc.PersonalInfo.FirstName + " " + doc.PersonalInfo.LastName)
	sb.WriteString(fmt.Sprintf("Name:     %s\n", name))
	sb.WriteString(fmt.Sprintf("Template: %s\n", doc.Template))
	sb.WriteString(fmt.Sprintf("Language: %s\n", doc.Language))
	sb.WriteString("\n")

	sb.WriteString("Sections:\n")
	count := 0
	for _, t := range doc.SectionOrder {
		if count >= maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(doc.SectionOrder)-maxItemsToShow))
			break
		}
		data := doc.SectionData(t)
		items := 0
		if data != nil {
			items = data.ItemCount()
		}
		sb.WriteString(fmt.Sprintf("  • %s (%d items)\n", sections.Title(t, doc.Language), items))
		count++
	}

	p.printBox("CV DOCUMENT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintBreakPlan outputs the pagination decisions for the document: which
// sections start on a new page and which items carry a manual break.
func (p *Printer) PrintBreakPlan(plan *layout.Plan) {
	if plan == nil {
		return
	}

	var sb strings.Builder
	breaks := 0
	for _, slot := range plan.Slots() {
		if !slot.BreakBefore {
			continue
		}
		breaks++
		if slot.Index < 0 {
			sb.WriteString(fmt.Sprintf("  • page break before section %s\n", slot.Section))
		} else {
			sb.WriteString(fmt.Sprintf("  • page break before item %d of %s\n", slot.Index+1, slot.Section))
		}
	}
	if breaks == 0 {
		sb.WriteString("  (no manual page breaks)\n")
	}
	sb.WriteString(fmt.Sprintf("\nTotal: %d forced break(s)", breaks))

	p.printBox("BREAK PLAN", sb.String())
}

// PrintRenderSummary outputs box counts for a rendered template pass.
func (p *Printer) PrintRenderSummary(doc *layout.Document) {
	if doc == nil {
		return
	}

	counts := map[layout.BoxKind]int{}
	total := 0
	doc.Walk(func(b *layout.Box) {
		counts[b.Kind]++
		total++
	})

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Template: %s\n", doc.Template))
	sb.WriteString(fmt.Sprintf("Boxes:    %d\n", total))
	sb.WriteString("\n")
	for _, kind := range []layout.BoxKind{layout.KindSection, layout.KindItem, layout.KindText, layout.KindTag} {
		if counts[kind] > 0 {
			sb.WriteString(fmt.Sprintf("  %-8s %d\n", string(kind), counts[kind]))
		}
	}

	p.printBox("RENDERED TREE", strings.TrimSuffix(sb.String(), "\n"))
}
