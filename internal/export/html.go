// Package export turns a rendered box tree into print-ready output: a
// standalone HTML page whose CSS carries the break hints, and a PDF
// printed from that page by a headless browser. The browser is the
// paginating renderer: `break-before: page` forces a new page in front
// of a flagged box and `break-inside: avoid` keeps no-split boxes
// whole.
package export

import (
	"fmt"
	"html"
	"strings"

	"github.com/jmallet/cv-builder/internal/layout"
	"github.com/jmallet/cv-builder/internal/sections"
	"github.com/jmallet/cv-builder/internal/types"
)

// HTML renders the box tree as a complete standalone page.
func HTML(doc *layout.Document) (string, error) {
	if doc == nil {
		return "", &Error{Message: "nil document"}
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n")
	fmt.Fprintf(&b, "<html lang=%q>\n<head>\n<meta charset=\"utf-8\">\n", htmlLang(doc.Language))
	fmt.Fprintf(&b, "<title>CV</title>\n<style>\n%s</style>\n</head>\n<body>\n", stylesheet(doc))
	fmt.Fprintf(&b, "<main class=\"cv cv-%s\" data-paper=%q>\n", html.EscapeString(doc.Template), paperOrDefault(doc.Paper))
	for i := range doc.Boxes {
		writeBox(&b, &doc.Boxes[i], 1)
	}
	b.WriteString("</main>\n</body>\n</html>\n")
	return b.String(), nil
}

func htmlLang(language string) string {
	if language == "" {
		return "en"
	}
	return language
}

func paperOrDefault(paper string) string {
	if paper == layout.PaperLetter {
		return layout.PaperLetter
	}
	return layout.PaperA4
}

func writeBox(b *strings.Builder, box *layout.Box, depth int) {
	indent := strings.Repeat("  ", depth)
	b.WriteString(indent)
	b.WriteString("<div")
	writeAttrs(b, box)
	b.WriteString(">")

	if box.Text != "" {
		b.WriteString(html.EscapeString(box.Text))
	}
	if len(box.Children) > 0 {
		b.WriteString("\n")
		for i := range box.Children {
			writeBox(b, &box.Children[i], depth+1)
		}
		b.WriteString(indent)
	}
	b.WriteString("</div>\n")
}

func writeAttrs(b *strings.Builder, box *layout.Box) {
	classes := []string{"box", "box-" + string(box.Kind)}
	if box.Class != "" {
		classes = append(classes, box.Class)
	}
	if box.BreakBefore {
		classes = append(classes, "break-before")
	}
	if box.NoSplit {
		classes = append(classes, "no-split")
	}
	fmt.Fprintf(b, " class=%q", html.EscapeString(strings.Join(classes, " ")))
	if box.Section != "" {
		fmt.Fprintf(b, " data-section=%q", html.EscapeString(string(box.Section)))
	}
	if box.ItemID != "" {
		fmt.Fprintf(b, " data-item-id=%q", html.EscapeString(box.ItemID))
	}
}

func stylesheet(doc *layout.Document) string {
	theme := themeOrDefault(doc.Theme)
	size := "A4"
	if paperOrDefault(doc.Paper) == layout.PaperLetter {
		size = "letter"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "@page { size: %s; margin: 14mm; }\n", size)
	fmt.Fprintf(&b, "body { margin: 0; font-family: %s, sans-serif; color: %s; font-size: %s; }\n",
		cssValue(theme.FontFamily), cssValue(theme.PrimaryColor), cssValue(theme.FontSize.Text))
	b.WriteString(".break-before { break-before: page; page-break-before: always; }\n")
	b.WriteString(".no-split { break-inside: avoid; page-break-inside: avoid; }\n")
	b.WriteString(".box-hidden { position: absolute; left: -10000px; top: 0; }\n")
	b.WriteString(".box-page { display: block; }\n")
	b.WriteString(".box-column { display: inline-block; vertical-align: top; width: 48%; }\n")
	fmt.Fprintf(&b, ".box-title { font-size: %s; color: %s; font-weight: bold; margin: 0.8em 0 0.3em; }\n",
		cssValue(theme.FontSize.Title), cssValue(theme.AccentColor))
	fmt.Fprintf(&b, ".box-header { font-size: %s; margin-bottom: 0.6em; }\n", cssValue(theme.FontSize.Header))
	b.WriteString(".box-item { margin-bottom: 0.5em; }\n")
	fmt.Fprintf(&b, ".box-tag { display: inline-block; font-size: %s; color: %s; ", cssValue(theme.FontSize.Tags), cssValue(theme.SecondaryColor))
	b.WriteString("border: 1px solid currentColor; border-radius: 3px; padding: 0 0.3em; margin: 0 0.2em 0.2em 0; }\n")
	fmt.Fprintf(&b, ".box-text { font-size: %s; }\n", cssValue(theme.FontSize.Text))
	return b.String()
}

// themeOrDefault fills empty theme slots from the default theme so the
// stylesheet never emits blank CSS values.
func themeOrDefault(theme types.ThemeConfig) types.ThemeConfig {
	def := sections.DefaultTheme()
	if theme.PrimaryColor == "" {
		theme.PrimaryColor = def.PrimaryColor
	}
	if theme.SecondaryColor == "" {
		theme.SecondaryColor = def.SecondaryColor
	}
	if theme.AccentColor == "" {
		theme.AccentColor = def.AccentColor
	}
	if theme.FontFamily == "" {
		theme.FontFamily = def.FontFamily
	}
	if theme.FontSize == nil {
		theme.FontSize = def.FontSize
	} else {
		merged := *theme.FontSize
		if merged.Name == "" {
			merged.Name = def.FontSize.Name
		}
		if merged.Title == "" {
			merged.Title = def.FontSize.Title
		}
		if merged.Header == "" {
			merged.Header = def.FontSize.Header
		}
		if merged.Text == "" {
			merged.Text = def.FontSize.Text
		}
		if merged.Tags == "" {
			merged.Tags = def.FontSize.Tags
		}
		theme.FontSize = &merged
	}
	return theme
}

// cssValue strips characters that could terminate a declaration.
func cssValue(v string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ';', '{', '}', '<', '>':
			return -1
		}
		return r
	}, v)
}
