package note

import (
	"fmt"
	"strings"
)

const printStyles = `@page { margin: 18mm; }
body { background: #fff; color: #000; font-family: system-ui, "Segoe UI", Roboto, Arial, sans-serif; font-size: 12pt; line-height: 1.6; }
h1 { font-size: 14pt; font-weight: bold; margin: 0 0 8pt 0; }
p { margin: 0; }
p.label { font-weight: bold; margin-top: 12pt; }
p.text { white-space: pre-wrap; }
ul { list-style: disc; margin: 0; padding-left: 24pt; }`

// PrintHTML renders the document as a standalone page for the host print or
// save-as-PDF pipeline.
func (d Document) PrintHTML() string {
	var b strings.Builder
	b.WriteString("<!doctype html>\n<html><head><meta charset=\"utf-8\">")
	fmt.Fprintf(&b, "<title>%s</title>", escapeHTML(d.Title))
	b.WriteString("<style>\n")
	b.WriteString(printStyles)
	b.WriteString("\n</style></head>\n<body>\n<div id=\"print-note\">\n")
	for _, block := range d.Blocks {
		switch block.Kind {
		case BlockHeading:
			fmt.Fprintf(&b, "<h1>%s</h1>\n", escapeHTML(block.Text))
		case BlockParagraph:
			fmt.Fprintf(&b, "<p>%s</p>\n", escapeHTML(block.Text))
		case BlockLabel:
			fmt.Fprintf(&b, "<p class=\"label\">%s</p>\n", escapeHTML(block.Text))
		case BlockText:
			text := nbsp
			if !blank(block.Text) {
				text = normalizeNewlines(block.Text)
			}
			fmt.Fprintf(&b, "<p class=\"text\">%s</p>\n", escapeHTML(text))
		case BlockList:
			if len(block.Items) == 0 {
				fmt.Fprintf(&b, "<p>%s</p>\n", EmptyList)
				continue
			}
			b.WriteString("<ul>\n")
			for _, item := range block.Items {
				fmt.Fprintf(&b, "<li>%s</li>\n", escapeHTML(item))
			}
			b.WriteString("</ul>\n")
		}
	}
	b.WriteString("</div>\n</body></html>\n")
	return b.String()
}
