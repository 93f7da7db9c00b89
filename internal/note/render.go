package note

import (
	"errors"
	"fmt"
	"strings"
)

// Target selects an output format.
type Target string

const (
	// TargetHTML is the standalone HTML document placed on the clipboard.
	TargetHTML Target = "html"
	// TargetPlainText is the plain-text clipboard representation.
	TargetPlainText Target = "text"
	// TargetPrint is the print layout document.
	TargetPrint Target = "print"
	// TargetPreview is the HTML fragment shown as the copyable preview.
	TargetPreview Target = "preview"
	// TargetMarkdown drives the terminal preview.
	TargetMarkdown Target = "markdown"
)

// ErrUnknownTarget is returned by Render for unsupported targets.
var ErrUnknownTarget = errors.New("note: unknown render target")

// Targets lists every supported target.
func Targets() []Target {
	return []Target{TargetHTML, TargetPlainText, TargetPrint, TargetPreview, TargetMarkdown}
}

// Render produces rec in the requested format. Rendering has no side effects
// and may be repeated.
func Render(rec Record, target Target) (string, error) {
	switch Target(strings.ToLower(string(target))) {
	case TargetHTML:
		return RenderHTML(rec), nil
	case TargetPlainText, "plaintext", "plain":
		return RenderPlainText(rec), nil
	case TargetPrint:
		return Layout(rec).PrintHTML(), nil
	case TargetPreview:
		return RenderFragment(rec), nil
	case TargetMarkdown, "md":
		return RenderMarkdown(rec), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownTarget, target)
	}
}

var htmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func escapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

func normalizeNewlines(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}

// RenderFragment renders the note body as an HTML fragment.
func RenderFragment(rec Record) string {
	var b strings.Builder
	b.WriteString(`<div style="font-family: system-ui,Segoe UI,Roboto,Arial; line-height:1.45; color:#000;">`)
	b.WriteByte('\n')
	for _, block := range Layout(rec).Blocks {
		b.WriteString("  ")
		switch block.Kind {
		case BlockHeading:
			fmt.Fprintf(&b, `<h1 style="font-size:14pt; margin:0 0 8pt 0;">%s</h1>`, escapeHTML(block.Text))
		case BlockParagraph:
			fmt.Fprintf(&b, "<p>%s</p>", escapeHTML(block.Text))
		case BlockLabel:
			fmt.Fprintf(&b, "<p><strong>%s</strong></p>", escapeHTML(block.Text))
		case BlockText:
			fmt.Fprintf(&b, "<p>%s</p>", htmlText(block.Text))
		case BlockList:
			b.WriteString(htmlList(block.Items))
		}
		b.WriteByte('\n')
	}
	b.WriteString("</div>")
	return b.String()
}

// RenderHTML wraps the fragment into a document that pastes cleanly into
// word processors and mail clients.
func RenderHTML(rec Record) string {
	return "<!doctype html>\n<html><head><meta charset=\"utf-8\"></head><body>\n" +
		RenderFragment(rec) +
		"\n</body></html>"
}

func htmlText(s string) string {
	if blank(s) {
		return "&nbsp;"
	}
	return strings.ReplaceAll(escapeHTML(normalizeNewlines(s)), "\n", "<br>")
}

func htmlList(items []string) string {
	if len(items) == 0 {
		return "<p>" + EmptyList + "</p>"
	}
	var b strings.Builder
	b.WriteString("<ul>")
	for _, item := range items {
		b.WriteString("<li>")
		b.WriteString(escapeHTML(item))
		b.WriteString("</li>")
	}
	b.WriteString("</ul>")
	return b.String()
}

// RenderPlainText renders one line per block; free text is kept verbatim.
func RenderPlainText(rec Record) string {
	blocks := Layout(rec).Blocks
	lines := make([]string, 0, len(blocks))
	for _, block := range blocks {
		switch block.Kind {
		case BlockText:
			if blank(block.Text) {
				lines = append(lines, "")
				continue
			}
			lines = append(lines, normalizeNewlines(block.Text))
		case BlockList:
			lines = append(lines, textList(block.Items))
		default:
			lines = append(lines, block.Text)
		}
	}
	return strings.Join(lines, "\n")
}

func textList(items []string) string {
	if len(items) == 0 {
		return EmptyList
	}
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = "- " + item
	}
	return strings.Join(lines, "\n")
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`, "`", "\\`", "*", `\*`, "_", `\_`,
	"[", `\[`, "]", `\]`, "#", `\#`, "<", `\<`, ">", `\>`,
)

// RenderMarkdown renders the note for the terminal preview.
func RenderMarkdown(rec Record) string {
	blocks := Layout(rec).Blocks
	parts := make([]string, 0, len(blocks))
	for _, block := range blocks {
		switch block.Kind {
		case BlockHeading:
			parts = append(parts, "# "+markdownEscaper.Replace(block.Text))
		case BlockParagraph:
			parts = append(parts, markdownEscaper.Replace(block.Text))
		case BlockLabel:
			parts = append(parts, "**"+markdownEscaper.Replace(block.Text)+"**")
		case BlockText:
			if blank(block.Text) {
				parts = append(parts, nbsp)
				continue
			}
			lines := strings.Split(normalizeNewlines(block.Text), "\n")
			for i := range lines {
				lines[i] = markdownEscaper.Replace(lines[i])
			}
			parts = append(parts, strings.Join(lines, "  \n"))
		case BlockList:
			if len(block.Items) == 0 {
				parts = append(parts, EmptyList)
				continue
			}
			items := make([]string, len(block.Items))
			for i, item := range block.Items {
				items[i] = "- " + markdownEscaper.Replace(item)
			}
			parts = append(parts, strings.Join(items, "\n"))
		}
	}
	return strings.Join(parts, "\n\n") + "\n"
}
