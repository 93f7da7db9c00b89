package tui

import (
	"fmt"
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/wordwrap"

	"github.com/csheth/sessionnote/internal/options"
)

const (
	formChrome    = 22
	pickerChrome  = 8
	previewChrome = 6
)

type pageLayout struct {
	windowWidth    int
	windowHeight   int
	contentWidth   int
	textareaHeight int
	listHeight     int
	previewHeight  int
}

func newPageLayout() pageLayout {
	return pageLayout{
		contentWidth:   76,
		textareaHeight: 3,
		listHeight:     16,
		previewHeight:  18,
	}
}

func (l *pageLayout) Update(width, height int) {
	l.windowWidth = width
	l.windowHeight = height
	innerWidth := width - viewportHorizontalPadding
	if innerWidth < minViewportWidth {
		innerWidth = minViewportWidth
	}
	l.contentWidth = innerWidth
	l.textareaHeight = clamp((height-formChrome)/3, 2, 6)
	l.listHeight = max(height-pickerChrome, 6)
	l.previewHeight = max(height-previewChrome, 6)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

type contentBuilder struct {
	builder strings.Builder
	lines   int
}

func (cb *contentBuilder) WriteString(s string) {
	cb.builder.WriteString(s)
	cb.lines += strings.Count(s, "\n")
}

func (cb *contentBuilder) WriteRune(r rune) {
	cb.builder.WriteRune(r)
	if r == '\n' {
		cb.lines++
	}
}

func (cb *contentBuilder) String() string {
	return cb.builder.String()
}

func (cb *contentBuilder) Line() int {
	return cb.lines
}

// pickerListing is the rendered option list with the line of the cursor.
type pickerListing struct {
	content    string
	cursorLine int
}

func (m *model) buildPickerListing() pickerListing {
	p := m.pickers.Active()
	if p == nil {
		return pickerListing{}
	}
	cb := &contentBuilder{}
	cursorLine := 0
	wrap := m.wrapWidth(6)
	idx := 0
	groups := p.Groups()
	if len(groups) == 0 {
		if strings.TrimSpace(p.Query()) != "" {
			cb.WriteString(helperStyle.Render(fmt.Sprintf("No matches. Press ctrl+n to add %q.", strings.TrimSpace(p.Query()))))
		} else {
			cb.WriteString(helperStyle.Render("No options yet. Type a label (optionally label @ group) and press ctrl+n to add it."))
		}
		return pickerListing{content: cb.String()}
	}
	for gi, group := range groups {
		if gi > 0 {
			cb.WriteRune('\n')
		}
		selected, total := p.GroupState(group.Name)
		header := groupHeaderStyle.Render(group.Name) + helperStyle.Render(fmt.Sprintf("  %d/%d", selected, total))
		cb.WriteString(header)
		cb.WriteRune('\n')
		for _, opt := range group.Options {
			mark := "[ ]"
			label := opt.Label
			if p.IsSelected(opt.ID) {
				mark = "[x]"
				label = selectedStyle.Render(label)
			}
			line := fmt.Sprintf(" %s %s", mark, label)
			if idx == m.pickerCursor {
				cursorLine = cb.Line()
				line = currentLineStyle.Render(xansi.Strip(line))
			}
			cb.WriteString(line)
			cb.WriteRune('\n')
			if opt.Description != "" {
				cb.WriteString(helperStyle.Render(indentMultiline(wordwrap.String(opt.Description, wrap), "     ")))
				cb.WriteRune('\n')
			}
			idx++
		}
	}
	return pickerListing{content: strings.TrimRight(cb.String(), "\n"), cursorLine: cursorLine}
}

// windowLines returns at most height lines of content keeping line visible.
func windowLines(content string, line, height int) string {
	lines := splitLinesPreserve(content)
	if height <= 0 || len(lines) <= height {
		return content
	}
	start := line - height/2
	if start < 0 {
		start = 0
	}
	if start+height > len(lines) {
		start = len(lines) - height
	}
	return strings.Join(lines[start:start+height], "\n")
}

func flattenGroups(groups []options.Group) []options.Option {
	var out []options.Option
	for _, g := range groups {
		out = append(out, g.Options...)
	}
	return out
}

func chips(labels []string, width int) string {
	rendered := make([]string, len(labels))
	for i, label := range labels {
		rendered[i] = chipStyle.Render(xansi.Truncate(label, chipLabelLimit, "…"))
	}
	var b strings.Builder
	lineWidth := 0
	for i, chip := range rendered {
		w := xansi.StringWidth(chip)
		if i > 0 {
			if lineWidth+1+w > width {
				b.WriteRune('\n')
				lineWidth = 0
			} else {
				b.WriteRune(' ')
				lineWidth++
			}
		}
		b.WriteString(chip)
		lineWidth += w
	}
	return b.String()
}

func indentMultiline(text, prefix string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}

func (m *model) wrapWidth(padding int) int {
	width := m.layout.contentWidth
	if width <= 0 {
		width = 80
	}
	if padding < 0 {
		padding = 0
	}
	available := width - padding
	if available < 20 {
		available = 20
	}
	return available
}

func splitLinesPreserve(content string) []string {
	if content == "" {
		return []string{""}
	}
	return strings.Split(content, "\n")
}
