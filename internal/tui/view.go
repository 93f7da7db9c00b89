package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/csheth/sessionnote/internal/options"
)

func (m *model) View() string {
	switch m.stage {
	case stagePicker:
		return m.viewPicker()
	case stagePreview:
		return m.viewPreview()
	default:
		return m.viewForm()
	}
}

func (m *model) viewForm() string {
	parts := []string{
		m.heroView(),
		m.section(fieldSession, "Session", m.sessionLine()),
		m.section(fieldClientUpdate, "Client update", m.clientUpdate.View()),
		m.section(fieldThemes, "Significant themes", m.themes.View()),
		m.section(fieldInterventions, options.Interventions.Title, m.pickerTrigger(options.Interventions)),
		m.section(fieldObservations, options.Observations.Title, m.pickerTrigger(options.Observations)),
		m.section(fieldPlan, "Plan", m.plan.View()),
		m.section(fieldNextSession, "Next session date", m.dateView()),
		m.statusView(),
		m.sessionMeterView(),
		m.help.View(m.formKeys),
	}
	return joinNonEmpty(parts)
}

func (m *model) heroView() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		heroTitleStyle.Render(heroTitle),
		taglineStyle.Render(wordwrap.String(heroTagline, m.wrapWidth(0))),
	)
}

func (m *model) section(f field, title, body string) string {
	header := sectionHeaderStyle.Render("  " + title)
	if m.focus == f {
		header = focusHeaderStyle.Render("▸ " + title)
	}
	return header + "\n" + indentMultiline(body, "  ")
}

func (m *model) sessionLine() string {
	line := fmt.Sprintf("The client attended the scheduled session on by %s. The session lasted approximately %s minutes.",
		valueStyle.Render(m.form.Mode.Label()),
		valueStyle.Render(fmt.Sprintf("%d", m.form.Duration)),
	)
	if m.focus == fieldSession {
		line += "\n" + helperStyle.Render("←/→ change mode • [/] change duration")
	}
	return line
}

func (m *model) pickerTrigger(c options.Category) string {
	labels := m.selectedLabels(c)
	if len(labels) == 0 {
		return helperStyle.Render(fmt.Sprintf("Press enter to select %s", strings.ToLower(c.Key)))
	}
	return chips(labels, m.wrapWidth(2))
}

func (m *model) dateView() string {
	view := m.nextSession.View()
	if m.dateError != "" {
		view += "  " + errorStyle.Render(m.dateError)
	}
	return view
}

func (m *model) statusView() string {
	var parts []string
	if m.errorMessage != "" {
		parts = append(parts, errorStyle.Render(wordwrap.String(m.errorMessage, m.wrapWidth(0))))
	}
	if m.infoMessage != "" {
		message := m.infoMessage
		if m.stage == stageCopying {
			message = fmt.Sprintf("%s %s", m.spinner.View(), message)
		}
		parts = append(parts, helperStyle.Render(wordwrap.String(message, m.wrapWidth(0))))
	}
	return strings.Join(parts, "\n")
}

func (m *model) sessionMeterView() string {
	stats := []string{
		fmt.Sprintf("Mode %s", m.form.Mode.Label()),
		fmt.Sprintf("%d min", m.form.Duration),
		fmt.Sprintf("Interventions %d", len(m.form.Selection(options.Interventions.Key))),
		fmt.Sprintf("Observations %d", len(m.form.Selection(options.Observations.Key))),
	}
	stats = append(stats, m.jobStatusBadges()...)
	return statusBarStyle.Render(strings.Join(stats, "  •  "))
}

func (m *model) viewPicker() string {
	p := m.pickers.Active()
	if p == nil {
		return m.viewForm()
	}
	title := "Pick " + strings.ToLower(p.Category().Key)
	header := lipgloss.JoinHorizontal(
		lipgloss.Top,
		focusHeaderStyle.Render(title),
		helperStyle.Render(fmt.Sprintf("   %d selected", p.Count())),
	)
	listing := m.buildPickerListing()
	parts := []string{
		header,
		m.search.View() + "\n" + helperStyle.Render(fmt.Sprintf("Results: %d", len(p.Visible()))),
		windowLines(listing.content, listing.cursorLine, m.layout.listHeight),
		m.statusView(),
		m.help.View(m.pickerKeys),
	}
	return joinNonEmpty(parts)
}

func (m *model) viewPreview() string {
	parts := []string{
		sectionHeaderStyle.Render("Copyable preview"),
		previewBoxStyle.Render(m.preview.View()),
		helperStyle.Render("Copy with ctrl+y, or select the text in your terminal and copy it manually."),
		m.statusView(),
		m.help.View(m.previewKeys),
	}
	return joinNonEmpty(parts)
}

func joinNonEmpty(parts []string) string {
	filtered := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		filtered = append(filtered, part)
	}
	return strings.Join(filtered, "\n\n")
}
