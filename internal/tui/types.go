package tui

import "github.com/charmbracelet/lipgloss"

type stage int

const (
	stageForm stage = iota
	stagePicker
	stagePreview
	stageCopying
)

type field int

const (
	fieldSession field = iota
	fieldClientUpdate
	fieldThemes
	fieldInterventions
	fieldObservations
	fieldPlan
	fieldNextSession
	fieldCount
)

// groupMarker separates a new option's label from its group in the picker
// search box.
const groupMarker = " @ "

const heroTitle = "Session Note"

const heroTagline = "Fill in the session, pick interventions and observations, then copy or print."

const (
	minViewportWidth          = 40
	viewportHorizontalPadding = 4
	chipLabelLimit            = 40
)

const (
	copyRichMessage    = "Copied to clipboard (rich format) – paste into Word."
	copyPlainMessage   = "Copied to clipboard as plain text."
	copyFailedMessage  = "Could not copy automatically. Open the preview and copy manually."
	printOpenedMessage = "Print layout opened. Print or save it as PDF from there."
)

var (
	heroAccentColor        = lipgloss.Color("#ff9f1c")
	heroSecondaryTextColor = lipgloss.Color("#f5deb3")
)

var (
	heroTitleStyle     = lipgloss.NewStyle().Bold(true).Foreground(heroAccentColor)
	taglineStyle       = lipgloss.NewStyle().Foreground(heroSecondaryTextColor).Italic(true)
	sectionHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
	focusHeaderStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	errorStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helperStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	valueStyle         = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0f0f0f")).Background(lipgloss.Color("#ffd166")).Padding(0, 1)
	chipStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("#e0def4")).Background(lipgloss.Color("#3a3650")).Padding(0, 1)
	statusBarStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#0f0f0f")).Background(lipgloss.Color("#8ecae6")).Padding(0, 1)
	currentLineStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#0f0f0f")).Background(lipgloss.Color("#8ecae6"))
	selectedStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#a3be8c")).Bold(true)
	groupHeaderStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("147"))
	previewBoxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#56526e")).Padding(0, 1)
)
