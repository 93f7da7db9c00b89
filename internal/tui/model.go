package tui

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/csheth/sessionnote/internal/clipboard"
	"github.com/csheth/sessionnote/internal/note"
	"github.com/csheth/sessionnote/internal/options"
	"github.com/csheth/sessionnote/internal/picker"
	"github.com/csheth/sessionnote/internal/printer"
	"github.com/csheth/sessionnote/internal/store"
)

// Config wires runtime dependencies into the TUI program.
type Config struct {
	Store     *store.Store
	Defaults  note.Form
	Clipboard clipboard.Writer
	Printer   printer.Printer
	Logger    *zap.Logger
}

// Run starts the interactive program and blocks until it exits.
func Run(config Config, altScreen bool) error {
	applyColorProfilePreference()
	opts := []tea.ProgramOption{}
	if altScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	_, err := tea.NewProgram(New(config), opts...).Run()
	return err
}

// New returns a tea.Model ready to be mounted into a Program.
func New(config Config) tea.Model {
	return newModel(config)
}

type model struct {
	config      Config
	logger      *zap.Logger
	stage       stage
	returnStage stage
	layout      pageLayout

	form      note.Form
	focus     field
	dateError string

	clientUpdate textarea.Model
	themes       textarea.Model
	plan         textarea.Model
	nextSession  textinput.Model

	pickers      picker.State
	search       textinput.Model
	pickerCursor int
	listFocused  bool

	preview viewport.Model

	spinner     spinner.Model
	help        help.Model
	formKeys    formKeyMap
	pickerKeys  pickerKeyMap
	previewKeys previewKeyMap

	jobs       *jobBus
	activeJobs map[string]jobSnapshot

	infoMessage  string
	errorMessage string
}

func newModel(config Config) *model {
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if config.Store == nil {
		config.Store = store.New(nil, logger)
	}
	if config.Clipboard == nil {
		config.Clipboard = clipboard.NewSystem(logger)
	}
	if config.Printer == nil {
		config.Printer = printer.NewBrowser("", logger)
	}
	form := config.Defaults
	if form.Mode == "" {
		defaults := note.NewForm()
		if form.Plan != "" {
			defaults.Plan = form.Plan
		}
		form = defaults
	}
	if form.Selections == nil {
		form.Selections = map[string][]string{}
	}

	nextSession := textinput.New()
	nextSession.Placeholder = "YYYY-MM-DD"
	nextSession.CharLimit = 10
	nextSession.Width = 12
	nextSession.SetValue(form.NextSession)

	search := textinput.New()
	search.Placeholder = "Search or type to add…"
	search.CharLimit = 120
	search.Width = 60

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	vp := viewport.New(80, 20)
	vp.MouseWheelEnabled = true

	m := &model{
		config:       config,
		logger:       logger.Named("tui"),
		stage:        stageForm,
		layout:       newPageLayout(),
		form:         form,
		focus:        fieldSession,
		clientUpdate: newTextarea("Type the update…", form.ClientUpdate),
		themes:       newTextarea("Type the themes…", form.Themes),
		plan:         newTextarea("Writer will continue to support the client in…", form.Plan),
		nextSession:  nextSession,
		search:       search,
		preview:      vp,
		spinner:      spin,
		help:         help.New(),
		formKeys:     newFormKeyMap(),
		pickerKeys:   newPickerKeyMap(),
		previewKeys:  newPreviewKeyMap(),
		jobs:         newJobBus(logger),
		activeJobs:   map[string]jobSnapshot{},
		infoMessage:  "Tab between fields. Enter on a picker opens it.",
	}
	m.applyLayout()
	return m
}

func newTextarea(placeholder, value string) textarea.Model {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.CharLimit = 0
	ta.ShowLineNumbers = false
	ta.SetWidth(72)
	ta.SetHeight(3)
	ta.SetValue(value)
	ta.Blur()
	return ta
}

func (m *model) Init() tea.Cmd {
	return textarea.Blink
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout.Update(msg.Width, msg.Height)
		m.applyLayout()
		return m, nil
	case spinner.TickMsg:
		if m.stage == stageCopying || len(m.activeJobs) > 0 {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	case jobSignalMsg:
		m.activeJobs[msg.Snapshot.ID] = msg.Snapshot
		return m, m.spinner.Tick
	case jobResultEnvelope:
		delete(m.activeJobs, msg.Snapshot.ID)
		if msg.Payload == nil {
			return m, nil
		}
		return m.Update(msg.Payload)
	case copyResultMsg:
		m.handleCopyResult(msg)
		return m, nil
	case printResultMsg:
		m.handlePrintResult(msg)
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.formKeys.Quit) {
			return m, tea.Quit
		}
		switch m.stage {
		case stagePicker:
			return m.handlePickerKey(msg)
		case stagePreview:
			return m.handlePreviewKey(msg)
		case stageCopying:
			return m, nil
		default:
			return m.handleFormKey(msg)
		}
	case tea.MouseMsg:
		if m.stage == stagePreview {
			var cmd tea.Cmd
			m.preview, cmd = m.preview.Update(msg)
			return m, cmd
		}
		return m, nil
	}
	return m, m.updateFocused(msg)
}

func (m *model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.formKeys.Copy):
		return m, m.startCopy()
	case key.Matches(msg, m.formKeys.Print):
		return m, m.startPrint()
	case key.Matches(msg, m.formKeys.Preview):
		m.showPreview()
		return m, nil
	case key.Matches(msg, m.formKeys.Next):
		return m, m.setFocus(m.focus + 1)
	case key.Matches(msg, m.formKeys.Prev):
		return m, m.setFocus(m.focus - 1)
	}

	switch m.focus {
	case fieldSession:
		switch {
		case key.Matches(msg, m.formKeys.ModeNext):
			m.form.Mode = m.form.Mode.Next(1)
		case key.Matches(msg, m.formKeys.ModePrev):
			m.form.Mode = m.form.Mode.Next(-1)
		case key.Matches(msg, m.formKeys.DurationNext):
			m.form.Duration = m.form.Duration.Next(1)
		case key.Matches(msg, m.formKeys.DurationPrev):
			m.form.Duration = m.form.Duration.Next(-1)
		}
		return m, nil
	case fieldInterventions, fieldObservations:
		if key.Matches(msg, m.formKeys.Open) {
			return m, m.openPicker(categoryFor(m.focus))
		}
		return m, nil
	case fieldNextSession:
		if msg.Type == tea.KeyEnter {
			return m, m.setFocus(m.focus + 1)
		}
	}
	return m, m.updateFocused(msg)
}

func (m *model) updateFocused(msg tea.Msg) tea.Cmd {
	if m.stage == stagePicker {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return cmd
	}
	if m.stage != stageForm {
		return nil
	}
	var cmd tea.Cmd
	switch m.focus {
	case fieldClientUpdate:
		m.clientUpdate, cmd = m.clientUpdate.Update(msg)
	case fieldThemes:
		m.themes, cmd = m.themes.Update(msg)
	case fieldPlan:
		m.plan, cmd = m.plan.Update(msg)
	case fieldNextSession:
		m.nextSession, cmd = m.nextSession.Update(msg)
		m.validateDate()
	}
	return cmd
}

func (m *model) setFocus(f field) tea.Cmd {
	f = ((f % fieldCount) + fieldCount) % fieldCount
	m.focus = f
	m.clientUpdate.Blur()
	m.themes.Blur()
	m.plan.Blur()
	m.nextSession.Blur()
	switch f {
	case fieldClientUpdate:
		return m.clientUpdate.Focus()
	case fieldThemes:
		return m.themes.Focus()
	case fieldPlan:
		return m.plan.Focus()
	case fieldNextSession:
		return m.nextSession.Focus()
	}
	return nil
}

func (m *model) validateDate() {
	f := m.currentForm()
	if err := f.Validate(); errors.Is(err, note.ErrInvalidDate) {
		m.dateError = "Use the YYYY-MM-DD format."
		return
	}
	m.dateError = ""
}

func categoryFor(f field) options.Category {
	if f == fieldObservations {
		return options.Observations
	}
	return options.Interventions
}

func (m *model) currentForm() note.Form {
	f := m.form
	f.ClientUpdate = m.clientUpdate.Value()
	f.Themes = m.themes.Value()
	f.Plan = m.plan.Value()
	f.NextSession = strings.TrimSpace(m.nextSession.Value())
	return f
}

func (m *model) mergedLists() map[string][]options.Option {
	lists := map[string][]options.Option{}
	for _, c := range options.Categories() {
		lists[c.Key] = m.config.Store.Merged(c)
	}
	return lists
}

func (m *model) record() note.Record {
	return note.Build(m.currentForm(), m.mergedLists())
}

func (m *model) selectedLabels(c options.Category) []string {
	return options.Resolve(m.form.Selection(c.Key), m.config.Store.Merged(c))
}

func (m *model) startCopy() tea.Cmd {
	if m.stage == stageCopying {
		return nil
	}
	rec := m.record()
	m.returnStage = m.stage
	m.stage = stageCopying
	m.errorMessage = ""
	m.infoMessage = "Copying note…"
	return m.jobs.Start(jobKindCopy, copyNoteJob(m.config.Clipboard, rec))
}

func (m *model) handleCopyResult(msg copyResultMsg) {
	m.stage = m.returnStage
	if msg.err != nil {
		m.errorMessage = copyFailedMessage
		m.infoMessage = ""
		m.showPreview()
		return
	}
	m.errorMessage = ""
	if msg.rich {
		m.infoMessage = copyRichMessage
	} else {
		m.infoMessage = copyPlainMessage
	}
}

func (m *model) startPrint() tea.Cmd {
	m.errorMessage = ""
	m.infoMessage = "Opening print layout…"
	return m.jobs.Start(jobKindPrint, printNoteJob(m.config.Printer, m.record()))
}

func (m *model) handlePrintResult(msg printResultMsg) {
	switch {
	case msg.err == nil:
		m.errorMessage = ""
		m.infoMessage = printOpenedMessage
	case errors.Is(msg.err, printer.ErrNoOpener):
		m.infoMessage = ""
		m.errorMessage = "No program available to open the print layout. Run `sessionnote print` on a desktop session."
	default:
		m.infoMessage = ""
		m.errorMessage = fmt.Sprintf("Print failed: %v", msg.err)
	}
}

func (m *model) showPreview() {
	m.stage = stagePreview
	m.refreshPreview()
	m.preview.GotoTop()
}

func (m *model) refreshPreview() {
	md := note.RenderMarkdown(m.record())
	m.preview.SetContent(renderMarkdown(md, m.layout.contentWidth-4))
}

func (m *model) handlePreviewKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.previewKeys.Back):
		m.stage = stageForm
		return m, m.setFocus(m.focus)
	case key.Matches(msg, m.previewKeys.Copy):
		return m, m.startCopy()
	case key.Matches(msg, m.previewKeys.Print):
		return m, m.startPrint()
	}
	var cmd tea.Cmd
	m.preview, cmd = m.preview.Update(msg)
	return m, cmd
}

func (m *model) openPicker(c options.Category) tea.Cmd {
	if _, err := m.pickers.Open(c, m.config.Store, m.form.Selection(c.Key)); err != nil {
		m.errorMessage = err.Error()
		return nil
	}
	m.stage = stagePicker
	m.pickerCursor = 0
	m.listFocused = false
	m.search.SetValue("")
	m.errorMessage = ""
	m.infoMessage = ""
	m.clientUpdate.Blur()
	m.themes.Blur()
	m.plan.Blur()
	m.nextSession.Blur()
	return m.search.Focus()
}

func (m *model) closePicker() tea.Cmd {
	m.stage = stageForm
	m.search.Blur()
	m.search.SetValue("")
	m.listFocused = false
	m.pickerCursor = 0
	return m.setFocus(m.focus)
}

func (m *model) visibleOptions() []options.Option {
	p := m.pickers.Active()
	if p == nil {
		return nil
	}
	return flattenGroups(p.Groups())
}

func (m *model) optionAtCursor() (options.Option, bool) {
	visible := m.visibleOptions()
	if m.pickerCursor < 0 || m.pickerCursor >= len(visible) {
		return options.Option{}, false
	}
	return visible[m.pickerCursor], true
}

func (m *model) moveCursorTo(id string) {
	for i, opt := range m.visibleOptions() {
		if opt.ID == id {
			m.pickerCursor = i
			return
		}
	}
}

func (m *model) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p := m.pickers.Active()
	if p == nil {
		return m, m.closePicker()
	}
	switch {
	case key.Matches(msg, m.pickerKeys.Close):
		m.pickers.Cancel()
		m.infoMessage = "Picker closed without changes."
		return m, m.closePicker()
	case key.Matches(msg, m.pickerKeys.Done):
		category, ids, ok := m.pickers.Commit()
		if ok {
			m.form = m.form.WithSelection(category, ids)
			m.logger.Debug("selection committed", zap.String("category", category), zap.Int("count", len(ids)))
			m.infoMessage = fmt.Sprintf("%d selected.", len(ids))
		}
		return m, m.closePicker()
	case key.Matches(msg, m.pickerKeys.Up):
		if !m.listFocused {
			return m, nil
		}
		if m.pickerCursor == 0 {
			m.listFocused = false
			return m, m.search.Focus()
		}
		m.pickerCursor--
		return m, nil
	case key.Matches(msg, m.pickerKeys.Down):
		visible := m.visibleOptions()
		if len(visible) == 0 {
			return m, nil
		}
		if !m.listFocused {
			m.listFocused = true
			m.search.Blur()
			m.pickerCursor = clamp(m.pickerCursor, 0, len(visible)-1)
			return m, nil
		}
		if m.pickerCursor < len(visible)-1 {
			m.pickerCursor++
		}
		return m, nil
	case key.Matches(msg, m.pickerKeys.ToggleGroup):
		if opt, ok := m.optionAtCursor(); ok {
			p.ToggleGroup(opt.GroupName())
		}
		return m, nil
	case key.Matches(msg, m.pickerKeys.SelectAll):
		p.SelectAllVisible()
		return m, nil
	case key.Matches(msg, m.pickerKeys.Clear):
		p.Clear()
		return m, nil
	case key.Matches(msg, m.pickerKeys.Add):
		opt, ok := addFromSearch(p)
		if !ok {
			m.errorMessage = "Type a label in the search box first (label @ group to file it)."
			return m, nil
		}
		m.search.SetValue("")
		m.errorMessage = ""
		m.infoMessage = fmt.Sprintf("Added %q.", opt.Label)
		m.moveCursorTo(opt.ID)
		return m, nil
	case m.listFocused && key.Matches(msg, m.pickerKeys.Toggle):
		if opt, ok := m.optionAtCursor(); ok {
			p.Toggle(opt.ID)
		}
		return m, nil
	}

	var cmds []tea.Cmd
	if m.listFocused {
		if msg.Type != tea.KeyRunes && msg.Type != tea.KeyBackspace {
			return m, nil
		}
		m.listFocused = false
		cmds = append(cmds, m.search.Focus())
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	cmds = append(cmds, cmd)
	if m.search.Value() != p.Query() {
		p.SetQuery(m.search.Value())
		m.pickerCursor = 0
		m.errorMessage = ""
	}
	return m, tea.Batch(cmds...)
}

func (m *model) applyLayout() {
	width := m.layout.contentWidth
	for _, ta := range []*textarea.Model{&m.clientUpdate, &m.themes, &m.plan} {
		ta.SetWidth(width)
		ta.SetHeight(m.layout.textareaHeight)
	}
	m.search.Width = max(width-4, 20)
	m.preview.Width = width
	m.preview.Height = m.layout.previewHeight
	m.help.Width = width
	if m.stage == stagePreview {
		m.refreshPreview()
	}
}

func (m *model) runningJobs() []jobSnapshot {
	jobs := make([]jobSnapshot, 0, len(m.activeJobs))
	for _, snap := range m.activeJobs {
		jobs = append(jobs, snap)
	}
	sort.Slice(jobs, func(i, j int) bool { return jobs[i].StartedAt.Before(jobs[j].StartedAt) })
	return jobs
}

func (m *model) jobStatusBadges() []string {
	jobs := m.runningJobs()
	badges := make([]string, 0, len(jobs))
	for _, job := range jobs {
		badges = append(badges, fmt.Sprintf("%s %s %s", m.spinner.View(), job.Kind, time.Since(job.StartedAt).Round(time.Second)))
	}
	return badges
}

// addFromSearch creates a custom option from the picker query. "label @ group"
// files it under group; a bare label joins the group of the current results.
func addFromSearch(p *picker.Picker) (options.Option, bool) {
	query := p.Query()
	at := strings.LastIndex(query, groupMarker)
	if at < 0 {
		return p.AddFromQuery()
	}
	opt, ok := p.AddOption(query[:at], query[at+len(groupMarker):])
	if ok {
		p.SetQuery("")
	}
	return opt, ok
}
