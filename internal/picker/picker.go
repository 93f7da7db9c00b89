// Package picker implements the multi-select option picker: filtering,
// grouping, bulk toggles and creation of custom options from the search text.
// A picker works on a private copy of the committed selection that is only
// written back on Commit.
package picker

import (
	"strings"

	"github.com/csheth/sessionnote/internal/options"
)

// Source supplies the merged option list of a category and records new custom
// options. *store.Store satisfies it.
type Source interface {
	Merged(c options.Category) []options.Option
	Create(c options.Category, label, group string) (options.Option, bool)
}

// Picker is one open selection surface for a single category.
type Picker struct {
	category options.Category
	source   Source
	working  *Selection
	query    string
	closed   bool
}

// Open seeds a picker for category with a copy of committed.
func Open(category options.Category, source Source, committed []string) *Picker {
	return &Picker{
		category: category,
		source:   source,
		working:  NewSelection(committed...),
	}
}

// Category returns the category the picker edits.
func (p *Picker) Category() options.Category {
	return p.category
}

// Closed reports whether Commit or Cancel already ran.
func (p *Picker) Closed() bool {
	return p.closed
}

// Options returns the full merged list. It is recomputed on every call so
// options created mid-session are always visible.
func (p *Picker) Options() []options.Option {
	return p.source.Merged(p.category)
}

// Query returns the current filter text.
func (p *Picker) Query() string {
	return p.query
}

// SetQuery replaces the filter text.
func (p *Picker) SetQuery(text string) {
	if p.closed {
		return
	}
	p.query = text
}

// Visible returns the options matching the query.
func (p *Picker) Visible() []options.Option {
	return options.Filter(p.Options(), p.query)
}

// Groups partitions the visible list for display.
func (p *Picker) Groups() []options.Group {
	return options.GroupBy(p.Visible())
}

// IsSelected reports whether id is in the working selection.
func (p *Picker) IsSelected(id string) bool {
	return p.working.Has(id)
}

// Selected returns the working selection in order.
func (p *Picker) Selected() []string {
	return p.working.IDs()
}

// Count returns the size of the working selection.
func (p *Picker) Count() int {
	return p.working.Len()
}

// Toggle flips id regardless of whether it is visible.
func (p *Picker) Toggle(id string) {
	if p.closed {
		return
	}
	p.working.Toggle(id)
}

// ToggleGroup clears the visible members of group when all of them are
// selected and otherwise selects the missing ones.
func (p *Picker) ToggleGroup(group string) {
	if p.closed {
		return
	}
	ids := p.visibleGroupIDs(group)
	if len(ids) == 0 {
		return
	}
	if p.allSelected(ids) {
		for _, id := range ids {
			p.working.Remove(id)
		}
		return
	}
	for _, id := range ids {
		p.working.Add(id)
	}
}

// GroupState reports how many visible members of group are selected.
func (p *Picker) GroupState(group string) (selected, total int) {
	ids := p.visibleGroupIDs(group)
	for _, id := range ids {
		if p.working.Has(id) {
			selected++
		}
	}
	return selected, len(ids)
}

// SelectAllVisible adds every visible id. Hidden ids are left untouched.
func (p *Picker) SelectAllVisible() {
	if p.closed {
		return
	}
	for _, opt := range p.Visible() {
		p.working.Add(opt.ID)
	}
}

// Clear empties the working selection, visible or not.
func (p *Picker) Clear() {
	if p.closed {
		return
	}
	p.working.Reset()
}

// AddFromQuery turns the query into a custom option, selects it and clears
// the query. When the visible list spans a single group the option joins it.
func (p *Picker) AddFromQuery() (options.Option, bool) {
	if p.closed || strings.TrimSpace(p.query) == "" {
		return options.Option{}, false
	}
	group := options.InferGroup(p.Visible())
	opt, ok := p.add(p.query, group)
	if ok {
		p.query = ""
	}
	return opt, ok
}

// AddOption creates a custom option with an explicit group (blank for none)
// and selects it. The query is left as is.
func (p *Picker) AddOption(label, group string) (options.Option, bool) {
	if p.closed {
		return options.Option{}, false
	}
	return p.add(label, group)
}

// Commit closes the picker and returns the selection to write back.
func (p *Picker) Commit() []string {
	p.closed = true
	return p.working.IDs()
}

// Cancel closes the picker and discards the working selection.
func (p *Picker) Cancel() {
	p.closed = true
	p.working.Reset()
}

func (p *Picker) add(label, group string) (options.Option, bool) {
	opt, ok := p.source.Create(p.category, label, group)
	if !ok {
		return options.Option{}, false
	}
	p.working.Add(opt.ID)
	return opt, true
}

func (p *Picker) visibleGroupIDs(group string) []string {
	var ids []string
	for _, opt := range p.Visible() {
		if opt.GroupName() == group {
			ids = append(ids, opt.ID)
		}
	}
	return ids
}

func (p *Picker) allSelected(ids []string) bool {
	for _, id := range ids {
		if !p.working.Has(id) {
			return false
		}
	}
	return true
}
