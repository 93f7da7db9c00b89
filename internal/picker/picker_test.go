package picker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csheth/sessionnote/internal/options"
	"github.com/csheth/sessionnote/internal/store"
)

var fixture = options.Category{
	Key:   "interventions",
	Title: "Interventions",
	Base: []options.Option{
		{ID: "x", Label: "Exposure ladder", Group: "G1"},
		{ID: "y", Label: "Thought record", Group: "G1"},
		{ID: "z", Label: "Values card sort", Group: "G1"},
		{ID: "w", Label: "Grounding", Group: "G2", Description: "5-4-3-2-1"},
		{ID: "u", Label: "Ungrouped thought"},
	},
}

func newPicker(t *testing.T, committed ...string) (*Picker, *store.Store) {
	t.Helper()
	s := store.New(store.NewMemoryKV(nil), nil)
	return Open(fixture, s, committed), s
}

func TestSetQueryFiltersByLabelOrGroup(t *testing.T) {
	t.Parallel()

	p, _ := newPicker(t)
	assert.Len(t, p.Visible(), 5)

	p.SetQuery("THOUGHT")
	ids := idsOf(p.Visible())
	assert.Equal(t, []string{"y", "u"}, ids)

	p.SetQuery("g2")
	assert.Equal(t, []string{"w"}, idsOf(p.Visible()))

	p.SetQuery("")
	groups := p.Groups()
	require.Len(t, groups, 3)
	assert.Equal(t, []string{"G1", "G2", options.DefaultGroup}, []string{groups[0].Name, groups[1].Name, groups[2].Name})
}

func TestToggleIsOpaqueToVisibility(t *testing.T) {
	t.Parallel()

	p, _ := newPicker(t)
	p.SetQuery("grounding")
	p.Toggle("x")
	p.Toggle("not-an-option")
	assert.True(t, p.IsSelected("x"))
	assert.True(t, p.IsSelected("not-an-option"))

	p.Toggle("x")
	assert.False(t, p.IsSelected("x"))
	assert.Equal(t, 1, p.Count())
}

func TestToggleGroupAddsMissingWhenPartiallySelected(t *testing.T) {
	t.Parallel()

	p, _ := newPicker(t, "x")
	p.ToggleGroup("G1")
	assert.Equal(t, []string{"x", "y", "z"}, p.Selected())

	p.ToggleGroup("G1")
	assert.Empty(t, p.Selected())
}

func TestToggleGroupTwiceRestoresSelection(t *testing.T) {
	t.Parallel()

	cases := [][]string{
		{},
		{"x", "y", "z"},
		{"w", "x", "y", "z"},
	}
	for _, committed := range cases {
		p, _ := newPicker(t, committed...)
		before := membership(p, "x", "y", "z")
		p.ToggleGroup("G1")
		p.ToggleGroup("G1")
		assert.Equal(t, before, membership(p, "x", "y", "z"), "committed=%v", committed)
	}
}

func TestToggleGroupOnlyTouchesVisibleMembers(t *testing.T) {
	t.Parallel()

	p, _ := newPicker(t)
	p.SetQuery("exposure")
	p.ToggleGroup("G1")
	assert.Equal(t, []string{"x"}, p.Selected())

	selected, total := p.GroupState("G1")
	assert.Equal(t, 1, selected)
	assert.Equal(t, 1, total)
}

func TestToggleGroupOther(t *testing.T) {
	t.Parallel()

	p, _ := newPicker(t)
	p.ToggleGroup(options.DefaultGroup)
	assert.Equal(t, []string{"u"}, p.Selected())
}

func TestSelectAllVisibleAndClear(t *testing.T) {
	t.Parallel()

	p, _ := newPicker(t, "w")
	p.SetQuery("G1")
	p.SelectAllVisible()
	assert.Equal(t, []string{"w", "x", "y", "z"}, p.Selected())
	assert.False(t, p.IsSelected("u"))

	p.Clear()
	assert.Zero(t, p.Count())
}

func TestAddFromQueryInfersSingleVisibleGroup(t *testing.T) {
	t.Parallel()

	p, s := newPicker(t)
	p.SetQuery("Exposure")
	opt, ok := p.AddFromQuery()
	require.True(t, ok)
	assert.Equal(t, options.Option{ID: "exposure", Label: "Exposure", Group: "G1"}, opt)
	assert.True(t, p.IsSelected("exposure"))
	assert.Empty(t, p.Query())
	assert.Equal(t, []options.Option{opt}, s.Custom(fixture.Key))
}

func TestAddFromQueryLeavesGroupUnsetAcrossGroups(t *testing.T) {
	t.Parallel()

	p, _ := newPicker(t)
	p.SetQuery("thought")
	opt, ok := p.AddFromQuery()
	require.True(t, ok)
	assert.Empty(t, opt.Group)
	assert.Equal(t, options.DefaultGroup, opt.GroupName())
}

func TestAddFromQueryIgnoresBlankQuery(t *testing.T) {
	t.Parallel()

	p, s := newPicker(t)
	p.SetQuery("   ")
	_, ok := p.AddFromQuery()
	assert.False(t, ok)
	assert.Equal(t, "   ", p.Query())
	assert.Empty(t, s.Custom(fixture.Key))
}

func TestAddFromQuerySuffixesCollidingSlug(t *testing.T) {
	t.Parallel()

	category := options.Category{
		Key:  "observations",
		Base: []options.Option{{ID: "alpha", Label: "Alpha", Group: "G1"}},
	}
	s := store.New(store.NewMemoryKV(nil), nil)
	p := Open(category, s, nil)

	p.SetQuery("Alpha")
	opt, ok := p.AddFromQuery()
	require.True(t, ok)
	assert.Equal(t, options.Option{ID: "alpha-2", Label: "Alpha", Group: "G1"}, opt)
	assert.True(t, p.IsSelected("alpha-2"))

	again, ok := p.AddOption("Alpha!", "")
	require.True(t, ok)
	assert.Equal(t, "alpha-3", again.ID)
	require.NoError(t, options.Validate(p.Options()))
}

func TestCommitAndCancelIsolation(t *testing.T) {
	t.Parallel()

	committed := []string{"x"}

	p, _ := newPicker(t, committed...)
	p.Toggle("y")
	p.Toggle("x")
	p.Cancel()
	assert.Equal(t, []string{"x"}, committed)
	assert.True(t, p.Closed())

	p, _ = newPicker(t, committed...)
	p.Toggle("y")
	p.Toggle("x")
	want := p.Selected()
	got := p.Commit()
	assert.Equal(t, want, got)
	assert.Equal(t, []string{"y"}, got)
	assert.Equal(t, []string{"x"}, committed, "commit returns a new slice")

	p.Toggle("z")
	assert.Equal(t, []string{"y"}, p.Selected(), "closed pickers ignore edits")
}

func TestStateAllowsOnePicker(t *testing.T) {
	t.Parallel()

	s := store.New(store.NewMemoryKV(nil), nil)
	var state State
	assert.False(t, state.IsOpen())

	p, err := state.Open(fixture, s, []string{"x"})
	require.NoError(t, err)
	_, err = state.Open(options.Observations, s, nil)
	assert.ErrorIs(t, err, ErrAlreadyOpen)

	p.Toggle("w")
	key, ids, ok := state.Commit()
	require.True(t, ok)
	assert.Equal(t, fixture.Key, key)
	assert.Equal(t, []string{"x", "w"}, ids)
	assert.False(t, state.IsOpen())

	_, _, ok = state.Commit()
	assert.False(t, ok)

	_, err = state.Open(fixture, s, nil)
	require.NoError(t, err)
	state.Cancel()
	assert.Nil(t, state.Active())
}

func TestSelectionKeepsInsertionOrder(t *testing.T) {
	t.Parallel()

	sel := NewSelection("b", "a", "b")
	assert.Equal(t, []string{"b", "a"}, sel.IDs())
	ids := sel.IDs()
	sel.Remove("b")
	sel.Add("c")
	assert.Equal(t, []string{"a", "c"}, sel.IDs())
	assert.Equal(t, []string{"b", "a"}, ids)
}

func idsOf(list []options.Option) []string {
	ids := make([]string, len(list))
	for i, opt := range list {
		ids[i] = opt.ID
	}
	return ids
}

func membership(p *Picker, ids ...string) map[string]bool {
	out := map[string]bool{}
	for _, id := range ids {
		out[id] = p.IsSelected(id)
	}
	return out
}
