package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltInCatalogsHaveUniqueIDs(t *testing.T) {
	t.Parallel()

	for _, c := range Categories() {
		require.NotEmpty(t, c.Base, c.Key)
		assert.NoError(t, Validate(c.Base), c.Key)
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()

	c, ok := Lookup(" Observations ")
	require.True(t, ok)
	assert.Equal(t, "observations", c.Key)

	_, ok = Lookup("plans")
	assert.False(t, ok)
}

func TestMergeKeepsBaseThenCustomOrder(t *testing.T) {
	t.Parallel()

	base := []Option{{ID: "b1"}, {ID: "b2"}}
	custom := []Option{{ID: "c2"}, {ID: "c1"}}

	merged := Merge(base, custom)
	assert.Equal(t, []Option{{ID: "b1"}, {ID: "b2"}, {ID: "c2"}, {ID: "c1"}}, merged)

	merged[0].ID = "changed"
	assert.Equal(t, "b1", base[0].ID, "merge must not alias its inputs")
}

func TestSlugify(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"Alpha!":                 "alpha",
		"  Hello,   World  ":     "hello-world",
		"Client’s “core” belief": "client-s-core-belief",
		"!!!":                    "",
		"Edu - ADHD 2":           "edu-adhd-2",
	}
	for in, want := range cases {
		assert.Equal(t, want, Slugify(in), in)
	}
}

func TestUniqueIDAppendsSuffixUntilFree(t *testing.T) {
	t.Parallel()

	existing := []Option{{ID: "alpha"}, {ID: "alpha-2"}, {ID: "item"}}
	assert.Equal(t, "alpha-3", UniqueID("Alpha", existing))
	assert.Equal(t, "beta", UniqueID("Beta", existing))
	assert.Equal(t, "item-2", UniqueID("???", existing))
}

func TestUniqueIDSequenceNeverCollides(t *testing.T) {
	t.Parallel()

	var merged []Option
	for i := 0; i < 6; i++ {
		id := UniqueID("Same Label", merged)
		merged = append(merged, Option{ID: id, Label: "Same Label"})
	}
	require.NoError(t, Validate(merged))
	assert.Equal(t, "same-label-6", merged[5].ID)
}

func TestResolveDropsUnknownAndKeepsOrder(t *testing.T) {
	t.Parallel()

	merged := []Option{{ID: "a", Label: "Alpha"}, {ID: "b", Label: "Beta"}}
	ids := []string{"b", "gone", "a"}

	first := Resolve(ids, merged)
	assert.Equal(t, []string{"Beta", "Alpha"}, first)
	assert.Equal(t, first, Resolve(ids, merged))
	assert.Empty(t, Resolve(nil, merged))
}

func TestFilterMatchesLabelOrGroup(t *testing.T) {
	t.Parallel()

	merged := []Option{
		{ID: "1", Label: "Thinking traps", Group: "CBT"},
		{ID: "2", Label: "Values work", Group: "ACT"},
		{ID: "3", Label: "Free form"},
	}
	assert.Len(t, Filter(merged, ""), 3)
	assert.Len(t, Filter(merged, "   "), 3)

	got := Filter(merged, "cbt")
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)

	got = Filter(merged, "VALUES")
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)
}

func TestGroupByFirstOccurrenceOrder(t *testing.T) {
	t.Parallel()

	visible := []Option{
		{ID: "1", Group: "B"},
		{ID: "2"},
		{ID: "3", Group: "A"},
		{ID: "4", Group: "B"},
	}
	groups := GroupBy(visible)
	require.Len(t, groups, 3)
	assert.Equal(t, "B", groups[0].Name)
	assert.Equal(t, []string{"1", "4"}, groups[0].IDs())
	assert.Equal(t, DefaultGroup, groups[1].Name)
	assert.Equal(t, "A", groups[2].Name)
}

func TestInferGroup(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "G1", InferGroup([]Option{{Group: "G1"}, {Group: "G1"}}))
	assert.Equal(t, "", InferGroup([]Option{{Group: "G1"}, {Group: "G2"}}))
	assert.Equal(t, "", InferGroup([]Option{{}, {}}))
	assert.Equal(t, "", InferGroup(nil))
}

func TestValidateReportsDuplicates(t *testing.T) {
	t.Parallel()

	assert.Error(t, Validate([]Option{{ID: "a"}, {ID: "a"}}))
	assert.Error(t, Validate([]Option{{ID: " ", Label: "blank"}}))
}
