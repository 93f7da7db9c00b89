package note

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csheth/sessionnote/internal/options"
)

func sampleRecord() Record {
	return Record{
		Mode:          ModeVirtual,
		Duration:      Duration60,
		ClientUpdate:  "Started a new job.\r\nSleeping better.",
		Themes:        "Work stress",
		Interventions: []string{"Exposure ladder", "Thought record"},
		Observations:  []string{"Engaged"},
		Plan:          DefaultPlan + "practising exposure.",
		NextSession:   "2024-05-02",
	}
}

func TestParseModeAcceptsLabel(t *testing.T) {
	t.Parallel()

	m, err := ParseMode("In Person")
	require.NoError(t, err)
	assert.Equal(t, ModeInPerson, m)
	assert.Equal(t, "in person", m.Label())

	_, err = ParseMode("carrier pigeon")
	assert.ErrorIs(t, err, ErrInvalidMode)
}

func TestParseDuration(t *testing.T) {
	t.Parallel()

	d, err := ParseDuration("30m")
	require.NoError(t, err)
	assert.Equal(t, Duration30, d)

	_, err = ParseDuration("45")
	assert.ErrorIs(t, err, ErrInvalidDuration)
	_, err = ParseDuration("ninety")
	assert.ErrorIs(t, err, ErrInvalidDuration)
}

func TestCycleWraps(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ModeVirtual, ModeTelephone.Next(1))
	assert.Equal(t, ModeInPerson, ModeTelephone.Next(-1))
	assert.Equal(t, Duration30, Duration90.Next(1))
	assert.Equal(t, Duration60, Duration90.Next(-1))
}

func TestNewFormDefaults(t *testing.T) {
	t.Parallel()

	f := NewForm()
	assert.Equal(t, ModeTelephone, f.Mode)
	assert.Equal(t, Duration90, f.Duration)
	assert.Equal(t, DefaultPlan, f.Plan)
	assert.NoError(t, f.Validate())
}

func TestFormValidateDate(t *testing.T) {
	t.Parallel()

	f := NewForm()
	f.NextSession = "02/05/2024"
	assert.ErrorIs(t, f.Validate(), ErrInvalidDate)

	f.NextSession = "2024-05-02"
	assert.NoError(t, f.Validate())
}

func TestWithSelectionCopies(t *testing.T) {
	t.Parallel()

	ids := []string{"a"}
	f := NewForm()
	g := f.WithSelection("interventions", ids)
	ids[0] = "changed"
	assert.Empty(t, f.Selection("interventions"))
	assert.Equal(t, []string{"a"}, g.Selection("interventions"))
}

func TestBuildResolvesLabelsInSelectionOrder(t *testing.T) {
	t.Parallel()

	lists := map[string][]options.Option{
		options.Interventions.Key: {
			{ID: "a", Label: "Alpha"},
			{ID: "b", Label: "Beta"},
		},
		options.Observations.Key: {{ID: "o", Label: "Open"}},
	}
	f := NewForm().
		WithSelection(options.Interventions.Key, []string{"b", "stale", "a"}).
		WithSelection(options.Observations.Key, []string{"o"})
	f.NextSession = " 2024-05-02 "

	rec := Build(f, lists)
	assert.Equal(t, []string{"Beta", "Alpha"}, rec.Interventions)
	assert.Equal(t, []string{"Open"}, rec.Observations)
	assert.Equal(t, "2024-05-02", rec.NextSession)
}

func TestLayoutSectionOrder(t *testing.T) {
	t.Parallel()

	doc := Layout(sampleRecord())
	var labels []string
	for _, b := range doc.Blocks {
		if b.Kind == BlockLabel {
			labels = append(labels, b.Text)
		}
	}
	assert.Equal(t, []string{
		"The client provided an update on the events since last session:",
		"Significant themes within the session focused on:",
		"Interventions included:",
		"Observations/Client Response:",
		"Plan:",
		"The next session was booked for:",
	}, labels)
	assert.Equal(t, BlockHeading, doc.Blocks[0].Kind)
	assert.Equal(t, "The client attended the scheduled session on by virtual. The session lasted approximately 60 minutes.", doc.Blocks[1].Text)
	assert.Equal(t, "Date of next session - 2024-05-02", doc.Blocks[len(doc.Blocks)-1].Text)
}

func TestRenderPlainText(t *testing.T) {
	t.Parallel()

	out := RenderPlainText(sampleRecord())
	want := strings.Join([]string{
		"Notes",
		"The client attended the scheduled session on by virtual. The session lasted approximately 60 minutes.",
		"The client provided an update on the events since last session:",
		"Started a new job.",
		"Sleeping better.",
		"Significant themes within the session focused on:",
		"Work stress",
		"Interventions included:",
		"- Exposure ladder",
		"- Thought record",
		"Observations/Client Response:",
		"- Engaged",
		"Plan:",
		DefaultPlan + "practising exposure.",
		"The next session was booked for:",
		"Date of next session - 2024-05-02",
	}, "\n")
	assert.Equal(t, want, out)
}

func TestEmptyListsRenderPlaceholder(t *testing.T) {
	t.Parallel()

	rec := sampleRecord()
	rec.Interventions = nil
	rec.Observations = []string{}

	for _, target := range Targets() {
		out, err := Render(rec, target)
		require.NoError(t, err, target)
		assert.Equal(t, 2, strings.Count(out, EmptyList), "target %s", target)
	}
}

func TestHTMLEscapesUserText(t *testing.T) {
	t.Parallel()

	rec := sampleRecord()
	rec.Themes = `<script>alert("x")</script> & more`
	rec.Interventions = []string{"<b>bold</b>"}

	for _, target := range []Target{TargetHTML, TargetPreview, TargetPrint} {
		out, err := Render(rec, target)
		require.NoError(t, err)
		assert.NotContains(t, out, "<script>", target)
		assert.NotContains(t, out, "<b>bold", target)
		assert.Contains(t, out, "&lt;script&gt;", target)
		assert.Contains(t, out, "&amp; more", target)
	}
}

func TestHTMLLineBreaksAndEmptyText(t *testing.T) {
	t.Parallel()

	rec := sampleRecord()
	rec.Themes = ""
	frag := RenderFragment(rec)
	assert.Contains(t, frag, "<p>Started a new job.<br>Sleeping better.</p>")
	assert.Contains(t, frag, "<p>&nbsp;</p>")
	assert.Contains(t, frag, "<ul><li>Exposure ladder</li><li>Thought record</li></ul>")
	assert.Contains(t, frag, "<p><strong>Plan:</strong></p>")

	doc := RenderHTML(rec)
	assert.True(t, strings.HasPrefix(doc, "<!doctype html>"))
	assert.Contains(t, doc, frag)
}

func TestBlankTextIsTheSameInEveryTarget(t *testing.T) {
	t.Parallel()

	rec := sampleRecord()
	rec.Themes = "   "
	assert.NotContains(t, RenderFragment(rec), "&nbsp;")
	assert.NotContains(t, RenderMarkdown(rec), nbsp)
	assert.NotContains(t, printPage(t, rec), nbsp)
	assert.Contains(t, RenderPlainText(rec), "\n   \n")

	rec.Themes = ""
	assert.Contains(t, RenderFragment(rec), "<p>&nbsp;</p>")
	assert.Contains(t, RenderMarkdown(rec), "\n\n"+nbsp+"\n\n")
	assert.Contains(t, printPage(t, rec), "<p class=\"text\">"+nbsp+"</p>")
	assert.NotContains(t, RenderPlainText(rec), nbsp)
}

func printPage(t *testing.T, r Record) string {
	t.Helper()
	out, err := Render(r, TargetPrint)
	require.NoError(t, err)
	return out
}

func TestPrintHTMLPreservesWhitespace(t *testing.T) {
	t.Parallel()

	out, err := Render(sampleRecord(), TargetPrint)
	require.NoError(t, err)
	assert.Contains(t, out, "white-space: pre-wrap")
	assert.Contains(t, out, "<p class=\"text\">Started a new job.\nSleeping better.</p>")
	assert.Contains(t, out, "<title>Notes</title>")
}

func TestRenderMarkdownEscapes(t *testing.T) {
	t.Parallel()

	rec := sampleRecord()
	rec.Themes = "*stars* and #hash"
	out := RenderMarkdown(rec)
	assert.True(t, strings.HasPrefix(out, "# Notes\n"))
	assert.Contains(t, out, `\*stars\* and \#hash`)
	assert.Contains(t, out, "**Plan:**")
	assert.Contains(t, out, "- Exposure ladder\n- Thought record")
}

func TestRenderIsRepeatable(t *testing.T) {
	t.Parallel()

	rec := sampleRecord()
	first, err := Render(rec, TargetHTML)
	require.NoError(t, err)
	second, err := Render(rec, TargetHTML)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRenderUnknownTarget(t *testing.T) {
	t.Parallel()

	_, err := Render(sampleRecord(), "pdf")
	assert.ErrorIs(t, err, ErrUnknownTarget)
}

func TestFormNormalize(t *testing.T) {
	t.Parallel()

	f, err := Form{Mode: "In person", NextSession: " 2024-06-01 "}.Normalize()
	require.NoError(t, err)
	assert.Equal(t, ModeInPerson, f.Mode)
	assert.Equal(t, Duration90, f.Duration)
	assert.Equal(t, "2024-06-01", f.NextSession)

	_, err = Form{Mode: "virtual", Duration: 45}.Normalize()
	assert.ErrorIs(t, err, ErrInvalidDuration)

	_, err = Form{Mode: "fax"}.Normalize()
	assert.ErrorIs(t, err, ErrInvalidMode)
}
