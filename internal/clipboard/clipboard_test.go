package clipboard

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/csheth/sessionnote/internal/note"
)

type fakeWriter struct {
	writeErr error
	textErr  error
	items    []Item
	text     string
	texts    int
}

func (f *fakeWriter) Write(_ context.Context, items []Item) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.items = items
	return nil
}

func (f *fakeWriter) WriteText(_ context.Context, text string) error {
	f.texts++
	if f.textErr != nil {
		return f.textErr
	}
	f.text = text
	return nil
}

func record() note.Record {
	return note.Record{
		Mode:          note.ModeTelephone,
		Duration:      note.Duration90,
		Themes:        "<grief>",
		Interventions: []string{"Grounding"},
	}
}

func TestCopyNoteWritesBothFormats(t *testing.T) {
	t.Parallel()

	w := &fakeWriter{}
	res, err := CopyNote(context.Background(), w, record())
	require.NoError(t, err)
	assert.True(t, res.Rich)
	require.Len(t, w.items, 2)
	assert.Equal(t, MIMEHTML, w.items[0].MIMEType)
	assert.Equal(t, note.RenderHTML(record()), w.items[0].Content)
	assert.Equal(t, MIMEPlain, w.items[1].MIMEType)
	assert.Equal(t, note.RenderPlainText(record()), w.items[1].Content)
	assert.Zero(t, w.texts)
}

func TestCopyNoteFallsBackToPlainText(t *testing.T) {
	t.Parallel()

	w := &fakeWriter{writeErr: ErrRichUnsupported}
	res, err := CopyNote(context.Background(), w, record())
	require.NoError(t, err)
	assert.False(t, res.Rich)
	assert.Equal(t, note.RenderPlainText(record()), w.text)
	assert.Contains(t, w.text, "<grief>")
}

func TestCopyNoteSurfacesFailures(t *testing.T) {
	t.Parallel()

	denied := errors.New("permission denied")
	w := &fakeWriter{writeErr: denied}
	_, err := CopyNote(context.Background(), w, record())
	assert.ErrorIs(t, err, denied)
	assert.Zero(t, w.texts, "no fallback on rejection")

	w = &fakeWriter{writeErr: ErrRichUnsupported, textErr: denied}
	_, err = CopyNote(context.Background(), w, record())
	assert.ErrorIs(t, err, denied)
}

type call struct {
	name  string
	args  []string
	stdin string
}

func fakeSystem(goos string, available ...string) (*System, *[]call) {
	var calls []call
	s := NewSystem(zap.NewNop())
	s.goos = goos
	s.lookPath = func(name string) (string, error) {
		for _, a := range available {
			if a == name {
				return "/usr/bin/" + name, nil
			}
		}
		return "", exec.ErrNotFound
	}
	s.run = func(_ context.Context, name string, args []string, stdin string) error {
		calls = append(calls, call{name: name, args: args, stdin: stdin})
		return nil
	}
	s.writeText = func(string) error { return nil }
	return s, &calls
}

func TestSystemPrefersWayland(t *testing.T) {
	t.Parallel()

	s, calls := fakeSystem("linux", "wl-copy", "xclip")
	err := s.Write(context.Background(), []Item{{MIMEHTML, "<p>x</p>"}, {MIMEPlain, "x"}})
	require.NoError(t, err)
	require.Len(t, *calls, 1)
	assert.Equal(t, "wl-copy", (*calls)[0].name)
	assert.Equal(t, []string{"--type", "text/html"}, (*calls)[0].args)
	assert.Equal(t, "<p>x</p>", (*calls)[0].stdin)
}

func TestSystemFallsBackToXclip(t *testing.T) {
	t.Parallel()

	s, calls := fakeSystem("linux", "xclip")
	require.NoError(t, s.Write(context.Background(), []Item{{MIMEHTML, "<p>x</p>"}}))
	require.Len(t, *calls, 1)
	assert.Equal(t, "xclip", (*calls)[0].name)
}

func TestSystemLogsDroppedPlainText(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.InfoLevel)
	s, _ := fakeSystem("linux", "xclip")
	s.logger = zap.New(core)
	require.NoError(t, s.Write(context.Background(), []Item{{MIMEHTML, "<p>x</p>"}, {MIMEPlain, "x"}}))

	dropped := logs.FilterMessage("plain text representation not set").All()
	require.Len(t, dropped, 1)
	assert.Equal(t, "xclip", dropped[0].ContextMap()["cmd"])
	assert.EqualValues(t, 1, dropped[0].ContextMap()["plain_bytes"])

	core, logs = observer.New(zapcore.InfoLevel)
	s, _ = fakeSystem("darwin", "osascript")
	s.logger = zap.New(core)
	require.NoError(t, s.Write(context.Background(), []Item{{MIMEHTML, "<p>x</p>"}, {MIMEPlain, "x"}}))
	assert.Zero(t, logs.FilterMessage("plain text representation not set").Len())
}

func TestSystemWithoutToolsIsUnsupported(t *testing.T) {
	t.Parallel()

	s, calls := fakeSystem("linux")
	err := s.Write(context.Background(), []Item{{MIMEHTML, "<p>x</p>"}})
	assert.ErrorIs(t, err, ErrRichUnsupported)
	assert.Empty(t, *calls)

	s, _ = fakeSystem("windows", "wl-copy")
	assert.ErrorIs(t, s.Write(context.Background(), []Item{{MIMEHTML, "x"}}), ErrRichUnsupported)
}

func TestSystemDarwinEncodesHTML(t *testing.T) {
	t.Parallel()

	s, calls := fakeSystem("darwin", "osascript")
	require.NoError(t, s.Write(context.Background(), []Item{{MIMEHTML, "<b>"}, {MIMEPlain, `say "hi"`}}))
	require.Len(t, *calls, 1)
	script := (*calls)[0].args[1]
	assert.Contains(t, script, "«data HTML3C623E»")
	assert.True(t, strings.HasSuffix(script, `string:"say \"hi\""}`))
}

func TestSystemWriteTextNormalizesNewlines(t *testing.T) {
	t.Parallel()

	s, _ := fakeSystem("linux")
	var got string
	s.writeText = func(text string) error {
		got = text
		return nil
	}
	require.NoError(t, s.WriteText(context.Background(), "a\r\nb"))
	assert.Equal(t, "a\nb", got)
}
