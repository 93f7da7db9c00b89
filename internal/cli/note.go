package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/csheth/sessionnote/internal/clipboard"
	"github.com/csheth/sessionnote/internal/note"
	"github.com/csheth/sessionnote/internal/options"
)

// noteInput reads a note form from a YAML file, or from stdin when the path
// is "-".
type noteInput struct {
	from string
}

func (in *noteInput) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&in.from, "from", "f", "-", "YAML note form to read (- for stdin)")
}

func (in *noteInput) record(cmd *cobra.Command, app *App) (note.Record, error) {
	form, err := in.form(cmd.InOrStdin(), app.Config.Defaults)
	if err != nil {
		return note.Record{}, err
	}
	st, err := app.Store(cmd.Context())
	if err != nil {
		return note.Record{}, err
	}
	lists := map[string][]options.Option{}
	for _, c := range options.Categories() {
		lists[c.Key] = st.Merged(c)
	}
	return note.Build(form, lists), nil
}

func (in *noteInput) form(stdin io.Reader, defaults note.Form) (note.Form, error) {
	var data []byte
	var err error
	if in.from == "" || in.from == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(in.from)
	}
	if err != nil {
		return note.Form{}, fmt.Errorf("read note form: %w", err)
	}

	form := defaults
	if form.Mode == "" {
		form = note.NewForm()
	}
	form.Selections = nil
	if err := yaml.Unmarshal(data, &form); err != nil {
		return note.Form{}, fmt.Errorf("decode note form: %w", err)
	}
	form, err = form.Normalize()
	if err != nil {
		return note.Form{}, err
	}
	for category := range form.Selections {
		if _, ok := options.Lookup(category); !ok {
			return note.Form{}, fmt.Errorf("unknown selection category %q", category)
		}
	}
	return form, nil
}

func newRenderCmd(app *App) *cobra.Command {
	in := &noteInput{}
	target := string(note.TargetPlainText)
	targets := make([]string, 0, len(note.Targets()))
	for _, t := range note.Targets() {
		targets = append(targets, string(t))
	}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a note form to stdout",
		Args:  cobra.NoArgs,
		Example: `
sessionnote render --from note.yaml --target html > note.html
cat note.yaml | sessionnote render --target markdown
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rec, err := in.record(cmd, app)
			if err != nil {
				return err
			}
			out, err := note.Render(rec, note.Target(target))
			if err != nil {
				return err
			}
			if !strings.HasSuffix(out, "\n") {
				out += "\n"
			}
			_, err = io.WriteString(cmd.OutOrStdout(), out)
			return err
		},
	}
	in.addFlags(cmd)
	cmd.Flags().StringVarP(&target, "target", "t", target, "output format ("+strings.Join(targets, "|")+")")
	return cmd
}

func newCopyCmd(app *App) *cobra.Command {
	in := &noteInput{}
	cmd := &cobra.Command{
		Use:   "copy",
		Short: "Copy a note form to the clipboard as rich text with a plain-text fallback",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rec, err := in.record(cmd, app)
			if err != nil {
				return err
			}
			res, err := clipboard.CopyNote(commandContext(cmd), app.clipboard(), rec)
			if err != nil {
				return fmt.Errorf("could not copy automatically, use `sessionnote render` and copy manually: %w", err)
			}
			if res.Rich {
				fmt.Fprintln(cmd.OutOrStdout(), "Copied to clipboard (rich format).")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Copied to clipboard (plain text).")
			}
			return nil
		},
	}
	in.addFlags(cmd)
	return cmd
}

func newPrintCmd(app *App) *cobra.Command {
	in := &noteInput{}
	cmd := &cobra.Command{
		Use:   "print",
		Short: "Open the print layout of a note form in the browser",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rec, err := in.record(cmd, app)
			if err != nil {
				return err
			}
			if err := app.printer().Print(commandContext(cmd), note.Layout(rec)); err != nil {
				return fmt.Errorf("print: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Print layout opened.")
			return nil
		},
	}
	in.addFlags(cmd)
	return cmd
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// IsUsageError reports whether err came from bad note input rather than a
// failing adapter.
func IsUsageError(err error) bool {
	return errors.Is(err, note.ErrInvalidMode) ||
		errors.Is(err, note.ErrInvalidDuration) ||
		errors.Is(err, note.ErrInvalidDate) ||
		errors.Is(err, note.ErrUnknownTarget)
}
