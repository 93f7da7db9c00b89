package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/sessionnote/internal/clipboard"
	"github.com/csheth/sessionnote/internal/note"
	"github.com/csheth/sessionnote/internal/printer"
)

type copyResultMsg struct {
	rich bool
	err  error
}

type printResultMsg struct {
	err error
}

func copyNoteJob(w clipboard.Writer, rec note.Record) jobRunner {
	return func(ctx context.Context) (tea.Msg, error) {
		res, err := clipboard.CopyNote(ctx, w, rec)
		return copyResultMsg{rich: res.Rich, err: err}, err
	}
}

func printNoteJob(p printer.Printer, rec note.Record) jobRunner {
	doc := note.Layout(rec)
	return func(ctx context.Context) (tea.Msg, error) {
		err := p.Print(ctx, doc)
		return printResultMsg{err: err}, err
	}
}
