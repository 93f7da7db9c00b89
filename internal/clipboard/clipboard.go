// Package clipboard places rendered notes on the system clipboard, preferring
// a rich HTML item with a plain-text companion.
package clipboard

import (
	"context"
	"errors"
	"fmt"

	"github.com/csheth/sessionnote/internal/note"
)

const (
	MIMEHTML  = "text/html"
	MIMEPlain = "text/plain"
)

// ErrRichUnsupported reports that the host cannot hold a multi-format item.
var ErrRichUnsupported = errors.New("clipboard: rich clipboard not supported")

// Item is one representation of a clipboard entry.
type Item struct {
	MIMEType string
	Content  string
}

// Writer is the host clipboard capability.
type Writer interface {
	// Write places all items as one clipboard entry.
	Write(ctx context.Context, items []Item) error
	// WriteText places plain text only.
	WriteText(ctx context.Context, text string) error
}

// Result describes how a note reached the clipboard.
type Result struct {
	Rich bool
}

// CopyNote renders rec as HTML and plain text and writes both as one entry.
// Hosts without rich support receive the plain text only. Any other failure
// is returned unchanged.
func CopyNote(ctx context.Context, w Writer, rec note.Record) (Result, error) {
	html := note.RenderHTML(rec)
	plain := note.RenderPlainText(rec)

	err := w.Write(ctx, []Item{
		{MIMEType: MIMEHTML, Content: html},
		{MIMEType: MIMEPlain, Content: plain},
	})
	if err == nil {
		return Result{Rich: true}, nil
	}
	if !errors.Is(err, ErrRichUnsupported) {
		return Result{}, err
	}
	if err := w.WriteText(ctx, plain); err != nil {
		return Result{}, fmt.Errorf("copy plain text: %w", err)
	}
	return Result{}, nil
}

func pick(items []Item, mime string) (string, bool) {
	for _, it := range items {
		if it.MIMEType == mime {
			return it.Content, true
		}
	}
	return "", false
}
