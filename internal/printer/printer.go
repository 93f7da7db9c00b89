// Package printer hands the print layout of a note to the host print
// pipeline.
package printer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/csheth/sessionnote/internal/note"
)

// ErrNoOpener reports that no program is available to open the print page.
var ErrNoOpener = errors.New("printer: no program found to open the print page")

// Printer sends a note document to the host print pipeline.
type Printer interface {
	Print(ctx context.Context, doc note.Document) error
}

// Browser writes the print page to disk and opens it with the desktop
// handler, where the user prints or saves it as PDF.
type Browser struct {
	dir      string
	logger   *zap.Logger
	goos     string
	lookPath func(string) (string, error)
	open     func(ctx context.Context, name string, args ...string) error
}

// NewBrowser stores print pages under dir. An empty dir selects the user
// cache directory.
func NewBrowser(dir string, logger *zap.Logger) *Browser {
	if logger == nil {
		logger = zap.NewNop()
	}
	if dir == "" {
		if cache, err := os.UserCacheDir(); err == nil {
			dir = filepath.Join(cache, "sessionnote", "print")
		} else {
			dir = filepath.Join(os.TempDir(), "sessionnote-print")
		}
	}
	return &Browser{
		dir:      dir,
		logger:   logger.Named("printer"),
		goos:     runtime.GOOS,
		lookPath: exec.LookPath,
		open:     startDetached,
	}
}

// Dir is where print pages are written.
func (b *Browser) Dir() string {
	return b.dir
}

// Print writes doc as a print page and opens it.
func (b *Browser) Print(ctx context.Context, doc note.Document) error {
	name, args, err := b.opener()
	if err != nil {
		return err
	}
	path, err := b.write(doc)
	if err != nil {
		return err
	}
	b.logger.Info("opening print page", zap.String("path", path), zap.String("cmd", name))
	if err := b.open(ctx, name, append(args, path)...); err != nil {
		return fmt.Errorf("open print page: %w", err)
	}
	return nil
}

func (b *Browser) write(doc note.Document) (string, error) {
	if err := os.MkdirAll(b.dir, 0o755); err != nil {
		return "", fmt.Errorf("create print dir: %w", err)
	}
	path := filepath.Join(b.dir, "note-"+uuid.NewString()+".html")
	if err := os.WriteFile(path, []byte(doc.PrintHTML()), 0o600); err != nil {
		return "", fmt.Errorf("write print page: %w", err)
	}
	return path, nil
}

func (b *Browser) opener() (string, []string, error) {
	var name string
	var args []string
	switch b.goos {
	case "darwin":
		name = "open"
	case "windows":
		name, args = "rundll32", []string{"url.dll,FileProtocolHandler"}
	default:
		name = "xdg-open"
	}
	if _, err := b.lookPath(name); err != nil {
		return "", nil, fmt.Errorf("%w: %s", ErrNoOpener, name)
	}
	return name, args, nil
}

// startDetached launches the opener and returns once it has started. Some
// openers stay in the foreground until the browser exits, so the process is
// not bound to ctx and is reaped in the background.
func startDetached(ctx context.Context, name string, args ...string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	cmd := exec.Command(name, args...)
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
