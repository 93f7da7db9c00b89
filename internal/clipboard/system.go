package clipboard

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
	"go.uber.org/zap"
)

// System writes to the desktop clipboard through the platform tools.
type System struct {
	logger    *zap.Logger
	goos      string
	lookPath  func(string) (string, error)
	run       func(ctx context.Context, name string, args []string, stdin string) error
	writeText func(string) error
}

// NewSystem returns the adapter for the running platform.
func NewSystem(logger *zap.Logger) *System {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &System{
		logger:    logger.Named("clipboard"),
		goos:      runtime.GOOS,
		lookPath:  exec.LookPath,
		run:       runCmd,
		writeText: clipboard.WriteAll,
	}
}

// Write places the HTML item on the clipboard. The plain item is used as the
// companion string where the platform accepts one.
func (s *System) Write(ctx context.Context, items []Item) error {
	html, ok := pick(items, MIMEHTML)
	if !ok {
		return ErrRichUnsupported
	}
	plain, _ := pick(items, MIMEPlain)

	for _, c := range s.richCommands(html, plain) {
		if _, err := s.lookPath(c.name); err != nil {
			continue
		}
		if err := s.run(ctx, c.name, c.args, c.stdin); err != nil {
			s.logger.Warn("rich clipboard command failed", zap.String("cmd", c.name), zap.Error(err))
			return fmt.Errorf("%s: %w", c.name, err)
		}
		s.logger.Debug("rich clipboard written", zap.String("cmd", c.name))
		if c.htmlOnly && plain != "" {
			s.logger.Info("plain text representation not set",
				zap.String("cmd", c.name),
				zap.Int("plain_bytes", len(plain)))
		}
		return nil
	}
	return ErrRichUnsupported
}

// WriteText places plain text on the clipboard.
func (s *System) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.writeText(strings.ReplaceAll(text, "\r\n", "\n")); err != nil {
		return fmt.Errorf("write clipboard text: %w", err)
	}
	return nil
}

type command struct {
	name  string
	args  []string
	stdin string
	// htmlOnly marks tools that offer a single MIME type per invocation.
	htmlOnly bool
}

func (s *System) richCommands(html, plain string) []command {
	switch s.goos {
	case "darwin":
		return []command{{name: "osascript", args: []string{"-e", appleScript(html, plain)}}}
	case "windows":
		return nil
	default:
		// wl-copy and xclip serve one --type/-t per invocation, and a second
		// call takes over the clipboard selection. Offering text/plain as
		// well would mean putting it on the primary selection instead, which
		// paste targets ignore, so only the HTML is set.
		return []command{
			{name: "wl-copy", args: []string{"--type", MIMEHTML}, stdin: html, htmlOnly: true},
			{name: "xclip", args: []string{"-selection", "clipboard", "-t", MIMEHTML}, stdin: html, htmlOnly: true},
		}
	}
}

func appleScript(html, plain string) string {
	return fmt.Sprintf(`set the clipboard to {«class HTML»:«data HTML%s», string:%s}`,
		strings.ToUpper(hex.EncodeToString([]byte(html))), appleString(plain))
}

func appleString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}

func runCmd(ctx context.Context, name string, args []string, stdin string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = strings.NewReader(stdin)
	if out, err := cmd.CombinedOutput(); err != nil {
		msg := strings.TrimSpace(string(out))
		if msg == "" {
			return err
		}
		return errors.New(err.Error() + ": " + msg)
	}
	return nil
}
