package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Backend names accepted by Open.
const (
	BackendDiskv  = "diskv"
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// ErrUnknownBackend is returned for unsupported backend names.
var ErrUnknownBackend = errors.New("store: unknown backend")

// BackendConfig selects and locates the persistent key/value storage.
type BackendConfig struct {
	Backend string
	Path    string
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Open builds the configured KV. The returned closer is never nil.
func Open(ctx context.Context, cfg BackendConfig) (KV, io.Closer, error) {
	name := strings.ToLower(strings.TrimSpace(cfg.Backend))
	if name == "" {
		name = BackendDiskv
	}
	if name != BackendMemory && strings.TrimSpace(cfg.Path) == "" {
		return nil, nopCloser{}, fmt.Errorf("store: %s backend needs a path", name)
	}
	switch name {
	case BackendDiskv:
		return NewDiskvKV(cfg.Path), nopCloser{}, nil
	case BackendFile:
		return NewFileKV(filepath.Join(cfg.Path, "custom-options.json")), nopCloser{}, nil
	case BackendSQLite:
		kv, err := OpenSQLiteKV(ctx, filepath.Join(cfg.Path, "sessionnote.sqlite"))
		if err != nil {
			return nil, nopCloser{}, err
		}
		return kv, kv, nil
	case BackendMemory:
		return NewMemoryKV(nil), nopCloser{}, nil
	default:
		return nil, nopCloser{}, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}
