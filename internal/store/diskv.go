package store

import (
	"strings"

	"github.com/peterbourgon/diskv/v3"
)

// DiskvKV stores every key as one file below a base directory.
type DiskvKV struct {
	d *diskv.Diskv
}

// NewDiskvKV opens (creating lazily) a diskv store rooted at basePath.
func NewDiskvKV(basePath string) *DiskvKV {
	return &DiskvKV{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      256 * 1024,
		FilePerm:          0o644,
		PathPerm:          0o755,
	})}
}

func (s *DiskvKV) Get(key string) (string, bool) {
	val, err := s.d.Read(key)
	if err != nil {
		return "", false
	}
	return string(val), true
}

func (s *DiskvKV) Set(key, value string) error {
	return s.d.Write(key, []byte(value))
}

// Path returns the directory that holds the store files.
func (s *DiskvKV) Path() string {
	return s.d.BasePath
}

// keyToPathTransform maps "custom-options:interventions" to
// custom-options/interventions on disk. Colons are not portable in filenames.
func keyToPathTransform(key string) *diskv.PathKey {
	parts := strings.Split(key, ":")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	if len(pathKey.Path) == 0 {
		return pathKey.FileName
	}
	return strings.Join(pathKey.Path, ":") + ":" + pathKey.FileName
}
