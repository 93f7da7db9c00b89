package store

import (
	"encoding/json"
	"strings"

	"go.uber.org/zap"

	"github.com/csheth/sessionnote/internal/options"
)

// Store holds the user-added options of every category. Lists are read from
// the KV the first time a category is touched and written back on every
// append. Storage failures never reach the caller.
type Store struct {
	kv     KV
	logger *zap.Logger
	custom map[string][]options.Option
}

// New wraps kv. A nil kv keeps custom options in memory only.
func New(kv KV, logger *zap.Logger) *Store {
	if kv == nil {
		kv = NewMemoryKV(nil)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		kv:     kv,
		logger: logger.Named("store"),
		custom: map[string][]options.Option{},
	}
}

// Custom returns a copy of the custom list for category.
func (s *Store) Custom(category string) []options.Option {
	return append([]options.Option(nil), s.load(category)...)
}

// Merged returns the base catalog of c followed by its custom options.
func (s *Store) Merged(c options.Category) []options.Option {
	return options.Merge(c.Base, s.load(c.Key))
}

// Append adds opt to the custom list of category and persists the list.
// A failed write is logged and the option stays available for this process.
func (s *Store) Append(category string, opt options.Option) {
	list := append(s.load(category), opt)
	s.custom[category] = list
	s.persist(category, list)
}

// Create builds an option from label with a collision-free id, appends it to
// the custom list of c and returns it. Blank labels are rejected.
func (s *Store) Create(c options.Category, label, group string) (options.Option, bool) {
	label = strings.TrimSpace(label)
	if label == "" {
		return options.Option{}, false
	}
	opt := options.Option{
		ID:    options.UniqueID(label, s.Merged(c)),
		Label: label,
		Group: strings.TrimSpace(group),
	}
	s.Append(c.Key, opt)
	s.logger.Debug("custom option created",
		zap.String("category", c.Key),
		zap.String("id", opt.ID),
		zap.String("group", opt.Group))
	return opt, true
}

func (s *Store) load(category string) []options.Option {
	if list, ok := s.custom[category]; ok {
		return list
	}
	list := s.read(category)
	s.custom[category] = list
	return list
}

func (s *Store) read(category string) []options.Option {
	key := StorageKey(category)
	raw, ok := s.kv.Get(key)
	if !ok || strings.TrimSpace(raw) == "" {
		return nil
	}
	var stored []options.Option
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		s.logger.Warn("discarding unreadable custom options",
			zap.String("key", key), zap.Error(err))
		return nil
	}
	list := make([]options.Option, 0, len(stored))
	for _, opt := range stored {
		if strings.TrimSpace(opt.ID) == "" || strings.TrimSpace(opt.Label) == "" {
			s.logger.Warn("skipping incomplete custom option",
				zap.String("key", key), zap.String("id", opt.ID))
			continue
		}
		list = append(list, opt)
	}
	return list
}

func (s *Store) persist(category string, list []options.Option) {
	key := StorageKey(category)
	data, err := json.Marshal(list)
	if err != nil {
		s.logger.Warn("encode custom options", zap.String("key", key), zap.Error(err))
		return
	}
	if err := s.kv.Set(key, string(data)); err != nil {
		s.logger.Warn("persist custom options", zap.String("key", key), zap.Error(err))
	}
}
