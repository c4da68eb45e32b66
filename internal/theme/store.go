package theme

import (
	"fmt"
	"sync"

	"github.com/alexisbeaulieu97/gallery/internal/logger"
	galleryerrors "github.com/alexisbeaulieu97/gallery/pkg/errors"
)

// DefaultStorageKey is the slot the theme preference is persisted under.
const DefaultStorageKey = "ui-theme"

// Store is the single source of truth for the active theme. Construct one per
// process and hand it to every consumer that needs to read or react to it.
type Store struct {
	// setMu serialises writers so the persisted value, the in-memory value
	// and the notification order always agree.
	setMu sync.Mutex

	mu      sync.RWMutex
	current Theme
	storage Storage
	key     string
	log     *logger.Logger

	subscribers map[uint64]func(Theme)
	nextID      uint64
}

// StoreOption customises a Store at construction time.
type StoreOption func(*storeOptions)

type storeOptions struct {
	key      string
	fallback Theme
	log      *logger.Logger
}

// WithStorageKey overrides DefaultStorageKey.
func WithStorageKey(key string) StoreOption {
	return func(o *storeOptions) {
		if key != "" {
			o.key = key
		}
	}
}

// WithDefault sets the theme used when nothing valid is persisted. Invalid
// values are ignored.
func WithDefault(t Theme) StoreOption {
	return func(o *storeOptions) {
		if t.Valid() {
			o.fallback = t
		}
	}
}

// WithLogger attaches a logger to the store.
func WithLogger(log *logger.Logger) StoreOption {
	return func(o *storeOptions) {
		o.log = log
	}
}

// NewStore creates a Store, restoring the persisted preference from storage
// once. A missing or unrecognised value falls back to the default theme.
// A nil storage keeps the preference in memory only.
func NewStore(storage Storage, opts ...StoreOption) *Store {
	options := storeOptions{key: DefaultStorageKey, fallback: Default}
	for _, opt := range opts {
		opt(&options)
	}
	if storage == nil {
		storage = NewMemoryStorage()
	}

	log := options.log.With("key", options.key)
	s := &Store{
		current:     options.fallback,
		storage:     storage,
		key:         options.key,
		log:         log,
		subscribers: make(map[uint64]func(Theme)),
	}

	raw, ok := storage.Get(options.key)
	if !ok {
		log.Debug("no persisted theme, using default")
		return s
	}

	restored, err := Parse(raw)
	if err != nil {
		log.Warn(fmt.Sprintf("ignoring invalid persisted theme %q", raw))
		return s
	}

	s.current = restored
	log.Debug("restored persisted theme " + restored.String())
	return s
}

// Theme returns the active theme.
func (s *Store) Theme() Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// StorageKey returns the slot the preference is persisted under.
func (s *Store) StorageKey() string {
	return s.key
}

// Set replaces the active theme, persists it and notifies every subscriber
// exactly once before returning. Setting the current value still notifies.
// Invalid themes are rejected with ErrInvalidTheme and change nothing.
//
// A persistence failure is returned as a *errors.StorageError after the
// in-memory value has been updated and subscribers notified.
//
// Subscribers run while the store holds its write lock and must not call Set
// or Toggle themselves.
func (s *Store) Set(next Theme) error {
	if !next.Valid() {
		s.log.Warn(fmt.Sprintf("rejected invalid theme %q", string(next)))
		return ErrInvalidTheme
	}

	s.setMu.Lock()
	defer s.setMu.Unlock()
	return s.set(next)
}

func (s *Store) set(next Theme) error {
	s.mu.Lock()
	s.current = next
	callbacks := make([]func(Theme), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		callbacks = append(callbacks, fn)
	}
	s.mu.Unlock()

	var persistErr error
	if err := s.storage.Put(s.key, next.String()); err != nil {
		persistErr = galleryerrors.NewStorageError(s.key, storagePath(s.storage), err)
		s.log.Error(err, "failed to persist theme")
	}

	for _, fn := range callbacks {
		fn(next)
	}

	s.log.Debug("theme set to " + next.String())
	return persistErr
}

// Toggle switches between light and dark and returns the new theme.
func (s *Store) Toggle() (Theme, error) {
	s.setMu.Lock()
	defer s.setMu.Unlock()

	next := s.Theme().Toggle()
	return next, s.set(next)
}

// Subscribe registers fn to be called with the new theme on every Set. The
// returned function removes the registration; calling it more than once is
// harmless. Registrations are independent, even for the same fn.
func (s *Store) Subscribe(fn func(Theme)) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}

	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subscribers[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subscribers, id)
			s.mu.Unlock()
		})
	}
}

// Subscribers reports how many callbacks are registered.
func (s *Store) Subscribers() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.subscribers)
}

func storagePath(storage Storage) string {
	if p, ok := storage.(interface{ Path() string }); ok {
		return p.Path()
	}
	return ""
}
