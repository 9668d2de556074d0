package themejson

import (
	"errors"
	"sync"
	"sync/atomic"
)

// ErrReentrantUpdate is returned when an update hook calls Update on the store it is observing.
var ErrReentrantUpdate = errors.New("themejson: update called from inside an update hook")

// Store holds the current theme document and the tokens derived from it.
// The zero value is not usable; create one with NewStore and share the pointer.
type Store struct {
	mu         sync.RWMutex
	doc        Value
	props      Collection
	sourcePath string

	hookMu    sync.Mutex
	onUpdate  func()
	listeners map[int]func()
	nextID    int

	updating atomic.Bool
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		props:     make(Collection),
		listeners: make(map[int]func()),
	}
}

// Update replaces the document and rebuilds every category. A null or empty document is
// ignored. Hooks run synchronously after the new collection is visible to readers.
func (s *Store) Update(doc Value) error {
	if doc.IsNull() || (doc.IsComposite() && doc.Len() == 0) {
		return nil
	}

	if !s.updating.CompareAndSwap(false, true) {
		return ErrReentrantUpdate
	}
	defer s.updating.Store(false)

	props := BuildProperties(doc)

	s.mu.Lock()
	s.doc = doc
	s.props = props
	s.mu.Unlock()

	s.notify()
	return nil
}

// ToArray returns every token, categories in enumeration order.
// The returned slice is owned by the caller.
func (s *Store) ToArray() []Token {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.props.ToArray()
}

// Tokens returns a copy of one category's tokens
func (s *Store) Tokens(category Category) []Token {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Token(nil), s.props[category]...)
}

// Document returns the last document passed to Update, and false if there was none
func (s *Store) Document() (Value, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc, !s.doc.IsNull()
}

// SetSourcePath records where the current document was read from
func (s *Store) SetSourcePath(path string) {
	s.mu.Lock()
	s.sourcePath = path
	s.mu.Unlock()
}

// SourcePath returns the path recorded by SetSourcePath
func (s *Store) SourcePath() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sourcePath
}

// SetOnUpdate replaces the primary update hook. A nil hook is ignored and the
// previous one stays registered.
func (s *Store) SetOnUpdate(fn func()) {
	if fn == nil {
		return
	}
	s.hookMu.Lock()
	s.onUpdate = fn
	s.hookMu.Unlock()
}

// Subscribe adds a listener that runs after every successful Update, after the primary hook.
// The returned function removes it.
func (s *Store) Subscribe(fn func()) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}

	s.hookMu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.hookMu.Unlock()

	return func() {
		s.hookMu.Lock()
		delete(s.listeners, id)
		s.hookMu.Unlock()
	}
}

func (s *Store) notify() {
	s.hookMu.Lock()
	hooks := make([]func(), 0, len(s.listeners)+1)
	if s.onUpdate != nil {
		hooks = append(hooks, s.onUpdate)
	}
	for id := 0; id < s.nextID; id++ {
		if fn, ok := s.listeners[id]; ok {
			hooks = append(hooks, fn)
		}
	}
	s.hookMu.Unlock()

	for _, fn := range hooks {
		fn()
	}
}
