// Package bookstore owns the catalog's authoritative in-memory record set and
// its JSON-file persistence. The in-memory state is the source of truth for
// the running process; every mutation is followed by a best-effort write of
// the whole collection to the backing file.
package bookstore

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"github.com/robinsingh-ai/library-api/internal/entities"
	"github.com/robinsingh-ai/library-api/internal/isbn"
)

// Store holds the full book collection in memory, synchronized to a backing
// JSON file on every mutation. All lookups and mutations are guarded by a
// single lock so that check-then-act sequences (ISBN uniqueness check followed
// by an insert) stay atomic under concurrent requests.
type Store struct {
	mu    sync.RWMutex
	path  string
	books []entities.Book
}

// New creates a Store backed by the JSON file at path. A missing file is
// seeded with the sample catalog; a present one is loaded. Initialization
// problems (unreadable directory, malformed content) are logged and leave the
// store running with whatever state it has — construction never fails.
func New(path string) *Store {
	s := &Store{path: path}
	s.load()
	return s
}

func (s *Store) load() {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Printf("bookstore: failed to create data directory %s: %v", dir, err)
			return
		}
	}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.books = SeedBooks()
		s.persist()
		log.Printf("bookstore: seeded %s with %d sample books", s.path, len(s.books))
		return
	}
	if err != nil {
		log.Printf("bookstore: failed to read %s, starting with an empty catalog: %v", s.path, err)
		return
	}

	var books []entities.Book
	if err := json.Unmarshal(data, &books); err != nil {
		log.Printf("bookstore: failed to parse %s, starting with an empty catalog: %v", s.path, err)
		return
	}
	s.books = books
}

// persist writes the whole collection to the backing file as pretty-printed
// JSON. Failures are logged, never returned: the in-memory mutation has
// already happened and stands for the rest of the process lifetime.
// Callers must hold s.mu.
func (s *Store) persist() {
	data, err := json.MarshalIndent(s.books, "", "  ")
	if err != nil {
		log.Printf("bookstore: failed to marshal catalog: %v", err)
		return
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		log.Printf("bookstore: failed to write %s: %v", s.path, err)
	}
}

// GetAll returns an independent copy of the whole catalog.
func (s *Store) GetAll() []entities.Book {
	s.mu.RLock()
	defer s.mu.RUnlock()

	books := make([]entities.Book, len(s.books))
	copy(books, s.books)
	return books
}

// GetByID returns the book with the given ID, if any.
func (s *Store) GetByID(id string) (entities.Book, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, book := range s.books {
		if book.ID == id {
			return book, true
		}
	}
	return entities.Book{}, false
}

// GetByISBN returns the book with the given ISBN, if any. The argument is
// normalized before comparison, so hyphenated and plain forms match.
func (s *Store) GetByISBN(raw string) (entities.Book, bool) {
	normalized := isbn.Normalize(raw)

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, book := range s.books {
		if book.ISBN == normalized {
			return book, true
		}
	}
	return entities.Book{}, false
}

// ISBNExists reports whether any book holds the given (normalized) ISBN.
func (s *Store) ISBNExists(raw string) bool {
	_, ok := s.GetByISBN(raw)
	return ok
}

// Count returns the number of books in the catalog.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.books)
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Create appends a new book composed of input plus a generated ID, persists
// the catalog and returns the new record. IDs are random UUIDs and are never
// reused. The ISBN is re-checked for uniqueness under the store lock before
// the insert; a *ConflictError is returned when another book already holds
// it. The validation chain checks the same thing earlier for a friendlier
// reject, but two concurrent creates can both pass that check, so the store
// is where the invariant is actually enforced.
func (s *Store) Create(input entities.BookInput) (entities.Book, error) {
	normalized := isbn.Normalize(input.ISBN)

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, book := range s.books {
		if book.ISBN == normalized {
			return entities.Book{}, &ConflictError{ISBN: normalized}
		}
	}

	book := entities.Book{
		ID:            uuid.NewString(),
		ISBN:          normalized,
		Title:         input.Title,
		Author:        input.Author,
		Genre:         input.Genre,
		YearPublished: input.YearPublished,
	}
	s.books = append(s.books, book)
	s.persist()
	return book, nil
}

// Update replaces the book with the given ID by input, preserving the ID.
// It returns ErrNotFound when no book matches, and a *ConflictError when the
// submitted ISBN differs from the current one and another book already holds
// it. A book may always keep its own ISBN.
func (s *Store) Update(id string, input entities.BookInput) (entities.Book, error) {
	normalized := isbn.Normalize(input.ISBN)

	s.mu.Lock()
	defer s.mu.Unlock()

	index := -1
	for i, book := range s.books {
		if book.ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		return entities.Book{}, ErrNotFound
	}

	if normalized != s.books[index].ISBN {
		for i, book := range s.books {
			if i != index && book.ISBN == normalized {
				return entities.Book{}, &ConflictError{ISBN: normalized, OtherBook: true}
			}
		}
	}

	updated := entities.Book{
		ID:            id,
		ISBN:          normalized,
		Title:         input.Title,
		Author:        input.Author,
		Genre:         input.Genre,
		YearPublished: input.YearPublished,
	}
	s.books[index] = updated
	s.persist()
	return updated, nil
}

// Delete removes the book with the given ID and reports whether a removal
// occurred. Deleting an unknown ID is a no-op and leaves the file untouched.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, book := range s.books {
		if book.ID == id {
			s.books = append(s.books[:i], s.books[i+1:]...)
			s.persist()
			return true
		}
	}
	return false
}
