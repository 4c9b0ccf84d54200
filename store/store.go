package store

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"netbank/models"
)

// Store is the account store: the whole persisted document held in memory
// behind one mutex, flushed to a single JSON file on every mutation.
//
// Update applies mutations to a deep copy and only swaps the copy in after
// the file write succeeded, so a failed write leaves no visible effect and
// concurrent transfers cannot interleave between balance check and debit.
type Store struct {
	mu   sync.Mutex
	path string
	doc  *models.Document
}

// Open loads the document at path. A missing or empty file is initialized
// with the demo seed customers and written out before the store is returned.
func Open(path string) (*Store, error) {
	s := &Store{path: path}

	data, err := os.ReadFile(path)
	if err == nil && len(data) > 0 {
		var doc models.Document
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		s.doc = &doc
		return s, nil
	}
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	doc, err := seedDocument()
	if err != nil {
		return nil, err
	}
	if err := save(path, doc); err != nil {
		return nil, err
	}
	s.doc = doc
	return s, nil
}

// Update runs fn against a deep copy of the document, persists the copy and
// swaps it in. If fn returns an error or the write fails, the live document
// is untouched; a write failure surfaces as models.ErrPersistence.
func (s *Store) Update(fn func(doc *models.Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := clone(s.doc)
	if err != nil {
		return fmt.Errorf("%w: %v", models.ErrPersistence, err)
	}
	if err := fn(next); err != nil {
		return err
	}
	if err := save(s.path, next); err != nil {
		return fmt.Errorf("%w: %v", models.ErrPersistence, err)
	}
	s.doc = next
	return nil
}

// Customer returns a copy of the record with the given account number.
func (s *Store) Customer(accNo string) (models.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := ByAccNo(s.doc, accNo)
	if c == nil {
		return models.Customer{}, models.ErrNotFound
	}
	return *c, nil
}

// Find resolves a caller-supplied identifier to one customer, or
// models.ErrNotFound. Matching is case-insensitive with this priority:
// exact account number, exact full name, first name containing the query as
// a substring in store order. Multiple substring matches are not
// disambiguated; the first wins.
func (s *Store) Find(query string) (models.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := Find(s.doc, query)
	if c == nil {
		return models.Customer{}, models.ErrNotFound
	}
	return *c, nil
}

// List returns copies of every customer record in store order.
func (s *Store) List() []models.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Customer, 0, len(s.doc.Customers))
	for _, c := range s.doc.Customers {
		out = append(out, *c)
	}
	return out
}

// TransferLog returns a copy of the global transfer audit log.
func (s *Store) TransferLog() []models.TransferRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.TransferRecord, len(s.doc.TransferLog))
	copy(out, s.doc.TransferLog)
	return out
}

// ByAccNo finds a customer by exact account number inside a document. For
// use within Update callbacks.
func ByAccNo(doc *models.Document, accNo string) *models.Customer {
	for _, c := range doc.Customers {
		if c.AccNo == accNo {
			return c
		}
	}
	return nil
}

// Find is the lookup of Store.Find operating directly on a document, for
// use within Update callbacks.
func Find(doc *models.Document, query string) *models.Customer {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	for _, c := range doc.Customers {
		if strings.ToLower(c.AccNo) == q {
			return c
		}
	}
	for _, c := range doc.Customers {
		if strings.ToLower(c.Name) == q {
			return c
		}
	}
	for _, c := range doc.Customers {
		if strings.Contains(strings.ToLower(c.Name), q) {
			return c
		}
	}
	return nil
}

// NameTaken reports whether a customer with the given name already exists,
// ignoring case.
func NameTaken(doc *models.Document, name string) bool {
	n := strings.ToLower(name)
	for _, c := range doc.Customers {
		if strings.ToLower(c.Name) == n {
			return true
		}
	}
	return false
}

func clone(doc *models.Document) (*models.Document, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var out models.Document
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// save writes the document atomically: a temp file next to the target is
// renamed over it, so a crash mid-write never leaves a corrupt data file.
func save(path string, doc *models.Document) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, path)
}
