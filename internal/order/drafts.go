package order

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

var ErrDraftNotFound = errors.New("draft not found")

// DraftStore keeps the drafts open at the counter, in memory. Each draft is
// changed only through Update, one caller at a time.
type DraftStore struct {
	mu     sync.Mutex
	drafts map[string]*Draft
}

func NewDraftStore() *DraftStore {
	return &DraftStore{drafts: make(map[string]*Draft)}
}

// Create opens an empty draft.
func (s *DraftStore) Create() Draft {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := &Draft{ID: uuid.NewString(), Items: []LineItem{}, PaymentMethod: []PaymentMethod{}}
	d.touch()
	s.drafts[d.ID] = d
	return d.clone()
}

// Get returns a copy of the draft.
func (s *DraftStore) Get(id string) (Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.drafts[id]
	if !ok {
		return Draft{}, ErrDraftNotFound
	}
	return d.clone(), nil
}

// Update runs fn on a working copy of the draft and keeps the result only
// when fn succeeds.
func (s *DraftStore) Update(id string, fn func(d *Draft) error) (Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.drafts[id]
	if !ok {
		return Draft{}, ErrDraftNotFound
	}
	work := d.clone()
	if err := fn(&work); err != nil {
		return Draft{}, err
	}
	s.drafts[id] = &work
	return work.clone(), nil
}

// Delete discards the draft.
func (s *DraftStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.drafts[id]; !ok {
		return ErrDraftNotFound
	}
	delete(s.drafts, id)
	return nil
}

// Take removes the draft and returns it, so that only one caller can
// submit it. Put hands it back if the submit fails.
func (s *DraftStore) Take(id string) (Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.drafts[id]
	if !ok {
		return Draft{}, ErrDraftNotFound
	}
	delete(s.drafts, id)
	return d.clone(), nil
}

// Put stores d under its id, replacing any draft with that id.
func (s *DraftStore) Put(d Draft) {
	s.mu.Lock()
	defer s.mu.Unlock()

	work := d.clone()
	s.drafts[d.ID] = &work
}

// Len is the number of open drafts.
func (s *DraftStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.drafts)
}
