package filestore

import (
	"context"
	"time"

	"github.com/Yasinefedemirrr/FinalizerDemoProject/internal/models"
	"github.com/Yasinefedemirrr/FinalizerDemoProject/internal/store"
)

// userRecord is the on-disk form of a user. models.User hides the
// password hash from API JSON with `json:"-"`; the storage document
// must keep it, so users.json gets its own representation.
type userRecord struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"password"`
	Role      string    `json:"role"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toUserRecord(u models.User) userRecord {
	return userRecord{
		ID:        u.ID,
		Username:  u.Username,
		Password:  u.Password,
		Role:      u.Role,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func (r userRecord) model() models.User {
	return models.User{
		ID:        r.ID,
		Username:  r.Username,
		Password:  r.Password,
		Role:      r.Role,
		Name:      r.Name,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// Users is the file-backed principal repository. The caller hashes
// passwords before Create; this layer never sees plaintext.
type Users struct {
	col *collection[userRecord]
}

func (s *Users) List(_ context.Context) ([]models.User, error) {
	s.col.mu.RLock()
	defer s.col.mu.RUnlock()
	items, err := s.col.load()
	if err != nil {
		return nil, err
	}
	items = s.col.sortedDesc(items)
	out := make([]models.User, len(items))
	for i, r := range items {
		out[i] = r.model()
	}
	return out, nil
}

func (s *Users) Get(_ context.Context, id uint) (*models.User, error) {
	s.col.mu.RLock()
	defer s.col.mu.RUnlock()
	items, err := s.col.load()
	if err != nil {
		return nil, err
	}
	i := s.col.find(items, id)
	if i < 0 {
		return nil, store.ErrNotFound
	}
	u := items[i].model()
	return &u, nil
}

func (s *Users) GetByUsername(_ context.Context, username string) (*models.User, error) {
	s.col.mu.RLock()
	defer s.col.mu.RUnlock()
	items, err := s.col.load()
	if err != nil {
		return nil, err
	}
	for _, r := range items {
		if r.Username == username {
			u := r.model()
			return &u, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *Users) Count(_ context.Context) (int64, error) {
	s.col.mu.RLock()
	defer s.col.mu.RUnlock()
	items, err := s.col.load()
	if err != nil {
		return 0, err
	}
	return int64(len(items)), nil
}

// Create persists a new user. Username uniqueness is enforced here,
// under the collection write lock, so two racing registrations cannot
// both slip past the handler's lookup.
func (s *Users) Create(_ context.Context, u models.User) (*models.User, error) {
	s.col.mu.Lock()
	defer s.col.mu.Unlock()
	items, err := s.col.load()
	if err != nil {
		return nil, err
	}
	for _, r := range items {
		if r.Username == u.Username {
			return nil, store.ErrDuplicate
		}
	}
	u.ID = s.col.nextID(items)
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now
	if err := s.col.save(append(items, toUserRecord(u))); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Users) Delete(_ context.Context, id uint) error {
	s.col.mu.Lock()
	defer s.col.mu.Unlock()
	items, err := s.col.load()
	if err != nil {
		return err
	}
	i := s.col.find(items, id)
	if i < 0 {
		return store.ErrNotFound
	}
	return s.col.save(append(items[:i], items[i+1:]...))
}
