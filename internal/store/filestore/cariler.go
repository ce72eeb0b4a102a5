package filestore

import (
	"context"
	"time"

	"github.com/Yasinefedemirrr/FinalizerDemoProject/internal/models"
	"github.com/Yasinefedemirrr/FinalizerDemoProject/internal/store"
)

// Cariler is the file-backed counterparty repository.
type Cariler struct {
	col *collection[models.Cari]
}

func (s *Cariler) List(_ context.Context) ([]models.Cari, error) {
	s.col.mu.RLock()
	defer s.col.mu.RUnlock()
	items, err := s.col.load()
	if err != nil {
		return nil, err
	}
	return s.col.sortedDesc(items), nil
}

func (s *Cariler) Get(_ context.Context, id uint) (*models.Cari, error) {
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
	c := items[i]
	return &c, nil
}

func (s *Cariler) Create(_ context.Context, p models.CariPatch) (*models.Cari, error) {
	s.col.mu.Lock()
	defer s.col.mu.Unlock()
	items, err := s.col.load()
	if err != nil {
		return nil, err
	}
	c := models.NewCari(p)
	c.ID = s.col.nextID(items)
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now
	if err := s.col.save(append(items, c)); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Cariler) Update(_ context.Context, id uint, p models.CariPatch) (*models.Cari, error) {
	s.col.mu.Lock()
	defer s.col.mu.Unlock()
	items, err := s.col.load()
	if err != nil {
		return nil, err
	}
	i := s.col.find(items, id)
	if i < 0 {
		return nil, store.ErrNotFound
	}
	p.Apply(&items[i])
	items[i].UpdatedAt = time.Now().UTC()
	if err := s.col.save(items); err != nil {
		return nil, err
	}
	c := items[i]
	return &c, nil
}

func (s *Cariler) Delete(_ context.Context, id uint) error {
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
