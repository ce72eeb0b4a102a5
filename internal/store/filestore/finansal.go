package filestore

import (
	"context"
	"time"

	"github.com/Yasinefedemirrr/FinalizerDemoProject/internal/models"
	"github.com/Yasinefedemirrr/FinalizerDemoProject/internal/store"
)

// Finansal is the file-backed financial transaction repository.
type Finansal struct {
	col *collection[models.Finansal]
}

func (s *Finansal) List(_ context.Context) ([]models.Finansal, error) {
	s.col.mu.RLock()
	defer s.col.mu.RUnlock()
	items, err := s.col.load()
	if err != nil {
		return nil, err
	}
	return s.col.sortedDesc(items), nil
}

func (s *Finansal) Get(_ context.Context, id uint) (*models.Finansal, error) {
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
	f := items[i]
	return &f, nil
}

func (s *Finansal) Create(_ context.Context, p models.FinansalPatch) (*models.Finansal, error) {
	s.col.mu.Lock()
	defer s.col.mu.Unlock()
	items, err := s.col.load()
	if err != nil {
		return nil, err
	}
	f := models.NewFinansal(p)
	f.ID = s.col.nextID(items)
	now := time.Now().UTC()
	f.CreatedAt = now
	f.UpdatedAt = now
	if err := s.col.save(append(items, f)); err != nil {
		return nil, err
	}
	return &f, nil
}

func (s *Finansal) Update(_ context.Context, id uint, p models.FinansalPatch) (*models.Finansal, error) {
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
	f := items[i]
	return &f, nil
}

func (s *Finansal) Delete(_ context.Context, id uint) error {
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
