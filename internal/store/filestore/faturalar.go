package filestore

import (
	"context"
	"time"

	"github.com/Yasinefedemirrr/FinalizerDemoProject/internal/models"
	"github.com/Yasinefedemirrr/FinalizerDemoProject/internal/services"
	"github.com/Yasinefedemirrr/FinalizerDemoProject/internal/store"
)

// Faturalar is the file-backed invoice repository. Referential
// integrity to cariler is intentionally not enforced here; only the
// relational backend rejects unknown cariId values.
type Faturalar struct {
	col *collection[models.Fatura]
}

func (s *Faturalar) List(_ context.Context) ([]models.Fatura, error) {
	s.col.mu.RLock()
	defer s.col.mu.RUnlock()
	items, err := s.col.load()
	if err != nil {
		return nil, err
	}
	return s.col.sortedDesc(items), nil
}

func (s *Faturalar) Get(_ context.Context, id uint) (*models.Fatura, error) {
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

func (s *Faturalar) Create(_ context.Context, p models.FaturaPatch) (*models.Fatura, error) {
	s.col.mu.Lock()
	defer s.col.mu.Unlock()
	items, err := s.col.load()
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	f := models.NewFatura(p, now)
	f.ID = s.col.nextID(items)
	f.LineItems = services.NormalizeLineItems(f.LineItems)
	f.Toplamlar = services.ComputeToplamlar(f.LineItems)
	f.CreatedAt = now
	f.UpdatedAt = now
	if err := s.col.save(append(items, f)); err != nil {
		return nil, err
	}
	return &f, nil
}

func (s *Faturalar) Update(_ context.Context, id uint, p models.FaturaPatch) (*models.Fatura, error) {
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
	// Totals always follow the merged line items, even when the
	// request did not touch them.
	items[i].LineItems = services.NormalizeLineItems(items[i].LineItems)
	items[i].Toplamlar = services.ComputeToplamlar(items[i].LineItems)
	items[i].UpdatedAt = time.Now().UTC()
	if err := s.col.save(items); err != nil {
		return nil, err
	}
	f := items[i]
	return &f, nil
}

func (s *Faturalar) Delete(_ context.Context, id uint) error {
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
