package dbstore

import (
	"context"

	"gorm.io/gorm"

	"github.com/Yasinefedemirrr/FinalizerDemoProject/internal/models"
	"github.com/Yasinefedemirrr/FinalizerDemoProject/internal/services"
)

// Faturalar is the relational invoice repository. A write referencing
// a Cari that does not exist is rejected with store.ErrIntegrity; the
// schema carries the matching foreign key as a backstop.
type Faturalar struct {
	db *gorm.DB
}

func (s *Faturalar) List(ctx context.Context) ([]models.Fatura, error) {
	var items []models.Fatura
	if err := s.db.WithContext(ctx).Order("id DESC").Find(&items).Error; err != nil {
		return nil, wrapErr("faturalar list", err)
	}
	return items, nil
}

func (s *Faturalar) Get(ctx context.Context, id uint) (*models.Fatura, error) {
	var f models.Fatura
	if err := s.db.WithContext(ctx).First(&f, id).Error; err != nil {
		return nil, wrapErr("faturalar get", err)
	}
	return &f, nil
}

func (s *Faturalar) Create(ctx context.Context, p models.FaturaPatch) (*models.Fatura, error) {
	f := models.NewFatura(p, nowFunc())
	if f.CariID != nil && *f.CariID != 0 {
		if err := cariExists(ctx, s.db, *f.CariID); err != nil {
			return nil, err
		}
	}
	f.LineItems = services.NormalizeLineItems(f.LineItems)
	f.Toplamlar = services.ComputeToplamlar(f.LineItems)
	if err := s.db.WithContext(ctx).Create(&f).Error; err != nil {
		return nil, wrapErr("faturalar create", err)
	}
	return &f, nil
}

func (s *Faturalar) Update(ctx context.Context, id uint, p models.FaturaPatch) (*models.Fatura, error) {
	var f models.Fatura
	if err := s.db.WithContext(ctx).First(&f, id).Error; err != nil {
		return nil, wrapErr("faturalar get", err)
	}
	p.Apply(&f)
	if p.CariID != nil && *p.CariID != 0 {
		if err := cariExists(ctx, s.db, *p.CariID); err != nil {
			return nil, err
		}
	}
	// Totals always follow the merged line items.
	f.LineItems = services.NormalizeLineItems(f.LineItems)
	f.Toplamlar = services.ComputeToplamlar(f.LineItems)
	if err := s.db.WithContext(ctx).Save(&f).Error; err != nil {
		return nil, wrapErr("faturalar update", err)
	}
	return &f, nil
}

func (s *Faturalar) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Fatura{}, id)
	if res.Error != nil {
		return wrapErr("faturalar delete", res.Error)
	}
	if res.RowsAffected == 0 {
		return wrapErr("faturalar delete", gorm.ErrRecordNotFound)
	}
	return nil
}
