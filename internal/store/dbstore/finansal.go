package dbstore

import (
	"context"

	"gorm.io/gorm"

	"github.com/Yasinefedemirrr/FinalizerDemoProject/internal/models"
)

// Finansal is the relational financial transaction repository.
type Finansal struct {
	db *gorm.DB
}

func (s *Finansal) List(ctx context.Context) ([]models.Finansal, error) {
	var items []models.Finansal
	if err := s.db.WithContext(ctx).Order("id DESC").Find(&items).Error; err != nil {
		return nil, wrapErr("finansal list", err)
	}
	return items, nil
}

func (s *Finansal) Get(ctx context.Context, id uint) (*models.Finansal, error) {
	var f models.Finansal
	if err := s.db.WithContext(ctx).First(&f, id).Error; err != nil {
		return nil, wrapErr("finansal get", err)
	}
	return &f, nil
}

func (s *Finansal) Create(ctx context.Context, p models.FinansalPatch) (*models.Finansal, error) {
	f := models.NewFinansal(p)
	if f.CariID != nil && *f.CariID != 0 {
		if err := cariExists(ctx, s.db, *f.CariID); err != nil {
			return nil, err
		}
	}
	if err := s.db.WithContext(ctx).Create(&f).Error; err != nil {
		return nil, wrapErr("finansal create", err)
	}
	return &f, nil
}

func (s *Finansal) Update(ctx context.Context, id uint, p models.FinansalPatch) (*models.Finansal, error) {
	var f models.Finansal
	if err := s.db.WithContext(ctx).First(&f, id).Error; err != nil {
		return nil, wrapErr("finansal get", err)
	}
	p.Apply(&f)
	if p.CariID != nil && *p.CariID != 0 {
		if err := cariExists(ctx, s.db, *p.CariID); err != nil {
			return nil, err
		}
	}
	if err := s.db.WithContext(ctx).Save(&f).Error; err != nil {
		return nil, wrapErr("finansal update", err)
	}
	return &f, nil
}

func (s *Finansal) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Finansal{}, id)
	if res.Error != nil {
		return wrapErr("finansal delete", res.Error)
	}
	if res.RowsAffected == 0 {
		return wrapErr("finansal delete", gorm.ErrRecordNotFound)
	}
	return nil
}
