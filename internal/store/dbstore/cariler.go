package dbstore

import (
	"context"

	"gorm.io/gorm"

	"github.com/Yasinefedemirrr/FinalizerDemoProject/internal/models"
)

// Cariler is the relational counterparty repository.
type Cariler struct {
	db *gorm.DB
}

func (s *Cariler) List(ctx context.Context) ([]models.Cari, error) {
	var items []models.Cari
	if err := s.db.WithContext(ctx).Order("id DESC").Find(&items).Error; err != nil {
		return nil, wrapErr("cariler list", err)
	}
	return items, nil
}

func (s *Cariler) Get(ctx context.Context, id uint) (*models.Cari, error) {
	var c models.Cari
	if err := s.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, wrapErr("cariler get", err)
	}
	return &c, nil
}

func (s *Cariler) Create(ctx context.Context, p models.CariPatch) (*models.Cari, error) {
	c := models.NewCari(p)
	if err := s.db.WithContext(ctx).Create(&c).Error; err != nil {
		return nil, wrapErr("cariler create", err)
	}
	return &c, nil
}

func (s *Cariler) Update(ctx context.Context, id uint, p models.CariPatch) (*models.Cari, error) {
	var c models.Cari
	if err := s.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, wrapErr("cariler get", err)
	}
	p.Apply(&c)
	if err := s.db.WithContext(ctx).Save(&c).Error; err != nil {
		return nil, wrapErr("cariler update", err)
	}
	return &c, nil
}

func (s *Cariler) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Cari{}, id)
	if res.Error != nil {
		return wrapErr("cariler delete", res.Error)
	}
	if res.RowsAffected == 0 {
		return wrapErr("cariler delete", gorm.ErrRecordNotFound)
	}
	return nil
}
