package dbstore

import (
	"context"

	"gorm.io/gorm"

	"github.com/Yasinefedemirrr/FinalizerDemoProject/internal/models"
	"github.com/Yasinefedemirrr/FinalizerDemoProject/internal/store"
)

// Users is the relational principal repository.
type Users struct {
	db *gorm.DB
}

func (s *Users) List(ctx context.Context) ([]models.User, error) {
	var items []models.User
	if err := s.db.WithContext(ctx).Order("id DESC").Find(&items).Error; err != nil {
		return nil, wrapErr("users list", err)
	}
	return items, nil
}

func (s *Users) Get(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	if err := s.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, wrapErr("users get", err)
	}
	return &u, nil
}

func (s *Users) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
		return nil, wrapErr("users get", err)
	}
	return &u, nil
}

func (s *Users) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).Count(&n).Error; err != nil {
		return 0, wrapErr("users count", err)
	}
	return n, nil
}

// Create persists a new user, rejecting a taken username up front.
// The unique index on username backstops the race this check leaves
// open.
func (s *Users) Create(ctx context.Context, u models.User) (*models.User, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).Where("username = ?", u.Username).Count(&n).Error; err != nil {
		return nil, wrapErr("users create", err)
	}
	if n > 0 {
		return nil, store.ErrDuplicate
	}
	if err := s.db.WithContext(ctx).Create(&u).Error; err != nil {
		return nil, wrapErr("users create", err)
	}
	return &u, nil
}

func (s *Users) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.User{}, id)
	if res.Error != nil {
		return wrapErr("users delete", res.Error)
	}
	if res.RowsAffected == 0 {
		return wrapErr("users delete", gorm.ErrRecordNotFound)
	}
	return nil
}
