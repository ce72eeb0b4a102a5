// Package dbstore is the relational implementation of store.Backend,
// built on gorm. Production runs PostgreSQL; tests open an in-memory
// sqlite database with the same schema. Scalar fields map to columns,
// the nested invoice/transaction structures land in JSON document
// columns via their Valuer/Scanner implementations.
package dbstore

import (
	"context"
	"errors"
	"sync"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Yasinefedemirrr/FinalizerDemoProject/internal/models"
	"github.com/Yasinefedemirrr/FinalizerDemoProject/internal/store"
)

// Store is the relational implementation of store.Backend.
type Store struct {
	db *gorm.DB

	migrateOnce sync.Once
	migrateErr  error
}

// Open connects through the given dialector and bootstraps the schema.
// No repository call is accepted before the table bootstrap completes;
// EnsureSchema runs at most once per Store regardless of how many
// initializers reach it.
func Open(dial gorm.Dialector) (*Store, error) {
	db, err := gorm.Open(dial, &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return nil, store.Storagef("connect", err)
	}
	s := &Store{db: db}
	if err := s.EnsureSchema(); err != nil {
		return nil, err
	}
	return s, nil
}

// EnsureSchema creates the four tables idempotently. Safe to call from
// multiple initializers; only the first call does work.
func (s *Store) EnsureSchema() error {
	s.migrateOnce.Do(func() {
		err := s.db.AutoMigrate(
			&models.User{},
			&models.Cari{},
			&models.Fatura{},
			&models.Finansal{},
		)
		if err != nil {
			s.migrateErr = store.Storagef("migrate", err)
		}
	})
	return s.migrateErr
}

func (s *Store) Cariler() store.CariStore     { return &Cariler{db: s.db} }
func (s *Store) Faturalar() store.FaturaStore { return &Faturalar{db: s.db} }
func (s *Store) Finansal() store.FinansalStore {
	return &Finansal{db: s.db}
}
func (s *Store) Users() store.UserStore { return &Users{db: s.db} }

// nowFunc feeds the defaulting path (invoice number, invoice date);
// row timestamps come from gorm itself.
var nowFunc = func() time.Time { return time.Now().UTC() }

// wrapErr maps gorm's record-not-found onto the contract's NotFound
// kind and wraps everything else as a storage failure.
func wrapErr(op string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return store.ErrNotFound
	}
	return store.Storagef(op, err)
}

// cariExists backs the foreign-key contract: invoice and transaction
// writes referencing a Cari must point at an existing row.
func cariExists(ctx context.Context, db *gorm.DB, id uint) error {
	var n int64
	if err := db.WithContext(ctx).Model(&models.Cari{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return store.Storagef("cari lookup", err)
	}
	if n == 0 {
		return store.ErrIntegrity
	}
	return nil
}
