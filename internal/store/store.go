// Package store defines the backend-neutral persistence contract.
// Two implementations exist: filestore (whole-collection JSON files)
// and dbstore (gorm over PostgreSQL, sqlite in tests). Callers depend
// only on these interfaces; the backends must agree on the shape of
// every returned entity.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/Yasinefedemirrr/FinalizerDemoProject/internal/models"
)

var (
	// ErrNotFound means the id is absent from the collection. It is
	// distinct from an empty collection and from storage failures.
	ErrNotFound = errors.New("kayıt bulunamadı")

	// ErrIntegrity means a referenced Cari does not exist. Only the
	// relational backend raises it; the file backend deliberately does
	// not enforce referential integrity.
	ErrIntegrity = errors.New("referans verilen cari bulunamadı")

	// ErrDuplicate means a unique field value is already taken. Only
	// usernames carry a uniqueness constraint.
	ErrDuplicate = errors.New("kullanıcı adı zaten kayıtlı")
)

// StorageError wraps an I/O, SQL or decode failure. The cause is kept
// so callers can log it; the kind is what the boundary layer maps to
// an internal-failure response.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return fmt.Sprintf("storage %s: %v", e.Op, e.Err) }
func (e *StorageError) Unwrap() error { return e.Err }

// Storagef wraps err as a *StorageError for operation op.
func Storagef(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}

// CariStore is the repository for counterparties. List returns the
// collection ordered by descending id.
type CariStore interface {
	List(ctx context.Context) ([]models.Cari, error)
	Get(ctx context.Context, id uint) (*models.Cari, error)
	Create(ctx context.Context, p models.CariPatch) (*models.Cari, error)
	Update(ctx context.Context, id uint, p models.CariPatch) (*models.Cari, error)
	Delete(ctx context.Context, id uint) error
}

// FaturaStore is the repository for invoices. Create and Update
// recompute the totals block from the merged line items before
// persisting; stored totals are never client-supplied.
type FaturaStore interface {
	List(ctx context.Context) ([]models.Fatura, error)
	Get(ctx context.Context, id uint) (*models.Fatura, error)
	Create(ctx context.Context, p models.FaturaPatch) (*models.Fatura, error)
	Update(ctx context.Context, id uint, p models.FaturaPatch) (*models.Fatura, error)
	Delete(ctx context.Context, id uint) error
}

// FinansalStore is the repository for financial transactions.
type FinansalStore interface {
	List(ctx context.Context) ([]models.Finansal, error)
	Get(ctx context.Context, id uint) (*models.Finansal, error)
	Create(ctx context.Context, p models.FinansalPatch) (*models.Finansal, error)
	Update(ctx context.Context, id uint, p models.FinansalPatch) (*models.Finansal, error)
	Delete(ctx context.Context, id uint) error
}

// UserStore is the repository for principals. GetByUsername and Count
// exist for the login path (credential lookup and first-login admin
// bootstrap).
type UserStore interface {
	List(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, id uint) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, u models.User) (*models.User, error)
	Delete(ctx context.Context, id uint) error
}

// Backend bundles one repository per entity type, however they are
// backed. cmd/server picks the implementation at startup.
type Backend interface {
	Cariler() CariStore
	Faturalar() FaturaStore
	Finansal() FinansalStore
	Users() UserStore
}
