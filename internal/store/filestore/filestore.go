// Package filestore persists each entity collection as one JSON array
// file under a data directory, rewritten wholesale on every mutation.
// It implements the same contract as dbstore; callers cannot tell the
// backends apart by the shape of what they return.
package filestore

import (
	"os"

	"github.com/Yasinefedemirrr/FinalizerDemoProject/internal/models"
	"github.com/Yasinefedemirrr/FinalizerDemoProject/internal/store"
)

// Store is the file-backed implementation of store.Backend.
type Store struct {
	cariler   *Cariler
	faturalar *Faturalar
	finansal  *Finansal
	users     *Users
}

// New prepares the data directory and the per-collection repositories.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, store.Storagef("mkdir "+dir, err)
	}
	return &Store{
		cariler:   &Cariler{col: newCollection(dir, "cariler.json", func(c models.Cari) uint { return c.ID })},
		faturalar: &Faturalar{col: newCollection(dir, "faturalar.json", func(f models.Fatura) uint { return f.ID })},
		finansal:  &Finansal{col: newCollection(dir, "finansal.json", func(f models.Finansal) uint { return f.ID })},
		users:     &Users{col: newCollection(dir, "users.json", func(u userRecord) uint { return u.ID })},
	}, nil
}

func (s *Store) Cariler() store.CariStore     { return s.cariler }
func (s *Store) Faturalar() store.FaturaStore { return s.faturalar }
func (s *Store) Finansal() store.FinansalStore {
	return s.finansal
}
func (s *Store) Users() store.UserStore { return s.users }
