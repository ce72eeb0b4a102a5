package filestore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yasinefedemirrr/FinalizerDemoProject/internal/models"
	"github.com/Yasinefedemirrr/FinalizerDemoProject/internal/store"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	s, err := New(dir)
	require.NoError(t, err)
	return s, dir
}

func str(s string) *string { return &s }

func dec(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestCariRoundTrip(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	created, err := s.Cariler().Create(ctx, models.CariPatch{
		TamAdi: str("Acme Ltd"),
		Sehir:  str("İstanbul"),
	})
	require.NoError(t, err)
	assert.Equal(t, uint(1), created.ID)
	assert.Equal(t, "Acme Ltd", created.TamAdi)
	assert.True(t, created.Aktif)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	got, err := s.Cariler().Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.TamAdi, got.TamAdi)
	assert.Equal(t, created.Sehir, got.Sehir)
}

func TestCariUpdateMergesOnlySuppliedFields(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	created, err := s.Cariler().Create(ctx, models.CariPatch{
		TamAdi:  str("Acme Ltd"),
		VergiNo: str("1234567890"),
	})
	require.NoError(t, err)

	aktif := false
	updated, err := s.Cariler().Update(ctx, created.ID, models.CariPatch{
		Sehir: str("Ankara"),
		Aktif: &aktif,
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme Ltd", updated.TamAdi)
	assert.Equal(t, "1234567890", updated.VergiNo)
	assert.Equal(t, "Ankara", updated.Sehir)
	assert.False(t, updated.Aktif)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestCariDelete(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	created, err := s.Cariler().Create(ctx, models.CariPatch{TamAdi: str("Acme")})
	require.NoError(t, err)

	require.NoError(t, s.Cariler().Delete(ctx, created.ID))

	_, err = s.Cariler().Get(ctx, created.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	assert.ErrorIs(t, s.Cariler().Delete(ctx, created.ID), store.ErrNotFound)
}

func TestCariListDescendingByID(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := s.Cariler().Create(ctx, models.CariPatch{TamAdi: str(fmt.Sprintf("cari %d", i))})
		require.NoError(t, err)
	}

	items, err := s.Cariler().List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, uint(3), items[0].ID)
	assert.Equal(t, uint(2), items[1].ID)
	assert.Equal(t, uint(1), items[2].ID)
}

// Ids below the maximum are never reissued: after deleting id 2 out of
// three records, the next create gets 4, not 2.
func TestIDAllocationSkipsGaps(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := s.Cariler().Create(ctx, models.CariPatch{TamAdi: str("x")})
		require.NoError(t, err)
	}
	require.NoError(t, s.Cariler().Delete(ctx, 2))

	created, err := s.Cariler().Create(ctx, models.CariPatch{TamAdi: str("y")})
	require.NoError(t, err)
	assert.Equal(t, uint(4), created.ID)
}

func TestConcurrentCreatesLoseNothing(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	const n = 20
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = s.Finansal().Create(ctx, models.FinansalPatch{
				Aciklama: str(fmt.Sprintf("islem %d", i)),
			})
		}(i)
	}
	wg.Wait()
	for _, err := range errs {
		require.NoError(t, err)
	}

	items, err := s.Finansal().List(ctx)
	require.NoError(t, err)
	require.Len(t, items, n)

	seen := make(map[uint]bool, n)
	for _, it := range items {
		assert.False(t, seen[it.ID], "duplicate id %d", it.ID)
		seen[it.ID] = true
	}
}

// Records written before the aktif flag existed must read as active.
func TestLegacyCariWithoutAktifReadsActive(t *testing.T) {
	dir := t.TempDir()
	legacy := `[{"id": 1, "tamAdi": "Eski Cari"}, {"id": 2, "tamAdi": "Pasif", "aktif": false}]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cariler.json"), []byte(legacy), 0o644))

	s, err := New(dir)
	require.NoError(t, err)

	got, err := s.Cariler().Get(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, got.Aktif)

	got, err = s.Cariler().Get(context.Background(), 2)
	require.NoError(t, err)
	assert.False(t, got.Aktif)
}

func TestCorruptFileSurfacesStorageError(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cariler.json"), []byte("{not json"), 0o644))

	s, err := New(dir)
	require.NoError(t, err)

	_, err = s.Cariler().List(context.Background())
	require.Error(t, err)
	var se *store.StorageError
	assert.True(t, errors.As(err, &se))
	assert.NotErrorIs(t, err, store.ErrNotFound)
}

func TestDataSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	s1, err := New(dir)
	require.NoError(t, err)
	created, err := s1.Cariler().Create(context.Background(), models.CariPatch{TamAdi: str("Kalıcı")})
	require.NoError(t, err)

	s2, err := New(dir)
	require.NoError(t, err)
	got, err := s2.Cariler().Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Kalıcı", got.TamAdi)
}

func TestFaturaCreateDefaultsAndTotals(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	items := models.LineItems{
		{UrunAdi: "Ürün A", Miktar: dec("2"), BirimFiyat: dec("100"), Iskonto: dec("10"), KdvOrani: dec("20")},
	}
	created, err := s.Faturalar().Create(ctx, models.FaturaPatch{LineItems: &items})
	require.NoError(t, err)

	assert.Equal(t, uint(1), created.ID)
	assert.Contains(t, created.FaturaNo, "FAT-")
	assert.Equal(t, "E-FATURA", created.FaturaTuru)
	assert.Equal(t, "SATIŞ", created.FaturaTipi)
	assert.Equal(t, "TL", created.ParaBirimi)
	assert.Equal(t, "Nakit", created.OdemeTuru)

	assert.Equal(t, "200.00", created.Toplamlar.Tutar)
	assert.Equal(t, "190.00", created.Toplamlar.Matrah)
	assert.Equal(t, "38.00", created.Toplamlar.KdvTutari)
	assert.Equal(t, "228.00", created.Toplamlar.GenelToplam)
	assert.Equal(t, "190.00", created.LineItems[0].ToplamTutar)
}

// Changing the line items on update must refresh the totals block.
func TestFaturaUpdateRecomputesTotals(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	items := models.LineItems{
		{Miktar: dec("1"), BirimFiyat: dec("100"), KdvOrani: dec("20")},
	}
	created, err := s.Faturalar().Create(ctx, models.FaturaPatch{LineItems: &items})
	require.NoError(t, err)
	require.Equal(t, "120.00", created.Toplamlar.GenelToplam)

	newItems := models.LineItems{
		{Miktar: dec("3"), BirimFiyat: dec("100"), KdvOrani: dec("20")},
	}
	updated, err := s.Faturalar().Update(ctx, created.ID, models.FaturaPatch{LineItems: &newItems})
	require.NoError(t, err)
	assert.Equal(t, "300.00", updated.Toplamlar.Tutar)
	assert.Equal(t, "360.00", updated.Toplamlar.GenelToplam)
	// untouched fields survive the merge
	assert.Equal(t, created.FaturaNo, updated.FaturaNo)
}

// The file backend accepts any cariId; only the relational backend
// enforces the reference.
func TestFaturaUnknownCariAccepted(t *testing.T) {
	s, _ := newTestStore(t)

	missing := uint(999)
	created, err := s.Faturalar().Create(context.Background(), models.FaturaPatch{CariID: &missing})
	require.NoError(t, err)
	require.NotNil(t, created.CariID)
	assert.Equal(t, missing, *created.CariID)
}

func TestUsersByUsernameAndCount(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	n, err := s.Users().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = s.Users().GetByUsername(ctx, "admin")
	assert.ErrorIs(t, err, store.ErrNotFound)

	created, err := s.Users().Create(ctx, models.NewUser("admin", "hash", models.RoleAdmin, "Admin"))
	require.NoError(t, err)
	assert.Equal(t, uint(1), created.ID)

	got, err := s.Users().GetByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, models.RoleAdmin, got.Role)

	n, err = s.Users().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

// The model hides the password hash from API JSON; the storage
// document must still carry it, or no login can ever succeed after
// the record round-trips through users.json.
func TestUserPasswordHashPersisted(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()
	const hash = "$2a$10$somebcrypthash"

	s1, err := New(dir)
	require.NoError(t, err)
	created, err := s1.Users().Create(ctx, models.NewUser("admin", hash, models.RoleAdmin, "Admin"))
	require.NoError(t, err)
	assert.Equal(t, hash, created.Password)

	got, err := s1.Users().GetByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, hash, got.Password)

	// and it survives a fresh open of the same directory
	s2, err := New(dir)
	require.NoError(t, err)
	got, err = s2.Users().GetByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, hash, got.Password)
}

func TestUserDuplicateUsernameRejected(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	_, err := s.Users().Create(ctx, models.NewUser("ayse", "hash1", "", ""))
	require.NoError(t, err)

	_, err = s.Users().Create(ctx, models.NewUser("ayse", "hash2", "", ""))
	assert.ErrorIs(t, err, store.ErrDuplicate)

	n, err := s.Users().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}
