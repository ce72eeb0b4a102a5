package store_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"

	"github.com/Yasinefedemirrr/FinalizerDemoProject/internal/models"
	"github.com/Yasinefedemirrr/FinalizerDemoProject/internal/store"
	"github.com/Yasinefedemirrr/FinalizerDemoProject/internal/store/dbstore"
	"github.com/Yasinefedemirrr/FinalizerDemoProject/internal/store/filestore"
)

// backends returns one instance of each implementation; every parity
// test runs the identical scenario against both and compares what
// callers can observe.
func backends(t *testing.T) map[string]store.Backend {
	t.Helper()
	fs, err := filestore.New(t.TempDir())
	require.NoError(t, err)
	db, err := dbstore.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())))
	require.NoError(t, err)
	return map[string]store.Backend{"file": fs, "db": db}
}

func str(s string) *string { return &s }

func TestBackendsAgreeOnCariLifecycle(t *testing.T) {
	for name, b := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			created, err := b.Cariler().Create(ctx, models.CariPatch{TamAdi: str("Acme")})
			require.NoError(t, err)
			assert.Equal(t, uint(1), created.ID)
			assert.True(t, created.Aktif)

			updated, err := b.Cariler().Update(ctx, 1, models.CariPatch{Sehir: str("Ankara")})
			require.NoError(t, err)
			assert.Equal(t, "Acme", updated.TamAdi)
			assert.Equal(t, "Ankara", updated.Sehir)

			_, err = b.Cariler().Get(ctx, 99)
			assert.ErrorIs(t, err, store.ErrNotFound)

			require.NoError(t, b.Cariler().Delete(ctx, 1))
			assert.ErrorIs(t, b.Cariler().Delete(ctx, 1), store.ErrNotFound)
		})
	}
}

func TestBackendsAgreeOnInvoiceTotals(t *testing.T) {
	items := models.LineItems{
		{
			UrunAdi:    "Ürün A",
			Miktar:     decimal.NewFromInt(2),
			BirimFiyat: decimal.NewFromInt(100),
			Iskonto:    decimal.NewFromInt(10),
			KdvOrani:   decimal.NewFromInt(20),
		},
	}
	var results []models.Toplamlar
	for name, b := range backends(t) {
		t.Run(name, func(t *testing.T) {
			created, err := b.Faturalar().Create(context.Background(), models.FaturaPatch{LineItems: &items})
			require.NoError(t, err)
			results = append(results, created.Toplamlar)

			got, err := b.Faturalar().Get(context.Background(), created.ID)
			require.NoError(t, err)
			assert.Equal(t, created.Toplamlar, got.Toplamlar)
		})
	}
	require.Len(t, results, 2)
	assert.Equal(t, results[0], results[1])
	assert.Equal(t, "228.00", results[0].GenelToplam)
}

func TestBackendsAgreeOnListOrdering(t *testing.T) {
	for name, b := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			for i := 1; i <= 3; i++ {
				_, err := b.Cariler().Create(ctx, models.CariPatch{TamAdi: str(fmt.Sprintf("Cari %d", i))})
				require.NoError(t, err)
			}
			items, err := b.Cariler().List(ctx)
			require.NoError(t, err)
			require.Len(t, items, 3)
			assert.Equal(t, uint(3), items[0].ID)
			assert.Equal(t, uint(1), items[2].ID)
		})
	}
}
