package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCariUnmarshalAktifDefault(t *testing.T) {
	var c Cari
	require.NoError(t, json.Unmarshal([]byte(`{"id": 1, "tamAdi": "Eski"}`), &c))
	assert.True(t, c.Aktif)

	require.NoError(t, json.Unmarshal([]byte(`{"id": 2, "aktif": false}`), &c))
	assert.False(t, c.Aktif)

	require.NoError(t, json.Unmarshal([]byte(`{"id": 3, "aktif": true}`), &c))
	assert.True(t, c.Aktif)
}

func TestCariPatchApply(t *testing.T) {
	c := Cari{TamAdi: "Acme", Sehir: "İstanbul", Aktif: true}

	sehir := "Ankara"
	CariPatch{Sehir: &sehir}.Apply(&c)

	assert.Equal(t, "Acme", c.TamAdi)
	assert.Equal(t, "Ankara", c.Sehir)
	assert.True(t, c.Aktif)
}

func TestNewFaturaDefaults(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	f := NewFatura(FaturaPatch{}, now)

	assert.Equal(t, "FAT-1717243200000", f.FaturaNo)
	assert.Equal(t, "2024-06-01", f.FaturaTarihi)
	assert.Equal(t, "E-FATURA", f.FaturaTuru)
	assert.Equal(t, "TİCARİ FATURA", f.FaturaSenaryosu)
	assert.Equal(t, "SATIŞ", f.FaturaTipi)
	assert.Equal(t, "TL", f.ParaBirimi)
	assert.True(t, f.DovizKuru.Equal(decimal.NewFromInt(1)))
	assert.Equal(t, "Nakit", f.OdemeTuru)
	assert.NotNil(t, f.LineItems)
}

func TestNewFaturaPatchOverridesDefaults(t *testing.T) {
	no := "FAT-2024-001"
	tip := "ALIŞ"
	f := NewFatura(FaturaPatch{FaturaNo: &no, FaturaTipi: &tip}, time.Now())

	assert.Equal(t, "FAT-2024-001", f.FaturaNo)
	assert.Equal(t, "ALIŞ", f.FaturaTipi)
	assert.Equal(t, "E-FATURA", f.FaturaTuru)
}

// Legacy clients send numeric fields as strings, newer ones as JSON
// numbers; both must decode into the same value.
func TestLineItemDecodesStringAndNumber(t *testing.T) {
	var a, b LineItem
	require.NoError(t, json.Unmarshal([]byte(`{"miktar": "2.5", "birimFiyat": "99.90"}`), &a))
	require.NoError(t, json.Unmarshal([]byte(`{"miktar": 2.5, "birimFiyat": 99.90}`), &b))

	assert.True(t, a.Miktar.Equal(b.Miktar))
	assert.True(t, a.BirimFiyat.Equal(b.BirimFiyat))
}

func TestUserPasswordHiddenInJSON(t *testing.T) {
	b, err := json.Marshal(User{Username: "admin", Password: "hash"})
	require.NoError(t, err)
	assert.NotContains(t, string(b), "hash")
	assert.Contains(t, string(b), `"username":"admin"`)
}

func TestJSONColumnRoundTrip(t *testing.T) {
	items := LineItems{{UrunAdi: "Ürün A", Miktar: decimal.NewFromInt(2), ToplamTutar: "190.00"}}

	v, err := items.Value()
	require.NoError(t, err)

	var got LineItems
	require.NoError(t, got.Scan(v))
	require.Len(t, got, 1)
	assert.Equal(t, "Ürün A", got[0].UrunAdi)
	assert.Equal(t, "190.00", got[0].ToplamTutar)
}
