package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/Yasinefedemirrr/FinalizerDemoProject/internal/models"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestComputeToplamlarEmpty(t *testing.T) {
	got := ComputeToplamlar(nil)
	want := models.Toplamlar{
		Tutar:             "0.00",
		Iskonto:           "0.00",
		Matrah:            "0.00",
		KdvTutari:         "0.00",
		DigerVergiToplami: "0.00",
		GenelToplam:       "0.00",
	}
	assert.Equal(t, want, got)
}

func TestComputeToplamlarSingleItem(t *testing.T) {
	items := []models.LineItem{
		{Miktar: d("2"), BirimFiyat: d("100"), Iskonto: d("10"), KdvOrani: d("20")},
	}
	got := ComputeToplamlar(items)
	assert.Equal(t, "200.00", got.Tutar)
	assert.Equal(t, "10.00", got.Iskonto)
	assert.Equal(t, "190.00", got.Matrah)
	assert.Equal(t, "38.00", got.KdvTutari)
	assert.Equal(t, "0.00", got.DigerVergiToplami)
	assert.Equal(t, "228.00", got.GenelToplam)
}

func TestComputeToplamlarMultipleItems(t *testing.T) {
	items := []models.LineItem{
		{Miktar: d("3"), BirimFiyat: d("12.5"), Iskonto: d("1.25"), KdvOrani: d("18")},
		{Miktar: d("1"), BirimFiyat: d("99.99"), Iskonto: d("0"), KdvOrani: d("8")},
		{Miktar: d("0.5"), BirimFiyat: d("40"), Iskonto: d("5"), KdvOrani: d("0")},
	}
	got := ComputeToplamlar(items)

	// tutar = 37.50 + 99.99 + 20.00
	assert.Equal(t, "157.49", got.Tutar)
	assert.Equal(t, "6.25", got.Iskonto)
	// matrah comes from the aggregate subtraction
	assert.Equal(t, "151.24", got.Matrah)
	// kdv = 36.25*0.18 + 99.99*0.08 + 15*0 = 6.525 + 7.9992
	assert.Equal(t, "14.52", got.KdvTutari)
	assert.Equal(t, "165.76", got.GenelToplam)
}

// The two identities must hold exactly on the formatted strings.
func TestComputeToplamlarIdentities(t *testing.T) {
	cases := [][]models.LineItem{
		nil,
		{{Miktar: d("7"), BirimFiyat: d("3.33"), Iskonto: d("0.07"), KdvOrani: d("1")}},
		{
			{Miktar: d("2.5"), BirimFiyat: d("19.99"), Iskonto: d("3.13"), KdvOrani: d("18")},
			{Miktar: d("11"), BirimFiyat: d("0.09"), Iskonto: d("0"), KdvOrani: d("8")},
		},
	}
	for _, items := range cases {
		got := ComputeToplamlar(items)
		assert.Equal(t, d(got.Tutar).Sub(d(got.Iskonto)).StringFixed(2), got.Matrah)
		assert.Equal(t, d(got.Matrah).Add(d(got.KdvTutari)).StringFixed(2), got.GenelToplam)
	}
}

// Negative inputs are a caller concern; the calculator propagates them.
func TestComputeToplamlarNegativeValues(t *testing.T) {
	items := []models.LineItem{
		{Miktar: d("-2"), BirimFiyat: d("100"), Iskonto: d("0"), KdvOrani: d("20")},
	}
	got := ComputeToplamlar(items)
	assert.Equal(t, "-200.00", got.Tutar)
	assert.Equal(t, "-200.00", got.Matrah)
	assert.Equal(t, "-40.00", got.KdvTutari)
	assert.Equal(t, "-240.00", got.GenelToplam)
}

func TestNormalizeLineItems(t *testing.T) {
	items := models.LineItems{
		{Miktar: d("2"), BirimFiyat: d("100"), Iskonto: d("10"), ToplamTutar: "999.99"},
		{Miktar: d("1"), BirimFiyat: d("5.5"), Iskonto: d("0")},
	}
	got := NormalizeLineItems(items)
	assert.Equal(t, "190.00", got[0].ToplamTutar)
	assert.Equal(t, "5.50", got[1].ToplamTutar)
	// input slice is not mutated
	assert.Equal(t, "999.99", items[0].ToplamTutar)
}
