package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// LineItem is one product row on an invoice. Numeric fields are
// decimals because the legacy clients submit them either as JSON
// numbers or as strings; decimal.Decimal accepts both.
type LineItem struct {
	UrunKodu    string          `json:"urunKodu"`
	UrunAdi     string          `json:"urunAdi"`
	Depo        string          `json:"depo"`
	Miktar      decimal.Decimal `json:"miktar"`
	BirimFiyat  decimal.Decimal `json:"birimFiyat"`
	Birim       string          `json:"birim"`
	KdvOrani    decimal.Decimal `json:"kdvOrani"`
	Iskonto     decimal.Decimal `json:"iskonto"`
	ToplamTutar string          `json:"toplamTutar"`
}

// LineItems is stored as a single JSON document column.
type LineItems []LineItem

// Toplamlar is the derived totals block of an invoice. All six fields
// are decimal strings with exactly two fraction digits.
type Toplamlar struct {
	Tutar             string `json:"tutar"`
	Iskonto           string `json:"iskonto"`
	Matrah            string `json:"matrah"`
	KdvTutari         string `json:"kdvTutari"`
	DigerVergiToplami string `json:"digerVergiToplami"`
	GenelToplam       string `json:"genelToplam"`
}

// Fatura is a billing document with embedded line items and derived
// totals. cariBilgileri is a point-in-time snapshot of the referenced
// Cari, kept for historical fidelity.
type Fatura struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	FaturaNo        string          `gorm:"size:50" json:"faturaNo"`
	FaturaTarihi    string          `gorm:"size:10" json:"faturaTarihi"`
	FaturaTuru      string          `gorm:"size:50" json:"faturaTuru"`
	FaturaSenaryosu string          `gorm:"size:50" json:"faturaSenaryosu"`
	FaturaTipi      string          `gorm:"size:50" json:"faturaTipi"`
	CariID          *uint           `gorm:"index" json:"cariId"`
	Cari            *Cari           `gorm:"foreignKey:CariID" json:"-"`
	CariBilgileri   CariBilgileri   `gorm:"type:jsonb" json:"cariBilgileri"`
	ParaBirimi      string          `gorm:"size:10" json:"paraBirimi"`
	DovizKuru       decimal.Decimal `gorm:"type:decimal(18,2)" json:"dovizKuru"`
	OdemeTuru       string          `gorm:"size:50" json:"odemeTuru"`
	LineItems       LineItems       `gorm:"type:jsonb" json:"lineItems"`
	Toplamlar       Toplamlar       `gorm:"type:jsonb" json:"toplamlar"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

func (Fatura) TableName() string { return "faturalar" }

// FaturaPatch carries the client-supplied invoice fields. Totals are
// never accepted from the client; they are recomputed from the line
// items on every create and update.
type FaturaPatch struct {
	FaturaNo        *string          `json:"faturaNo"`
	FaturaTarihi    *string          `json:"faturaTarihi"`
	FaturaTuru      *string          `json:"faturaTuru"`
	FaturaSenaryosu *string          `json:"faturaSenaryosu"`
	FaturaTipi      *string          `json:"faturaTipi"`
	CariID          *uint            `json:"cariId"`
	CariBilgileri   *CariBilgileri   `json:"cariBilgileri"`
	ParaBirimi      *string          `json:"paraBirimi"`
	DovizKuru       *decimal.Decimal `json:"dovizKuru"`
	OdemeTuru       *string          `json:"odemeTuru"`
	LineItems       *LineItems       `json:"lineItems"`
}

// Apply merges the supplied fields over f. Totals are left alone here;
// the store recomputes them after the merge.
func (p FaturaPatch) Apply(f *Fatura) {
	setString(&f.FaturaNo, p.FaturaNo)
	setString(&f.FaturaTarihi, p.FaturaTarihi)
	setString(&f.FaturaTuru, p.FaturaTuru)
	setString(&f.FaturaSenaryosu, p.FaturaSenaryosu)
	setString(&f.FaturaTipi, p.FaturaTipi)
	if p.CariID != nil {
		f.CariID = p.CariID
	}
	if p.CariBilgileri != nil {
		f.CariBilgileri = *p.CariBilgileri
	}
	setString(&f.ParaBirimi, p.ParaBirimi)
	if p.DovizKuru != nil {
		f.DovizKuru = *p.DovizKuru
	}
	setString(&f.OdemeTuru, p.OdemeTuru)
	if p.LineItems != nil {
		f.LineItems = *p.LineItems
	}
}

// NewFatura builds a fresh invoice with the documented defaults: a
// timestamp-derived number, today's date and the standard e-invoice
// classification.
func NewFatura(p FaturaPatch, now time.Time) Fatura {
	f := Fatura{
		FaturaNo:        fmt.Sprintf("FAT-%d", now.UnixMilli()),
		FaturaTarihi:    now.Format("2006-01-02"),
		FaturaTuru:      "E-FATURA",
		FaturaSenaryosu: "TİCARİ FATURA",
		FaturaTipi:      "SATIŞ",
		ParaBirimi:      "TL",
		DovizKuru:       decimal.NewFromInt(1),
		OdemeTuru:       "Nakit",
		LineItems:       LineItems{},
	}
	p.Apply(&f)
	return f
}
