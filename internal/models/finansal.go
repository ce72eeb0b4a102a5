package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Finansal is a standalone income/expense ledger entry, optionally
// tied to a Cari. Two tagging schemes coexist in stored data: IslemTipi
// ("Tahsilat"/"Ödeme") and Tip ("Gelir"/"Gider"); the reporting layer
// reconciles them.
type Finansal struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	HesapTipi     string          `gorm:"size:50" json:"hesapTipi"`
	IslemTipi     string          `gorm:"size:50" json:"islemTipi"`
	AltHesap      string          `gorm:"size:50" json:"altHesap"`
	CariID        *uint           `gorm:"index" json:"cariId"`
	Cari          *Cari           `gorm:"foreignKey:CariID" json:"-"`
	CariBilgileri CariBilgileri   `gorm:"type:jsonb" json:"cariBilgileri"`
	IslemTarihi   string          `gorm:"size:10" json:"islemTarihi"`
	Tutar         decimal.Decimal `gorm:"type:decimal(18,2)" json:"tutar"`
	Tip           string          `gorm:"size:20" json:"tip"`
	Kategori      string          `gorm:"size:100" json:"kategori"`
	Aciklama      string          `gorm:"size:500" json:"aciklama"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

func (Finansal) TableName() string { return "finansal" }

// FinansalPatch carries the client-supplied transaction fields.
type FinansalPatch struct {
	HesapTipi     *string          `json:"hesapTipi"`
	IslemTipi     *string          `json:"islemTipi"`
	AltHesap      *string          `json:"altHesap"`
	CariID        *uint            `json:"cariId"`
	CariBilgileri *CariBilgileri   `json:"cariBilgileri"`
	IslemTarihi   *string          `json:"islemTarihi"`
	Tutar         *decimal.Decimal `json:"tutar"`
	Tip           *string          `json:"tip"`
	Kategori      *string          `json:"kategori"`
	Aciklama      *string          `json:"aciklama"`
}

// Apply merges the supplied fields over f.
func (p FinansalPatch) Apply(f *Finansal) {
	setString(&f.HesapTipi, p.HesapTipi)
	setString(&f.IslemTipi, p.IslemTipi)
	setString(&f.AltHesap, p.AltHesap)
	if p.CariID != nil {
		f.CariID = p.CariID
	}
	if p.CariBilgileri != nil {
		f.CariBilgileri = *p.CariBilgileri
	}
	setString(&f.IslemTarihi, p.IslemTarihi)
	if p.Tutar != nil {
		f.Tutar = *p.Tutar
	}
	setString(&f.Tip, p.Tip)
	setString(&f.Kategori, p.Kategori)
	setString(&f.Aciklama, p.Aciklama)
}

// NewFinansal builds a fresh transaction from a create request.
func NewFinansal(p FinansalPatch) Finansal {
	f := Finansal{Tutar: decimal.Zero}
	p.Apply(&f)
	return f
}
