package models

import (
	"encoding/json"
	"time"
)

// Cari is a customer or supplier counterparty.
type Cari struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	TamAdi      string    `gorm:"size:200" json:"tamAdi"`
	SirketTipi  string    `gorm:"size:50" json:"sirketTipi"`
	IsletmeTuru string    `gorm:"size:50" json:"isletmeTuru"`
	VergiNo     string    `gorm:"size:20" json:"vergiNo"`
	Ulke        string    `gorm:"size:50" json:"ulke"`
	Sehir       string    `gorm:"size:50" json:"sehir"`
	Ilce        string    `gorm:"size:50" json:"ilce"`
	VergiDaire  string    `gorm:"size:100" json:"vergiDaire"`
	Adres       string    `gorm:"size:500" json:"adres"`
	Telefon     string    `gorm:"size:20" json:"telefon"`
	Email       string    `gorm:"size:100" json:"email"`
	Aktif       bool      `json:"aktif"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (Cari) TableName() string { return "cariler" }

// UnmarshalJSON treats a missing aktif flag as active. Collections
// migrated from older deployments may lack the field entirely;
// absence must not read as "inactive".
func (c *Cari) UnmarshalJSON(b []byte) error {
	type plain Cari
	aux := struct {
		*plain
		Aktif *bool `json:"aktif"`
	}{plain: (*plain)(c)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	c.Aktif = aux.Aktif == nil || *aux.Aktif
	return nil
}

// CariPatch carries the client-supplied fields of a create or update
// request. Nil pointers mean "not supplied" and leave the stored value
// untouched on update.
type CariPatch struct {
	TamAdi      *string `json:"tamAdi"`
	SirketTipi  *string `json:"sirketTipi"`
	IsletmeTuru *string `json:"isletmeTuru"`
	VergiNo     *string `json:"vergiNo"`
	Ulke        *string `json:"ulke"`
	Sehir       *string `json:"sehir"`
	Ilce        *string `json:"ilce"`
	VergiDaire  *string `json:"vergiDaire"`
	Adres       *string `json:"adres"`
	Telefon     *string `json:"telefon"`
	Email       *string `json:"email"`
	Aktif       *bool   `json:"aktif"`
}

// Apply merges the supplied fields over c.
func (p CariPatch) Apply(c *Cari) {
	setString(&c.TamAdi, p.TamAdi)
	setString(&c.SirketTipi, p.SirketTipi)
	setString(&c.IsletmeTuru, p.IsletmeTuru)
	setString(&c.VergiNo, p.VergiNo)
	setString(&c.Ulke, p.Ulke)
	setString(&c.Sehir, p.Sehir)
	setString(&c.Ilce, p.Ilce)
	setString(&c.VergiDaire, p.VergiDaire)
	setString(&c.Adres, p.Adres)
	setString(&c.Telefon, p.Telefon)
	setString(&c.Email, p.Email)
	if p.Aktif != nil {
		c.Aktif = *p.Aktif
	}
}

// NewCari builds a fresh record from a create request, filling the
// documented defaults. The caller assigns the id and timestamps.
func NewCari(p CariPatch) Cari {
	c := Cari{Aktif: true}
	p.Apply(&c)
	return c
}

// CariBilgileri is the denormalized counterparty snapshot embedded in
// invoices and financial transactions. It is copied at write time and
// deliberately never kept in sync with later Cari edits.
type CariBilgileri struct {
	TamAdi  string `json:"tamAdi,omitempty"`
	VergiNo string `json:"vergiNo,omitempty"`
	Telefon string `json:"telefon,omitempty"`
	Email   string `json:"email,omitempty"`
	Adres   string `json:"adres,omitempty"`
	Sehir   string `json:"sehir,omitempty"`
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
