package services

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/Yasinefedemirrr/FinalizerDemoProject/internal/models"
	"github.com/Yasinefedemirrr/FinalizerDemoProject/internal/store"
)

// Rapor is the read-only dashboard rollup over the three collections.
type Rapor struct {
	Fatura   RaporFatura   `json:"fatura"`
	Finansal RaporFinansal `json:"finansal"`
	Cari     RaporCari     `json:"cari"`
}

type RaporFatura struct {
	ToplamSayi   int             `json:"toplamSayi"`
	ToplamTutar  string          `json:"toplamTutar"`
	SonFaturalar []models.Fatura `json:"sonFaturalar"`
}

type RaporFinansal struct {
	ToplamGelir string            `json:"toplamGelir"`
	ToplamGider string            `json:"toplamGider"`
	NetGelir    string            `json:"netGelir"`
	SonIslemler []models.Finansal `json:"sonIslemler"`
}

type RaporCari struct {
	ToplamSayi int `json:"toplamSayi"`
	AktifSayi  int `json:"aktifSayi"`
}

const sonKayitSayisi = 10

// RaporService composes repository reads into the dashboard figures.
// It performs no writes and tolerates any backing collection being
// empty.
type RaporService struct {
	faturalar store.FaturaStore
	finansal  store.FinansalStore
	cariler   store.CariStore
}

func NewRaporService(f store.FaturaStore, fin store.FinansalStore, c store.CariStore) *RaporService {
	return &RaporService{faturalar: f, finansal: fin, cariler: c}
}

// Build fetches the full collections and computes the rollup.
func (s *RaporService) Build(ctx context.Context) (*Rapor, error) {
	faturalar, err := s.faturalar.List(ctx)
	if err != nil {
		return nil, err
	}
	islemler, err := s.finansal.List(ctx)
	if err != nil {
		return nil, err
	}
	cariler, err := s.cariler.List(ctx)
	if err != nil {
		return nil, err
	}

	toplamTutar := decimal.Zero
	for _, f := range faturalar {
		toplamTutar = toplamTutar.Add(parseAmount(f.Toplamlar.GenelToplam))
	}

	gelir := decimal.Zero
	gider := decimal.Zero
	for _, i := range islemler {
		switch {
		case IsGelir(i):
			gelir = gelir.Add(i.Tutar)
		case IsGider(i):
			gider = gider.Add(i.Tutar)
		}
	}

	aktif := 0
	for _, c := range cariler {
		if c.Aktif {
			aktif++
		}
	}

	sonFaturalar := append([]models.Fatura(nil), faturalar...)
	sort.SliceStable(sonFaturalar, func(a, b int) bool {
		if !sonFaturalar[a].CreatedAt.Equal(sonFaturalar[b].CreatedAt) {
			return sonFaturalar[a].CreatedAt.After(sonFaturalar[b].CreatedAt)
		}
		return sonFaturalar[a].ID > sonFaturalar[b].ID
	})
	if len(sonFaturalar) > sonKayitSayisi {
		sonFaturalar = sonFaturalar[:sonKayitSayisi]
	}

	sonIslemler := append([]models.Finansal(nil), islemler...)
	sort.SliceStable(sonIslemler, func(a, b int) bool {
		if !sonIslemler[a].CreatedAt.Equal(sonIslemler[b].CreatedAt) {
			return sonIslemler[a].CreatedAt.After(sonIslemler[b].CreatedAt)
		}
		return sonIslemler[a].ID > sonIslemler[b].ID
	})
	if len(sonIslemler) > sonKayitSayisi {
		sonIslemler = sonIslemler[:sonKayitSayisi]
	}

	return &Rapor{
		Fatura: RaporFatura{
			ToplamSayi:   len(faturalar),
			ToplamTutar:  toplamTutar.StringFixed(2),
			SonFaturalar: sonFaturalar,
		},
		Finansal: RaporFinansal{
			ToplamGelir: gelir.StringFixed(2),
			ToplamGider: gider.StringFixed(2),
			NetGelir:    gelir.Sub(gider).StringFixed(2),
			SonIslemler: sonIslemler,
		},
		Cari: RaporCari{
			ToplamSayi: len(cariler),
			AktifSayi:  aktif,
		},
	}, nil
}

// IsGelir reports whether a transaction counts as income. Legacy data
// carries two tagging schemes; islemTipi is checked first and wins
// when the two disagree.
func IsGelir(f models.Finansal) bool {
	return f.IslemTipi == "Tahsilat" || f.Tip == "Gelir"
}

// IsGider reports whether a transaction counts as expense. A record
// matching neither scheme is counted in neither sum.
func IsGider(f models.Finansal) bool {
	return f.IslemTipi == "Ödeme" || f.Tip == "Gider"
}

func parseAmount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
