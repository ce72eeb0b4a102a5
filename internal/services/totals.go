package services

import (
	"github.com/shopspring/decimal"

	"github.com/Yasinefedemirrr/FinalizerDemoProject/internal/models"
)

var yuz = decimal.NewFromInt(100)

// ComputeToplamlar derives the invoice totals block from its line
// items. Per item: gross = miktar × birimFiyat, the discount is an
// absolute amount, and VAT applies to the discounted net. The
// aggregate matrah is tutar − iskonto rather than a sum of per-line
// nets, so the two identities
//
//	matrah == tutar − iskonto
//	genelToplam == matrah + kdvTutari
//
// hold exactly on the formatted output. An empty item list yields all
// "0.00". Negative inputs are not rejected; they propagate
// arithmetically.
func ComputeToplamlar(items []models.LineItem) models.Toplamlar {
	tutar := decimal.Zero
	iskonto := decimal.Zero
	kdvTutari := decimal.Zero

	for _, it := range items {
		gross := it.Miktar.Mul(it.BirimFiyat)
		net := gross.Sub(it.Iskonto)
		tutar = tutar.Add(gross)
		iskonto = iskonto.Add(it.Iskonto)
		kdvTutari = kdvTutari.Add(net.Mul(it.KdvOrani).Div(yuz))
	}

	matrah := tutar.Sub(iskonto)
	genelToplam := matrah.Add(kdvTutari)

	return models.Toplamlar{
		Tutar:             tutar.StringFixed(2),
		Iskonto:           iskonto.StringFixed(2),
		Matrah:            matrah.StringFixed(2),
		KdvTutari:         kdvTutari.StringFixed(2),
		DigerVergiToplami: "0.00", // reserved, no input feeds it yet
		GenelToplam:       genelToplam.StringFixed(2),
	}
}

// NormalizeLineItems stamps each item's derived row total
// (miktar × birimFiyat − iskonto, two decimals), replacing whatever
// the client sent in toplamTutar.
func NormalizeLineItems(items models.LineItems) models.LineItems {
	out := make(models.LineItems, len(items))
	for i, it := range items {
		it.ToplamTutar = it.Miktar.Mul(it.BirimFiyat).Sub(it.Iskonto).StringFixed(2)
		out[i] = it
	}
	return out
}
