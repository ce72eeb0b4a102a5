package handlers

import (
	"net/http"

	"github.com/Yasinefedemirrr/FinalizerDemoProject/internal/httpx"
	"github.com/Yasinefedemirrr/FinalizerDemoProject/internal/services"
)

type RaporHandler struct {
	svc *services.RaporService
}

func NewRaporHandler(svc *services.RaporService) *RaporHandler {
	return &RaporHandler{svc: svc}
}

func (h *RaporHandler) Get(w http.ResponseWriter, r *http.Request) {
	rapor, err := h.svc.Build(r.Context())
	if err != nil {
		httpx.StoreError(w, err, "Rapor bulunamadı", "Raporlama verileri getirilirken bir hata oluştu")
		return
	}
	httpx.JSON(w, http.StatusOK, rapor)
}
