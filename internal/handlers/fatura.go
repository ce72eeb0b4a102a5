package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Yasinefedemirrr/FinalizerDemoProject/internal/httpx"
	"github.com/Yasinefedemirrr/FinalizerDemoProject/internal/models"
	"github.com/Yasinefedemirrr/FinalizerDemoProject/internal/store"
)

type FaturaHandler struct {
	store store.FaturaStore
}

func NewFaturaHandler(s store.FaturaStore) *FaturaHandler {
	return &FaturaHandler{store: s}
}

func (h *FaturaHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.store.List(r.Context())
	if err != nil {
		httpx.StoreError(w, err, "Fatura bulunamadı", "Faturalar getirilirken bir hata oluştu")
		return
	}
	httpx.JSON(w, http.StatusOK, items)
}

func (h *FaturaHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpx.JSONError(w, http.StatusBadRequest, "Geçersiz id", nil)
		return
	}
	f, err := h.store.Get(r.Context(), id)
	if err != nil {
		httpx.StoreError(w, err, "Fatura bulunamadı", "Fatura getirilirken bir hata oluştu")
		return
	}
	httpx.JSON(w, http.StatusOK, f)
}

// Create persists a new invoice. Totals are never read from the
// request; the store derives them from the line items.
func (h *FaturaHandler) Create(w http.ResponseWriter, r *http.Request) {
	var p models.FaturaPatch
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "Geçersiz istek gövdesi", nil)
		return
	}
	f, err := h.store.Create(r.Context(), p)
	if err != nil {
		httpx.StoreError(w, err, "Fatura bulunamadı", "Fatura oluşturulurken bir hata oluştu")
		return
	}
	httpx.JSON(w, http.StatusCreated, f)
}

func (h *FaturaHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpx.JSONError(w, http.StatusBadRequest, "Geçersiz id", nil)
		return
	}
	var p models.FaturaPatch
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "Geçersiz istek gövdesi", nil)
		return
	}
	f, err := h.store.Update(r.Context(), id, p)
	if err != nil {
		httpx.StoreError(w, err, "Fatura bulunamadı", "Fatura güncellenirken bir hata oluştu")
		return
	}
	httpx.JSON(w, http.StatusOK, f)
}

func (h *FaturaHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpx.JSONError(w, http.StatusBadRequest, "Geçersiz id", nil)
		return
	}
	if err := h.store.Delete(r.Context(), id); err != nil {
		httpx.StoreError(w, err, "Fatura bulunamadı", "Fatura silinirken bir hata oluştu")
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"message": "Fatura silindi"})
}
