package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Yasinefedemirrr/FinalizerDemoProject/internal/httpx"
	"github.com/Yasinefedemirrr/FinalizerDemoProject/internal/models"
	"github.com/Yasinefedemirrr/FinalizerDemoProject/internal/store"
	"github.com/Yasinefedemirrr/FinalizerDemoProject/internal/validation"
)

type FinansalHandler struct {
	store store.FinansalStore
}

func NewFinansalHandler(s store.FinansalStore) *FinansalHandler {
	return &FinansalHandler{store: s}
}

func (h *FinansalHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.store.List(r.Context())
	if err != nil {
		httpx.StoreError(w, err, "Finansal işlem bulunamadı", "Finansal işlemler getirilirken bir hata oluştu")
		return
	}
	httpx.JSON(w, http.StatusOK, items)
}

func (h *FinansalHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpx.JSONError(w, http.StatusBadRequest, "Geçersiz id", nil)
		return
	}
	f, err := h.store.Get(r.Context(), id)
	if err != nil {
		httpx.StoreError(w, err, "Finansal işlem bulunamadı", "Finansal işlem getirilirken bir hata oluştu")
		return
	}
	httpx.JSON(w, http.StatusOK, f)
}

func (h *FinansalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var p models.FinansalPatch
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "Geçersiz istek gövdesi", nil)
		return
	}
	v := make(validation.Violations)
	validation.RequiredPtr("islemTarihi", p.IslemTarihi, v)
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "Zorunlu alanlar eksik", v)
		return
	}
	f, err := h.store.Create(r.Context(), p)
	if err != nil {
		httpx.StoreError(w, err, "Finansal işlem bulunamadı", "Finansal işlem oluşturulurken bir hata oluştu")
		return
	}
	httpx.JSON(w, http.StatusCreated, f)
}

func (h *FinansalHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpx.JSONError(w, http.StatusBadRequest, "Geçersiz id", nil)
		return
	}
	var p models.FinansalPatch
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "Geçersiz istek gövdesi", nil)
		return
	}
	f, err := h.store.Update(r.Context(), id, p)
	if err != nil {
		httpx.StoreError(w, err, "Finansal işlem bulunamadı", "Finansal işlem güncellenirken bir hata oluştu")
		return
	}
	httpx.JSON(w, http.StatusOK, f)
}

func (h *FinansalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpx.JSONError(w, http.StatusBadRequest, "Geçersiz id", nil)
		return
	}
	if err := h.store.Delete(r.Context(), id); err != nil {
		httpx.StoreError(w, err, "Finansal işlem bulunamadı", "Finansal işlem silinirken bir hata oluştu")
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"message": "Finansal işlem silindi"})
}
