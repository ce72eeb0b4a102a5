package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Yasinefedemirrr/FinalizerDemoProject/internal/httpx"
	"github.com/Yasinefedemirrr/FinalizerDemoProject/internal/models"
	"github.com/Yasinefedemirrr/FinalizerDemoProject/internal/store"
	"github.com/Yasinefedemirrr/FinalizerDemoProject/internal/validation"
)

type CariHandler struct {
	store store.CariStore
}

func NewCariHandler(s store.CariStore) *CariHandler {
	return &CariHandler{store: s}
}

func (h *CariHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.store.List(r.Context())
	if err != nil {
		httpx.StoreError(w, err, "Cari bulunamadı", "Cariler getirilirken bir hata oluştu")
		return
	}
	httpx.JSON(w, http.StatusOK, items)
}

func (h *CariHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpx.JSONError(w, http.StatusBadRequest, "Geçersiz id", nil)
		return
	}
	c, err := h.store.Get(r.Context(), id)
	if err != nil {
		httpx.StoreError(w, err, "Cari bulunamadı", "Cari getirilirken bir hata oluştu")
		return
	}
	httpx.JSON(w, http.StatusOK, c)
}

func (h *CariHandler) Create(w http.ResponseWriter, r *http.Request) {
	var p models.CariPatch
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "Geçersiz istek gövdesi", nil)
		return
	}
	v := make(validation.Violations)
	validation.RequiredPtr("tamAdi", p.TamAdi, v)
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "Zorunlu alanlar eksik", v)
		return
	}
	c, err := h.store.Create(r.Context(), p)
	if err != nil {
		httpx.StoreError(w, err, "Cari bulunamadı", "Cari oluşturulurken bir hata oluştu")
		return
	}
	httpx.JSON(w, http.StatusCreated, c)
}

func (h *CariHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpx.JSONError(w, http.StatusBadRequest, "Geçersiz id", nil)
		return
	}
	var p models.CariPatch
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "Geçersiz istek gövdesi", nil)
		return
	}
	c, err := h.store.Update(r.Context(), id, p)
	if err != nil {
		httpx.StoreError(w, err, "Cari bulunamadı", "Cari güncellenirken bir hata oluştu")
		return
	}
	httpx.JSON(w, http.StatusOK, c)
}

func (h *CariHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpx.JSONError(w, http.StatusBadRequest, "Geçersiz id", nil)
		return
	}
	if err := h.store.Delete(r.Context(), id); err != nil {
		httpx.StoreError(w, err, "Cari bulunamadı", "Cari silinirken bir hata oluştu")
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"message": "Cari silindi"})
}
