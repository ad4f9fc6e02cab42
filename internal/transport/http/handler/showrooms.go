package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/metrovolt-api/internal/application/showroom"
)

// ShowroomHandler handles showroom endpoints.
type ShowroomHandler struct {
	svc showroom.Service
}

func NewShowroomHandler(svc showroom.Service) *ShowroomHandler { return &ShowroomHandler{svc: svc} }

func (h *ShowroomHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.List(r.Context()))
}

func (h *ShowroomHandler) Get(w http.ResponseWriter, r *http.Request) {
	sr, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sr)
}

func (h *ShowroomHandler) Nearest(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	lat, _ := strconv.ParseFloat(q.Get("latitude"), 64)
	lng, _ := strconv.ParseFloat(q.Get("longitude"), 64)

	out, err := h.svc.Nearest(r.Context(), q.Get("city"), lat, lng, 3)
	if err != nil {
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}
