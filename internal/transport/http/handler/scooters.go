package handler

import (
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/metrovolt-api/internal/application/scooter"
	"github.com/metrovolt-api/internal/domain"
)

const maxUploadMemory = 32 << 20

// ScooterHandler handles catalog endpoints.
type ScooterHandler struct {
	svc scooter.Service
}

func NewScooterHandler(svc scooter.Service) *ScooterHandler { return &ScooterHandler{svc: svc} }

func (h *ScooterHandler) List(w http.ResponseWriter, r *http.Request) {
	scooters, err := h.svc.List(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, scooters)
}

func (h *ScooterHandler) Get(w http.ResponseWriter, r *http.Request) {
	sc, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sc)
}

// Create accepts either a JSON body or a multipart form with a "data" JSON
// field and "images" file parts.
func (h *ScooterHandler) Create(w http.ResponseWriter, r *http.Request) {
	input, images, err := decodeScooterForm(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	sc, err := h.svc.Create(r.Context(), *input, images)
	if err != nil {
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, sc)
}

func (h *ScooterHandler) Update(w http.ResponseWriter, r *http.Request) {
	input, images, err := decodeScooterForm(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	sc, err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), *input, images)
	if err != nil {
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sc)
}

func (h *ScooterHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "scooter deleted"})
}

func decodeScooterForm(r *http.Request) (*domain.ScooterInput, [][]byte, error) {
	var input domain.ScooterInput
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			return nil, nil, errInvalidBody
		}
		return &input, nil, nil
	}

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		return nil, nil, errInvalidBody
	}
	if data := r.FormValue("data"); data != "" {
		if err := json.Unmarshal([]byte(data), &input); err != nil {
			return nil, nil, errInvalidBody
		}
	}
	images, err := readFileParts(r.MultipartForm.File["images"])
	if err != nil {
		return nil, nil, err
	}
	return &input, images, nil
}

func readFileParts(headers []*multipart.FileHeader) ([][]byte, error) {
	out := make([][]byte, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			return nil, errInvalidBody
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, errInvalidBody
		}
		out = append(out, data)
	}
	return out, nil
}
