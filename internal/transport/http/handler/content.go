package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/metrovolt-api/internal/application/content"
	"github.com/metrovolt-api/internal/application/media"
	"github.com/metrovolt-api/internal/domain"
)

// ContentHandler handles website content endpoints.
type ContentHandler struct {
	svc   content.Service
	media media.Service
}

func NewContentHandler(svc content.Service, mediaSvc media.Service) *ContentHandler {
	return &ContentHandler{svc: svc, media: mediaSvc}
}

func (h *ContentHandler) List(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.List(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *ContentHandler) Get(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.Get(r.Context(), chi.URLParam(r, "section"))
	if err != nil {
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// Update accepts a JSON body or a multipart form with a "data" JSON field
// plus optional image file parts (heroImage, engineeringImage, supportImage,
// technologyImage, carouselImages).
func (h *ContentHandler) Update(w http.ResponseWriter, r *http.Request) {
	section := chi.URLParam(r, "section")

	var c domain.WebsiteContent
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if data := r.FormValue("data"); data != "" {
			if err := json.Unmarshal([]byte(data), &c); err != nil {
				writeError(w, http.StatusBadRequest, "invalid request body")
				return
			}
		}
		if err := h.applyImageUploads(r, &c); err != nil {
			handleError(w, err)
			return
		}
	} else {
		if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	updated, err := h.svc.Update(r.Context(), section, &c)
	if err != nil {
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *ContentHandler) applyImageUploads(r *http.Request, c *domain.WebsiteContent) error {
	single := map[string]*string{
		"heroImage":        &c.HeroImage,
		"engineeringImage": &c.EngineeringImage,
		"supportImage":     &c.SupportImage,
		"technologyImage":  &c.TechnologyImage,
	}
	for field, dst := range single {
		files, err := readFileParts(r.MultipartForm.File[field])
		if err != nil {
			return err
		}
		if len(files) > 0 {
			url, err := h.media.UploadImage(r.Context(), "content", files[0])
			if err != nil {
				return err
			}
			*dst = url
		}
	}

	carousel, err := readFileParts(r.MultipartForm.File["carouselImages"])
	if err != nil {
		return err
	}
	for _, img := range carousel {
		url, err := h.media.UploadImage(r.Context(), "content", img)
		if err != nil {
			return err
		}
		c.CarouselImages = append(c.CarouselImages, url)
	}
	return nil
}
