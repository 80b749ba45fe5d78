package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/mkraev/sellerboard/internal/model"
)

func (s *Server) GetProductImagesHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := s.currentUser(w, r)
	if !ok {
		return
	}

	images, err := s.storage.GetProductImages(r.Context(), user.ID)
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}

	s.writeJSON(w, images)
}

// ImportProductImagesHandler принимает словарь sku→url и сливает его
// с библиотекой. Берём только http(s)-ссылки.
func (s *Server) ImportProductImagesHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := s.currentUser(w, r)
	if !ok {
		return
	}

	var req model.ImageImportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	accepted := make(map[string]string, len(req.Images))
	for sku, url := range req.Images {
		sku = strings.TrimSpace(sku)
		url = strings.TrimSpace(url)
		if sku == "" || !strings.HasPrefix(url, "http") {
			continue
		}
		accepted[sku] = url
	}

	if err := s.storage.SaveProductImages(r.Context(), user.ID, accepted); err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}

	s.writeJSON(w, map[string]int{"imported": len(accepted)})
}

func (s *Server) DeleteProductImageHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := s.currentUser(w, r)
	if !ok {
		return
	}

	sku := chi.URLParam(r, "sku")
	if sku == "" {
		http.Error(w, "sku required", http.StatusBadRequest)
		return
	}

	if err := s.storage.DeleteProductImage(r.Context(), user.ID, sku); err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (s *Server) ClearProductImagesHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := s.currentUser(w, r)
	if !ok {
		return
	}

	if err := s.storage.ClearProductImages(r.Context(), user.ID); err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}
