package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/mkraev/sellerboard/internal/engine"
	"github.com/mkraev/sellerboard/internal/errs"
	"github.com/mkraev/sellerboard/internal/model"
)

type OrderView struct {
	model.Posting
	Packed    bool   `json:"packed"`
	Processed bool   `json:"processed"`
	Total     string `json:"total"`
}

type OrdersResponse struct {
	Orders     []OrderView `json:"orders"`
	Total      int         `json:"total"`
	Page       int         `json:"page"`
	PerPage    int         `json:"per_page"`
	TotalPages int         `json:"total_pages"`
}

type GroupView struct {
	Product        model.Product `json:"product"`
	Count          int           `json:"count"`
	PostingNumbers []string      `json:"posting_numbers"`
}

func (s *Server) GetOrdersHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := s.currentUser(w, r)
	if !ok {
		return
	}

	snap, ok := s.snapshots.Get(user.ID)
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	overrides, err := s.storage.GetOverrides(r.Context(), user.ID)
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	images, err := s.storage.GetProductImages(r.Context(), user.ID)
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}

	facets := facetsFromQuery(r)
	filtered := engine.FilterOrders(snap.Report, snap.Operational, overrides, facets)

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))
	pageItems, totalPages := engine.Paginate(filtered, page, perPage)
	if page <= 0 {
		page = 1
	}
	if perPage <= 0 {
		perPage = 10
	}

	orders := make([]OrderView, 0, len(pageItems))
	for _, p := range pageItems {
		orders = append(orders, OrderView{
			Posting:   withImages(p, images),
			Packed:    engine.EffectivePacked(p, overrides),
			Processed: overrides[p.PostingNumber].Processed,
			Total:     engine.PostingTotal(p).StringFixed(2),
		})
	}

	s.writeJSON(w, OrdersResponse{
		Orders:     orders,
		Total:      len(filtered),
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages,
	})
}

func (s *Server) GroupsHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := s.currentUser(w, r)
	if !ok {
		return
	}

	snap, ok := s.snapshots.Get(user.ID)
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	overrides, err := s.storage.GetOverrides(r.Context(), user.ID)
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	images, err := s.storage.GetProductImages(r.Context(), user.ID)
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}

	groups := engine.SmartGroups(snap.Operational, overrides, r.URL.Query().Get("q"))

	views := make([]GroupView, 0, len(groups))
	for _, g := range groups {
		numbers := make([]string, 0, len(g.Postings))
		for _, p := range g.Postings {
			numbers = append(numbers, p.PostingNumber)
		}
		views = append(views, GroupView{
			Product:        resolveImage(g.Product, images),
			Count:          len(g.Postings),
			PostingNumbers: numbers,
		})
	}

	s.writeJSON(w, views)
}

func (s *Server) StatsHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := s.currentUser(w, r)
	if !ok {
		return
	}

	snap, ok := s.snapshots.Get(user.ID)
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	overrides, err := s.storage.GetOverrides(r.Context(), user.ID)
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}

	stats := engine.BuildStats(snap.Report, snap.Operational, overrides, snap.From, snap.To)
	s.writeJSON(w, stats)
}

func (s *Server) TrendHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := s.currentUser(w, r)
	if !ok {
		return
	}

	sku, err := strconv.ParseInt(r.URL.Query().Get("sku"), 10, 64)
	if err != nil {
		http.Error(w, "sku required", http.StatusBadRequest)
		return
	}

	snap, ok := s.snapshots.Get(user.ID)
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	points := engine.ProductTrend(snap.Report, sku, snap.From, snap.To)
	s.writeJSON(w, points)
}

func (s *Server) SetPackedHandler(w http.ResponseWriter, r *http.Request) {
	s.overrideHandler(w, r, s.storage.SetPacked)
}

func (s *Server) SetProcessedHandler(w http.ResponseWriter, r *http.Request) {
	s.overrideHandler(w, r, s.storage.SetProcessed)
}

func (s *Server) overrideHandler(w http.ResponseWriter, r *http.Request, set func(ctx context.Context, userID int, numbers []string, value bool) error) {
	user, ok := s.currentUser(w, r)
	if !ok {
		return
	}

	var req model.OverrideBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if len(req.PostingNumbers) == 0 {
		http.Error(w, "posting numbers required", http.StatusBadRequest)
		return
	}

	if err := set(r.Context(), user.ID, req.PostingNumbers, req.Value); err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (s *Server) LabelsHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := s.currentUser(w, r)
	if !ok {
		return
	}

	var req model.LabelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	creds, err := s.storage.GetCredentials(r.Context(), user.ID)
	if err != nil {
		if errors.Is(err, errs.ErrCredentialsNotSet) {
			http.Error(w, "ozon credentials not set", http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}

	pdf, err := s.ozon.PackageLabels(r.Context(), creds, req.PostingNumbers)
	if err != nil {
		if errors.Is(err, errs.ErrEmptyPostingList) {
			http.Error(w, "posting numbers required", http.StatusBadRequest)
			return
		}
		s.remoteError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Write(pdf)
}

func (s *Server) ExportHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := s.currentUser(w, r)
	if !ok {
		return
	}

	idsParam := strings.TrimSpace(r.URL.Query().Get("ids"))
	if idsParam == "" {
		http.Error(w, "ids required", http.StatusBadRequest)
		return
	}
	var ids []string
	for _, id := range strings.Split(idsParam, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}

	snap, ok := s.snapshots.Get(user.ID)
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	overrides, err := s.storage.GetOverrides(r.Context(), user.ID)
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}

	rows := engine.ExportRows(engine.MergeByNumber(snap.Report, snap.Operational), overrides, ids)
	s.writeJSON(w, rows)
}

func facetsFromQuery(r *http.Request) engine.Facets {
	q := r.URL.Query()

	facets := engine.Facets{
		Status:    engine.FacetAll,
		Processed: engine.ProcessedAll,
		Query:     q.Get("q"),
	}
	if status := q.Get("status"); status != "" {
		facets.Status = engine.StatusFacet(status)
	}
	if processed := q.Get("processed"); processed != "" {
		facets.Processed = engine.ProcessedFacet(processed)
	}
	return facets
}

// withImages подменяет картинки товаров пользовательской библиотекой,
// не трогая срез снимка.
func withImages(p model.Posting, images map[string]string) model.Posting {
	if len(images) == 0 || len(p.Products) == 0 {
		return p
	}
	products := make([]model.Product, len(p.Products))
	copy(products, p.Products)
	for i := range products {
		products[i] = resolveImage(products[i], images)
	}
	p.Products = products
	return p
}

func resolveImage(pr model.Product, images map[string]string) model.Product {
	if url, ok := images[strconv.FormatInt(pr.SKU, 10)]; ok {
		pr.PrimaryImage = url
	}
	return pr
}
