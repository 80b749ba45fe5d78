// Package engine — чистые функции над снимком отправлений и локальными
// флагами: сверка статусов, фильтрация, группировка, агрегаты.
package engine

import (
	"strconv"
	"strings"

	"github.com/mkraev/sellerboard/internal/model"
)

type StatusFacet string

const (
	FacetAll      StatusFacet = "all"
	FacetPacked   StatusFacet = "packed"
	FacetUnpacked StatusFacet = "unpacked"
)

type ProcessedFacet string

const (
	ProcessedAll    ProcessedFacet = "all"
	ProcessedOnly   ProcessedFacet = "processed"
	UnprocessedOnly ProcessedFacet = "unprocessed"
)

type Facets struct {
	Status    StatusFacet
	Processed ProcessedFacet
	Query     string
}

// IsPackable — заказ ещё требует упаковки по статусу Ozon.
func IsPackable(status model.PostingStatus) bool {
	switch model.PostingStatus(strings.ToLower(string(status))) {
	case model.StatusAwaitingPackaging, model.StatusAwaitingDeliver:
		return true
	}
	return false
}

// IsTerminal — конечные статусы для автоматической отметки packed.
// Неизвестные статусы конечными не считаются.
func IsTerminal(status model.PostingStatus) bool {
	switch model.PostingStatus(strings.ToLower(string(status))) {
	case model.StatusDelivering, model.StatusDelivered, model.StatusCancelled:
		return true
	}
	return false
}

// EffectivePacked: локальный флаг ИЛИ статус, не требующий упаковки.
// Персистится только локальный флаг.
func EffectivePacked(p model.Posting, overrides map[string]model.Override) bool {
	return overrides[p.PostingNumber].Packed || !IsPackable(p.Status)
}

// AutoPackCandidates — номера конечных отправлений без локального packed.
// Идемпотентно и монотонно: повторный прогон по тому же состоянию пуст.
func AutoPackCandidates(postings []model.Posting, overrides map[string]model.Override) []string {
	seen := make(map[string]struct{})
	var ids []string
	for _, p := range postings {
		if !IsTerminal(p.Status) || overrides[p.PostingNumber].Packed {
			continue
		}
		if _, ok := seen[p.PostingNumber]; ok {
			continue
		}
		seen[p.PostingNumber] = struct{}{}
		ids = append(ids, p.PostingNumber)
	}
	return ids
}

// MergeByNumber — окна пересекаются, при слиянии дедуплицируем по номеру.
// Первое вхождение выигрывает, порядок сохраняется.
func MergeByNumber(a, b []model.Posting) []model.Posting {
	seen := make(map[string]struct{}, len(a)+len(b))
	merged := make([]model.Posting, 0, len(a)+len(b))
	for _, p := range append(append([]model.Posting{}, a...), b...) {
		if _, ok := seen[p.PostingNumber]; ok {
			continue
		}
		seen[p.PostingNumber] = struct{}{}
		merged = append(merged, p)
	}
	return merged
}

// FilterOrders применяет фасеты по порядку: источник → статус → processed →
// поиск. Порядок источника сохраняется, пересортировки нет.
func FilterOrders(report, operational []model.Posting, overrides map[string]model.Override, f Facets) []model.Posting {
	// вкладка "unpacked" читает операционное окно, остальные — отчётное
	source := report
	if f.Status == FacetUnpacked {
		source = operational
	}

	q := normalizeQuery(f.Query)

	var out []model.Posting
	for _, p := range source {
		packed := overrides[p.PostingNumber].Packed
		packable := IsPackable(p.Status)

		if f.Status == FacetPacked && !packed && packable {
			continue
		}
		if f.Status == FacetUnpacked {
			if packed || !packable {
				continue
			}
			processed := overrides[p.PostingNumber].Processed
			if f.Processed == ProcessedOnly && !processed {
				continue
			}
			if f.Processed == UnprocessedOnly && processed {
				continue
			}
		}
		if q != "" && !matchesQuery(p, q) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Paginate — срез фиксированного размера, страницы с единицы.
func Paginate(postings []model.Posting, page, perPage int) ([]model.Posting, int) {
	if perPage <= 0 {
		perPage = 10
	}
	if page <= 0 {
		page = 1
	}

	totalPages := (len(postings) + perPage - 1) / perPage

	start := (page - 1) * perPage
	if start >= len(postings) {
		return nil, totalPages
	}
	end := start + perPage
	if end > len(postings) {
		end = len(postings)
	}
	return postings[start:end], totalPages
}

func normalizeQuery(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

// поиск: номер отправления, SKU как строка, артикул, название
func matchesQuery(p model.Posting, q string) bool {
	if strings.Contains(strings.ToLower(p.PostingNumber), q) {
		return true
	}
	for _, pr := range p.Products {
		if strings.Contains(strconv.FormatInt(pr.SKU, 10), q) ||
			strings.Contains(strings.ToLower(pr.OfferID), q) ||
			strings.Contains(strings.ToLower(pr.Name), q) {
			return true
		}
	}
	return false
}
