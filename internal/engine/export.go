package engine

import (
	"strconv"
	"strings"

	"github.com/mkraev/sellerboard/internal/model"
	"github.com/shopspring/decimal"
)

// ExportRow — строка выгрузки по отправлению: эффективные статусы и
// сплющенные поля позиций. Сериализация (CSV и т.п.) — забота потребителя.
type ExportRow struct {
	PostingNumber string `json:"posting_number"`
	Status        string `json:"status"`
	Packed        bool   `json:"packed"`
	Processed     bool   `json:"processed"`
	Names         string `json:"names"`
	OfferIDs      string `json:"offer_ids"`
	SKUs          string `json:"skus"`
	Quantities    string `json:"quantities"`
	Total         string `json:"total"`
}

// ExportRows — по одной строке на отправление из явного набора номеров.
// Дубликаты по номеру схлопываются, порядок источника сохраняется.
func ExportRows(postings []model.Posting, overrides map[string]model.Override, ids []string) []ExportRow {
	want := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}

	seen := make(map[string]struct{}, len(ids))
	var rows []ExportRow
	for _, p := range postings {
		if _, ok := want[p.PostingNumber]; !ok {
			continue
		}
		if _, dup := seen[p.PostingNumber]; dup {
			continue
		}
		seen[p.PostingNumber] = struct{}{}

		names := make([]string, 0, len(p.Products))
		offers := make([]string, 0, len(p.Products))
		skus := make([]string, 0, len(p.Products))
		quantities := make([]string, 0, len(p.Products))
		total := decimal.Zero
		for _, pr := range p.Products {
			names = append(names, pr.Name)
			offers = append(offers, pr.OfferID)
			skus = append(skus, strconv.FormatInt(pr.SKU, 10))
			quantities = append(quantities, strconv.Itoa(pr.Quantity))
			if price, err := decimal.NewFromString(pr.Price); err == nil {
				total = total.Add(price)
			}
		}

		rows = append(rows, ExportRow{
			PostingNumber: p.PostingNumber,
			Status:        string(p.Status),
			Packed:        EffectivePacked(p, overrides),
			Processed:     overrides[p.PostingNumber].Processed,
			Names:         strings.Join(names, "; "),
			OfferIDs:      strings.Join(offers, "; "),
			SKUs:          strings.Join(skus, "; "),
			Quantities:    strings.Join(quantities, "; "),
			Total:         total.StringFixed(2),
		})
	}
	return rows
}
