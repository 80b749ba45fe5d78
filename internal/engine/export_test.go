package engine

import (
	"testing"

	"github.com/mkraev/sellerboard/internal/model"
)

func TestExportRows(t *testing.T) {
	postings := []model.Posting{
		{
			PostingNumber: "A",
			Status:        model.StatusAwaitingPackaging,
			Products: []model.Product{
				{SKU: 11, OfferID: "EAR-001", Name: "Наушники", Price: "100.00", Quantity: 2},
				{SKU: 22, OfferID: "CASE-01", Name: "Чехол", Price: "50.00", Quantity: 1},
			},
		},
		{PostingNumber: "B", Status: model.StatusDelivered},
		{PostingNumber: "A", Status: model.StatusAwaitingPackaging}, // дубль
	}
	overrides := map[string]model.Override{
		"A": {Processed: true},
	}

	rows := ExportRows(postings, overrides, []string{"A", "B", "missing"})
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	a := rows[0]
	if a.Names != "Наушники; Чехол" {
		t.Errorf("names: got %q", a.Names)
	}
	if a.OfferIDs != "EAR-001; CASE-01" {
		t.Errorf("offer ids: got %q", a.OfferIDs)
	}
	if a.SKUs != "11; 22" {
		t.Errorf("skus: got %q", a.SKUs)
	}
	if a.Quantities != "2; 1" {
		t.Errorf("quantities: got %q", a.Quantities)
	}
	if a.Total != "150.00" {
		t.Errorf("total: got %q", a.Total)
	}
	if a.Packed || !a.Processed {
		t.Errorf("flags: packed=%v processed=%v", a.Packed, a.Processed)
	}

	// конечный статус даёт эффективный packed без локального флага
	if !rows[1].Packed {
		t.Errorf("terminal posting must export as packed")
	}
}

func TestExportRowsEmptySelection(t *testing.T) {
	postings := []model.Posting{{PostingNumber: "A"}}
	if rows := ExportRows(postings, nil, nil); len(rows) != 0 {
		t.Errorf("expected no rows, got %d", len(rows))
	}
}
