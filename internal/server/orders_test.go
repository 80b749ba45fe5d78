package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/mkraev/sellerboard/internal/engine"
	"github.com/mkraev/sellerboard/internal/model"
)

func seedSnapshot(srv *Server, snap *engine.Snapshot) {
	seq := srv.snapshots.Begin(1)
	srv.snapshots.Commit(1, seq, snap)
}

func testSnapshot() *engine.Snapshot {
	return &engine.Snapshot{
		Report: []model.Posting{
			{
				PostingNumber: "R1",
				Status:        model.StatusDelivered,
				InProcessAt:   time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
				Products:      []model.Product{{SKU: 11, OfferID: "EAR-001", Name: "Наушники", Price: "100", Quantity: 1}},
			},
			{
				PostingNumber: "R2",
				Status:        model.StatusAwaitingPackaging,
				InProcessAt:   time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC),
				Products:      []model.Product{{SKU: 22, OfferID: "CASE-01", Name: "Чехол", Price: "50", Quantity: 1}},
			},
		},
		Operational: []model.Posting{
			{
				PostingNumber: "O1",
				Status:        model.StatusAwaitingPackaging,
				Products:      []model.Product{{SKU: 11, OfferID: "EAR-001", Name: "Наушники", Price: "100", Quantity: 1}},
			},
		},
		From: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
	}
}

func TestGetOrdersHandler(t *testing.T) {
	srv, mock, _ := setup(t)
	seedSnapshot(srv, testSnapshot())

	mock.EXPECT().GetOverrides(gomock.Any(), 1).Return(map[string]model.Override{}, nil)
	mock.EXPECT().GetProductImages(gomock.Any(), 1).Return(map[string]string{"11": "https://img/ear.jpg"}, nil)

	req := authenticatedRequest("GET", "/api/orders?status=all", "")
	w := httptest.NewRecorder()

	srv.GetOrdersHandler(w, req)

	resp := w.Result()
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body OrdersResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Total != 2 || len(body.Orders) != 2 {
		t.Errorf("expected 2 orders, got total=%d len=%d", body.Total, len(body.Orders))
	}
	// конечный R1 считается упакованным без локального флага
	if !body.Orders[0].Packed {
		t.Errorf("terminal posting must be packed")
	}
	// библиотека картинок подменяет изображение
	if body.Orders[0].Products[0].PrimaryImage != "https://img/ear.jpg" {
		t.Errorf("image override not applied: %q", body.Orders[0].Products[0].PrimaryImage)
	}
}

func TestGetOrdersHandlerNoSnapshot(t *testing.T) {
	srv, _, _ := setup(t)

	req := authenticatedRequest("GET", "/api/orders", "")
	w := httptest.NewRecorder()

	srv.GetOrdersHandler(w, req)

	resp := w.Result()
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("expected 204, got %d", resp.StatusCode)
	}
}

func TestGroupsHandler(t *testing.T) {
	srv, mock, _ := setup(t)
	seedSnapshot(srv, testSnapshot())

	mock.EXPECT().GetOverrides(gomock.Any(), 1).Return(map[string]model.Override{}, nil)
	mock.EXPECT().GetProductImages(gomock.Any(), 1).Return(map[string]string{}, nil)

	req := authenticatedRequest("GET", "/api/orders/groups", "")
	w := httptest.NewRecorder()

	srv.GroupsHandler(w, req)

	resp := w.Result()
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var groups []GroupView
	if err := json.NewDecoder(resp.Body).Decode(&groups); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(groups) != 1 || groups[0].Count != 1 || groups[0].PostingNumbers[0] != "O1" {
		t.Errorf("unexpected groups: %+v", groups)
	}
}

func TestStatsHandler(t *testing.T) {
	srv, mock, _ := setup(t)
	seedSnapshot(srv, testSnapshot())

	mock.EXPECT().GetOverrides(gomock.Any(), 1).Return(map[string]model.Override{}, nil)

	req := authenticatedRequest("GET", "/api/stats", "")
	w := httptest.NewRecorder()

	srv.StatsHandler(w, req)

	resp := w.Result()
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var stats engine.Stats
	if err := json.NewDecoder(resp.Body).Decode(&stats); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if stats.TotalOrders != 2 || stats.ToPackCount != 1 {
		t.Errorf("unexpected stats: %+v", stats)
	}
	if len(stats.Daily) != 2 {
		t.Errorf("expected dense 2-day axis, got %d", len(stats.Daily))
	}
}

func TestTrendHandlerMissingSKU(t *testing.T) {
	srv, _, _ := setup(t)
	seedSnapshot(srv, testSnapshot())

	req := authenticatedRequest("GET", "/api/stats/trend", "")
	w := httptest.NewRecorder()

	srv.TrendHandler(w, req)

	resp := w.Result()
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", resp.StatusCode)
	}
}

func TestSetPackedHandler(t *testing.T) {
	srv, mock, _ := setup(t)

	mock.EXPECT().SetPacked(gomock.Any(), 1, []string{"A", "B"}, true).Return(nil)

	req := authenticatedRequest("POST", "/api/orders/packed", `{"posting_numbers":["A","B"],"value":true}`)
	w := httptest.NewRecorder()

	srv.SetPackedHandler(w, req)

	resp := w.Result()
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
}

func TestSetPackedHandlerEmptyList(t *testing.T) {
	srv, _, _ := setup(t)

	req := authenticatedRequest("POST", "/api/orders/packed", `{"posting_numbers":[],"value":true}`)
	w := httptest.NewRecorder()

	srv.SetPackedHandler(w, req)

	resp := w.Result()
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", resp.StatusCode)
	}
}

func TestLabelsHandler(t *testing.T) {
	srv, mock, ozonStub := setup(t)

	pdf := []byte("%PDF-1.4 fake")
	mock.EXPECT().GetCredentials(gomock.Any(), 1).Return(testOzonCreds, nil)
	ozonStub.labels = func(_ context.Context, _ model.OzonCredentials, numbers []string) ([]byte, error) {
		if len(numbers) != 2 {
			t.Errorf("expected 2 numbers, got %v", numbers)
		}
		return pdf, nil
	}

	req := authenticatedRequest("POST", "/api/orders/labels", `{"posting_numbers":["A","B"]}`)
	w := httptest.NewRecorder()

	srv.LabelsHandler(w, req)

	resp := w.Result()
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("expected pdf content type, got %q", ct)
	}
}

func TestExportHandler(t *testing.T) {
	srv, mock, _ := setup(t)
	seedSnapshot(srv, testSnapshot())

	mock.EXPECT().GetOverrides(gomock.Any(), 1).Return(map[string]model.Override{}, nil)

	req := authenticatedRequest("GET", "/api/orders/export?ids=R1,O1", "")
	w := httptest.NewRecorder()

	srv.ExportHandler(w, req)

	resp := w.Result()
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var rows []engine.ExportRow
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(rows) != 2 {
		t.Errorf("expected 2 rows, got %d", len(rows))
	}
}

func TestExportHandlerMissingIDs(t *testing.T) {
	srv, _, _ := setup(t)

	req := authenticatedRequest("GET", "/api/orders/export", "")
	w := httptest.NewRecorder()

	srv.ExportHandler(w, req)

	resp := w.Result()
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", resp.StatusCode)
	}
}

func TestImportProductImagesHandler(t *testing.T) {
	srv, mock, _ := setup(t)

	mock.EXPECT().
		SaveProductImages(gomock.Any(), 1, map[string]string{"11": "https://img/a.jpg"}).
		Return(nil)

	// ссылка без http отбрасывается
	payload := `{"images":{"11":"https://img/a.jpg","22":"ftp://img/b.jpg"}}`
	req := authenticatedRequest("POST", "/api/products/images", payload)
	w := httptest.NewRecorder()

	srv.ImportProductImagesHandler(w, req)

	resp := w.Result()
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body map[string]int
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["imported"] != 1 {
		t.Errorf("expected 1 imported, got %d", body["imported"])
	}
}
