package item_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fresh-catalog/internal/common/pagination"
	"fresh-catalog/internal/domain/entity"
	"fresh-catalog/internal/handler/http/item"
	catUC "fresh-catalog/internal/usecase/catalog"
)

func listHandler(svc *catUC.Service) item.ListHandler {
	return item.ListHandler{
		Svc:           svc,
		Sessions:      newRegistry(),
		PaginationCfg: testConfig(),
		Logger:        discardLogger(),
	}
}

func doList(t *testing.T, h item.ListHandler, url string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeListBody(t *testing.T, rec *httptest.ResponseRecorder) pagination.Response[item.DTO] {
	t.Helper()
	var body pagination.Response[item.DTO]
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return body
}

/* ───────── success paths ───────── */

func TestListHandler_FirstPage(t *testing.T) {
	svc, _ := newTestService(t)
	h := listHandler(svc)

	rec := doList(t, h, "/items?owner=tenant-1&page_size=2")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	body := decodeListBody(t, rec)
	if len(body.Data) != 2 {
		t.Fatalf("len(data) = %d, want 2", len(body.Data))
	}
	if body.Data[0].Name != "apple" || body.Data[1].Name != "banana" {
		t.Errorf("page 0 = %s, %s; want apple, banana", body.Data[0].Name, body.Data[1].Name)
	}
	if !body.Pagination.HasMore {
		t.Error("HasMore = false, want true")
	}
	if body.Pagination.Page != 0 || body.Pagination.PageSize != 2 {
		t.Errorf("metadata = %+v", body.Pagination)
	}
}

func TestListHandler_WalksPagesInOrder(t *testing.T) {
	svc, _ := newTestService(t)
	h := listHandler(svc) // shared registry keeps the ledger across requests

	var names []string
	for page := 0; page < 3; page++ {
		rec := doList(t, h, "/items?owner=tenant-1&page_size=2&page="+string(rune('0'+page)))
		if rec.Code != http.StatusOK {
			t.Fatalf("page %d status = %d: %s", page, rec.Code, rec.Body.String())
		}
		body := decodeListBody(t, rec)
		for _, d := range body.Data {
			names = append(names, d.Name)
		}
		if page == 2 && body.Pagination.HasMore {
			t.Error("last page HasMore = true, want false")
		}
	}

	want := []string{"apple", "banana", "cherry", "date", "elderberry"}
	if len(names) != len(want) {
		t.Fatalf("walked names = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %s, want %s", i, names[i], want[i])
		}
	}
}

func TestListHandler_SearchFiltersNames(t *testing.T) {
	svc, _ := newTestService(t)
	h := listHandler(svc)

	rec := doList(t, h, "/items?owner=tenant-1&q=err") // cherry, elderberry
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	body := decodeListBody(t, rec)
	if len(body.Data) != 2 {
		t.Fatalf("len(data) = %d, want 2: %+v", len(body.Data), body.Data)
	}
}

func TestListHandler_OwnerIsolation(t *testing.T) {
	svc, _ := newTestService(t)
	h := listHandler(svc)

	rec := doList(t, h, "/items?owner=tenant-2")
	body := decodeListBody(t, rec)
	if len(body.Data) != 1 || body.Data[0].Name != "foreign" {
		t.Fatalf("tenant-2 data = %+v, want only foreign", body.Data)
	}
}

/* ───────── error paths ───────── */

func TestListHandler_MissingOwner(t *testing.T) {
	svc, _ := newTestService(t)
	h := listHandler(svc)

	rec := doList(t, h, "/items?page_size=2")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestListHandler_PageBeyondVisitedRange(t *testing.T) {
	svc, _ := newTestService(t)
	h := listHandler(svc)

	// Page 2 requested before pages 0 and 1 were visited.
	rec := doList(t, h, "/items?owner=tenant-1&page_size=2&page=2")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestListHandler_UnknownSortField(t *testing.T) {
	svc, _ := newTestService(t)
	h := listHandler(svc)

	rec := doList(t, h, "/items?owner=tenant-1&sort=weight")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestListHandler_StoreErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"permission denied", entity.ErrPermissionDenied, http.StatusForbidden},
		{"store unavailable", entity.ErrUnavailable, http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &catUC.Service{Repo: &failRepo{err: tt.err}, PaginationCfg: testConfig()}
			h := listHandler(svc)

			rec := doList(t, h, "/items?owner=tenant-1")
			if rec.Code != tt.wantCode {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantCode)
			}
		})
	}
}
