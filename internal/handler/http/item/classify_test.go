package item_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"fresh-catalog/internal/handler/http/item"
	catUC "fresh-catalog/internal/usecase/catalog"
)

func doClassify(t *testing.T, expiry string) *httptest.ResponseRecorder {
	t.Helper()
	h := item.ClassifyHandler{Svc: &catUC.Service{}}
	target := "/items/classify"
	if expiry != "" {
		target += "?expiry=" + url.QueryEscape(expiry)
	}
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func classifyStatus(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body item.ClassifyResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return body.Status
}

func TestClassifyHandler_NoExpiryIsAvailable(t *testing.T) {
	rec := doClassify(t, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	if got := classifyStatus(t, rec); got != "available" {
		t.Errorf("status = %s, want available", got)
	}
}

func TestClassifyHandler_PastDateIsExpired(t *testing.T) {
	rec := doClassify(t, time.Now().Add(-48*time.Hour).Format(time.RFC3339))
	if got := classifyStatus(t, rec); got != "expired" {
		t.Errorf("status = %s, want expired", got)
	}
}

func TestClassifyHandler_NearDateIsExpiring(t *testing.T) {
	rec := doClassify(t, time.Now().Add(36*time.Hour).Format(time.RFC3339))
	if got := classifyStatus(t, rec); got != "expiring" {
		t.Errorf("status = %s, want expiring", got)
	}
}

func TestClassifyHandler_FarDateIsAvailable(t *testing.T) {
	rec := doClassify(t, time.Now().Add(30*24*time.Hour).Format(time.RFC3339))
	if got := classifyStatus(t, rec); got != "available" {
		t.Errorf("status = %s, want available", got)
	}
}

func TestClassifyHandler_MalformedExpiry(t *testing.T) {
	rec := doClassify(t, "next tuesday")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
