package responsewriter

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWrap_DefaultsTo200(t *testing.T) {
	w := Wrap(httptest.NewRecorder())
	if w.StatusCode() != http.StatusOK {
		t.Errorf("StatusCode() = %d before any write, want 200", w.StatusCode())
	}
}

func TestWriteHeader_FirstCallWins(t *testing.T) {
	rec := httptest.NewRecorder()
	w := Wrap(rec)

	w.WriteHeader(http.StatusNotFound)
	w.WriteHeader(http.StatusInternalServerError)

	if w.StatusCode() != http.StatusNotFound {
		t.Errorf("StatusCode() = %d, want 404", w.StatusCode())
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("recorded status = %d, want 404", rec.Code)
	}
}

func TestWrite_CommitsImplicit200AndCountsBytes(t *testing.T) {
	rec := httptest.NewRecorder()
	w := Wrap(rec)

	if _, err := w.Write([]byte(`{"count":42}`)); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if _, err := w.Write([]byte("\n")); err != nil {
		t.Fatalf("Write: %v", err)
	}

	if w.StatusCode() != http.StatusOK {
		t.Errorf("StatusCode() = %d, want implicit 200", w.StatusCode())
	}
	if w.BytesWritten() != 13 {
		t.Errorf("BytesWritten() = %d, want 13", w.BytesWritten())
	}
	// A Write after the implicit commit must not change the status.
	w.WriteHeader(http.StatusTeapot)
	if rec.Code != http.StatusOK {
		t.Errorf("recorded status = %d, want 200", rec.Code)
	}
}

func TestUnwrap_ReturnsUnderlyingWriter(t *testing.T) {
	rec := httptest.NewRecorder()
	w := Wrap(rec)
	if w.Unwrap() != rec {
		t.Error("Unwrap() did not return the wrapped writer")
	}
}
