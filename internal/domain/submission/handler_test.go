package submission

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func newTestHandler() (*Handler, *echo.Echo) {
	h := NewHandler(NewService(newMockRepo()))
	e := echo.New()
	return h, e
}

func TestHandler_ListSubmissions(t *testing.T) {
	h, e := newTestHandler()
	seed(t, h.svc, "Alice", "Bob")
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h.ListSubmissions(c); err != nil { t.Fatalf("unexpected error: %v", err) }
	if rec.Code != http.StatusOK { t.Errorf("expected 200, got %d", rec.Code) }
	var rows []Row
	if err := json.Unmarshal(rec.Body.Bytes(), &rows); err != nil { t.Fatalf("decode: %v", err) }
	if len(rows) != 2 { t.Errorf("expected 2 rows, got %d", len(rows)) }
}

func TestHandler_ListSubmissions_Empty(t *testing.T) {
	h, e := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h.ListSubmissions(c); err != nil { t.Fatalf("unexpected error: %v", err) }
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Errorf("expected empty JSON array, got %q", body)
	}
}

func TestHandler_SearchByName(t *testing.T) {
	h, e := newTestHandler()
	seed(t, h.svc, "Alice", "Bob")
	req := httptest.NewRequest(http.MethodGet, "/?name=ali", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h.ListSubmissions(c); err != nil { t.Fatalf("unexpected error: %v", err) }
	var rows []Row
	if err := json.Unmarshal(rec.Body.Bytes(), &rows); err != nil { t.Fatalf("decode: %v", err) }
	if len(rows) != 1 || rows[0].Name != "Alice" { t.Errorf("expected Alice only, got %+v", rows) }
}

func TestHandler_SearchByName_Blank(t *testing.T) {
	h, e := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/?name=", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	err := h.ListSubmissions(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest { t.Errorf("expected 400, got %v", err) }
}

func TestHandler_DeleteSubmissions(t *testing.T) {
	h, e := newTestHandler()
	seed(t, h.svc, "Alice", "Bob", "Carol")
	req := httptest.NewRequest(http.MethodDelete, "/", strings.NewReader(`{"ids":[1,3]}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h.DeleteSubmissions(c); err != nil { t.Fatalf("unexpected error: %v", err) }
	var resp deleteResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil { t.Fatalf("decode: %v", err) }
	if resp.Deleted != 2 { t.Errorf("expected 2 deleted, got %d", resp.Deleted) }
	rows, _ := h.svc.List(context.Background())
	if len(rows) != 1 || rows[0].Name != "Bob" { t.Errorf("expected Bob to remain, got %+v", rows) }
}

func TestHandler_DeleteSubmissions_EmptyIDs(t *testing.T) {
	h, e := newTestHandler()
	req := httptest.NewRequest(http.MethodDelete, "/", strings.NewReader(`{"ids":[]}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	err := h.DeleteSubmissions(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest { t.Errorf("expected 400, got %v", err) }
}

func TestHandler_StorageUnavailable(t *testing.T) {
	repo := newMockRepo()
	repo.fail = ErrStorageUnavailable
	h := NewHandler(NewService(repo))
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	err := h.ListSubmissions(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusServiceUnavailable { t.Errorf("expected 503, got %v", err) }
}
