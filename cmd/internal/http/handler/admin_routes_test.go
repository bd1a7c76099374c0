package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"califraud/cmd/internal/contract"
	"califraud/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type stubSeedService struct {
	lastReq *contract.SeedRequest
	resp    *contract.SeedResponse
	err     apierror.ErrorResponse
}

func (s *stubSeedService) Seed(req *contract.SeedRequest) (*contract.SeedResponse, apierror.ErrorResponse) {
	s.lastReq = req
	return s.resp, s.err
}

func postSeed(t *testing.T, target string, h echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, target, nil)
	rec := httptest.NewRecorder()
	if err := h(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	return rec
}

func TestSeedDatabaseDefaultsToNoForce(t *testing.T) {
	stub := &stubSeedService{resp: &contract.SeedResponse{Seeded: false, Total: 50018}}
	h := NewAdminDefault(stub)

	rec := postSeed(t, "/api/admin/seed", h.SeedDatabase)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	if stub.lastReq == nil || stub.lastReq.Force {
		t.Errorf("request = %+v, want force=false", stub.lastReq)
	}
}

func TestSeedDatabaseForceFlag(t *testing.T) {
	stub := &stubSeedService{resp: &contract.SeedResponse{Seeded: true, Total: 50018}}
	h := NewAdminDefault(stub)

	rec := postSeed(t, "/api/admin/seed?force=true", h.SeedDatabase)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	if stub.lastReq == nil || !stub.lastReq.Force {
		t.Errorf("request = %+v, want force=true", stub.lastReq)
	}
}

func TestSeedDatabaseBadForceValue(t *testing.T) {
	h := NewAdminDefault(&stubSeedService{})

	rec := postSeed(t, "/api/admin/seed?force=banana", h.SeedDatabase)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status %d, want 400", rec.Code)
	}
}

func TestSeedDatabaseError(t *testing.T) {
	stub := &stubSeedService{err: apierror.InternalServerError}
	h := NewAdminDefault(stub)

	rec := postSeed(t, "/api/admin/seed", h.SeedDatabase)
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status %d, want 500", rec.Code)
	}
}
