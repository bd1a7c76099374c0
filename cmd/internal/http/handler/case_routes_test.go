package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"califraud/cmd/internal/contract"
	"califraud/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type stubCaseService struct {
	listReq  *contract.CaseListRequest
	listResp *contract.CaseListResponse
	listErr  apierror.ErrorResponse

	byIDArg  int64
	byIDResp *contract.CaseResponse
	byIDErr  apierror.ErrorResponse
}

func (s *stubCaseService) ListCases(req *contract.CaseListRequest) (*contract.CaseListResponse, apierror.ErrorResponse) {
	s.listReq = req
	return s.listResp, s.listErr
}

func (s *stubCaseService) GetCaseByID(id int64) (*contract.CaseResponse, apierror.ErrorResponse) {
	s.byIDArg = id
	return s.byIDResp, s.byIDErr
}

func (s *stubCaseService) SchemeTypes() ([]string, apierror.ErrorResponse) {
	return []string{"edd_unemployment", "medi_cal"}, nil
}

func (s *stubCaseService) Counties() ([]string, apierror.ErrorResponse) {
	return []string{"Fresno", "Los Angeles"}, nil
}

func request(t *testing.T, target string, h echo.HandlerFunc, pathParam ...string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if len(pathParam) == 2 {
		c.SetParamNames(pathParam[0])
		c.SetParamValues(pathParam[1])
	}
	if err := h(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	return rec
}

func TestGetCasesPassesFilters(t *testing.T) {
	stub := &stubCaseService{
		listResp: &contract.CaseListResponse{Total: 1, Limit: 100},
	}
	h := NewCaseDefault(stub)

	rec := request(t, "/api/cases?scheme_type=medi_cal&county=Fresno&min_amount=1000&limit=50", h.GetCases)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, body %s", rec.Code, rec.Body.String())
	}

	if stub.listReq == nil {
		t.Fatal("service never called")
	}
	if stub.listReq.SchemeType != "medi_cal" || stub.listReq.County != "Fresno" || stub.listReq.Limit != 50 {
		t.Errorf("bound request = %+v", stub.listReq)
	}
	if stub.listReq.MinAmount == nil || *stub.listReq.MinAmount != 1000 {
		t.Errorf("min_amount not bound: %+v", stub.listReq.MinAmount)
	}

	var resp contract.CaseListResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Total != 1 {
		t.Errorf("total %d, want 1", resp.Total)
	}
}

func TestGetCasesServiceError(t *testing.T) {
	stub := &stubCaseService{listErr: apierror.NewSimple(400, "bad filter")}
	h := NewCaseDefault(stub)

	rec := request(t, "/api/cases", h.GetCases)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status %d, want 400", rec.Code)
	}
}

func TestGetCasesMalformedQuery(t *testing.T) {
	h := NewCaseDefault(&stubCaseService{})

	rec := request(t, "/api/cases?min_amount=abc", h.GetCases)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status %d, want 400 for non-numeric min_amount", rec.Code)
	}
}

func TestGetCaseByID(t *testing.T) {
	stub := &stubCaseService{
		byIDResp: &contract.CaseResponse{ID: 42, CaseNumber: "CA-2021-000042"},
	}
	h := NewCaseDefault(stub)

	rec := request(t, "/api/cases/42", h.GetCase, "id", "42")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	if stub.byIDArg != 42 {
		t.Errorf("service called with id %d", stub.byIDArg)
	}
}

func TestGetCaseBadID(t *testing.T) {
	h := NewCaseDefault(&stubCaseService{})

	rec := request(t, "/api/cases/abc", h.GetCase, "id", "abc")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status %d, want 400 for a non-numeric id", rec.Code)
	}

	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Message != apierror.InvalidIDError.Message {
		t.Errorf("message %q, want the invalid-id message", body.Message)
	}
}

func TestGetCaseNotFound(t *testing.T) {
	stub := &stubCaseService{byIDErr: apierror.NotFoundError}
	h := NewCaseDefault(stub)

	rec := request(t, "/api/cases/999", h.GetCase, "id", "999")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status %d, want 404", rec.Code)
	}
}

func TestGetSchemeTypes(t *testing.T) {
	h := NewCaseDefault(&stubCaseService{})

	rec := request(t, "/api/cases/scheme-types", h.GetSchemeTypes)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}

	var types []string
	if err := json.Unmarshal(rec.Body.Bytes(), &types); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(types) != 2 || types[0] != "edd_unemployment" {
		t.Errorf("types = %v", types)
	}
}
