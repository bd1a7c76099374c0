package handler

import (
	"net/http"
	"strconv"

	"califraud/cmd/internal/contract"
	"califraud/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type CaseService interface {
	ListCases(req *contract.CaseListRequest) (*contract.CaseListResponse, apierror.ErrorResponse)
	GetCaseByID(id int64) (*contract.CaseResponse, apierror.ErrorResponse)
	SchemeTypes() ([]string, apierror.ErrorResponse)
	Counties() ([]string, apierror.ErrorResponse)
}

type DefaultCaseRoute struct {
	CaseService CaseService
}

func NewCaseDefault(caseService CaseService) *DefaultCaseRoute {
	return &DefaultCaseRoute{CaseService: caseService}
}

func (h *DefaultCaseRoute) GetCases(c echo.Context) error {
	var req contract.CaseListRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedQueryError)
	}

	resp, apierr := h.CaseService.ListCases(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *DefaultCaseRoute) GetCase(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.InvalidIDError)
	}

	resp, apierr := h.CaseService.GetCaseByID(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *DefaultCaseRoute) GetSchemeTypes(c echo.Context) error {
	types, apierr := h.CaseService.SchemeTypes()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, types)
}

func (h *DefaultCaseRoute) GetCounties(c echo.Context) error {
	counties, apierr := h.CaseService.Counties()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, counties)
}
