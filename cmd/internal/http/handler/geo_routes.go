package handler

import (
	"net/http"

	"califraud/cmd/internal/contract"
	"califraud/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type GeoService interface {
	CountyCentroids() *contract.FeatureCollection
	CasePoints(req *contract.CaseListRequest) (*contract.FeatureCollection, apierror.ErrorResponse)
	StateOutline() *contract.Feature
}

type DefaultGeoRoute struct {
	GeoService GeoService
}

func NewGeoDefault(geoService GeoService) *DefaultGeoRoute {
	return &DefaultGeoRoute{GeoService: geoService}
}

func (h *DefaultGeoRoute) GetCountyCentroids(c echo.Context) error {
	return c.JSON(http.StatusOK, h.GeoService.CountyCentroids())
}

func (h *DefaultGeoRoute) GetCasePoints(c echo.Context) error {
	var req contract.CaseListRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedQueryError)
	}

	fc, apierr := h.GeoService.CasePoints(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, fc)
}

func (h *DefaultGeoRoute) GetStateOutline(c echo.Context) error {
	return c.JSON(http.StatusOK, h.GeoService.StateOutline())
}
