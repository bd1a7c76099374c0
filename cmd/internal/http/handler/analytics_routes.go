package handler

import (
	"net/http"

	"califraud/cmd/internal/contract"
	"califraud/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type AnalyticsService interface {
	Summary(req *contract.AnalyticsRequest) (*contract.SummaryResponse, apierror.ErrorResponse)
	Heatmap(req *contract.AnalyticsRequest) ([]contract.HeatmapEntry, apierror.ErrorResponse)
	Timeline(req *contract.AnalyticsRequest) ([]contract.TimelinePoint, apierror.ErrorResponse)
}

type DefaultAnalyticsRoute struct {
	AnalyticsService AnalyticsService
}

func NewAnalyticsDefault(analyticsService AnalyticsService) *DefaultAnalyticsRoute {
	return &DefaultAnalyticsRoute{AnalyticsService: analyticsService}
}

func (h *DefaultAnalyticsRoute) GetSummary(c echo.Context) error {
	var req contract.AnalyticsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedQueryError)
	}

	resp, apierr := h.AnalyticsService.Summary(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *DefaultAnalyticsRoute) GetHeatmap(c echo.Context) error {
	var req contract.AnalyticsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedQueryError)
	}

	entries, apierr := h.AnalyticsService.Heatmap(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, entries)
}

func (h *DefaultAnalyticsRoute) GetTimeline(c echo.Context) error {
	var req contract.AnalyticsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedQueryError)
	}

	points, apierr := h.AnalyticsService.Timeline(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, points)
}
