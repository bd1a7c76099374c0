package handler

import (
	"net/http"
	"strconv"

	"califraud/cmd/internal/contract"
	"califraud/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type SeedService interface {
	Seed(req *contract.SeedRequest) (*contract.SeedResponse, apierror.ErrorResponse)
}

type DefaultAdminRoute struct {
	SeedService SeedService
}

func NewAdminDefault(seedService SeedService) *DefaultAdminRoute {
	return &DefaultAdminRoute{SeedService: seedService}
}

func (h *DefaultAdminRoute) SeedDatabase(c echo.Context) error {
	// Query params are not bound on POST, so the flag is read by hand.
	force := false
	if raw := c.QueryParam("force"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("force", "bool"))
		}
		force = parsed
	}

	resp, apierr := h.SeedService.Seed(&contract.SeedRequest{Force: force})
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}
