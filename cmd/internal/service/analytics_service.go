package service

import (
	"fmt"
	"time"

	"califraud/cmd/internal/contract"
	"califraud/cmd/internal/domain/sqlite/repository"
	"califraud/cmd/internal/utils"
	"califraud/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
	"github.com/patrickmn/go-cache"
)

type AnalyticsRepository interface {
	Summary(f repository.CaseFilter) (*repository.SummaryRow, []repository.SchemeRow, error)
	CountyAggregates(f repository.CaseFilter) ([]repository.CountyRow, error)
	Timeline(f repository.CaseFilter) ([]repository.TimelineRow, error)
}

// DefaultAnalyticsService serves the aggregation endpoints. Results are
// cached briefly: the dataset only changes on a reseed, and full-table
// aggregations over tens of thousands of rows are not free.
type DefaultAnalyticsService struct {
	Repo     AnalyticsRepository
	Validate *validator.Validate
	Cache    *cache.Cache
}

func NewAnalyticsService(repo AnalyticsRepository, validate *validator.Validate) *DefaultAnalyticsService {
	return &DefaultAnalyticsService{
		Repo:     repo,
		Validate: validate,
		Cache:    cache.New(time.Minute, 5*time.Minute),
	}
}

func (s *DefaultAnalyticsService) Summary(req *contract.AnalyticsRequest) (*contract.SummaryResponse, apierror.ErrorResponse) {
	filter, apierr := s.checkRequest(req)
	if apierr != nil {
		return nil, apierr
	}

	key := cacheKey("summary", req)
	if cached, ok := s.Cache.Get(key); ok {
		return cached.(*contract.SummaryResponse), nil
	}

	row, breakdown, err := s.Repo.Summary(*filter)
	if err != nil {
		log.Errorf("failed to compute summary: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := &contract.SummaryResponse{
		TotalCases:      row.TotalCases,
		TotalExposed:    row.TotalExposed,
		TotalRecovered:  row.TotalRecovered,
		AverageAmount:   row.AverageAmount,
		SchemeBreakdown: make([]contract.SchemeBreakdownEntry, len(breakdown)),
	}
	if row.TotalExposed > 0 {
		resp.RecoveryRate = row.TotalRecovered / row.TotalExposed * 100
	}
	for i, b := range breakdown {
		resp.SchemeBreakdown[i] = contract.SchemeBreakdownEntry{
			SchemeType: b.SchemeType,
			Count:      b.CaseCount,
			Amount:     b.TotalExposed,
		}
	}

	s.Cache.SetDefault(key, resp)
	return resp, nil
}

func (s *DefaultAnalyticsService) Heatmap(req *contract.AnalyticsRequest) ([]contract.HeatmapEntry, apierror.ErrorResponse) {
	filter, apierr := s.checkRequest(req)
	if apierr != nil {
		return nil, apierr
	}

	key := cacheKey("heatmap", req)
	if cached, ok := s.Cache.Get(key); ok {
		return cached.([]contract.HeatmapEntry), nil
	}

	rows, err := s.Repo.CountyAggregates(*filter)
	if err != nil {
		log.Errorf("failed to compute heatmap: %v", err)
		return nil, apierror.InternalServerError
	}

	entries := make([]contract.HeatmapEntry, len(rows))
	for i, r := range rows {
		entries[i] = contract.HeatmapEntry{
			County:       r.County,
			CaseCount:    r.CaseCount,
			TotalExposed: r.TotalExposed,
			Latitude:     r.Lat,
			Longitude:    r.Lng,
		}
	}

	s.Cache.SetDefault(key, entries)
	return entries, nil
}

func (s *DefaultAnalyticsService) Timeline(req *contract.AnalyticsRequest) ([]contract.TimelinePoint, apierror.ErrorResponse) {
	filter, apierr := s.checkRequest(req)
	if apierr != nil {
		return nil, apierr
	}

	key := cacheKey("timeline", req)
	if cached, ok := s.Cache.Get(key); ok {
		return cached.([]contract.TimelinePoint), nil
	}

	rows, err := s.Repo.Timeline(*filter)
	if err != nil {
		log.Errorf("failed to compute timeline: %v", err)
		return nil, apierror.InternalServerError
	}

	points := make([]contract.TimelinePoint, len(rows))
	for i, r := range rows {
		points[i] = contract.TimelinePoint{
			Year:         r.Year,
			Month:        r.Month,
			Period:       fmt.Sprintf("%d-%02d", r.Year, r.Month),
			CaseCount:    r.CaseCount,
			TotalExposed: r.TotalExposed,
		}
	}

	s.Cache.SetDefault(key, points)
	return points, nil
}

func (s *DefaultAnalyticsService) checkRequest(req *contract.AnalyticsRequest) (*repository.CaseFilter, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}
	return filterFromRequest(req.SchemeType, req.County, "", nil, nil, req.StartDate, req.EndDate)
}

func cacheKey(endpoint string, req *contract.AnalyticsRequest) string {
	return fmt.Sprintf("%s|%s|%s|%s|%s", endpoint, req.SchemeType, req.County, req.StartDate, req.EndDate)
}
