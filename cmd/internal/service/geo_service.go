package service

import (
	"califraud/cmd/internal/contract"
	"califraud/cmd/internal/domain/entity"
	"califraud/cmd/internal/domain/sqlite/repository"
	"califraud/cmd/internal/geo"
	"califraud/cmd/internal/utils"
	"califraud/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type PointsRepository interface {
	FindAll(f repository.CaseFilter) ([]*entity.FraudCase, error)
}

type DefaultGeoService struct {
	Repo     PointsRepository
	Validate *validator.Validate
}

func NewGeoService(repo PointsRepository, validate *validator.Validate) *DefaultGeoService {
	return &DefaultGeoService{Repo: repo, Validate: validate}
}

// CountyCentroids returns the static county centroid collection used for
// heatmap positioning.
func (s *DefaultGeoService) CountyCentroids() *contract.FeatureCollection {
	features := make([]*contract.Feature, 0, len(geo.Centroids))
	for county, p := range geo.Centroids {
		features = append(features, contract.NewPointFeature(p.Lng, p.Lat, map[string]any{
			"name": county,
		}))
	}
	return contract.NewFeatureCollection(features)
}

// CasePoints returns matching cases as GeoJSON point features for map
// markers.
func (s *DefaultGeoService) CasePoints(req *contract.CaseListRequest) (*contract.FeatureCollection, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	filter, apierr := filterFromRequest(req.SchemeType, req.County, req.Status,
		req.MinAmount, req.MaxAmount, req.StartDate, req.EndDate)
	if apierr != nil {
		return nil, apierr
	}

	cases, err := s.Repo.FindAll(*filter)
	if err != nil {
		log.Errorf("failed to fetch case points: %v", err)
		return nil, apierror.InternalServerError
	}

	features := make([]*contract.Feature, len(cases))
	for i, c := range cases {
		features[i] = contract.NewPointFeature(c.Longitude, c.Latitude, map[string]any{
			"id":             c.ID,
			"title":          c.Title,
			"scheme_type":    c.SchemeType,
			"amount_exposed": c.AmountExposed,
			"date_filed":     utils.FormatDate(c.DateFiled),
			"county":         c.County,
			"status":         c.Status,
		})
	}
	return contract.NewFeatureCollection(features), nil
}

// StateOutline returns the simplified California boundary polygon.
func (s *DefaultGeoService) StateOutline() *contract.Feature {
	ring := make([][]float64, len(geo.CaliforniaOutline))
	for i, p := range geo.CaliforniaOutline {
		ring[i] = []float64{p[0], p[1]}
	}
	return &contract.Feature{
		Type:       "Feature",
		Properties: map[string]any{"name": "California"},
		Geometry: contract.Geometry{
			Type:        "Polygon",
			Coordinates: [][][]float64{ring},
		},
	}
}
