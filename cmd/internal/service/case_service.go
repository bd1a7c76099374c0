package service

import (
	"califraud/cmd/internal/contract"
	"califraud/cmd/internal/domain/entity"
	"califraud/cmd/internal/domain/sqlite/repository"
	"califraud/cmd/internal/utils"
	"califraud/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type CaseRepository interface {
	FindPage(f repository.CaseFilter, limit, offset int) ([]*entity.FraudCase, int64, error)
	FindByID(id int64) (*entity.FraudCase, error)
	DistinctSchemeTypes() ([]string, error)
	DistinctCounties() ([]string, error)
}

type DefaultCaseService struct {
	Repo     CaseRepository
	Validate *validator.Validate
}

func NewCaseService(repo CaseRepository, validate *validator.Validate) *DefaultCaseService {
	return &DefaultCaseService{Repo: repo, Validate: validate}
}

func (s *DefaultCaseService) ListCases(req *contract.CaseListRequest) (*contract.CaseListResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	filter, apierr := filterFromRequest(req.SchemeType, req.County, req.Status,
		req.MinAmount, req.MaxAmount, req.StartDate, req.EndDate)
	if apierr != nil {
		return nil, apierr
	}

	limit := req.Limit
	if limit == 0 {
		limit = contract.DefaultPageSize
	}

	cases, total, err := s.Repo.FindPage(*filter, limit, req.Offset)
	if err != nil {
		log.Errorf("failed to fetch cases: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.CaseResponse, len(cases))
	for i, c := range cases {
		resp[i] = toCaseResponse(c)
	}
	return &contract.CaseListResponse{
		Total:  total,
		Cases:  resp,
		Limit:  limit,
		Offset: req.Offset,
	}, nil
}

func (s *DefaultCaseService) GetCaseByID(id int64) (*contract.CaseResponse, apierror.ErrorResponse) {
	c, err := s.Repo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch case: %v", err)
		return nil, apierror.InternalServerError
	}

	if c == nil {
		return nil, apierror.NotFoundError
	}
	return toCaseResponse(c), nil
}

func (s *DefaultCaseService) SchemeTypes() ([]string, apierror.ErrorResponse) {
	types, err := s.Repo.DistinctSchemeTypes()
	if err != nil {
		log.Errorf("failed to fetch scheme types: %v", err)
		return nil, apierror.InternalServerError
	}
	return types, nil
}

func (s *DefaultCaseService) Counties() ([]string, apierror.ErrorResponse) {
	counties, err := s.Repo.DistinctCounties()
	if err != nil {
		log.Errorf("failed to fetch counties: %v", err)
		return nil, apierror.InternalServerError
	}
	return counties, nil
}

// filterFromRequest converts pre-validated query fields into a repository
// filter, parsing the date strings.
func filterFromRequest(schemeType, county, status string, minAmount, maxAmount *float64,
	startDate, endDate string) (*repository.CaseFilter, apierror.ErrorResponse) {

	start, err := utils.ParseDate(startDate)
	if err != nil {
		return nil, apierror.NewInvalidParamTypeError("start_date", "date (2006-01-02)")
	}
	end, err := utils.ParseDate(endDate)
	if err != nil {
		return nil, apierror.NewInvalidParamTypeError("end_date", "date (2006-01-02)")
	}

	return &repository.CaseFilter{
		SchemeType: schemeType,
		County:     county,
		Status:     status,
		MinAmount:  minAmount,
		MaxAmount:  maxAmount,
		StartDate:  start,
		EndDate:    end,
	}, nil
}

func toCaseResponse(c *entity.FraudCase) *contract.CaseResponse {
	var resolved *string
	if c.DateResolved != nil {
		s := utils.FormatDate(*c.DateResolved)
		resolved = &s
	}

	return &contract.CaseResponse{
		ID:              c.ID,
		CaseNumber:      c.CaseNumber,
		Title:           c.Title,
		Description:     c.Description,
		SchemeType:      c.SchemeType,
		AmountExposed:   c.AmountExposed,
		AmountRecovered: c.AmountRecovered,
		DateFiled:       utils.FormatDate(c.DateFiled),
		DateResolved:    resolved,
		Status:          c.Status,
		County:          c.County,
		City:            c.City,
		Latitude:        c.Latitude,
		Longitude:       c.Longitude,
		SourceURL:       c.SourceURL,
		CreatedAt:       c.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}
