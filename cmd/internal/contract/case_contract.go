package contract

// DefaultPageSize caps unqualified listings; MaxPageSize is the hard
// ceiling a client can request.
const (
	DefaultPageSize = 100
	MaxPageSize     = 1000
)

// CaseListRequest carries the shared filter set. Dates arrive as
// YYYY-MM-DD strings and are parsed in the service layer.
type CaseListRequest struct {
	SchemeType string   `query:"scheme_type" validate:"omitempty,max=50"`
	County     string   `query:"county" validate:"omitempty,max=50"`
	Status     string   `query:"status" validate:"omitempty,oneof=open under_investigation charged settled convicted dismissed"`
	MinAmount  *float64 `query:"min_amount" validate:"omitempty,gte=0"`
	MaxAmount  *float64 `query:"max_amount" validate:"omitempty,gte=0"`
	StartDate  string   `query:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate    string   `query:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Limit      int      `query:"limit" validate:"omitempty,min=1,max=1000"`
	Offset     int      `query:"offset" validate:"omitempty,min=0"`
}

type CaseResponse struct {
	ID              int64   `json:"id"`
	CaseNumber      string  `json:"case_number"`
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	SchemeType      string  `json:"scheme_type"`
	AmountExposed   float64 `json:"amount_exposed"`
	AmountRecovered float64 `json:"amount_recovered"`
	DateFiled       string  `json:"date_filed"`
	DateResolved    *string `json:"date_resolved"`
	Status          string  `json:"status"`
	County          string  `json:"county"`
	City            string  `json:"city"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
	SourceURL       string  `json:"source_url"`
	CreatedAt       string  `json:"created_at"`
}

type CaseListResponse struct {
	Total  int64           `json:"total"`
	Cases  []*CaseResponse `json:"cases"`
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
}
