package contract

// AnalyticsRequest reuses the case filter fields that make sense for
// aggregation endpoints.
type AnalyticsRequest struct {
	SchemeType string `query:"scheme_type" validate:"omitempty,max=50"`
	County     string `query:"county" validate:"omitempty,max=50"`
	StartDate  string `query:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate    string `query:"end_date" validate:"omitempty,datetime=2006-01-02"`
}

type SchemeBreakdownEntry struct {
	SchemeType string  `json:"scheme_type"`
	Count      int64   `json:"count"`
	Amount     float64 `json:"amount"`
}

type SummaryResponse struct {
	TotalCases      int64                  `json:"total_cases"`
	TotalExposed    float64                `json:"total_exposed"`
	TotalRecovered  float64                `json:"total_recovered"`
	AverageAmount   float64                `json:"average_amount"`
	RecoveryRate    float64                `json:"recovery_rate"`
	SchemeBreakdown []SchemeBreakdownEntry `json:"scheme_breakdown"`
}

type HeatmapEntry struct {
	County       string  `json:"county"`
	CaseCount    int64   `json:"case_count"`
	TotalExposed float64 `json:"total_exposed"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
}

type TimelinePoint struct {
	Year         int     `json:"year"`
	Month        int     `json:"month"`
	Period       string  `json:"period"`
	CaseCount    int64   `json:"case_count"`
	TotalExposed float64 `json:"total_exposed"`
}
