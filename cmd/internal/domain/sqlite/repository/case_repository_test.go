package repository

import (
	"path/filepath"
	"testing"
	"time"

	"califraud/cmd/internal/domain/entity"
	"califraud/cmd/internal/domain/sqlite"
)

func newTestRepo(t *testing.T) *DefaultCaseRepository {
	t.Helper()
	db, err := sqlite.Init(filepath.Join(t.TempDir(), "cases.db"))
	if err != nil {
		t.Fatalf("init sqlite: %v", err)
	}
	return NewCaseRepository(db)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func fixtureCases() []*entity.FraudCase {
	resolved := date(2023, time.June, 1)
	return []*entity.FraudCase{
		{
			CaseNumber: "CA-2021-000001", Title: "EDD Fraud - Fresno",
			SchemeType: "edd_unemployment", AmountExposed: 500000, AmountRecovered: 100000,
			DateFiled: date(2021, time.March, 10), Status: entity.StatusOpen,
			County: "Fresno", City: "Fresno", Latitude: 36.7, Longitude: -119.8,
		},
		{
			CaseNumber: "CA-2022-000002", Title: "Medi-Cal Billing - San Diego",
			SchemeType: "medi_cal", AmountExposed: 2000000, AmountRecovered: 0,
			DateFiled: date(2022, time.July, 4), Status: entity.StatusCharged,
			County: "San Diego", City: "San Diego", Latitude: 32.7, Longitude: -117.1,
		},
		{
			CaseNumber: "CA-2022-000003", Title: "EDD Ring - Sacramento",
			SchemeType: "edd_unemployment", AmountExposed: 1500000, AmountRecovered: 750000,
			DateFiled: date(2022, time.November, 20), DateResolved: &resolved,
			Status: entity.StatusConvicted,
			County: "Sacramento", City: "Sacramento", Latitude: 38.5, Longitude: -121.4,
		},
		{
			CaseNumber: "CA-2025-000004", Title: "Homeless Program Fraud - LA",
			SchemeType: "homeless_program", AmountExposed: 8000000, AmountRecovered: 0,
			DateFiled: date(2025, time.February, 14), Status: entity.StatusUnderInvestigation,
			County: "Los Angeles", City: "Los Angeles", Latitude: 34.0, Longitude: -118.2,
		},
	}
}

func seedRepo(t *testing.T, repo *DefaultCaseRepository) {
	t.Helper()
	if err := repo.InsertBatch(fixtureCases()); err != nil {
		t.Fatalf("insert fixtures: %v", err)
	}
}

func TestFindPageOrdersAndCounts(t *testing.T) {
	repo := newTestRepo(t)
	seedRepo(t, repo)

	cases, total, err := repo.FindPage(CaseFilter{}, 2, 0)
	if err != nil {
		t.Fatalf("FindPage: %v", err)
	}
	if total != 4 {
		t.Errorf("total %d, want 4", total)
	}
	if len(cases) != 2 {
		t.Fatalf("page size %d, want 2", len(cases))
	}
	if cases[0].CaseNumber != "CA-2025-000004" || cases[1].CaseNumber != "CA-2022-000003" {
		t.Errorf("wrong order: %s, %s", cases[0].CaseNumber, cases[1].CaseNumber)
	}
}

func TestFindPageFilters(t *testing.T) {
	repo := newTestRepo(t)
	seedRepo(t, repo)

	min := 1000000.0
	start := date(2022, time.January, 1)
	end := date(2022, time.December, 31)
	f := CaseFilter{
		SchemeType: "edd_unemployment",
		MinAmount:  &min,
		StartDate:  &start,
		EndDate:    &end,
	}

	cases, total, err := repo.FindPage(f, 10, 0)
	if err != nil {
		t.Fatalf("FindPage: %v", err)
	}
	if total != 1 || len(cases) != 1 {
		t.Fatalf("got %d cases (total %d), want exactly 1", len(cases), total)
	}
	if cases[0].CaseNumber != "CA-2022-000003" {
		t.Errorf("matched %s, want CA-2022-000003", cases[0].CaseNumber)
	}
}

func TestFindByIDMissingIsNilNil(t *testing.T) {
	repo := newTestRepo(t)
	seedRepo(t, repo)

	c, err := repo.FindByID(999999)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c != nil {
		t.Errorf("expected nil for a missing id, got %+v", c)
	}
}

func TestDistinctColumns(t *testing.T) {
	repo := newTestRepo(t)
	seedRepo(t, repo)

	schemes, err := repo.DistinctSchemeTypes()
	if err != nil {
		t.Fatalf("DistinctSchemeTypes: %v", err)
	}
	if len(schemes) != 3 || schemes[0] != "edd_unemployment" {
		t.Errorf("schemes = %v", schemes)
	}

	counties, err := repo.DistinctCounties()
	if err != nil {
		t.Fatalf("DistinctCounties: %v", err)
	}
	if len(counties) != 4 {
		t.Errorf("counties = %v", counties)
	}
}

func TestSummaryAggregates(t *testing.T) {
	repo := newTestRepo(t)
	seedRepo(t, repo)

	row, breakdown, err := repo.Summary(CaseFilter{})
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if row.TotalCases != 4 {
		t.Errorf("total cases %d, want 4", row.TotalCases)
	}
	if row.TotalExposed != 12000000 {
		t.Errorf("total exposed %f, want 12000000", row.TotalExposed)
	}
	if row.TotalRecovered != 850000 {
		t.Errorf("total recovered %f, want 850000", row.TotalRecovered)
	}
	if row.AverageAmount != 3000000 {
		t.Errorf("average %f, want 3000000", row.AverageAmount)
	}

	if len(breakdown) != 3 {
		t.Fatalf("breakdown has %d schemes, want 3", len(breakdown))
	}
	// Ordered by total exposure descending.
	if breakdown[0].SchemeType != "homeless_program" || breakdown[0].TotalExposed != 8000000 {
		t.Errorf("top scheme = %+v", breakdown[0])
	}
	if breakdown[1].SchemeType != "edd_unemployment" || breakdown[1].CaseCount != 2 {
		t.Errorf("second scheme = %+v", breakdown[1])
	}
}

func TestSummaryRespectsFilter(t *testing.T) {
	repo := newTestRepo(t)
	seedRepo(t, repo)

	row, _, err := repo.Summary(CaseFilter{SchemeType: "edd_unemployment"})
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if row.TotalCases != 2 || row.TotalExposed != 2000000 {
		t.Errorf("filtered summary = %+v", row)
	}
}

func TestCountyAggregates(t *testing.T) {
	repo := newTestRepo(t)
	seedRepo(t, repo)

	rows, err := repo.CountyAggregates(CaseFilter{})
	if err != nil {
		t.Fatalf("CountyAggregates: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("got %d county rows, want 4", len(rows))
	}
	for _, r := range rows {
		if r.County == "Sacramento" {
			if r.CaseCount != 1 || r.Lat != 38.5 || r.Lng != -121.4 {
				t.Errorf("Sacramento row = %+v", r)
			}
		}
	}
}

func TestTimelineBuckets(t *testing.T) {
	repo := newTestRepo(t)
	seedRepo(t, repo)

	rows, err := repo.Timeline(CaseFilter{})
	if err != nil {
		t.Fatalf("Timeline: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("got %d buckets, want 4", len(rows))
	}
	first := rows[0]
	if first.Year != 2021 || first.Month != 3 || first.CaseCount != 1 || first.TotalExposed != 500000 {
		t.Errorf("first bucket = %+v", first)
	}
	last := rows[len(rows)-1]
	if last.Year != 2025 || last.Month != 2 {
		t.Errorf("last bucket = %+v", last)
	}
}

func TestDeleteAllThenCount(t *testing.T) {
	repo := newTestRepo(t)
	seedRepo(t, repo)

	if err := repo.DeleteAll(); err != nil {
		t.Fatalf("DeleteAll: %v", err)
	}
	total, err := repo.Count()
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if total != 0 {
		t.Errorf("count after delete = %d", total)
	}
}
