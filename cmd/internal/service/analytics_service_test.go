package service

import (
	"testing"

	"califraud/cmd/internal/contract"
	"califraud/cmd/internal/domain/sqlite/repository"

	"github.com/go-playground/validator/v10"
)

type fakeAnalyticsRepo struct {
	summaryCalls  int
	timelineCalls int
	summary       repository.SummaryRow
	schemes       []repository.SchemeRow
	timeline      []repository.TimelineRow
}

func (f *fakeAnalyticsRepo) Summary(repository.CaseFilter) (*repository.SummaryRow, []repository.SchemeRow, error) {
	f.summaryCalls++
	return &f.summary, f.schemes, nil
}

func (f *fakeAnalyticsRepo) CountyAggregates(repository.CaseFilter) ([]repository.CountyRow, error) {
	return nil, nil
}

func (f *fakeAnalyticsRepo) Timeline(repository.CaseFilter) ([]repository.TimelineRow, error) {
	f.timelineCalls++
	return f.timeline, nil
}

func TestSummaryRecoveryRate(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		summary: repository.SummaryRow{TotalCases: 10, TotalExposed: 1000, TotalRecovered: 250},
	}
	svc := NewAnalyticsService(repo, validator.New())

	resp, apierr := svc.Summary(&contract.AnalyticsRequest{})
	if apierr != nil {
		t.Fatalf("unexpected error: %+v", apierr)
	}
	if resp.RecoveryRate != 25 {
		t.Errorf("recovery rate %f, want 25", resp.RecoveryRate)
	}
}

func TestSummaryZeroExposure(t *testing.T) {
	repo := &fakeAnalyticsRepo{}
	svc := NewAnalyticsService(repo, validator.New())

	resp, apierr := svc.Summary(&contract.AnalyticsRequest{})
	if apierr != nil {
		t.Fatalf("unexpected error: %+v", apierr)
	}
	if resp.RecoveryRate != 0 {
		t.Errorf("recovery rate %f for an empty dataset, want 0", resp.RecoveryRate)
	}
}

func TestSummaryCaches(t *testing.T) {
	repo := &fakeAnalyticsRepo{}
	svc := NewAnalyticsService(repo, validator.New())

	for i := 0; i < 3; i++ {
		if _, apierr := svc.Summary(&contract.AnalyticsRequest{County: "Fresno"}); apierr != nil {
			t.Fatalf("unexpected error: %+v", apierr)
		}
	}
	if repo.summaryCalls != 1 {
		t.Errorf("repository hit %d times, want 1 (cached)", repo.summaryCalls)
	}

	// A different filter is a different cache entry.
	if _, apierr := svc.Summary(&contract.AnalyticsRequest{County: "Kern"}); apierr != nil {
		t.Fatalf("unexpected error: %+v", apierr)
	}
	if repo.summaryCalls != 2 {
		t.Errorf("repository hit %d times after new filter, want 2", repo.summaryCalls)
	}
}

func TestTimelinePeriodFormat(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		timeline: []repository.TimelineRow{
			{Year: 2021, Month: 3, CaseCount: 5, TotalExposed: 100},
			{Year: 2025, Month: 11, CaseCount: 2, TotalExposed: 50},
		},
	}
	svc := NewAnalyticsService(repo, validator.New())

	points, apierr := svc.Timeline(&contract.AnalyticsRequest{})
	if apierr != nil {
		t.Fatalf("unexpected error: %+v", apierr)
	}
	if points[0].Period != "2021-03" || points[1].Period != "2025-11" {
		t.Errorf("periods = %q, %q", points[0].Period, points[1].Period)
	}
}

func TestAnalyticsValidation(t *testing.T) {
	svc := NewAnalyticsService(&fakeAnalyticsRepo{}, validator.New())

	_, apierr := svc.Summary(&contract.AnalyticsRequest{StartDate: "not-a-date"})
	if apierr == nil || apierr.Code() != 400 {
		t.Errorf("error = %+v, want 400", apierr)
	}
}
