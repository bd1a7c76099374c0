package repository

import (
	"errors"
	"time"

	"califraud/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

// CaseFilter narrows case queries. Nil/empty fields are not applied.
type CaseFilter struct {
	SchemeType string
	County     string
	Status     string
	MinAmount  *float64
	MaxAmount  *float64
	StartDate  *time.Time
	EndDate    *time.Time
}

// Aggregate rows scanned straight out of GROUP BY queries.
type SummaryRow struct {
	TotalCases     int64
	TotalExposed   float64
	TotalRecovered float64
	AverageAmount  float64
}

type SchemeRow struct {
	SchemeType   string
	CaseCount    int64
	TotalExposed float64
}

type CountyRow struct {
	County       string
	CaseCount    int64
	TotalExposed float64
	Lat          float64
	Lng          float64
}

type TimelineRow struct {
	Year         int
	Month        int
	CaseCount    int64
	TotalExposed float64
}

type DefaultCaseRepository struct {
	db *gorm.DB
}

func NewCaseRepository(db *gorm.DB) *DefaultCaseRepository {
	return &DefaultCaseRepository{db: db}
}

func (d *DefaultCaseRepository) filtered(f CaseFilter) *gorm.DB {
	q := d.db.Model(&entity.FraudCase{})
	if f.SchemeType != "" {
		q = q.Where("scheme_type = ?", f.SchemeType)
	}
	if f.County != "" {
		q = q.Where("county = ?", f.County)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.MinAmount != nil {
		q = q.Where("amount_exposed >= ?", *f.MinAmount)
	}
	if f.MaxAmount != nil {
		q = q.Where("amount_exposed <= ?", *f.MaxAmount)
	}
	if f.StartDate != nil {
		q = q.Where("date_filed >= ?", *f.StartDate)
	}
	if f.EndDate != nil {
		q = q.Where("date_filed <= ?", *f.EndDate)
	}
	return q
}

// FindPage returns one page of matching cases, newest filings first, plus
// the unpaginated match count.
func (d *DefaultCaseRepository) FindPage(f CaseFilter, limit, offset int) ([]*entity.FraudCase, int64, error) {
	var total int64
	if err := d.filtered(f).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var cases []*entity.FraudCase
	err := d.filtered(f).
		Order("date_filed DESC").
		Limit(limit).
		Offset(offset).
		Find(&cases).Error
	if err != nil {
		return nil, 0, err
	}
	return cases, total, nil
}

func (d *DefaultCaseRepository) FindByID(id int64) (*entity.FraudCase, error) {
	var c entity.FraudCase
	err := d.db.First(&c, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (d *DefaultCaseRepository) FindAll(f CaseFilter) ([]*entity.FraudCase, error) {
	var cases []*entity.FraudCase
	err := d.filtered(f).Find(&cases).Error
	if err != nil {
		return nil, err
	}
	return cases, nil
}

func (d *DefaultCaseRepository) DistinctSchemeTypes() ([]string, error) {
	return d.distinctColumn("scheme_type")
}

func (d *DefaultCaseRepository) DistinctCounties() ([]string, error) {
	return d.distinctColumn("county")
}

func (d *DefaultCaseRepository) distinctColumn(column string) ([]string, error) {
	var values []string
	err := d.db.Model(&entity.FraudCase{}).
		Distinct(column).
		Where(column+" <> ''").
		Order(column).
		Pluck(column, &values).Error
	if err != nil {
		return nil, err
	}
	return values, nil
}

func (d *DefaultCaseRepository) Count() (int64, error) {
	var total int64
	err := d.db.Model(&entity.FraudCase{}).Count(&total).Error
	return total, err
}

// DeleteAll clears the table. Used only by forced reseeds.
func (d *DefaultCaseRepository) DeleteAll() error {
	return d.db.Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&entity.FraudCase{}).Error
}

// InsertBatch appends one batch of cases in a single implicit transaction.
// The loader owns batch sizing; each call here is one commit boundary.
func (d *DefaultCaseRepository) InsertBatch(cases []*entity.FraudCase) error {
	return d.db.Create(cases).Error
}

func (d *DefaultCaseRepository) Summary(f CaseFilter) (*SummaryRow, []SchemeRow, error) {
	var row SummaryRow
	err := d.filtered(f).
		Select("COUNT(*) AS total_cases, " +
			"COALESCE(SUM(amount_exposed), 0) AS total_exposed, " +
			"COALESCE(SUM(amount_recovered), 0) AS total_recovered, " +
			"COALESCE(AVG(amount_exposed), 0) AS average_amount").
		Scan(&row).Error
	if err != nil {
		return nil, nil, err
	}

	var breakdown []SchemeRow
	err = d.filtered(f).
		Select("scheme_type, COUNT(*) AS case_count, COALESCE(SUM(amount_exposed), 0) AS total_exposed").
		Where("scheme_type <> ''").
		Group("scheme_type").
		Order("total_exposed DESC").
		Scan(&breakdown).Error
	if err != nil {
		return nil, nil, err
	}
	return &row, breakdown, nil
}

// CountyAggregates groups matching cases by county with averaged pin
// coordinates for heatmap placement.
func (d *DefaultCaseRepository) CountyAggregates(f CaseFilter) ([]CountyRow, error) {
	var rows []CountyRow
	err := d.filtered(f).
		Select("county, COUNT(*) AS case_count, " +
			"COALESCE(SUM(amount_exposed), 0) AS total_exposed, " +
			"AVG(latitude) AS lat, AVG(longitude) AS lng").
		Where("county <> ''").
		Group("county").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Timeline buckets matching cases by filing year and month. Dates are
// stored as ISO-8601 text in sqlite, so strftime can slice them directly.
func (d *DefaultCaseRepository) Timeline(f CaseFilter) ([]TimelineRow, error) {
	var rows []TimelineRow
	err := d.filtered(f).
		Select("CAST(strftime('%Y', date_filed) AS INTEGER) AS year, " +
			"CAST(strftime('%m', date_filed) AS INTEGER) AS month, " +
			"COUNT(*) AS case_count, " +
			"COALESCE(SUM(amount_exposed), 0) AS total_exposed").
		Group("year, month").
		Order("year, month").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
