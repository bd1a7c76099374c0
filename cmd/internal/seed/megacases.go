package seed

import (
	"fmt"
	"time"

	"califraud/cmd/internal/domain/entity"
)

// megaCase is one hand-curated headline case. These are injected verbatim
// so the dataset always contains the well-known outliers that aggregate
// statistics and map clusters are expected to show.
type megaCase struct {
	Title      string
	SchemeType string
	Amount     float64
	County     string
	City       string
	Filed      time.Time
	Status     string
}

// Finer jitter than regular cases since these represent specific known
// incidents.
const megaJitterDegrees = 0.05

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func megaCases() []megaCase {
	return []megaCase{
		// EDD mega cases
		{"EDD Pandemic Fraud - Multi-State Criminal Enterprise", "edd_unemployment", 250000000,
			"Los Angeles", "Los Angeles", day(2021, time.March, 15), entity.StatusConvicted},
		{"California Prison EDD Fraud Ring", "edd_unemployment", 140000000,
			"Sacramento", "Sacramento", day(2021, time.January, 20), entity.StatusConvicted},
		{"Romanian Crime Ring EDD Scheme", "edd_unemployment", 85000000,
			"Orange", "Irvine", day(2021, time.June, 10), entity.StatusConvicted},
		{"Death Row Inmates EDD Claims Fraud", "edd_unemployment", 35000000,
			"San Quentin", "San Quentin", day(2020, time.November, 5), entity.StatusUnderInvestigation},
		// Homeless program mega fraud
		{"LA Homeless Housing Authority Embezzlement", "homeless_program", 95000000,
			"Los Angeles", "Los Angeles", day(2025, time.August, 12), entity.StatusUnderInvestigation},
		{"Project Homekey Contractor Fraud Network", "homeless_program", 67000000,
			"Los Angeles", "Los Angeles", day(2025, time.November, 3), entity.StatusCharged},
		{"SF Navigation Center Billing Fraud", "homeless_program", 42000000,
			"San Francisco", "San Francisco", day(2025, time.June, 22), entity.StatusUnderInvestigation},
		{"Bay Area Homeless Services Corruption", "homeless_program", 38000000,
			"Alameda", "Oakland", day(2026, time.January, 8), entity.StatusCharged},
		// 2026 exposé wave
		{"Statewide Homeless Fund Embezzlement Network", "homeless_program", 125000000,
			"Los Angeles", "Los Angeles", day(2026, time.January, 15), entity.StatusUnderInvestigation},
		{"CalAIM Healthcare Transition Fraud Ring", "medi_cal", 78000000,
			"San Diego", "San Diego", day(2026, time.January, 22), entity.StatusCharged},
		{"Central Valley Medi-Cal Billing Conspiracy", "medi_cal", 56000000,
			"Fresno", "Fresno", day(2025, time.December, 5), entity.StatusUnderInvestigation},
		// PPP mega cases
		{"LA Tech Company PPP Fraud Network", "ppp_fraud", 45000000,
			"Los Angeles", "Santa Monica", day(2021, time.August, 15), entity.StatusConvicted},
		{"Bay Area PPP Loan Mill Operation", "ppp_fraud", 38000000,
			"Santa Clara", "San Jose", day(2022, time.March, 20), entity.StatusSettled},
		// Healthcare mega cases
		{"Southern California Telemedicine Fraud Empire", "telemedicine", 180000000,
			"Orange", "Anaheim", day(2021, time.May, 8), entity.StatusConvicted},
		{"Inland Empire Hospice Fraud Ring", "hospice", 95000000,
			"Riverside", "Riverside", day(2025, time.April, 18), entity.StatusCharged},
		{"LA Sober Living Patient Brokering Network", "substance_abuse", 175000000,
			"Los Angeles", "Los Angeles", day(2024, time.July, 12), entity.StatusConvicted},
		// Contract fraud
		{"California High-Speed Rail Contract Fraud", "contract_fraud", 220000000,
			"Sacramento", "Sacramento", day(2025, time.September, 30), entity.StatusUnderInvestigation},
		{"LA Metro Contractor Kickback Scheme", "contract_fraud", 85000000,
			"Los Angeles", "Los Angeles", day(2025, time.May, 14), entity.StatusCharged},
	}
}

// MegaCaseCount reports how many curated headline cases every load
// contributes on top of the synthetic count.
func MegaCaseCount() int {
	return len(megaCases())
}

// MegaCases derives full records from the curated list: jittered
// coordinates, a resolution date and recovered amount for settled or
// convicted cases, and a distinct CA-MEGA numbering so curated and
// synthetic case numbers can never collide.
func (g *Generator) MegaCases() []*entity.FraudCase {
	curated := megaCases()
	cases := make([]*entity.FraudCase, 0, len(curated))

	for i, mc := range curated {
		centroid, ok := g.tables.County(mc.County)
		if !ok {
			// A few headline locations (San Quentin) are not counties;
			// anchor their pins near Los Angeles like the source data does.
			centroid, _ = g.tables.County("Los Angeles")
		}
		lat := centroid.Lat + jitter(g.rand, megaJitterDegrees)
		lng := centroid.Lng + jitter(g.rand, megaJitterDegrees)

		var resolved *time.Time
		recovered := 0.0
		if mc.Status == entity.StatusSettled || mc.Status == entity.StatusConvicted {
			d := mc.Filed.AddDate(0, 0, randBetween(g.rand, 180, 540))
			if d.After(g.now) {
				d = g.now.AddDate(0, 0, -randBetween(g.rand, 30, 90))
			}
			resolved = &d
			recovered = mc.Amount * (0.1 + g.rand.Float64()*0.4)
		}

		cases = append(cases, &entity.FraudCase{
			CaseNumber: fmt.Sprintf("CA-MEGA-%d-%04d", mc.Filed.Year(), i+1),
			Title:      mc.Title,
			Description: fmt.Sprintf("Major fraud investigation: %s. "+
				"Alleged fraudulent activity totaling $%s. "+
				"This case represents one of the largest fraud schemes in California history.",
				mc.Title, money(mc.Amount)),
			SchemeType:      mc.SchemeType,
			AmountExposed:   mc.Amount,
			AmountRecovered: recovered,
			DateFiled:       mc.Filed,
			DateResolved:    resolved,
			Status:          mc.Status,
			County:          mc.County,
			City:            mc.City,
			Latitude:        lat,
			Longitude:       lng,
			SourceURL:       fmt.Sprintf("https://oig.hhs.gov/fraud/enforcement/%d/mega-%04d", mc.Filed.Year(), i+1),
		})
	}
	return cases
}
