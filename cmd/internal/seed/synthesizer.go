package seed

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"califraud/cmd/internal/domain/entity"

	"github.com/dustin/go-humanize"
	"github.com/labstack/gommon/log"
)

// Global filing-date window for synthetic cases.
var (
	windowStart = time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
	windowEnd   = time.Date(2026, time.February, 2, 0, 0, 0, 0, time.UTC)
)

// Tuning knobs for the synthesizer, matching the observed shape of real
// enforcement data.
const (
	outlierAmountProb  = 0.02 // chance a case blows past the scheme's usual range
	recoveryProb       = 0.6  // chance any money was clawed back at all
	minRecoveryRate    = 0.05
	maxRecoveryRate    = 0.65
	coordJitterDegrees = 0.2
	minResolveDays     = 90
	maxResolveDays     = 730
)

// Status weights by case age. Young cases cannot plausibly be settled or
// convicted yet, so the vectors shift mass toward early pipeline stages.
var (
	youngStatusWeights = []int{60, 40} // over {open, under_investigation}
	midStatusWeights   = []int{15, 35, 20, 15, 10, 5}
)

// Statuses a case falls back to when a sampled resolution date would land
// in the future.
var nonTerminalStatuses = []string{
	entity.StatusOpen,
	entity.StatusUnderInvestigation,
	entity.StatusCharged,
}

// Generator synthesizes internally-consistent fraud cases from the
// reference tables. All randomness flows through the injected source, so
// two generators built with the same seed produce identical output.
type Generator struct {
	tables *Tables
	rand   *rand.Rand
	now    time.Time
}

// NewGenerator validates the reference tables and returns a generator.
// The now argument anchors every "case age" and "resolution in the
// future" decision; pass a fixed value for reproducible output.
func NewGenerator(tables *Tables, r *rand.Rand, now time.Time) (*Generator, error) {
	if err := tables.Validate(); err != nil {
		return nil, fmt.Errorf("seed: reference tables: %w", err)
	}
	if now.IsZero() {
		now = time.Now().UTC()
	}
	return &Generator{
		tables: tables,
		rand:   r,
		now:    now.Truncate(24 * time.Hour),
	}, nil
}

// Synthesize builds the case for one sequence index. It never fails:
// inconsistent intermediate states (a resolution date past today) are
// repaired in place rather than rejected.
func (g *Generator) Synthesize(seq int) (*entity.FraudCase, error) {
	county, err := WeightedChoice(g.rand, g.tables.Counties, func(c CountyRef) int { return c.Weight })
	if err != nil {
		return nil, err
	}
	scheme, err := WeightedChoice(g.rand, g.tables.Schemes, func(s SchemeRef) int { return s.Weight })
	if err != nil {
		return nil, err
	}
	city := g.pickCity(county.Name)

	amountExposed := g.pickAmount(scheme)

	// Recovery rate is drawn unconditionally so the draw sequence stays
	// stable whether or not anything was recovered.
	recoveryRate := minRecoveryRate + g.rand.Float64()*(maxRecoveryRate-minRecoveryRate)
	amountRecovered := 0.0
	if g.rand.Float64() < recoveryProb {
		amountRecovered = amountExposed * recoveryRate
	}

	filed := dateWeighted(g.rand, windowStart, windowEnd, scheme.PeakYears)

	status, err := g.pickStatus(filed)
	if err != nil {
		return nil, err
	}

	var resolved *time.Time
	if entity.IsTerminalStatus(status) {
		d := filed.AddDate(0, 0, randBetween(g.rand, minResolveDays, maxResolveDays))
		if d.After(g.now) {
			// Consistency repair: the case cannot have closed yet, so it
			// goes back to a non-terminal status instead.
			status = nonTerminalStatuses[g.rand.Intn(len(nonTerminalStatuses))]
		} else {
			resolved = &d
		}
	}

	lat := county.Lat + jitter(g.rand, coordJitterDegrees)
	lng := county.Lng + jitter(g.rand, coordJitterDegrees)

	title := g.fillTitle(scheme.Type, city, county.Name)
	perpetrator := g.tables.PerpetratorTypes[g.rand.Intn(len(g.tables.PerpetratorTypes))]

	return &entity.FraudCase{
		CaseNumber: fmt.Sprintf("CA-%d-%06d", filed.Year(), seq+1),
		Title:      title,
		Description: fmt.Sprintf("%s investigation in %s, %s County. Perpetrator type: %s. "+
			"Alleged fraudulent activity totaling $%s.",
			titleWords(scheme.Description), city, county.Name, perpetrator, money(amountExposed)),
		SchemeType:      scheme.Type,
		AmountExposed:   amountExposed,
		AmountRecovered: amountRecovered,
		DateFiled:       filed,
		DateResolved:    resolved,
		Status:          status,
		County:          county.Name,
		City:            city,
		Latitude:        lat,
		Longitude:       lng,
		SourceURL:       fmt.Sprintf("https://oig.ca.gov/fraud/%d/%06d", filed.Year(), seq+1),
	}, nil
}

// GenerateCases synthesizes count cases with consecutive sequence numbers.
func (g *Generator) GenerateCases(count int) ([]*entity.FraudCase, error) {
	cases := make([]*entity.FraudCase, 0, count)
	for i := 0; i < count; i++ {
		c, err := g.Synthesize(i)
		if err != nil {
			return nil, err
		}
		cases = append(cases, c)

		if (i+1)%10000 == 0 {
			log.Infof("Generated %d cases...", i+1)
		}
	}
	return cases, nil
}

func (g *Generator) pickCity(county string) string {
	cities := g.tables.Cities[county]
	if len(cities) == 0 {
		return county
	}
	return cities[g.rand.Intn(len(cities))]
}

func (g *Generator) pickAmount(scheme SchemeRef) float64 {
	if g.rand.Float64() < outlierAmountProb {
		return scheme.MaxAmount*0.5 + g.rand.Float64()*(scheme.MaxAmount*2-scheme.MaxAmount*0.5)
	}
	return scheme.MinAmount + g.rand.Float64()*(scheme.MaxAmount-scheme.MinAmount)
}

func (g *Generator) pickStatus(filed time.Time) (string, error) {
	daysOld := int(g.now.Sub(filed).Hours() / 24)

	switch {
	case daysOld < 90:
		young := []string{entity.StatusOpen, entity.StatusUnderInvestigation}
		return weightedStatus(g.rand, young, youngStatusWeights)
	case daysOld < 365:
		return weightedStatus(g.rand, g.tables.Statuses, midStatusWeights)
	default:
		return weightedStatus(g.rand, g.tables.Statuses, g.tables.StatusWeights)
	}
}

func weightedStatus(r *rand.Rand, statuses []string, weights []int) (string, error) {
	idx := make([]int, len(statuses))
	for i := range idx {
		idx[i] = i
	}
	i, err := WeightedChoice(r, idx, func(i int) int { return weights[i] })
	if err != nil {
		return "", err
	}
	return statuses[i], nil
}

func (g *Generator) fillTitle(schemeType, city, county string) string {
	templates := g.tables.TitleTemplates[schemeType]
	if len(templates) == 0 {
		templates = []string{schemeType + " Fraud - {city}"}
	}
	tmpl := templates[g.rand.Intn(len(templates))]
	return strings.NewReplacer("{city}", city, "{county}", county).Replace(tmpl)
}

func money(amount float64) string {
	return humanize.Comma(int64(math.Round(amount)))
}

// titleWords uppercases the first letter of each space-separated word.
func titleWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}
