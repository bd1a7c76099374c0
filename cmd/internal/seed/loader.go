package seed

import (
	"fmt"

	"califraud/cmd/internal/domain/entity"
	"califraud/cmd/internal/metrics"

	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
)

// DefaultBatchSize is the number of records committed per insert batch.
const DefaultBatchSize = 5000

// DefaultCaseCount is the number of synthetic cases a full load produces,
// on top of the curated mega cases.
const DefaultCaseCount = 50000

// CaseStore is the storage contract the loader needs: count what is there,
// clear it, and append batches.
type CaseStore interface {
	Count() (int64, error)
	DeleteAll() error
	InsertBatch(cases []*entity.FraudCase) error
}

// Seeder populates the store with curated + synthesized cases.
type Seeder struct {
	store     CaseStore
	gen       *Generator
	count     int
	batchSize int
}

func NewSeeder(store CaseStore, gen *Generator, count int) *Seeder {
	if count <= 0 {
		count = DefaultCaseCount
	}
	return &Seeder{
		store:     store,
		gen:       gen,
		count:     count,
		batchSize: DefaultBatchSize,
	}
}

// Seed loads the dataset. If the store already holds records and force is
// false, nothing happens: the existing count is returned with loaded set
// to false. With force, existing records are cleared first.
//
// Insertion commits one batch at a time: a failure partway through leaves
// the already-committed prefix in place. That trade-off buys insert
// throughput on large loads; the count inserted so far is returned
// alongside the error.
func (s *Seeder) Seed(force bool) (int64, bool, error) {
	runID := uuid.NewString()

	existing, err := s.store.Count()
	if err != nil {
		metrics.SeedRunsTotal.WithLabelValues("failed").Inc()
		return 0, false, fmt.Errorf("seed %s: count existing: %w", runID, err)
	}

	if existing > 0 && !force {
		log.Infof("Seed %s: store already has %d cases, skipping (use force to reseed)", runID, existing)
		metrics.SeedRunsTotal.WithLabelValues("skipped").Inc()
		return existing, false, nil
	}

	if existing > 0 {
		log.Infof("Seed %s: clearing %d existing cases", runID, existing)
		if err := s.store.DeleteAll(); err != nil {
			metrics.SeedRunsTotal.WithLabelValues("failed").Inc()
			return 0, false, fmt.Errorf("seed %s: clear existing: %w", runID, err)
		}
	}

	log.Infof("Seed %s: generating %d synthetic cases plus %d curated mega cases", runID, s.count, MegaCaseCount())
	all := s.gen.MegaCases()
	regular, err := s.gen.GenerateCases(s.count)
	if err != nil {
		metrics.SeedRunsTotal.WithLabelValues("failed").Inc()
		return 0, false, fmt.Errorf("seed %s: generate: %w", runID, err)
	}
	all = append(all, regular...)

	var inserted int64
	batches := (len(all) + s.batchSize - 1) / s.batchSize
	for i := 0; i < len(all); i += s.batchSize {
		end := i + s.batchSize
		if end > len(all) {
			end = len(all)
		}
		batch := all[i:end]
		if err := s.store.InsertBatch(batch); err != nil {
			metrics.SeedRunsTotal.WithLabelValues("failed").Inc()
			return inserted, true, fmt.Errorf("seed %s: insert batch %d/%d: %w", runID, i/s.batchSize+1, batches, err)
		}
		inserted += int64(len(batch))
		metrics.SeedBatchesTotal.Inc()
		metrics.SeedCasesInsertedTotal.Add(float64(len(batch)))
		log.Infof("Seed %s: inserted batch %d/%d", runID, i/s.batchSize+1, batches)
	}

	log.Infof("Seed %s: complete, %d cases loaded", runID, inserted)
	metrics.SeedRunsTotal.WithLabelValues("loaded").Inc()
	return inserted, true, nil
}
