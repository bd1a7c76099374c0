package service

import (
	"califraud/cmd/internal/contract"
	"califraud/cmd/internal/utils/apierror"

	"github.com/labstack/gommon/log"
)

type Seeder interface {
	Seed(force bool) (total int64, loaded bool, err error)
}

// DefaultSeedService exposes the bulk loader behind the admin trigger.
// Seeding is an operational action: it holds no lock, and a reseed racing
// with query traffic can transiently expose a partially loaded dataset.
type DefaultSeedService struct {
	Seeder Seeder
}

func NewSeedService(seeder Seeder) *DefaultSeedService {
	return &DefaultSeedService{Seeder: seeder}
}

func (s *DefaultSeedService) Seed(req *contract.SeedRequest) (*contract.SeedResponse, apierror.ErrorResponse) {
	total, loaded, err := s.Seeder.Seed(req.Force)
	if err != nil {
		log.Errorf("seed failed: %v", err)
		return nil, apierror.InternalServerError
	}
	return &contract.SeedResponse{
		Seeded: loaded,
		Total:  total,
	}, nil
}
