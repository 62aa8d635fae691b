package profiles

import (
	"context"
	"fmt"

	"phishguard/internal/domain"
	"phishguard/internal/ports"
)

// Service serves the latest known state of a URL from the aggregate store.
type Service struct {
	aggregates ports.AggregateRepository
}

func New(aggregates ports.AggregateRepository) *Service { return &Service{aggregates: aggregates} }

func (s *Service) GetLatest(ctx context.Context, url string) (domain.AggregateRecord, error) {
	rec, exists, err := s.aggregates.GetAggregateByURL(ctx, url)
	if err != nil {
		return domain.AggregateRecord{}, err
	}
	if !exists {
		return domain.AggregateRecord{}, fmt.Errorf("profile %q: %w", url, domain.ErrNotFound)
	}
	return rec, nil
}
