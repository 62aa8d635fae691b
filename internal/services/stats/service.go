package stats

import (
	"context"
	"log"

	"phishguard/internal/domain"
	"phishguard/internal/ports"
)

// Service computes dashboard counters over the whole ledger on every call.
type Service struct {
	ledger ports.LedgerRepository
}

func New(ledger ports.LedgerRepository) *Service { return &Service{ledger: ledger} }

// Compute reads every counter from one ledger snapshot, so the status counts
// always add up to Total.
func (s *Service) Compute(ctx context.Context) (domain.Stats, error) {
	out, err := s.ledger.SummarizeEntries(ctx)
	if err != nil {
		return domain.Stats{}, err
	}
	log.Printf("stats: total=%d phishing=%d suspicious=%d safe=%d", out.Total, out.Phishing, out.Suspicious, out.Safe)
	return out, nil
}
