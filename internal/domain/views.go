package domain

// HistoryGroup is every ledger entry sharing one exact URL string, newest first.
type HistoryGroup struct {
	URL     string
	Domain  string
	Entries []LedgerEntry
}

// Stats summarizes the ledger.
type Stats struct {
	Total           int
	Phishing        int
	Suspicious      int
	Safe            int
	AvgResponseTime float64
}

func (s Stats) Count(status Status) int {
	switch status {
	case StatusPhishing:
		return s.Phishing
	case StatusSuspicious:
		return s.Suspicious
	case StatusSafe:
		return s.Safe
	}
	return 0
}

// Ratio is count/total, or 0 on an empty ledger.
func (s Stats) Ratio(status Status) float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Count(status)) / float64(s.Total)
}
