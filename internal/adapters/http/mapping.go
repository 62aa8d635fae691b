package httpadapter

import (
	api "phishguard/internal/api"
	"phishguard/internal/domain"
)

func page(limit, offset *int) domain.Page {
	var p domain.Page
	if limit != nil {
		p.Limit = *limit
	}
	if offset != nil {
		p.Offset = *offset
	}
	return p
}

// reasons never returns nil so lists encode as [] rather than null.
func reasons(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}

func toVerdict(v domain.Verdict) api.Verdict {
	return api.Verdict{
		Url:          v.URL,
		RiskScore:    v.RiskScore,
		Status:       api.Status(v.Status),
		RiskLabel:    v.RiskLabel,
		ResponseTime: v.ResponseTime,
		RiskReasons:  reasons(v.RiskReasons),
	}
}

func toEntries(entries []domain.LedgerEntry) []api.HistoryEntry {
	out := make([]api.HistoryEntry, 0, len(entries))
	for _, e := range entries {
		v := e.Verdict
		out = append(out, api.HistoryEntry{
			Id:           e.ID,
			Url:          v.URL,
			Domain:       e.Domain,
			RiskScore:    v.RiskScore,
			Status:       api.Status(v.Status),
			RiskLabel:    v.RiskLabel,
			ResponseTime: v.ResponseTime,
			RiskReasons:  reasons(v.RiskReasons),
			Timestamp:    e.Timestamp,
		})
	}
	return out
}
