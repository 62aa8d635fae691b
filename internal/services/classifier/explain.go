package classifier

import "phishguard/internal/domain"

type Banner string

const (
	BannerBlock   Banner = "block"
	BannerCaution Banner = "caution"
	BannerSafe    Banner = "safe"
)

// BannerFor picks the recommendation banner for a verdict status.
func BannerFor(status domain.Status) Banner {
	switch status {
	case domain.StatusPhishing:
		return BannerBlock
	case domain.StatusSuspicious:
		return BannerCaution
	default:
		return BannerSafe
	}
}

var labels = map[CheckID]string{
	CheckProtocol:   "HTTPS/SSL Encryption",
	CheckTLD:        "Legitimate Top-Level Domain",
	CheckSubdomain:  "Valid Subdomain Structure",
	CheckKeywords:   "No Phishing Keywords",
	CheckCharacters: "No Unsafe Characters",
	CheckIPAddress:  "Uses Domain Name (Not IP)",
	CheckLength:     "Normal URL Length",
}

// Label is the human-readable name of a check.
func Label(id CheckID) string { return labels[id] }

type ExplainedCheck struct {
	ID    CheckID
	Label string
	CheckVerdict
}

type Explanation struct {
	Status     domain.Status
	Banner     Banner
	IssueCount int
	Checks     []ExplainedCheck // display order
}

// Explain runs Classify and lays the result out for display.
func Explain(reasons []string, status domain.Status) Explanation {
	verdicts := Classify(reasons, status)
	out := Explanation{
		Status:     status,
		Banner:     BannerFor(status),
		IssueCount: len(reasons),
		Checks:     make([]ExplainedCheck, 0, len(Checks)),
	}
	for _, id := range Checks {
		out.Checks = append(out.Checks, ExplainedCheck{ID: id, Label: Label(id), CheckVerdict: verdicts[id]})
	}
	return out
}
