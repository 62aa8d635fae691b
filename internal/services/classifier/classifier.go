// Package classifier maps the scorer's free-text risk reasons back onto a
// fixed set of security checks.
//
// Every check starts out satisfied. Each reason is routed to at most one
// check by keyword, and the last reason routed to a check decides whether it
// passes. Reasons that match no check are dropped.
package classifier

import (
	"regexp"
	"strings"

	"phishguard/internal/domain"
)

type CheckID string

const (
	CheckProtocol   CheckID = "protocol"
	CheckTLD        CheckID = "tld"
	CheckSubdomain  CheckID = "subdomain"
	CheckKeywords   CheckID = "keywords"
	CheckCharacters CheckID = "characters"
	CheckIPAddress  CheckID = "ipAddress"
	CheckLength     CheckID = "length"
)

// Checks lists every check in display order.
var Checks = []CheckID{CheckProtocol, CheckTLD, CheckSubdomain, CheckKeywords, CheckCharacters, CheckIPAddress, CheckLength}

type CheckVerdict struct {
	Satisfied      bool
	MatchedReasons []string
}

var (
	positiveMarkers = []string{"[+]"}
	negativeMarkers = []string{"→", "[!]"}
	severityMarkers = []string{"[high risk]", "[warn]", "critical", "🚫"}

	ipWord = regexp.MustCompile(`\bip\b`)
)

type route struct {
	check    CheckID
	keywords []string
	match    func(lower string) bool
}

// routes are tried in order; the first match wins.
var routes = []route{
	{check: CheckProtocol, keywords: []string{"protocol", "https", "ssl"}},
	{check: CheckTLD, keywords: []string{"tld", "top level domain", "top-level domain"}},
	{check: CheckSubdomain, keywords: []string{"subdomain"}},
	{check: CheckKeywords, keywords: []string{"keyword"}},
	{check: CheckCharacters, keywords: []string{"character", "unsafe"}},
	{check: CheckIPAddress, keywords: []string{"ip address", "ip-address", "domain name"}, match: ipWord.MatchString},
	{check: CheckLength, keywords: []string{"length"}},
}

func (r route) matches(lower string) bool {
	if containsAny(lower, r.keywords) {
		return true
	}
	return r.match != nil && r.match(lower)
}

// evidence holds the markers found on one reason.
type evidence struct {
	lower    string
	positive bool
	negative bool
	severe   bool
}

func readEvidence(reason string) evidence {
	lower := strings.ToLower(reason)
	return evidence{
		lower:    lower,
		positive: containsAny(lower, positiveMarkers),
		negative: containsAny(lower, negativeMarkers),
		severe:   containsAny(lower, severityMarkers),
	}
}

// passes applies the generic polarity rule: any negative or severity marker
// fails, a positive marker passes, an unmarked reason fails.
func (e evidence) passes() bool {
	if e.negative || e.severe {
		return false
	}
	return e.positive
}

func (e evidence) satisfies(check CheckID) bool {
	switch check {
	case CheckProtocol:
		if strings.Contains(e.lower, "invalid") {
			return false
		}
		return e.passes()
	case CheckIPAddress:
		if e.positive {
			return true
		}
		if e.severe && strings.Contains(e.lower, "ip address") {
			return false
		}
		return e.passes()
	default:
		if e.positive {
			return true
		}
		return e.passes()
	}
}

// Route returns the check a reason belongs to.
func Route(reason string) (CheckID, bool) {
	lower := strings.ToLower(reason)
	for _, r := range routes {
		if r.matches(lower) {
			return r.check, true
		}
	}
	return "", false
}

// Classify reconstructs per-check verdicts from the reasons. status plays no
// part in the per-check result; see BannerFor.
func Classify(reasons []string, status domain.Status) map[CheckID]CheckVerdict {
	out := make(map[CheckID]CheckVerdict, len(Checks))
	for _, id := range Checks {
		out[id] = CheckVerdict{Satisfied: true, MatchedReasons: []string{}}
	}
	for _, reason := range reasons {
		check, ok := Route(reason)
		if !ok {
			continue
		}
		v := out[check]
		v.Satisfied = readEvidence(reason).satisfies(check)
		v.MatchedReasons = append(v.MatchedReasons, reason)
		out[check] = v
	}
	return out
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
