package domain

import (
	"errors"
	"strings"
	"time"
)

// Core domain models used internally. API types are generated from OpenAPI and
// sit in internal/api; keep these decoupled where helpful.

type Status string

const (
	StatusSafe       Status = "SAFE"
	StatusSuspicious Status = "SUSPICIOUS"
	StatusPhishing   Status = "PHISHING"
)

// ParseStatus accepts the scorer's status strings case-insensitively.
func ParseStatus(s string) (Status, error) {
	switch Status(strings.ToUpper(strings.TrimSpace(s))) {
	case StatusSafe:
		return StatusSafe, nil
	case StatusSuspicious:
		return StatusSuspicious, nil
	case StatusPhishing:
		return StatusPhishing, nil
	}
	return "", errors.New("unknown status " + `"` + s + `"`)
}

// Verdict is the scorer's output for one URL at one point in time.
type Verdict struct {
	URL          string
	RiskScore    float64
	Status       Status
	RiskLabel    string
	ResponseTime float64 // seconds, as reported by the scorer
	RiskReasons  []string
}

// LedgerEntry is an append-only record of one completed scan.
type LedgerEntry struct {
	ID        string
	Verdict   Verdict
	Domain    string // registrable domain, empty when the host can't be parsed
	Timestamp time.Time
}

// AggregateRecord holds the latest known verdict and a running count per URL key.
type AggregateRecord struct {
	ID          string
	URLKey      string
	Latest      Verdict // Latest.URL keeps the case of the first insert
	ScanCount   int
	FirstSeen   time.Time
	LastScanned time.Time
}

// URLKey is the case-insensitive identity used for aggregates.
func URLKey(url string) string { return strings.ToLower(url) }

// Page bounds a list read. Limit 0 means no limit.
type Page struct {
	Limit  int
	Offset int
}

// Apply slices entries according to the page.
func (p Page) Apply(n int) (start, end int) {
	start = p.Offset
	if start < 0 {
		start = 0
	}
	if start > n {
		start = n
	}
	end = n
	if p.Limit > 0 && p.Limit < n-start {
		end = start + p.Limit
	}
	return start, end
}

var (
	ErrValidation        = errors.New("validation failed")
	ErrScorerUnavailable = errors.New("scorer unavailable")
	ErrNotFound          = errors.New("not found")
)
