// Package scorer talks to the external phishing scoring service.
package scorer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"phishguard/internal/domain"
)

const scanPath = "/api/v1/scan"

// Failure is returned for any scorer problem: transport errors, timeouts,
// non-2xx responses and bodies that can't be decoded.
type Failure struct {
	Reason     string
	StatusCode int // 0 when no response was received
	Err        error
}

func (f *Failure) Error() string { return "scorer: " + f.Reason }

func (f *Failure) Unwrap() error { return f.Err }

func (f *Failure) Is(target error) bool { return target == domain.ErrScorerUnavailable }

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type scanRequest struct {
	URL string `json:"url"`
}

type scanResponse struct {
	RiskScore    float64  `json:"risk_score"`
	Status       string   `json:"status"`
	RiskLabel    string   `json:"risk_label"`
	ResponseTime float64  `json:"response_time"`
	RiskReasons  []string `json:"risk_reasons"`
}

// Score posts the URL to the scorer. It never retries.
func (c *Client) Score(ctx context.Context, url string) (domain.Verdict, error) {
	body, err := json.Marshal(scanRequest{URL: url})
	if err != nil {
		return domain.Verdict{}, &Failure{Reason: "encode request", Err: err}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+scanPath, bytes.NewReader(body))
	if err != nil {
		return domain.Verdict{}, &Failure{Reason: "build request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.Verdict{}, &Failure{Reason: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
		return domain.Verdict{}, &Failure{
			Reason:     fmt.Sprintf("responded with status %d", resp.StatusCode),
			StatusCode: resp.StatusCode,
		}
	}

	var out scanResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return domain.Verdict{}, &Failure{Reason: "decode response", StatusCode: resp.StatusCode, Err: err}
	}
	status, err := domain.ParseStatus(out.Status)
	if err != nil {
		return domain.Verdict{}, &Failure{Reason: err.Error(), StatusCode: resp.StatusCode, Err: err}
	}
	reasons := out.RiskReasons
	if reasons == nil {
		reasons = []string{}
	}
	return domain.Verdict{
		URL:          url,
		RiskScore:    out.RiskScore,
		Status:       status,
		RiskLabel:    out.RiskLabel,
		ResponseTime: out.ResponseTime,
		RiskReasons:  reasons,
	}, nil
}
