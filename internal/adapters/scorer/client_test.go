package scorer

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"phishguard/internal/domain"
)

func TestScoreDecodesVerdict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v1/scan" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var req map[string]string
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req["url"] != "http://Example.com/login" {
			t.Errorf("url = %q", req["url"])
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"risk_score": 72.5, "status": "PHISHING", "risk_label": "High Risk",
			"response_time": 0.41, "risk_reasons": ["[HIGH RISK] Tokelau domain", "[WARN] keyword"]}`))
	}))
	defer srv.Close()

	c := New(srv.URL+"/", time.Second)
	v, err := c.Score(context.Background(), "http://Example.com/login")
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	if v.URL != "http://Example.com/login" || v.Status != domain.StatusPhishing || v.RiskScore != 72.5 {
		t.Fatalf("unexpected verdict: %+v", v)
	}
	if len(v.RiskReasons) != 2 || v.RiskReasons[0] != "[HIGH RISK] Tokelau domain" {
		t.Fatalf("reasons = %v", v.RiskReasons)
	}
}

func TestScoreMissingReasonsIsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"risk_score": 3, "status": "safe", "risk_label": "Safe", "response_time": 0.1}`))
	}))
	defer srv.Close()

	v, err := New(srv.URL, time.Second).Score(context.Background(), "https://a.com")
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	if v.RiskReasons == nil || len(v.RiskReasons) != 0 {
		t.Fatalf("reasons = %#v", v.RiskReasons)
	}
	if v.Status != domain.StatusSafe {
		t.Fatalf("status = %q", v.Status)
	}
}

func TestScoreFailures(t *testing.T) {
	cases := []struct {
		name    string
		handler http.HandlerFunc
		status  int
	}{
		{
			name:    "non_2xx",
			handler: func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusInternalServerError) },
			status:  http.StatusInternalServerError,
		},
		{
			name:    "bad_json",
			handler: func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte(`{"risk_score":`)) },
			status:  http.StatusOK,
		},
		{
			name: "unknown_status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"risk_score": 1, "status": "MAYBE"}`))
			},
			status: http.StatusOK,
		},
		{
			name: "timeout",
			handler: func(w http.ResponseWriter, r *http.Request) {
				time.Sleep(200 * time.Millisecond)
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(tc.handler)
			defer srv.Close()

			_, err := New(srv.URL, 50*time.Millisecond).Score(context.Background(), "https://a.com")
			if err == nil {
				t.Fatalf("expected failure")
			}
			if !errors.Is(err, domain.ErrScorerUnavailable) {
				t.Fatalf("error should match ErrScorerUnavailable: %v", err)
			}
			var f *Failure
			if !errors.As(err, &f) {
				t.Fatalf("error should be *Failure: %T", err)
			}
			if f.StatusCode != tc.status {
				t.Fatalf("status code = %d, want %d", f.StatusCode, tc.status)
			}
		})
	}
}

func TestScoreUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := New(url, time.Second).Score(context.Background(), "https://a.com")
	if !errors.Is(err, domain.ErrScorerUnavailable) {
		t.Fatalf("expected scorer unavailable, got %v", err)
	}
}
