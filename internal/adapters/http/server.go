package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	api "phishguard/internal/api"
	"phishguard/internal/domain"
	"phishguard/internal/ports"
	"phishguard/internal/services/classifier"
)

// Server implements the generated StrictServerInterface.
type Server struct {
	scanner  ports.Scanner
	history  ports.History
	stats    ports.Stats
	profiles ports.Profiles
}

var _ api.StrictServerInterface = (*Server)(nil)

func New(scanner ports.Scanner, history ports.History, stats ports.Stats, profiles ports.Profiles) *Server {
	return &Server{scanner: scanner, history: history, stats: stats, profiles: profiles}
}

// Routes returns a chi.Router mounting the generated handlers.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	handler := api.NewStrictHandlerWithOptions(s, nil, api.StrictHTTPServerOptions{
		RequestErrorHandlerFunc: func(w http.ResponseWriter, r *http.Request, err error) {
			writeError(w, http.StatusBadRequest, "invalid request", err)
		},
		ResponseErrorHandlerFunc: respondError,
	})
	api.HandlerWithOptions(handler, api.ChiServerOptions{
		BaseRouter:       r,
		ErrorHandlerFunc: func(w http.ResponseWriter, r *http.Request, err error) {
			writeError(w, http.StatusBadRequest, "invalid parameter", err)
		},
	})
	return r
}

// respondError maps domain errors that escape a handler onto status codes.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, "invalid request", err)
	case errors.Is(err, domain.ErrScorerUnavailable):
		writeError(w, http.StatusServiceUnavailable, "scoring service unavailable", err)
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found", err)
	default:
		log.Printf("%s %s: %v", r.Method, r.URL.Path, err)
		writeError(w, http.StatusInternalServerError, "internal error", err)
	}
}

func writeError(w http.ResponseWriter, code int, msg string, err error) {
	body := api.Error{Error: msg}
	if err != nil {
		details := err.Error()
		body.Details = &details
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}

func errorBody(msg string, err error) api.ErrorJSONResponse {
	details := err.Error()
	return api.ErrorJSONResponse{Error: msg, Details: &details}
}

// Strict handler methods

func (s *Server) GetHealthz(ctx context.Context, _ api.GetHealthzRequestObject) (api.GetHealthzResponseObject, error) {
	ok := "ok"
	return api.GetHealthz200JSONResponse{Status: &ok}, nil
}

func (s *Server) PostScan(ctx context.Context, req api.PostScanRequestObject) (api.PostScanResponseObject, error) {
	if req.Body == nil {
		return nil, fmt.Errorf("%w: missing body", domain.ErrValidation)
	}
	v, err := s.scanner.Scan(ctx, req.Body.Url)
	if err != nil {
		return nil, err
	}
	return api.PostScan200JSONResponse(toVerdict(v)), nil
}

func (s *Server) GetHistory(ctx context.Context, req api.GetHistoryRequestObject) (api.GetHistoryResponseObject, error) {
	entries, err := s.history.List(ctx, page(req.Params.Limit, req.Params.Offset))
	if err != nil {
		return nil, err
	}
	return api.GetHistory200JSONResponse(toEntries(entries)), nil
}

func (s *Server) GetHistoryGroups(ctx context.Context, req api.GetHistoryGroupsRequestObject) (api.GetHistoryGroupsResponseObject, error) {
	groups, err := s.history.Groups(ctx, page(req.Params.Limit, req.Params.Offset))
	if err != nil {
		return nil, err
	}
	out := make(api.GetHistoryGroups200JSONResponse, 0, len(groups))
	for _, g := range groups {
		out = append(out, api.HistoryGroup{
			Url:       g.URL,
			Domain:    g.Domain,
			ScanCount: len(g.Entries),
			Scans:     toEntries(g.Entries),
		})
	}
	return out, nil
}

func (s *Server) DeleteHistory(ctx context.Context, req api.DeleteHistoryRequestObject) (api.DeleteHistoryResponseObject, error) {
	deleted, err := s.history.DeleteGroup(ctx, req.Params.Url)
	if errors.Is(err, domain.ErrNotFound) && deleted == 0 {
		return api.DeleteHistory404JSONResponse{ErrorJSONResponse: errorBody("history group not found", err)}, nil
	}
	res := api.GroupDeleteResult{Deleted: deleted}
	if err != nil {
		msg := err.Error()
		res.Error = &msg
	}
	return api.DeleteHistory200JSONResponse(res), nil
}

func (s *Server) DeleteHistoryId(ctx context.Context, req api.DeleteHistoryIdRequestObject) (api.DeleteHistoryIdResponseObject, error) {
	if err := s.history.Delete(ctx, req.Id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return api.DeleteHistoryId404JSONResponse{ErrorJSONResponse: errorBody("history item not found", err)}, nil
		}
		return nil, err
	}
	return api.DeleteHistoryId200JSONResponse{Message: "deleted"}, nil
}

func (s *Server) GetScanHistoryUrl(ctx context.Context, req api.GetScanHistoryUrlRequestObject) (api.GetScanHistoryUrlResponseObject, error) {
	entries, err := s.history.ForURL(ctx, req.Url)
	if err != nil {
		return nil, err
	}
	return api.GetScanHistoryUrl200JSONResponse(toEntries(entries)), nil
}

func (s *Server) GetStats(ctx context.Context, _ api.GetStatsRequestObject) (api.GetStatsResponseObject, error) {
	st, err := s.stats.Compute(ctx)
	if err != nil {
		return nil, err
	}
	return api.GetStats200JSONResponse{
		TotalScans:      st.Total,
		PhishingBlocked: st.Phishing,
		SuspiciousCount: st.Suspicious,
		SafeUrls:        st.Safe,
		AvgResponseTime: fmt.Sprintf("%.2fs", st.AvgResponseTime),
		PhishingRatio:   st.Ratio(domain.StatusPhishing),
		SuspiciousRatio: st.Ratio(domain.StatusSuspicious),
		SafeRatio:       st.Ratio(domain.StatusSafe),
	}, nil
}

func (s *Server) GetUrlsUrl(ctx context.Context, req api.GetUrlsUrlRequestObject) (api.GetUrlsUrlResponseObject, error) {
	rec, err := s.profiles.GetLatest(ctx, req.Url)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return api.GetUrlsUrl404JSONResponse{ErrorJSONResponse: errorBody("url not scanned yet", err)}, nil
		}
		return nil, err
	}
	v := rec.Latest
	return api.GetUrlsUrl200JSONResponse{
		Id:           rec.ID,
		Url:          v.URL,
		RiskScore:    v.RiskScore,
		Status:       api.Status(v.Status),
		RiskLabel:    v.RiskLabel,
		ResponseTime: v.ResponseTime,
		RiskReasons:  reasons(v.RiskReasons),
		ScanCount:    rec.ScanCount,
		FirstSeen:    rec.FirstSeen,
		LastScanned:  rec.LastScanned,
	}, nil
}

func (s *Server) PostExplain(ctx context.Context, req api.PostExplainRequestObject) (api.PostExplainResponseObject, error) {
	if req.Body == nil {
		return nil, fmt.Errorf("%w: missing body", domain.ErrValidation)
	}
	status, err := domain.ParseStatus(string(req.Body.Status))
	if err != nil {
		return api.PostExplain400JSONResponse{ErrorJSONResponse: errorBody("invalid status", err)}, nil
	}
	ex := classifier.Explain(req.Body.RiskReasons, status)
	checks := make([]api.Check, 0, len(ex.Checks))
	for _, c := range ex.Checks {
		checks = append(checks, api.Check{
			Id:        string(c.ID),
			Label:     c.Label,
			Satisfied: c.Satisfied,
			Reasons:   reasons(c.MatchedReasons),
		})
	}
	return api.PostExplain200JSONResponse{
		Status:     api.Status(ex.Status),
		Banner:     api.ExplanationBanner(ex.Banner),
		IssueCount: ex.IssueCount,
		Checks:     checks,
	}, nil
}
