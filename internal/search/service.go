package search

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/loofsan/SF-Hacks2025/internal/resource"
	"github.com/loofsan/SF-Hacks2025/internal/searchlog"
	"github.com/loofsan/SF-Hacks2025/pkg/ids"
	"github.com/loofsan/SF-Hacks2025/pkg/logger"
	"github.com/loofsan/SF-Hacks2025/pkg/metrics"
	"github.com/sirupsen/logrus"
)

var ErrEmptyQuery = errors.New("search query is required")

// LogWriter appends search audit records.
type LogWriter interface {
	Create(ctx context.Context, l *searchlog.SearchLog) (string, error)
}

// LatLng is the optional device position sent with a search.
type LatLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Request struct {
	Query     string  `json:"query"`
	Location  *LatLng `json:"location"`
	SessionID string  `json:"sessionId"`
	UserAgent string  `json:"-"`
}

type Response struct {
	Resources      []*resource.Resource `json:"resources"`
	Explanation    string               `json:"explanation"`
	SearchLogID    string               `json:"searchLogId"`
	Interpretation Outcome              `json:"interpretation"`
}

// Service runs the interpret, execute, explain pipeline.
type Service struct {
	interp  *Interpreter
	exec    *Executor
	explain *Explainer
	logs    LogWriter
	now     func() time.Time
}

func NewService(interp *Interpreter, exec *Executor, explain *Explainer, logs LogWriter) *Service {
	return &Service{interp: interp, exec: exec, explain: explain, logs: logs, now: time.Now}
}

// Search only fails on an empty query or a store error. Interpretation and
// explanation degrade to local fallbacks, and the audit write is best-effort.
func (s *Service) Search(ctx context.Context, req Request) (*Response, error) {
	query := strings.TrimSpace(req.Query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	out := s.interp.Interpret(ctx, query)
	results, err := s.exec.Execute(ctx, out.Interpretation, query)
	if err != nil {
		return nil, err
	}
	metrics.Searches.WithLabelValues(string(out.Source)).Inc()
	metrics.SearchResults.Observe(float64(len(results)))

	explanation := s.explain.Explain(ctx, results, out)
	logID := s.record(ctx, req, query, out, len(results))

	logger.With(logrus.Fields{
		"source":  out.Source,
		"results": len(results),
	}).Debugf("search %q", query)

	return &Response{
		Resources:      results,
		Explanation:    explanation,
		SearchLogID:    logID,
		Interpretation: out,
	}, nil
}

// record writes the SearchLog entry; failures are logged and yield "".
func (s *Service) record(ctx context.Context, req Request, query string, out Outcome, count int) string {
	if s.logs == nil {
		return ""
	}
	entry := &searchlog.SearchLog{
		Query:                query,
		ProcessedQuery:       out.Processed(),
		InterpretationSource: string(out.Source),
		ResultsCount:         count,
		SessionID:            ids.OrNew(req.SessionID),
		DeviceType:           searchlog.DetectDevice(req.UserAgent),
		CreatedAt:            s.now(),
	}
	if req.Location != nil && resource.ValidateLonLat(req.Location.Longitude, req.Location.Latitude) == nil {
		entry.UserLocation = resource.NewPoint(req.Location.Longitude, req.Location.Latitude)
	}
	id, err := s.logs.Create(ctx, entry)
	if err != nil {
		metrics.WriteFailures.WithLabelValues("searchlogs").Inc()
		logger.Warnf("search log write failed: %v", err)
		return ""
	}
	return id
}

// Keyword is the single-term substring search.
func (s *Service) Keyword(ctx context.Context, keyword string) ([]*resource.Resource, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, ErrEmptyQuery
	}
	return s.exec.Keyword(ctx, keyword)
}
