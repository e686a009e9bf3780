package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"
)

const maxAuditBody = 1 << 10

func (s *Server) auditLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := s.now()
		entry := AuditLogEntry{
			Timestamp: start,
			Method:    r.Method,
			Path:      r.URL.Path,
			Handler:   getHandlerName(r.URL.Path, r.Method),
			OrderCode: orderCodeFromPath(r.URL.Path, r.Method),
		}

		if username, _, ok := r.BasicAuth(); ok {
			entry.Actor = username
		}

		if r.Method == http.MethodPost && r.Body != nil {
			requestBody, _ := io.ReadAll(io.LimitReader(r.Body, maxAuditBody))
			r.Body = io.NopCloser(bytes.NewBuffer(requestBody))

			var decisionRequest struct {
				Decision string `json:"decision"`
			}
			if err := json.Unmarshal(requestBody, &decisionRequest); err == nil {
				entry.Decision = decisionRequest.Decision
			}
		}

		wrw := newResponseWriterWrapper(w)

		next.ServeHTTP(wrw, r)

		entry.StatusCode = wrw.GetStatusCode()
		entry.Duration = time.Since(start)
		if entry.StatusCode >= http.StatusBadRequest {
			entry.Response = strings.TrimSpace(string(wrw.GetBody()))
		}

		s.AuditManager.LogEntry(entry)
	})
}

// orderCodeFromPath returns the {code} segment of /api/orders/{code}/...
func orderCodeFromPath(path, method string) string {
	if method == http.MethodPost && path == "/api/orders/refresh" {
		return ""
	}
	rest, ok := strings.CutPrefix(path, "/api/orders/")
	if !ok || rest == "" {
		return ""
	}
	code, _, _ := strings.Cut(rest, "/")
	return code
}

func getHandlerName(path string, method string) string {
	switch {
	case path == "/health":
		return "handleHealth"
	case path == "/metrics":
		return "metrics"
	case path == "/api/orders":
		return "handleListOrders"
	case path == "/api/order-statuses":
		return "handleStatuses"
	case method == http.MethodPost && path == "/api/orders/refresh":
		return "handleRefresh"
	case strings.HasPrefix(path, "/api/orders/"):
		if strings.HasSuffix(path, "/actions") {
			return "handleActions"
		} else if method == http.MethodPost && strings.HasSuffix(path, "/return-decision") {
			return "handleReturnDecision"
		}
		return "handleGetOrder"
	}
	return "unknown"
}
