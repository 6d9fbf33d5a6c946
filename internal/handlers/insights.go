package handlers

import (
	"net/http"

	"github.com/Tusharxhub/GitHubWrapped/internal/messages"
	"github.com/Tusharxhub/GitHubWrapped/internal/utils"
	"go.uber.org/zap"
)

// streamWriter commits a text/plain 200 on the first write and flushes every chunk.
type streamWriter struct {
	w       http.ResponseWriter
	started bool
}

func (s *streamWriter) Write(p []byte) (int, error) {
	if !s.started {
		s.w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		s.w.Header().Set("Cache-Control", "no-cache")
		s.w.WriteHeader(http.StatusOK)
		s.started = true
	}

	n, err := s.w.Write(p)
	if f, ok := s.w.(http.Flusher); ok {
		f.Flush()
	}
	return n, err
}

func (h Handler) StreamInsights(w http.ResponseWriter, r *http.Request) {
	username, ok := h.usernameFromPath(w, r, messages.StatsNotFound)
	if !ok {
		return
	}
	logr := h.logger.With(zap.String("method", "StreamInsights"), zap.String("username", username))

	sw := &streamWriter{w: w}
	err := h.insightService.StreamInsights(r.Context(), username, sw)
	if err == nil {
		return
	}
	if sw.started {
		// headers are already sent, the client sees a truncated body
		logr.Error("insight stream interrupted", zap.Error(err))
		return
	}

	code := statusFor(err)
	R := ResponseFormat{}
	if code == http.StatusNotFound {
		R.Message = messages.StatsNotFound
	} else {
		logr.Error("error in StreamInsights", zap.Error(err))
	}
	code, res := h.response(code, R)
	utils.SendResponse(w, code, res)
}
