package server

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"
	"time"

	"github.com/matzehuels/mosaic/pkg/buildinfo"
	"github.com/matzehuels/mosaic/pkg/errors"
	"github.com/matzehuels/mosaic/pkg/layout"
	"github.com/matzehuels/mosaic/pkg/manifest"
	"github.com/matzehuels/mosaic/pkg/pipeline"
	"github.com/matzehuels/mosaic/pkg/sink"
)

type errorBody struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

type algorithmInfo struct {
	Name    string `json:"name"`
	Summary string `json:"summary"`
}

type statsBody struct {
	Items        int     `json:"items"`
	Cells        int     `json:"cells"`
	LayoutMillis float64 `json:"layout_ms"`
	RenderMillis float64 `json:"render_ms"`
}

type layoutResponse struct {
	RequestID string `json:"request_id"`
	sink.Document
	Stats statsBody `json:"stats"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		Status string `json:"status"`
		buildinfo.Info
	}{"ok", buildinfo.Get()})
}

func (s *Server) handleAlgorithms(w http.ResponseWriter, r *http.Request) {
	algs := layout.Algorithms()
	out := make([]algorithmInfo, len(algs))
	for i, a := range algs {
		out[i] = algorithmInfo{Name: a.String(), Summary: a.Summary()}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	id := RequestIDFrom(r.Context())
	q := r.URL.Query()

	mf := manifest.FormatJSON
	if name := q.Get("manifest"); name != "" {
		f, err := manifest.ParseFormat(name)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		mf = f
	}

	output := pipeline.FormatJSON
	if name := q.Get("format"); name != "" {
		if err := pipeline.ValidateFormat(name); err != nil {
			s.writeError(w, r, err)
			return
		}
		output = name
	}

	body, err := readBody(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	m, err := manifest.Decode(bytes.NewReader(body), mf)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if pipeline.UnknownAlgorithm(m) {
		s.logger.Warn("unknown algorithm, using dynamic", "id", id, "algorithm", m.Algorithm)
	}

	req := pipeline.FromManifest(m)
	req.Options.Formats = []string{output}
	req.Options.Labels = q.Has("labels")
	req.Options.Fill = q.Has("fill")

	result, err := s.runner.Execute(r.Context(), req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.logger.Info("layout", "id", id, "algorithm", req.Options.Algorithm, "stats", result.Stats.String())

	if output == pipeline.FormatSVG {
		w.Header().Set("Content-Type", "image/svg+xml")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(result.Artifacts[pipeline.FormatSVG])
		return
	}
	writeJSON(w, http.StatusOK, layoutResponse{
		RequestID: id,
		Document:  result.Document,
		Stats: statsBody{
			Items:        result.Stats.Items,
			Cells:        result.Stats.Cells,
			LayoutMillis: millis(result.Stats.LayoutTime),
			RenderMillis: millis(result.Stats.RenderTime),
		},
	})
}

// readBody reads the request body up to MaxBodyBytes.
func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			return nil, errors.Wrap(errors.ErrCodeInputTooLarge, err, "request body exceeds %d bytes", tooLarge.Limit)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "read request body")
	}
	return body, nil
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

// statusFor maps error codes to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errors.ErrCodeInputTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, errors.ErrCodeFileNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	code := errors.GetCode(err)
	msg := errors.UserMessage(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "id", RequestIDFrom(r.Context()), "err", err)
		msg = "internal error"
	}
	writeJSON(w, status, errorBody{Code: code, Message: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
