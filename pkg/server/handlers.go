package server

import (
	"encoding/json"
	stderrors "errors"
	"mime"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/ikreport/pkg/buildinfo"
	"github.com/matzehuels/ikreport/pkg/errors"
	pkgio "github.com/matzehuels/ikreport/pkg/io"
	"github.com/matzehuels/ikreport/pkg/kin"
	"github.com/matzehuels/ikreport/pkg/pipeline"
	"github.com/matzehuels/ikreport/pkg/render/nodelink"
	"github.com/matzehuels/ikreport/pkg/report"
)

// TeXContentType is the media type of report responses.
const TeXContentType = "application/x-tex; charset=utf-8"

type errorBody struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	RequestID string `json:"request_id,omitempty"`
}

type healthBody struct {
	Status string         `json:"status"`
	Build  buildinfo.Info `json:"build"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthBody{Status: "ok", Build: buildinfo.Get()})
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	kind, err := report.ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	ropts, err := reportOptions(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	b, err := s.readBundle(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	data, hit, err := s.runner.RenderReport(r.Context(), b, kind, ropts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", TeXContentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{
		"filename": report.FileName(kind, b.Robot.DisplayName()) + ".tex",
	}))
	writeBody(w, data, hit)
}

func (s *Server) handleGraph(w http.ResponseWriter, r *http.Request) {
	format, err := nodelink.ParseFormat(chi.URLParam(r, "format"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	detailed, err := boolParam(r, "detailed", false)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	b, err := s.readBundle(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	data, _, hit, err := s.runner.RenderGraphWithCacheInfo(r.Context(), b.Robot.NotationGraph, pipeline.GraphOptions{
		Format:   format,
		Detailed: detailed,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", format.ContentType())
	writeBody(w, data, hit)
}

func (s *Server) readBundle(w http.ResponseWriter, r *http.Request) (*kin.Bundle, error) {
	body := http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)
	defer body.Close()
	return pkgio.ReadJSON(body)
}

func reportOptions(r *http.Request) (report.Options, error) {
	opts := report.DefaultOptions()
	var err error
	if opts.Columns, err = boolParam(r, "columns", opts.Columns); err != nil {
		return opts, err
	}
	if opts.Align, err = boolParam(r, "align", opts.Align); err != nil {
		return opts, err
	}
	if opts.Fracify, err = boolParam(r, "fracify", opts.Fracify); err != nil {
		return opts, err
	}
	opts.Title = r.URL.Query().Get("title")
	return opts, nil
}

func boolParam(r *http.Request, name string, def bool) (bool, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def, errors.New(errors.ErrCodeInvalidInput, "query parameter %s: %q is not a boolean", name, v)
	}
	return b, nil
}

func writeBody(w http.ResponseWriter, data []byte, hit bool) {
	if hit {
		w.Header().Set("X-Cache", "HIT")
	} else {
		w.Header().Set("X-Cache", "MISS")
	}
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	code := string(errors.GetCode(err))
	if code == "" {
		code = string(errors.ErrCodeInternal)
	}
	msg := errors.UserMessage(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "error", err, "request_id", RequestID(r.Context()))
		msg = "internal error"
	}
	writeJSON(w, status, errorBody{Error: msg, Code: code, RequestID: RequestID(r.Context())})
}

func statusFor(err error) int {
	var maxErr *http.MaxBytesError
	if stderrors.As(err, &maxErr) {
		return http.StatusRequestEntityTooLarge
	}
	switch errors.ClassOf(err) {
	case errors.ClassInvalid:
		return http.StatusBadRequest
	case errors.ClassNotFound:
		return http.StatusNotFound
	case errors.ClassUnsupported:
		return http.StatusNotImplemented
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
